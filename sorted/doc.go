// Package sorted implements a mutable ordered collection backed by a
// B-tree, usable directly as a lazy sequence source: it hands out a fresh
// in-order traversal on every pass and knows its size in constant time.
//
// Basic usage:
//
//	set := sorted.New(func(a, b int) bool { return a < b })
//	set.Add(3)
//	set.Add(1)
//	set.Add(2)
//
//	for v := range set.All() {
//	    fmt.Println(v) // 1, 2, 3
//	}
//
//	// As a pipeline source; Count is free because the set knows its size.
//	s := pypes.From[int](set)
//	fmt.Println(s.Count()) // 3
//
//	// Sorted sets are valid MergeSorted inputs.
//	merged := pypes.MergeSorted(
//	    func(a, b int) bool { return a < b },
//	    math.MaxInt,
//	    pypes.From[int](set), pypes.FromSlice([]int{0, 4}),
//	)
package sorted
