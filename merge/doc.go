// Package merge implements a tournament tree (loser tree) for lazily
// merging multiple sorted sequences into one. The layout follows Bryan
// Boreham's go-loser (https://github.com/bboreham/go-loser).
//
// Each internal node of the tree holds the "loser" of the contest between
// its children and the root holds the overall winner, so producing the next
// merged element re-contests only one root-to-leaf path: O(log k)
// comparisons per element for k sources.
//
// Tournament state lives in the traversal, not in the Tree, so the same
// Tree can be ranged over repeatedly as long as its sources hand out fresh
// cursors each time.
//
// Basic usage:
//
//	a := pypes.FromSlice([]int{1, 4, 7})
//	b := pypes.FromSlice([]int{2, 5, 8})
//	c := pypes.FromSlice([]int{3, 6, 9})
//
//	tree := merge.New(
//	    []merge.Source[int]{a, b, c},
//	    math.MaxInt,
//	    func(x, y int) bool { return x < y },
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 3, ..., 9
//	}
package merge
