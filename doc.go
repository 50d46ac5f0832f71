// Package pypes implements lazy, composable sequence processing. A
// Sequence is a view over an ordered series of elements; combinators (Map,
// Filter, Zip, Concat, Only, Skip, DropWhile, TakeWhile, ...) wrap it in
// further views without reading anything, and nothing is pulled from the
// underlying source until a terminal operation (ForEach, Reduce, Collect,
// Count, Get, FirstMatch, ...) drives the chain.
//
// Evaluation is single-threaded, synchronous and pull-based: the terminal
// operation is the sole driver, and short-circuiting terminals simply stop
// pulling. Per-traversal state (the drop/take flags, zip cursors, distinct
// sets) is allocated when a traversal starts, never stored on the sequence,
// so a pipeline whose root source allows fresh traversals can be consumed
// any number of times; Replayable reports whether it does. Traversing a
// single-pass root (Once, FromChan) a second time silently yields nothing,
// or a remainder if the first pass stopped early — sharing such a root
// between pipelines splits its elements between them unpredictably and is
// the caller's responsibility to avoid.
//
// Basic usage:
//
//	s := pypes.Range(0, 10, 1).
//	    Filter(func(v int) bool { return v%2 == 1 })
//	squares := pypes.Map(s, func(v int) int { return v * v })
//
//	// Nothing has been evaluated yet; Join consumes the pipeline.
//	fmt.Println(squares.Join("")) // 19254981
//
//	// Indexed access resolves without consuming the whole chain when the
//	// source is indexable.
//	v, err := pypes.FromSlice([]int{1, 2, 3}).Skip(1).Get(1) // 3, nil
//
//	// Zip truncates at the shortest input.
//	rows := pypes.Zip(pypes.RangeN(3), pypes.RangeN(5)) // 3 rows
//
// Sibling packages supply sources and supporting pieces: optional holds the
// present-or-absent results of terminal operations, sorted is a mutable
// ordered collection that seeds replayable sequences, kvstore exposes a
// persistent key-value store as lazy sequences, and merge combines sorted
// sequences with a tournament tree (see MergeSorted).
package pypes
