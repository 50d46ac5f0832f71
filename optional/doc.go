// Package optional implements a container that holds zero or one value of a
// given type. It is the result type of terminal sequence operations that may
// not produce anything, such as reductions over possibly-empty input or
// first-match scans.
//
// Presence is tracked explicitly, so a held zero value (0, "", nil pointer)
// is still present. Use OfPtr when a nil pointer should mean absence:
//
//	optional.Of(0).IsPresent()        // true
//	optional.OfPtr[int](nil).IsPresent() // false
//
// Basic usage:
//
//	v := optional.Of(42)
//
//	if v.IsPresent() {
//	    fmt.Println("got a value")
//	}
//
//	// Fall back to a default when empty
//	n := optional.Empty[int]().OrElse(7) // 7
//
//	// Transform without unpacking; empty stays empty
//	s := optional.Map(v, strconv.Itoa) // optional.Of("42")
//
//	// A value is also a 0-or-1-element sequence
//	for x := range v.All() {
//	    fmt.Println(x)
//	}
package optional
