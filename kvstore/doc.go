// Package kvstore exposes a persistent ordered key-value store as lazy
// sequences. It wraps cockroachdb/pebble: keys are kept in ascending order
// on disk, and Keys and Entries hand out replayable pypes sequences that
// open a fresh engine iterator per traversal, each pass observing a
// consistent snapshot of the store.
//
// Engine events can be routed through zerolog with WithLogger; they are
// discarded by default.
//
// Basic usage:
//
//	store, err := kvstore.Open(dir)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	store.Set("a", []byte("1"))
//	store.Set("b", []byte("2"))
//
//	// Keys in ascending order, filtered lazily.
//	keys := store.Keys().Filter(func(k string) bool { return k >= "b" })
//	fmt.Println(keys.Collect()) // [b]
//
//	// A store scan is a valid merge input: it is sorted and replayable.
//	merged := pypes.MergeSorted(
//	    func(a, b string) bool { return a < b },
//	    "\xff\xff", store.Keys(), pypes.FromSlice([]string{"aa"}),
//	)
package kvstore
