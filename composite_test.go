package pypes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydawan82/pypes"
)

func TestConcat(t *testing.T) {
	a := pypes.FromSlice([]int{1, 2})
	b := pypes.FromSlice([]int{3})
	c := pypes.FromSlice([]int{4, 5})

	got := pypes.Concat(a, b, c).Collect()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)
}

func TestConcatEqualsCollectedConcatenation(t *testing.T) {
	a := pypes.RangeN(3)
	b := pypes.Range(10, 13, 1)

	want := append(a.Collect(), b.Collect()...)
	assert.Equal(t, want, pypes.Concat(a, b).Collect())
}

func TestConcatWithEmpty(t *testing.T) {
	got := pypes.Concat(pypes.Empty[int](), pypes.FromSlice([]int{1}), pypes.Empty[int]()).Collect()
	assert.Equal(t, []int{1}, got)
}

func TestConcatCount(t *testing.T) {
	s := pypes.Concat(pypes.RangeN(3), pypes.RangeN(4))
	assert.Equal(t, 7, s.Count())
}

func TestConcatIsLazy(t *testing.T) {
	pulled := 0
	a := pypes.RangeN(3).Peek(func(int) { pulled++ })
	b := pypes.RangeN(100).Peek(func(int) { pulled++ })

	pypes.Concat(a, b).Only(5).Collect()
	assert.Equal(t, 5, pulled)
}

func TestAppend(t *testing.T) {
	s := pypes.FromSlice([]int{1, 2}).Append(pypes.FromSlice([]int{3, 4}))
	assert.Equal(t, []int{1, 2, 3, 4}, s.Collect())
}

func TestZipTruncatesAtShortest(t *testing.T) {
	s := pypes.Zip(pypes.RangeN(3), pypes.Range(10, 15, 1))

	got := s.Collect()
	require.Len(t, got, 3)
	assert.Equal(t, [][]int{{0, 10}, {1, 11}, {2, 12}}, got)
}

func TestZipRowsStayFlat(t *testing.T) {
	// Zipping k sequences yields k-wide rows; adding one more input is one
	// more argument, not a nested pair.
	s := pypes.Zip(pypes.RangeN(2), pypes.Range(10, 12, 1), pypes.Range(20, 22, 1))
	assert.Equal(t, [][]int{{0, 10, 20}, {1, 11, 21}}, s.Collect())
}

func TestZipNoArguments(t *testing.T) {
	assert.Empty(t, pypes.Zip[int]().Collect())
}

func TestZipWithEmptyInput(t *testing.T) {
	s := pypes.Zip(pypes.RangeN(5), pypes.Empty[int]())
	assert.Empty(t, s.Collect())
}

func TestZipCount(t *testing.T) {
	s := pypes.Zip(pypes.RangeN(3), pypes.RangeN(5))
	assert.Equal(t, 3, s.Count())
}

func TestZipIsLazy(t *testing.T) {
	pulled := 0
	a := pypes.RangeN(100).Peek(func(int) { pulled++ })
	b := pypes.RangeN(100).Peek(func(int) { pulled++ })

	pypes.Zip(a, b).Only(2).Collect()
	assert.Equal(t, 4, pulled)
}

func TestZip2(t *testing.T) {
	s := pypes.Zip2(pypes.FromSlice([]int{1, 2, 3}), pypes.FromSlice([]string{"a", "b"}))

	want := []pypes.Pair[int, string]{
		{First: 1, Second: "a"},
		{First: 2, Second: "b"},
	}
	assert.Equal(t, want, s.Collect())
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want [][]int
	}{
		{"even split", 2, [][]int{{0, 1}, {2, 3}, {4, 5}}},
		{"trailing partial chunk", 4, [][]int{{0, 1, 2, 3}, {4, 5}}},
		{"chunk larger than source", 10, [][]int{{0, 1, 2, 3, 4, 5}}},
		{"size one", 1, [][]int{{0}, {1}, {2}, {3}, {4}, {5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pypes.Chunk(pypes.RangeN(6), tt.n).Collect()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChunkEmpty(t *testing.T) {
	assert.Empty(t, pypes.Chunk(pypes.Empty[int](), 3).Collect())
}

func TestChunkCount(t *testing.T) {
	assert.Equal(t, 2, pypes.Chunk(pypes.RangeN(6), 4).Count())
	assert.Equal(t, 3, pypes.Chunk(pypes.RangeN(6), 2).Count())
}

func TestChunkNonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { pypes.Chunk(pypes.RangeN(3), 0) })
}

func TestWindows(t *testing.T) {
	tests := []struct {
		name       string
		size, step int
		want       [][]int
	}{
		{"sliding by one", 3, 1, [][]int{{0, 1, 2}, {1, 2, 3}, {2, 3, 4}}},
		{"step equals size", 2, 2, [][]int{{0, 1}, {2, 3}}},
		{"step beyond size", 2, 3, [][]int{{0, 1}, {3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pypes.Windows(pypes.RangeN(5), tt.size, tt.step).Collect()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowsDropsPartialTail(t *testing.T) {
	got := pypes.Windows(pypes.RangeN(4), 3, 2).Collect()
	assert.Equal(t, [][]int{{0, 1, 2}}, got)
}

func TestWindowsNonPositivePanics(t *testing.T) {
	assert.Panics(t, func() { pypes.Windows(pypes.RangeN(3), 0, 1) })
	assert.Panics(t, func() { pypes.Windows(pypes.RangeN(3), 1, 0) })
}

func TestDistinct(t *testing.T) {
	s := pypes.FromSlice([]int{3, 1, 3, 2, 1, 4})
	assert.Equal(t, []int{3, 1, 2, 4}, pypes.Distinct(s).Collect())
}

func TestDistinctResetsPerTraversal(t *testing.T) {
	s := pypes.Distinct(pypes.FromSlice([]int{1, 1, 2}))
	assert.Equal(t, []int{1, 2}, s.Collect())
	assert.Equal(t, []int{1, 2}, s.Collect())
}

func TestMergeSorted(t *testing.T) {
	a := pypes.FromSlice([]int{1, 4, 7})
	b := pypes.FromSlice([]int{2, 5, 8})
	c := pypes.FromSlice([]int{3, 6, 9})

	got := pypes.MergeSorted(func(x, y int) bool { return x < y }, math.MaxInt, a, b, c)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, got.Collect())
}

func TestMergeSortedKeepsDuplicates(t *testing.T) {
	a := pypes.FromSlice([]int{1, 2, 2})
	b := pypes.FromSlice([]int{2, 3})

	got := pypes.MergeSorted(func(x, y int) bool { return x < y }, math.MaxInt, a, b)
	assert.Equal(t, []int{1, 2, 2, 2, 3}, got.Collect())
	assert.Equal(t, 5, got.Count())
}

func TestMergeSortedIsReplayable(t *testing.T) {
	s := pypes.MergeSorted(func(x, y int) bool { return x < y }, math.MaxInt,
		pypes.FromSlice([]int{1, 3}), pypes.FromSlice([]int{2}))

	assert.True(t, s.Replayable())
	assert.Equal(t, []int{1, 2, 3}, s.Collect())
	assert.Equal(t, []int{1, 2, 3}, s.Collect())
}

func TestMergeSortedComposes(t *testing.T) {
	// A merged sequence is an ordinary lazy sequence.
	s := pypes.MergeSorted(func(x, y int) bool { return x < y }, math.MaxInt,
		pypes.FromSlice([]int{1, 4}), pypes.FromSlice([]int{2, 3})).
		Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, s.Collect())
}
