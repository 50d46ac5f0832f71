package merge

import "iter"

// Source is anything that hands out its elements in sorted order. Every
// pypes.Sequence satisfies it, as do sorted sets and store views.
type Source[E any] interface {
	All() iter.Seq[E]
}

// Tree merges k sorted sources into one sorted traversal using a tournament
// (loser) tree: each merged element costs O(log k) comparisons instead of
// the O(k) of a naive scan. The tree holds no traversal state of its own;
// every call to All plays a fresh tournament over fresh source cursors, so a
// Tree over replayable sources can be traversed any number of times.
type Tree[E any] struct {
	sources []Source[E]
	maxVal  E
	less    func(E, E) bool
}

// New returns a Tree merging sources under less. maxVal must compare at
// least as large as every element of every source; it marks exhausted
// sources inside the tournament. Sources must each be sorted under less, or
// the merged order is unspecified. A nil less panics.
func New[E any](sources []Source[E], maxVal E, less func(E, E) bool) *Tree[E] {
	if less == nil {
		panic("merge: nil comparison")
	}
	return &Tree[E]{sources: sources, maxVal: maxVal, less: less}
}

// All returns the merged traversal: the union of all source elements, in
// sorted order, duplicates preserved. Stopping early stops pulling from the
// sources; already-pulled elements are not pushed back.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		k := len(t.sources)
		if k == 0 {
			return
		}
		// Binary tree in an array: leaves at k..2k-1, internal nodes at
		// 1..k-1 each holding the loser of its subtree's contest, node 0
		// holding the overall winner.
		g := &game[E]{
			nodes:  make([]node[E], 2*k),
			maxVal: t.maxVal,
			less:   t.less,
		}
		for i := range t.sources {
			pull, stop := iter.Pull(t.sources[i].All())
			defer stop()
			g.nodes[k+i].pull = pull
			g.advance(k + i)
		}
		winner := g.play(1)
		g.nodes[0].index = winner
		g.nodes[0].value = g.nodes[winner].value
		for !g.nodes[g.nodes[0].index].done && yield(g.nodes[0].value) {
			g.advance(g.nodes[0].index)
			g.replay(g.nodes[0].index)
		}
	}
}

// game is the per-traversal tournament state.
type game[E any] struct {
	nodes  []node[E]
	maxVal E
	less   func(E, E) bool
}

type node[E any] struct {
	index int              // losing leaf position; winning position at node 0
	value E                // the loser's value; the winner's at node 0
	done  bool             // leaf cursor exhausted (leaves only)
	pull  func() (E, bool) // leaves only
}

// advance pulls the next element into leaf i, parking it at maxVal once its
// cursor is exhausted.
func (g *game[E]) advance(i int) {
	n := &g.nodes[i]
	if v, ok := n.pull(); ok {
		n.value = v
		return
	}
	n.value = g.maxVal
	n.done = true
}

// play runs the initial tournament below pos, recording losers on the way
// up, and returns the winning leaf position.
func (g *game[E]) play(pos int) int {
	if pos >= len(g.nodes)/2 {
		return pos
	}
	left := g.play(2 * pos)
	right := g.play(2*pos + 1)
	loser, winner := left, right
	if g.less(g.nodes[left].value, g.nodes[right].value) {
		loser, winner = right, left
	}
	g.nodes[pos].index = loser
	g.nodes[pos].value = g.nodes[loser].value
	return winner
}

// replay re-contests the path from leaf pos to the root after that leaf
// advanced, leaving the new winner at node 0. Only the one root-to-leaf path
// is touched.
func (g *game[E]) replay(pos int) {
	value := g.nodes[pos].value
	for n := pos / 2; n != 0; n /= 2 {
		if g.less(g.nodes[n].value, value) {
			g.nodes[n].index, pos = pos, g.nodes[n].index
			g.nodes[n].value, value = value, g.nodes[n].value
		}
	}
	g.nodes[0].index = pos
	g.nodes[0].value = value
}
