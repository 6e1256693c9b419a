package explorer

import "github.com/vtrgo/lookahead/costmodel"

// frontierItem is one pending entry in the explorer's lazy-decrease-key
// heap: a candidate CombinedEntry for a node, possibly superseded by a
// cheaper entry pushed later. Stale entries are discarded on pop by
// checking Scratch.isExpanded rather than removed in place.
type frontierItem struct {
	entry costmodel.CombinedEntry
}

// frontier is a min-heap of frontierItem ordered by CombinedEntry.Cost(),
// ties broken by node index for deterministic pop order (§5).
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	ci, cj := f[i].entry.Cost(), f[j].entry.Cost()
	if ci != cj {
		return ci < cj
	}

	return f[i].entry.Node < f[j].entry.Node
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
