package bestfirst

// item is one frontier entry: a vertex, its accumulated cost g and its
// priority (g plus heuristic). seq is the push order and breaks ties.
type item struct {
	id       string
	g        float64
	priority float64
	seq      uint64
}

// frontier is a min-heap of *item ordered by (priority, seq).
//
// Stale entries are left in place on improvement ("lazy decrease-key") and
// discarded on pop when their g no longer matches the best known cost.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be *item.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*item)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}
