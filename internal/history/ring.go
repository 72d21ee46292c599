package history

// ring is a fixed-capacity FIFO; push on a full ring drops the oldest.
type ring struct {
	items []Sample
	head  int
	size  int
}

func newRing(capacity int) *ring {
	return &ring{items: make([]Sample, capacity)}
}

func (r *ring) push(s Sample) {
	idx := (r.head + r.size) % len(r.items)
	r.items[idx] = s
	if r.size < len(r.items) {
		r.size++
		return
	}
	r.head = (r.head + 1) % len(r.items)
}

func (r *ring) len() int {
	return r.size
}

func (r *ring) last() Sample {
	return r.items[(r.head+r.size-1)%len(r.items)]
}

func (r *ring) each(fn func(Sample)) {
	for i := 0; i < r.size; i++ {
		fn(r.items[(r.head+i)%len(r.items)])
	}
}

func (r *ring) slice() []Sample {
	out := make([]Sample, 0, r.size)
	r.each(func(s Sample) {
		out = append(out, s)
	})
	return out
}
