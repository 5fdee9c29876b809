package sim

// Poolable is implemented by pointer types that embed Entity.
type Poolable interface {
	base() *Entity
}

// Pool recycles short-lived entities so that steady-state frames allocate
// nothing. Slots are released implicitly when their update rule clears Active.
type Pool[T Poolable] struct {
	items   []T
	stamps  []uint64 // Acquire order per slot, for eviction
	clock   uint64
	factory func() T
	maxSize int
}

// NewPool pre-allocates capacity inactive slots. maxSize > 0 caps growth:
// once every slot is busy the oldest one is recycled instead.
func NewPool[T Poolable](factory func() T, capacity, maxSize int) *Pool[T] {
	p := &Pool[T]{
		items:   make([]T, 0, capacity),
		stamps:  make([]uint64, 0, capacity),
		factory: factory,
		maxSize: maxSize,
	}
	for range capacity {
		item := factory()
		item.base().Active = false
		p.items = append(p.items, item)
		p.stamps = append(p.stamps, 0)
	}
	return p
}

// Acquire returns the first inactive slot, marked active and not dead.
// The caller must initialize every other field.
func (p *Pool[T]) Acquire() T {
	for i, item := range p.items {
		if !item.base().Active {
			return p.claim(i)
		}
	}

	if p.maxSize > 0 && len(p.items) >= p.maxSize {
		oldest := 0
		for i, s := range p.stamps {
			if s < p.stamps[oldest] {
				oldest = i
			}
		}
		return p.claim(oldest)
	}

	p.items = append(p.items, p.factory())
	p.stamps = append(p.stamps, 0)
	return p.claim(len(p.items) - 1)
}

func (p *Pool[T]) claim(i int) T {
	p.clock++
	p.stamps[i] = p.clock
	e := p.items[i].base()
	e.Active = true
	e.Dead = false
	return p.items[i]
}

// Each calls fn for every active slot.
func (p *Pool[T]) Each(fn func(T)) {
	for _, item := range p.items {
		if item.base().Active {
			fn(item)
		}
	}
}

// ActiveCount returns the number of slots in use.
func (p *Pool[T]) ActiveCount() int {
	n := 0
	for _, item := range p.items {
		if item.base().Active {
			n++
		}
	}
	return n
}

// Len returns the number of allocated slots.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Reset releases every slot.
func (p *Pool[T]) Reset() {
	for i, item := range p.items {
		item.base().Active = false
		p.stamps[i] = 0
	}
}
