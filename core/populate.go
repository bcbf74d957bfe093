package core

// Populator grows a tree level by level from a stream of values.
//
// It keeps a FIFO of pending slots, seeded with a single output slot.
// Every placed node fills the front slot and queues its own right slot,
// then its left slot. Because both slots are always queued, a Populator fed
// only through Place produces a complete binary tree filled in that order;
// a slot stays empty only if it is explicitly discarded with Skip.
//
// The zero Populator is not usable; call NewPopulator.
type Populator[T any] struct {
	root    *Node[T]
	pending []Slot[T]
	placed  int
}

// NewPopulator returns a Populator whose first placed node becomes Root().
func NewPopulator[T any]() *Populator[T] {
	p := &Populator[T]{}
	p.pending = append(p.pending, OutputSlot(&p.root))
	return p
}

// Place creates a node holding value, fills the front pending slot with it,
// queues the new node's right and left slots (in that order) and returns
// the node. Place returns nil once no slot is pending, which cannot happen
// for a Populator built by NewPopulator.
// Complexity: O(1) amortized.
func (p *Populator[T]) Place(value T) *Node[T] {
	if len(p.pending) == 0 {
		return nil
	}
	slot := p.pending[0]

	node := NewNode(value)
	// a fresh Populator's output slot is empty, so Fill cannot fail here
	_ = slot.Fill(node)
	p.placed++

	p.pending = append(p.pending, node.RightSlot(), node.LeftSlot())
	p.pending[0] = Slot[T]{}
	p.pending = p.pending[1:]

	return node
}

// Root returns the first node placed, or nil if nothing was placed yet.
func (p *Populator[T]) Root() *Node[T] { return p.root }

// Pending returns the number of slots waiting to be filled.
func (p *Populator[T]) Pending() int { return len(p.pending) }

// Placed returns the number of nodes created so far.
func (p *Populator[T]) Placed() int { return p.placed }

// Next returns the slot the following Place will fill.
// ok is false when nothing is pending.
func (p *Populator[T]) Next() (slot Slot[T], ok bool) {
	if len(p.pending) == 0 {
		return Slot[T]{}, false
	}
	return p.pending[0], true
}

// Skip discards the front pending slot without filling it, leaving that
// child position empty. Used by generators that build sparse trees.
// It reports whether a slot was discarded.
func (p *Populator[T]) Skip() bool {
	if len(p.pending) == 0 {
		return false
	}
	p.pending[0] = Slot[T]{}
	p.pending = p.pending[1:]
	return true
}
