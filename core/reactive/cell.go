// Package reactive provides Cell, an observable value that replays its latest value to new subscribers.
package reactive

import "sync"

// Cell holds a current value and a list of subscribers.
//
// Subscribers are called synchronously, in subscription order, on every Set. A new subscriber
// is called once immediately with the value present at subscription time.
// Observers must not call Set, Update or Subscribe on the cell that is notifying them; Unsubscribe is fine.
type Cell[T any] struct {
	pub sync.Mutex // serializes deliveries

	mu     sync.Mutex
	value  T
	subs   []listener[T]
	nextID uint64
}

type listener[T any] struct {
	id uint64
	fn func(T)
}

// Subscription is an observer registered on a Cell.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe releases the observer permanently; calling it more than once is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

func New[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Value returns a snapshot of the current value.
func (c *Cell[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Subscribe registers fn and immediately calls it with the current value.
func (c *Cell[T]) Subscribe(fn func(T)) *Subscription {
	c.pub.Lock()
	defer c.pub.Unlock()

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, listener[T]{id: id, fn: fn})
	current := c.value
	c.mu.Unlock()

	fn(current)
	return &Subscription{cancel: func() { c.remove(id) }}
}

// Set stores v and notifies every current subscriber before returning.
func (c *Cell[T]) Set(v T) {
	c.pub.Lock()
	defer c.pub.Unlock()
	c.publish(v)
}

// Update computes the next value from the current one without letting another Set in between.
// The next value is stored and published only when fn reports a change.
func (c *Cell[T]) Update(fn func(current T) (next T, changed bool)) bool {
	c.pub.Lock()
	defer c.pub.Unlock()

	next, changed := fn(c.Value())
	if changed {
		c.publish(next)
	}
	return changed
}

// Len returns the number of active subscribers.
func (c *Cell[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// publish expects c.pub to be held.
func (c *Cell[T]) publish(v T) {
	c.mu.Lock()
	c.value = v
	subs := make([]listener[T], len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, l := range subs {
		// skip observers released by an earlier observer of this delivery
		if c.active(l.id) {
			l.fn(v)
		}
	}
}

func (c *Cell[T]) active(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.subs {
		if l.id == id {
			return true
		}
	}
	return false
}

func (c *Cell[T]) remove(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, l := range c.subs {
		if l.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// Derive returns a cell holding fn(src value), recomputed on every transition of src.
// Unsubscribing the returned subscription detaches the derived cell from src.
func Derive[S, T any](src *Cell[S], fn func(S) T) (*Cell[T], *Subscription) {
	var dst *Cell[T]
	sub := src.Subscribe(func(v S) {
		if dst == nil { // replayed value
			dst = New(fn(v))
			return
		}
		dst.Set(fn(v))
	})
	return dst, sub
}
