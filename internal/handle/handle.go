// Package handle provides generation-checked integer handles for values that
// cross an ownership boundary.
//
// A Handle packs a slot index and the slot's generation. Removing a value bumps
// the generation, so any copy of the old handle is detected as stale instead of
// resolving to whatever reuses the slot.
package handle

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalid is returned for the zero handle or an index never issued.
	ErrInvalid = errors.New("handle: invalid handle")

	// ErrStale is returned for a handle whose value has already been removed.
	ErrStale = errors.New("handle: stale handle")
)

// Handle is an opaque reference into a Table. The zero Handle is never valid.
type Handle uint64

func makeHandle(index, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(index))
}

func (h Handle) index() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(h >> 32)
}

// String formats the handle as index:generation.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.index(), h.generation())
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Table stores values addressed by Handle. It is safe for concurrent use.
type Table[T any] struct {
	mu    sync.Mutex
	slots []slot[T]
	free  []uint32
	live  int
}

// New creates an empty Table.
func New[T any]() *Table[T] {
	return &Table[T]{}
}

// Insert stores v and returns its handle.
func (t *Table[T]) Insert(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var index uint32
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, slot[T]{})
		index = uint32(len(t.slots) - 1)
	}

	s := &t.slots[index]
	s.gen++
	if s.gen == 0 {
		// Generation zero is reserved so the zero Handle never resolves.
		s.gen = 1
	}
	s.value = v
	s.live = true
	t.live++
	return makeHandle(index, s.gen)
}

// Get returns the value for h.
func (t *Table[T]) Get(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.lookup(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// Remove deletes the value for h and returns it. A second Remove of the
// same handle returns ErrStale.
func (t *Table[T]) Remove(h Handle) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	s, err := t.lookup(h)
	if err != nil {
		return zero, err
	}
	v := s.value
	s.value = zero
	s.live = false
	t.free = append(t.free, h.index())
	t.live--
	return v, nil
}

// Len returns the number of live values.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// lookup must be called with t.mu held.
func (t *Table[T]) lookup(h Handle) (*slot[T], error) {
	if h.generation() == 0 || int(h.index()) >= len(t.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, h)
	}
	s := &t.slots[h.index()]
	if !s.live || s.gen != h.generation() {
		return nil, fmt.Errorf("%w: %s", ErrStale, h)
	}
	return s, nil
}
