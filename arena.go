package shard

import (
	"github.com/grindlemire/go-shard/internal/handle"
	"github.com/grindlemire/go-shard/internal/layout"
)

// ViewRef addresses a view in its Root's arena. It goes stale once the Root
// is released.
type ViewRef = handle.Handle

// ViewNode is one node of the view tree: a reference to the host view, the
// kind it was created from, and its children in descriptor order.
type ViewNode struct {
	Ref      ViewRef
	Kind     string
	Children []*ViewNode
}

// Count returns the number of nodes in the subtree.
func (n *ViewNode) Count() int {
	count := 1
	for _, child := range n.Children {
		count += child.Count()
	}
	return count
}

// arena owns every view created for one Root, in creation order.
type arena struct {
	views *handle.Table[View]
	order []ViewRef
}

func newArena() *arena {
	return &arena{views: handle.New[View]()}
}

func (a *arena) insert(v View) ViewRef {
	ref := a.views.Insert(v)
	a.order = append(a.order, ref)
	return ref
}

func (a *arena) get(ref ViewRef) (View, error) {
	return a.views.Get(ref)
}

// releaseAll removes every view, newest first, calling Release on views that
// hold host resources. It returns the number of views released.
func (a *arena) releaseAll() int {
	released := 0
	for i := len(a.order) - 1; i >= 0; i-- {
		v, err := a.views.Remove(a.order[i])
		if err != nil {
			continue
		}
		if r, ok := v.(Releaser); ok {
			r.Release()
		}
		released++
	}
	a.order = nil
	return released
}

// measureHook binds a layout node to its view through the arena, so the
// view is resolved only when the solver asks for a measurement.
func (a *arena) measureHook(ref ViewRef, kind, path string) layout.MeasureFunc {
	return func(c layout.Size) (layout.Size, error) {
		view, err := a.get(ref)
		if err != nil {
			return layout.Size{}, newError(MeasurementError, kind, path, err)
		}
		size, err := view.Measure(Constraints{Width: c.Width, Height: c.Height})
		if err != nil {
			return layout.Size{}, newError(MeasurementError, kind, path, err)
		}
		return size, nil
	}
}
