package shard

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/grindlemire/go-shard/internal/layout"
)

// Root owns one view tree and its structurally identical layout tree.
// A Root is not safe for concurrent use; distinct Roots share nothing.
type Root struct {
	id         string
	arena      *arena
	viewNode   *ViewNode
	layoutNode *LayoutNode
	size       Size
	released   bool
	log        *zap.Logger
}

// ID returns the identifier used to correlate this Root's log lines.
func (r *Root) ID() string {
	return r.id
}

// Measure solves the layout for the available size and applies a frame to
// every view, parents before children. A NaN axis is unconstrained. Every
// call recomputes and reapplies all frames.
func (r *Root) Measure(available Constraints) error {
	if r.released {
		return newError(MeasurementError, "", "", ErrReleased)
	}

	if err := layout.Calculate(r.layoutNode, Size{Width: available.Width, Height: available.Height}); err != nil {
		var tagged *Error
		if errors.As(err, &tagged) {
			return err
		}
		return newError(LayoutComputationError, r.viewNode.Kind, "root", err)
	}

	if err := r.applyFrames(r.viewNode, r.layoutNode, "root"); err != nil {
		return err
	}
	r.size = r.layoutNode.Layout.Size

	r.log.Debug("measured root",
		zap.Float32("available_width", available.Width),
		zap.Float32("available_height", available.Height),
		zap.Float32("width", r.size.Width),
		zap.Float32("height", r.size.Height),
	)
	return nil
}

func (r *Root) applyFrames(vn *ViewNode, ln *LayoutNode, path string) error {
	view, err := r.arena.get(vn.Ref)
	if err != nil {
		return newError(MeasurementError, vn.Kind, path, err)
	}
	if err := view.SetFrame(ln.Layout.Rect()); err != nil {
		return newError(MeasurementError, vn.Kind, path, fmt.Errorf("set frame: %w", err))
	}
	for i, child := range vn.Children {
		if err := r.applyFrames(child, ln.Children[i], fmt.Sprintf("%s/children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the root size computed by the last successful Measure.
func (r *Root) Size() Size {
	return r.size
}

// RootView returns the top-level view. Ownership stays with the Root.
// It returns nil once the Root is released.
func (r *Root) RootView() View {
	v, err := r.View(r.viewNode.Ref)
	if err != nil {
		return nil
	}
	return v
}

// View resolves a ViewRef from this Root's tree.
func (r *Root) View(ref ViewRef) (View, error) {
	return r.arena.get(ref)
}

// ViewNode returns the root of the view tree.
func (r *Root) ViewNode() *ViewNode {
	return r.viewNode
}

// LayoutNode returns the root of the layout tree.
func (r *Root) LayoutNode() *LayoutNode {
	return r.layoutNode
}

// Walk visits each view/layout node pair in pre-order. Returning false from
// fn skips that node's children.
func (r *Root) Walk(fn func(vn *ViewNode, ln *LayoutNode, depth int) bool) {
	walkPair(r.viewNode, r.layoutNode, 0, fn)
}

func walkPair(vn *ViewNode, ln *LayoutNode, depth int, fn func(*ViewNode, *LayoutNode, int) bool) {
	if !fn(vn, ln, depth) {
		return
	}
	for i, child := range vn.Children {
		walkPair(child, ln.Children[i], depth+1, fn)
	}
}

// Release releases every view, newest first, and invalidates all ViewRefs.
// Releasing twice is a no-op.
func (r *Root) Release() {
	if r.released {
		return
	}
	r.released = true
	released := r.arena.releaseAll()
	r.log.Debug("released root", zap.Int("released_views", released))
}

// Released reports whether Release has been called.
func (r *Root) Released() bool {
	return r.released
}
