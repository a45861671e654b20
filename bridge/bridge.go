// Package bridge exposes the render core through integer handles, the shape a
// foreign host (JNI, cgo, a plugin RPC) can hold on to. Every handle is checked
// on every call: a freed or foreign handle is an error, never a crash.
package bridge

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	shard "github.com/grindlemire/go-shard"
	"github.com/grindlemire/go-shard/internal/handle"
)

// FactoryHandle refers to a bound view factory.
type FactoryHandle handle.Handle

// ViewHandle refers to a bound host view.
type ViewHandle handle.Handle

// RootHandle refers to a rendered Root.
type RootHandle handle.Handle

// CreateFunc is the host's factory callback. It binds a new view with
// BindView and returns its handle; ownership passes to the Root being built.
type CreateFunc func(ctx any, kind string) (ViewHandle, error)

// ErrBorrowed is returned when a host tries to free a view it does not own.
var ErrBorrowed = errors.New("bridge: view handle is borrowed from a root")

type boundView struct {
	view     shard.View
	borrowed bool
}

type boundRoot struct {
	root *shard.Root
	// view is the borrowed handle handed out by RootView, zero until requested.
	view ViewHandle
}

// Bridge owns the handle tables for one host process.
type Bridge struct {
	factories *handle.Table[CreateFunc]
	views     *handle.Table[*boundView]
	roots     *handle.Table[*boundRoot]
	log       *zap.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger for the bridge and every Root it renders.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bridge) {
		if logger != nil {
			b.log = logger
		}
	}
}

// New creates a Bridge with empty tables.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		factories: handle.New[CreateFunc](),
		views:     handle.New[*boundView](),
		roots:     handle.New[*boundRoot](),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.Named("bridge")
	return b
}

// BindFactory registers a factory callback.
func (b *Bridge) BindFactory(create CreateFunc) FactoryHandle {
	return FactoryHandle(b.factories.Insert(create))
}

// FreeFactory releases a factory handle. Roots already rendered keep working.
func (b *Bridge) FreeFactory(h FactoryHandle) error {
	_, err := b.factories.Remove(handle.Handle(h))
	return err
}

// BindView registers a host view so a CreateFunc can return it.
func (b *Bridge) BindView(v shard.View) ViewHandle {
	return ViewHandle(b.views.Insert(&boundView{view: v}))
}

// FreeView releases a bound view that was never handed to a Root. Borrowed
// handles from RootView are freed with their Root.
func (b *Bridge) FreeView(h ViewHandle) error {
	bv, err := b.views.Get(handle.Handle(h))
	if err != nil {
		return err
	}
	if bv.borrowed {
		return ErrBorrowed
	}
	if _, err := b.views.Remove(handle.Handle(h)); err != nil {
		return err
	}
	if r, ok := bv.view.(shard.Releaser); ok {
		r.Release()
	}
	return nil
}

// View resolves a view handle without affecting ownership.
func (b *Bridge) View(h ViewHandle) (shard.View, error) {
	bv, err := b.views.Get(handle.Handle(h))
	if err != nil {
		return nil, err
	}
	return bv.view, nil
}

// Render builds a Root from descriptor text using the bound factory.
func (b *Bridge) Render(f FactoryHandle, ctx any, text string) (RootHandle, error) {
	create, err := b.factories.Get(handle.Handle(f))
	if err != nil {
		return 0, fmt.Errorf("factory: %w", err)
	}

	root, err := shard.Render(b.adapt(create), ctx, text, shard.WithLogger(b.log))
	if err != nil {
		return 0, err
	}
	h := RootHandle(b.roots.Insert(&boundRoot{root: root}))
	b.log.Debug("rendered root", zap.Stringer("handle", handle.Handle(h)), zap.String("root_id", root.ID()))
	return h, nil
}

// adapt turns a CreateFunc into a ViewFactory. Each view handle it returns is
// consumed: the Root owns the view from then on.
func (b *Bridge) adapt(create CreateFunc) shard.ViewFactory {
	return shard.ViewFactoryFunc(func(ctx any, kind string) (shard.View, error) {
		vh, err := create(ctx, kind)
		if err != nil {
			return nil, err
		}
		bv, err := b.views.Get(handle.Handle(vh))
		if err != nil {
			return nil, fmt.Errorf("factory returned view %s: %w", handle.Handle(vh), err)
		}
		if bv.borrowed {
			return nil, fmt.Errorf("factory returned view %s: %w", handle.Handle(vh), ErrBorrowed)
		}
		if _, err := b.views.Remove(handle.Handle(vh)); err != nil {
			return nil, err
		}
		return bv.view, nil
	})
}

// Measure solves the layout of a Root. NaN on an axis leaves it unconstrained.
func (b *Bridge) Measure(r RootHandle, width, height float32) error {
	br, err := b.roots.Get(handle.Handle(r))
	if err != nil {
		return err
	}
	return br.root.Measure(shard.Constraints{Width: width, Height: height})
}

// Size returns the root size computed by the last Measure.
func (b *Bridge) Size(r RootHandle) (shard.Size, error) {
	br, err := b.roots.Get(handle.Handle(r))
	if err != nil {
		return shard.Size{}, err
	}
	return br.root.Size(), nil
}

// RootView returns a borrowed handle to the Root's top-level view. Repeated
// calls return the same handle; it becomes stale when the Root is freed.
func (b *Bridge) RootView(r RootHandle) (ViewHandle, error) {
	br, err := b.roots.Get(handle.Handle(r))
	if err != nil {
		return 0, err
	}
	if br.view != 0 {
		return br.view, nil
	}
	view := br.root.RootView()
	if view == nil {
		return 0, shard.ErrReleased
	}
	br.view = ViewHandle(b.views.Insert(&boundView{view: view, borrowed: true}))
	return br.view, nil
}

// FreeRoot releases the Root and every view it owns. A second call returns
// handle.ErrStale.
func (b *Bridge) FreeRoot(r RootHandle) error {
	br, err := b.roots.Remove(handle.Handle(r))
	if err != nil {
		return err
	}
	if br.view != 0 {
		if _, err := b.views.Remove(handle.Handle(br.view)); err != nil {
			b.log.Warn("borrowed root view already gone", zap.Error(err))
		}
	}
	br.root.Release()
	return nil
}

// Live reports the number of live factories, views and roots.
func (b *Bridge) Live() (factories, views, roots int) {
	return b.factories.Len(), b.views.Len(), b.roots.Len()
}

// GetKind delivers the top-level kind of text to fn exactly once.
func GetKind(text string, fn func(kind string, ok bool)) {
	shard.GetKind(text, fn)
}

// Kind returns the top-level kind of text, or "" when there is none.
func Kind(text string) string {
	kind, _ := shard.ExtractKind(text)
	return kind
}

// ErrorMessage renders err for a host that only carries strings. A nil error
// is the empty string.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// NaN is the unconstrained axis value for hosts without a float NaN literal.
func NaN() float32 {
	return float32(math.NaN())
}
