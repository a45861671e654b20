// Package headless is a host for the render core that draws nothing. Its views
// record every call the core makes and measure content in monospace cells, so
// it serves the CLI, tests, and any host that only needs frames.
package headless

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	shard "github.com/grindlemire/go-shard"
)

// ActionHandler receives on-click dispatches.
type ActionHandler func(action string, value shard.PropValue)

// Context is the host value threaded through CreateView. It routes actions
// from clickable views back to the application.
type Context struct {
	mu      sync.Mutex
	handler ActionHandler
}

// NewContext creates a Context that dispatches actions to handler.
func NewContext(handler ActionHandler) *Context {
	return &Context{handler: handler}
}

// SetActionHandler replaces the action handler. A nil handler drops actions.
func (c *Context) SetActionHandler(handler ActionHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = handler
}

// Dispatch delivers an action to the handler, if any.
func (c *Context) Dispatch(action string, value shard.PropValue) {
	c.mu.Lock()
	handler := c.handler
	c.mu.Unlock()
	if handler != nil {
		handler(action, value)
	}
}

// Impl is the kind-specific half of a View. SetProp sees every prop after the
// base props have been applied and ignores keys it does not know.
type Impl interface {
	SetProp(key string, value shard.PropValue) error
	Measure(c shard.Constraints) (shard.Size, error)
}

// container is implemented by kinds that accept children.
type container interface {
	addChild(child *View) error
}

// releaser is implemented by kinds that own nested resources.
type releaser interface {
	release()
}

// ImplFactory builds the Impl for one new view.
type ImplFactory func(ctx *Context, f *Factory) Impl

// Factory creates headless views by kind. It is safe for concurrent use.
type Factory struct {
	mu    sync.RWMutex
	kinds map[string]ImplFactory
	log   *zap.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger for view creation and nested roots.
func WithLogger(logger *zap.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.log = logger
		}
	}
}

// WithKind registers an extra kind, replacing a default of the same name.
func WithKind(kind string, impl ImplFactory) Option {
	return func(f *Factory) {
		f.kinds[kind] = impl
	}
}

// NewFactory creates a Factory with the flexbox, text, image, solid-color and
// scroll kinds registered.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		kinds: map[string]ImplFactory{
			KindFlexbox:    newFlexbox,
			KindText:       newText,
			KindImage:      newImage,
			KindSolidColor: newSolidColor,
			KindScroll:     newScroll,
		},
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Register adds or replaces a kind.
func (f *Factory) Register(kind string, impl ImplFactory) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kinds[kind] = impl
}

// Kinds returns the registered kinds in sorted order.
func (f *Factory) Kinds() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	kinds := make([]string, 0, len(f.kinds))
	for kind := range f.kinds {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// CreateView implements shard.ViewFactory. ctx must be a *Context or nil.
func (f *Factory) CreateView(ctx any, kind string) (shard.View, error) {
	hctx, err := contextFrom(ctx)
	if err != nil {
		return nil, err
	}

	f.mu.RLock()
	newImpl, ok := f.kinds[kind]
	f.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown view kind %q", kind)
	}

	f.log.Debug("creating view", zap.String("kind", kind))
	return &View{
		kind:  kind,
		ctx:   hctx,
		impl:  newImpl(hctx, f),
		props: map[string]string{},
	}, nil
}

func contextFrom(ctx any) (*Context, error) {
	switch c := ctx.(type) {
	case nil:
		return &Context{}, nil
	case *Context:
		if c == nil {
			return &Context{}, nil
		}
		return c, nil
	default:
		return nil, fmt.Errorf("headless: context must be *headless.Context, got %T", ctx)
	}
}
