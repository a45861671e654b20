package headless

import (
	"errors"
	"fmt"

	shard "github.com/grindlemire/go-shard"
)

// ErrNoAction is returned by Click on a view without an on-click prop.
var ErrNoAction = errors.New("headless: view has no on-click action")

// View is a headless host view. It keeps the base props every kind shares,
// the raw props it was given, and everything the core did to it.
type View struct {
	kind string
	ctx  *Context
	impl Impl
	base Base

	props     map[string]string
	propOrder []string
	children  []*View
	frame     shard.Rect
	frames    int
	measures  int
	released  bool
}

// SetProp applies a base prop and then hands the prop to the kind.
func (v *View) SetProp(key string, value shard.PropValue) error {
	if err := v.base.set(key, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if err := v.impl.SetProp(key, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if _, seen := v.props[key]; !seen {
		v.propOrder = append(v.propOrder, key)
	}
	v.props[key] = value.String()
	return nil
}

// AddChild attaches a child. Only container kinds accept children.
func (v *View) AddChild(child shard.View) error {
	c, ok := v.impl.(container)
	if !ok {
		return fmt.Errorf("kind %q does not accept children", v.kind)
	}
	hv, ok := child.(*View)
	if !ok {
		return fmt.Errorf("child is %T, not a headless view", child)
	}
	if err := c.addChild(hv); err != nil {
		return err
	}
	v.children = append(v.children, hv)
	return nil
}

// SetFrame records the frame computed by the core.
func (v *View) SetFrame(frame shard.Rect) error {
	if v.released {
		return errors.New("view has been released")
	}
	v.frame = frame
	v.frames++
	return nil
}

// Measure delegates to the kind.
func (v *View) Measure(c shard.Constraints) (shard.Size, error) {
	v.measures++
	return v.impl.Measure(c)
}

// Release frees nested resources. The core calls it once per view.
func (v *View) Release() {
	if v.released {
		return
	}
	v.released = true
	if r, ok := v.impl.(releaser); ok {
		r.release()
	}
}

// Click dispatches the view's on-click action to its Context.
func (v *View) Click() error {
	if v.base.OnClick == nil {
		return ErrNoAction
	}
	v.ctx.Dispatch(v.base.OnClick.Action, v.base.OnClick.Value)
	return nil
}

// Kind returns the kind the view was created for.
func (v *View) Kind() string {
	return v.kind
}

// Base returns the parsed base props.
func (v *View) Base() Base {
	return v.base
}

// Impl returns the kind-specific state.
func (v *View) Impl() Impl {
	return v.impl
}

// Prop returns the canonical text of a prop as it was applied.
func (v *View) Prop(key string) (string, bool) {
	p, ok := v.props[key]
	return p, ok
}

// PropKeys returns applied prop keys in first-applied order.
func (v *View) PropKeys() []string {
	return append([]string(nil), v.propOrder...)
}

// Children returns attached children in order.
func (v *View) Children() []*View {
	return append([]*View(nil), v.children...)
}

// Frame returns the last frame applied.
func (v *View) Frame() shard.Rect {
	return v.frame
}

// FrameCount returns how many times a frame was applied.
func (v *View) FrameCount() int {
	return v.frames
}

// MeasureCount returns how many times the view was measured.
func (v *View) MeasureCount() int {
	return v.measures
}

// Released reports whether Release was called.
func (v *View) Released() bool {
	return v.released
}
