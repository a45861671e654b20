package shard

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

// ViewFactory creates host views. ctx is an opaque host value threaded
// through unchanged from Render/Build.
type ViewFactory interface {
	CreateView(ctx any, kind string) (View, error)
}

// ViewFactoryFunc adapts a function to the ViewFactory interface.
type ViewFactoryFunc func(ctx any, kind string) (View, error)

// CreateView calls f(ctx, kind).
func (f ViewFactoryFunc) CreateView(ctx any, kind string) (View, error) {
	return f(ctx, kind)
}

// View is one host-owned native view. Every method is a fallible side effect
// on the host except Measure, which must be an idempotent query: the solver
// may call it several times per node.
type View interface {
	SetProp(key string, value PropValue) error
	AddChild(child View) error
	SetFrame(frame Rect) error
	Measure(c Constraints) (Size, error)
}

// Releaser is implemented by views that hold host resources. The Root calls
// Release exactly once per view when it is released or when a build fails.
type Releaser interface {
	Release()
}

// Constraints bound a measurement. A NaN axis is unconstrained.
type Constraints struct {
	Width  float32
	Height float32
}

// Unconstrained returns Constraints with both axes open.
func Unconstrained() Constraints {
	nan := float32(math.NaN())
	return Constraints{Width: nan, Height: nan}
}

// Definite reports whether v is a definite length rather than unconstrained.
func Definite(v float32) bool {
	return v == v
}

// WidthOr returns the width, or def when the width is unconstrained.
func (c Constraints) WidthOr(def float32) float32 {
	if Definite(c.Width) {
		return c.Width
	}
	return def
}

// HeightOr returns the height, or def when the height is unconstrained.
func (c Constraints) HeightOr(def float32) float32 {
	if Definite(c.Height) {
		return c.Height
	}
	return def
}

// propJSON produces the canonical compact encoding of prop values: object keys
// sorted, no HTML escaping, numbers kept as written.
var propJSON = jsoniter.Config{
	SortMapKeys: true,
	EscapeHTML:  false,
	UseNumber:   true,
}.Froze()

// PropValue is one JSON prop value held in canonical encoded form.
type PropValue struct {
	raw string
}

// NewPropValue encodes v canonically.
func NewPropValue(v any) (PropValue, error) {
	b, err := propJSON.Marshal(v)
	if err != nil {
		return PropValue{}, err
	}
	return canonicalProp(b)
}

// ParsePropValue canonicalizes one JSON value given as text.
func ParsePropValue(text string) (PropValue, error) {
	return canonicalProp([]byte(text))
}

func canonicalProp(raw []byte) (PropValue, error) {
	var v any
	if err := propJSON.Unmarshal(raw, &v); err != nil {
		return PropValue{}, err
	}
	b, err := propJSON.Marshal(v)
	if err != nil {
		return PropValue{}, err
	}
	return PropValue{raw: string(b)}, nil
}

// String returns the canonical encoding, e.g. a string prop hello is "hello" with quotes.
func (p PropValue) String() string {
	return p.raw
}

// Decode unmarshals the value into out.
func (p PropValue) Decode(out any) error {
	return propJSON.UnmarshalFromString(p.raw, out)
}

// IsNull reports whether the value is JSON null.
func (p PropValue) IsNull() bool {
	return p.raw == "null" || p.raw == ""
}
