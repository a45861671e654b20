package shard

import (
	"errors"
	"fmt"
)

// testFactory creates testViews and records what the core does to them.
type testFactory struct {
	created  []*testView
	frames   []*testView
	released []*testView

	// failKinds makes CreateView fail for the listed kinds.
	failKinds map[string]error
	// configure runs on every new view before it is returned.
	configure func(*testView)
}

func newTestFactory() *testFactory {
	return &testFactory{failKinds: map[string]error{}}
}

func (f *testFactory) CreateView(ctx any, kind string) (View, error) {
	if err := f.failKinds[kind]; err != nil {
		return nil, err
	}
	v := &testView{
		kind:    kind,
		ctx:     ctx,
		props:   map[string]string{},
		factory: f,
	}
	if f.configure != nil {
		f.configure(v)
	}
	f.created = append(f.created, v)
	return v, nil
}

// testView reports constraints on a definite axis and 100 otherwise.
type testView struct {
	kind       string
	ctx        any
	props      map[string]string
	propOrder  []string
	frame      Rect
	frameCount int
	children   []*testView
	childCount int
	measures   int
	released   bool
	factory    *testFactory

	measureErr  error
	setPropErr  error
	addChildErr error
	setFrameErr error
}

func (v *testView) SetProp(key string, value PropValue) error {
	if v.setPropErr != nil {
		return v.setPropErr
	}
	v.props[key] = value.String()
	v.propOrder = append(v.propOrder, key)
	return nil
}

func (v *testView) AddChild(child View) error {
	if v.addChildErr != nil {
		return v.addChildErr
	}
	tv, ok := child.(*testView)
	if !ok {
		return fmt.Errorf("unexpected child type %T", child)
	}
	v.children = append(v.children, tv)
	v.childCount++
	return nil
}

func (v *testView) SetFrame(frame Rect) error {
	if v.setFrameErr != nil {
		return v.setFrameErr
	}
	v.frame = frame
	v.frameCount++
	v.factory.frames = append(v.factory.frames, v)
	return nil
}

func (v *testView) Measure(c Constraints) (Size, error) {
	v.measures++
	if v.measureErr != nil {
		return Size{}, v.measureErr
	}
	return Size{Width: c.WidthOr(100), Height: c.HeightOr(100)}, nil
}

func (v *testView) Release() {
	if v.released {
		panic(errors.New("view released twice"))
	}
	v.released = true
	v.factory.released = append(v.factory.released, v)
}
