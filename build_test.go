package shard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRender_ViewOfKind(t *testing.T) {
	factory := newTestFactory()
	root, err := Render(factory, "host-context", `{"root": {"kind": "test", "layout": {}}}`)
	require.NoError(t, err)
	require.NoError(t, root.Measure(Unconstrained()))

	view, ok := root.RootView().(*testView)
	require.True(t, ok)
	assert.Equal(t, "test", view.kind)
	assert.Equal(t, "host-context", view.ctx, "context must be threaded through unchanged")
}

func TestRender_FlexDirection(t *testing.T) {
	root, err := Render(newTestFactory(), nil, `{
		"root": {"kind": "test", "layout": {"flex-direction": "column"}}
	}`)
	require.NoError(t, err)
	require.NoError(t, root.Measure(Unconstrained()))

	assert.Equal(t, Column, root.LayoutNode().Style.FlexDirection)
}

func TestRender_Frames(t *testing.T) {
	type tc struct {
		layout   string
		expected Rect
	}

	tests := map[string]tc{
		"explicit size": {
			layout: `{
				"width": {"unit": "points", "value": 100},
				"height": {"unit": "points", "value": 100}
			}`,
			expected: Rect{Start: 0, End: 100, Top: 0, Bottom: 100},
		},
		"intrinsic size": {
			layout:   `{}`,
			expected: Rect{Start: 0, End: 100, Top: 0, Bottom: 100},
		},
		"explicit size overrides intrinsic": {
			layout: `{
				"width": {"unit": "points", "value": 40},
				"height": {"unit": "points", "value": 25}
			}`,
			expected: Rect{Start: 0, End: 40, Top: 0, Bottom: 25},
		},
		"explicit width with intrinsic height": {
			layout:   `{"width": {"unit": "points", "value": 30}}`,
			expected: Rect{Start: 0, End: 30, Top: 0, Bottom: 100},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, err := Render(newTestFactory(), nil, `{"root": {"kind": "test", "layout": `+tt.layout+`}}`)
			require.NoError(t, err)
			require.NoError(t, root.Measure(Unconstrained()))

			view := root.RootView().(*testView)
			assert.Equal(t, tt.expected, view.frame)
		})
	}
}

func TestRender_Children(t *testing.T) {
	factory := newTestFactory()
	root, err := Render(factory, nil, `{
		"root": {
			"kind": "test",
			"layout": {},
			"children": [
				{"kind": "first", "layout": {}},
				{"kind": "second", "layout": {}}
			]
		}
	}`)
	require.NoError(t, err)
	require.NoError(t, root.Measure(Unconstrained()))

	assert.Len(t, root.ViewNode().Children, 2)
	assert.Len(t, root.LayoutNode().Children, 2)

	view := root.RootView().(*testView)
	assert.Equal(t, 2, view.childCount)
	require.Len(t, view.children, 2)
	assert.Equal(t, "first", view.children[0].kind)
	assert.Equal(t, "second", view.children[1].kind)

	// Children are created before their parent.
	var kinds []string
	for _, v := range factory.created {
		kinds = append(kinds, v.kind)
	}
	assert.Equal(t, []string{"first", "second", "test"}, kinds)

	// Children sit side by side in the default row.
	assert.Equal(t, Rect{Start: 0, End: 200, Top: 0, Bottom: 100}, view.frame)
	assert.Equal(t, Rect{Start: 100, End: 200, Top: 0, Bottom: 100}, view.children[1].frame)
}

func TestRender_Props(t *testing.T) {
	root, err := Render(newTestFactory(), nil, `{
		"root": {
			"kind": "test",
			"layout": {},
			"props": {
				"one": "hello",
				"two": "world",
				"count": 3,
				"on-click": {"value": 1, "action": "open"},
				"flags": [true, null]
			}
		}
	}`)
	require.NoError(t, err)

	view := root.RootView().(*testView)
	want := map[string]string{
		"one":      `"hello"`,
		"two":      `"world"`,
		"count":    `3`,
		"on-click": `{"action":"open","value":1}`,
		"flags":    `[true,null]`,
	}
	if diff := cmp.Diff(want, view.props); diff != "" {
		t.Errorf("props mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"one", "two", "count", "on-click", "flags"}, view.propOrder)
}

func TestRender_Isomorphism(t *testing.T) {
	root, err := Render(newTestFactory(), nil, `{
		"root": {"kind": "a", "layout": {}, "children": [
			{"kind": "b", "layout": {}, "children": [
				{"kind": "c", "layout": {}},
				{"kind": "d", "layout": {}},
				{"kind": "e", "layout": {}}
			]},
			{"kind": "f", "layout": {}}
		]}
	}`)
	require.NoError(t, err)

	type shape struct {
		Kind  string
		Arity int
		Depth int
	}
	var views, layouts []shape
	root.Walk(func(vn *ViewNode, ln *LayoutNode, depth int) bool {
		views = append(views, shape{Kind: vn.Kind, Arity: len(vn.Children), Depth: depth})
		layouts = append(layouts, shape{Kind: vn.Kind, Arity: len(ln.Children), Depth: depth})
		return true
	})

	assert.Equal(t, 6, root.ViewNode().Count())
	assert.Equal(t, 6, root.LayoutNode().Count())
	if diff := cmp.Diff(views, layouts); diff != "" {
		t.Errorf("trees differ (-views +layouts):\n%s", diff)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, func() []string {
		var kinds []string
		for _, s := range views {
			kinds = append(kinds, s.Kind)
		}
		return kinds
	}())
}

func TestBuild_Failures(t *testing.T) {
	errHost := errors.New("host refused")

	type tc struct {
		descriptor   string
		setup        func(*testFactory)
		kind         ErrorKind
		viewKind     string
		path         string
		createdCount int
	}

	tests := map[string]tc{
		"view creation": {
			descriptor: `{"root": {"kind": "box", "layout": {}, "children": [
				{"kind": "ok", "layout": {}},
				{"kind": "broken", "layout": {}}
			]}}`,
			setup:        func(f *testFactory) { f.failKinds["broken"] = errHost },
			kind:         ViewCreationError,
			viewKind:     "broken",
			path:         "root/children[1]",
			createdCount: 1,
		},
		"property application": {
			descriptor: `{"root": {"kind": "box", "layout": {}, "props": {"a": 1}}}`,
			setup: func(f *testFactory) {
				f.configure = func(v *testView) { v.setPropErr = errHost }
			},
			kind:         PropertyApplicationError,
			viewKind:     "box",
			path:         "root",
			createdCount: 1,
		},
		"child attach": {
			descriptor: `{"root": {"kind": "leafy", "layout": {}, "children": [
				{"kind": "child", "layout": {}}
			]}}`,
			setup: func(f *testFactory) {
				f.configure = func(v *testView) {
					if v.kind == "leafy" {
						v.addChildErr = errHost
					}
				}
			},
			kind:         ChildAttachError,
			viewKind:     "leafy",
			path:         "root",
			createdCount: 2,
		},
		"malformed dimension": {
			descriptor: `{"root": {"kind": "box", "layout": {}, "children": [
				{"kind": "bad", "layout": {"width": {"unit": "points"}}}
			]}}`,
			setup:        func(*testFactory) {},
			kind:         SchemaError,
			viewKind:     "bad",
			path:         "root/children[0]",
			createdCount: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			factory := newTestFactory()
			tt.setup(factory)

			root, err := Render(factory, nil, tt.descriptor)
			require.Error(t, err)
			assert.Nil(t, root)

			var shardErr *Error
			require.ErrorAs(t, err, &shardErr)
			assert.Equal(t, tt.kind, shardErr.Kind)
			assert.Equal(t, tt.viewKind, shardErr.ViewKind)
			assert.Equal(t, tt.path, shardErr.Path)

			// Every view created before the failure is released, newest first.
			require.Len(t, factory.created, tt.createdCount)
			require.Len(t, factory.released, tt.createdCount)
			for i, v := range factory.released {
				assert.Same(t, factory.created[len(factory.created)-1-i], v)
			}
		})
	}
}

func TestBuild_SchemaErrorBeforeAnyView(t *testing.T) {
	factory := newTestFactory()
	_, err := Render(factory, nil, `{"root": {"kind": "box", "layout": {}, "children": [
		{"kind": "ok", "layout": {}},
		{"layout": {}}
	]}}`)

	require.ErrorIs(t, err, ErrSchema)
	assert.Empty(t, factory.created)
}

func TestBuild_Arguments(t *testing.T) {
	desc, err := ParseDescriptor(`{"root": {"kind": "test", "layout": {}}}`)
	require.NoError(t, err)

	_, err = Build(nil, nil, desc)
	assert.ErrorIs(t, err, ErrViewCreation)

	_, err = Build(newTestFactory(), nil, nil)
	assert.ErrorIs(t, err, ErrSchema)

	_, err = Build(newTestFactory(), nil, desc, WithLogger(nil))
	assert.Error(t, err)
}

func TestBuild_ViewFactoryFunc(t *testing.T) {
	inner := newTestFactory()
	var kinds []string
	factory := ViewFactoryFunc(func(ctx any, kind string) (View, error) {
		kinds = append(kinds, kind)
		return inner.CreateView(ctx, kind)
	})

	_, err := Render(factory, nil, `{"root": {"kind": "test", "layout": {}}}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"test"}, kinds)
}

func TestBuild_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	root, err := Render(newTestFactory(), nil, `{"root": {"kind": "test", "layout": {}}}`, WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, root.Measure(Unconstrained()))
	root.Release()

	built := logs.FilterMessage("built root").All()
	require.Len(t, built, 1)
	fields := built[0].ContextMap()
	assert.Equal(t, root.ID(), fields["root_id"])
	assert.Equal(t, "test", fields["kind"])
	assert.EqualValues(t, 1, fields["nodes"])

	assert.Equal(t, 1, logs.FilterMessage("measured root").Len())
	assert.Equal(t, 1, logs.FilterMessage("released root").Len())
}
