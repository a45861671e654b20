package shard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchema(t *testing.T, text string) StyleSchema {
	t.Helper()
	s, err := ParseStyleSchema(text)
	require.NoError(t, err)
	return s
}

func TestCompileStyle_Defaults(t *testing.T) {
	spec, err := CompileStyle(mustSchema(t, `{}`))
	require.NoError(t, err)

	want := DefaultStyleSpec()
	want.Position = Edges{Start: Undefined(), End: Undefined(), Top: Undefined(), Bottom: Undefined()}
	want.Margin = want.Position
	want.Padding = want.Position
	want.Border = want.Position
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Errorf("default spec mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, DisplayFlex, spec.Display)
	assert.Equal(t, PositionRelative, spec.PositionType)
	assert.Equal(t, DirectionInherit, spec.Direction)
	assert.Equal(t, Row, spec.FlexDirection)
	assert.Equal(t, NoWrap, spec.FlexWrap)
	assert.Equal(t, OverflowVisible, spec.Overflow)
	assert.Equal(t, AlignItemsStretch, spec.AlignItems)
	assert.Equal(t, AlignSelfAuto, spec.AlignSelf)
	assert.Equal(t, AlignContentStretch, spec.AlignContent)
	assert.Equal(t, JustifyFlexStart, spec.JustifyContent)
	assert.Equal(t, float32(0), spec.FlexGrow)
	assert.Equal(t, float32(1), spec.FlexShrink)
	assert.Equal(t, Auto(), spec.FlexBasis)
	assert.Equal(t, Auto(), spec.Size.Width)
	assert.Equal(t, Auto(), spec.MaxSize.Height)
	assert.Nil(t, spec.AspectRatio)
}

func TestCompileStyle_Dimensions(t *testing.T) {
	spec, err := CompileStyle(mustSchema(t, `{
		"margin": {"unit": "points", "value": 4},
		"margin-top": {"unit": "points", "value": 9},
		"padding-end": {"unit": "percent", "value": 25},
		"border": {"unit": "points", "value": 1},
		"start": {"unit": "points", "value": 3},
		"width": {"unit": "points", "value": 100},
		"min-height": {"unit": "auto"},
		"max-width": {"unit": "undefined"},
		"flex-basis": {"unit": "percent", "value": 50}
	}`))
	require.NoError(t, err)

	// Per-side key wins over the shorthand; other sides take the shorthand.
	assert.Equal(t, Points(9), spec.Margin.Top)
	assert.Equal(t, Points(4), spec.Margin.Start)
	assert.Equal(t, Points(4), spec.Margin.End)
	assert.Equal(t, Points(4), spec.Margin.Bottom)

	// No shorthand: absent sides stay Undefined.
	assert.Equal(t, Percent(25), spec.Padding.End)
	assert.Equal(t, Undefined(), spec.Padding.Start)
	assert.Equal(t, Undefined(), spec.Padding.Top)

	assert.Equal(t, Edges{Start: Points(1), End: Points(1), Top: Points(1), Bottom: Points(1)}, spec.Border)

	assert.Equal(t, Points(3), spec.Position.Start)
	assert.Equal(t, Undefined(), spec.Position.End)

	assert.Equal(t, Points(100), spec.Size.Width)
	assert.Equal(t, Auto(), spec.Size.Height)
	assert.Equal(t, Auto(), spec.MinSize.Height)
	assert.Equal(t, Undefined(), spec.MaxSize.Width)
	assert.Equal(t, Percent(50), spec.FlexBasis)
}

func TestCompileStyle_Numbers(t *testing.T) {
	spec, err := CompileStyle(mustSchema(t, `{"flex-grow": 2, "flex-shrink": 0, "aspect-ratio": 1.5}`))
	require.NoError(t, err)
	assert.Equal(t, float32(2), spec.FlexGrow)
	assert.Equal(t, float32(0), spec.FlexShrink)
	require.NotNil(t, spec.AspectRatio)
	assert.Equal(t, float32(1.5), *spec.AspectRatio)

	spec, err = CompileStyle(mustSchema(t, `{"flex-grow": "lots", "aspect-ratio": null}`))
	require.NoError(t, err)
	assert.Equal(t, float32(0), spec.FlexGrow)
	assert.Nil(t, spec.AspectRatio)
}

func TestCompileStyle_EnumLiterals(t *testing.T) {
	type tc struct {
		key    string
		values []string
		get    func(StyleSpec) int
	}

	tests := map[string]tc{
		"display": {
			key:    "display",
			values: []string{"flex", "none"},
			get:    func(s StyleSpec) int { return int(s.Display) },
		},
		"position": {
			key:    "position",
			values: []string{"relative", "absolute"},
			get:    func(s StyleSpec) int { return int(s.PositionType) },
		},
		"direction": {
			key:    "direction",
			values: []string{"inherit", "ltr", "rtl"},
			get:    func(s StyleSpec) int { return int(s.Direction) },
		},
		"flex-direction": {
			key:    "flex-direction",
			values: []string{"row", "column", "row-reverse", "column-reverse"},
			get:    func(s StyleSpec) int { return int(s.FlexDirection) },
		},
		"flex-wrap": {
			key:    "flex-wrap",
			values: []string{"no-wrap", "wrap", "wrap-reverse"},
			get:    func(s StyleSpec) int { return int(s.FlexWrap) },
		},
		"overflow": {
			key:    "overflow",
			values: []string{"visible", "hidden", "scroll"},
			get:    func(s StyleSpec) int { return int(s.Overflow) },
		},
		"align-items": {
			key:    "align-items",
			values: []string{"flex-start", "flex-end", "center", "baseline", "stretch"},
			get:    func(s StyleSpec) int { return int(s.AlignItems) },
		},
		"align-self": {
			key:    "align-self",
			values: []string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"},
			get:    func(s StyleSpec) int { return int(s.AlignSelf) },
		},
		"align-content": {
			key:    "align-content",
			values: []string{"flex-start", "flex-end", "center", "stretch", "space-between", "space-around"},
			get:    func(s StyleSpec) int { return int(s.AlignContent) },
		},
		"justify-content": {
			key:    "justify-content",
			values: []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"},
			get:    func(s StyleSpec) int { return int(s.JustifyContent) },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			seen := map[int]string{}
			for _, literal := range tt.values {
				spec, err := CompileStyle(mustSchema(t, `{"`+tt.key+`": "`+literal+`"}`))
				require.NoError(t, err)
				v := tt.get(spec)
				if prev, dup := seen[v]; dup {
					t.Errorf("%q and %q map to the same value %d", prev, literal, v)
				}
				seen[v] = literal
			}

			def := tt.get(DefaultStyleSpec())
			for _, bad := range []string{`"bogus"`, `7`, `null`} {
				spec, err := CompileStyle(mustSchema(t, `{"`+tt.key+`": `+bad+`}`))
				require.NoError(t, err)
				assert.Equal(t, def, tt.get(spec), "unknown literal %s falls back to the default", bad)
			}
		})
	}
}

func TestCompileStyle_MalformedDimension(t *testing.T) {
	tests := map[string]string{
		"points without value":  `{"width": {"unit": "points"}}`,
		"percent without value": `{"margin-top": {"unit": "percent", "value": "10"}}`,
		"unknown unit":          `{"height": {"unit": "em", "value": 2}}`,
		"missing unit":          `{"flex-basis": {"value": 2}}`,
		"not an object":         `{"padding": 4}`,
	}

	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := CompileStyle(mustSchema(t, text))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestCompileStyle_SchemaUntouched(t *testing.T) {
	schema := mustSchema(t, `{"width": {"unit": "points", "value": 5}}`)
	before := schema.Keys()

	_, err := CompileStyle(schema)
	require.NoError(t, err)
	_, err = CompileStyle(schema)
	require.NoError(t, err)

	assert.Equal(t, before, schema.Keys())
	raw, ok := schema.Lookup("width")
	require.True(t, ok)
	d, err := parseDimension(raw)
	require.NoError(t, err)
	assert.Equal(t, Points(5), d)
}
