package shard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptor_Valid(t *testing.T) {
	d, err := ParseDescriptor(`{
		"root": {
			"kind": "flexbox",
			"layout": {"flex-direction": "column", "width": {"unit": "points", "value": 10}},
			"props": {"background-color": "#ff0000", "z": 1, "a": 2},
			"children": [
				{"kind": "text", "layout": {}, "props": {"text": "hi"}},
				{"kind": "image", "layout": {}, "ignored": true}
			]
		},
		"version": 3
	}`)
	require.NoError(t, err)

	assert.Equal(t, "flexbox", d.Kind)
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, []string{"flex-direction", "width"}, d.Layout.Keys())
	assert.Equal(t, 2, d.Layout.Len())

	require.Len(t, d.Props, 3)
	assert.Equal(t, "background-color", d.Props[0].Key)
	assert.Equal(t, `"#ff0000"`, d.Props[0].Value.String())
	assert.Equal(t, "z", d.Props[1].Key)
	assert.Equal(t, "a", d.Props[2].Key)

	require.Len(t, d.Children, 2)
	assert.Equal(t, "text", d.Children[0].Kind)
	assert.Equal(t, `"hi"`, d.Children[0].Props[0].Value.String())
	assert.Equal(t, "image", d.Children[1].Kind)
	assert.Empty(t, d.Children[1].Props)
	assert.Empty(t, d.Children[1].Children)
}

func TestParseDescriptor_NullPropsAndChildren(t *testing.T) {
	d, err := ParseDescriptor(`{"root": {"kind": "x", "layout": {}, "props": null, "children": null}}`)
	require.NoError(t, err)
	assert.Empty(t, d.Props)
	assert.Empty(t, d.Children)
}

func TestParseDescriptor_Errors(t *testing.T) {
	type tc struct {
		text    string
		path    string
		message string
	}

	tests := map[string]tc{
		"not json": {
			text:    `{"root": `,
			message: "malformed descriptor",
		},
		"trailing data": {
			text:    `{"root": {"kind": "x", "layout": {}}} {}`,
			message: "unexpected data after top-level value",
		},
		"top level array": {
			text:    `[1, 2]`,
			message: "must be a JSON object",
		},
		"missing root": {
			text:    `{"kind": "x"}`,
			message: `missing top-level "root"`,
		},
		"host error payload": {
			text:    `{"error": "service unavailable"}`,
			message: "service unavailable",
		},
		"root not object": {
			text:    `{"root": 5}`,
			path:    "root",
			message: "must be an object",
		},
		"missing kind": {
			text:    `{"root": {"layout": {}}}`,
			path:    "root",
			message: `missing "kind"`,
		},
		"kind not string": {
			text:    `{"root": {"kind": 7, "layout": {}}}`,
			path:    "root",
			message: `"kind" must be a string`,
		},
		"missing layout": {
			text:    `{"root": {"kind": "x"}}`,
			path:    "root",
			message: `missing "layout"`,
		},
		"layout not object": {
			text:    `{"root": {"kind": "x", "layout": []}}`,
			path:    "root",
			message: `"layout" must be an object`,
		},
		"props not object": {
			text:    `{"root": {"kind": "x", "layout": {}, "props": [1]}}`,
			path:    "root",
			message: `"props" must be an object`,
		},
		"children not array": {
			text:    `{"root": {"kind": "x", "layout": {}, "children": {}}}`,
			path:    "root",
			message: `"children" must be an array`,
		},
		"nested child missing kind": {
			text: `{"root": {"kind": "x", "layout": {}, "children": [
				{"kind": "y", "layout": {}, "children": [{"kind": "z", "layout": {}}, {"layout": {}}]}
			]}}`,
			path:    "root/children[0]/children[1]",
			message: `missing "kind"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := ParseDescriptor(tt.text)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, ErrSchema)
			assert.Equal(t, SchemaError, KindOf(err))

			var shardErr *Error
			require.ErrorAs(t, err, &shardErr)
			assert.Equal(t, tt.path, shardErr.Path)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseStyleSchema(t *testing.T) {
	s, err := ParseStyleSchema(`{"width": {"unit": "auto"}, "display": "none"}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"width", "display"}, s.Keys())

	raw, ok := s.Lookup("display")
	require.True(t, ok)
	assert.Equal(t, `"none"`, strings.TrimSpace(string(raw)))

	_, ok = s.Lookup("height")
	assert.False(t, ok)

	_, err = ParseStyleSchema(`"flex"`)
	assert.Error(t, err)
}

func TestPropValue(t *testing.T) {
	type tc struct {
		text     string
		expected string
		null     bool
	}

	tests := map[string]tc{
		"string":        {text: `"hello"`, expected: `"hello"`},
		"html kept":     {text: `"<b>&</b>"`, expected: `"<b>&</b>"`},
		"number as is":  {text: `1.50`, expected: `1.50`},
		"sorted object": {text: `{ "b": 1, "a": [ 1, 2 ] }`, expected: `{"a":[1,2],"b":1}`},
		"null":          {text: `null`, expected: `null`, null: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := ParsePropValue(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v.String())
			assert.Equal(t, tt.null, v.IsNull())
		})
	}
}

func TestPropValue_Decode(t *testing.T) {
	v, err := NewPropValue(map[string]any{"action": "open", "value": 2})
	require.NoError(t, err)
	assert.Equal(t, `{"action":"open","value":2}`, v.String())

	var out struct {
		Action string `json:"action"`
		Value  int    `json:"value"`
	}
	require.NoError(t, v.Decode(&out))
	assert.Equal(t, "open", out.Action)
	assert.Equal(t, 2, out.Value)

	_, err = ParsePropValue(`{`)
	assert.Error(t, err)
}
