package headless

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shard "github.com/grindlemire/go-shard"
)

func TestWrapText(t *testing.T) {
	type tc struct {
		text     string
		width    int
		expected []string
	}

	tests := map[string]tc{
		"fits": {
			text:     "hello world",
			width:    20,
			expected: []string{"hello world"},
		},
		"breaks at space": {
			text:     "hello world",
			width:    8,
			expected: []string{"hello", "world"},
		},
		"exact fit": {
			text:     "ab cd",
			width:    5,
			expected: []string{"ab cd"},
		},
		"long word is split": {
			text:     "abcdefgh",
			width:    3,
			expected: []string{"abc", "def", "gh"},
		},
		"long word after short": {
			text:     "a bcdef",
			width:    3,
			expected: []string{"a", "bcd", "ef"},
		},
		"newlines kept": {
			text:     "one\n\ntwo",
			width:    10,
			expected: []string{"one", "", "two"},
		},
		"wide runes": {
			text:     "你好世界",
			width:    4,
			expected: []string{"你好", "世界"},
		},
		"collapses runs of spaces": {
			text:     "a    b",
			width:    10,
			expected: []string{"a b"},
		},
		"zero width treated as one": {
			text:     "ab",
			width:    0,
			expected: []string{"a", "b"},
		},
		"empty": {
			text:     "",
			width:    4,
			expected: []string{""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapText(tt.text, tt.width))
		})
	}
}

func TestText_Measure(t *testing.T) {
	nan := float32(math.NaN())

	type tc struct {
		props    map[string]string
		c        shard.Constraints
		expected shard.Size
	}

	tests := map[string]tc{
		"unconstrained single row": {
			props:    map[string]string{"span": `{"text": "hello world"}`},
			c:        shard.Constraints{Width: nan, Height: nan},
			expected: shard.Size{Width: 11, Height: 1},
		},
		"unconstrained keeps newlines": {
			props:    map[string]string{"span": `{"text": "ab\nabcd"}`},
			c:        shard.Constraints{Width: nan, Height: nan},
			expected: shard.Size{Width: 4, Height: 2},
		},
		"definite width wraps": {
			props:    map[string]string{"span": `{"text": "hello world"}`},
			c:        shard.Constraints{Width: 5, Height: nan},
			expected: shard.Size{Width: 5, Height: 2},
		},
		"definite height wins": {
			props:    map[string]string{"span": `{"text": "hello world"}`},
			c:        shard.Constraints{Width: 5, Height: 7},
			expected: shard.Size{Width: 5, Height: 7},
		},
		"max lines": {
			props:    map[string]string{"span": `{"text": "a b c d"}`, "max-lines": `2`},
			c:        shard.Constraints{Width: 1, Height: nan},
			expected: shard.Size{Width: 1, Height: 2},
		},
		"line height multiplies rows": {
			props:    map[string]string{"span": `{"text": "hello world"}`, "line-height": `{"value": 1.5}`},
			c:        shard.Constraints{Width: 5, Height: nan},
			expected: shard.Size{Width: 5, Height: 3},
		},
		"nested spans concatenate": {
			props:    map[string]string{"span": `{"text": [{"text": "foo"}, {"text": [{"text": "bar"}]}]}`},
			c:        shard.Constraints{Width: nan, Height: nan},
			expected: shard.Size{Width: 6, Height: 1},
		},
		"no span": {
			props:    map[string]string{},
			c:        shard.Constraints{Width: nan, Height: nan},
			expected: shard.Size{Width: 0, Height: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			text := newText(nil, nil).(*Text)
			for key, raw := range tt.props {
				v, err := shard.ParsePropValue(raw)
				require.NoError(t, err)
				require.NoError(t, text.SetProp(key, v))
			}

			size, err := text.Measure(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, size)
		})
	}
}

func TestText_SpanProps(t *testing.T) {
	text := newText(nil, nil).(*Text)
	v, err := shard.ParsePropValue(`{
		"text": "hi",
		"font-size": {"unit": "points", "value": 14},
		"font-color": "#f00",
		"font-weight": "bold",
		"font-style": "italic",
		"font-family": "mono"
	}`)
	require.NoError(t, err)
	require.NoError(t, text.SetProp("span", v))

	assert.Equal(t, "hi", text.Span.String())
	assert.Equal(t, float32(14), text.Span.FontSize)
	require.NotNil(t, text.Span.FontColor)
	assert.Equal(t, uint32(0xffff0000), text.Span.FontColor.Default)
	assert.Equal(t, "bold", text.Span.FontWeight)
	assert.Equal(t, "italic", text.Span.FontStyle)
	assert.Equal(t, "mono", text.Span.FontFamily)

	for literal, align := range map[string]TextAlign{`"center"`: AlignCenter, `"end"`: AlignEnd, `"start"`: AlignStart, `7`: AlignStart} {
		v, err := shard.ParsePropValue(literal)
		require.NoError(t, err)
		require.NoError(t, text.SetProp("text-align", v))
		assert.Equal(t, align, text.Align, literal)
	}

	bad, err := shard.ParsePropValue(`{"text": 5}`)
	require.NoError(t, err)
	assert.Error(t, text.SetProp("span", bad))
}
