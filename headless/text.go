package headless

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	shard "github.com/grindlemire/go-shard"
)

// TextAlign is the horizontal alignment of text rows.
type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignCenter
	AlignEnd
)

// Span is one styled run of text. Text and Children are exclusive: a span
// holds either a string or nested spans.
type Span struct {
	Text       string
	Children   []Span
	FontSize   float32
	FontColor  *Color
	FontWeight string
	FontStyle  string
	FontFamily string
}

// String returns the span's text with nested spans concatenated.
func (s Span) String() string {
	if len(s.Children) == 0 {
		return s.Text
	}
	var b strings.Builder
	for _, child := range s.Children {
		b.WriteString(child.String())
	}
	return b.String()
}

// Text lays out a span in monospace cells.
type Text struct {
	Span       Span
	Align      TextAlign
	MaxLines   int
	LineHeight float32
}

func newText(*Context, *Factory) Impl {
	return &Text{LineHeight: 1}
}

func (t *Text) SetProp(key string, value shard.PropValue) error {
	switch key {
	case "span":
		if value.IsNull() {
			t.Span = Span{}
			return nil
		}
		span, err := parseSpan(value)
		if err != nil {
			return err
		}
		t.Span = span
	case "text-align":
		s, _ := decodeString(value)
		switch s {
		case "center":
			t.Align = AlignCenter
		case "end":
			t.Align = AlignEnd
		default:
			t.Align = AlignStart
		}
	case "max-lines":
		n, ok := decodeNumber(value)
		if !ok || n < 1 {
			t.MaxLines = 0
			return nil
		}
		t.MaxLines = int(n)
	case "line-height":
		var lh struct {
			Value *float32 `json:"value"`
		}
		if err := value.Decode(&lh); err != nil || lh.Value == nil || *lh.Value <= 0 {
			t.LineHeight = 1
			return nil
		}
		t.LineHeight = *lh.Value
	}
	return nil
}

// Measure wraps at a definite width. Unconstrained text is as wide as its
// longest row.
func (t *Text) Measure(c shard.Constraints) (shard.Size, error) {
	rows := t.Rows(c.Width)
	width := float32(0)
	for _, row := range rows {
		width = max(width, float32(runewidth.StringWidth(row)))
	}
	height := float32(len(rows)) * t.LineHeight
	return shard.Size{Width: c.WidthOr(width), Height: c.HeightOr(height)}, nil
}

// Rows returns the visual rows for a width, or the unwrapped rows when width
// is unconstrained, limited to MaxLines.
func (t *Text) Rows(width float32) []string {
	text := t.Span.String()
	var rows []string
	if shard.Definite(width) {
		rows = wrapText(text, int(width))
	} else {
		rows = strings.Split(text, "\n")
	}
	if t.MaxLines > 0 && len(rows) > t.MaxLines {
		rows = rows[:t.MaxLines]
	}
	return rows
}

// wrapText breaks text into rows of at most width cells, at spaces where it
// can and inside words that are wider than a row.
func wrapText(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var rows []string
	for _, para := range strings.Split(text, "\n") {
		rows = append(rows, wrapParagraph(para, width)...)
	}
	return rows
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	rows := make([]string, 0, 4)
	var row strings.Builder
	col := 0

	flush := func() {
		rows = append(rows, row.String())
		row.Reset()
		col = 0
	}

	for _, word := range words {
		w := runewidth.StringWidth(word)
		switch {
		case col == 0:
		case col+1+w <= width:
			row.WriteByte(' ')
			col++
		default:
			flush()
		}

		if col+w <= width {
			row.WriteString(word)
			col += w
			continue
		}

		for _, r := range word {
			rw := runewidth.RuneWidth(r)
			if col > 0 && col+rw > width {
				flush()
			}
			row.WriteRune(r)
			col += rw
		}
	}
	if row.Len() > 0 {
		flush()
	}
	return rows
}

// parseSpan reads {"text": "..." | [spans], "font-size": ..., ...}.
func parseSpan(value shard.PropValue) (Span, error) {
	var raw struct {
		Text       json.RawMessage `json:"text"`
		FontSize   json.RawMessage `json:"font-size"`
		FontColor  json.RawMessage `json:"font-color"`
		FontWeight string          `json:"font-weight"`
		FontStyle  string          `json:"font-style"`
		FontFamily string          `json:"font-family"`
	}
	if err := value.Decode(&raw); err != nil {
		return Span{}, fmt.Errorf("span must be an object: %w", err)
	}

	span := Span{
		FontWeight: raw.FontWeight,
		FontStyle:  raw.FontStyle,
		FontFamily: raw.FontFamily,
	}

	if len(raw.FontSize) > 0 {
		size, err := shard.ParsePropValue(string(raw.FontSize))
		if err != nil {
			return Span{}, err
		}
		span.FontSize = parseLength(size)
	}
	if len(raw.FontColor) > 0 {
		color, err := shard.ParsePropValue(string(raw.FontColor))
		if err != nil {
			return Span{}, err
		}
		c, err := parseColorProp(color)
		if err != nil {
			return Span{}, fmt.Errorf("font-color: %w", err)
		}
		span.FontColor = &c
	}

	if len(raw.Text) == 0 {
		return span, nil
	}
	text, err := shard.ParsePropValue(string(raw.Text))
	if err != nil {
		return Span{}, err
	}
	if s, ok := decodeString(text); ok {
		span.Text = s
		return span, nil
	}

	var children []json.RawMessage
	if err := text.Decode(&children); err != nil {
		return Span{}, fmt.Errorf("span text must be a string or an array of spans")
	}
	for i, c := range children {
		cv, err := shard.ParsePropValue(string(c))
		if err != nil {
			return Span{}, err
		}
		child, err := parseSpan(cv)
		if err != nil {
			return Span{}, fmt.Errorf("span %d: %w", i, err)
		}
		span.Children = append(span.Children, child)
	}
	return span, nil
}
