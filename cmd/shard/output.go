package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	jsoniter "github.com/json-iterator/go"

	shard "github.com/grindlemire/go-shard"
	"github.com/grindlemire/go-shard/headless"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type frameJSON struct {
	Start  float32 `json:"start"`
	End    float32 `json:"end"`
	Top    float32 `json:"top"`
	Bottom float32 `json:"bottom"`
}

type nodeJSON struct {
	Kind     string                         `json:"kind"`
	Frame    frameJSON                      `json:"frame"`
	Props    map[string]jsoniter.RawMessage `json:"props,omitempty"`
	Children []nodeJSON                     `json:"children,omitempty"`
}

func writeJSON(w io.Writer, root *shard.Root) error {
	out, err := toJSON(root, root.ViewNode())
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode view tree: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func toJSON(root *shard.Root, vn *shard.ViewNode) (nodeJSON, error) {
	view, err := headlessView(root, vn)
	if err != nil {
		return nodeJSON{}, err
	}

	f := view.Frame()
	out := nodeJSON{
		Kind:  vn.Kind,
		Frame: frameJSON{Start: f.Start, End: f.End, Top: f.Top, Bottom: f.Bottom},
	}
	for _, key := range view.PropKeys() {
		raw, _ := view.Prop(key)
		if out.Props == nil {
			out.Props = make(map[string]jsoniter.RawMessage)
		}
		out.Props[key] = jsoniter.RawMessage(raw)
	}
	for _, child := range vn.Children {
		c, err := toJSON(root, child)
		if err != nil {
			return nodeJSON{}, err
		}
		out.Children = append(out.Children, c)
	}
	return out, nil
}

var (
	kindStyle  = lipgloss.NewStyle().Bold(true)
	frameStyle = lipgloss.NewStyle().Faint(true)
	textStyle  = lipgloss.NewStyle().Italic(true)
)

func writeTree(w io.Writer, root *shard.Root) error {
	t, err := toTree(root, root.ViewNode())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, t.Enumerator(tree.RoundedEnumerator).String())
	return err
}

func toTree(root *shard.Root, vn *shard.ViewNode) (*tree.Tree, error) {
	view, err := headlessView(root, vn)
	if err != nil {
		return nil, err
	}

	t := tree.Root(label(view))
	for _, child := range vn.Children {
		c, err := toTree(root, child)
		if err != nil {
			return nil, err
		}
		t.Child(c)
	}
	return t, nil
}

// label renders "kind [start,top width×height]" with a swatch of the
// background color and the text of text views.
func label(v *headless.View) string {
	f := v.Frame()
	s := kindStyle.Render(v.Kind()) + " " + frameStyle.Render(fmt.Sprintf("[%s,%s %s×%s]",
		num(f.Start), num(f.Top), num(f.Width()), num(f.Height())))

	if bg := v.Base().BackgroundColor; bg.Default != 0 {
		s += " " + lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex())).Render("  ") + " " + bg.Hex()
	}
	if text, ok := v.Impl().(*headless.Text); ok {
		s += " " + textStyle.Render(strconv.Quote(text.Span.String()))
	}
	return s
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func headlessView(root *shard.Root, vn *shard.ViewNode) (*headless.View, error) {
	view, err := root.View(vn.Ref)
	if err != nil {
		return nil, err
	}
	hv, ok := view.(*headless.View)
	if !ok {
		return nil, fmt.Errorf("view %s is %T, not a headless view", vn.Kind, view)
	}
	return hv, nil
}
