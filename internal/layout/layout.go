package layout

import "math"

// Layout holds the computed position and size after layout calculation.
// Location is relative to the parent's border box.
type Layout struct {
	Location Point
	Size     Size
}

// Rect converts the layout into an edge rectangle in the parent's coordinate space.
func (l Layout) Rect() Rect {
	return Rect{
		Start:  l.Location.X,
		End:    l.Location.X + l.Size.Width,
		Top:    l.Location.Y,
		Bottom: l.Location.Y + l.Size.Height,
	}
}

// Rect is an axis-aligned rectangle expressed by its four edges.
type Rect struct {
	Start, End, Top, Bottom float32
}

// Width returns End - Start.
func (r Rect) Width() float32 {
	return r.End - r.Start
}

// Height returns Bottom - Top.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{Start: r.Start + dx, End: r.End + dx, Top: r.Top + dy, Bottom: r.Bottom + dy}
}

// Contains returns true if (x, y) is inside the rectangle.
// Points on the start and top edges are inside; points on the end and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.Start && x < r.End && y >= r.Top && y < r.Bottom
}

func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// roundLayout snaps every node to whole points. Edges are rounded in absolute
// space so adjacent siblings never open or close a gap (Yoga-style rounding).
func roundLayout(n *Node, absX, absY float32) {
	x := absX + n.Layout.Location.X
	y := absY + n.Layout.Location.Y
	left, top := round(x), round(y)

	n.Layout.Size.Width = round(x+n.Layout.Size.Width) - left
	n.Layout.Size.Height = round(y+n.Layout.Size.Height) - top
	n.Layout.Location.X = left - round(absX)
	n.Layout.Location.Y = top - round(absY)

	for _, child := range n.Children {
		roundLayout(child, x, y)
	}
}
