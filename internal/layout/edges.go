package layout

// Edges holds a Dimension for each side of a box. Start and End are
// logical: they map to left/right under LTR and right/left under RTL.
type Edges struct {
	Start, End, Top, Bottom Dimension
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(d Dimension) Edges {
	return Edges{Start: d, End: d, Top: d, Bottom: d}
}

// insets are resolved physical edge lengths.
type insets struct {
	left, right, top, bottom float32
}

// resolveRaw resolves each side against base, keeping undefined sides undefined.
// Percentages on every side resolve against the containing width (CSS rule).
func (e Edges) resolveRaw(base float32, dir Direction) insets {
	in := insets{
		left:   e.Start.Resolve(base),
		right:  e.End.Resolve(base),
		top:    e.Top.Resolve(base),
		bottom: e.Bottom.Resolve(base),
	}
	if dir == DirectionRTL {
		in.left, in.right = in.right, in.left
	}
	return in
}

// resolve is resolveRaw with undefined sides treated as zero.
func (e Edges) resolve(base float32, dir Direction) insets {
	in := e.resolveRaw(base, dir)
	return insets{
		left:   orElse(in.left, 0),
		right:  orElse(in.right, 0),
		top:    orElse(in.top, 0),
		bottom: orElse(in.bottom, 0),
	}
}

func (in insets) add(o insets) insets {
	return insets{
		left:   in.left + o.left,
		right:  in.right + o.right,
		top:    in.top + o.top,
		bottom: in.bottom + o.bottom,
	}
}

// horizontal returns the sum of left and right.
func (in insets) horizontal() float32 {
	return in.left + in.right
}

// vertical returns the sum of top and bottom.
func (in insets) vertical() float32 {
	return in.top + in.bottom
}

func (in insets) mainStart(row bool) float32 {
	if row {
		return in.left
	}
	return in.top
}

func (in insets) mainEnd(row bool) float32 {
	if row {
		return in.right
	}
	return in.bottom
}

func (in insets) crossStart(row bool) float32 {
	if row {
		return in.top
	}
	return in.left
}

func (in insets) crossEnd(row bool) float32 {
	if row {
		return in.bottom
	}
	return in.right
}

func (in insets) mainSum(row bool) float32 {
	return in.mainStart(row) + in.mainEnd(row)
}

func (in insets) crossSum(row bool) float32 {
	return in.crossStart(row) + in.crossEnd(row)
}

// resolveBox resolves inset edges: start/end against the box width and
// top/bottom against its height. Undefined sides stay undefined.
func (e Edges) resolveBox(box Size, dir Direction) insets {
	in := insets{
		left:   e.Start.Resolve(box.Width),
		right:  e.End.Resolve(box.Width),
		top:    e.Top.Resolve(box.Height),
		bottom: e.Bottom.Resolve(box.Height),
	}
	if dir == DirectionRTL {
		in.left, in.right = in.right, in.left
	}
	return in
}
