package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float32
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size represents a width/height pair. Either axis may be Undef.
type Size struct {
	Width, Height float32
}

// UndefinedSize returns a Size with both axes unconstrained.
func UndefinedSize() Size {
	return Size{Width: Undef, Height: Undef}
}

func (s Size) main(row bool) float32 {
	if row {
		return s.Width
	}
	return s.Height
}

func (s Size) cross(row bool) float32 {
	if row {
		return s.Height
	}
	return s.Width
}

// axisSize builds a Size from main/cross values.
func axisSize(row bool, main, cross float32) Size {
	if row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// resolveSize resolves a DimensionSize against the parent's size.
func resolveSize(d DimensionSize, parent Size) Size {
	return Size{
		Width:  d.Width.Resolve(parent.Width),
		Height: d.Height.Resolve(parent.Height),
	}
}

// withAspectRatio fills one undefined axis from the other when a ratio is set.
func withAspectRatio(s Size, ratio *float32) Size {
	if ratio == nil || *ratio <= 0 {
		return s
	}
	switch {
	case !IsUndef(s.Width) && IsUndef(s.Height):
		s.Height = s.Width / *ratio
	case IsUndef(s.Width) && !IsUndef(s.Height):
		s.Width = s.Height * *ratio
	}
	return s
}
