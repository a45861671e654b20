package layout

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAvailable is returned when an available axis is negative or infinite.
	ErrInvalidAvailable = errors.New("layout: available size must be finite and non-negative")

	// ErrInvalidMeasurement is returned when a measure hook reports a negative or non-finite size.
	ErrInvalidMeasurement = errors.New("layout: measure returned an invalid size")
)

// Calculate performs layout on the tree rooted at root within the available
// space. An Undef axis is unconstrained. Every node's Layout is rewritten, with
// locations relative to the parent and values rounded to whole points.
//
// Errors returned by measure hooks are passed through unchanged.
func Calculate(root *Node, available Size) error {
	if root == nil {
		return nil
	}
	if !validAvailable(available.Width) || !validAvailable(available.Height) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidAvailable, available.Width, available.Height)
	}
	if root.Style.Display == DisplayNone {
		hide(root)
		return nil
	}

	st := &root.Style
	dir := resolveDirection(st.Direction, DirectionInherit)
	minSize := resolveSize(st.MinSize, available)
	maxSize := resolveSize(st.MaxSize, available)
	known := withAspectRatio(resolveSize(st.Size, available), st.AspectRatio)
	known = clampSize(known, minSize, maxSize)

	s := newSolver()
	size, err := s.compute(root, known, available, dir, false)
	if err != nil {
		return err
	}
	size = clampSize(size, minSize, maxSize)

	// Second pass: the root's size is settled, position everything beneath it.
	size, err = s.compute(root, size, available, dir, true)
	if err != nil {
		return err
	}
	root.Layout = Layout{Size: size}
	roundLayout(root, 0, 0)
	return nil
}

func validAvailable(v float32) bool {
	return IsUndef(v) || (v >= 0 && !math.IsInf(float64(v), 0))
}

func validLength(v float32) bool {
	return !IsUndef(v) && v >= 0 && !math.IsInf(float64(v), 0)
}

func clampSize(s, minSize, maxSize Size) Size {
	return Size{
		Width:  clamp(s.Width, minSize.Width, maxSize.Width),
		Height: clamp(s.Height, minSize.Height, maxSize.Height),
	}
}

// solver memoizes sizing passes for the duration of one Calculate call.
type solver struct {
	cache map[cacheKey]Size
}

type cacheKey struct {
	node           *Node
	knownW, knownH uint32
	parentW        uint32
	parentH        uint32
	dir            Direction
}

func newSolver() *solver {
	return &solver{cache: make(map[cacheKey]Size)}
}

// keyBits maps every NaN to one value so undefined axes share cache entries.
func keyBits(v float32) uint32 {
	if IsUndef(v) {
		return math.MaxUint32
	}
	return math.Float32bits(v)
}

// compute returns the border-box size of n. known holds the axes the parent
// has already decided; parent is the space n's own percentages and available
// size are derived from. When perform is true the children are positioned.
func (s *solver) compute(n *Node, known, parent Size, dir Direction, perform bool) (Size, error) {
	leaf := len(n.Children) == 0
	key := cacheKey{
		node:    n,
		knownW:  keyBits(known.Width),
		knownH:  keyBits(known.Height),
		parentW: keyBits(parent.Width),
		parentH: keyBits(parent.Height),
		dir:     dir,
	}
	if !perform || leaf {
		if size, ok := s.cache[key]; ok {
			return size, nil
		}
	}

	var size Size
	var err error
	if leaf {
		size, err = s.computeLeaf(n, known, parent, dir)
	} else {
		size, err = s.computeFlex(n, known, parent, dir, perform)
	}
	if err != nil {
		return Size{}, err
	}

	if !perform || leaf {
		s.cache[key] = size
	}
	return size, nil
}

func (s *solver) computeLeaf(n *Node, known, parent Size, dir Direction) (Size, error) {
	if !IsUndef(known.Width) && !IsUndef(known.Height) {
		return known, nil
	}

	if n.Measure != nil {
		measured, err := n.Measure(known)
		if err != nil {
			return Size{}, err
		}
		if !validLength(measured.Width) || !validLength(measured.Height) {
			return Size{}, fmt.Errorf("%w: %gx%g", ErrInvalidMeasurement, measured.Width, measured.Height)
		}
		return Size{
			Width:  orElse(known.Width, measured.Width),
			Height: orElse(known.Height, measured.Height),
		}, nil
	}

	// An empty box is as large as its padding and border.
	pb := n.Style.Padding.resolve(parent.Width, dir).add(n.Style.Border.resolve(parent.Width, dir))
	return Size{
		Width:  orElse(known.Width, pb.horizontal()),
		Height: orElse(known.Height, pb.vertical()),
	}, nil
}
