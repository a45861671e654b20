package layout

// flexItem tracks a single in-flow child through the flex algorithm.
type flexItem struct {
	node  *Node
	dir   Direction
	align AlignSelf

	size    Size // resolved style size, border box
	minSize Size
	maxSize Size
	margin  insets
	pb      insets // padding + border
	inset   insets // relative offsets, undefined sides stay Undef

	flexBasis   float32
	hypMain     float32
	hypCross    float32
	targetMain  float32
	targetCross float32
	violation   float32
	frozen      bool

	offsetMain  float32
	offsetCross float32
}

// flexLine is one run of items along the main axis.
type flexLine struct {
	items  []*flexItem
	cross  float32
	offset float32
}

func newFlexItem(container *Style, child *Node, inner Size, dir Direction) *flexItem {
	cs := &child.Style
	cdir := resolveDirection(cs.Direction, dir)
	return &flexItem{
		node:    child,
		dir:     cdir,
		align:   alignFor(container, cs),
		size:    withAspectRatio(resolveSize(cs.Size, inner), cs.AspectRatio),
		minSize: resolveSize(cs.MinSize, inner),
		maxSize: resolveSize(cs.MaxSize, inner),
		margin:  cs.Margin.resolve(inner.Width, cdir),
		pb:      cs.Padding.resolve(inner.Width, cdir).add(cs.Border.resolve(inner.Width, cdir)),
		inset:   cs.Position.resolveBox(inner, cdir),
	}
}

// contentSize sizes an item from its content. An unknown cross axis is
// measured freely first and then bounded by limit if it overflows.
func (s *solver) contentSize(it *flexItem, known, parent Size, limit float32, row bool) (Size, error) {
	size, err := s.compute(it.node, known, parent, it.dir, false)
	if err != nil {
		return Size{}, err
	}
	if IsUndef(known.cross(row)) && !IsUndef(limit) && size.cross(row) > limit {
		return s.compute(it.node, axisSize(row, known.main(row), limit), parent, it.dir, false)
	}
	return size, nil
}

// computeFlex lays out a container's children. The phases follow the CSS
// flexbox algorithm: base sizes, line breaking, flexible lengths, cross
// sizes, then main and cross alignment.
func (s *solver) computeFlex(n *Node, known, parent Size, dir Direction, perform bool) (Size, error) {
	st := &n.Style
	row := st.FlexDirection.IsRow()

	border := st.Border.resolve(parent.Width, dir)
	pb := st.Padding.resolve(parent.Width, dir).add(border)
	margin := st.Margin.resolve(parent.Width, dir)
	minSize := resolveSize(st.MinSize, parent)
	maxSize := resolveSize(st.MaxSize, parent)

	inner := Size{
		Width:  sub(known.Width, pb.horizontal()),
		Height: sub(known.Height, pb.vertical()),
	}
	avail := Size{
		Width:  availableInner(known.Width, parent.Width, margin.horizontal(), maxSize.Width, pb.horizontal()),
		Height: availableInner(known.Height, parent.Height, margin.vertical(), maxSize.Height, pb.vertical()),
	}

	items := make([]*flexItem, 0, len(n.Children))
	var absolute []*Node
	for _, child := range n.Children {
		switch {
		case child.Style.Display == DisplayNone:
			if perform {
				hide(child)
			}
		case child.Style.PositionType == PositionAbsolute:
			absolute = append(absolute, child)
		default:
			items = append(items, newFlexItem(st, child, inner, dir))
		}
	}

	innerMain := inner.main(row)
	innerCross := inner.cross(row)
	availMain := avail.main(row)
	availCross := avail.cross(row)

	// Phase 1: flex base size and hypothetical main size of each item
	for _, it := range items {
		cs := &it.node.Style
		limit := sub(orElse(innerCross, availCross), it.margin.crossSum(row))

		if basis := cs.FlexBasis.Resolve(innerMain); !IsUndef(basis) {
			it.flexBasis = maxf(basis, it.pb.mainSum(row))
		} else if main := it.size.main(row); !IsUndef(main) {
			it.flexBasis = maxf(main, it.pb.mainSum(row))
		} else {
			cross := it.size.cross(row)
			if IsUndef(cross) && it.align == AlignSelfStretch {
				cross = sub(innerCross, it.margin.crossSum(row))
			}
			cross = clamp(cross, it.minSize.cross(row), it.maxSize.cross(row))
			childKnown := withAspectRatio(axisSize(row, Undef, cross), cs.AspectRatio)
			size, err := s.contentSize(it, childKnown, avail, limit, row)
			if err != nil {
				return Size{}, err
			}
			it.flexBasis = size.main(row)
		}
		it.hypMain = nonNegative(clamp(it.flexBasis, it.minSize.main(row), it.maxSize.main(row)))
	}

	// Phase 2: break items into lines
	lines := collectLines(items, st.FlexWrap != NoWrap, availMain, row)

	// Phase 3: container main size. An open main axis fits its longest line,
	// bounded by the available space.
	mainSize := innerMain
	if IsUndef(mainSize) {
		var longest float32
		for _, line := range lines {
			var sum float32
			for _, it := range line.items {
				sum += it.hypMain + it.margin.mainSum(row)
			}
			longest = maxf(longest, sum)
		}
		mainSize = maybeMin(longest, availMain)
		mainSize = nonNegative(clamp(mainSize+pb.mainSum(row), minSize.main(row), maxSize.main(row)) - pb.mainSum(row))
	}

	// Phase 4: resolve flexible lengths
	for _, line := range lines {
		resolveFlexibleLengths(line.items, mainSize, row)
	}

	// Phase 5: hypothetical cross size of each item
	childParent := axisSize(row, mainSize, orElse(innerCross, availCross))
	for _, it := range items {
		limit := sub(orElse(innerCross, availCross), it.margin.crossSum(row))
		cross := clamp(it.size.cross(row), it.minSize.cross(row), it.maxSize.cross(row))
		size, err := s.contentSize(it, axisSize(row, it.targetMain, cross), childParent, limit, row)
		if err != nil {
			return Size{}, err
		}
		it.hypCross = nonNegative(clamp(size.cross(row), it.minSize.cross(row), it.maxSize.cross(row)))
	}

	// Phase 6: line cross sizes and container cross size
	var linesCross float32
	for _, line := range lines {
		for _, it := range line.items {
			line.cross = maxf(line.cross, it.hypCross+it.margin.crossSum(row))
		}
		linesCross += line.cross
	}

	crossSize := innerCross
	if IsUndef(crossSize) {
		crossSize = nonNegative(clamp(linesCross+pb.crossSum(row), minSize.cross(row), maxSize.cross(row)) - pb.crossSum(row))
	}

	if st.FlexWrap == NoWrap && len(lines) == 1 {
		lines[0].cross = crossSize
		linesCross = crossSize
	} else if st.AlignContent == AlignContentStretch && crossSize > linesCross && len(lines) > 0 {
		extra := (crossSize - linesCross) / float32(len(lines))
		for _, line := range lines {
			line.cross += extra
		}
		linesCross = crossSize
	}

	// Phase 7: stretch items to their line
	for _, line := range lines {
		for _, it := range line.items {
			it.targetCross = it.hypCross
			if it.align == AlignSelfStretch && IsUndef(it.size.cross(row)) {
				it.targetCross = nonNegative(clamp(line.cross-it.margin.crossSum(row), it.minSize.cross(row), it.maxSize.cross(row)))
			}
		}
	}

	size := axisSize(row, mainSize+pb.mainSum(row), crossSize+pb.crossSum(row))
	size = Size{
		Width:  orElse(known.Width, size.Width),
		Height: orElse(known.Height, size.Height),
	}
	if !perform {
		return size, nil
	}

	mirrorMain := st.FlexDirection.IsReverse() != (row && dir == DirectionRTL)
	mirrorCross := (st.FlexWrap == WrapReverse) != (!row && dir == DirectionRTL)

	// Phase 8: main axis alignment
	for _, line := range lines {
		var used float32
		for _, it := range line.items {
			used += it.targetMain + it.margin.mainSum(row)
		}
		lead, between := justifySpacing(st.JustifyContent, mainSize-used, len(line.items))
		pos := lead
		for _, it := range line.items {
			leadM, trailM := it.margin.mainStart(row), it.margin.mainEnd(row)
			if mirrorMain {
				leadM, trailM = trailM, leadM
			}
			it.offsetMain = pos + leadM
			pos += leadM + it.targetMain + trailM + between
		}
	}

	// Phase 9: cross axis alignment of lines, then of items within each line
	lead, between := alignContentSpacing(st.AlignContent, crossSize-linesCross, len(lines))
	pos := lead
	for _, line := range lines {
		line.offset = pos
		pos += line.cross + between

		for _, it := range line.items {
			leadC, trailC := it.margin.crossStart(row), it.margin.crossEnd(row)
			if mirrorCross {
				leadC, trailC = trailC, leadC
			}
			free := line.cross - it.targetCross - leadC - trailC
			var off float32
			switch it.align {
			case AlignSelfFlexEnd:
				off = free
			case AlignSelfCenter:
				off = free / 2
			}
			it.offsetCross = line.offset + off + leadC
		}
	}

	// Phase 10: position and lay out each item
	for _, it := range items {
		main := it.offsetMain
		if mirrorMain {
			main = mainSize - it.offsetMain - it.targetMain
		}
		cross := it.offsetCross
		if mirrorCross {
			cross = crossSize - it.offsetCross - it.targetCross
		}
		loc := axisSizePoint(row, pb.mainStart(row)+main, pb.crossStart(row)+cross)
		loc = loc.Add(relativeOffset(it.inset))

		childSize, err := s.compute(it.node, axisSize(row, it.targetMain, it.targetCross), childParent, it.dir, true)
		if err != nil {
			return Size{}, err
		}
		it.node.Layout = Layout{Location: loc, Size: childSize}
	}

	// Phase 11: absolutely positioned children
	for _, child := range absolute {
		if err := s.layoutAbsolute(st, child, size, border, pb, dir, mirrorMain, mirrorCross); err != nil {
			return Size{}, err
		}
	}

	return size, nil
}

// availableInner is the content-box space a node may occupy on one axis.
func availableInner(known, parent, margin, maxLen, pb float32) float32 {
	v := known
	if IsUndef(v) {
		v = maybeMin(sub(parent, margin), maxLen)
	}
	if IsUndef(v) {
		return Undef
	}
	return nonNegative(v - pb)
}

func relativeOffset(in insets) Point {
	var p Point
	switch {
	case !IsUndef(in.left):
		p.X = in.left
	case !IsUndef(in.right):
		p.X = -in.right
	}
	switch {
	case !IsUndef(in.top):
		p.Y = in.top
	case !IsUndef(in.bottom):
		p.Y = -in.bottom
	}
	return p
}

func collectLines(items []*flexItem, wrap bool, availMain float32, row bool) []*flexLine {
	if len(items) == 0 {
		return nil
	}
	if !wrap || IsUndef(availMain) {
		return []*flexLine{{items: items}}
	}

	var lines []*flexLine
	current := &flexLine{}
	var length float32
	for _, it := range items {
		outer := it.hypMain + it.margin.mainSum(row)
		if len(current.items) > 0 && length+outer > availMain {
			lines = append(lines, current)
			current = &flexLine{}
			length = 0
		}
		current.items = append(current.items, it)
		length += outer
	}
	return append(lines, current)
}

// resolveFlexibleLengths distributes free space along one line, freezing items
// that hit their min/max constraints until the distribution settles.
func resolveFlexibleLengths(line []*flexItem, mainSize float32, row bool) {
	var hypothetical float32
	for _, it := range line {
		hypothetical += it.hypMain + it.margin.mainSum(row)
	}
	growing := hypothetical < mainSize

	for _, it := range line {
		it.targetMain = it.hypMain
		factor := it.node.Style.FlexShrink
		if growing {
			factor = it.node.Style.FlexGrow
		}
		it.frozen = factor <= 0 ||
			(growing && it.flexBasis > it.hypMain) ||
			(!growing && it.flexBasis < it.hypMain)
	}

	initialFree := mainSize - usedSpace(line, row)

	for {
		var unfrozen []*flexItem
		for _, it := range line {
			if !it.frozen {
				unfrozen = append(unfrozen, it)
			}
		}
		if len(unfrozen) == 0 {
			return
		}

		free := mainSize - usedSpace(line, row)
		var sumGrow, sumShrink, sumScaled float32
		for _, it := range unfrozen {
			sumGrow += it.node.Style.FlexGrow
			sumShrink += it.node.Style.FlexShrink
			sumScaled += (it.flexBasis - it.pb.mainSum(row)) * it.node.Style.FlexShrink
		}

		// Factors summing below one only take their share of the space.
		sumFactors := sumShrink
		if growing {
			sumFactors = sumGrow
		}
		if sumFactors < 1 {
			if scaled := initialFree * sumFactors; absf(scaled) < absf(free) {
				free = scaled
			}
		}

		var totalViolation float32
		for _, it := range unfrozen {
			target := it.flexBasis
			switch {
			case free == 0:
			case growing && sumGrow > 0:
				target += free * it.node.Style.FlexGrow / sumGrow
			case !growing && sumScaled > 0:
				scaled := (it.flexBasis - it.pb.mainSum(row)) * it.node.Style.FlexShrink
				target += free * scaled / sumScaled
			}

			clamped := clamp(target, it.minSize.main(row), it.maxSize.main(row))
			clamped = maxf(clamped, it.pb.mainSum(row))
			it.violation = clamped - target
			it.targetMain = clamped
			totalViolation += it.violation
		}

		for _, it := range unfrozen {
			switch {
			case totalViolation == 0:
				it.frozen = true
			case totalViolation > 0 && it.violation > 0:
				it.frozen = true
			case totalViolation < 0 && it.violation < 0:
				it.frozen = true
			}
		}
	}
}

// usedSpace sums frozen targets and unfrozen base sizes, with margins.
func usedSpace(line []*flexItem, row bool) float32 {
	var used float32
	for _, it := range line {
		used += it.margin.mainSum(row)
		if it.frozen {
			used += it.targetMain
		} else {
			used += it.flexBasis
		}
	}
	return used
}

// justifySpacing returns the leading offset and the gap between items.
// Distributed modes fall back to packing when there is no positive free space.
func justifySpacing(j JustifyContent, free float32, count int) (lead, between float32) {
	if count == 0 {
		return 0, 0
	}
	switch j {
	case JustifyFlexEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if free <= 0 || count < 2 {
			return 0, 0
		}
		return 0, free / float32(count-1)
	case JustifySpaceAround:
		if free <= 0 {
			return free / 2, 0
		}
		gap := free / float32(count)
		return gap / 2, gap
	case JustifySpaceEvenly:
		if free <= 0 {
			return free / 2, 0
		}
		gap := free / float32(count+1)
		return gap, gap
	default:
		return 0, 0
	}
}

// alignContentSpacing positions lines within the container's cross axis.
// Stretch has already grown the lines, so it packs like flex-start.
func alignContentSpacing(a AlignContent, free float32, count int) (lead, between float32) {
	if count == 0 {
		return 0, 0
	}
	switch a {
	case AlignContentFlexEnd:
		return free, 0
	case AlignContentCenter:
		return free / 2, 0
	case AlignContentSpaceBetween:
		if free <= 0 || count < 2 {
			return 0, 0
		}
		return 0, free / float32(count-1)
	case AlignContentSpaceAround:
		if free <= 0 {
			return free / 2, 0
		}
		gap := free / float32(count)
		return gap / 2, gap
	default:
		return 0, 0
	}
}

// layoutAbsolute sizes and positions an out-of-flow child against the
// container's padding box.
func (s *solver) layoutAbsolute(container *Style, child *Node, outer Size, border, pb insets, dir Direction, mirrorMain, mirrorCross bool) error {
	cs := &child.Style
	cdir := resolveDirection(cs.Direction, dir)
	row := container.FlexDirection.IsRow()

	box := Size{Width: outer.Width - border.horizontal(), Height: outer.Height - border.vertical()}
	margin := cs.Margin.resolve(box.Width, cdir)
	pos := cs.Position.resolveBox(box, cdir)

	known := resolveSize(cs.Size, box)
	if IsUndef(known.Width) && !IsUndef(pos.left) && !IsUndef(pos.right) {
		known.Width = nonNegative(box.Width - pos.left - pos.right - margin.horizontal())
	}
	if IsUndef(known.Height) && !IsUndef(pos.top) && !IsUndef(pos.bottom) {
		known.Height = nonNegative(box.Height - pos.top - pos.bottom - margin.vertical())
	}
	known = withAspectRatio(known, cs.AspectRatio)

	minSize := resolveSize(cs.MinSize, box)
	maxSize := resolveSize(cs.MaxSize, box)
	known = clampSize(known, minSize, maxSize)

	size, err := s.compute(child, known, box, cdir, false)
	if err != nil {
		return err
	}
	size = clampSize(size, minSize, maxSize)
	if size, err = s.compute(child, size, box, cdir, true); err != nil {
		return err
	}

	// Static position from justify-content and the child's cross alignment.
	innerMain := outer.main(row) - pb.mainSum(row)
	innerCross := outer.cross(row) - pb.crossSum(row)
	freeMain := innerMain - size.main(row) - margin.mainSum(row)
	freeCross := innerCross - size.cross(row) - margin.crossSum(row)

	var offMain, offCross float32
	switch container.JustifyContent {
	case JustifyFlexEnd:
		offMain = freeMain
	case JustifyCenter, JustifySpaceAround, JustifySpaceEvenly:
		offMain = freeMain / 2
	}
	switch alignFor(container, cs) {
	case AlignSelfFlexEnd:
		offCross = freeCross
	case AlignSelfCenter:
		offCross = freeCross / 2
	}
	if mirrorMain {
		offMain = freeMain - offMain
	}
	if mirrorCross {
		offCross = freeCross - offCross
	}
	static := axisSizePoint(row,
		pb.mainStart(row)+margin.mainStart(row)+offMain,
		pb.crossStart(row)+margin.crossStart(row)+offCross,
	)

	loc := static
	switch {
	case !IsUndef(pos.left):
		loc.X = border.left + pos.left + margin.left
	case !IsUndef(pos.right):
		loc.X = outer.Width - border.right - pos.right - margin.right - size.Width
	}
	switch {
	case !IsUndef(pos.top):
		loc.Y = border.top + pos.top + margin.top
	case !IsUndef(pos.bottom):
		loc.Y = outer.Height - border.bottom - pos.bottom - margin.bottom - size.Height
	}

	child.Layout = Layout{Location: loc, Size: size}
	return nil
}

func axisSizePoint(row bool, main, cross float32) Point {
	if row {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
