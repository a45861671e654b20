package layout

// Display controls whether a node takes part in layout.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayNone
)

// PositionType selects in-flow or absolute positioning.
type PositionType uint8

const (
	PositionRelative PositionType = iota
	PositionAbsolute
)

// Direction is the writing direction. Start and End edges follow it.
type Direction uint8

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out start-to-end
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Children laid out end-to-start
	ColumnReverse                      // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether items run against the axis.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap controls whether items may break into multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Overflow is recorded for hosts; it does not change the solve.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// AlignItems specifies how children are positioned on the cross axis.
type AlignItems uint8

const (
	AlignItemsFlexStart AlignItems = iota
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

// AlignSelf overrides the parent's AlignItems for one child.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

// AlignContent distributes lines of a multi-line container on the cross axis.
type AlignContent uint8

const (
	AlignContentFlexStart AlignContent = iota
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceAround
)

// JustifyContent specifies how children are distributed along the main axis.
type JustifyContent uint8

const (
	JustifyFlexStart    JustifyContent = iota // Pack at start
	JustifyFlexEnd                            // Pack at end
	JustifyCenter                             // Center children
	JustifySpaceBetween                       // Even space between, none at edges
	JustifySpaceAround                        // Even space around each child
	JustifySpaceEvenly                        // Equal space between and at edges
)

// DimensionSize is a width/height pair of Dimensions.
type DimensionSize struct {
	Width  Dimension
	Height Dimension
}

// Style contains all layout properties for a node.
type Style struct {
	Display      Display
	PositionType PositionType
	Direction    Direction

	// Flex container properties
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	Overflow       Overflow
	AlignItems     AlignItems
	AlignContent   AlignContent
	JustifyContent JustifyContent

	// Flex item properties
	AlignSelf  AlignSelf
	FlexGrow   float32 // How much to grow relative to siblings
	FlexShrink float32 // How much to shrink relative to siblings (default 1)
	FlexBasis  Dimension

	// Box model. Position holds the start/end/top/bottom insets.
	Position Edges
	Margin   Edges
	Padding  Edges
	Border   Edges

	// Sizing
	Size    DimensionSize
	MinSize DimensionSize
	MaxSize DimensionSize

	// AspectRatio is width / height; nil means none.
	AspectRatio *float32
}

// DefaultStyle returns a Style with the schema defaults.
func DefaultStyle() Style {
	return Style{
		AlignItems:   AlignItemsStretch,
		AlignContent: AlignContentStretch,
		FlexShrink:   1.0,
		FlexBasis:    Auto(),
		Size:         DimensionSize{Width: Auto(), Height: Auto()},
		MinSize:      DimensionSize{Width: Auto(), Height: Auto()},
		MaxSize:      DimensionSize{Width: Auto(), Height: Auto()},
	}
}

// alignFor resolves the effective cross alignment of child within a container.
func alignFor(container, child *Style) AlignSelf {
	if child.AlignSelf != AlignSelfAuto {
		return child.AlignSelf
	}
	switch container.AlignItems {
	case AlignItemsFlexStart:
		return AlignSelfFlexStart
	case AlignItemsFlexEnd:
		return AlignSelfFlexEnd
	case AlignItemsCenter:
		return AlignSelfCenter
	case AlignItemsBaseline:
		return AlignSelfBaseline
	default:
		return AlignSelfStretch
	}
}

// resolveDirection applies inheritance; the root inherits LTR.
func resolveDirection(d, inherited Direction) Direction {
	if d != DirectionInherit {
		return d
	}
	if inherited == DirectionInherit {
		return DirectionLTR
	}
	return inherited
}
