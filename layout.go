// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package shard

import "github.com/grindlemire/go-shard/internal/layout"

// StyleSpec is the typed layout configuration compiled from a style schema.
type StyleSpec = layout.Style

// LayoutNode is one node of the layout tree handed to the solver.
type LayoutNode = layout.Node

// LayoutResult holds the computed location and size of a LayoutNode.
type LayoutResult = layout.Layout

// Dimension is a layout length: Undefined, Auto, Points or Percent.
type Dimension = layout.Dimension

// DimensionSize is a width/height pair of Dimensions.
type DimensionSize = layout.DimensionSize

// Edges holds a Dimension for the start, end, top and bottom sides.
type Edges = layout.Edges

// Unit specifies how a Dimension is interpreted.
type Unit = layout.Unit

const (
	UnitUndefined = layout.UnitUndefined
	UnitAuto      = layout.UnitAuto
	UnitPoints    = layout.UnitPoints
	UnitPercent   = layout.UnitPercent
)

// Rect is a frame expressed by its four edges, relative to the parent view.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Display controls whether a node takes part in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// PositionType selects in-flow or absolute positioning.
type PositionType = layout.PositionType

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Direction is the writing direction.
type Direction = layout.Direction

const (
	DirectionInherit = layout.DirectionInherit
	DirectionLTR     = layout.DirectionLTR
	DirectionRTL     = layout.DirectionRTL
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection = layout.FlexDirection

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap controls whether children may break into multiple lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// Overflow is recorded for hosts.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// AlignItems specifies how children are aligned along the cross axis.
type AlignItems = layout.AlignItems

const (
	AlignItemsFlexStart = layout.AlignItemsFlexStart
	AlignItemsFlexEnd   = layout.AlignItemsFlexEnd
	AlignItemsCenter    = layout.AlignItemsCenter
	AlignItemsBaseline  = layout.AlignItemsBaseline
	AlignItemsStretch   = layout.AlignItemsStretch
)

// AlignSelf overrides the parent's AlignItems for one child.
type AlignSelf = layout.AlignSelf

const (
	AlignSelfAuto      = layout.AlignSelfAuto
	AlignSelfFlexStart = layout.AlignSelfFlexStart
	AlignSelfFlexEnd   = layout.AlignSelfFlexEnd
	AlignSelfCenter    = layout.AlignSelfCenter
	AlignSelfBaseline  = layout.AlignSelfBaseline
	AlignSelfStretch   = layout.AlignSelfStretch
)

// AlignContent distributes lines of a wrapping container.
type AlignContent = layout.AlignContent

const (
	AlignContentFlexStart    = layout.AlignContentFlexStart
	AlignContentFlexEnd      = layout.AlignContentFlexEnd
	AlignContentCenter       = layout.AlignContentCenter
	AlignContentStretch      = layout.AlignContentStretch
	AlignContentSpaceBetween = layout.AlignContentSpaceBetween
	AlignContentSpaceAround  = layout.AlignContentSpaceAround
)

// JustifyContent specifies how children are distributed along the main axis.
type JustifyContent = layout.JustifyContent

const (
	JustifyFlexStart    = layout.JustifyFlexStart
	JustifyFlexEnd      = layout.JustifyFlexEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Undefined returns a Dimension with no value.
func Undefined() Dimension {
	return layout.Undefined()
}

// Auto returns a Dimension computed from content/flex.
func Auto() Dimension {
	return layout.Auto()
}

// Points returns an absolute Dimension.
func Points(v float32) Dimension {
	return layout.Points(v)
}

// Percent returns a Dimension relative to the parent, on a 0-100 scale.
func Percent(p float32) Dimension {
	return layout.Percent(p)
}

// DefaultStyleSpec returns a StyleSpec with every field at its default.
func DefaultStyleSpec() StyleSpec {
	return layout.DefaultStyle()
}
