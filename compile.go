package shard

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/grindlemire/go-shard/internal/layout"
)

// One lookup table per categorical field. Every literal maps to its own value.
var (
	displayValues = map[string]Display{
		"flex": DisplayFlex,
		"none": DisplayNone,
	}
	positionValues = map[string]PositionType{
		"relative": PositionRelative,
		"absolute": PositionAbsolute,
	}
	directionValues = map[string]Direction{
		"inherit": DirectionInherit,
		"ltr":     DirectionLTR,
		"rtl":     DirectionRTL,
	}
	flexDirectionValues = map[string]FlexDirection{
		"row":            Row,
		"column":         Column,
		"row-reverse":    RowReverse,
		"column-reverse": ColumnReverse,
	}
	flexWrapValues = map[string]FlexWrap{
		"no-wrap":      NoWrap,
		"wrap":         Wrap,
		"wrap-reverse": WrapReverse,
	}
	overflowValues = map[string]Overflow{
		"visible": OverflowVisible,
		"hidden":  OverflowHidden,
		"scroll":  OverflowScroll,
	}
	alignItemsValues = map[string]AlignItems{
		"flex-start": AlignItemsFlexStart,
		"flex-end":   AlignItemsFlexEnd,
		"center":     AlignItemsCenter,
		"baseline":   AlignItemsBaseline,
		"stretch":    AlignItemsStretch,
	}
	alignSelfValues = map[string]AlignSelf{
		"auto":       AlignSelfAuto,
		"flex-start": AlignSelfFlexStart,
		"flex-end":   AlignSelfFlexEnd,
		"center":     AlignSelfCenter,
		"baseline":   AlignSelfBaseline,
		"stretch":    AlignSelfStretch,
	}
	alignContentValues = map[string]AlignContent{
		"flex-start":    AlignContentFlexStart,
		"flex-end":      AlignContentFlexEnd,
		"center":        AlignContentCenter,
		"stretch":       AlignContentStretch,
		"space-between": AlignContentSpaceBetween,
		"space-around":  AlignContentSpaceAround,
	}
	justifyContentValues = map[string]JustifyContent{
		"flex-start":    JustifyFlexStart,
		"flex-end":      JustifyFlexEnd,
		"center":        JustifyCenter,
		"space-between": JustifySpaceBetween,
		"space-around":  JustifySpaceAround,
		"space-evenly":  JustifySpaceEvenly,
	}
)

// CompileStyle turns a layout schema into a StyleSpec. Unknown or absent
// categorical values take the field default. Dimensions resolve from the
// per-side key, then the shorthand key, then the class default. A malformed
// Dimension entry is a SchemaError. The schema is never modified.
func CompileStyle(schema StyleSchema) (StyleSpec, error) {
	spec, err := compileStyle(schema)
	if err != nil {
		return StyleSpec{}, newError(SchemaError, "", "", err)
	}
	return spec, nil
}

func compileStyle(schema StyleSchema) (StyleSpec, error) {
	d := layout.DefaultStyle()
	c := styleCompiler{schema: schema}

	d.Display = lookupEnum(schema, "display", displayValues, d.Display)
	d.PositionType = lookupEnum(schema, "position", positionValues, d.PositionType)
	d.Direction = lookupEnum(schema, "direction", directionValues, d.Direction)
	d.FlexDirection = lookupEnum(schema, "flex-direction", flexDirectionValues, d.FlexDirection)
	d.FlexWrap = lookupEnum(schema, "flex-wrap", flexWrapValues, d.FlexWrap)
	d.Overflow = lookupEnum(schema, "overflow", overflowValues, d.Overflow)
	d.AlignItems = lookupEnum(schema, "align-items", alignItemsValues, d.AlignItems)
	d.AlignSelf = lookupEnum(schema, "align-self", alignSelfValues, d.AlignSelf)
	d.AlignContent = lookupEnum(schema, "align-content", alignContentValues, d.AlignContent)
	d.JustifyContent = lookupEnum(schema, "justify-content", justifyContentValues, d.JustifyContent)

	d.Position = c.edges("", "start", "end", "top", "bottom")
	d.Margin = c.edges("margin", "margin-start", "margin-end", "margin-top", "margin-bottom")
	d.Padding = c.edges("padding", "padding-start", "padding-end", "padding-top", "padding-bottom")
	d.Border = c.edges("border", "border-start", "border-end", "border-top", "border-bottom")

	d.FlexGrow = lookupNumber(schema, "flex-grow", d.FlexGrow)
	d.FlexShrink = lookupNumber(schema, "flex-shrink", d.FlexShrink)
	d.FlexBasis = c.dimension(Auto(), "flex-basis")

	d.Size = DimensionSize{Width: c.dimension(Auto(), "width"), Height: c.dimension(Auto(), "height")}
	d.MinSize = DimensionSize{Width: c.dimension(Auto(), "min-width"), Height: c.dimension(Auto(), "min-height")}
	d.MaxSize = DimensionSize{Width: c.dimension(Auto(), "max-width"), Height: c.dimension(Auto(), "max-height")}

	if raw, ok := schema.Lookup("aspect-ratio"); ok {
		if v, ok := decodeNumber(raw); ok {
			d.AspectRatio = &v
		}
	}

	if c.err != nil {
		return StyleSpec{}, c.err
	}
	return d, nil
}

// styleCompiler keeps the first Dimension error so field resolution reads linearly.
type styleCompiler struct {
	schema StyleSchema
	err    error
}

// dimension resolves the first present key in keys, or def when none are present.
func (c *styleCompiler) dimension(def Dimension, keys ...string) Dimension {
	for _, key := range keys {
		if key == "" {
			continue
		}
		raw, ok := c.schema.Lookup(key)
		if !ok {
			continue
		}
		d, err := parseDimension(raw)
		if err != nil {
			if c.err == nil {
				c.err = fmt.Errorf("%q: %w", key, err)
			}
			return def
		}
		return d
	}
	return def
}

func (c *styleCompiler) edges(shorthand, start, end, top, bottom string) Edges {
	return Edges{
		Start:  c.dimension(Undefined(), start, shorthand),
		End:    c.dimension(Undefined(), end, shorthand),
		Top:    c.dimension(Undefined(), top, shorthand),
		Bottom: c.dimension(Undefined(), bottom, shorthand),
	}
}

// parseDimension reads {"unit": ..., "value": ...}.
func parseDimension(raw []byte) (Dimension, error) {
	iter := jsoniter.ParseBytes(descriptorJSON, raw)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return Dimension{}, fmt.Errorf("dimension must be an object with a unit")
	}

	var unit string
	var value float32
	var hasUnit, hasValue bool
	iter.ReadObjectCB(func(it *jsoniter.Iterator, field string) bool {
		switch {
		case field == "unit" && it.WhatIsNext() == jsoniter.StringValue:
			unit = it.ReadString()
			hasUnit = true
		case field == "value" && it.WhatIsNext() == jsoniter.NumberValue:
			value = it.ReadFloat32()
			hasValue = true
		default:
			it.Skip()
		}
		return it.Error == nil
	})
	if iter.Error != nil && iter.Error != io.EOF {
		return Dimension{}, iter.Error
	}
	if !hasUnit {
		return Dimension{}, fmt.Errorf("dimension is missing a string unit")
	}

	switch unit {
	case "auto":
		return Auto(), nil
	case "undefined":
		return Undefined(), nil
	case "points", "percent":
		if !hasValue {
			return Dimension{}, fmt.Errorf("unit %q requires a numeric value", unit)
		}
		if unit == "points" {
			return Points(value), nil
		}
		return Percent(value), nil
	default:
		return Dimension{}, fmt.Errorf("unknown unit %q", unit)
	}
}

func lookupEnum[T any](schema StyleSchema, key string, table map[string]T, def T) T {
	raw, ok := schema.Lookup(key)
	if !ok {
		return def
	}
	iter := jsoniter.ParseBytes(descriptorJSON, raw)
	if iter.WhatIsNext() != jsoniter.StringValue {
		return def
	}
	if v, ok := table[iter.ReadString()]; ok {
		return v
	}
	return def
}

func lookupNumber(schema StyleSchema, key string, def float32) float32 {
	raw, ok := schema.Lookup(key)
	if !ok {
		return def
	}
	if v, ok := decodeNumber(raw); ok {
		return v
	}
	return def
}

func decodeNumber(raw []byte) (float32, bool) {
	iter := jsoniter.ParseBytes(descriptorJSON, raw)
	if iter.WhatIsNext() != jsoniter.NumberValue {
		return 0, false
	}
	v := iter.ReadFloat32()
	if iter.Error != nil && iter.Error != io.EOF {
		return 0, false
	}
	return v, true
}
