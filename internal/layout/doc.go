// Package layout implements a pure-Go flexbox layout engine.
//
// It supports row/column directions (and their reverses), wrapping, justify and
// align modes, padding, margin, border, relative and absolute insets, min/max
// constraints, aspect ratios, percentage and point dimensions, writing direction,
// and leaf measurement through a [MeasureFunc]. Types are re-exported through the
// root shard package for public consumption.
//
// The main entry point is [Calculate], which takes a [Node] tree and an available
// [Size] and writes a parent-relative [Layout] into every node.
package layout
