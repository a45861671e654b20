// Package shard renders JSON view descriptors into host-owned view trees.
//
// A descriptor names a view kind, its props, a flexbox style schema and its
// children. [Render] parses the text and asks a [ViewFactory] to create one
// [View] per node, producing a [Root] that owns the view tree together with a
// structurally identical [LayoutNode] tree. [Root.Measure] solves the layout
// for an available size and pushes a frame to every view, parent first.
//
// Users import this single package for the public API: building, measuring,
// style types and the kind probe.
package shard
