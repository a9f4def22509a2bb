// Package render visualizes docking layouts as Graphviz diagrams.
//
// # Overview
//
// This package turns the splitter trees of a layout into DOT source and
// renders it to SVG in-process. Each container becomes a cluster, splitters
// become orientation nodes, and tabbed areas become record-style boxes with
// the active tab highlighted.
//
// # Usage
//
// Convert a set of containers to DOT, then render:
//
//	dot := render.ToDOT(mgr.Containers(), mgr.Registry(), render.Options{})
//	svg, err := render.SVG(dot)
//
// The generated DOT can also be saved as-is and processed with external
// Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is required.
package render
