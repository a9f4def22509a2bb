package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dockyard/pkg/dock"
)

// Options configures layout diagram rendering.
type Options struct {
	// Detailed includes split ratios and area rectangles in labels.
	// When false, only structure and tab titles are shown.
	Detailed bool
}

// ToDOT converts a set of containers to Graphviz DOT format.
// The first container is expected to be topmost; ordering only affects
// cluster placement, not structure. The resulting DOT string can be
// rendered with [SVG].
//
// Widget titles come from reg when available, falling back to the raw
// widget ID for unregistered entries.
func ToDOT(containers []*dock.Container, reg *dock.Registry, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  node [fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")

	for i, c := range containers {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph \"cluster_%s\" {\n", c.ID)
		fmt.Fprintf(&buf, "    label=%q;\n", clusterLabel(c, opts))
		if c.Floating {
			buf.WriteString("    style=\"rounded,dashed\";\n")
		} else {
			buf.WriteString("    style=rounded;\n")
		}
		writeTree(&buf, c, reg, i, opts)
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func clusterLabel(c *dock.Container, opts Options) string {
	label := c.ID
	if c.Floating {
		label += " (floating)"
	}
	if opts.Detailed {
		g := c.Geometry
		label += fmt.Sprintf("\n%gx%g at (%g, %g)", g.W, g.H, g.X, g.Y)
	}
	return label
}

func writeTree(buf *bytes.Buffer, c *dock.Container, reg *dock.Registry, ord int, opts Options) {
	t := c.Tree
	if t.Empty() {
		fmt.Fprintf(buf, "    \"%s_empty\" [label=\"(empty)\", shape=plaintext, fontcolor=grey];\n", c.ID)
		return
	}

	var walk func(id dock.NodeID)
	walk = func(id dock.NodeID) {
		name := nodeName(ord, id)
		switch t.Kind(id) {
		case dock.NodeSplitter:
			fmt.Fprintf(buf, "    %q [label=%q, shape=ellipse, style=filled, fillcolor=lightgrey];\n",
				name, splitterLabel(t, id, opts))
			for _, child := range t.Children(id) {
				walk(child)
				fmt.Fprintf(buf, "    %q -> %q;\n", name, nodeName(ord, child))
			}
		case dock.NodeArea:
			fmt.Fprintf(buf, "    %q [label=%q, shape=record, style=\"rounded,filled\", fillcolor=white];\n",
				name, areaLabel(t, id, reg, opts))
		}
	}
	walk(t.Root())
}

func nodeName(ord int, id dock.NodeID) string {
	return fmt.Sprintf("c%d_n%d", ord, id)
}

func splitterLabel(t *dock.Tree, id dock.NodeID, opts Options) string {
	label := t.Orientation(id).String()
	if opts.Detailed {
		parts := make([]string, 0, len(t.Ratios(id)))
		for _, r := range t.Ratios(id) {
			parts = append(parts, fmt.Sprintf("%.2f", r))
		}
		label += "\n" + strings.Join(parts, " / ")
	}
	return label
}

// areaLabel builds a record label with one field per tab. The active tab
// is wrapped in brackets. Record separators in titles are escaped.
func areaLabel(t *dock.Tree, id dock.NodeID, reg *dock.Registry, opts Options) string {
	widgets := t.Widgets(id)
	current := t.CurrentIndex(id)

	fields := make([]string, len(widgets))
	for i, wid := range widgets {
		title := wid
		if reg != nil {
			if w, ok := reg.Widget(wid); ok && w.Title != "" {
				title = w.Title
			}
		}
		if i == current {
			title = "[" + title + "]"
		}
		fields[i] = escapeRecord(title)
	}

	label := strings.Join(fields, " | ")
	if opts.Detailed {
		r := t.Rect(id)
		label += fmt.Sprintf(" | %gx%g", r.W, r.H)
	}
	return label
}

var recordEscaper = strings.NewReplacer(
	"|", `\|`,
	"{", `\{`,
	"}", `\}`,
	"<", `\<`,
	">", `\>`,
)

func escapeRecord(s string) string {
	return recordEscaper.Replace(s)
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so the viewBox starts at
// the origin, which keeps downstream viewers from clipping the diagram.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
