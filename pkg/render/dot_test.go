package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/dockyard/pkg/dock"
)

func buildContainers(t *testing.T) ([]*dock.Container, *dock.Registry) {
	t.Helper()
	reg := dock.NewRegistry()
	widgets := map[string]string{
		"editor":  "Editor",
		"outline": "Outline",
		"console": "Console",
		"palette": "Palette",
	}
	for id, title := range widgets {
		if err := reg.Register(dock.NewWidget(id, title, nil)); err != nil {
			t.Fatal(err)
		}
	}

	main := &dock.Container{
		ID:         "main",
		Tree:       dock.NewTree(),
		Geometry:   dock.Rect{W: 800, H: 600},
		Visibility: dock.Shown,
	}
	err := main.Tree.BuildRoot(reg, dock.SplitterSpec(dock.Vertical, []float64{0.7, 0.3},
		dock.AreaSpec(1, "editor", "outline"),
		dock.AreaSpec(0, "console"),
	))
	if err != nil {
		t.Fatal(err)
	}

	float := &dock.Container{
		ID:         "float-1",
		Tree:       dock.NewTree(),
		Geometry:   dock.Rect{X: 900, Y: 50, W: 320, H: 240},
		Visibility: dock.Shown,
		Floating:   true,
	}
	if err := float.Tree.BuildRoot(reg, dock.AreaSpec(0, "palette")); err != nil {
		t.Fatal(err)
	}

	return []*dock.Container{float, main}, reg
}

func TestToDOT(t *testing.T) {
	containers, reg := buildContainers(t)
	dot := ToDOT(containers, reg, Options{})

	for _, want := range []string{
		`subgraph "cluster_main"`,
		`subgraph "cluster_float-1"`,
		"float-1 (floating)",
		"vertical",
		"Editor | [Outline]",
		"[Console]",
		"[Palette]",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	containers, reg := buildContainers(t)
	dot := ToDOT(containers, reg, Options{Detailed: true})

	if !strings.Contains(dot, "0.70 / 0.30") {
		t.Errorf("detailed DOT missing ratios:\n%s", dot)
	}
	if !strings.Contains(dot, "800x600 at (0, 0)") {
		t.Errorf("detailed DOT missing geometry:\n%s", dot)
	}
}

func TestToDOTEmptyTree(t *testing.T) {
	c := &dock.Container{ID: "main", Tree: dock.NewTree(), Visibility: dock.Shown}
	dot := ToDOT([]*dock.Container{c}, nil, Options{})
	if !strings.Contains(dot, "(empty)") {
		t.Errorf("DOT missing empty marker:\n%s", dot)
	}
}

func TestEscapeRecord(t *testing.T) {
	got := escapeRecord("a|b{c}d<e>")
	want := `a\|b\{c\}d\<e\>`
	if got != want {
		t.Errorf("escapeRecord = %q, want %q", got, want)
	}
}
