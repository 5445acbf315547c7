package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/tokendelve/excavator/pkg/dungeon"
)

// DOT converts the dungeon's room-connectivity graph to Graphviz DOT form:
// one node per room (labeled with its center, size, and shape) and one edge
// per tunnel pair. The resulting string can be rendered with [GraphvizSVG]
// or [GraphvizPNG].
func DOT(d *dungeon.Dungeon) string {
	var buf bytes.Buffer
	buf.WriteString("graph dungeon {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("%s (level %d)", d.Type, d.Level))
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for i := 0; i < d.RoomCount; i++ {
		label := fmt.Sprintf("room %d\n(%d, %d)\nsize %d, shape %c",
			i, d.Centers[i].X, d.Centers[i].Y, d.Sizes[i], d.Shapes[i])
		fmt.Fprintf(&buf, "  r%d [label=%q];\n", i, label)
	}

	buf.WriteString("\n")
	for i := 0; i+1 < d.RoomCount; i += 2 {
		fmt.Fprintf(&buf, "  r%d -- r%d;\n", i, i+1)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// GraphvizSVG renders a DOT graph to SVG in-process.
func GraphvizSVG(dot string) ([]byte, error) {
	return renderGraphviz(dot, graphviz.SVG)
}

// GraphvizPNG renders a DOT graph to PNG in-process.
func GraphvizPNG(dot string) ([]byte, error) {
	return renderGraphviz(dot, graphviz.PNG)
}

func renderGraphviz(dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
