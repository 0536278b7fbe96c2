package dev

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	halo2fib "github.com/Mameta29/halo2-fibonacci"
	"github.com/Mameta29/halo2-fibonacci/frontend"
)

// CircuitDotGraph renders the circuit's region tree in Graphviz dot
// format. The graph is derived from the witness-less pass, so it never
// needs real witness values. Dashed edges mark copy constraints between
// regions, and a double octagon marks the instance column.
func CircuitDotGraph(k uint32, circuit frontend.Circuit) (string, error) {
	shape, err := frontend.ShapeOf(k, circuit)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// halo2-fibonacci v%s\n", halo2fib.Version)
	b.WriteString("digraph circuit {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  node [shape=box];\n")
	fmt.Fprintf(&b, "  circuit [label=\"circuit (%d rows)\"];\n", shape.Rows)

	for i, r := range shape.Regions {
		label := r.Name
		switch {
		case r.Rows == 1:
			label = fmt.Sprintf("%s (row %d)", r.Name, r.Start)
		case r.Rows > 1:
			label = fmt.Sprintf("%s (rows %d..%d)", r.Name, r.Start, r.Start+r.Rows-1)
		}
		fmt.Fprintf(&b, "  r%d [label=%q];\n", i, label)
		fmt.Fprintf(&b, "  circuit -> r%d;\n", i)
	}

	hasInstance := false
	seen := make(map[string]bool)
	var edges []string
	for _, cp := range shape.Copies {
		a := regionNode(shape, cp.A)
		bb := regionNode(shape, cp.B)
		if bb == "instance" || a == "instance" {
			hasInstance = true
		}
		edge := fmt.Sprintf("  %s -> %s [style=dashed];\n", a, bb)
		if a == "" || bb == "" || a == bb || seen[edge] {
			continue
		}
		seen[edge] = true
		edges = append(edges, edge)
	}
	if hasInstance {
		b.WriteString("  instance [shape=doubleoctagon, label=\"instance\"];\n")
	}
	for _, edge := range edges {
		b.WriteString(edge)
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// regionNode maps a cell to its dot node: the enclosing region for advice
// cells, the shared instance node otherwise.
func regionNode(shape *frontend.Shape, c frontend.Cell) string {
	if c.Column.Kind == frontend.Instance {
		return "instance"
	}
	for i, r := range shape.Regions {
		if r.Start >= 0 && c.Row >= r.Start && c.Row < r.Start+r.Rows {
			return fmt.Sprintf("r%d", i)
		}
	}
	return ""
}

// CircuitLayout renders an interactive HTML heat map of a circuit's cell
// occupancy: one column per circuit column plus one per selector, one row
// per used trace row, cells colored by the region that touched them.
type CircuitLayout struct{}

// Render draws the layout of the circuit's witness-less pass into w.
func (CircuitLayout) Render(k uint32, circuit frontend.Circuit, w io.Writer) error {
	shape, err := frontend.ShapeOf(k, circuit)
	if err != nil {
		return err
	}

	usedRows := 1
	for _, r := range shape.Regions {
		if r.Start >= 0 && r.Start+r.Rows > usedRows {
			usedRows = r.Start + r.Rows
		}
	}

	cols := make([]string, 0, shape.NbAdvice+shape.NbInstance+shape.NbSelectors)
	for i := 0; i < shape.NbAdvice; i++ {
		cols = append(cols, fmt.Sprintf("advice %d", i))
	}
	for i := 0; i < shape.NbInstance; i++ {
		cols = append(cols, fmt.Sprintf("instance %d", i))
	}
	for i := 0; i < shape.NbSelectors; i++ {
		cols = append(cols, fmt.Sprintf("q %d", i))
	}
	rows := make([]string, usedRows)
	for i := range rows {
		rows[i] = strconv.Itoa(i)
	}

	regionOf := func(row int) int {
		for i, r := range shape.Regions {
			if r.Start >= 0 && row >= r.Start && row < r.Start+r.Rows {
				return i + 1
			}
		}
		return 0
	}

	items := make([]opts.HeatMapData, 0)
	for col, assigned := range shape.AssignedRows {
		for _, row := range assigned {
			items = append(items, opts.HeatMapData{Value: [3]interface{}{col, int(row), regionOf(int(row))}})
		}
	}
	for _, cp := range shape.Copies {
		for _, c := range []frontend.Cell{cp.A, cp.B} {
			if c.Column.Kind != frontend.Instance {
				continue
			}
			x := shape.NbAdvice + c.Column.Index
			items = append(items, opts.HeatMapData{Value: [3]interface{}{x, c.Row, len(shape.Regions) + 1}})
		}
	}
	for sel, active := range shape.Selectors {
		x := shape.NbAdvice + shape.NbInstance + sel
		for _, row := range active {
			items = append(items, opts.HeatMapData{Value: [3]interface{}{x, int(row), regionOf(int(row))}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "circuit layout",
			Subtitle: fmt.Sprintf("%d rows, %d regions, halo2-fibonacci v%s", shape.Rows, len(shape.Regions), halo2fib.Version),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Name: "column"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Name: "row", Data: rows}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(len(shape.Regions) + 1),
			InRange:    &opts.VisualMapInRange{Color: []string{"#50a3ba", "#eac736", "#d94e5d"}},
		}),
	)
	hm.SetXAxis(cols).AddSeries("cells", items)
	return hm.Render(w)
}
