package bench

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Format selects how reports are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatPlain Format = "plain"
)

// ParseFormat converts a string to a report format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatPlain:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q, want %q or %q", s, FormatTable, FormatPlain)
}

// RenderOverflow writes the overflow comparisons to w.
func RenderOverflow(w io.Writer, cases []Case, format Format) error {
	if format == FormatPlain {
		for _, c := range cases {
			if _, err := fmt.Fprintf(w, "%v [%v]: exact %v, fixed %v%v\n", c.Name, c.Kind, c.Exact, c.Fixed, wrappedMark(c.Wrapped)); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, []string{c.Name, string(c.Kind), c.Exact, c.Fixed + wrappedMark(c.Wrapped)})
	}
	return renderTable(w, []any{"Expression", "Type", "Exact", "Fixed"}, rows)
}

// RenderTiming writes the timing results to w.
// The table has one row per operation and operand set, and one column
// per representation. Results that differ from the BigInt result are
// marked as wrapped.
func RenderTiming(w io.Writer, results []Result, format Format) error {
	if format == FormatPlain {
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%v %v %v: %v\n", r.Op, r.Set, r.Kind, cell(r)); err != nil {
				return err
			}
		}
		return nil
	}

	type key struct {
		op  Op
		set string
	}
	var order []key
	cells := make(map[key]map[Kind]string)
	for _, r := range results {
		k := key{op: r.Op, set: r.Set}
		if cells[k] == nil {
			cells[k] = make(map[Kind]string, len(Kinds))
			order = append(order, k)
		}
		cells[k][r.Kind] = cell(r)
	}

	header := []any{"Operation", "Operands"}
	for _, kind := range Kinds {
		header = append(header, string(kind))
	}
	rows := make([][]string, 0, len(order))
	for _, k := range order {
		row := []string{string(k.op), k.set}
		for _, kind := range Kinds {
			row = append(row, cells[k][kind])
		}
		rows = append(rows, row)
	}
	return renderTable(w, header, rows)
}

func renderTable(w io.Writer, header []any, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header...)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func cell(r Result) string {
	if r.Err != nil {
		return "n/a"
	}
	return r.PerOp.String() + wrappedMark(!r.Correct)
}

func wrappedMark(wrapped bool) string {
	if wrapped {
		return " (wrapped)"
	}
	return ""
}
