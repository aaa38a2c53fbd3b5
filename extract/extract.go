// Package extract selects and renames the target columns of a parsed
// instrument table and coerces their values to numbers.
package extract

import (
	"math"
	"strconv"

	"github.com/tsawler/eisx/instrument"
)

// ColumnMapping pairs a source column name with its renamed output column.
type ColumnMapping struct {
	From string
	To   string
}

// DefaultColumns returns the shipped target column map for MultiStat AC
// impedance data, in output order.
func DefaultColumns() []ColumnMapping {
	return []ColumnMapping{
		{From: "Freq(Hz)", To: "frequency (Hz)"},
		{From: "Z'(a)", To: "Z_real (Ohm)"},
		{From: "Z''(b)", To: "Z_imag (Ohm)"},
	}
}

// Table is an extracted numeric table: the renamed output columns and one
// row per complete numeric sample, in source order.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Empty reports whether the table holds no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Select extracts the mapped columns from src.
//
// Mapped source columns absent from src are reported in the returned missing
// list and omitted from the output, degrading the column count rather than
// failing. Cell values that do not parse as finite floating-point numbers
// mark their row incomplete, and incomplete rows are dropped entirely: every
// row of the result has a finite value for every present output column.
// Values keep their sign; in particular negative imaginary impedance stays
// negative.
func Select(src instrument.Table, mappings []ColumnMapping) (Table, []string) {
	var out Table
	var missing []string
	var columns [][]string

	for _, m := range mappings {
		values, ok := src.Column(m.From)
		if !ok {
			missing = append(missing, m.From)
			continue
		}
		out.Columns = append(out.Columns, m.To)
		columns = append(columns, values)
	}

	if len(columns) == 0 {
		return out, missing
	}

	for i := range src.Rows {
		row := make([]float64, len(columns))
		complete := true
		for j, values := range columns {
			v, ok := parseCell(values[i])
			if !ok {
				complete = false
				break
			}
			row[j] = v
		}
		if complete {
			out.Rows = append(out.Rows, row)
		}
	}

	return out, missing
}

// parseCell coerces one token to a finite float64.
func parseCell(token string) (float64, bool) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
