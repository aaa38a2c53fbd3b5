package instrument

// Table is the raw parse result of one instrument member: the column names
// from the header line, in left-to-right order, and the data rows as string
// tokens. Every row has exactly one token per column.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the values of the named column in row order.
// Column names are not guaranteed unique in the dialect; when duplicated,
// the rightmost occurrence wins, matching how the original tooling keyed
// columns by name.
func (t *Table) Column(name string) ([]string, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
		}
	}
	if idx < 0 {
		return nil, false
	}

	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}
