package eisx

import "github.com/tsawler/eisx/extract"

// ExtractOptions holds configuration for run extraction.
type ExtractOptions struct {
	// Target column map, in output order.
	columns []extract.ColumnMapping
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		columns: extract.DefaultColumns(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{}

	if o.columns != nil {
		newOpts.columns = make([]extract.ColumnMapping, len(o.columns))
		copy(newOpts.columns, o.columns)
	}

	return newOpts
}
