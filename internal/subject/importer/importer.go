// Package importer reads bulk parameter history files for replay.
//
// A file is resolved to a Format once, from its suffix, and then read
// through the RowSource iterator so the replay loop in the model never
// branches on the file type.
package importer

import (
	"fmt"
	"strings"
)

// Format tags a supported import file format.
type Format int

const (
	FormatCSV Format = iota + 1
	FormatJSON
)

// String returns the suffix associated with the format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Row holds one imported record's raw fields, keyed by column or
// object field name. Values are whatever the parser produced (strings
// for CSV cells, decoded JSON values for JSON entries); coercion to
// parameter values happens in the model.
type Row map[string]any

// RowSource iterates the rows of an import file in file order.
// Next returns io.EOF after the last row.
type RowSource interface {
	Next() (Row, error)
	Close() error
}

// DetectFormat resolves the format from the file suffix. Anything
// other than .csv or .json is rejected.
func DetectFormat(path string) (Format, error) {
	switch {
	case strings.HasSuffix(path, ".csv"):
		return FormatCSV, nil
	case strings.HasSuffix(path, ".json"):
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported file type %q: use .csv or .json", path)
	}
}

// Open returns a RowSource for the file. JSON files are parsed and
// validated up front; CSV files are streamed row by row.
func Open(path string, format Format) (RowSource, error) {
	switch format {
	case FormatCSV:
		return openCSV(path)
	case FormatJSON:
		return openJSON(path)
	default:
		return nil, fmt.Errorf("unknown import format %d", format)
	}
}
