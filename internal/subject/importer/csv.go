package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// csvSource streams rows from a CSV file. The first record is the
// header; each later record becomes a Row keyed by header name
// (case-sensitive, exact match). Columns absent from the header are
// simply absent from every Row, which the model defaults per field.
type csvSource struct {
	file   *os.File
	reader *csv.Reader
	header []string
}

func openCSV(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: zero rows, not an error.
			return &csvSource{file: f, reader: r}, nil
		}
		f.Close()
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	return &csvSource{file: f, reader: r, header: header}, nil
}

func (s *csvSource) Next() (Row, error) {
	if s.header == nil {
		return nil, io.EOF
	}

	record, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read CSV record: %w", err)
	}

	row := make(Row, len(s.header))
	for i, name := range s.header {
		if i < len(record) {
			row[name] = record[i]
		}
	}
	return row, nil
}

func (s *csvSource) Close() error {
	return s.file.Close()
}
