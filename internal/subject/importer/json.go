package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema describes the only accepted JSON payload shape: an
// array of objects. Field values are left unconstrained because the
// model coerces them (non-numeric falls back to the default).
const payloadSchema = `{
	"type": "array",
	"items": {"type": "object"}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPayloadSchema compiles the payload schema once and caches it.
func compiledPayloadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(payloadSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse payload schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://import-payload.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// jsonSource iterates a fully-parsed JSON array of objects.
type jsonSource struct {
	rows []map[string]any
	next int
}

func openJSON(path string) (*jsonSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse JSON import file: %w", err)
	}

	schema, err := compiledPayloadSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("import file must be a JSON array of objects: %w", err)
	}

	entries := parsed.([]any)
	rows := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.(map[string]any))
	}

	return &jsonSource{rows: rows}, nil
}

func (s *jsonSource) Next() (Row, error) {
	if s.next >= len(s.rows) {
		return nil, io.EOF
	}
	row := Row(s.rows[s.next])
	s.next++
	return row, nil
}

func (s *jsonSource) Close() error {
	return nil
}
