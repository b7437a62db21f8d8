package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ParamFile persists the confirmed parameter set as a flat JSON object
// (name -> value). Writes overwrite the whole file; there is no
// versioning and no partial update.
type ParamFile struct {
	path string
}

// NewParamFile returns a ParamRepo backed by the JSON file at path.
func NewParamFile(path string) *ParamFile {
	return &ParamFile{path: path}
}

// Path returns the backing file path.
func (p *ParamFile) Path() string {
	return p.path
}

// Load reads the persisted parameters. A missing file returns
// (nil, nil); any other failure is an error the caller may tolerate.
func (p *ParamFile) Load() (map[string]int, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read parameter file: %w", err)
	}

	var params map[string]int
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("parse parameter file: %w", err)
	}
	return params, nil
}

// Save overwrites the file with the full parameter set.
func (p *ParamFile) Save(params map[string]int) error {
	if err := EnsureDir(p.path); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	raw, err := json.MarshalIndent(params, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal parameters: %w", err)
	}

	if err := os.WriteFile(p.path, raw, 0o644); err != nil {
		return fmt.Errorf("write parameter file: %w", err)
	}
	return nil
}
