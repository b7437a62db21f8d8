package importer

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func drain(t *testing.T, src RowSource) []Row {
	t.Helper()
	var rows []Row
	for {
		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("data.csv")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = DetectFormat("/tmp/export.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = DetectFormat("data.xlsx")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data.xlsx")
}

func TestOpenCSV_HeaderMapping(t *testing.T) {
	path := writeFile(t, "rows.csv",
		"teaching,materials\n"+
			"70, 40\n"+
			"80,90\n")

	src, err := Open(path, FormatCSV)
	require.NoError(t, err)
	defer src.Close()

	rows := drain(t, src)
	require.Len(t, rows, 2)
	assert.Equal(t, "70", rows[0]["teaching"])
	assert.Equal(t, "40", rows[0]["materials"])
	assert.Equal(t, "90", rows[1]["materials"])
	_, present := rows[0]["preparedness"]
	assert.False(t, present, "absent column should be absent from the row")
}

func TestOpenCSV_ShortRecordRejected(t *testing.T) {
	path := writeFile(t, "short.csv",
		"teaching,materials\n"+
			"70\n")

	src, err := Open(path, FormatCSV)
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next()
	assert.Error(t, err)
}

func TestOpenCSV_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.csv", "")
	src, err := Open(path, FormatCSV)
	require.NoError(t, err)
	defer src.Close()

	assert.Empty(t, drain(t, src))
}

func TestOpenJSON_ArrayOfObjects(t *testing.T) {
	path := writeFile(t, "rows.json", `[
		{"teaching": 70.5, "materials": "80"},
		{}
	]`)

	src, err := Open(path, FormatJSON)
	require.NoError(t, err)
	defer src.Close()

	rows := drain(t, src)
	require.Len(t, rows, 2)
	assert.Equal(t, 70.5, rows[0]["teaching"])
	assert.Equal(t, "80", rows[0]["materials"])
	assert.Empty(t, rows[1])
}

func TestOpenJSON_RejectsNonArray(t *testing.T) {
	path := writeFile(t, "object.json", `{"teaching": 70}`)
	_, err := Open(path, FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array of objects")
}

func TestOpenJSON_RejectsArrayOfScalars(t *testing.T) {
	path := writeFile(t, "scalars.json", `[1, 2, 3]`)
	_, err := Open(path, FormatJSON)
	require.Error(t, err)
}

func TestOpenJSON_RejectsInvalidJSON(t *testing.T) {
	path := writeFile(t, "broken.json", `[{]`)
	_, err := Open(path, FormatJSON)
	require.Error(t, err)
}

func TestOpen_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	_, err := Open(missing, FormatCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}
