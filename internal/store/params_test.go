package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject_parameters.json")
	pf := NewParamFile(path)

	params := map[string]int{
		"preparedness":  60,
		"teaching":      70,
		"materials":     50,
		"participation": 40,
		"difficulty":    30,
	}
	require.NoError(t, pf.Save(params))

	loaded, err := pf.Load()
	require.NoError(t, err)
	assert.Equal(t, params, loaded)
}

func TestParamFile_MissingFileIsNotAnError(t *testing.T) {
	pf := NewParamFile(filepath.Join(t.TempDir(), "nope.json"))
	loaded, err := pf.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestParamFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject_parameters.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewParamFile(path).Load()
	assert.Error(t, err)
}

func TestParamFile_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject_parameters.json")
	pf := NewParamFile(path)

	require.NoError(t, pf.Save(map[string]int{"teaching": 10}))
	require.NoError(t, pf.Save(map[string]int{"teaching": 90}))

	loaded, err := pf.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"teaching": 90}, loaded)
}

func TestParamFile_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "subject_parameters.json")
	require.NoError(t, NewParamFile(path).Save(map[string]int{"teaching": 50}))

	loaded, err := NewParamFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 50, loaded["teaching"])
}
