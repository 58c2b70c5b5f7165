package codegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

// TestGenerate_Golden renders the petstore model and compares every generated
// file byte-for-byte against the archived expectation. Regenerate the archive
// by hand when the output format changes deliberately.
func TestGenerate_Golden(t *testing.T) {
	result, err := GenerateWithOptions(
		WithModelPath(filepath.Join("testdata", "petstore.yaml")),
	)
	require.NoError(t, err)
	require.True(t, result.Success)

	archive, err := txtar.ParseFile(filepath.Join("testdata", "petstore.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archive.Files)

	expected := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		expected[f.Name] = string(f.Data)
	}

	assert.Len(t, result.Files, len(expected))
	for _, f := range result.Files {
		want, ok := expected[f.Name]
		require.True(t, ok, "unexpected generated file %s", f.Name)
		assert.Equal(t, want, string(f.Content), "content mismatch for %s", f.Name)
	}
}
