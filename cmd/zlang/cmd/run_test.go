/*
File   : zlang/cmd/zlang/cmd/run_test.go
*/
package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFile_ExecutesScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.zlang")
	require.NoError(t, os.WriteFile(path, []byte(`bruh 1 + 1`), 0o644))

	err := runFile(path)
	assert.NoError(t, err)
}

func TestRunFile_SurfacesRuntimeError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.zlang")
	require.NoError(t, os.WriteFile(path, []byte(`bruh undefinedName`), 0o644))

	err := runFile(path)
	assert.Error(t, err)
}

func TestRunFile_MissingFile(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "nope.zlang"))
	assert.Error(t, err)
}
