package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFileExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, os.WriteFile(path, []byte("key = 1\n"), 0o644))

	exist, err := CheckFileExist(path)
	require.NoError(t, err)
	assert.True(t, exist)

	exist, err = CheckFileExist(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.False(t, exist)
}

func TestReadFileString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.ini")
	content := "[server]\nport = 8080\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := ReadFileString(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = ReadFileString(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}
