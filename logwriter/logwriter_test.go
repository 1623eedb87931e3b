package logwriter

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false, false)
	require.NoError(t, w.Create())
	defer w.Cleanup()
	assert.Equal(t, io.Discard, w.Writer)

	w.Logger("test: ").Println("hidden")
	assert.Zero(t, buf.Len())
}

func TestCreateWriter(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, true, false)
	w.Flags = 0
	require.NoError(t, w.Create())
	defer w.Cleanup()
	assert.True(t, color.NoColor)

	w.Logger("table: ").Println(color.GreenString("EATING"))
	assert.Equal(t, "table: EATING\n", buf.String())
}

func TestCreateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	w := NewFile(path, true, false)
	w.Flags = 0
	require.NoError(t, w.Create())
	w.Logger("").Println("Initializing Forks")
	w.Cleanup()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Initializing Forks\n", string(b))
}

func TestCreateFileError(t *testing.T) {
	w := NewFile(filepath.Join(t.TempDir(), "missing", "run.log"), true, false)
	assert.Error(t, w.Create())
}

func TestCreateStdout(t *testing.T) {
	w := NewFile("", true, true)
	require.NoError(t, w.Create())
	defer w.Cleanup()
	assert.Equal(t, os.Stdout, w.Writer)
	assert.False(t, color.NoColor)
	color.NoColor = true
}
