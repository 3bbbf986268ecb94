package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_NotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, Page(f, "false", "web1\nweb3\n"))

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "web1\nweb3\n", string(data))
}

func TestRunPager(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runPager(&buf, "cat", "web1\n"))
	assert.Equal(t, "web1\n", buf.String())
}

func TestRunPager_Failure(t *testing.T) {
	err := runPager(&bytes.Buffer{}, "kancli-no-such-pager", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kancli-no-such-pager")
}
