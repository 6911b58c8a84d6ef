package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/logchain/core"
	"github.com/philipp01105/logchain/sink"
)

func TestConsole_Print(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Run(NewConsole(&buf), "hello"))
	assert.Equal(t, "Console: hello\n", buf.String())
}

func TestFile_Print(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "log.txt")
	fs, err := sink.NewFileSink(sink.FileConfig{Filename: filename})
	require.NoError(t, err)

	cmd := NewFile(fs)
	require.NoError(t, Run(cmd, "first"))
	require.NoError(t, Run(cmd, "second"))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestFile_Unwritable(t *testing.T) {
	fs, err := sink.NewFileSink(sink.FileConfig{Filename: t.TempDir()})
	require.NoError(t, err)

	err = Run(NewFile(fs), "lost")
	assert.True(t, core.IsSinkFailure(err))
}
