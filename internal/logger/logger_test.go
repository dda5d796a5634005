package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesFileAndMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.txt")
	l := New(path, 0)
	l.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local) }

	l.Log("spawned box")
	l.Logf("selected %d", 2)

	assert.Equal(t, []string{
		"[2024-05-06 07:08:09] spawned box",
		"[2024-05-06 07:08:09] selected 2",
	}, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[2024-05-06 07:08:09] spawned box\n[2024-05-06 07:08:09] selected 2\n", string(data))
}

func TestLogKeepsMostRecent(t *testing.T) {
	l := New("", 3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.Log(s)
	}
	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], "] c"))
	assert.True(t, strings.HasSuffix(lines[2], "] e"))
}

func TestLinesIsACopy(t *testing.T) {
	l := New("", 0)
	l.Log("one")
	lines := l.Lines()
	lines[0] = "changed"
	assert.True(t, strings.HasSuffix(l.Lines()[0], "] one"))
}
