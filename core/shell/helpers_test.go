package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe to share between the test and the
// goroutines os/exec uses to copy process output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type testIO struct {
	IO
	stdout *syncBuffer
	stderr *syncBuffer
}

func newTestIO(stdin string) *testIO {
	tio := &testIO{stdout: &syncBuffer{}, stderr: &syncBuffer{}}
	tio.IO = IO{
		Stdin:  strings.NewReader(stdin),
		Stdout: tio.stdout,
		Stderr: tio.stderr,
	}
	return tio
}

// newFileTestIO is like newTestIO but reads stdin from a file, the way the
// shell reads a terminal.
func newFileTestIO(t *testing.T, stdin string) *testIO {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(stdin), 0600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	tio := newTestIO("")
	tio.Stdin = f
	return tio
}

func mustParse(t *testing.T, line string) Pipeline {
	t.Helper()

	pipeline, err := Parse(line)
	require.NoError(t, err)
	return pipeline
}

func mkdir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
