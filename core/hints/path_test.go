package hints

import (
	"os"
	"testing"

	"github.com/josephlewis42/pipesh/core/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPathFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	files := map[string]bool{
		"/usr/bin/ls":         true,
		"/usr/bin/cat":        true,
		"/usr/bin/README":     false,
		"/bin/ls":             true,
		"/bin/sh":             true,
		"/opt/tools/deploy":   true,
		"/opt/tools/settings": false,
	}
	for path, exec := range files {
		mode := 0644
		if exec {
			mode = 0755
		}
		require.NoError(t, afero.WriteFile(fsys, path, []byte("#!"), 0644))
		require.NoError(t, fsys.Chmod(path, os.FileMode(mode)))
	}
	require.NoError(t, fsys.MkdirAll("/usr/bin/subdir", 0755))
	return fsys
}

func TestPathEntries(t *testing.T) {
	fsys := newPathFs(t)

	got := PathEntries(fsys, "/usr/bin:/missing:/bin")

	assert.Equal(t, []Entry{
		{"cat", 3},
		{"ls", 2},
		{"ls", 2},
		{"sh", 2},
	}, got)
}

func TestLoad(t *testing.T) {
	fsys := newPathFs(t)

	cfg := config.Default()
	cfg.Hints.Entries = []config.HintEntry{
		{Display: "deploy --prod", CompleteUpTo: "deploy"},
		{Display: "exit", CompleteUpTo: "e"},
	}

	t.Run("without-path", func(t *testing.T) {
		registry, err := Load(cfg, fsys, "/opt/tools")
		require.NoError(t, err)

		assert.Equal(t, []Entry{
			{"cd", 2},
			{"exit", 4},
			{"deploy --prod", 6},
		}, registry.Entries())
	})

	t.Run("with-path", func(t *testing.T) {
		withPath := *cfg
		withPath.Hints.IncludePath = true

		registry, err := Load(&withPath, fsys, "/opt/tools:/bin")
		require.NoError(t, err)

		assert.Equal(t, []Entry{
			{"cd", 2},
			{"exit", 4},
			{"deploy --prod", 6},
			{"deploy", 6},
			{"ls", 2},
			{"sh", 2},
		}, registry.Entries())

		// Configured entries beat PATH entries.
		got, ok := registry.Hint("dep", 3)
		assert.True(t, ok)
		assert.Equal(t, Entry{"loy --prod", 3}, got)
	})

	t.Run("invalid-entry", func(t *testing.T) {
		bad := *cfg
		bad.Hints.Entries = []config.HintEntry{{Display: "ls", CompleteUpTo: "cat"}}

		_, err := Load(&bad, fsys, "")
		assert.ErrorIs(t, err, ErrNotPrefix)
	})
}
