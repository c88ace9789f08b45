package hints

import (
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/spf13/afero"
)

// Load builds the registry for a configuration: builtins first, then the
// configured entries, then executables on pathList if enabled.
func Load(cfg *config.Configuration, fsys afero.Fs, pathList string) (*Registry, error) {
	entries := Builtins()

	for _, he := range cfg.Hints.Entries {
		e, err := NewEntry(he.Display, he.CompleteUpTo)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if cfg.Hints.IncludePath {
		entries = append(entries, PathEntries(fsys, pathList)...)
	}

	return NewRegistry(entries...), nil
}
