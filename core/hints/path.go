package hints

import (
	"path/filepath"

	"github.com/spf13/afero"
)

func isExecutable(fsys afero.Fs, file string) bool {
	d, err := fsys.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return !m.IsDir() && m&0111 != 0
}

// PathEntries lists the executables in the directories named by pathList in
// search order, each directory sorted by name. Missing or unreadable
// directories are skipped.
func PathEntries(fsys afero.Fs, pathList string) []Entry {
	var out []Entry
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		infos, err := afero.ReadDir(fsys, dir)
		if err != nil {
			continue
		}
		for _, info := range infos {
			name := info.Name()
			// Stat rather than using info so symlinked binaries are included.
			if !isExecutable(fsys, filepath.Join(dir, name)) {
				continue
			}
			out = append(out, MustEntry(name, name))
		}
	}
	return out
}
