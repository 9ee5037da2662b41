package lint

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Collect expands paths into the list of mesh documents to check.
// Files named explicitly are kept whatever their extension. Directories are
// walked recursively and contribute files whose extension matches one of
// extensions (case-insensitive), sorted within each directory. Argument order
// is preserved and no path is returned twice.
func Collect(paths []string, extensions []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		// WalkDir visits entries in lexical order.
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !hasExtension(path, extensions) {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func hasExtension(path string, extensions []string) bool {
	name := strings.ToLower(filepath.Base(path))
	return slices.ContainsFunc(extensions, func(ext string) bool {
		return strings.HasSuffix(name, strings.ToLower(ext))
	})
}
