package mindmap

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension is the Freeplane map file suffix.
const DefaultExtension = ".mm"

// Discover expands a search root into the list of map files to process.
// A file root yields itself (regardless of extension); a directory root is
// walked recursively for files whose name ends with any of the given
// suffixes. The result is sorted lexically so batch runs are deterministic.
func Discover(root string, extensions []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownPath, root, err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, ext := range extensions {
			if ext != "" && strings.HasSuffix(d.Name(), ext) {
				paths = append(paths, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnknownPath, root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// SplitExtensions parses a comma-separated extension list, dropping empty
// entries. The original tool's CLI takes extensions in this form.
func SplitExtensions(list string) []string {
	parts := strings.Split(list, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}
