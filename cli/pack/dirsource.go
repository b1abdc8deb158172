// Package pack provides CLI-level glue for turning a directory on disk
// into an fssource.FileSource, and the build/inspect command
// implementations that drive the assembler.
package pack

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/gorpm/rpmpack/internal/fssource"
)

// DirSource walks a directory on disk and yields its contents, sorted by
// relative path, as fssource.Entry values — the concrete FileSource
// implementation the core module deliberately leaves out.
type DirSource struct {
	Root string
}

// Entries walks d.Root and returns every regular file, directory, and
// symlink beneath it, except paths under a systemDirs directory, sorted by
// relative path for deterministic output.
func (d DirSource) Entries() ([]fssource.Entry, error) {
	var relPaths []string
	infos := make(map[string]os.FileInfo)

	err := filepath.Walk(d.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(d.Root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		relPaths = append(relPaths, rel)
		infos[rel] = info
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pack: walking %q: %w", d.Root, err)
	}
	relPaths = filterSystemDirs(relPaths)
	sort.Strings(relPaths)

	entries := make([]fssource.Entry, 0, len(relPaths))
	for _, rel := range relPaths {
		info := infos[rel]
		full := filepath.Join(d.Root, rel)

		entry := fssource.Entry{
			Path:      rel,
			Mode:      uint32(info.Mode()),
			Size:      info.Size(),
			MTime:     info.ModTime(),
			UserName:  "root",
			GroupName: "root",
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			target, err := os.Readlink(full)
			if err != nil {
				return nil, fmt.Errorf("pack: reading symlink %q: %w", full, err)
			}
			entry.Mode = syscall.S_IFLNK | 0777
			entry.LinkTarget = target
			entry.Size = int64(len(target))
		case info.IsDir():
			entry.Mode = syscall.S_IFDIR | uint32(info.Mode().Perm())
		default:
			entry.Mode = syscall.S_IFREG | uint32(info.Mode().Perm())
			entry.Open = func() (io.ReadCloser, error) {
				return os.Open(full)
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// systemDirs lists top-level path components a staged build root may
// contain that must never end up as package content (matches the
// directory a staging step used to materialize the build, not the
// package's install-time layout).
var systemDirs = map[string]bool{
	".git": true,
}

// filterSystemDirs drops any relative path whose first component is a
// system directory.
func filterSystemDirs(relPaths []string) []string {
	out := make([]string, 0, len(relPaths))
	for _, p := range relPaths {
		first := strings.SplitN(p, "/", 2)[0]
		if systemDirs[first] {
			continue
		}
		out = append(out, p)
	}
	return out
}
