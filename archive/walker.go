// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"github.com/maruel/natural"
)

// WalkFunc is called for each file in archive visited by Walk. The fsys
// argument gives access to the whole archive, so files next to the visited
// one could be opened. If an error is returned, processing stops.
type WalkFunc func(fsys fs.FS, archive string, file *zip.File) error

// Walk visits all files in the archive with names starting with pattern in
// natural name order. Archives with absolute paths or path traversal
// components are rejected.
func Walk(archive, pattern string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	files := make([]*zip.File, 0, len(r.File))
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			files = append(files, f)
		}
	}
	slices.SortStableFunc(files, func(a, b *zip.File) int {
		switch {
		case a.Name == b.Name:
			return 0
		case natural.Less(a.Name, b.Name):
			return -1
		}
		return 1
	})

	for _, f := range files {
		if err := walkFn(&r.Reader, archive, f); err != nil {
			return err
		}
	}
	return nil
}

// IsArchive reports whether file has .zip extension and zip content.
func IsArchive(name string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(name), ".zip") {
		return false, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// enough for any filetype matcher
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return false, err
	}
	return filetype.Is(head[:n], "zip"), nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
