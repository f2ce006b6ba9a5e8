// Package resource maps model:// and file:// URIs found in SDF documents to
// files.
package resource

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"go.uber.org/zap"
)

const (
	modelScheme = "model://"
	fileScheme  = "file://"
)

// ResourceResolutionError is returned when URI does not map to any existing
// file.
type ResourceResolutionError struct {
	URI   string
	Tried []string
}

func (e *ResourceResolutionError) Error() string {
	return fmt.Sprintf("unable to resolve resource %q, tried: %s", e.URI, strings.Join(e.Tried, ", "))
}

// Resource is resolved file. It could live on disk or inside an archive.
type Resource struct {
	URI string
	// Path is slash separated name inside FS.
	Path string
	// Location is human readable name of the file, archive members are
	// shown as "archive.zip/member".
	Location string

	fsys fs.FS
	root string
}

func (r *Resource) Open() (fs.File, error) {
	return r.fsys.Open(r.Path)
}

func (r *Resource) ReadAll() ([]byte, error) {
	return fs.ReadFile(r.fsys, r.Path)
}

// Sniff detects file type by content. Unknown formats (most mesh formats
// among them) return filetype.Unknown without error.
func (r *Resource) Sniff() (types.Type, error) {
	f, err := r.Open()
	if err != nil {
		return filetype.Unknown, err
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return filetype.Unknown, err
	}
	return filetype.Match(head[:n])
}

// IsImage reports whether resource content is a known image format.
func (r *Resource) IsImage() bool {
	t, err := r.Sniff()
	return err == nil && t.MIME.Type == "image"
}

// Resolver resolves URIs relative to the directory of a single document.
type Resolver struct {
	fsys   fs.FS
	root   string
	dir    string
	search []string
	log    *zap.Logger
}

// NewResolver returns resolver for document with slash separated name doc
// inside fsys. Root is human readable location of fsys used in diagnostics.
// Search lists additional directories on disk which are tried last.
func NewResolver(fsys fs.FS, root, doc string, search []string, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		fsys:   fsys,
		root:   root,
		dir:    path.Dir(doc),
		search: search,
		log:    log,
	}
}

// ForFile returns resolver for document on disk. Document directory and its
// parent are both reachable.
func ForFile(name string, search []string, log *zap.Logger) (*Resolver, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	root := filepath.Dir(dir)
	doc := path.Join(filepath.Base(dir), filepath.Base(abs))
	if root == dir {
		// document in filesystem root has no parent
		doc = filepath.Base(abs)
	}
	return NewResolver(os.DirFS(root), root, doc, search, log), nil
}

// For returns resolver for document found as res, for example included
// model. Search directories and logger are inherited.
func (r *Resolver) For(res *Resource) *Resolver {
	return NewResolver(res.fsys, res.root, res.Path, r.search, r.log)
}

// Resolve maps uri to existing file. Relative names are tried next to the
// document, then in its parent directory, then as given, then in search
// directories in order.
func (r *Resolver) Resolve(uri string) (*Resource, error) {
	name := strings.TrimPrefix(strings.TrimPrefix(uri, modelScheme), fileScheme)
	if name == "" {
		return nil, &ResourceResolutionError{URI: uri}
	}

	rel := path.Clean(filepath.ToSlash(name))
	relative := !filepath.IsAbs(name) && !path.IsAbs(rel)

	var tried []string
	if relative {
		candidates := []string{path.Join(r.dir, rel)}
		if r.dir != "." {
			candidates = append(candidates, path.Join(path.Dir(r.dir), rel))
		}
		for _, c := range candidates {
			tried = append(tried, location(r.root, c))
			if isFile(r.fsys, c) {
				return r.found(uri, r.fsys, r.root, c), nil
			}
		}
	}

	// literal path, relative to working directory when not absolute
	if abs, err := filepath.Abs(filepath.FromSlash(name)); err == nil {
		tried = append(tried, abs)
		dir, base := filepath.Split(abs)
		if fsys := os.DirFS(dir); isFile(fsys, base) {
			return r.found(uri, fsys, dir, base), nil
		}
	}

	if relative {
		for _, dir := range r.search {
			tried = append(tried, location(dir, rel))
			if fsys := os.DirFS(dir); isFile(fsys, rel) {
				return r.found(uri, fsys, dir, rel), nil
			}
		}
	}

	r.log.Debug("Unable to resolve resource", zap.String("uri", uri), zap.Strings("tried", tried))
	return nil, &ResourceResolutionError{URI: uri, Tried: tried}
}

func (r *Resolver) found(uri string, fsys fs.FS, root, name string) *Resource {
	res := &Resource{URI: uri, Path: name, Location: location(root, name), fsys: fsys, root: root}
	r.log.Debug("Resource resolved", zap.String("uri", uri), zap.String("location", res.Location))
	return res
}

func location(root, name string) string {
	return filepath.Join(root, filepath.FromSlash(name))
}

func isFile(fsys fs.FS, name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(fsys, name)
	return err == nil && info.Mode().IsRegular()
}
