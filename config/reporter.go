package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"sdfc/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty debug report. When destination cannot be created
// report goes to a temporary file.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{entries: make(map[string]entry), file: f}, nil
}

// entry is either a path (file or directory) collected on Close or inline
// data.
type entry struct {
	original string
	actual   string
	stamp    time.Time
	data     []byte
	temp     bool
}

// Report accumulates everything necessary for a debug archive. All methods
// are no-op on nil receiver, so callers do not have to check whether report
// was requested. Not safe for concurrent use.
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Close writes the archive and removes temporary copies.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	defer r.cleanup()
	return r.finalize()
}

// Name returns absolute name of the archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store remembers file or directory to be archived on Close as it will be
// at that time.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.original != path {
		panic(fmt.Sprintf("report entry %q is already used: was %s, now %s", name, old.original, path))
	}
	e := entry{original: path, actual: path}
	if p, err := filepath.Abs(path); err == nil {
		e.actual = p
	}
	r.entries[name] = e
}

// StoreData puts data in the archive under requested name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("report entry %q is already used", name))
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// StoreCopy copies file or directory right away. Repeated names get
// timestamp suffix, so the same path could be stored several times.
func (r *Report) StoreCopy(name, path string) error {
	if r == nil {
		return nil
	}

	src, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	e := entry{original: path, stamp: time.Now(), temp: true}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, e.stamp.UnixNano())
	}

	dir, err := os.MkdirTemp("", misc.GetAppName()+"-r-")
	if err != nil {
		return err
	}
	switch {
	case info.Mode().IsRegular():
		if e.actual, err = copyFile(dir, src, info.ModTime()); err != nil {
			return err
		}
	case info.Mode().IsDir():
		if err := copyDir(dir, src); err != nil {
			return err
		}
		e.actual = dir
	default:
		os.RemoveAll(dir)
		return fmt.Errorf("unsupported file type: %s", path)
	}
	r.entries[name] = e
	return nil
}

func (r *Report) cleanup() {
	for _, e := range r.entries {
		if !e.temp {
			continue
		}
		if info, err := os.Stat(e.actual); err == nil && !info.IsDir() {
			os.RemoveAll(filepath.Dir(e.actual))
		} else {
			os.RemoveAll(e.actual)
		}
	}
}

func copyFile(dir, src string, modTime time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, filepath.Base(src))

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return dst, os.Chtimes(dst, modTime, modTime)
}

func copyDir(dir, src string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.Mode().IsRegular() {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		_, err = copyFile(filepath.Dir(filepath.Join(dir, rel)), path, info.ModTime())
		return err
	})
}

// finalize writes MANIFEST followed by entries in the same order.
func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)
	defer arc.Close()

	names := slices.Sorted(maps.Keys(r.entries))
	if err := saveFile(arc, "MANIFEST", time.Now(), manifest(names, r.entries)); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]
		if len(e.data) > 0 {
			if err := saveFile(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		info, err := os.Stat(e.actual)
		if err != nil {
			// absent files are ignored
			continue
		}
		switch {
		case info.Mode().IsRegular():
			if err := saveFileFrom(arc, name, e.actual, info.ModTime()); err != nil {
				return err
			}
		case info.Mode().IsDir():
			if err := saveDir(arc, name, e.actual); err != nil {
				return err
			}
		}
	}
	return nil
}

func manifest(names []string, entries map[string]entry) io.Reader {
	now := time.Now()
	buf := new(bytes.Buffer)
	for _, name := range names {
		e := entries[name]
		if e.stamp.IsZero() {
			e.stamp = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", e.stamp.UTC().Format(time.UnixDate), name, e.original, e.actual)
	}
	return buf
}

func saveFile(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}

func saveFileFrom(dst *zip.Writer, name, path string, t time.Time) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return saveFile(dst, name, t, f)
}

func saveDir(dst *zip.Writer, name, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.Mode().IsRegular() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		return saveFileFrom(dst, filepath.ToSlash(filepath.Join(name, rel)), path, info.ModTime())
	})
}
