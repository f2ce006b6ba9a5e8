// Package process implements program subcommands. Every subcommand accepts
// the same kinds of sources: single SDF file, directory tree or zip archive
// (optionally with path inside it).
package process

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"sdfc/archive"
	"sdfc/resource"
	"sdfc/sdf"
	"sdfc/state"
)

// document is single parsed SDF source.
type document struct {
	// src is path relative to the source given on command line, including
	// file name. For a single file it is just base name.
	src  string
	root *sdf.Root
	res  *resource.Resolver
}

// action is performed on every document found. dst is destination directory.
type action interface {
	name() string
	run(ctx context.Context, d *document, dst string, log *zap.Logger) error
}

// counts is shared by all documents of a single run.
type counts struct {
	found, failed atomic.Int32
}

func (c *counts) result() error {
	if n := c.failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d document(s) failed", n, c.found.Load())
	}
	return nil
}

func run(ctx context.Context, cmd *cli.Command, act action) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named(act.name())

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// zip does not define file name encoding, old archives may need archaic
	// code page forced
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, act, log)
}

// process determines the input type (directory, archive, or single file) and
// handles every document found there.
func process(ctx context.Context, src, dst string, act action, log *zap.Logger) error {
	var (
		head, tail string
		c          counts
	)
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, act, &c, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := archive.IsArchive(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, tail, "", dst, act, &c, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if isDocument(head) && len(tail) == 0 {
			processFile(ctx, head, filepath.Base(head), dst, act, &c, log)
			break
		}
		return fmt.Errorf("input was not recognized as SDF document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return c.result()
}

// isDocument reports whether name looks like SDF document.
func isDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".sdf", ".world":
		return true
	}
	return false
}

// processDir walks directory tree finding SDF documents and archives.
func processDir(ctx context.Context, dir, dst string, act action, c *counts, log *zap.Logger) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		isArchive, err := archive.IsArchive(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, act, c, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}
		if !isDocument(path) {
			log.Debug("Skipping file, not recognized as document or archive", zap.String("file", path))
			return nil
		}

		processFile(ctx, path, strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator)), dst, act, c, log)
		return nil
	})
	if err == nil && c.found.Load() == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

// processArchive handles every SDF document inside archive with name
// starting with pathIn. Resources of documents are resolved inside the same
// archive first.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, act action, c *counts, log *zap.Logger) error {
	found := c.found.Load()
	err := archive.Walk(path, pathIn, func(fsys fs.FS, arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isDocument(f.Name) {
			log.Debug("Skipping file, not recognized as document", zap.String("archive", arc), zap.String("file", f.Name))
			return nil
		}

		env := state.EnvFromContext(ctx)
		name := f.Name
		if cp := env.CodePage; cp != nil && f.NonUTF8 {
			// forcing zip file name encoding
			if n, err := cp.NewDecoder().String(name); err == nil {
				name = n
			} else {
				n, _ = ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding",
					zap.String("charset", n), zap.String("path", name), zap.Error(err))
			}
		}

		r, err := f.Open()
		if err != nil {
			c.found.Add(1)
			c.failed.Add(1)
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", f.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		res := resource.NewResolver(fsys, arc, f.Name, env.Cfg.Import.ResourcePaths, log)
		processDocument(ctx, r, filepath.Join(pathOut, filepath.FromSlash(name)), res, dst, act, c, log)
		return nil
	})
	if err == nil && c.found.Load() == found {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

func processFile(ctx context.Context, path, src, dst string, act action, c *counts, log *zap.Logger) {
	env := state.EnvFromContext(ctx)

	res, err := resource.ForFile(path, env.Cfg.Import.ResourcePaths, log)
	if err == nil {
		var file *os.File
		if file, err = os.Open(path); err == nil {
			defer file.Close()
			if err := env.Rpt.StoreCopy("source/"+filepath.ToSlash(src), path); err != nil {
				log.Warn("Unable to store source in debug report", zap.String("file", path), zap.Error(err))
			}
			processDocument(ctx, file, src, res, dst, act, c, log)
			return
		}
	}
	c.found.Add(1)
	c.failed.Add(1)
	log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
}

// processDocument parses single document and runs action on it. Failures are
// logged and counted, processing of other documents continues.
func processDocument(ctx context.Context, r io.Reader, src string, res *resource.Resolver, dst string, act action, c *counts, log *zap.Logger) {
	c.found.Add(1)
	if err := parseAndRun(ctx, r, src, res, dst, act, log); err != nil {
		c.failed.Add(1)
		log.Error("Unable to process document", zap.String("file", src), zap.Error(err))
	}
}

func parseAndRun(ctx context.Context, r io.Reader, src string, res *resource.Resolver, dst string, act action, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	log.Info("Processing document", zap.String("from", src))
	defer func(start time.Time) {
		// one broken document (or image decoder) should not stop the others
		if r := recover(); r != nil {
			log.Error("Processing ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("processing panic: %v", r)
		} else {
			log.Debug("Document done", zap.String("from", src), zap.Duration("elapsed", time.Since(start)))
		}
	}(time.Now())

	root, err := sdf.ParseReader(r, env.ParseOptions(log)...)
	if err != nil {
		return fmt.Errorf("unable to parse SDF source (%s): %w", src, err)
	}
	return act.run(ctx, &document{src: src, root: root, res: res}, dst, log)
}
