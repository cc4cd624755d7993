// Package fsseq exposes directory listings as lazy sequences, so filesystem
// contents can be fed through the generic operations in package seqs without
// loading a directory up front. Entries are pulled on demand; the open
// directory handle is released when the consumer stops pulling.
package fsseq

import (
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/pkg/errors"
)

// readBatch is how many directory entries are pulled from the OS at a time.
const readBatch = 64

// An Entry is one name inside a listed directory.
type Entry struct {
	// Path is the entry's path relative to where the listing started,
	// including the starting point.
	Path string
	// Name is the bare entry name.
	Name string
	// Dir reports whether the entry is itself a directory.
	Dir bool
}

type config struct {
	logger *slog.Logger
}

func defaults() config {
	return config{logger: slogx.NewBuilder().Silent().Logger()}
}

// An Option adjusts listing behavior. It is an alias so options apply
// through to.OptionsWithDefault directly.
type Option = func(*config)

// WithLogger routes debug logging to the given logger. Listings are silent
// by default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// Dir lists a single directory lazily, in directory order. The error slot of
// the yielded pair is non-nil when opening or reading fails; yielding
// continues afterwards only if the consumer keeps pulling, matching the Try
// conventions of package seqs.
func Dir(path string, opts ...Option) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		cfg := to.OptionsWithDefault(defaults(), opts...)

		f, err := os.Open(path)
		if err != nil {
			yield(Entry{Path: path}, errors.Wrap(err, "fsseq: open directory"))
			return
		}
		defer f.Close()

		cfg.logger.Debug("listing directory", slog.String("path", path))
		for {
			ents, err := f.ReadDir(readBatch)
			for _, de := range ents {
				e := Entry{
					Path: filepath.Join(path, de.Name()),
					Name: de.Name(),
					Dir:  de.IsDir(),
				}
				if !yield(e, nil) {
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Entry{Path: path}, errors.Wrap(err, "fsseq: read directory"))
				return
			}
		}
	}
}

// Walk lists everything under root in fsys lazily: a directory's entries are
// yielded together, then each subdirectory is descended into, in lexical
// order. The root itself is not yielded.
// A directory that fails to read produces one error-carrying pair for that
// directory; the walk continues with its siblings if the consumer keeps
// pulling.
func Walk(fsys fs.FS, root string, opts ...Option) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		cfg := to.OptionsWithDefault(defaults(), opts...)
		log := slogx.Child(cfg.logger, "walk")

		stack := []string{root}
		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			ents, err := fs.ReadDir(fsys, dir)
			if err != nil {
				if !yield(Entry{Path: dir}, errors.Wrap(err, "fsseq: read directory")) {
					return
				}
				continue
			}
			log.Debug("descending", slog.String("dir", dir), slog.Int("entries", len(ents)))

			// Subdirectories are pushed in reverse so the lexically first
			// one is visited next.
			var subdirs []string
			for _, de := range ents {
				e := Entry{
					Path: filepath.Join(dir, de.Name()),
					Name: de.Name(),
					Dir:  de.IsDir(),
				}
				if !yield(e, nil) {
					return
				}
				if de.IsDir() {
					subdirs = append(subdirs, e.Path)
				}
			}
			slices.Reverse(subdirs)
			stack = append(stack, subdirs...)
		}
	}
}
