// Package descriptor locates Luny API descriptor files on disk.
//
// The primary entry point is [Discover], which accepts files and
// directories and returns the matching descriptor files in a
// deterministic order. Directories are walked recursively; explicitly
// named files are taken as-is. Descriptor contents are not parsed here.
//
// The package uses [io/fs.FS] for filesystem abstraction, which allows
// testing with in-memory filesystems. By default it uses [os.DirFS] for
// each directory argument.
package descriptor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions returns the file name suffixes recognized as
// descriptors when [WithExtensions] is not given.
func DefaultExtensions() []string {
	return []string{".luny.yml", ".luny.yaml"}
}

// File describes one discovered descriptor file.
type File struct {
	Path string // OS path, or fsys-relative when WithFS is used
	Size int64
}

// Option configures the behavior of Discover.
type Option func(*config)

type config struct {
	fsys fs.FS
	exts []string
}

// WithFS provides a custom filesystem for discovery. When set, all input
// paths are interpreted relative to this filesystem.
func WithFS(fsys fs.FS) Option {
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithExtensions replaces the recognized descriptor suffixes.
func WithExtensions(exts ...string) Option {
	return func(c *config) {
		c.exts = exts
	}
}

// Discover returns the descriptor files found under inputs. Directory
// inputs are walked recursively for files matching the configured
// suffixes; file inputs are returned as-is. Results are de-duplicated
// and sorted by path. With no inputs the current directory is walked.
func Discover(inputs []string, opts ...Option) ([]File, error) {
	cfg := &config{
		exts: DefaultExtensions(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(inputs) == 0 {
		inputs = []string{"."}
	}

	var files []File
	seen := make(map[string]bool)
	for _, input := range inputs {
		found, err := discover(cfg, input)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if seen[f.Path] {
				continue
			}
			seen[f.Path] = true
			files = append(files, f)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// discover handles a single input path.
func discover(cfg *config, input string) ([]File, error) {
	if cfg.fsys != nil {
		return discoverFS(cfg.fsys, input, cfg.exts)
	}

	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", input, err)
	}
	if !info.IsDir() {
		return []File{{Path: input, Size: info.Size()}}, nil
	}

	// Walk the directory with fs paths, then rejoin with the input so
	// results remain valid OS paths.
	var files []File
	err = fs.WalkDir(os.DirFS(input), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesExt(p, cfg.exts) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{
			Path: filepath.Join(input, filepath.FromSlash(p)),
			Size: fi.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", input, err)
	}
	return files, nil
}

// discoverFS is the WithFS variant of discover. Paths stay fsys-relative.
func discoverFS(fsys fs.FS, input string, exts []string) ([]File, error) {
	info, err := fs.Stat(fsys, input)
	if err != nil {
		return nil, fmt.Errorf("reading input %s: %w", input, err)
	}
	if !info.IsDir() {
		return []File{{Path: input, Size: info.Size()}}, nil
	}

	var files []File
	err = fs.WalkDir(fsys, input, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !matchesExt(p, exts) {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, File{Path: p, Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", input, err)
	}
	return files, nil
}

// matchesExt reports whether name ends in one of the suffixes.
func matchesExt(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
