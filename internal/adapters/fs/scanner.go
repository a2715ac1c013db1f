// Package fs contains the filesystem adapters: source discovery, store
// loading and artifact writing. All analysis I/O goes through here so the
// engine itself stays free of file handling.
package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"

	"rushlint/internal/domain/entities"
	"rushlint/internal/ports/output"
)

// ScanSpec describes which files under the project root are scanned for key
// references. Files are an explicit priority list; Globs may use ** patterns;
// Sweep is a directory swept afterwards for every file with Extension that
// the first two passes did not already pick up.
type ScanSpec struct {
	Files     []string
	Globs     []string
	Sweep     string
	Extension string
}

type SourceScanner struct {
	root  string
	spec  ScanSpec
	globs []glob.Glob
}

var _ output.SourceProvider = (*SourceScanner)(nil)

func NewSourceScanner(root string, spec ScanSpec) (*SourceScanner, error) {
	s := &SourceScanner{root: root, spec: spec}
	for _, pattern := range spec.Globs {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile scan glob %q: %w", pattern, err)
		}
		s.globs = append(s.globs, g)
	}
	return s, nil
}

// Blobs reads every matching file. A file that vanished from the priority
// list is skipped quietly; a file that exists but cannot be read becomes a
// warning and scanning continues.
func (s *SourceScanner) Blobs() ([]entities.SourceBlob, []string, error) {
	paths, err := s.collect()
	if err != nil {
		return nil, nil, err
	}

	var blobs []entities.SourceBlob
	var warnings []string
	for _, rel := range paths {
		content, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skip %s: %v", rel, err))
			continue
		}
		blobs = append(blobs, entities.SourceBlob{Name: rel, Content: content})
	}
	return blobs, warnings, nil
}

// collect returns the deduplicated, ordered slash-separated relative paths:
// priority files first, then glob matches, then the sweep.
func (s *SourceScanner) collect() ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(rel string) {
		rel = filepath.ToSlash(rel)
		if _, ok := seen[rel]; ok {
			return
		}
		seen[rel] = struct{}{}
		paths = append(paths, rel)
	}

	for _, rel := range s.spec.Files {
		if _, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(rel))); err == nil {
			add(rel)
		}
	}

	if len(s.globs) > 0 {
		if err := s.walk("", func(rel string) {
			for _, g := range s.globs {
				if g.Match(rel) {
					add(rel)
					return
				}
			}
		}); err != nil {
			return nil, err
		}
	}

	if s.spec.Sweep != "" {
		if err := s.walk(s.spec.Sweep, func(rel string) {
			if filepath.Ext(rel) == s.spec.Extension {
				add(rel)
			}
		}); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func (s *SourceScanner) walk(sub string, visit func(rel string)) error {
	base := filepath.Join(s.root, filepath.FromSlash(sub))
	if _, err := os.Stat(base); err != nil {
		// A missing sweep directory just contributes nothing.
		return nil
	}
	return filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		visit(filepath.ToSlash(rel))
		return nil
	})
}
