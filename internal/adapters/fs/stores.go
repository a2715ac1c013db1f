package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"rushlint/internal/domain/entities"
	"rushlint/internal/ports/output"
)

// StoreLoader reads each configured language variant's store document.
type StoreLoader struct {
	root  string
	paths map[string]string // variant → path relative to root
}

var _ output.StoreProvider = (*StoreLoader)(nil)

func NewStoreLoader(root string, paths map[string]string) *StoreLoader {
	return &StoreLoader{root: root, paths: paths}
}

// Stores returns the readable store files in variant order. An unreadable
// store becomes a warning; the variant is simply absent from the result.
func (l *StoreLoader) Stores() ([]entities.StoreFile, []string, error) {
	variants := make([]string, 0, len(l.paths))
	for v := range l.paths {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	var files []entities.StoreFile
	var warnings []string
	for _, variant := range variants {
		rel := l.paths[variant]
		data, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(rel)))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skip %s store %s: %v", variant, rel, err))
			continue
		}
		files = append(files, entities.StoreFile{Variant: variant, Path: rel, Data: data})
	}
	return files, warnings, nil
}
