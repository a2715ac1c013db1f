package application

import (
	"fmt"
	"regexp"

	"rushlint/internal/domain"
	"rushlint/internal/domain/entities"
	"rushlint/pkg/keyset"
)

// Extractor finds translation-key references in raw source text. It only sees
// keys written as literals matching one of its patterns; keys assembled at
// runtime are invisible to it.
type Extractor struct {
	patterns []*regexp.Regexp
}

// NewExtractor compiles the pattern list. Every pattern must capture exactly
// one group, the key identifier.
func NewExtractor(patterns []string) (*Extractor, error) {
	if len(patterns) == 0 {
		return nil, domain.ErrEmptyPatternList
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", p, err)
		}
		if re.NumSubexp() != 1 {
			return nil, fmt.Errorf("pattern %q: %w", p, domain.ErrNoCaptureGroup)
		}
		compiled = append(compiled, re)
	}

	return &Extractor{patterns: compiled}, nil
}

// Extract returns the union of every key captured by any pattern in any blob.
// Patterns are tried independently; a blob may contribute through several.
func (e *Extractor) Extract(blobs []entities.SourceBlob) keyset.Set {
	used := keyset.New()
	for _, blob := range blobs {
		for _, re := range e.patterns {
			for _, m := range re.FindAllSubmatch(blob.Content, -1) {
				used.Add(string(m[1]))
			}
		}
	}
	return used
}
