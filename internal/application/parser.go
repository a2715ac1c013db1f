package application

import (
	"encoding/json"
	"fmt"

	"rushlint/internal/domain"
	"rushlint/internal/domain/entities"
	"rushlint/pkg/keyset"
)

// StoreParser decodes a flat string-to-string document into a Store and sorts
// every raw field key into its suffix bucket.
type StoreParser struct {
	rules []entities.SuffixRule
}

func NewStoreParser(rules []entities.SuffixRule) *StoreParser {
	if len(rules) == 0 {
		rules = entities.DefaultSuffixRules
	}
	return &StoreParser{rules: rules}
}

// Parse fails only for this one document; the caller skips the variant and
// keeps going with the rest.
func (p *StoreParser) Parse(file entities.StoreFile) (*entities.Store, error) {
	var fields map[string]string
	if err := json.Unmarshal(file.Data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedStore, file.Path, err)
	}

	store := &entities.Store{
		Variant:      file.Variant,
		Path:         file.Path,
		Fields:       fields,
		TextKeys:     keyset.New(),
		CategoryKeys: keyset.New(),
		DisplayKeys:  keyset.New(),
	}

	for raw := range fields {
		base, kind, ok := entities.SplitFieldKey(raw, p.rules)
		if !ok {
			// Unrecognized suffix: the key stays in Fields but joins no bucket.
			continue
		}
		switch kind {
		case entities.FieldText:
			store.TextKeys.Add(base)
		case entities.FieldCategory:
			store.CategoryKeys.Add(base)
		case entities.FieldDisplayCategory:
			store.DisplayKeys.Add(base)
		}
	}

	return store, nil
}
