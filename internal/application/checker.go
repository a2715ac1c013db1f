package application

import (
	"strings"

	"rushlint/internal/domain/entities"
)

// Checker classifies every BaseKey that carries both a .category and a
// .display_category field. Equal values make the key redundant. Otherwise the
// display value is validated against the expected per-variant mapping; a
// display value equal to the category itself is always accepted, so a
// redundant pair is never reported as inconsistent even when the mapping
// disagrees (intentional tolerance, matched to how the minimizer later
// reconstructs an absent display field from the category).
type Checker struct {
	// mappings: variant → lowercased category value → expected display value.
	mappings map[string]map[string]string
}

func NewChecker(mappings map[string]map[string]string) *Checker {
	return &Checker{mappings: mappings}
}

// Check returns the sorted redundant keys and mapping inconsistencies for one
// store. BaseKeys whose category value has no expected-mapping entry are
// skipped entirely: without an expectation there is nothing to judge.
func (c *Checker) Check(store *entities.Store) ([]entities.RedundantKey, []entities.Inconsistency) {
	expected := c.mappings[store.Variant]

	var redundant []entities.RedundantKey
	var inconsistent []entities.Inconsistency

	for _, base := range store.CategoryKeys.Intersect(store.DisplayKeys).Sorted() {
		category, _ := store.Field(base, entities.SuffixCategory)
		display, _ := store.Field(base, entities.SuffixDisplayCategory)

		if category == display {
			redundant = append(redundant, entities.RedundantKey{BaseKey: base, Value: category})
			continue
		}

		want, ok := expected[strings.ToLower(category)]
		if !ok {
			continue
		}
		if display != want {
			inconsistent = append(inconsistent, entities.Inconsistency{
				BaseKey:  base,
				Category: category,
				Display:  display,
				Expected: want,
			})
		}
	}

	return redundant, inconsistent
}
