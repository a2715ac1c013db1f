package application

import (
	"rushlint/internal/domain/entities"
	"rushlint/pkg/keyset"
)

// Minimize builds a new field map holding only the referenced BaseKeys. For
// each used key it copies the .text and .category fields when present, and
// writes the display value under the shortened ".display" suffix only when
// category and display_category both exist and differ. An equal pair is
// dropped: consumers rebuild display_category = category when .display is
// absent. Keys not in used are dropped unconditionally.
//
// Running Minimize on its own output with the same used set is a fixed point:
// nothing further is pruned or renamed.
func Minimize(used keyset.Set, store *entities.Store) *entities.MinimizedStore {
	fields := make(map[string]string)

	for _, base := range used.Sorted() {
		if text, ok := store.Field(base, entities.SuffixText); ok {
			fields[base+entities.SuffixText] = text
		}

		category, hasCategory := store.Field(base, entities.SuffixCategory)
		if hasCategory {
			fields[base+entities.SuffixCategory] = category
		}

		if display, ok := store.Field(base, entities.SuffixDisplayCategory); ok && hasCategory {
			if display != category {
				fields[base+entities.SuffixDisplay] = display
			}
		} else if display, ok := store.Field(base, entities.SuffixDisplay); ok && hasCategory {
			// Already-shortened field from a previous minimization pass.
			// Carrying it over keeps Minimize a fixed point on its own output.
			if display != category {
				fields[base+entities.SuffixDisplay] = display
			}
		}
	}

	m := &entities.MinimizedStore{
		Fields:        fields,
		OriginalCount: store.Len(),
		PrunedCount:   len(fields),
	}
	if m.OriginalCount > 0 {
		m.Reduction = float64(m.OriginalCount-m.PrunedCount) / float64(m.OriginalCount) * 100
	}
	return m
}
