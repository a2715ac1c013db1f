package application

import (
	"rushlint/internal/domain/entities"
	"rushlint/pkg/keyset"
)

// Reconcile computes the two set differences between the keys referenced in
// code and the keys carrying a .text field in the store. Pure; sorted output.
//
//	unused  = text_keys − used   (defined but never referenced)
//	missing = used − text_keys   (referenced but undefined)
func Reconcile(used keyset.Set, store *entities.Store) (unused, missing []string) {
	return store.TextKeys.Diff(used).Sorted(), used.Diff(store.TextKeys).Sorted()
}
