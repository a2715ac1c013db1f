package entities

import "rushlint/pkg/keyset"

// FieldKind is the semantic role a raw field key encodes in its suffix.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldCategory
	FieldDisplayCategory
)

const (
	SuffixText            = ".text"
	SuffixCategory        = ".category"
	SuffixDisplayCategory = ".display_category"

	// SuffixDisplay is the shortened suffix the minimizer writes in place of
	// ".display_category". Consumers reconstruct display_category = category
	// when it is absent.
	SuffixDisplay = ".display"
)

// SuffixRule binds one raw-key suffix to its field kind.
type SuffixRule struct {
	Suffix string
	Kind   FieldKind
}

// DefaultSuffixRules is ordered longest suffix first so ".category" can never
// match inside a key that actually ends with ".display_category".
var DefaultSuffixRules = []SuffixRule{
	{Suffix: SuffixDisplayCategory, Kind: FieldDisplayCategory},
	{Suffix: SuffixCategory, Kind: FieldCategory},
	{Suffix: SuffixText, Kind: FieldText},
}

// SplitFieldKey strips the first rule suffix that matches the end of raw and
// returns the remaining BaseKey with the matched kind. Stripping always uses
// the exact suffix length, never a substring search. ok is false when no rule
// matches; such keys stay in the store's full key set but belong to no bucket.
func SplitFieldKey(raw string, rules []SuffixRule) (base string, kind FieldKind, ok bool) {
	for _, r := range rules {
		n := len(raw) - len(r.Suffix)
		if n > 0 && raw[n:] == r.Suffix {
			return raw[:n], r.Kind, true
		}
	}
	return "", 0, false
}

// Store is one language variant's flat key-value translation document,
// together with the per-suffix BaseKey buckets derived at parse time.
// It is never mutated after parsing; the minimizer builds a new field map.
type Store struct {
	Variant string
	Path    string
	Fields  map[string]string

	TextKeys     keyset.Set // BaseKeys with a .text field
	CategoryKeys keyset.Set // BaseKeys with a .category field
	DisplayKeys  keyset.Set // BaseKeys with a .display_category field
}

// Field returns the raw value for base+suffix.
func (s *Store) Field(base, suffix string) (string, bool) {
	v, ok := s.Fields[base+suffix]
	return v, ok
}

func (s *Store) Len() int {
	return len(s.Fields)
}
