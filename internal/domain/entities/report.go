package entities

// SourceBlob is one source file's raw content, named for diagnostics.
type SourceBlob struct {
	Name    string
	Content []byte
}

// StoreFile is one language variant's serialized store before parsing.
type StoreFile struct {
	Variant string
	Path    string
	Data    []byte
}

// RedundantKey is a BaseKey whose display_category value exactly matches its
// category value.
type RedundantKey struct {
	BaseKey string
	Value   string
}

// Inconsistency records a display_category value that matches neither the
// expected mapping for its category nor the category itself.
type Inconsistency struct {
	BaseKey  string
	Category string
	Display  string
	Expected string
}

// MinimizedStore is the pruned field map for one variant plus its size
// bookkeeping. Reduction is 0 when the source store was empty.
type MinimizedStore struct {
	Fields        map[string]string
	OriginalCount int
	PrunedCount   int
	Reduction     float64 // percentage, 0..100
}

// VariantAnalysis collects every per-variant finding.
type VariantAnalysis struct {
	Store        *Store
	Unused       []string // defined but never referenced, sorted
	Missing      []string // referenced but undefined, sorted
	Redundant    []RedundantKey
	Inconsistent []Inconsistency
	Minimized    *MinimizedStore
}

// SkippedVariant names a language variant excluded from the run and why.
type SkippedVariant struct {
	Variant string
	Path    string
	Reason  string
}

// Analysis is the full result of one run.
type Analysis struct {
	UsedKeys []string // sorted
	Warnings []string
	Variants []VariantAnalysis
	Skipped  []SkippedVariant
}
