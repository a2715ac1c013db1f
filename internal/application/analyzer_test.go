package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rushlint/internal/domain/entities"
)

type fakeSources struct {
	blobs    []entities.SourceBlob
	warnings []string
}

func (f *fakeSources) Blobs() ([]entities.SourceBlob, []string, error) {
	return f.blobs, f.warnings, nil
}

type fakeStores struct {
	files    []entities.StoreFile
	warnings []string
}

func (f *fakeStores) Stores() ([]entities.StoreFile, []string, error) {
	return f.files, f.warnings, nil
}

func newTestService(t *testing.T, sources *fakeSources, stores *fakeStores) *AnalyzerService {
	t.Helper()
	extractor, err := NewExtractor(testPatterns)
	require.NoError(t, err)
	return NewAnalyzerService(extractor, NewStoreParser(nil), NewChecker(testMappings), sources, stores)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	sources := &fakeSources{
		blobs: []entities.SourceBlob{
			{Name: "main.rs", Content: []byte(`get_translation("system.startup.ready"); get_translation("system.missing.key")`)},
		},
	}
	stores := &fakeStores{
		files: []entities.StoreFile{
			{Variant: "en", Path: "en.json", Data: []byte(`{
				"system.startup.ready.text": "Ready",
				"system.startup.ready.category": "info",
				"system.startup.ready.display_category": "info",
				"system.old.key.text": "Old"
			}`)},
		},
	}

	analysis, err := newTestService(t, sources, stores).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{"system.missing.key", "system.startup.ready"}, analysis.UsedKeys)
	require.Len(t, analysis.Variants, 1)

	v := analysis.Variants[0]
	assert.Equal(t, "en", v.Store.Variant)
	assert.Equal(t, []string{"system.old.key"}, v.Unused)
	assert.Equal(t, []string{"system.missing.key"}, v.Missing)
	assert.Equal(t, []entities.RedundantKey{{BaseKey: "system.startup.ready", Value: "info"}}, v.Redundant)
	assert.Empty(t, v.Inconsistent)

	require.NotNil(t, v.Minimized)
	assert.Equal(t, map[string]string{
		"system.startup.ready.text":     "Ready",
		"system.startup.ready.category": "info",
	}, v.Minimized.Fields)
}

func TestAnalyzeMalformedStoreSkipsOnlyThatVariant(t *testing.T) {
	sources := &fakeSources{
		blobs: []entities.SourceBlob{{Name: "main.rs", Content: []byte(`get_translation("a.b")`)}},
	}
	stores := &fakeStores{
		files: []entities.StoreFile{
			{Variant: "de", Path: "de.json", Data: []byte(`{broken`)},
			{Variant: "en", Path: "en.json", Data: []byte(`{"a.b.text": "ok"}`)},
		},
	}

	analysis, err := newTestService(t, sources, stores).Analyze()
	require.NoError(t, err)

	require.Len(t, analysis.Skipped, 1)
	assert.Equal(t, "de", analysis.Skipped[0].Variant)
	require.Len(t, analysis.Variants, 1)
	assert.Equal(t, "en", analysis.Variants[0].Store.Variant)
}

func TestAnalyzeCollectsProviderWarnings(t *testing.T) {
	sources := &fakeSources{warnings: []string{"skip src/gone.rs: no such file"}}
	stores := &fakeStores{warnings: []string{"skip fr.json: no such file"}}

	analysis, err := newTestService(t, sources, stores).Analyze()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"skip src/gone.rs: no such file",
		"skip fr.json: no such file",
	}, analysis.Warnings)
	assert.Empty(t, analysis.Variants)
	assert.Empty(t, analysis.UsedKeys)
}
