package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rushlint/internal/domain"
	"rushlint/internal/domain/entities"
)

var testPatterns = []string{
	`get_translation\("([^"]+)"`,
	`get_command_translation\("([^"]+)"`,
	`i18n::get_translation\("([^"]+)"`,
}

func TestExtractorFindsKeysAcrossPatternsAndBlobs(t *testing.T) {
	e, err := NewExtractor(testPatterns)
	require.NoError(t, err)

	blobs := []entities.SourceBlob{
		{Name: "main.rs", Content: []byte(`let msg = get_translation("system.startup.ready");`)},
		{Name: "input.rs", Content: []byte(`
			get_command_translation("system.commands.help");
			i18n::get_translation("system.input.cancelled");
		`)},
	}

	used := e.Extract(blobs)
	assert.Equal(t, []string{
		"system.commands.help",
		"system.input.cancelled",
		"system.startup.ready",
	}, used.Sorted())
}

func TestExtractorOneBlobMayMatchSeveralPatterns(t *testing.T) {
	e, err := NewExtractor(testPatterns)
	require.NoError(t, err)

	blob := entities.SourceBlob{
		Name: "handler.rs",
		Content: []byte(`
			get_translation("a.b");
			i18n::get_translation("c.d");
		`),
	}

	used := e.Extract([]entities.SourceBlob{blob})
	assert.Equal(t, []string{"a.b", "c.d"}, used.Sorted())
}

func TestExtractorDeduplicates(t *testing.T) {
	e, err := NewExtractor(testPatterns)
	require.NoError(t, err)

	blobs := []entities.SourceBlob{
		{Name: "a.rs", Content: []byte(`get_translation("same.key")`)},
		{Name: "b.rs", Content: []byte(`get_translation("same.key")`)},
	}

	used := e.Extract(blobs)
	assert.Equal(t, 1, used.Len())
}

func TestExtractorIgnoresDynamicKeys(t *testing.T) {
	e, err := NewExtractor(testPatterns)
	require.NoError(t, err)

	blob := entities.SourceBlob{
		Name:    "dyn.rs",
		Content: []byte(`get_translation(&format!("system.{}.text", name))`),
	}

	assert.Equal(t, 0, e.Extract([]entities.SourceBlob{blob}).Len())
}

func TestNewExtractorRejectsBadPatterns(t *testing.T) {
	_, err := NewExtractor(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyPatternList)

	_, err = NewExtractor([]string{`get_translation\("[^"]+"`})
	assert.ErrorIs(t, err, domain.ErrNoCaptureGroup)

	_, err = NewExtractor([]string{`(unclosed`})
	assert.Error(t, err)
}
