package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorRendersTemplateData(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("en", "report.used_keys", map[string]any{"Count": 7})
	assert.Equal(t, "Used keys in code: 7", got)
}

func TestTranslatorGermanCatalog(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("de", "report.used_keys", map[string]any{"Count": 3})
	assert.Equal(t, "Im Code verwendete Schlüssel: 3", got)
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("fr", "report.consistent", nil)
	assert.Equal(t, "All display mappings are consistent", got)
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "report.no.such.key", tr.T("en", "report.no.such.key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestTranslatorBadDefaultLocaleFallsBackToEnglish(t *testing.T) {
	tr := NewTranslator("!!")
	got := tr.T("", "report.consistent", nil)
	assert.Equal(t, "All display mappings are consistent", got)
}
