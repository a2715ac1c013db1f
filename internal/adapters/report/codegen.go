package report

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"
)

// MappingCodegen emits the static category → display lookup as Go source,
// from the same configured table the consistency check uses.
type MappingCodegen struct {
	pkg      string
	mappings map[string]map[string]string
}

func NewMappingCodegen(pkg string, mappings map[string]map[string]string) *MappingCodegen {
	if pkg == "" {
		pkg = "i18n"
	}
	return &MappingCodegen{pkg: pkg, mappings: mappings}
}

type mappingEntry struct {
	Category string
	Variant  string
	Display  string
}

var mappingTemplate = template.Must(template.New("mapping").Parse(
	`// Code generated by rushlint. DO NOT EDIT.

package {{.Package}}

import "strings"

// AutoDisplayCategory returns the display form of a category for a language
// variant. Unknown pairs fall back to the uppercased category.
func AutoDisplayCategory(category, variant string) string {
	switch strings.ToLower(category) + "|" + variant {
{{- range .Entries}}
	case {{printf "%q" (printf "%s|%s" .Category .Variant)}}:
		return {{printf "%q" .Display}}
{{- end}}
	}
	return strings.ToUpper(category)
}
`))

// Generate renders the mapping function with entries in (variant, category)
// order so regeneration is byte-stable.
func (c *MappingCodegen) Generate() ([]byte, error) {
	var entries []mappingEntry
	variants := make([]string, 0, len(c.mappings))
	for v := range c.mappings {
		variants = append(variants, v)
	}
	sort.Strings(variants)

	for _, variant := range variants {
		table := c.mappings[variant]
		categories := make([]string, 0, len(table))
		for cat := range table {
			categories = append(categories, cat)
		}
		sort.Strings(categories)
		for _, cat := range categories {
			entries = append(entries, mappingEntry{Category: cat, Variant: variant, Display: table[cat]})
		}
	}

	var buf bytes.Buffer
	err := mappingTemplate.Execute(&buf, struct {
		Package string
		Entries []mappingEntry
	}{Package: c.pkg, Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("render mapping code: %w", err)
	}
	return buf.Bytes(), nil
}
