// Package report renders the analysis for humans and emits the generated
// mapping-table source.
package report

import (
	"fmt"
	"io"
	"strings"

	"rushlint/internal/domain/entities"
	"rushlint/internal/ports/output"
)

// Display caps, matching the reference tool's report.
const (
	maxRedundantShown    = 5
	maxInconsistentShown = 3
)

// Renderer writes the plain-text report through the i18n port.
type Renderer struct {
	t      output.T
	locale string
	w      io.Writer
}

func NewRenderer(t output.T, locale string, w io.Writer) *Renderer {
	return &Renderer{t: t, locale: locale, w: w}
}

func (r *Renderer) msg(key string, data map[string]any) string {
	return r.t.T(r.locale, key, data)
}

func (r *Renderer) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Render prints the full analysis report.
func (r *Renderer) Render(a *entities.Analysis) {
	r.line("%s", strings.Repeat("=", 60))
	r.line("%s", r.msg("report.title", nil))
	r.line("%s", strings.Repeat("=", 60))

	for _, w := range a.Warnings {
		r.line("%s", r.msg("report.warning", map[string]any{"Message": w}))
	}
	for _, s := range a.Skipped {
		r.line("%s", r.msg("report.skipped", map[string]any{
			"Variant": strings.ToUpper(s.Variant),
			"Path":    s.Path,
			"Reason":  s.Reason,
		}))
	}

	r.line("%s", r.msg("report.used_keys", map[string]any{"Count": len(a.UsedKeys)}))

	for i := range a.Variants {
		r.renderVariant(&a.Variants[i])
	}

	r.line("")
	r.line("%s", r.msg("report.summary", nil))
	r.line("  %s", r.msg("report.summary_used", map[string]any{"Count": len(a.UsedKeys)}))
	r.line("  %s", r.msg("report.summary_variants", map[string]any{"Count": len(a.Variants)}))
}

func (r *Renderer) renderVariant(v *entities.VariantAnalysis) {
	r.line("")
	r.line("%s", r.msg("report.variant_header", map[string]any{
		"Variant": strings.ToUpper(v.Store.Variant),
		"Path":    v.Store.Path,
	}))
	r.line("%s", strings.Repeat("-", 40))
	r.line("%s", r.msg("report.defined_keys", map[string]any{"Count": v.Store.TextKeys.Len()}))
	r.line("%s", r.msg("report.unused_count", map[string]any{"Count": len(v.Unused)}))
	r.line("%s", r.msg("report.missing_count", map[string]any{"Count": len(v.Missing)}))

	if len(v.Unused) > 0 {
		r.line("")
		r.line("%s", r.msg("report.unused_header", nil))
		for _, k := range v.Unused {
			r.line("   - %s", k)
		}
	}

	if len(v.Missing) > 0 {
		r.line("")
		r.line("%s", r.msg("report.missing_header", nil))
		for _, k := range v.Missing {
			r.line("   - %s", k)
		}
	}

	r.line("")
	r.line("%s", r.msg("report.redundancy_header", nil))
	r.line("%s", r.msg("report.redundant_count", map[string]any{"Count": len(v.Redundant)}))
	if len(v.Redundant) > 0 {
		r.line("   %s", r.msg("report.redundant_note", nil))
		for i, red := range v.Redundant {
			if i == maxRedundantShown {
				r.line("   %s", r.msg("report.more", map[string]any{"Count": len(v.Redundant) - maxRedundantShown}))
				break
			}
			r.line("   - %s: '%s' = '%s'", red.BaseKey, red.Value, red.Value)
		}
	}

	r.line("")
	r.line("%s", r.msg("report.mapping_header", nil))
	if len(v.Inconsistent) == 0 {
		r.line("%s", r.msg("report.consistent", nil))
	} else {
		r.line("%s", r.msg("report.inconsistent_header", nil))
		for i, inc := range v.Inconsistent {
			if i == maxInconsistentShown {
				r.line("   %s", r.msg("report.more", map[string]any{"Count": len(v.Inconsistent) - maxInconsistentShown}))
				break
			}
			r.line("   - %s", r.msg("report.inconsistent_entry", map[string]any{
				"BaseKey":  inc.BaseKey,
				"Category": inc.Category,
				"Display":  inc.Display,
				"Expected": inc.Expected,
			}))
		}
	}
}

// RenderMinimization prints the pruning results; paths maps each variant to
// the file the minimized store was written to.
func (r *Renderer) RenderMinimization(a *entities.Analysis, paths map[string]string) {
	r.line("")
	r.line("%s", r.msg("report.minimize_header", nil))
	r.line("%s", strings.Repeat("-", 40))
	for i := range a.Variants {
		v := &a.Variants[i]
		if v.Minimized == nil {
			continue
		}
		r.line("%s", r.msg("report.reduction", map[string]any{
			"Variant": strings.ToUpper(v.Store.Variant),
			"From":    v.Minimized.OriginalCount,
			"To":      v.Minimized.PrunedCount,
			"Percent": fmt.Sprintf("%.1f", v.Minimized.Reduction),
		}))
		if path, ok := paths[v.Store.Variant]; ok {
			r.line("   %s", r.msg("report.saved_to", map[string]any{"Path": path}))
		}
	}
}

func (r *Renderer) RenderMappingSaved(path string) {
	r.line("")
	r.line("%s", r.msg("report.mapping_saved", map[string]any{"Path": path}))
}

// RenderHints prints the closing tips for the switches that were left off.
func (r *Renderer) RenderHints(minimize, mapping bool) {
	if minimize && mapping {
		return
	}
	r.line("")
	if !minimize {
		r.line("%s", r.msg("report.hint_minimize", nil))
	}
	if !mapping {
		r.line("%s", r.msg("report.hint_mapping", nil))
	}
}
