package application

import (
	"rushlint/internal/domain/entities"
	"rushlint/internal/ports/input"
	"rushlint/internal/ports/output"
)

// Ensure AnalyzerService implements the input.Analyzer port.
var _ input.Analyzer = (*AnalyzerService)(nil)

// AnalyzerService runs the full pipeline: extract used keys, parse each
// variant's store, reconcile, check, minimize. A variant whose store fails to
// parse is recorded as skipped and the run continues; the whole run never
// aborts because of a single bad input.
type AnalyzerService struct {
	extractor *Extractor
	parser    *StoreParser
	checker   *Checker
	sources   output.SourceProvider
	stores    output.StoreProvider
}

func NewAnalyzerService(
	extractor *Extractor,
	parser *StoreParser,
	checker *Checker,
	sources output.SourceProvider,
	stores output.StoreProvider,
) *AnalyzerService {
	return &AnalyzerService{
		extractor: extractor,
		parser:    parser,
		checker:   checker,
		sources:   sources,
		stores:    stores,
	}
}

func (s *AnalyzerService) Analyze() (*entities.Analysis, error) {
	blobs, warnings, err := s.sources.Blobs()
	if err != nil {
		return nil, err
	}
	used := s.extractor.Extract(blobs)

	files, storeWarnings, err := s.stores.Stores()
	if err != nil {
		return nil, err
	}

	analysis := &entities.Analysis{
		UsedKeys: used.Sorted(),
		Warnings: append(warnings, storeWarnings...),
	}

	for _, file := range files {
		store, err := s.parser.Parse(file)
		if err != nil {
			analysis.Skipped = append(analysis.Skipped, entities.SkippedVariant{
				Variant: file.Variant,
				Path:    file.Path,
				Reason:  err.Error(),
			})
			continue
		}

		unused, missing := Reconcile(used, store)
		redundant, inconsistent := s.checker.Check(store)

		analysis.Variants = append(analysis.Variants, entities.VariantAnalysis{
			Store:        store,
			Unused:       unused,
			Missing:      missing,
			Redundant:    redundant,
			Inconsistent: inconsistent,
			Minimized:    Minimize(used, store),
		})
	}

	return analysis, nil
}
