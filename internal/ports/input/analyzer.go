package input

import "rushlint/internal/domain/entities"

type Analyzer interface {
	Analyze() (*entities.Analysis, error)
}
