package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rushlint/internal/ports/output"
)

// Writer persists minimized stores and the generated mapping source file.
type Writer struct {
	dir         string
	mappingFile string
}

var _ output.ArtifactWriter = (*Writer)(nil)

func NewWriter(dir, mappingFile string) *Writer {
	return &Writer{dir: dir, mappingFile: mappingFile}
}

// WriteStore serializes the pruned field map as indented JSON. Map keys are
// marshalled in sorted order, so the output is deterministic.
func (w *Writer) WriteStore(variant string, fields map[string]string) (string, error) {
	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s store: %w", variant, err)
	}
	path := filepath.Join(w.dir, "optimized_"+variant+".json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write %s store: %w", variant, err)
	}
	return path, nil
}

func (w *Writer) WriteMapping(code []byte) (string, error) {
	path := filepath.Join(w.dir, w.mappingFile)
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return "", fmt.Errorf("write mapping code: %w", err)
	}
	return path, nil
}
