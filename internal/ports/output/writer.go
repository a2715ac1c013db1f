package output

// ArtifactWriter persists derived artifacts: pruned store documents and the
// generated mapping-table source file. Both return the path written, for the
// report.
type ArtifactWriter interface {
	WriteStore(variant string, fields map[string]string) (string, error)
	WriteMapping(code []byte) (string, error)
}
