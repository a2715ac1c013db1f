package output

import "rushlint/internal/domain/entities"

// SourceProvider hands the analyzer the raw source texts to scan. A file
// that cannot be read becomes a warning, never an error: extraction keeps
// going with the remaining blobs.
type SourceProvider interface {
	Blobs() (blobs []entities.SourceBlob, warnings []string, err error)
}

// StoreProvider hands over each language variant's serialized store document.
// A missing or unreadable store file becomes a warning and the variant is
// simply absent from the result.
type StoreProvider interface {
	Stores() (files []entities.StoreFile, warnings []string, err error)
}
