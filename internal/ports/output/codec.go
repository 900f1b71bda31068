package output

import (
	"context"
	"io"

	"tscat/internal/domain/entities"
)

// CatalogCodec reads and writes the translation source format.
type CatalogCodec interface {
	Decode(r io.Reader) (*entities.Catalog, error)
	Encode(w io.Writer, cat *entities.Catalog) error
	LoadFile(path string) (*entities.Catalog, error)
	// SaveFile replaces path atomically, keeping its permissions.
	SaveFile(path string, cat *entities.Catalog) error
	LoadDir(ctx context.Context, dir string) ([]*entities.Catalog, error)
}

// Exporter converts a catalog into another message file format.
type Exporter interface {
	Export(w io.Writer, cat *entities.Catalog, format string) error
	// FileName is the name under which the export of cat must be saved.
	FileName(cat *entities.Catalog, format string) (string, error)
	// Check parses an exported file named name and returns its message count.
	Check(data []byte, name string) (int, error)
}
