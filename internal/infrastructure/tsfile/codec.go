package tsfile

import (
	"context"
	"io"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogCodec = Codec{}

// Codec exposes the package functions as an output.CatalogCodec.
type Codec struct{}

func (Codec) Decode(r io.Reader) (*entities.Catalog, error) { return Decode(r) }

func (Codec) Encode(w io.Writer, cat *entities.Catalog) error { return Encode(w, cat) }

func (Codec) LoadFile(path string) (*entities.Catalog, error) { return LoadFile(path) }

func (Codec) SaveFile(path string, cat *entities.Catalog) error { return SaveFile(path, cat) }

func (Codec) LoadDir(ctx context.Context, dir string) ([]*entities.Catalog, error) {
	return LoadDir(ctx, dir)
}
