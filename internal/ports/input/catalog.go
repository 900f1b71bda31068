package input

import (
	"context"
	"io"

	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

type CatalogUseCase interface {
	Load(ctx context.Context, path string) (*entities.Catalog, error)
	LoadDir(ctx context.Context, dir string) ([]*entities.Catalog, error)
	Lint(cat *entities.Catalog) *entities.Report
	VerifyRoundTrip(cat *entities.Catalog) error
	Format(cat *entities.Catalog, w io.Writer) error
	Save(ctx context.Context, cat *entities.Catalog) error
	Export(cat *entities.Catalog, format string, w io.Writer) error
	Render(cat *entities.Catalog, format string) (name string, data []byte, err error)
	CheckExport(data []byte, name string) (int, error)
	Import(ctx context.Context, cat *entities.Catalog) error
	Stored(ctx context.Context) ([]output.StoredCatalog, error)
	Fetch(ctx context.Context, language string) (*entities.Catalog, error)
}
