package output

import (
	"context"
	"time"

	"tscat/internal/domain/entities"
)

// StoredCatalog describes a catalog kept in a repository.
type StoredCatalog struct {
	Language   string
	Path       string
	Messages   int
	ImportedAt time.Time
}

type CatalogRepository interface {
	// Save replaces the stored catalog for cat.Language.
	Save(ctx context.Context, cat *entities.Catalog) error
	FindByLanguage(ctx context.Context, language string) (*entities.Catalog, error)
	List(ctx context.Context) ([]StoredCatalog, error)
	Delete(ctx context.Context, language string) error
}
