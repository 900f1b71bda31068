package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/input"
	"tscat/internal/ports/output"
)

var _ input.CatalogUseCase = (*CatalogService)(nil)

type CatalogService struct {
	codec    output.CatalogCodec
	exporter output.Exporter
	repo     output.CatalogRepository
	logger   *slog.Logger
}

// NewCatalogService wires the catalog use cases. repo may be nil when no
// store is configured; Import, Stored and Fetch then fail with
// domain.ErrStoreUnavailable.
func NewCatalogService(
	codec output.CatalogCodec,
	exporter output.Exporter,
	repo output.CatalogRepository,
	logger *slog.Logger,
) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		codec:    codec,
		exporter: exporter,
		repo:     repo,
		logger:   logger,
	}
}

func (s *CatalogService) Load(ctx context.Context, path string) (*entities.Catalog, error) {
	cat, err := s.codec.LoadFile(path)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "catalog loaded", "path", path, "language", cat.Language, "messages", cat.Len())
	return cat, nil
}

func (s *CatalogService) LoadDir(ctx context.Context, dir string) ([]*entities.Catalog, error) {
	cats, err := s.codec.LoadDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "catalogs loaded", "dir", dir, "count", len(cats))
	return cats, nil
}

func (s *CatalogService) Lint(cat *entities.Catalog) *entities.Report {
	return Lint(cat)
}

// VerifyRoundTrip re-serializes cat and checks that decoding the output gives
// back the same entries.
func (s *CatalogService) VerifyRoundTrip(cat *entities.Catalog) error {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, cat); err != nil {
		return err
	}
	again, err := s.codec.Decode(&buf)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRoundTrip, err)
	}
	if again.Language != cat.Language {
		return fmt.Errorf("%w: language %q became %q", domain.ErrRoundTrip, cat.Language, again.Language)
	}
	before, after := cat.Messages(), again.Messages()
	if len(before) != len(after) {
		return fmt.Errorf("%w: %d messages became %d", domain.ErrRoundTrip, len(before), len(after))
	}
	for i := range before {
		if !sameEntry(before[i], after[i]) {
			return fmt.Errorf("%w: %s %q changed", domain.ErrRoundTrip, before[i].Context, before[i].Source)
		}
	}
	return nil
}

func sameEntry(a, b *entities.Message) bool {
	return a.Key() == b.Key() &&
		a.Translation == b.Translation &&
		a.Type == b.Type &&
		a.Numerus == b.Numerus &&
		slices.Equal(a.NumerusForms, b.NumerusForms) &&
		slices.Equal(a.Variants, b.Variants) &&
		slices.EqualFunc(a.FormVariants, b.FormVariants, slices.Equal[[]string])
}

func (s *CatalogService) Format(cat *entities.Catalog, w io.Writer) error {
	return s.codec.Encode(w, cat)
}

// Save rewrites cat to the file it was loaded from.
func (s *CatalogService) Save(ctx context.Context, cat *entities.Catalog) error {
	if cat.Path == "" {
		return fmt.Errorf("save %s catalog: no path", cat.Language)
	}
	if err := s.codec.SaveFile(cat.Path, cat); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "catalog saved", "path", cat.Path)
	return nil
}

func (s *CatalogService) Export(cat *entities.Catalog, format string, w io.Writer) error {
	return s.exporter.Export(w, cat, format)
}

// Render exports cat and returns the file name the export must be saved as.
func (s *CatalogService) Render(cat *entities.Catalog, format string) (string, []byte, error) {
	name, err := s.exporter.FileName(cat, format)
	if err != nil {
		return "", nil, err
	}
	var buf bytes.Buffer
	if err := s.exporter.Export(&buf, cat, format); err != nil {
		return "", nil, err
	}
	return name, buf.Bytes(), nil
}

// CheckExport verifies that an exported file loads back as message file.
func (s *CatalogService) CheckExport(data []byte, name string) (int, error) {
	return s.exporter.Check(data, name)
}

func (s *CatalogService) Import(ctx context.Context, cat *entities.Catalog) error {
	if s.repo == nil {
		return domain.ErrStoreUnavailable
	}
	if err := s.repo.Save(ctx, cat); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "catalog imported", "language", cat.Language, "messages", cat.Len())
	return nil
}

func (s *CatalogService) Stored(ctx context.Context) ([]output.StoredCatalog, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.repo.List(ctx)
}

func (s *CatalogService) Fetch(ctx context.Context, language string) (*entities.Catalog, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.repo.FindByLanguage(ctx, language)
}
