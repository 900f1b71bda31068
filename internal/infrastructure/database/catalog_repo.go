package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"tscat/internal/domain"
	"tscat/internal/domain/entities"
	"tscat/internal/ports/output"
)

var _ output.CatalogRepository = (*CatalogRepository)(nil)

// CatalogRepository implements output.CatalogRepository on PostgreSQL.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a CatalogRepository.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) Save(ctx context.Context, cat *entities.Catalog) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalogs WHERE language = $1`, cat.Language); err != nil {
		return fmt.Errorf("delete previous catalog: %w", err)
	}

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO catalogs (language, source_language, version, path)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		cat.Language, cat.SourceLanguage, cat.Version, cat.Path,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}

	rows := messagesToRows(id, cat)
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"messages"}, messageColumns, pgx.CopyFromRows(rows)); err != nil {
		return fmt.Errorf("copy messages: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

func (r *CatalogRepository) FindByLanguage(ctx context.Context, language string) (*entities.Catalog, error) {
	var (
		id  int64
		cat = &entities.Catalog{Language: language}
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, source_language, version, path FROM catalogs WHERE language = $1`,
		language,
	).Scan(&id, &cat.SourceLanguage, &cat.Version, &cat.Path)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCatalogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get catalog by language: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT context_position, context, source, comment, extra_comment, translator_comment,
		        old_source, message_id, numerus, translation, numerus_forms, translation_type, locations,
		        variants
		 FROM messages WHERE catalog_id = $1 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	msgs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (messageRow, error) {
		var m messageRow
		err := row.Scan(&m.ContextPosition, &m.Context, &m.Source, &m.Comment, &m.ExtraComment,
			&m.TranslatorComment, &m.OldSource, &m.MessageID, &m.Numerus, &m.Translation,
			&m.NumerusForms, &m.TranslationType, &m.Locations, &m.Variants)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}

	cat.Contexts = rowsToContexts(msgs)
	cat.Index()
	return cat, nil
}

func (r *CatalogRepository) List(ctx context.Context) ([]output.StoredCatalog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.language, c.path, c.imported_at, count(m.id)
		 FROM catalogs c LEFT JOIN messages m ON m.catalog_id = c.id
		 GROUP BY c.id ORDER BY c.language`,
	)
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (output.StoredCatalog, error) {
		var (
			s          output.StoredCatalog
			importedAt pgtype.Timestamptz
			n          int64
		)
		if err := row.Scan(&s.Language, &s.Path, &importedAt, &n); err != nil {
			return s, err
		}
		s.ImportedAt = pgtypeTimestamptzToTime(importedAt)
		s.Messages = int(n)
		return s, nil
	})
	if err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return out, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, language string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM catalogs WHERE language = $1`, language)
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCatalogNotFound
	}
	return nil
}
