package repository

import (
	"context"
	"fmt"

	"turtlewax/migrator/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS migrated_documents (
		id          TEXT PRIMARY KEY,
		doc_type    TEXT NOT NULL,
		data        JSONB NOT NULL,
		migrated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

// DocumentRepository keeps a local snapshot of every document the migration published.
type DocumentRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveDocument(ctx context.Context, doc domain.Document) error
}

type documentRepository struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

func (r *documentRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create migrated_documents table: %w", err)
	}
	return nil
}

func (r *documentRepository) SaveDocument(ctx context.Context, doc domain.Document) error {
	query := `
	INSERT INTO migrated_documents (id, doc_type, data, migrated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (id)
	DO UPDATE SET doc_type = $2, data = $3, migrated_at = now()`
	_, err := r.db.Exec(ctx, query, doc.DocumentID(), doc.DocumentType(), doc)
	if err != nil {
		return fmt.Errorf("failed to save snapshot of %s: %w", doc.DocumentID(), err)
	}

	return nil
}

// noopRepository is used when no database is configured.
type noopRepository struct{}

func NewNoopRepository() DocumentRepository {
	return noopRepository{}
}

func (noopRepository) EnsureSchema(context.Context) error { return nil }

func (noopRepository) SaveDocument(context.Context, domain.Document) error { return nil }
