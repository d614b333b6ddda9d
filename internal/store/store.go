// Package store keeps normalized documents in PostgreSQL, one row per
// document plus one row per saved revision.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/codec"
	"github.com/blacksmoke26/dawn-of-man-generator-sub003/internal/models"
)

// Pool is the part of a pgx pool the store needs.
type Pool interface {
	BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error)
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

var (
	// ErrInvalidDocument is returned when the name is blank or the text does
	// not parse as an environment or scenario.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrDuplicateRevision is returned when the normalized text matches the
	// latest revision.
	ErrDuplicateRevision = errors.New("duplicate revision")
	// ErrNotFound is returned when no document has the requested name.
	ErrNotFound = errors.New("document not found")
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 500
)

// Schema creates the library tables.
const Schema = `
CREATE SCHEMA IF NOT EXISTS dom;

CREATE TABLE IF NOT EXISTS dom.documents (
    id               BIGSERIAL PRIMARY KEY,
    name             TEXT NOT NULL UNIQUE,
    kind             TEXT NOT NULL,
    current_revision INTEGER NOT NULL DEFAULT 0,
    updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS dom.document_revisions (
    id          BIGSERIAL PRIMARY KEY,
    document_id BIGINT NOT NULL REFERENCES dom.documents(id) ON DELETE CASCADE,
    revision    INTEGER NOT NULL,
    xml         TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (document_id, revision)
);
`

type Store struct {
	db Pool
}

func New(db Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the tables when they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Save normalizes raw and stores it as the next revision of name.
func (s *Store) Save(ctx context.Context, name string, raw []byte) (rev models.Revision, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Revision{}, fmt.Errorf("%w: blank name", ErrInvalidDocument)
	}

	doc, xml, err := codec.Normalize(string(raw))
	if err != nil {
		slog.Warn("rejected document", "name", name, "error", err)
		return models.Revision{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return models.Revision{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				slog.Error("failed to rollback document transaction", "error", rbErr)
			}
			return
		}

		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	rev = models.Revision{Name: name, Kind: doc.Kind(), XML: xml}

	var current int
	if err = tx.QueryRow(ctx, `
        INSERT INTO dom.documents (name, kind)
        VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE
        SET kind = EXCLUDED.kind
        RETURNING id, current_revision
    `, name, rev.Kind).Scan(&rev.DocumentID, &current); err != nil {
		return models.Revision{}, fmt.Errorf("upsert document: %w", err)
	}

	if current > 0 {
		var latest string
		scanErr := tx.QueryRow(ctx,
			`SELECT xml FROM dom.document_revisions WHERE document_id = $1 AND revision = $2`,
			rev.DocumentID, current,
		).Scan(&latest)
		if scanErr != nil && !errors.Is(scanErr, pgx.ErrNoRows) {
			return models.Revision{}, fmt.Errorf("load latest revision: %w", scanErr)
		}
		if latest == xml {
			slog.Info("document unchanged", "name", name, "revision", current)
			return models.Revision{}, ErrDuplicateRevision
		}
	}

	rev.Revision = current + 1
	if err = tx.QueryRow(ctx, `
        INSERT INTO dom.document_revisions (document_id, revision, xml)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `, rev.DocumentID, rev.Revision, xml).Scan(&rev.ID, &rev.CreatedAt); err != nil {
		return models.Revision{}, fmt.Errorf("insert revision: %w", err)
	}

	if _, err = tx.Exec(ctx,
		`UPDATE dom.documents SET current_revision = $2, updated_at = now() WHERE id = $1`,
		rev.DocumentID, rev.Revision,
	); err != nil {
		return models.Revision{}, fmt.Errorf("bump revision: %w", err)
	}

	slog.Info("saved document", "name", name, "kind", rev.Kind, "revision", rev.Revision)
	return rev, nil
}

// Get returns the latest revision of name.
func (s *Store) Get(ctx context.Context, name string) (models.Revision, error) {
	var rev models.Revision
	err := s.db.QueryRow(ctx, `
        SELECT r.id, d.id, d.name, d.kind, r.revision, r.xml, r.created_at
        FROM dom.documents d
        JOIN dom.document_revisions r
          ON r.document_id = d.id AND r.revision = d.current_revision
        WHERE d.name = $1
    `, strings.TrimSpace(name)).Scan(
		&rev.ID, &rev.DocumentID, &rev.Name, &rev.Kind,
		&rev.Revision, &rev.XML, &rev.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Revision{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return models.Revision{}, fmt.Errorf("get document: %w", err)
	}
	return rev, nil
}

// List returns documents, most recently updated first. limit is clamped to
// [1, MaxListLimit] with DefaultListLimit for zero or less.
func (s *Store) List(ctx context.Context, limit int) ([]models.Document, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, name, kind, current_revision, updated_at
        FROM dom.documents
        ORDER BY updated_at DESC, name
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.Name, &d.Kind, &d.CurrentRevision, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}
