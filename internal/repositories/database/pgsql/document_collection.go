package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/employee_directory_app/internal/apperrors"
	"github.com/SscSPs/employee_directory_app/internal/models"
	"github.com/SscSPs/employee_directory_app/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// documentCollection stores JSON documents in a table of shape
// (id TEXT PRIMARY KEY, doc JSONB, inserted_at TIMESTAMPTZ).
// table is always a compile-time constant, never user input.
type documentCollection struct {
	BaseRepository
	table string
}

func (c *documentCollection) list(ctx context.Context) (docs []models.RawDocument, err error) {
	defer c.observe("list", time.Now(), &err)

	query := fmt.Sprintf(`SELECT id, doc FROM %s ORDER BY inserted_at, id;`, c.table)
	rows, err := c.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w: %w", c.table, apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	docs, err = pgx.CollectRows(rows, scanRawDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w: %w", c.table, apperrors.ErrStoreUnavailable, err)
	}
	return docs, nil
}

func (c *documentCollection) find(ctx context.Context, id string) (doc models.RawDocument, err error) {
	defer c.observe("find", time.Now(), &err)

	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE id = $1;`, c.table)
	var body []byte
	err = c.Pool.QueryRow(ctx, query, id).Scan(&doc.ID, &body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.RawDocument{}, apperrors.ErrNotFound
		}
		return models.RawDocument{}, fmt.Errorf("failed to find %s document %s: %w", c.table, id, err)
	}
	doc.Body = body
	return doc, nil
}

func (c *documentCollection) create(ctx context.Context, doc any) (id string, err error) {
	defer c.observe("create", time.Now(), &err)

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s document: %w", c.table, err)
	}
	id = uuid.NewString()
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2);`, c.table)
	if _, err = c.Pool.Exec(ctx, query, id, body); err != nil {
		return "", fmt.Errorf("failed to insert %s document: %w", c.table, err)
	}
	return id, nil
}

// merge applies a shallow JSON merge of patch onto the stored document.
func (c *documentCollection) merge(ctx context.Context, id string, patch any) (err error) {
	defer c.observe("update", time.Now(), &err)

	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode %s patch: %w", c.table, err)
	}
	query := fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1;`, c.table)
	tag, err := c.Pool.Exec(ctx, query, id, body)
	if err != nil {
		return fmt.Errorf("failed to update %s document %s: %w", c.table, id, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// remove is idempotent: deleting an absent id succeeds.
func (c *documentCollection) remove(ctx context.Context, id string) (err error) {
	defer c.observe("delete", time.Now(), &err)

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1;`, c.table)
	if _, err = c.Pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete %s document %s: %w", c.table, id, err)
	}
	return nil
}

// observe reads *err when the deferred call runs, after the named result is set.
func (c *documentCollection) observe(operation string, started time.Time, err *error) {
	metrics.ObserveStore(driverName, c.table, operation, *err, started)
}

func scanRawDocument(row pgx.CollectableRow) (models.RawDocument, error) {
	var doc models.RawDocument
	var body []byte
	if err := row.Scan(&doc.ID, &body); err != nil {
		return doc, err
	}
	doc.Body = body
	return doc, nil
}
