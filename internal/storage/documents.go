package storage

import (
	"context"
	"fmt"

	"github.com/vitahq/vita/internal/common"
	"github.com/vitahq/vita/internal/model"
)

// AddDocument inserts a new vault document and returns its id.
func (s *SQLiteStorage) AddDocument(ctx context.Context, doc *model.Document) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if doc == nil {
		return 0, fmt.Errorf("%w: doc", ErrNilParameter)
	}
	if err := doc.Validate(); err != nil {
		return 0, fmt.Errorf("invalid document: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (title, category, storage_ref, expiry_date)
		VALUES (?, ?, ?, ?)
	`, doc.Title, string(doc.Category), doc.StorageRef, doc.ExpiryDate)
	if err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get document id: %w", err)
	}
	return id, nil
}

// DeleteDocument removes a document by id.
func (s *SQLiteStorage) DeleteDocument(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("document %d: %w", id, common.ErrNotFound)
	}
	return nil
}

// GetDocuments retrieves all vault documents in insertion order.
func (s *SQLiteStorage) GetDocuments(ctx context.Context) ([]model.Document, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, storage_ref, COALESCE(expiry_date, '')
		FROM documents
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var docs []model.Document
	for rows.Next() {
		var d model.Document
		var category string
		if err := rows.Scan(&d.ID, &d.Title, &category, &d.StorageRef, &d.ExpiryDate); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.Category = model.ParseDocumentCategory(category)
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return docs, nil
}
