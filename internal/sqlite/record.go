package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/bizdesk/internal/entity"
	"github.com/rpggio/bizdesk/internal/repository"
)

// RecordRepository implements entity.Repository for SQLite. Records of a
// kind are stored as JSON documents ordered by an insertion position.
type RecordRepository[T entity.Record[T]] struct {
	db   *DB
	kind string
}

// NewRecordRepository creates a RecordRepository for kind
func NewRecordRepository[T entity.Record[T]](db *DB, kind string) *RecordRepository[T] {
	return &RecordRepository[T]{db: db, kind: kind}
}

// List returns every record of the kind in insertion order
func (r *RecordRepository[T]) List(ctx context.Context) ([]T, error) {
	query := `
		SELECT payload
		FROM records
		WHERE kind = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, r.kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	recs := []T{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec, err := r.decode(payload)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}

	return recs, nil
}

// Get retrieves a record by ID
func (r *RecordRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	query := `SELECT payload FROM records WHERE kind = ? AND id = ?`

	var payload string
	err := r.db.QueryRowContext(ctx, query, r.kind, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, repository.ErrNotFound
	}
	if err != nil {
		return zero, fmt.Errorf("failed to get record: %w", err)
	}

	return r.decode(payload)
}

// Insert appends a record after the current last position
func (r *RecordRepository[T]) Insert(ctx context.Context, rec T) error {
	if rec.Identity() == "" {
		return repository.ErrInvalidInput
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	query := `
		INSERT INTO records (kind, id, position, payload, created_at, modified_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM records WHERE kind = ?), ?, ?, ?)
	`

	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, query, r.kind, rec.Identity(), r.kind, string(payload), now, now)
	if err != nil {
		if duplicateKey(err, "records") {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create record: %w", err)
	}

	return nil
}

// Replace overwrites the payload of an existing record, keeping its position
func (r *RecordRepository[T]) Replace(ctx context.Context, rec T) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	query := `
		UPDATE records
		SET payload = ?, modified_at = ?
		WHERE kind = ? AND id = ?
	`

	result, err := r.db.ExecContext(ctx, query, string(payload), time.Now().UTC(), r.kind, rec.Identity())
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Remove deletes a record
func (r *RecordRepository[T]) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM records WHERE kind = ? AND id = ?`

	result, err := r.db.ExecContext(ctx, query, r.kind, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *RecordRepository[T]) decode(payload string) (T, error) {
	var rec T
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return rec, fmt.Errorf("failed to decode %s record: %w", r.kind, err)
	}
	return rec, nil
}
