package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"bistro-boss/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Table names. Never built from user input.
const (
	tableUsers    = "users"
	tableMenu     = "menu"
	tableReviews  = "reviews"
	tableCarts    = "carts"
	tablePayments = "payments"
)

const recordColumns = "id, doc, created_at, updated_at"

// querier is satisfied by both the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// UpdateOutcome mirrors a document-store update result.
type UpdateOutcome struct {
	Matched  int64
	Modified int64
}

// collection stores JSONB documents in one table and offers the handful of
// document operations the handlers need.
type collection struct {
	db    querier
	table string
	log   *zap.Logger
}

func newCollection(db querier, table string, log *zap.Logger) *collection {
	return &collection{
		db:    db,
		table: table,
		log:   log.With(zap.String("collection", table)),
	}
}

// withTx binds the collection to tx for the duration of a unit of work.
func (c *collection) withTx(tx pgx.Tx) *collection {
	return &collection{db: tx, table: c.table, log: c.log}
}

func (c *collection) insert(ctx context.Context, doc entity.Document) (*entity.Record, error) {
	now := time.Now().UTC()
	record := &entity.Record{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Doc: doc.Without(entity.IDField),
	}

	body, err := json.Marshal(record.Doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s document: %w", c.table, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc, created_at, updated_at) VALUES ($1, $2, $3, $4)`, c.table)
	if _, err := c.db.Exec(ctx, query, record.ID, body, record.CreatedAt, record.UpdatedAt); err != nil {
		c.log.Error("Failed to insert document", zap.Error(err))
		return nil, fmt.Errorf("insert into %s: %w", c.table, err)
	}

	return record, nil
}

// findByID returns nil, nil when no document has the id.
func (c *collection) findByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, recordColumns, c.table)

	record, err := scanRecord(c.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		c.log.Error("Failed to find document by ID", zap.Error(err), zap.String("id", id.String()))
		return nil, fmt.Errorf("find %s by ID %s: %w", c.table, id.String(), err)
	}

	return record, nil
}

// findOneBy returns the first document whose top-level field equals value.
func (c *collection) findOneBy(ctx context.Context, field, value string) (*entity.Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE doc->>$1 = $2 ORDER BY created_at LIMIT 1`, recordColumns, c.table)

	record, err := scanRecord(c.db.QueryRow(ctx, query, field, value))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		c.log.Error("Failed to find document", zap.Error(err), zap.String("field", field))
		return nil, fmt.Errorf("find %s by %s: %w", c.table, field, err)
	}

	return record, nil
}

// findAll lists every document, or only those whose field equals value
// when field is set.
func (c *collection) findAll(ctx context.Context, field, value string) ([]entity.Record, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if field == "" {
		query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at`, recordColumns, c.table)
		rows, err = c.db.Query(ctx, query)
	} else {
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE doc->>$1 = $2 ORDER BY created_at`, recordColumns, c.table)
		rows, err = c.db.Query(ctx, query, field, value)
	}
	if err != nil {
		c.log.Error("Failed to list documents", zap.Error(err), zap.String("field", field))
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	defer rows.Close()

	records := make([]entity.Record, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			c.log.Error("Failed to scan document row", zap.Error(err))
			return nil, fmt.Errorf("scan %s row: %w", c.table, err)
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		c.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate %s rows: %w", c.table, err)
	}

	return records, nil
}

// setFields overwrites the given top-level fields. A document that the merge
// would leave equal counts as matched but not modified. Containment is not
// enough here: arrays and nested objects are replaced, not merged.
func (c *collection) setFields(ctx context.Context, id uuid.UUID, fields entity.Document) (UpdateOutcome, error) {
	body, err := json.Marshal(fields.Without(entity.IDField))
	if err != nil {
		return UpdateOutcome{}, fmt.Errorf("encode %s update: %w", c.table, err)
	}

	query := fmt.Sprintf(`
		WITH target AS (
			SELECT id, (doc || $2::jsonb) = doc AS unchanged FROM %[1]s WHERE id = $1
		), updated AS (
			UPDATE %[1]s t SET doc = t.doc || $2::jsonb, updated_at = NOW()
			FROM target
			WHERE t.id = target.id AND NOT target.unchanged
			RETURNING t.id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)
	`, c.table)

	var outcome UpdateOutcome
	if err := c.db.QueryRow(ctx, query, id, body).Scan(&outcome.Matched, &outcome.Modified); err != nil {
		c.log.Error("Failed to update document", zap.Error(err), zap.String("id", id.String()))
		return UpdateOutcome{}, fmt.Errorf("update %s %s: %w", c.table, id.String(), err)
	}

	return outcome, nil
}

func (c *collection) deleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table)

	result, err := c.db.Exec(ctx, query, id)
	if err != nil {
		c.log.Error("Failed to delete document", zap.Error(err), zap.String("id", id.String()))
		return 0, fmt.Errorf("delete %s %s: %w", c.table, id.String(), err)
	}

	return result.RowsAffected(), nil
}

// deleteMany removes every document whose id is in ids.
func (c *collection) deleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ANY($1::uuid[])`, c.table)

	result, err := c.db.Exec(ctx, query, ids)
	if err != nil {
		c.log.Error("Failed to delete documents", zap.Error(err), zap.Int("count", len(ids)))
		return 0, fmt.Errorf("delete many %s: %w", c.table, err)
	}

	return result.RowsAffected(), nil
}

// estimatedCount reads the live-row estimate kept by the statistics
// collector instead of scanning the table.
func (c *collection) estimatedCount(ctx context.Context) (int64, error) {
	query := `SELECT COALESCE((SELECT n_live_tup FROM pg_stat_user_tables WHERE relname = $1), 0)`

	var count int64
	if err := c.db.QueryRow(ctx, query, c.table).Scan(&count); err != nil {
		c.log.Error("Failed to estimate document count", zap.Error(err))
		return 0, fmt.Errorf("estimate %s count: %w", c.table, err)
	}

	return count, nil
}

func scanRecord(row rowScanner) (*entity.Record, error) {
	var (
		record entity.Record
		body   []byte
	)
	if err := row.Scan(&record.ID, &body, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, err
	}

	record.Doc = entity.Document{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &record.Doc); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", record.ID.String(), err)
		}
	}

	return &record, nil
}
