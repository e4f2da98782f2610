package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ErrItemNotFound is returned when no row matches the given id.
var ErrItemNotFound = errors.New("item not found")

// Store persists inventory items.
type Store interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id int64) error
}

// PgStore is the PostgreSQL Store.
type PgStore struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

// NewPgStore creates a Store backed by pool.
func NewPgStore(pool *pgxpool.Pool, log *zap.Logger) *PgStore {
	return &PgStore{db: pool, log: log}
}

const itemColumns = `id, name, description, quantity, price, created_at, updated_at`

func scanItem(row pgx.Row, item *Item) error {
	return row.Scan(&item.ID, &item.Name, &item.Description, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt)
}

// List returns every item ordered by id.
func (s *PgStore) List(ctx context.Context) ([]Item, error) {
	rows, err := s.db.Query(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		s.log.Error("Failed to query items", zap.Error(err))
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	result := make([]Item, 0)
	for rows.Next() {
		var item Item
		if err := scanItem(rows, &item); err != nil {
			s.log.Error("Failed to scan item", zap.Error(err))
			return nil, fmt.Errorf("scan item: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		s.log.Error("Error iterating items", zap.Error(err))
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return result, nil
}

// Get returns the item with the given id.
func (s *PgStore) Get(ctx context.Context, id int64) (*Item, error) {
	var item Item
	err := scanItem(s.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		s.log.Error("Failed to get item", zap.Int64("item_id", id), zap.Error(err))
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &item, nil
}

// Create inserts item and fills in its generated columns.
func (s *PgStore) Create(ctx context.Context, item *Item) error {
	const query = `INSERT INTO items (name, description, quantity, price)
	               VALUES ($1, $2, $3, $4)
	               RETURNING ` + itemColumns

	if err := scanItem(s.db.QueryRow(ctx, query, item.Name, item.Description, item.Quantity, item.Price), item); err != nil {
		s.log.Error("Failed to create item", zap.Error(err))
		return fmt.Errorf("insert item: %w", err)
	}
	s.log.Info("Item created", zap.Int64("item_id", item.ID))
	return nil
}

// Update overwrites every mutable column of the row with item.ID and refreshes updated_at.
func (s *PgStore) Update(ctx context.Context, item *Item) error {
	const query = `UPDATE items
	               SET name = $2, description = $3, quantity = $4, price = $5, updated_at = NOW()
	               WHERE id = $1
	               RETURNING ` + itemColumns

	err := scanItem(s.db.QueryRow(ctx, query, item.ID, item.Name, item.Description, item.Quantity, item.Price), item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrItemNotFound
		}
		s.log.Error("Failed to update item", zap.Int64("item_id", item.ID), zap.Error(err))
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	s.log.Info("Item updated", zap.Int64("item_id", item.ID))
	return nil
}

// Delete removes the row with the given id.
func (s *PgStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		s.log.Error("Failed to delete item", zap.Int64("item_id", id), zap.Error(err))
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	s.log.Info("Item deleted", zap.Int64("item_id", id))
	return nil
}
