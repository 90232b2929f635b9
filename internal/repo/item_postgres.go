package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/omercengiz/warehouse-pro/internal/models"
)

type PostgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{db: db}
}

func (r *PostgresItemRepository) Create(item models.Item) (models.Item, error) {
	query := `INSERT INTO items (name, weight, quantity, notes, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item.UpdatedAt = time.Now().UTC()
	err := r.db.QueryRowContext(ctx, query, item.Name, item.Weight, item.Quantity, item.Notes, item.UpdatedAt).Scan(&item.ID)
	return item, err
}

func (r *PostgresItemRepository) GetAll() ([]models.Item, error) {
	query := `SELECT id, name, weight, quantity, notes, updated_at FROM items ORDER BY name, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *PostgresItemRepository) GetByID(id int) (models.Item, error) {
	query := `SELECT id, name, weight, quantity, notes, updated_at FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var it models.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Name, &it.Weight, &it.Quantity, &it.Notes, &it.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	return it, err
}

func (r *PostgresItemRepository) Update(item models.Item) (models.Item, error) {
	query := `UPDATE items SET name = $1, weight = $2, notes = $3, updated_at = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	item.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, query, item.Name, item.Weight, item.Notes, item.UpdatedAt, item.ID)
	if err != nil {
		return models.Item{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return r.GetByID(item.ID)
}

func (r *PostgresItemRepository) Delete(id int) error {
	query := `DELETE FROM items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// AdjustQuantity applies a relative change inside a transaction. The row is
// locked first so the old quantity, the bounds check and the write form one
// atomic step per item.
func (r *PostgresItemRepository) AdjustQuantity(id, delta int) (models.Item, int, error) {
	return r.changeQuantity(id, func(old int) int { return old + delta })
}

// SetQuantity overwrites the quantity inside a transaction.
func (r *PostgresItemRepository) SetQuantity(id, value int) (models.Item, int, error) {
	return r.changeQuantity(id, func(int) int { return value })
}

func (r *PostgresItemRepository) changeQuantity(id int, next func(old int) int) (models.Item, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var old int
	err = tx.QueryRowContext(ctx, `SELECT quantity FROM items WHERE id = $1 FOR UPDATE`, id).Scan(&old)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, 0, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, 0, err
	}

	newQty := next(old)
	if newQty < 0 {
		return models.Item{}, 0, ErrInvalidQuantityChange
	}
	if newQty > models.MaxQuantity {
		return models.Item{}, 0, ErrQuantityOutOfRange
	}

	var it models.Item
	err = tx.QueryRowContext(ctx, `
		UPDATE items
		SET quantity = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, name, weight, quantity, notes, updated_at
	`, newQty, time.Now().UTC(), id).
		Scan(&it.ID, &it.Name, &it.Weight, &it.Quantity, &it.Notes, &it.UpdatedAt)
	if err != nil {
		return models.Item{}, 0, err
	}

	if err := tx.Commit(); err != nil {
		return models.Item{}, 0, fmt.Errorf("failed to commit quantity change: %w", err)
	}
	return it, old, nil
}

func (r *PostgresItemRepository) ZeroQuantityItems() ([]models.Item, error) {
	query := `SELECT id, name, weight, quantity, notes, updated_at FROM items WHERE quantity = 0 ORDER BY name, id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Weight, &it.Quantity, &it.Notes, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
