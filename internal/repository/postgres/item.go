package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/itemgraph/internal/model"
)

var _ model.ItemStore = (*ItemRepository)(nil)

const itemColumns = `id, title, description, posted_on, owner_id`

type ItemRepository struct {
	db DBTX
}

func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{
		db: db,
	}
}

func scanItem(row rowScanner) (model.Item, error) {
	var item model.Item
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.PostedOn, &item.OwnerID)
	return item, err
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (model.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		return model.Item{}, fmt.Errorf("failed to get item by id: %w", err)
	}

	return item, nil
}

func (r *ItemRepository) List(ctx context.Context, filter model.ItemFilter) ([]model.Item, error) {
	var (
		conds []string
		args  []any
	)
	if filter.TitleLike != "" {
		args = append(args, containsArg(filter.TitleLike))
		conds = append(conds, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.DescriptionLike != "" {
		args = append(args, containsArg(filter.DescriptionLike))
		conds = append(conds, fmt.Sprintf("description ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.OwnerID != 0 {
		args = append(args, filter.OwnerID)
		conds = append(conds, fmt.Sprintf("owner_id = $%d", len(args)))
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

func (r *ItemRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	query := `INSERT INTO items (title, description, posted_on, owner_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING ` + itemColumns

	saved, err := scanItem(r.db.QueryRowContext(ctx, query,
		item.Title, item.Description, model.DateOnly(item.PostedOn), item.OwnerID,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Item{}, fmt.Errorf("%w: owner with id %d", model.ErrNotFound, item.OwnerID)
		}
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return saved, nil
}

func (r *ItemRepository) Update(ctx context.Context, item model.Item) (model.Item, error) {
	query := `UPDATE items
			  SET title = $2, description = $3, posted_on = $4, owner_id = $5
			  WHERE id = $1
			  RETURNING ` + itemColumns

	saved, err := scanItem(r.db.QueryRowContext(ctx, query,
		item.ID, item.Title, item.Description, model.DateOnly(item.PostedOn), item.OwnerID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, model.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return model.Item{}, fmt.Errorf("%w: owner with id %d", model.ErrNotFound, item.OwnerID)
		}
		return model.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	return saved, nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}

	return nil
}
