package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// FoodRepository covers food categories and food items.
type FoodRepository interface {
	CreateCategory(ctx context.Context, category *domain.FoodCategory) error
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.FoodCategory, error)

	CreateItem(ctx context.Context, item *domain.FoodItem) error
	UpdateItem(ctx context.Context, item *domain.FoodItem) error
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*domain.FoodItem, error)
	ListItems(ctx context.Context, categoryID string, page, pageSize int) ([]domain.FoodItem, int64, error)
	// UpdateSalesTotals stores the recomputed cash revenue and quantity for
	// a dish.
	UpdateSalesTotals(ctx context.Context, itemID string, revenue float64, quantity int) error
}

type foodRepository struct {
	pool *pgxpool.Pool
}

// NewFoodRepository returns a Postgres-backed implementation.
func NewFoodRepository(pool *pgxpool.Pool) FoodRepository {
	return &foodRepository{pool: pool}
}

func (r *foodRepository) CreateCategory(ctx context.Context, category *domain.FoodCategory) error {
	const query = `
        INSERT INTO food_categories (name) VALUES ($1)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, category.Name).Scan(&category.ID, &category.CreatedAt)
}

func (r *foodRepository) DeleteCategory(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM food_categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *foodRepository) ListCategories(ctx context.Context) ([]domain.FoodCategory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, created_at FROM food_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.FoodCategory
	for rows.Next() {
		var category domain.FoodCategory
		if err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

const foodItemColumns = `i.id, i.category_id, c.name, i.name, i.total_order_price, i.quantity_sold, i.created_by, i.created_at`

func scanFoodItem(row pgx.Row) (*domain.FoodItem, error) {
	var item domain.FoodItem
	if err := row.Scan(
		&item.ID,
		&item.CategoryID,
		&item.CategoryName,
		&item.Name,
		&item.TotalOrderPrice,
		&item.QuantitySold,
		&item.CreatedBy,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) CreateItem(ctx context.Context, item *domain.FoodItem) error {
	const query = `
        INSERT INTO food_items (category_id, name, created_by)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		item.CategoryID,
		item.Name,
		item.CreatedBy,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *foodRepository) UpdateItem(ctx context.Context, item *domain.FoodItem) error {
	const query = `
        UPDATE food_items SET category_id=$1, name=$2 WHERE id=$3`
	cmd, err := r.pool.Exec(ctx, query, item.CategoryID, item.Name, item.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *foodRepository) DeleteItem(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM food_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *foodRepository) GetItem(ctx context.Context, id string) (*domain.FoodItem, error) {
	const query = `
        SELECT ` + foodItemColumns + `
        FROM food_items i JOIN food_categories c ON c.id = i.category_id
        WHERE i.id=$1`
	return scanFoodItem(r.pool.QueryRow(ctx, query, id))
}

func (r *foodRepository) ListItems(ctx context.Context, categoryID string, page, pageSize int) ([]domain.FoodItem, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM food_items WHERE ($1='' OR category_id::text=$1)`,
		categoryID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT ` + foodItemColumns + `
        FROM food_items i JOIN food_categories c ON c.id = i.category_id
        WHERE ($1='' OR i.category_id::text=$1)
        ORDER BY i.name
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, categoryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.FoodItem
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

func (r *foodRepository) UpdateSalesTotals(ctx context.Context, itemID string, revenue float64, quantity int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE food_items SET total_order_price=$1, quantity_sold=$2 WHERE id=$3`,
		revenue, quantity, itemID)
	return err
}
