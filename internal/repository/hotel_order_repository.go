package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// HotelOrderRepository defines persistence access for counter sales.
type HotelOrderRepository interface {
	Create(ctx context.Context, order *domain.HotelOrder) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.HotelOrder, error)
	List(ctx context.Context, page, pageSize int) ([]domain.HotelOrder, int64, error)

	CreateItem(ctx context.Context, item *domain.HotelOrderItem) error
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*domain.HotelOrderItem, error)
	ListItems(ctx context.Context, orderID string) ([]domain.HotelOrderItem, error)
	ListAllItems(ctx context.Context, page, pageSize int) ([]domain.HotelOrderItem, int64, error)
	// CashTotals sums revenue and quantity of non-credit sales for a dish.
	CashTotals(ctx context.Context, foodItemID string) (revenue float64, quantity int, err error)
}

type hotelOrderRepository struct {
	pool *pgxpool.Pool
}

// NewHotelOrderRepository returns a Postgres-backed implementation.
func NewHotelOrderRepository(pool *pgxpool.Pool) HotelOrderRepository {
	return &hotelOrderRepository{pool: pool}
}

func (r *hotelOrderRepository) Create(ctx context.Context, order *domain.HotelOrder) error {
	const query = `
        INSERT INTO hotel_orders (created_by) VALUES ($1)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, order.CreatedBy).Scan(&order.ID, &order.CreatedAt)
}

func (r *hotelOrderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hotel_orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hotelOrderRepository) GetByID(ctx context.Context, id string) (*domain.HotelOrder, error) {
	const query = `
        SELECT o.id, o.created_by, o.created_at, COALESCE(SUM(i.price), 0)
        FROM hotel_orders o
        LEFT JOIN hotel_order_items i ON i.order_id = o.id
        WHERE o.id=$1
        GROUP BY o.id`

	var order domain.HotelOrder
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CreatedBy,
		&order.CreatedAt,
		&order.Total,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *hotelOrderRepository) List(ctx context.Context, page, pageSize int) ([]domain.HotelOrder, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hotel_orders`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT o.id, o.created_by, o.created_at, COALESCE(SUM(i.price), 0)
        FROM hotel_orders o
        LEFT JOIN hotel_order_items i ON i.order_id = o.id
        GROUP BY o.id
        ORDER BY o.created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.HotelOrder
	for rows.Next() {
		var order domain.HotelOrder
		if err := rows.Scan(&order.ID, &order.CreatedBy, &order.CreatedAt, &order.Total); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

const hotelItemColumns = `i.id, i.order_id, i.food_item_id, f.name, i.quantity, i.price, i.debtor_name, i.on_credit, i.created_at`

func scanHotelOrderItem(row pgx.Row) (*domain.HotelOrderItem, error) {
	var item domain.HotelOrderItem
	if err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.FoodItemID,
		&item.FoodName,
		&item.Quantity,
		&item.Price,
		&item.DebtorName,
		&item.OnCredit,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *hotelOrderRepository) CreateItem(ctx context.Context, item *domain.HotelOrderItem) error {
	const query = `
        INSERT INTO hotel_order_items (order_id, food_item_id, quantity, price, debtor_name, on_credit)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		item.OrderID,
		item.FoodItemID,
		item.Quantity,
		item.Price,
		item.DebtorName,
		item.OnCredit,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *hotelOrderRepository) DeleteItem(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hotel_order_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hotelOrderRepository) GetItem(ctx context.Context, id string) (*domain.HotelOrderItem, error) {
	const query = `
        SELECT ` + hotelItemColumns + `
        FROM hotel_order_items i JOIN food_items f ON f.id = i.food_item_id
        WHERE i.id=$1`
	return scanHotelOrderItem(r.pool.QueryRow(ctx, query, id))
}

func (r *hotelOrderRepository) ListItems(ctx context.Context, orderID string) ([]domain.HotelOrderItem, error) {
	const query = `
        SELECT ` + hotelItemColumns + `
        FROM hotel_order_items i JOIN food_items f ON f.id = i.food_item_id
        WHERE i.order_id=$1 ORDER BY i.created_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.HotelOrderItem
	for rows.Next() {
		item, err := scanHotelOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *hotelOrderRepository) ListAllItems(ctx context.Context, page, pageSize int) ([]domain.HotelOrderItem, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hotel_order_items`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT ` + hotelItemColumns + `
        FROM hotel_order_items i JOIN food_items f ON f.id = i.food_item_id
        ORDER BY i.created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.HotelOrderItem
	for rows.Next() {
		item, err := scanHotelOrderItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	return items, total, rows.Err()
}

func (r *hotelOrderRepository) CashTotals(ctx context.Context, foodItemID string) (float64, int, error) {
	const query = `
        SELECT COALESCE(SUM(price), 0), COALESCE(SUM(quantity), 0)
        FROM hotel_order_items
        WHERE food_item_id=$1 AND on_credit=FALSE`

	var revenue float64
	var quantity int
	err := r.pool.QueryRow(ctx, query, foodItemID).Scan(&revenue, &quantity)
	return revenue, quantity, err
}
