package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Shop          domain.Shop
	OrderStatus   domain.OrderStatus
	PaymentStatus domain.PaymentStatus
	Page          int
	PageSize      int
}

// OrderRepository defines persistence access for laundry orders and their
// items.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, int64, error)

	CreateItem(ctx context.Context, item *domain.OrderItem) error
	UpdateItem(ctx context.Context, item *domain.OrderItem) error
	DeleteItem(ctx context.Context, id string) error
	GetItem(ctx context.Context, id string) (*domain.OrderItem, error)
	ListItems(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	SumItemTotals(ctx context.Context, orderID string) (float64, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

const orderColumns = `id, customer_id, code, payment_type, payment_status, shop, delivery_date,
    order_status, previous_order_status, address_details, amount_paid, total_price, balance,
    created_by, updated_by, created_at, updated_at`

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.Code,
		&order.PaymentType,
		&order.PaymentStatus,
		&order.Shop,
		&order.DeliveryDate,
		&order.OrderStatus,
		&order.PreviousOrderStatus,
		&order.AddressDetails,
		&order.AmountPaid,
		&order.TotalPrice,
		&order.Balance,
		&order.CreatedBy,
		&order.UpdatedBy,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (customer_id, code, payment_type, payment_status, shop, delivery_date,
            order_status, previous_order_status, address_details, amount_paid, total_price, balance,
            created_by, updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		order.CustomerID,
		order.Code,
		order.PaymentType,
		order.PaymentStatus,
		order.Shop,
		order.DeliveryDate,
		order.OrderStatus,
		order.PreviousOrderStatus,
		order.AddressDetails,
		order.AmountPaid,
		order.TotalPrice,
		order.Balance,
		order.CreatedBy,
		order.UpdatedBy,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	const query = `
        UPDATE orders
        SET customer_id=$1, payment_type=$2, payment_status=$3, shop=$4, delivery_date=$5,
            order_status=$6, previous_order_status=$7, address_details=$8, amount_paid=$9,
            total_price=$10, balance=$11, updated_by=$12, updated_at=NOW()
        WHERE id=$13`

	cmd, err := r.pool.Exec(ctx, query,
		order.CustomerID,
		order.PaymentType,
		order.PaymentStatus,
		order.Shop,
		order.DeliveryDate,
		order.OrderStatus,
		order.PreviousOrderStatus,
		order.AddressDetails,
		order.AmountPaid,
		order.TotalPrice,
		order.Balance,
		order.UpdatedBy,
		order.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
}

func (r *orderRepository) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	return scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE code=$1`, code))
}

func (r *orderRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE code=$1)`, code).Scan(&exists)
	return exists, err
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, int64, error) {
	const where = `
        WHERE ($1='' OR shop=$1)
          AND ($2='' OR order_status=$2)
          AND ($3='' OR payment_status=$3)`

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where,
		string(filter.Shop), string(filter.OrderStatus), string(filter.PaymentStatus),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where + `
        ORDER BY created_at DESC
        LIMIT $4 OFFSET $5`

	rows, err := r.pool.Query(ctx, query,
		string(filter.Shop), string(filter.OrderStatus), string(filter.PaymentStatus),
		filter.PageSize, (filter.Page-1)*filter.PageSize,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *order)
	}
	return orders, total, rows.Err()
}

func (r *orderRepository) CreateItem(ctx context.Context, item *domain.OrderItem) error {
	const query = `
        INSERT INTO order_items (order_id, service_types, item_types, item_name, quantity,
            item_condition, additional_info, unit_price, total_item_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		item.OrderID,
		item.ServiceTypes,
		item.ItemTypes,
		item.ItemName,
		item.Quantity,
		item.ItemCondition,
		item.AdditionalInfo,
		item.UnitPrice,
		item.TotalItemPrice,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *orderRepository) UpdateItem(ctx context.Context, item *domain.OrderItem) error {
	const query = `
        UPDATE order_items
        SET service_types=$1, item_types=$2, item_name=$3, quantity=$4, item_condition=$5,
            additional_info=$6, unit_price=$7, total_item_price=$8
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		item.ServiceTypes,
		item.ItemTypes,
		item.ItemName,
		item.Quantity,
		item.ItemCondition,
		item.AdditionalInfo,
		item.UnitPrice,
		item.TotalItemPrice,
		item.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) DeleteItem(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM order_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) GetItem(ctx context.Context, id string) (*domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, service_types, item_types, item_name, quantity, item_condition,
            additional_info, unit_price, total_item_price, created_at
        FROM order_items WHERE id=$1`
	return scanOrderItem(r.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, service_types, item_types, item_name, quantity, item_condition,
            additional_info, unit_price, total_item_price, created_at
        FROM order_items WHERE order_id=$1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *orderRepository) SumItemTotals(ctx context.Context, orderID string) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_item_price), 0) FROM order_items WHERE order_id=$1`,
		orderID,
	).Scan(&total)
	return total, err
}

func scanOrderItem(row pgx.Row) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ServiceTypes,
		&item.ItemTypes,
		&item.ItemName,
		&item.Quantity,
		&item.ItemCondition,
		&item.AdditionalInfo,
		&item.UnitPrice,
		&item.TotalItemPrice,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}
