package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// PaymentRepository defines persistence access for order settlements.
type PaymentRepository interface {
	Upsert(ctx context.Context, payment *domain.Payment) error
	GetByOrder(ctx context.Context, orderID string) (*domain.Payment, error)
	List(ctx context.Context, page, pageSize int) ([]domain.Payment, int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) Upsert(ctx context.Context, payment *domain.Payment) error {
	// One settlement row per order.
	const query = `
        INSERT INTO payments (order_id, price)
        VALUES ($1, $2)
        ON CONFLICT (order_id) DO UPDATE SET price = EXCLUDED.price
        RETURNING id`
	return r.pool.QueryRow(ctx, query, payment.OrderID, payment.Price).Scan(&payment.ID)
}

func (r *paymentRepository) GetByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.pool.QueryRow(ctx,
		`SELECT id, order_id, price FROM payments WHERE order_id=$1`, orderID,
	).Scan(&payment.ID, &payment.OrderID, &payment.Price); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) List(ctx context.Context, page, pageSize int) ([]domain.Payment, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, order_id, price FROM payments ORDER BY id DESC LIMIT $1 OFFSET $2`,
		pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(&payment.ID, &payment.OrderID, &payment.Price); err != nil {
			return nil, 0, err
		}
		payments = append(payments, payment)
	}
	return payments, total, rows.Err()
}
