package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// ReportRepository runs the aggregate queries behind the dashboard summary.
type ReportRepository interface {
	OrderStats(ctx context.Context, from, to time.Time, shop domain.Shop) (*domain.OrderStats, error)
	PaymentStats(ctx context.Context, from, to time.Time, shop domain.Shop) (*domain.PaymentStats, error)
	ExpenseStats(ctx context.Context, from, to time.Time) (*domain.ExpenseStats, error)
	HotelStats(ctx context.Context, from, to time.Time) (*domain.HotelStats, error)
	RevenueByShop(ctx context.Context, from, to time.Time) ([]domain.ShopRevenue, error)
	TopServices(ctx context.Context, from, to time.Time, limit int) ([]domain.NameCount, error)
	CommonItems(ctx context.Context, from, to time.Time, limit int) ([]domain.NameCount, error)
	PaymentMethods(ctx context.Context, from, to time.Time) ([]domain.NameCount, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

func (r *reportRepository) OrderStats(ctx context.Context, from, to time.Time, shop domain.Shop) (*domain.OrderStats, error) {
	const query = `
        SELECT COUNT(*),
            COUNT(*) FILTER (WHERE order_status='pending'),
            COUNT(*) FILTER (WHERE order_status='Completed'),
            COUNT(*) FILTER (WHERE order_status='Delivered_picked'),
            COALESCE(SUM(total_price), 0),
            COALESCE(SUM(amount_paid), 0),
            COALESCE(SUM(balance), 0)
        FROM orders
        WHERE created_at >= $1 AND created_at < $2 AND ($3='' OR shop=$3)`

	var stats domain.OrderStats
	if err := r.pool.QueryRow(ctx, query, from, to, string(shop)).Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.CompletedOrders,
		&stats.DeliveredOrders,
		&stats.TotalRevenue,
		&stats.TotalAmountPaid,
		&stats.TotalBalance,
	); err != nil {
		return nil, err
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	return &stats, nil
}

func (r *reportRepository) PaymentStats(ctx context.Context, from, to time.Time, shop domain.Shop) (*domain.PaymentStats, error) {
	const query = `
        SELECT
            COUNT(*) FILTER (WHERE payment_status='pending'),
            COUNT(*) FILTER (WHERE payment_status='partial'),
            COUNT(*) FILTER (WHERE payment_status='completed'),
            COALESCE(SUM(balance) FILTER (WHERE payment_status='pending'), 0),
            COALESCE(SUM(amount_paid) FILTER (WHERE payment_status='partial'), 0),
            COALESCE(SUM(amount_paid) FILTER (WHERE payment_status='completed'), 0),
            COALESCE(SUM(amount_paid), 0),
            COALESCE(SUM(balance), 0)
        FROM orders
        WHERE created_at >= $1 AND created_at < $2 AND ($3='' OR shop=$3)`

	var stats domain.PaymentStats
	if err := r.pool.QueryRow(ctx, query, from, to, string(shop)).Scan(
		&stats.PendingPayments,
		&stats.PartialPayments,
		&stats.CompletePayments,
		&stats.TotalPendingAmount,
		&stats.TotalPartialAmount,
		&stats.TotalCompleteAmount,
		&stats.TotalCollectedAmount,
		&stats.TotalBalanceAmount,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) ExpenseStats(ctx context.Context, from, to time.Time) (*domain.ExpenseStats, error) {
	const query = `
        SELECT COALESCE(SUM(amount), 0),
            COALESCE(SUM(amount) FILTER (WHERE shop='Shop A'), 0),
            COALESCE(SUM(amount) FILTER (WHERE shop='Shop B'), 0),
            COALESCE(AVG(amount), 0)
        FROM expense_records
        WHERE date >= $1 AND date < $2`

	var stats domain.ExpenseStats
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(
		&stats.TotalExpenses,
		&stats.ShopAExpenses,
		&stats.ShopBExpenses,
		&stats.AverageExpense,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *reportRepository) HotelStats(ctx context.Context, from, to time.Time) (*domain.HotelStats, error) {
	const orderQuery = `
        SELECT COUNT(DISTINCT o.id), COALESCE(SUM(i.price), 0)
        FROM hotel_orders o
        LEFT JOIN hotel_order_items i ON i.order_id = o.id
        WHERE o.created_at >= $1 AND o.created_at < $2`

	var stats domain.HotelStats
	if err := r.pool.QueryRow(ctx, orderQuery, from, to).Scan(
		&stats.TotalOrders,
		&stats.TotalRevenue,
	); err != nil {
		return nil, err
	}

	const expenseQuery = `
        SELECT COALESCE(SUM(amount), 0)
        FROM hotel_expense_records
        WHERE date >= $1 AND date < $2`
	if err := r.pool.QueryRow(ctx, expenseQuery, from, to).Scan(&stats.TotalExpenses); err != nil {
		return nil, err
	}

	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
	}
	stats.NetProfit = stats.TotalRevenue - stats.TotalExpenses
	return &stats, nil
}

func (r *reportRepository) RevenueByShop(ctx context.Context, from, to time.Time) ([]domain.ShopRevenue, error) {
	const query = `
        SELECT shop, COALESCE(SUM(total_price), 0), COALESCE(SUM(balance), 0)
        FROM orders
        WHERE created_at >= $1 AND created_at < $2
        GROUP BY shop ORDER BY shop`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ShopRevenue
	for rows.Next() {
		var row domain.ShopRevenue
		if err := rows.Scan(&row.Shop, &row.Revenue, &row.Balance); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *reportRepository) TopServices(ctx context.Context, from, to time.Time, limit int) ([]domain.NameCount, error) {
	const query = `
        SELECT service, COUNT(*)
        FROM order_items i
        JOIN orders o ON o.id = i.order_id,
        UNNEST(i.service_types) AS service
        WHERE o.created_at >= $1 AND o.created_at < $2
        GROUP BY service ORDER BY COUNT(*) DESC
        LIMIT $3`
	return r.nameCounts(ctx, query, from, to, limit)
}

func (r *reportRepository) CommonItems(ctx context.Context, from, to time.Time, limit int) ([]domain.NameCount, error) {
	const query = `
        SELECT item, COUNT(*)
        FROM order_items i
        JOIN orders o ON o.id = i.order_id,
        UNNEST(STRING_TO_ARRAY(i.item_name, ', ')) AS item
        WHERE o.created_at >= $1 AND o.created_at < $2
        GROUP BY item ORDER BY COUNT(*) DESC
        LIMIT $3`
	return r.nameCounts(ctx, query, from, to, limit)
}

func (r *reportRepository) PaymentMethods(ctx context.Context, from, to time.Time) ([]domain.NameCount, error) {
	const query = `
        SELECT payment_type, COUNT(*)
        FROM orders
        WHERE created_at >= $1 AND created_at < $2 AND payment_type <> 'None'
        GROUP BY payment_type ORDER BY COUNT(*) DESC
        LIMIT $3`
	return r.nameCounts(ctx, query, from, to, 20)
}

func (r *reportRepository) nameCounts(ctx context.Context, query string, from, to time.Time, limit int) ([]domain.NameCount, error) {
	rows, err := r.pool.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.NameCount
	for rows.Next() {
		var row domain.NameCount
		if err := rows.Scan(&row.Name, &row.Count); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
