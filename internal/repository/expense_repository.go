package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// ExpenseRepository covers laundry expense fields and records.
type ExpenseRepository interface {
	CreateField(ctx context.Context, field *domain.ExpenseField) error
	DeleteField(ctx context.Context, id string) error
	ListFields(ctx context.Context) ([]domain.ExpenseField, error)

	CreateRecord(ctx context.Context, record *domain.ExpenseRecord) error
	UpdateRecord(ctx context.Context, record *domain.ExpenseRecord) error
	DeleteRecord(ctx context.Context, id string) error
	ListRecords(ctx context.Context, shop domain.Shop, page, pageSize int) ([]domain.ExpenseRecord, int64, error)
}

type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository returns a Postgres-backed implementation.
func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepository{pool: pool}
}

func (r *expenseRepository) CreateField(ctx context.Context, field *domain.ExpenseField) error {
	const query = `
        INSERT INTO expense_fields (label) VALUES ($1)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, field.Label).Scan(&field.ID, &field.CreatedAt)
}

func (r *expenseRepository) DeleteField(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM expense_fields WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) ListFields(ctx context.Context) ([]domain.ExpenseField, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, label, created_at FROM expense_fields ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []domain.ExpenseField
	for rows.Next() {
		var field domain.ExpenseField
		if err := rows.Scan(&field.ID, &field.Label, &field.CreatedAt); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, rows.Err()
}

func (r *expenseRepository) CreateRecord(ctx context.Context, record *domain.ExpenseRecord) error {
	const query = `
        INSERT INTO expense_records (field_id, shop, amount, notes)
        VALUES ($1, $2, $3, $4)
        RETURNING id, date`
	return r.pool.QueryRow(ctx, query,
		record.FieldID,
		record.Shop,
		record.Amount,
		record.Notes,
	).Scan(&record.ID, &record.Date)
}

func (r *expenseRepository) UpdateRecord(ctx context.Context, record *domain.ExpenseRecord) error {
	const query = `
        UPDATE expense_records SET field_id=$1, shop=$2, amount=$3, notes=$4 WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		record.FieldID,
		record.Shop,
		record.Amount,
		record.Notes,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) DeleteRecord(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM expense_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) ListRecords(ctx context.Context, shop domain.Shop, page, pageSize int) ([]domain.ExpenseRecord, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM expense_records WHERE ($1='' OR shop=$1)`,
		string(shop),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT r.id, r.field_id, f.label, r.shop, r.amount, r.date, r.notes
        FROM expense_records r
        JOIN expense_fields f ON f.id = r.field_id
        WHERE ($1='' OR r.shop=$1)
        ORDER BY r.date DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, string(shop), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.ExpenseRecord
	for rows.Next() {
		var record domain.ExpenseRecord
		if err := rows.Scan(
			&record.ID,
			&record.FieldID,
			&record.Label,
			&record.Shop,
			&record.Amount,
			&record.Date,
			&record.Notes,
		); err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}
	return records, total, rows.Err()
}
