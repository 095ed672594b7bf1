package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laundrahub/admin-service/internal/domain"
)

// HotelExpenseRepository covers hotel expense fields and records.
type HotelExpenseRepository interface {
	CreateField(ctx context.Context, field *domain.HotelExpenseField) error
	DeleteField(ctx context.Context, id string) error
	ListFields(ctx context.Context) ([]domain.HotelExpenseField, error)

	CreateRecord(ctx context.Context, record *domain.HotelExpenseRecord) error
	UpdateRecord(ctx context.Context, record *domain.HotelExpenseRecord) error
	DeleteRecord(ctx context.Context, id string) error
	ListRecords(ctx context.Context, page, pageSize int) ([]domain.HotelExpenseRecord, int64, error)
}

type hotelExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewHotelExpenseRepository returns a Postgres-backed implementation.
func NewHotelExpenseRepository(pool *pgxpool.Pool) HotelExpenseRepository {
	return &hotelExpenseRepository{pool: pool}
}

func (r *hotelExpenseRepository) CreateField(ctx context.Context, field *domain.HotelExpenseField) error {
	const query = `
        INSERT INTO hotel_expense_fields (label) VALUES ($1)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, field.Label).Scan(&field.ID, &field.CreatedAt)
}

func (r *hotelExpenseRepository) DeleteField(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hotel_expense_fields WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hotelExpenseRepository) ListFields(ctx context.Context) ([]domain.HotelExpenseField, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, label, created_at FROM hotel_expense_fields ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []domain.HotelExpenseField
	for rows.Next() {
		var field domain.HotelExpenseField
		if err := rows.Scan(&field.ID, &field.Label, &field.CreatedAt); err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, rows.Err()
}

func (r *hotelExpenseRepository) CreateRecord(ctx context.Context, record *domain.HotelExpenseRecord) error {
	const query = `
        INSERT INTO hotel_expense_records (field_id, amount, notes)
        VALUES ($1, $2, $3)
        RETURNING id, date`
	return r.pool.QueryRow(ctx, query,
		record.FieldID,
		record.Amount,
		record.Notes,
	).Scan(&record.ID, &record.Date)
}

func (r *hotelExpenseRepository) UpdateRecord(ctx context.Context, record *domain.HotelExpenseRecord) error {
	const query = `
        UPDATE hotel_expense_records SET field_id=$1, amount=$2, notes=$3 WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		record.FieldID,
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

func (r *hotelExpenseRepository) DeleteRecord(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hotel_expense_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hotelExpenseRepository) ListRecords(ctx context.Context, page, pageSize int) ([]domain.HotelExpenseRecord, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM hotel_expense_records`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT r.id, r.field_id, f.label, r.amount, r.date, r.notes
        FROM hotel_expense_records r
        JOIN hotel_expense_fields f ON f.id = r.field_id
        ORDER BY r.date DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.HotelExpenseRecord
	for rows.Next() {
		var record domain.HotelExpenseRecord
		if err := rows.Scan(
			&record.ID,
			&record.FieldID,
			&record.Label,
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
