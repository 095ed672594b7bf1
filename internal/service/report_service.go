package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/pkg/util"
)

const reportDateLayout = "2006-01-02"

// defaultReportDays is the window used when no range is given.
const defaultReportDays = 30

// ReportService assembles the admin reports page.
type ReportService struct {
	reports repository.ReportRepository
	logger  *zap.Logger
}

// NewReportService builds the service.
func NewReportService(reports repository.ReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{reports: reports, logger: logger}
}

// ParseDateRange turns optional YYYY-MM-DD bounds into a concrete window.
// Both bounds empty means the trailing default window; the end bound is
// extended to the end of its day.
func ParseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -defaultReportDays)
	to := now

	if fromStr != "" {
		parsed, err := time.Parse(reportDateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, util.NewValidationError("invalid from date", map[string]any{"from": fromStr})
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse(reportDateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, util.NewValidationError("invalid to date", map[string]any{"to": toStr})
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, util.NewValidationError("date range is inverted", map[string]any{"from": fromStr, "to": toStr})
	}
	return from, to, nil
}

// Summary is the full reports payload.
type Summary struct {
	From           time.Time           `json:"from"`
	To             time.Time           `json:"to"`
	Orders         *domain.OrderStats  `json:"orders"`
	Payments       *domain.PaymentStats `json:"payments"`
	Expenses       *domain.ExpenseStats `json:"expenses"`
	Hotel          *domain.HotelStats  `json:"hotel"`
	RevenueByShop  []domain.ShopRevenue `json:"revenue_by_shop"`
	TopServices    []domain.NameCount  `json:"top_services"`
	CommonItems    []domain.NameCount  `json:"common_items"`
	PaymentMethods []domain.NameCount  `json:"payment_methods"`
}

// BuildSummary runs every aggregate for the window. Shop narrows the order
// and payment figures only; expenses and hotel aggregates always cover the
// whole business.
func (s *ReportService) BuildSummary(ctx context.Context, from, to time.Time, shop domain.Shop) (*Summary, error) {
	orders, err := s.reports.OrderStats(ctx, from, to, shop)
	if err != nil {
		return nil, err
	}
	payments, err := s.reports.PaymentStats(ctx, from, to, shop)
	if err != nil {
		return nil, err
	}
	expenses, err := s.reports.ExpenseStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	hotel, err := s.reports.HotelStats(ctx, from, to)
	if err != nil {
		return nil, err
	}
	revenue, err := s.reports.RevenueByShop(ctx, from, to)
	if err != nil {
		return nil, err
	}
	services, err := s.reports.TopServices(ctx, from, to, 5)
	if err != nil {
		return nil, err
	}
	items, err := s.reports.CommonItems(ctx, from, to, 10)
	if err != nil {
		return nil, err
	}
	methods, err := s.reports.PaymentMethods(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &Summary{
		From:           from,
		To:             to,
		Orders:         orders,
		Payments:       payments,
		Expenses:       expenses,
		Hotel:          hotel,
		RevenueByShop:  revenue,
		TopServices:    services,
		CommonItems:    items,
		PaymentMethods: methods,
	}, nil
}
