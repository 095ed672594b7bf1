package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/pkg/util"
)

// HotelService owns the food counter: categories, dishes, counter sales and
// hotel expenses.
type HotelService struct {
	food     repository.FoodRepository
	orders   repository.HotelOrderRepository
	expenses repository.HotelExpenseRepository
	logger   *zap.Logger
}

// NewHotelService builds the service.
func NewHotelService(
	food repository.FoodRepository,
	orders repository.HotelOrderRepository,
	expenses repository.HotelExpenseRepository,
	logger *zap.Logger,
) *HotelService {
	return &HotelService{
		food:     food,
		orders:   orders,
		expenses: expenses,
		logger:   logger,
	}
}

// CreateCategory registers a food category.
func (s *HotelService) CreateCategory(ctx context.Context, category *domain.FoodCategory) error {
	return s.food.CreateCategory(ctx, category)
}

// DeleteCategory removes a category and its dishes.
func (s *HotelService) DeleteCategory(ctx context.Context, id string) error {
	return s.food.DeleteCategory(ctx, id)
}

// ListCategories returns all categories.
func (s *HotelService) ListCategories(ctx context.Context) ([]domain.FoodCategory, error) {
	return s.food.ListCategories(ctx)
}

// CreateFoodItem registers a dish under a category.
func (s *HotelService) CreateFoodItem(ctx context.Context, item *domain.FoodItem) error {
	return s.food.CreateItem(ctx, item)
}

// UpdateFoodItem edits a dish.
func (s *HotelService) UpdateFoodItem(ctx context.Context, item *domain.FoodItem) error {
	return s.food.UpdateItem(ctx, item)
}

// DeleteFoodItem removes a dish.
func (s *HotelService) DeleteFoodItem(ctx context.Context, id string) error {
	return s.food.DeleteItem(ctx, id)
}

// GetFoodItem returns one dish.
func (s *HotelService) GetFoodItem(ctx context.Context, id string) (*domain.FoodItem, error) {
	return s.food.GetItem(ctx, id)
}

// ListFoodItems pages through dishes, optionally per category.
func (s *HotelService) ListFoodItems(ctx context.Context, categoryID string, page, pageSize int) ([]domain.FoodItem, int64, error) {
	return s.food.ListItems(ctx, categoryID, page, pageSize)
}

// HotelOrderItemInput is one dish on a counter sale as submitted.
type HotelOrderItemInput struct {
	FoodItemID string
	Quantity   int
	Price      float64
	OnCredit   bool
	DebtorName string
}

// CreateHotelOrder books a counter sale and refreshes the cash running
// totals of every dish involved. Credit sales need a debtor name and stay
// out of the cash totals.
func (s *HotelService) CreateHotelOrder(ctx context.Context, createdBy *string, itemsIn []HotelOrderItemInput) (*domain.HotelOrder, []domain.HotelOrderItem, error) {
	if len(itemsIn) == 0 {
		return nil, nil, util.NewValidationError("order needs at least one item", nil)
	}
	for _, in := range itemsIn {
		if in.Quantity <= 0 {
			return nil, nil, util.NewValidationError("quantity must be greater than 0", nil)
		}
		if in.OnCredit && in.DebtorName == "" {
			return nil, nil, util.NewValidationError("credit sales need a debtor name", nil)
		}
	}

	order := &domain.HotelOrder{CreatedBy: createdBy}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	items := make([]domain.HotelOrderItem, 0, len(itemsIn))
	for _, in := range itemsIn {
		food, err := s.food.GetItem(ctx, in.FoodItemID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, nil, util.NewNotFound("food item", map[string]any{"food_item_id": in.FoodItemID})
			}
			return nil, nil, err
		}

		item := &domain.HotelOrderItem{
			OrderID:    order.ID,
			FoodItemID: food.ID,
			FoodName:   food.Name,
			Quantity:   in.Quantity,
			Price:      in.Price,
			OnCredit:   in.OnCredit,
			DebtorName: in.DebtorName,
		}
		if err := s.orders.CreateItem(ctx, item); err != nil {
			return nil, nil, err
		}
		items = append(items, *item)
		order.Total += item.Price

		if err := s.refreshCashTotals(ctx, food.ID); err != nil {
			return nil, nil, err
		}
	}
	return order, items, nil
}

// refreshCashTotals recomputes a dish's cash revenue and quantity from its
// non-credit sale lines.
func (s *HotelService) refreshCashTotals(ctx context.Context, foodItemID string) error {
	revenue, quantity, err := s.orders.CashTotals(ctx, foodItemID)
	if err != nil {
		return err
	}
	return s.food.UpdateSalesTotals(ctx, foodItemID, revenue, quantity)
}

// DeleteHotelOrder removes a sale and refreshes the affected dishes.
func (s *HotelService) DeleteHotelOrder(ctx context.Context, id string) error {
	items, err := s.orders.ListItems(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	for _, item := range items {
		if err := s.refreshCashTotals(ctx, item.FoodItemID); err != nil {
			return err
		}
	}
	return nil
}

// GetHotelOrder returns a sale with its lines.
func (s *HotelService) GetHotelOrder(ctx context.Context, id string) (*domain.HotelOrder, []domain.HotelOrderItem, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orders.ListItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// ListHotelOrders pages through counter sales.
func (s *HotelService) ListHotelOrders(ctx context.Context, page, pageSize int) ([]domain.HotelOrder, int64, error) {
	return s.orders.List(ctx, page, pageSize)
}

// ListHotelOrderItems pages through all sale lines, newest first. The items
// page of the dashboard is built on this.
func (s *HotelService) ListHotelOrderItems(ctx context.Context, page, pageSize int) ([]domain.HotelOrderItem, int64, error) {
	return s.orders.ListAllItems(ctx, page, pageSize)
}

// DeleteHotelOrderItem removes one sale line and refreshes its dish.
func (s *HotelService) DeleteHotelOrderItem(ctx context.Context, id string) error {
	item, err := s.orders.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.DeleteItem(ctx, id); err != nil {
		return err
	}
	return s.refreshCashTotals(ctx, item.FoodItemID)
}

// CreateHotelExpenseField registers a hotel expense category.
func (s *HotelService) CreateHotelExpenseField(ctx context.Context, field *domain.HotelExpenseField) error {
	return s.expenses.CreateField(ctx, field)
}

// DeleteHotelExpenseField removes a category and its records.
func (s *HotelService) DeleteHotelExpenseField(ctx context.Context, id string) error {
	return s.expenses.DeleteField(ctx, id)
}

// ListHotelExpenseFields returns all hotel expense categories.
func (s *HotelService) ListHotelExpenseFields(ctx context.Context) ([]domain.HotelExpenseField, error) {
	return s.expenses.ListFields(ctx)
}

// CreateHotelExpenseRecord books a hotel expense.
func (s *HotelService) CreateHotelExpenseRecord(ctx context.Context, record *domain.HotelExpenseRecord) error {
	if record.Amount <= 0 {
		return util.NewValidationError("amount must be greater than 0", nil)
	}
	return s.expenses.CreateRecord(ctx, record)
}

// UpdateHotelExpenseRecord edits a booked hotel expense.
func (s *HotelService) UpdateHotelExpenseRecord(ctx context.Context, record *domain.HotelExpenseRecord) error {
	if record.Amount <= 0 {
		return util.NewValidationError("amount must be greater than 0", nil)
	}
	return s.expenses.UpdateRecord(ctx, record)
}

// DeleteHotelExpenseRecord removes a booked hotel expense.
func (s *HotelService) DeleteHotelExpenseRecord(ctx context.Context, id string) error {
	return s.expenses.DeleteRecord(ctx, id)
}

// ListHotelExpenseRecords pages through hotel expenses.
func (s *HotelService) ListHotelExpenseRecords(ctx context.Context, page, pageSize int) ([]domain.HotelExpenseRecord, int64, error) {
	return s.expenses.ListRecords(ctx, page, pageSize)
}
