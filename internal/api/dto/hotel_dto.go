package dto

import (
	"time"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/service"
)

// CreateFoodCategoryRequest payload.
type CreateFoodCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateFoodItemRequest payload.
type CreateFoodItemRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required"`
}

// UpdateFoodItemRequest payload.
type UpdateFoodItemRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required"`
}

// FoodCategoryResponse is one category.
type FoodCategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FromFoodCategories converts categories.
func FromFoodCategories(categories []domain.FoodCategory) []FoodCategoryResponse {
	out := make([]FoodCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, FoodCategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out
}

// FoodItemResponse is a dish with its cash running totals.
type FoodItemResponse struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	Name            string    `json:"name"`
	TotalOrderPrice float64   `json:"total_order_price"`
	QuantitySold    int       `json:"quantity_sold"`
	CreatedAt       time.Time `json:"created_at"`
}

// FromFoodItem converts one dish.
func FromFoodItem(item *domain.FoodItem) FoodItemResponse {
	return FoodItemResponse{
		ID:              item.ID,
		CategoryID:      item.CategoryID,
		CategoryName:    item.CategoryName,
		Name:            item.Name,
		TotalOrderPrice: item.TotalOrderPrice,
		QuantitySold:    item.QuantitySold,
		CreatedAt:       item.CreatedAt,
	}
}

// FromFoodItems converts a page of dishes.
func FromFoodItems(items []domain.FoodItem) []FoodItemResponse {
	out := make([]FoodItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromFoodItem(&items[i]))
	}
	return out
}

// HotelOrderItemRequest is one dish on a counter sale as submitted.
type HotelOrderItemRequest struct {
	FoodItemID string  `json:"food_item_id" validate:"required,uuid"`
	Quantity   int     `json:"quantity" validate:"required,min=1"`
	Price      float64 `json:"price" validate:"required,gt=0"`
	OnCredit   bool    `json:"on_credit"`
	DebtorName string  `json:"debtor_name" validate:"required_if=OnCredit true"`
}

// CreateHotelOrderRequest payload.
type CreateHotelOrderRequest struct {
	Items []HotelOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Inputs converts the request lines into the service shape.
func (r CreateHotelOrderRequest) Inputs() []service.HotelOrderItemInput {
	out := make([]service.HotelOrderItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, service.HotelOrderItemInput{
			FoodItemID: item.FoodItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
			OnCredit:   item.OnCredit,
			DebtorName: item.DebtorName,
		})
	}
	return out
}

// HotelOrderItemResponse is one sale line.
type HotelOrderItemResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	FoodItemID string    `json:"food_item_id"`
	FoodName   string    `json:"food_name"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	OnCredit   bool      `json:"on_credit"`
	DebtorName string    `json:"debtor_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromHotelOrderItem converts one sale line.
func FromHotelOrderItem(item *domain.HotelOrderItem) HotelOrderItemResponse {
	return HotelOrderItemResponse{
		ID:         item.ID,
		OrderID:    item.OrderID,
		FoodItemID: item.FoodItemID,
		FoodName:   item.FoodName,
		Quantity:   item.Quantity,
		Price:      item.Price,
		OnCredit:   item.OnCredit,
		DebtorName: item.DebtorName,
		CreatedAt:  item.CreatedAt,
	}
}

// FromHotelOrderItems converts sale lines.
func FromHotelOrderItems(items []domain.HotelOrderItem) []HotelOrderItemResponse {
	out := make([]HotelOrderItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromHotelOrderItem(&items[i]))
	}
	return out
}

// HotelOrderResponse is a counter sale, optionally with its lines.
type HotelOrderResponse struct {
	ID        string                   `json:"id"`
	Total     float64                  `json:"total"`
	CreatedAt time.Time                `json:"created_at"`
	Items     []HotelOrderItemResponse `json:"items,omitempty"`
}

// FromHotelOrder converts a sale with optional lines.
func FromHotelOrder(order *domain.HotelOrder, items []domain.HotelOrderItem) HotelOrderResponse {
	resp := HotelOrderResponse{
		ID:        order.ID,
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
	if items != nil {
		resp.Items = FromHotelOrderItems(items)
	}
	return resp
}

// FromHotelOrders converts a page of sales.
func FromHotelOrders(orders []domain.HotelOrder) []HotelOrderResponse {
	out := make([]HotelOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromHotelOrder(&orders[i], nil))
	}
	return out
}

// CreateHotelExpenseFieldRequest payload.
type CreateHotelExpenseFieldRequest struct {
	Label string `json:"label" validate:"required"`
}

// CreateHotelExpenseRecordRequest payload.
type CreateHotelExpenseRecordRequest struct {
	FieldID string  `json:"field_id" validate:"required,uuid"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Notes   string  `json:"notes"`
}

// UpdateHotelExpenseRecordRequest payload.
type UpdateHotelExpenseRecordRequest struct {
	FieldID string  `json:"field_id" validate:"required,uuid"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Notes   string  `json:"notes"`
}

// HotelExpenseFieldResponse is one hotel expense category.
type HotelExpenseFieldResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// HotelExpenseRecordResponse is one booked hotel expense.
type HotelExpenseRecordResponse struct {
	ID      string    `json:"id"`
	FieldID string    `json:"field_id"`
	Label   string    `json:"label"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Notes   string    `json:"notes"`
}

// FromHotelExpenseFields converts categories.
func FromHotelExpenseFields(fields []domain.HotelExpenseField) []HotelExpenseFieldResponse {
	out := make([]HotelExpenseFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, HotelExpenseFieldResponse{ID: f.ID, Label: f.Label, CreatedAt: f.CreatedAt})
	}
	return out
}

// FromHotelExpenseRecords converts a page of booked hotel expenses.
func FromHotelExpenseRecords(records []domain.HotelExpenseRecord) []HotelExpenseRecordResponse {
	out := make([]HotelExpenseRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, HotelExpenseRecordResponse{
			ID:      r.ID,
			FieldID: r.FieldID,
			Label:   r.Label,
			Amount:  r.Amount,
			Date:    r.Date,
			Notes:   r.Notes,
		})
	}
	return out
}
