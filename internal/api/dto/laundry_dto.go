package dto

import (
	"time"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/service"
)

// CreateCustomerRequest payload.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// UpdateCustomerRequest payload.
type UpdateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// CustomerResponse is one customer record.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// FromCustomer converts a customer.
func FromCustomer(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Phone:     customer.Phone,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
	}
}

// FromCustomers converts a page of customers.
func FromCustomers(customers []domain.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, FromCustomer(&customers[i]))
	}
	return out
}

// OrderItemRequest is one order line as submitted.
type OrderItemRequest struct {
	ServiceTypes   []string             `json:"service_types" validate:"required,min=1"`
	ItemTypes      []string             `json:"item_types" validate:"required,min=1"`
	ItemName       string               `json:"item_name" validate:"required"`
	Quantity       int                  `json:"quantity" validate:"required,min=1"`
	ItemCondition  domain.ItemCondition `json:"item_condition" validate:"omitempty,oneof=New Old Torn"`
	AdditionalInfo string               `json:"additional_info"`
	UnitPrice      float64              `json:"unit_price" validate:"min=0"`
	TotalItemPrice float64              `json:"total_item_price" validate:"min=0"`
}

// Input converts the request into the service shape.
func (r OrderItemRequest) Input() service.OrderItemInput {
	return service.OrderItemInput{
		ServiceTypes:   r.ServiceTypes,
		ItemTypes:      r.ItemTypes,
		ItemName:       r.ItemName,
		Quantity:       r.Quantity,
		ItemCondition:  r.ItemCondition,
		AdditionalInfo: r.AdditionalInfo,
		UnitPrice:      r.UnitPrice,
		TotalItemPrice: r.TotalItemPrice,
	}
}

// CreateOrderRequest payload.
type CreateOrderRequest struct {
	CustomerID     string             `json:"customer_id" validate:"required,uuid"`
	PaymentType    domain.PaymentType `json:"payment_type"`
	Shop           domain.Shop        `json:"shop" validate:"required"`
	DeliveryDate   time.Time          `json:"delivery_date" validate:"required"`
	AddressDetails string             `json:"address_details"`
	AmountPaid     float64            `json:"amount_paid" validate:"min=0"`
	Items          []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest payload.
type UpdateOrderRequest struct {
	PaymentType    domain.PaymentType `json:"payment_type"`
	DeliveryDate   time.Time          `json:"delivery_date" validate:"required"`
	OrderStatus    domain.OrderStatus `json:"order_status" validate:"omitempty,oneof=pending Completed Delivered_picked"`
	AddressDetails string             `json:"address_details"`
	AmountPaid     float64            `json:"amount_paid" validate:"min=0"`
}

// RecordPaymentRequest payload.
type RecordPaymentRequest struct {
	Amount      float64            `json:"amount" validate:"required,gt=0"`
	PaymentType domain.PaymentType `json:"payment_type"`
}

// OrderItemResponse is one order line.
type OrderItemResponse struct {
	ID             string               `json:"id"`
	OrderID        string               `json:"order_id"`
	ServiceTypes   []string             `json:"service_types"`
	ItemTypes      []string             `json:"item_types"`
	ItemName       string               `json:"item_name"`
	Quantity       int                  `json:"quantity"`
	ItemCondition  domain.ItemCondition `json:"item_condition"`
	AdditionalInfo string               `json:"additional_info"`
	UnitPrice      float64              `json:"unit_price"`
	TotalItemPrice float64              `json:"total_item_price"`
	CreatedAt      time.Time            `json:"created_at"`
}

// FromOrderItem converts one line.
func FromOrderItem(item *domain.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:             item.ID,
		OrderID:        item.OrderID,
		ServiceTypes:   item.ServiceTypes,
		ItemTypes:      item.ItemTypes,
		ItemName:       item.ItemName,
		Quantity:       item.Quantity,
		ItemCondition:  item.ItemCondition,
		AdditionalInfo: item.AdditionalInfo,
		UnitPrice:      item.UnitPrice,
		TotalItemPrice: item.TotalItemPrice,
		CreatedAt:      item.CreatedAt,
	}
}

// FromOrderItems converts a set of lines.
func FromOrderItems(items []domain.OrderItem) []OrderItemResponse {
	out := make([]OrderItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FromOrderItem(&items[i]))
	}
	return out
}

// OrderResponse is the order header, optionally with its lines.
type OrderResponse struct {
	ID             string               `json:"id"`
	CustomerID     string               `json:"customer_id"`
	Code           string               `json:"code"`
	PaymentType    domain.PaymentType   `json:"payment_type"`
	PaymentStatus  domain.PaymentStatus `json:"payment_status"`
	Shop           domain.Shop          `json:"shop"`
	DeliveryDate   time.Time            `json:"delivery_date"`
	OrderStatus    domain.OrderStatus   `json:"order_status"`
	AddressDetails string               `json:"address_details"`
	AmountPaid     float64              `json:"amount_paid"`
	TotalPrice     float64              `json:"total_price"`
	Balance        float64              `json:"balance"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	Items          []OrderItemResponse  `json:"items,omitempty"`
}

// FromOrder converts an order header with optional lines.
func FromOrder(order *domain.Order, items []domain.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:             order.ID,
		CustomerID:     order.CustomerID,
		Code:           order.Code,
		PaymentType:    order.PaymentType,
		PaymentStatus:  order.PaymentStatus,
		Shop:           order.Shop,
		DeliveryDate:   order.DeliveryDate,
		OrderStatus:    order.OrderStatus,
		AddressDetails: order.AddressDetails,
		AmountPaid:     order.AmountPaid,
		TotalPrice:     order.TotalPrice,
		Balance:        order.Balance,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
	if items != nil {
		resp.Items = FromOrderItems(items)
	}
	return resp
}

// FromOrders converts a page of headers.
func FromOrders(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i], nil))
	}
	return out
}

// CreateExpenseFieldRequest payload.
type CreateExpenseFieldRequest struct {
	Label string `json:"label" validate:"required"`
}

// CreateExpenseRecordRequest payload.
type CreateExpenseRecordRequest struct {
	FieldID string      `json:"field_id" validate:"required,uuid"`
	Shop    domain.Shop `json:"shop"`
	Amount  float64     `json:"amount" validate:"required,gt=0"`
	Notes   string      `json:"notes"`
}

// UpdateExpenseRecordRequest payload.
type UpdateExpenseRecordRequest struct {
	FieldID string      `json:"field_id" validate:"required,uuid"`
	Shop    domain.Shop `json:"shop"`
	Amount  float64     `json:"amount" validate:"required,gt=0"`
	Notes   string      `json:"notes"`
}

// ExpenseFieldResponse is one expense category.
type ExpenseFieldResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseRecordResponse is one booked expense.
type ExpenseRecordResponse struct {
	ID      string      `json:"id"`
	FieldID string      `json:"field_id"`
	Label   string      `json:"label"`
	Shop    domain.Shop `json:"shop"`
	Amount  float64     `json:"amount"`
	Date    time.Time   `json:"date"`
	Notes   string      `json:"notes"`
}

// FromExpenseFields converts categories.
func FromExpenseFields(fields []domain.ExpenseField) []ExpenseFieldResponse {
	out := make([]ExpenseFieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, ExpenseFieldResponse{ID: f.ID, Label: f.Label, CreatedAt: f.CreatedAt})
	}
	return out
}

// FromExpenseRecord converts one booked expense.
func FromExpenseRecord(record *domain.ExpenseRecord) ExpenseRecordResponse {
	return ExpenseRecordResponse{
		ID:      record.ID,
		FieldID: record.FieldID,
		Label:   record.Label,
		Shop:    record.Shop,
		Amount:  record.Amount,
		Date:    record.Date,
		Notes:   record.Notes,
	}
}

// FromExpenseRecords converts a page of booked expenses.
func FromExpenseRecords(records []domain.ExpenseRecord) []ExpenseRecordResponse {
	out := make([]ExpenseRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, FromExpenseRecord(&records[i]))
	}
	return out
}
