package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/events"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/pkg/util"
)

const orderCodeAttempts = 5

// LaundryService owns customers, laundry orders and their expenses.
type LaundryService struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	expenses  repository.ExpenseRepository
	payments  repository.PaymentRepository
	events    events.Dispatcher
	logger    *zap.Logger
}

// NewLaundryService builds the service.
func NewLaundryService(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	expenses repository.ExpenseRepository,
	payments repository.PaymentRepository,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
) *LaundryService {
	return &LaundryService{
		customers: customers,
		orders:    orders,
		expenses:  expenses,
		payments:  payments,
		events:    dispatcher,
		logger:    logger,
	}
}

// NormalizePhone converts local Kenyan numbers (07.., 01..) to E.164 and
// validates the result.
func NormalizePhone(raw string) (string, error) {
	phone := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	if strings.HasPrefix(phone, "0") && len(phone) == 10 {
		phone = "+254" + phone[1:]
	}
	if !strings.HasPrefix(phone, "+") || len(phone) < 10 || len(phone) > 16 {
		return "", util.NewValidationError("invalid phone number", map[string]any{"phone": raw})
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return "", util.NewValidationError("invalid phone number", map[string]any{"phone": raw})
		}
	}
	return phone, nil
}

// CreateCustomer registers a customer, keyed by normalized phone number.
func (s *LaundryService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	phone, err := NormalizePhone(customer.Phone)
	if err != nil {
		return err
	}
	customer.Phone = phone

	if _, err := s.customers.GetByPhone(ctx, phone); err == nil {
		return util.NewConflict("customer with this phone already exists", map[string]any{"phone": phone})
	} else if err != pgx.ErrNoRows {
		return err
	}
	return s.customers.Create(ctx, customer)
}

// UpdateCustomer edits a customer record, re-normalizing the phone.
func (s *LaundryService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	phone, err := NormalizePhone(customer.Phone)
	if err != nil {
		return err
	}
	customer.Phone = phone

	if existing, err := s.customers.GetByPhone(ctx, phone); err == nil && existing.ID != customer.ID {
		return util.NewConflict("customer with this phone already exists", map[string]any{"phone": phone})
	} else if err != nil && err != pgx.ErrNoRows {
		return err
	}
	return s.customers.Update(ctx, customer)
}

// DeleteCustomer removes a customer.
func (s *LaundryService) DeleteCustomer(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

// GetCustomer returns one customer.
func (s *LaundryService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// ListCustomers pages through customers, optionally matching name or phone.
func (s *LaundryService) ListCustomers(ctx context.Context, search string, page, pageSize int) ([]domain.Customer, int64, error) {
	return s.customers.List(ctx, search, page, pageSize)
}

// newOrderCode draws a candidate order code of the form ORD-1A2B3.
func newOrderCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:5])
}

// generateOrderCode produces a short unique order code, retrying on
// collision a bounded number of times.
func (s *LaundryService) generateOrderCode(ctx context.Context) (string, error) {
	for i := 0; i < orderCodeAttempts; i++ {
		code := newOrderCode()
		exists, err := s.orders.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", util.NewInternalError(errors.New("could not allocate a unique order code"))
}

// OrderItemInput is one order line as submitted.
type OrderItemInput struct {
	ServiceTypes   []string
	ItemTypes      []string
	ItemName       string
	Quantity       int
	ItemCondition  domain.ItemCondition
	AdditionalInfo string
	UnitPrice      float64
	TotalItemPrice float64
}

// CreateOrderInput is a new order with its lines.
type CreateOrderInput struct {
	CustomerID     string
	PaymentType    domain.PaymentType
	Shop           domain.Shop
	DeliveryDate   time.Time
	AddressDetails string
	AmountPaid     float64
	Items          []OrderItemInput
	CreatedBy      *string
}

func (s *LaundryService) buildItem(orderID string, in OrderItemInput) *domain.OrderItem {
	total := in.TotalItemPrice
	if total == 0 {
		total = in.UnitPrice * float64(in.Quantity)
	}
	return &domain.OrderItem{
		OrderID:        orderID,
		ServiceTypes:   in.ServiceTypes,
		ItemTypes:      in.ItemTypes,
		ItemName:       domain.NormalizeItemName(in.ItemName),
		Quantity:       in.Quantity,
		ItemCondition:  in.ItemCondition,
		AdditionalInfo: in.AdditionalInfo,
		UnitPrice:      in.UnitPrice,
		TotalItemPrice: total,
	}
}

// CreateOrder registers an order with its items, derives totals and payment
// status, and announces the new order.
func (s *LaundryService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, []domain.OrderItem, error) {
	if domain.DomainOf(in.Shop) != domain.ShopDomainLaundry {
		return nil, nil, util.NewValidationError("orders belong to the laundry shop", map[string]any{"shop": in.Shop})
	}
	if len(in.Items) == 0 {
		return nil, nil, util.NewValidationError("order needs at least one item", nil)
	}
	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, util.NewNotFound("customer", map[string]any{"customer_id": in.CustomerID})
		}
		return nil, nil, err
	}

	code, err := s.generateOrderCode(ctx)
	if err != nil {
		return nil, nil, err
	}
	order := &domain.Order{
		CustomerID:          in.CustomerID,
		Code:                code,
		PaymentType:         in.PaymentType,
		Shop:                in.Shop,
		DeliveryDate:        in.DeliveryDate,
		OrderStatus:         domain.OrderStatusPending,
		PreviousOrderStatus: domain.OrderStatusPending,
		AddressDetails:      in.AddressDetails,
		AmountPaid:          in.AmountPaid,
		CreatedBy:           in.CreatedBy,
		UpdatedBy:           in.CreatedBy,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, itemIn := range in.Items {
		item := s.buildItem(order.ID, itemIn)
		if err := s.orders.CreateItem(ctx, item); err != nil {
			return nil, nil, err
		}
		items = append(items, *item)
	}

	if err := s.recomputeTotals(ctx, order); err != nil {
		return nil, nil, err
	}

	s.publishOrderEvent(ctx, events.EventOrderCreated, order, customer, items)
	return order, items, nil
}

// recomputeTotals refreshes the order header from its items and applies the
// payment status rules, then persists the header and its payment record.
func (s *LaundryService) recomputeTotals(ctx context.Context, order *domain.Order) error {
	total, err := s.orders.SumItemTotals(ctx, order.ID)
	if err != nil {
		return err
	}
	order.TotalPrice = total
	order.Balance = total - order.AmountPaid
	if order.Balance < 0 {
		order.Balance = 0
	}
	order.DerivePaymentStatus()

	if err := s.orders.Update(ctx, order); err != nil {
		return err
	}
	return s.payments.Upsert(ctx, &domain.Payment{OrderID: order.ID, Price: order.AmountPaid})
}

// UpdateOrderInput is the editable part of an order header.
type UpdateOrderInput struct {
	PaymentType    domain.PaymentType
	DeliveryDate   time.Time
	OrderStatus    domain.OrderStatus
	AddressDetails string
	AmountPaid     float64
	UpdatedBy      *string
}

// UpdateOrder edits the header, recomputes totals and announces status
// transitions into Completed or Delivered_picked.
func (s *LaundryService) UpdateOrder(ctx context.Context, id string, in UpdateOrderInput) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := order.OrderStatus
	order.PaymentType = in.PaymentType
	order.DeliveryDate = in.DeliveryDate
	order.AddressDetails = in.AddressDetails
	order.AmountPaid = in.AmountPaid
	order.UpdatedBy = in.UpdatedBy
	if in.OrderStatus != "" {
		order.OrderStatus = in.OrderStatus
	}
	if order.OrderStatus != previous {
		order.PreviousOrderStatus = previous
	}

	if err := s.recomputeTotals(ctx, order); err != nil {
		return nil, err
	}

	if order.OrderStatus != previous {
		customer, err := s.customers.GetByID(ctx, order.CustomerID)
		if err == nil {
			switch order.OrderStatus {
			case domain.OrderStatusCompleted:
				s.publishOrderEvent(ctx, events.EventOrderCompleted, order, customer, nil)
			case domain.OrderStatusDeliveredPicked:
				s.publishOrderEvent(ctx, events.EventOrderDelivered, order, customer, nil)
			}
		}
	}
	return order, nil
}

// RecordPayment adds an amount to what the order has collected and reruns
// the payment status derivation.
func (s *LaundryService) RecordPayment(ctx context.Context, orderID string, amount float64, paymentType domain.PaymentType, updatedBy *string) (*domain.Order, error) {
	if amount <= 0 {
		return nil, util.NewValidationError("amount must be greater than 0", nil)
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.AmountPaid += amount
	if paymentType != "" {
		order.PaymentType = paymentType
	}
	order.UpdatedBy = updatedBy
	if err := s.recomputeTotals(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order and, via cascade, its items.
func (s *LaundryService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// GetOrder returns an order and its items.
func (s *LaundryService) GetOrder(ctx context.Context, id string) (*domain.Order, []domain.OrderItem, error) {
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

// GetOrderByCode looks an order up by its short code.
func (s *LaundryService) GetOrderByCode(ctx context.Context, code string) (*domain.Order, []domain.OrderItem, error) {
	order, err := s.orders.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// ListOrders pages through orders under the given filter.
func (s *LaundryService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]domain.Order, int64, error) {
	return s.orders.List(ctx, filter)
}

// AddOrderItem appends an item to an existing order and recomputes totals.
func (s *LaundryService) AddOrderItem(ctx context.Context, orderID string, in OrderItemInput) (*domain.OrderItem, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	item := s.buildItem(order.ID, in)
	if err := s.orders.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(ctx, order); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateOrderItem edits one order line and recomputes totals.
func (s *LaundryService) UpdateOrderItem(ctx context.Context, itemID string, in OrderItemInput) (*domain.OrderItem, error) {
	item, err := s.orders.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	updated := s.buildItem(item.OrderID, in)
	updated.ID = item.ID
	updated.CreatedAt = item.CreatedAt
	if err := s.orders.UpdateItem(ctx, updated); err != nil {
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, item.OrderID)
	if err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(ctx, order); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteOrderItem removes one line and recomputes the order totals.
func (s *LaundryService) DeleteOrderItem(ctx context.Context, itemID string) error {
	item, err := s.orders.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.orders.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	order, err := s.orders.GetByID(ctx, item.OrderID)
	if err != nil {
		return err
	}
	return s.recomputeTotals(ctx, order)
}

func (s *LaundryService) publishOrderEvent(ctx context.Context, eventType events.EventType, order *domain.Order, customer *domain.Customer, items []domain.OrderItem) {
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		OrderID:   order.ID,
		OrderCode: order.Code,
		Timestamp: time.Now(),
		Payload: events.OrderEventPayload{
			CustomerName:  customer.Name,
			CustomerPhone: customer.Phone,
			Shop:          order.Shop,
			TotalPrice:    order.TotalPrice,
			AmountPaid:    order.AmountPaid,
			Balance:       order.Balance,
			Items:         items,
		},
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			zap.String("event", string(eventType)),
			zap.String("order_code", order.Code),
			zap.Error(err))
	}
}

// CreateExpenseField registers a named expense category.
func (s *LaundryService) CreateExpenseField(ctx context.Context, field *domain.ExpenseField) error {
	return s.expenses.CreateField(ctx, field)
}

// DeleteExpenseField removes a category and its records.
func (s *LaundryService) DeleteExpenseField(ctx context.Context, id string) error {
	return s.expenses.DeleteField(ctx, id)
}

// ListExpenseFields returns all categories.
func (s *LaundryService) ListExpenseFields(ctx context.Context) ([]domain.ExpenseField, error) {
	return s.expenses.ListFields(ctx)
}

// CreateExpenseRecord books an expense against a field and shop.
func (s *LaundryService) CreateExpenseRecord(ctx context.Context, record *domain.ExpenseRecord) error {
	if record.Amount <= 0 {
		return util.NewValidationError("amount must be greater than 0", nil)
	}
	if record.Shop != domain.ShopNone && domain.DomainOf(record.Shop) == domain.ShopDomainNone {
		return util.NewValidationError("unknown shop", map[string]any{"shop": record.Shop})
	}
	return s.expenses.CreateRecord(ctx, record)
}

// UpdateExpenseRecord edits a booked expense.
func (s *LaundryService) UpdateExpenseRecord(ctx context.Context, record *domain.ExpenseRecord) error {
	if record.Amount <= 0 {
		return util.NewValidationError("amount must be greater than 0", nil)
	}
	return s.expenses.UpdateRecord(ctx, record)
}

// DeleteExpenseRecord removes a booked expense.
func (s *LaundryService) DeleteExpenseRecord(ctx context.Context, id string) error {
	return s.expenses.DeleteRecord(ctx, id)
}

// ListExpenseRecords pages through expenses, optionally per shop.
func (s *LaundryService) ListExpenseRecords(ctx context.Context, shop domain.Shop, page, pageSize int) ([]domain.ExpenseRecord, int64, error) {
	return s.expenses.ListRecords(ctx, shop, page, pageSize)
}
