package domain

import (
	"strings"
	"time"
)

// PaymentType enumerates how a laundry order is settled.
type PaymentType string

const (
	PaymentTypeCash         PaymentType = "cash"
	PaymentTypeMpesa        PaymentType = "M-Pesa"
	PaymentTypeCard         PaymentType = "card"
	PaymentTypeBankTransfer PaymentType = "bank_transfer"
	PaymentTypeOther        PaymentType = "other"
	PaymentTypeNone         PaymentType = "None"
)

// PaymentStatus reflects how much of an order has been paid.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// OrderStatus enumerates the laundry order lifecycle. The mixed casing
// mirrors the values already stored by the legacy system.
type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusCompleted       OrderStatus = "Completed"
	OrderStatusDeliveredPicked OrderStatus = "Delivered_picked"
)

// Customer is a laundry customer, identified by an E.164 phone number.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Address   string
	CreatedBy *string
	CreatedAt time.Time
}

// Order is the laundry order header. Totals are derived from its items.
type Order struct {
	ID                  string
	CustomerID          string
	Code                string
	PaymentType         PaymentType
	PaymentStatus       PaymentStatus
	Shop                Shop
	DeliveryDate        time.Time
	OrderStatus         OrderStatus
	PreviousOrderStatus OrderStatus
	AddressDetails      string
	AmountPaid          float64
	TotalPrice          float64
	Balance             float64
	CreatedBy           *string
	UpdatedBy           *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DerivePaymentStatus applies the payment rules that run on every order
// save: nothing paid means pending, a balance below the total means
// partial, a zero balance means completed. A pending order carries no
// payment type.
func (o *Order) DerivePaymentStatus() {
	switch {
	case o.AmountPaid == 0:
		o.PaymentStatus = PaymentStatusPending
	case o.Balance > 0 && o.Balance < o.TotalPrice:
		o.PaymentStatus = PaymentStatusPartial
	case o.Balance == 0:
		o.PaymentStatus = PaymentStatusCompleted
	}
	if o.PaymentStatus == PaymentStatusPending {
		o.PaymentType = PaymentTypeNone
	}
}

// Laundry service and item classifications.
const (
	ServiceWashing     = "Washing"
	ServiceFolding     = "Folding"
	ServiceIroning     = "Ironing"
	ServiceDryCleaning = "Dry cleaning"

	ItemCategoryClothing  = "Clothing"
	ItemCategoryBedding   = "Bedding"
	ItemCategoryHousehold = "Household items"
	ItemCategoryFootwares = "Footwares"
)

// ItemCondition records the state garments arrived in.
type ItemCondition string

const (
	ItemConditionNew  ItemCondition = "New"
	ItemConditionOld  ItemCondition = "Old"
	ItemConditionTorn ItemCondition = "Torn"
)

// OrderItem is one line of an order. ItemName holds a comma separated list
// of garment names.
type OrderItem struct {
	ID             string
	OrderID        string
	ServiceTypes   []string
	ItemTypes      []string
	ItemName       string
	Quantity       int
	ItemCondition  ItemCondition
	AdditionalInfo string
	UnitPrice      float64
	TotalItemPrice float64
	CreatedAt      time.Time
}

// ItemList splits the comma separated item names, dropping blanks.
func (i *OrderItem) ItemList() []string {
	return splitCSV(i.ItemName)
}

// ExpenseField is a named expense category, unique by label.
type ExpenseField struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

// ExpenseRecord is a single expense booked against a field and shop.
type ExpenseRecord struct {
	ID      string
	FieldID string
	Label   string
	Shop    Shop
	Amount  float64
	Date    time.Time
	Notes   string
}

// Payment is the settlement record attached to an order, one per order.
type Payment struct {
	ID      string
	OrderID string
	Price   float64
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// NormalizeItemName collapses a raw comma separated item list into its
// canonical "a, b, c" form.
func NormalizeItemName(raw string) string {
	return strings.Join(splitCSV(raw), ", ")
}
