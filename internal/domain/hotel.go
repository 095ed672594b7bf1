package domain

import "time"

// FoodCategory groups food items on the hotel counter, unique by name.
type FoodCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// FoodItem is a dish sold by the counter. TotalOrderPrice and QuantitySold
// are running totals over cash sales, recomputed whenever an order item for
// this dish is saved.
type FoodItem struct {
	ID              string
	CategoryID      string
	CategoryName    string
	Name            string
	TotalOrderPrice float64
	QuantitySold    int
	CreatedBy       *string
	CreatedAt       time.Time
}

// HotelOrder is a counter sale, a bag of order items.
type HotelOrder struct {
	ID        string
	CreatedBy *string
	CreatedAt time.Time
	Total     float64
}

// HotelOrderItem is one dish on a counter sale. OnCredit marks debtor
// sales, which carry the debtor's name and are excluded from the food
// item's cash totals.
type HotelOrderItem struct {
	ID         string
	OrderID    string
	FoodItemID string
	FoodName   string
	Quantity   int
	Price      float64
	DebtorName string
	OnCredit   bool
	CreatedAt  time.Time
}

// HotelExpenseField is a named hotel expense category, unique by label.
type HotelExpenseField struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

// HotelExpenseRecord is a single hotel expense.
type HotelExpenseRecord struct {
	ID      string
	FieldID string
	Label   string
	Amount  float64
	Date    time.Time
	Notes   string
}
