package domain

// OrderStats aggregates the laundry order book over a period.
type OrderStats struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	DeliveredOrders int64   `json:"delivered_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgOrderValue   float64 `json:"avg_order_value"`
	TotalAmountPaid float64 `json:"total_amount_paid"`
	TotalBalance    float64 `json:"total_balance"`
}

// PaymentStats aggregates settlements by payment status.
type PaymentStats struct {
	PendingPayments      int64   `json:"pending_payments"`
	PartialPayments      int64   `json:"partial_payments"`
	CompletePayments     int64   `json:"complete_payments"`
	TotalPendingAmount   float64 `json:"total_pending_amount"`
	TotalPartialAmount   float64 `json:"total_partial_amount"`
	TotalCompleteAmount  float64 `json:"total_complete_amount"`
	TotalCollectedAmount float64 `json:"total_collected_amount"`
	TotalBalanceAmount   float64 `json:"total_balance_amount"`
}

// ExpenseStats aggregates laundry expenses by shop.
type ExpenseStats struct {
	TotalExpenses  float64 `json:"total_expenses"`
	ShopAExpenses  float64 `json:"shop_a_expenses"`
	ShopBExpenses  float64 `json:"shop_b_expenses"`
	AverageExpense float64 `json:"average_expense"`
}

// HotelStats aggregates the food counter.
type HotelStats struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

// ShopRevenue is one row of the revenue-by-shop breakdown.
type ShopRevenue struct {
	Shop    Shop    `json:"shop"`
	Revenue float64 `json:"revenue"`
	Balance float64 `json:"balance"`
}

// NameCount is a generic ranked breakdown row (top services, common items,
// payment methods).
type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
