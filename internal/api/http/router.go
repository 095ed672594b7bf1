package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/http/handlers"
	"github.com/laundrahub/admin-service/internal/auth"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/guard"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Pages     *handlers.PagesHandler
	Customers *handlers.CustomersHandler
	Orders    *handlers.OrdersHandler
	Expenses  *handlers.ExpensesHandler
	Hotel     *handlers.HotelHandler
	Reports   *handlers.ReportsHandler
	Users     *handlers.UsersHandler
	Payments  *handlers.PaymentsHandler

	Resolver       *guard.Resolver
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Page routes sit behind the session
// guard and redirect on denial; /api routes sit behind bearer auth and
// answer with status codes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	// Session flows.
	authGroup := app.Group("/auth")
	authGroup.Get("/session", cfg.Auth.Session)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/select-shop", cfg.Auth.SelectShop)
	authGroup.Post("/password/change", cfg.Auth.ChangePassword)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	// Pages.
	app.Get("/", cfg.Resolver.Root())
	app.Get(guard.PathLanding, cfg.Pages.Public("landing"))
	app.Get(guard.PathLogin, cfg.Pages.Public("login"))
	app.Get(guard.PathUnauthorized, cfg.Pages.Unauthorized)

	adminOnly := guard.Requirement{AdminOnly: true}
	app.Get(guard.PathAdminDashboard, cfg.Resolver.Protect(adminOnly), cfg.Pages.Page("admin_dashboard"))
	app.Get("/admin/reports", cfg.Resolver.Protect(adminOnly), cfg.Pages.Page("admin_reports"))
	app.Get("/admin/sites", cfg.Resolver.Protect(adminOnly), cfg.Pages.Page("admin_sites"))

	laundryPage := guard.Requirement{ShopType: domain.ShopDomainLaundry}
	app.Get(guard.PathLaundryDashboard, cfg.Resolver.Protect(laundryPage), cfg.Pages.Page("laundry_dashboard"))
	app.Get("/laundry/orders", cfg.Resolver.Protect(laundryPage), cfg.Pages.Page("laundry_orders"))
	app.Get("/laundry/customers", cfg.Resolver.Protect(laundryPage), cfg.Pages.Page("laundry_customers"))
	app.Get("/laundry/expenses", cfg.Resolver.Protect(laundryPage), cfg.Pages.Page("laundry_expenses"))

	hotelPage := guard.Requirement{ShopType: domain.ShopDomainHotel}
	app.Get(guard.PathHotelItems, cfg.Resolver.Protect(hotelPage), cfg.Pages.Page("hotel_items"))
	app.Get("/hotel/orders", cfg.Resolver.Protect(hotelPage), cfg.Pages.Page("hotel_orders"))
	app.Get("/hotel/expenses", cfg.Resolver.Protect(hotelPage), cfg.Pages.Page("hotel_expenses"))

	app.Get("/profile", cfg.Resolver.Protect(guard.Requirement{}), cfg.Pages.Page("profile"))

	// Data API, bearer-authenticated.
	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireAnyRole())

	api.Post("/customers", cfg.Customers.Create)
	api.Get("/customers", cfg.Customers.List)
	api.Get("/customers/:id", cfg.Customers.Get)
	api.Put("/customers/:id", cfg.Customers.Update)
	api.Delete("/customers/:id", cfg.Customers.Delete)

	api.Post("/orders", cfg.Orders.Create)
	api.Get("/orders", cfg.Orders.List)
	api.Get("/orders/code/:code", cfg.Orders.GetByCode)
	api.Get("/orders/:id", cfg.Orders.Get)
	api.Put("/orders/:id", cfg.Orders.Update)
	api.Delete("/orders/:id", cfg.Orders.Delete)
	api.Post("/orders/:id/items", cfg.Orders.AddItem)
	api.Post("/orders/:id/payments", cfg.Orders.RecordPayment)
	api.Put("/order-items/:id", cfg.Orders.UpdateItem)
	api.Delete("/order-items/:id", cfg.Orders.DeleteItem)

	api.Post("/expenses/fields", cfg.Expenses.CreateField)
	api.Get("/expenses/fields", cfg.Expenses.ListFields)
	api.Delete("/expenses/fields/:id", cfg.Expenses.DeleteField)
	api.Post("/expenses/records", cfg.Expenses.CreateRecord)
	api.Get("/expenses/records", cfg.Expenses.ListRecords)
	api.Put("/expenses/records/:id", cfg.Expenses.UpdateRecord)
	api.Delete("/expenses/records/:id", cfg.Expenses.DeleteRecord)

	hotel := api.Group("/hotel")
	hotel.Post("/categories", cfg.Hotel.CreateCategory)
	hotel.Get("/categories", cfg.Hotel.ListCategories)
	hotel.Delete("/categories/:id", cfg.Hotel.DeleteCategory)
	hotel.Post("/items", cfg.Hotel.CreateFoodItem)
	hotel.Get("/items", cfg.Hotel.ListFoodItems)
	hotel.Put("/items/:id", cfg.Hotel.UpdateFoodItem)
	hotel.Delete("/items/:id", cfg.Hotel.DeleteFoodItem)
	hotel.Post("/orders", cfg.Hotel.CreateOrder)
	hotel.Get("/orders", cfg.Hotel.ListOrders)
	hotel.Get("/orders/:id", cfg.Hotel.GetOrder)
	hotel.Delete("/orders/:id", cfg.Hotel.DeleteOrder)
	hotel.Get("/order-items", cfg.Hotel.ListOrderItems)
	hotel.Delete("/order-items/:id", cfg.Hotel.DeleteOrderItem)
	hotel.Post("/expenses/fields", cfg.Hotel.CreateExpenseField)
	hotel.Get("/expenses/fields", cfg.Hotel.ListExpenseFields)
	hotel.Delete("/expenses/fields/:id", cfg.Hotel.DeleteExpenseField)
	hotel.Post("/expenses/records", cfg.Hotel.CreateExpenseRecord)
	hotel.Get("/expenses/records", cfg.Hotel.ListExpenseRecords)
	hotel.Put("/expenses/records/:id", cfg.Hotel.UpdateExpenseRecord)
	hotel.Delete("/expenses/records/:id", cfg.Hotel.DeleteExpenseRecord)

	api.Get("/users/me", cfg.Users.Me)

	api.Post("/payments/mpesa/push", cfg.Payments.Push)

	// Admin-only API surface.
	admin := api.Group("", auth.RequireAdmin())
	admin.Get("/reports/summary", cfg.Reports.Summary)
	admin.Post("/users", cfg.Users.Create)
	admin.Get("/users", cfg.Users.List)
	admin.Get("/users/:id", cfg.Users.Get)
	admin.Put("/users/:id", cfg.Users.Update)
	admin.Delete("/users/:id", cfg.Users.Delete)

	app.Use(cfg.Pages.NotFound)
}
