package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/pkg/util"
)

// CustomersHandler exposes laundry customer management.
type CustomersHandler struct {
	laundry *service.LaundryService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(laundry *service.LaundryService) *CustomersHandler {
	return &CustomersHandler{laundry: laundry}
}

// Create handles POST /api/customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	customer := &domain.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.laundry.CreateCustomer(c.Context(), customer); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromCustomer(customer))
}

// Update handles PUT /api/customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	customer := &domain.Customer{
		ID:      c.Params("id"),
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.laundry.UpdateCustomer(c.Context(), customer); err != nil {
		return err
	}
	return c.JSON(dto.FromCustomer(customer))
}

// Delete handles DELETE /api/customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	if err := h.laundry.DeleteCustomer(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get handles GET /api/customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	customer, err := h.laundry.GetCustomer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromCustomer(customer))
}

// List handles GET /api/customers with optional search over name and phone.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	customers, total, err := h.laundry.ListCustomers(c.Context(), c.Query("search"), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromCustomers(customers), total))
}
