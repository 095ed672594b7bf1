package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/auth"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/repository"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/pkg/util"
)

// OrdersHandler exposes laundry orders, their items and payments.
type OrdersHandler struct {
	laundry *service.LaundryService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(laundry *service.LaundryService) *OrdersHandler {
	return &OrdersHandler{laundry: laundry}
}

// callerID returns the authenticated caller's user ID for audit columns.
func callerID(c *fiber.Ctx) *string {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil
	}
	id := principal.User.ID
	return &id
}

// Create handles POST /api/orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	in := service.CreateOrderInput{
		CustomerID:     req.CustomerID,
		PaymentType:    req.PaymentType,
		Shop:           req.Shop,
		DeliveryDate:   req.DeliveryDate,
		AddressDetails: req.AddressDetails,
		AmountPaid:     req.AmountPaid,
		CreatedBy:      callerID(c),
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, item.Input())
	}

	order, items, err := h.laundry.CreateOrder(c.Context(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(order, items))
}

// Update handles PUT /api/orders/:id.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	order, err := h.laundry.UpdateOrder(c.Context(), c.Params("id"), service.UpdateOrderInput{
		PaymentType:    req.PaymentType,
		DeliveryDate:   req.DeliveryDate,
		OrderStatus:    req.OrderStatus,
		AddressDetails: req.AddressDetails,
		AmountPaid:     req.AmountPaid,
		UpdatedBy:      callerID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.FromOrder(order, nil))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	if err := h.laundry.DeleteOrder(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Get handles GET /api/orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, items, err := h.laundry.GetOrder(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromOrder(order, items))
}

// GetByCode handles GET /api/orders/code/:code.
func (h *OrdersHandler) GetByCode(c *fiber.Ctx) error {
	order, items, err := h.laundry.GetOrderByCode(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromOrder(order, items))
}

// List handles GET /api/orders with shop and status filters.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	filter := repository.OrderFilter{
		Shop:          domain.ParseShop(c.Query("shop")),
		OrderStatus:   domain.OrderStatus(c.Query("order_status")),
		PaymentStatus: domain.PaymentStatus(c.Query("payment_status")),
		Page:          page,
		PageSize:      pageSize,
	}
	orders, total, err := h.laundry.ListOrders(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromOrders(orders), total))
}

// AddItem handles POST /api/orders/:id/items.
func (h *OrdersHandler) AddItem(c *fiber.Ctx) error {
	var req dto.OrderItemRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	item, err := h.laundry.AddOrderItem(c.Context(), c.Params("id"), req.Input())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrderItem(item))
}

// UpdateItem handles PUT /api/order-items/:id.
func (h *OrdersHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.OrderItemRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	item, err := h.laundry.UpdateOrderItem(c.Context(), c.Params("id"), req.Input())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromOrderItem(item))
}

// DeleteItem handles DELETE /api/order-items/:id.
func (h *OrdersHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.laundry.DeleteOrderItem(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordPayment handles POST /api/orders/:id/payments.
func (h *OrdersHandler) RecordPayment(c *fiber.Ctx) error {
	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	order, err := h.laundry.RecordPayment(c.Context(), c.Params("id"), req.Amount, req.PaymentType, callerID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromOrder(order, nil))
}
