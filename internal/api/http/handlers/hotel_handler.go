package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/pkg/util"
)

// HotelHandler exposes the food counter: categories, dishes, counter sales
// and hotel expenses.
type HotelHandler struct {
	hotel *service.HotelService
}

// NewHotelHandler constructs handler.
func NewHotelHandler(hotel *service.HotelService) *HotelHandler {
	return &HotelHandler{hotel: hotel}
}

// CreateCategory handles POST /api/hotel/categories.
func (h *HotelHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CreateFoodCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	category := &domain.FoodCategory{Name: req.Name}
	if err := h.hotel.CreateCategory(c.Context(), category); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": category.ID, "name": category.Name})
}

// DeleteCategory handles DELETE /api/hotel/categories/:id.
func (h *HotelHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.hotel.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCategories handles GET /api/hotel/categories.
func (h *HotelHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.hotel.ListCategories(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromFoodCategories(categories), int64(len(categories))))
}

// CreateFoodItem handles POST /api/hotel/items.
func (h *HotelHandler) CreateFoodItem(c *fiber.Ctx) error {
	var req dto.CreateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	item := &domain.FoodItem{CategoryID: req.CategoryID, Name: req.Name, CreatedBy: callerID(c)}
	if err := h.hotel.CreateFoodItem(c.Context(), item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromFoodItem(item))
}

// UpdateFoodItem handles PUT /api/hotel/items/:id.
func (h *HotelHandler) UpdateFoodItem(c *fiber.Ctx) error {
	var req dto.UpdateFoodItemRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	item, err := h.hotel.GetFoodItem(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	item.CategoryID = req.CategoryID
	item.Name = req.Name
	if err := h.hotel.UpdateFoodItem(c.Context(), item); err != nil {
		return err
	}
	return c.JSON(dto.FromFoodItem(item))
}

// DeleteFoodItem handles DELETE /api/hotel/items/:id.
func (h *HotelHandler) DeleteFoodItem(c *fiber.Ctx) error {
	if err := h.hotel.DeleteFoodItem(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFoodItems handles GET /api/hotel/items with an optional category
// filter.
func (h *HotelHandler) ListFoodItems(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	items, total, err := h.hotel.ListFoodItems(c.Context(), c.Query("category_id"), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromFoodItems(items), total))
}

// CreateOrder handles POST /api/hotel/orders.
func (h *HotelHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateHotelOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	order, items, err := h.hotel.CreateHotelOrder(c.Context(), callerID(c), req.Inputs())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromHotelOrder(order, items))
}

// DeleteOrder handles DELETE /api/hotel/orders/:id.
func (h *HotelHandler) DeleteOrder(c *fiber.Ctx) error {
	if err := h.hotel.DeleteHotelOrder(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetOrder handles GET /api/hotel/orders/:id.
func (h *HotelHandler) GetOrder(c *fiber.Ctx) error {
	order, items, err := h.hotel.GetHotelOrder(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromHotelOrder(order, items))
}

// ListOrders handles GET /api/hotel/orders.
func (h *HotelHandler) ListOrders(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	orders, total, err := h.hotel.ListHotelOrders(c.Context(), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromHotelOrders(orders), total))
}

// ListOrderItems handles GET /api/hotel/order-items, the feed behind the
// hotel items page.
func (h *HotelHandler) ListOrderItems(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	items, total, err := h.hotel.ListHotelOrderItems(c.Context(), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromHotelOrderItems(items), total))
}

// DeleteOrderItem handles DELETE /api/hotel/order-items/:id.
func (h *HotelHandler) DeleteOrderItem(c *fiber.Ctx) error {
	if err := h.hotel.DeleteHotelOrderItem(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateExpenseField handles POST /api/hotel/expenses/fields.
func (h *HotelHandler) CreateExpenseField(c *fiber.Ctx) error {
	var req dto.CreateHotelExpenseFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	field := &domain.HotelExpenseField{Label: req.Label}
	if err := h.hotel.CreateHotelExpenseField(c.Context(), field); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": field.ID, "label": field.Label})
}

// DeleteExpenseField handles DELETE /api/hotel/expenses/fields/:id.
func (h *HotelHandler) DeleteExpenseField(c *fiber.Ctx) error {
	if err := h.hotel.DeleteHotelExpenseField(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListExpenseFields handles GET /api/hotel/expenses/fields.
func (h *HotelHandler) ListExpenseFields(c *fiber.Ctx) error {
	fields, err := h.hotel.ListHotelExpenseFields(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromHotelExpenseFields(fields), int64(len(fields))))
}

// CreateExpenseRecord handles POST /api/hotel/expenses/records.
func (h *HotelHandler) CreateExpenseRecord(c *fiber.Ctx) error {
	var req dto.CreateHotelExpenseRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	record := &domain.HotelExpenseRecord{
		FieldID: req.FieldID,
		Amount:  req.Amount,
		Notes:   req.Notes,
	}
	if err := h.hotel.CreateHotelExpenseRecord(c.Context(), record); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(hotelExpenseResponse(record))
}

// UpdateExpenseRecord handles PUT /api/hotel/expenses/records/:id.
func (h *HotelHandler) UpdateExpenseRecord(c *fiber.Ctx) error {
	var req dto.UpdateHotelExpenseRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	record := &domain.HotelExpenseRecord{
		ID:      c.Params("id"),
		FieldID: req.FieldID,
		Amount:  req.Amount,
		Notes:   req.Notes,
	}
	if err := h.hotel.UpdateHotelExpenseRecord(c.Context(), record); err != nil {
		return err
	}
	return c.JSON(hotelExpenseResponse(record))
}

func hotelExpenseResponse(record *domain.HotelExpenseRecord) dto.HotelExpenseRecordResponse {
	return dto.HotelExpenseRecordResponse{
		ID:      record.ID,
		FieldID: record.FieldID,
		Label:   record.Label,
		Amount:  record.Amount,
		Date:    record.Date,
		Notes:   record.Notes,
	}
}

// DeleteExpenseRecord handles DELETE /api/hotel/expenses/records/:id.
func (h *HotelHandler) DeleteExpenseRecord(c *fiber.Ctx) error {
	if err := h.hotel.DeleteHotelExpenseRecord(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListExpenseRecords handles GET /api/hotel/expenses/records.
func (h *HotelHandler) ListExpenseRecords(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	records, total, err := h.hotel.ListHotelExpenseRecords(c.Context(), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromHotelExpenseRecords(records), total))
}
