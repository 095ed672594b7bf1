package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/pkg/util"
)

// ExpensesHandler exposes laundry expense fields and records.
type ExpensesHandler struct {
	laundry *service.LaundryService
}

// NewExpensesHandler constructs handler.
func NewExpensesHandler(laundry *service.LaundryService) *ExpensesHandler {
	return &ExpensesHandler{laundry: laundry}
}

// CreateField handles POST /api/expenses/fields.
func (h *ExpensesHandler) CreateField(c *fiber.Ctx) error {
	var req dto.CreateExpenseFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	field := &domain.ExpenseField{Label: req.Label}
	if err := h.laundry.CreateExpenseField(c.Context(), field); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": field.ID, "label": field.Label})
}

// DeleteField handles DELETE /api/expenses/fields/:id.
func (h *ExpensesHandler) DeleteField(c *fiber.Ctx) error {
	if err := h.laundry.DeleteExpenseField(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFields handles GET /api/expenses/fields.
func (h *ExpensesHandler) ListFields(c *fiber.Ctx) error {
	fields, err := h.laundry.ListExpenseFields(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromExpenseFields(fields), int64(len(fields))))
}

// CreateRecord handles POST /api/expenses/records.
func (h *ExpensesHandler) CreateRecord(c *fiber.Ctx) error {
	var req dto.CreateExpenseRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	record := &domain.ExpenseRecord{
		FieldID: req.FieldID,
		Shop:    req.Shop,
		Amount:  req.Amount,
		Notes:   req.Notes,
	}
	if err := h.laundry.CreateExpenseRecord(c.Context(), record); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromExpenseRecord(record))
}

// UpdateRecord handles PUT /api/expenses/records/:id.
func (h *ExpensesHandler) UpdateRecord(c *fiber.Ctx) error {
	var req dto.UpdateExpenseRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	record := &domain.ExpenseRecord{
		ID:      c.Params("id"),
		FieldID: req.FieldID,
		Shop:    req.Shop,
		Amount:  req.Amount,
		Notes:   req.Notes,
	}
	if err := h.laundry.UpdateExpenseRecord(c.Context(), record); err != nil {
		return err
	}
	return c.JSON(dto.FromExpenseRecord(record))
}

// DeleteRecord handles DELETE /api/expenses/records/:id.
func (h *ExpensesHandler) DeleteRecord(c *fiber.Ctx) error {
	if err := h.laundry.DeleteExpenseRecord(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListRecords handles GET /api/expenses/records with an optional shop
// filter.
func (h *ExpensesHandler) ListRecords(c *fiber.Ctx) error {
	page, pageSize := pageParams(c)
	records, total, err := h.laundry.ListExpenseRecords(c.Context(),
		domain.ParseShop(c.Query("shop")), page, pageSize)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewListResponse(dto.FromExpenseRecords(records), total))
}
