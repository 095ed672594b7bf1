package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/laundrahub/admin-service/internal/api/dto"
	"github.com/laundrahub/admin-service/internal/payments"
	"github.com/laundrahub/admin-service/internal/service"
	"github.com/laundrahub/admin-service/pkg/util"
)

// PaymentsHandler triggers M-Pesa STK push prompts.
type PaymentsHandler struct {
	mpesa *payments.MpesaClient
}

// NewPaymentsHandler constructs handler. A nil client keeps the route
// responding with a clear error instead of panicking.
func NewPaymentsHandler(mpesa *payments.MpesaClient) *PaymentsHandler {
	return &PaymentsHandler{mpesa: mpesa}
}

// Push handles POST /api/payments/mpesa/push.
func (h *PaymentsHandler) Push(c *fiber.Ctx) error {
	if h.mpesa == nil {
		return util.NewDomainError("PAYMENTS_DISABLED", "M-Pesa is not configured", fiber.StatusServiceUnavailable, nil)
	}

	var req dto.MpesaPushRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}
	phone, err := service.NormalizePhone(req.Phone)
	if err != nil {
		return err
	}
	// Daraja wants 2547XXXXXXXX, without the plus.
	phone = strings.TrimPrefix(phone, "+")

	result, err := h.mpesa.STKPush(c.Context(), phone, req.Amount)
	if err != nil {
		return util.NewDomainError("MPESA_PUSH_FAILED", err.Error(), fiber.StatusBadGateway, nil)
	}
	return c.JSON(dto.MpesaPushResponse{
		MerchantRequestID: result.MerchantRequestID,
		CheckoutRequestID: result.CheckoutRequestID,
		CustomerMessage:   result.CustomerMessage,
	})
}
