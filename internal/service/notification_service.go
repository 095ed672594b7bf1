package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/laundrahub/admin-service/internal/domain"
	"github.com/laundrahub/admin-service/internal/events"
	"github.com/laundrahub/admin-service/internal/notify"
)

// maxItemsInSMS caps how many item entries an order SMS spells out before
// collapsing the rest into a count.
const maxItemsInSMS = 6

// NotificationService turns order events into customer SMS messages.
type NotificationService struct {
	sender notify.SMSSender
	logger *zap.Logger
}

// NewNotificationService builds the service. A nil sender disables sending
// but keeps the handlers registered so event flow stays observable in logs.
func NewNotificationService(sender notify.SMSSender, logger *zap.Logger) *NotificationService {
	return &NotificationService{sender: sender, logger: logger}
}

// RegisterHandlers subscribes the service to the order lifecycle events.
func (s *NotificationService) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventOrderCreated, s.handleOrderCreated)
	dispatcher.Subscribe(events.EventOrderCompleted, s.handleOrderCompleted)
	dispatcher.Subscribe(events.EventOrderDelivered, s.handleOrderDelivered)
}

func (s *NotificationService) handleOrderCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderEventPayload)
	if !ok {
		return nil
	}
	body := fmt.Sprintf(
		"Hello %s! Your order %s has been received. Items: %s. Total: %s. Paid: %s. Balance: %s. And it is now being processed.",
		payload.CustomerName,
		event.OrderCode,
		itemsSummary(payload.Items),
		formatCurrency(payload.TotalPrice),
		formatCurrency(payload.AmountPaid),
		formatCurrency(payload.Balance),
	)
	return s.send(ctx, event.OrderCode, payload.CustomerPhone, body)
}

func (s *NotificationService) handleOrderCompleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderEventPayload)
	if !ok {
		return nil
	}
	body := fmt.Sprintf(
		"Hi %s, your order %s is now complete! Thank you for choosing our laundry service.",
		payload.CustomerName, event.OrderCode)
	return s.send(ctx, event.OrderCode, payload.CustomerPhone, body)
}

func (s *NotificationService) handleOrderDelivered(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.OrderEventPayload)
	if !ok {
		return nil
	}
	body := fmt.Sprintf(
		"Hello %s, your order %s has been delivered successfully. We appreciate your trust in our services!",
		payload.CustomerName, event.OrderCode)
	return s.send(ctx, event.OrderCode, payload.CustomerPhone, body)
}

func (s *NotificationService) send(ctx context.Context, orderCode, phone, body string) error {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		s.logger.Warn("skipping SMS, phone is not E.164",
			zap.String("order_code", orderCode))
		return nil
	}
	if s.sender == nil {
		s.logger.Info("SMS disabled, message not sent",
			zap.String("order_code", orderCode))
		return nil
	}

	sid, err := s.sender.Send(ctx, phone, body)
	if err != nil {
		s.logger.Error("failed to send SMS",
			zap.String("order_code", orderCode),
			zap.Error(err))
		return err
	}
	s.logger.Info("SMS sent",
		zap.String("order_code", orderCode),
		zap.String("sid", sid))
	return nil
}

// itemsSummary renders the order's lines as "2x Shirt, Towel, +3 more".
func itemsSummary(items []domain.OrderItem) string {
	var entries []string
	for _, item := range items {
		names := item.ItemList()
		if len(names) == 0 && item.ItemName != "" {
			names = []string{strings.TrimSpace(item.ItemName)}
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		for _, name := range names {
			if quantity > 1 {
				entries = append(entries, fmt.Sprintf("%dx %s", quantity, name))
			} else {
				entries = append(entries, name)
			}
		}
	}
	if len(entries) == 0 {
		return "items not specified"
	}

	visible := entries
	if len(entries) > maxItemsInSMS {
		visible = entries[:maxItemsInSMS]
	}
	summary := strings.Join(visible, ", ")
	if hidden := len(entries) - maxItemsInSMS; hidden > 0 {
		summary = fmt.Sprintf("%s, +%d more", summary, hidden)
	}
	return summary
}

func formatCurrency(value float64) string {
	return fmt.Sprintf("KSh %.2f", value)
}
