package worker

import (
	"github.com/laundrahub/admin-service/internal/events"
	"github.com/laundrahub/admin-service/internal/service"
)

// StartNotificationWorker subscribes the SMS notification handlers to the
// order event stream.
func StartNotificationWorker(notifications *service.NotificationService, dispatcher events.Dispatcher) {
	if notifications == nil {
		return
	}
	notifications.RegisterHandlers(dispatcher)
}
