package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewInMemoryDispatcher()
	var created, completed int
	d.Subscribe(EventOrderCreated, func(ctx context.Context, e Event) error {
		created++
		return nil
	})
	d.Subscribe(EventOrderCompleted, func(ctx context.Context, e Event) error {
		completed++
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventOrderCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if created != 1 || completed != 0 {
		t.Errorf("created = %d, completed = %d; want 1, 0", created, completed)
	}
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	var second bool
	d.Subscribe(EventOrderDelivered, func(ctx context.Context, e Event) error {
		return errors.New("sms gateway down")
	})
	d.Subscribe(EventOrderDelivered, func(ctx context.Context, e Event) error {
		second = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventOrderDelivered}); err != nil {
		t.Fatalf("Publish returned %v; handler errors must not surface", err)
	}
	if !second {
		t.Error("second handler did not run after the first failed")
	}
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher()
	if err := d.Publish(context.Background(), Event{Type: EventOrderCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}
