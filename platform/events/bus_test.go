package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pacmac_mobile_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	name string
}

func (e testEvent) EventName() string { return e.name }

func TestPublishSyncRunsAllHandlers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var calls []string
	bus.Subscribe("order.placed", HandlerFunc(func(context.Context, Event) error {
		calls = append(calls, "first")
		return nil
	}))
	bus.Subscribe("order.placed", HandlerFunc(func(context.Context, Event) error {
		calls = append(calls, "second")
		return errors.New("second failed")
	}))
	bus.Subscribe("other.event", HandlerFunc(func(context.Context, Event) error {
		calls = append(calls, "other")
		return nil
	}))

	err := bus.PublishSync(context.Background(), testEvent{NewBaseEvent(), "order.placed"})
	if err == nil {
		t.Fatal("expected joined handler error")
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestPublishIsAsyncAndSwallowsErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var wg sync.WaitGroup
	wg.Add(2)
	bus.Subscribe("quote.issued", HandlerFunc(func(context.Context, Event) error {
		wg.Done()
		return errors.New("handler error must stay internal")
	}))
	bus.Subscribe("quote.issued", HandlerFunc(func(context.Context, Event) error {
		wg.Done()
		return nil
	}))

	bus.Publish(context.Background(), testEvent{NewBaseEvent(), "quote.issued"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers did not run")
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	bus.Publish(context.Background(), testEvent{NewBaseEvent(), "nobody.cares"})
	if err := bus.PublishSync(context.Background(), testEvent{NewBaseEvent(), "nobody.cares"}); err != nil {
		t.Fatalf("PublishSync: %v", err)
	}
}
