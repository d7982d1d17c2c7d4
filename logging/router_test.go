package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/Lubba-64/inventory-go/logging"
	"github.com/Lubba-64/inventory-go/logging/sinks"
)

func waitForEvents(t *testing.T, sink *sinks.MemorySink, want int) []logging.Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		events := sink.Events()
		if len(events) >= want {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d events, have %d", want, len(sink.Events()))
	return nil
}

func TestRouterDeliversToSinks(t *testing.T) {
	memory := sinks.NewMemorySink()
	router, err := logging.NewRouter(nil, logging.DefaultConfig(), []logging.NamedSink{
		{Name: "memory", Sink: memory},
	})
	if err != nil {
		t.Fatalf("unexpected router error: %v", err)
	}
	defer router.Close(context.Background())

	router.Publish(context.Background(), logging.Event{
		Type:      "inventory.stack_added",
		Inventory: "bag-1",
		Slot:      logging.NoSlot,
		Severity:  logging.SeverityInfo,
	})

	events := waitForEvents(t, memory, 1)
	if events[0].Type != "inventory.stack_added" {
		t.Fatalf("expected stack_added event, got %s", events[0].Type)
	}
	if events[0].Inventory != "bag-1" {
		t.Fatalf("expected inventory id preserved, got %q", events[0].Inventory)
	}
	if events[0].Time.IsZero() {
		t.Fatalf("expected router to stamp a time")
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	memory := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router, err := logging.NewRouter(nil, cfg, []logging.NamedSink{
		{Name: "memory", Sink: memory},
	})
	if err != nil {
		t.Fatalf("unexpected router error: %v", err)
	}

	router.Publish(context.Background(), logging.Event{Type: "a", Severity: logging.SeverityInfo})
	router.Publish(context.Background(), logging.Event{Type: "b", Severity: logging.SeverityWarn})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 || events[0].Type != "b" {
		t.Fatalf("expected only the warn event delivered, got %v", events)
	}
}

func TestRouterAppliesConfiguredFields(t *testing.T) {
	memory := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"app": "demo"}
	router, err := logging.NewRouter(nil, cfg, []logging.NamedSink{
		{Name: "memory", Sink: memory},
	})
	if err != nil {
		t.Fatalf("unexpected router error: %v", err)
	}
	defer router.Close(context.Background())

	router.Publish(context.Background(), logging.Event{Type: "x", Severity: logging.SeverityInfo})

	events := waitForEvents(t, memory, 1)
	if events[0].Extra["app"] != "demo" {
		t.Fatalf("expected configured field on delivered event, got %v", events[0].Extra)
	}
}

func TestWithFieldsDoesNotOverrideEventValues(t *testing.T) {
	var got logging.Event
	pub := logging.WithFields(logging.PublisherFunc(func(_ context.Context, event logging.Event) {
		got = event
	}), map[string]any{"owner": "default"})

	pub.Publish(context.Background(), logging.Event{
		Type:  "y",
		Extra: map[string]any{"owner": "alice"},
	})
	if got.Extra["owner"] != "alice" {
		t.Fatalf("expected event-level value to win, got %v", got.Extra["owner"])
	}
}
