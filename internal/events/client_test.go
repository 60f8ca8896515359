package events

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestExponentialBackoffGrowthAndCap(t *testing.T) {
	// Doubles from one second over the first attempts.
	for attempt, want := range []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
	} {
		if got := exponentialBackoff(attempt); got != want {
			t.Fatalf("attempt %d: got %v, want %v", attempt, got, want)
		}
	}

	// From there every wait is the 30s cap, no matter how long the outage
	// runs. The reconnect loop increments without bound, and shifting a
	// second by 34 or more overflows into negative or zero waits.
	for _, attempt := range []int{5, 6, 20, 34, 63, 100000} {
		got := exponentialBackoff(attempt)
		if got != 30*time.Second {
			t.Fatalf("attempt %d: got %v, want 30s", attempt, got)
		}
	}
}

func TestIsConnectionError(t *testing.T) {
	retryable := []error{
		fmt.Errorf("dial amqp: %w", errors.New("connection refused")),
		errors.New(`Exception (504) Reason: "channel/connection is not open"`),
		errors.New("read tcp 127.0.0.1:5672: unexpected EOF"),
		errors.New("connection closed by server"),
	}
	for _, err := range retryable {
		if !isConnectionError(err) {
			t.Fatalf("should redial on %v", err)
		}
	}

	permanent := []error{
		nil,
		errors.New("handler rejected message"),
		context.Canceled,
	}
	for _, err := range permanent {
		if isConnectionError(err) {
			t.Fatalf("should not redial on %v", err)
		}
	}
}

func TestTransactionCreatedMessageRoundTrip(t *testing.T) {
	msg := NewTransactionCreatedMessage("tx_123", "u1")
	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := TransactionCreatedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TransactionID != "tx_123" || got.UserID != "u1" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("timestamp should be set")
	}

	if _, err := TransactionCreatedMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error for bad payload")
	}
}
