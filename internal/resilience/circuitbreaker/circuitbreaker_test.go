package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      2,
		Interval:         10 * time.Second,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func fail(err error) func() (any, error) {
	return func() (any, error) { return nil, err }
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb.Name() != "test-circuit" {
		t.Errorf("expected name='test-circuit', got %q", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	cb := New(testConfig())

	result, err := cb.Execute(func() (any, error) { return "rows", nil })
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if result != "rows" {
		t.Errorf("expected result='rows', got %v", result)
	}

	testErr := errors.New("connection refused")
	if _, err := cb.Execute(fail(testErr)); err != testErr {
		t.Errorf("expected error=%v, got %v", testErr, err)
	}
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := New(testConfig())
	testErr := errors.New("connection refused")

	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(fail(testErr))
	}
	if cb.IsOpen() {
		t.Fatal("circuit must stay closed below MinRequests")
	}

	_, _ = cb.Execute(fail(testErr))
	if !cb.IsOpen() {
		t.Fatalf("expected state=Open, got %v", cb.State())
	}

	_, err := cb.Execute(func() (any, error) {
		t.Error("function should not be called when circuit is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := New(testConfig())
	for i := 0; i < 6; i++ {
		_, _ = cb.Execute(fail(errors.New("down")))
	}
	if !cb.IsOpen() {
		t.Fatalf("circuit should be open, got %v", cb.State())
	}

	time.Sleep(150 * time.Millisecond)

	for i := 0; i < 2; i++ {
		if _, err := cb.Execute(func() (any, error) { return "ok", nil }); err != nil {
			t.Fatalf("expected success in half-open state, got %v", err)
		}
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed after successful probes, got %v", cb.State())
	}
}

func TestCircuitBreaker_IsFailureIgnoresCallerErrors(t *testing.T) {
	cfg := testConfig()
	cfg.IsFailure = func(err error) bool { return !errors.Is(err, context.Canceled) }
	cb := New(cfg)

	for i := 0; i < 10; i++ {
		_, _ = cb.Execute(fail(context.Canceled))
	}
	if cb.IsOpen() {
		t.Error("canceled requests must not trip the circuit")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("test")

	if cfg.Name != "test" {
		t.Errorf("expected Name='test', got %q", cfg.Name)
	}
	if cfg.MinRequests != 5 {
		t.Errorf("expected MinRequests=5, got %d", cfg.MinRequests)
	}
	if cfg.FailureThreshold != 0.6 {
		t.Errorf("expected FailureThreshold=0.6, got %f", cfg.FailureThreshold)
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()

	if cfg.Name != "database" {
		t.Errorf("expected Name='database', got %q", cfg.Name)
	}
	if cfg.FailureThreshold != 1.0 {
		t.Errorf("expected FailureThreshold=1.0, got %f", cfg.FailureThreshold)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected Timeout=30s, got %v", cfg.Timeout)
	}
}
