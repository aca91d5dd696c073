package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/patternkit/patternkit/core/orders"
)

func TestInstrument_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewWithRegistry(reg)
	if err != nil {
		t.Fatalf("create metrics: %v", err)
	}

	ok := orders.Chain(orders.Terminal(""), m.Instrument())
	if _, err := ok.Process(orders.Order{ID: "o1"}); err != nil {
		t.Fatalf("process: %v", err)
	}
	failing := orders.Chain(orders.ProcessorFunc(func(orders.Order) (string, error) {
		return "", errors.New("declined")
	}), m.Instrument())
	if _, err := failing.Process(orders.Order{ID: "o2"}); err == nil {
		t.Fatal("expected error")
	}

	expected := `
# HELP orders_processed_total Total number of orders processed
# TYPE orders_processed_total counter
orders_processed_total{outcome="error"} 1
orders_processed_total{outcome="ok"} 1
`
	if err := testutil.CollectAndCompare(m.processed, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(m.duration); c == 0 {
		t.Errorf("duration not recorded")
	}
}

func TestNewWithRegistry_Reregister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewWithRegistry(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	// Registering twice on the same registry reuses the existing collectors.
	m, err := NewWithRegistry(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if m == nil {
		t.Fatal("nil metrics")
	}
}
