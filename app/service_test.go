package app

import (
	"context"
	"strings"
	"testing"

	"github.com/patternkit/patternkit/config"
	"github.com/patternkit/patternkit/core/orders"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Logging.SetDefaults()
	cfg.Factory.SetDefaults()
	cfg.Orders.SetDefaults()
	return cfg
}

func TestNew_UnknownFamily(t *testing.T) {
	cfg := testConfig()
	cfg.Factory.Family = "family9"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected unknown family error")
	}
}

func TestProcessOrder_Chain(t *testing.T) {
	cfg := testConfig()
	cfg.Orders.Validation = true
	cfg.Orders.Receipt = true
	svc, err := New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	o := orders.New("alice", 250)
	res, err := svc.ProcessOrder(o)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.Contains(res, "processed order "+o.ID) {
		t.Fatalf("missing terminal output: %q", res)
	}
	if !strings.Contains(res, "receipt "+o.ID) {
		t.Fatalf("missing receipt: %q", res)
	}

	if _, err := svc.ProcessOrder(orders.Order{ID: "o1", Amount: 0}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestRun(t *testing.T) {
	svc, err := New(testConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := svc.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}

func TestMetricsSingleton(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = true
	if _, err := New(cfg); err != nil {
		t.Fatalf("first: %v", err)
	}
	// A second service must reuse the same collectors without a
	// duplicate-registration error on the default registerer.
	if _, err := New(cfg); err != nil {
		t.Fatalf("second: %v", err)
	}
}
