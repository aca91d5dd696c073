// Package app wires the configured catalogue demos into a runnable service.
package app

import (
	"context"
	"fmt"

	"github.com/patternkit/patternkit/config"
	"github.com/patternkit/patternkit/core/abstractfactory"
	"github.com/patternkit/patternkit/core/builder"
	"github.com/patternkit/patternkit/core/factorymethod"
	"github.com/patternkit/patternkit/core/orders"
	"github.com/patternkit/patternkit/core/singleton"
	"github.com/patternkit/patternkit/infra/logger"
	"github.com/patternkit/patternkit/infra/metrics"
)

// processorMetrics is shared process-wide: the collectors may register
// against the default Prometheus registerer at most once.
var processorMetrics = singleton.New(func() (*metrics.ProcessorMetrics, error) {
	return metrics.New()
})

// Service holds the configured demo components.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	client *abstractfactory.Client
	chain  orders.Processor
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.SetGlobalLevel(cfg.Logging.Level)
	log := logger.New("service")

	family, err := abstractfactory.ForName(cfg.Factory.Family)
	if err != nil {
		return nil, fmt.Errorf("factory family: %w", err)
	}

	var decorators []orders.Decorator
	if cfg.Metrics.Enabled {
		m, err := processorMetrics.Get()
		if err != nil {
			return nil, fmt.Errorf("processor metrics: %w", err)
		}
		decorators = append(decorators, m.Instrument())
	}
	if cfg.Orders.Validation {
		decorators = append(decorators, orders.Validate())
	}
	decorators = append(decorators, orders.Logging(logger.New("orders")))
	if cfg.Orders.Receipt {
		decorators = append(decorators, orders.Receipt())
	}

	return &Service{
		cfg:    cfg,
		log:    log,
		client: abstractfactory.NewClient(family),
		chain:  orders.Chain(orders.Terminal(cfg.Orders.Label), decorators...),
	}, nil
}

// ProcessOrder runs one order through the configured decorator chain.
func (s *Service) ProcessOrder(o orders.Order) (string, error) {
	return s.chain.Process(o)
}

// Run executes every catalogue demo once, logging each outcome. It stops
// early if ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	demos := []struct {
		name string
		run  func() error
	}{
		{"builder", s.demoBuilder},
		{"factory-method", s.demoFactoryMethod},
		{"abstract-factory", s.demoAbstractFactory},
		{"prototype", s.demoPrototype},
		{"orders", s.demoOrders},
	}
	for _, d := range demos {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := d.run(); err != nil {
			return fmt.Errorf("%s demo: %w", d.name, err)
		}
	}
	return nil
}

func (s *Service) demoBuilder() error {
	b := builder.NewPartsBuilder()
	builder.NewDirector(b).Construct()
	p := b.Result()
	s.log.Infof("builder assembled: %q %q %q", p.PartA, p.PartB, p.PartC)
	return nil
}

func (s *Service) demoFactoryMethod() error {
	s.log.Infof("factory method: %s", factorymethod.SomeOperation(factorymethod.ConcreteCreatorA{}))
	s.log.Infof("factory method: %s", factorymethod.SomeOperation(factorymethod.ConcreteCreatorB{}))
	return nil
}

func (s *Service) demoAbstractFactory() error {
	a, b := s.client.Describe()
	s.log.Infof("abstract factory %s: %s, %s", s.cfg.Factory.Family, a, b)
	return nil
}

func (s *Service) demoPrototype() error {
	src := orders.New("prototype", 100)
	src.Items = []orders.Item{{SKU: "demo", Qty: 1, Price: 100}}
	clone := src.Clone()
	clone.Items[0].Qty = 2
	s.log.Infof("prototype: source qty %d, clone qty %d", src.Items[0].Qty, clone.Items[0].Qty)
	return nil
}

func (s *Service) demoOrders() error {
	res, err := s.ProcessOrder(orders.New("demo", 250))
	if err != nil {
		return err
	}
	s.log.Infof("orders: %s", res)
	return nil
}
