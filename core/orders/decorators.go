package orders

import (
	"fmt"

	"github.com/patternkit/patternkit/core/logger"
)

// ValidationError reports an order rejected before reaching the wrapped
// processor.
type ValidationError struct {
	OrderID string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order %s invalid: %s", e.OrderID, e.Reason)
}

// Validate rejects orders without an ID or with a non-positive amount. Valid
// orders are passed through unchanged.
func Validate() Decorator {
	return func(next Processor) Processor {
		return ProcessorFunc(func(o Order) (string, error) {
			if o.ID == "" {
				return "", &ValidationError{OrderID: o.ID, Reason: "missing id"}
			}
			if o.Amount <= 0 {
				return "", &ValidationError{OrderID: o.ID, Reason: "non-positive amount"}
			}
			return next.Process(o)
		})
	}
}

// Logging logs around the delegate call. The wrapped processor runs exactly
// once per Process invocation.
func Logging(log logger.Logger) Decorator {
	return func(next Processor) Processor {
		return ProcessorFunc(func(o Order) (string, error) {
			log.Debugw("processing order", map[string]any{"order_id": o.ID, "amount": o.Amount})
			res, err := next.Process(o)
			if err != nil {
				log.Errorf("order %s failed: %v", o.ID, err)
				return res, err
			}
			log.Infof("order %s: %s", o.ID, res)
			return res, nil
		})
	}
}

// Receipt appends a receipt line derived from the order and the wrapped
// result. The output is a pure function of both.
func Receipt() Decorator {
	return func(next Processor) Processor {
		return ProcessorFunc(func(o Order) (string, error) {
			res, err := next.Process(o)
			if err != nil {
				return res, err
			}
			return fmt.Sprintf("%s | receipt %s amount=%d", res, o.ID, o.Amount), nil
		})
	}
}
