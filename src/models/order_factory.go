package models

import (
	"time"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/identifiers"
)

// OrderFactory mints validated orders, owning the order identifier
// generator and the clock that stamps each order.
type OrderFactory struct {
	idGenerator *identifiers.OrderIDGenerator
	clock       clock.Clock
}

func NewOrderFactory(idGenerator *identifiers.OrderIDGenerator, clk clock.Clock) (*OrderFactory, error) {
	if idGenerator == nil {
		return nil, GeneratorNotSetErr
	}

	if clk == nil {
		return nil, identifiers.ClockNotSetErr
	}

	return &OrderFactory{idGenerator: idGenerator, clock: clk}, nil
}

func (f *OrderFactory) Market(symbol eventmodels.Symbol, label string, side eventmodels.Side, quantity float64) (*Order, error) {
	return NewOrder(f.idGenerator.GenerateOrderID(), symbol, label, side, eventmodels.OrderTypeMarket, quantity, nil, eventmodels.TimeInForceDay, nil, f.clock.Now())
}

func (f *OrderFactory) Limit(symbol eventmodels.Symbol, label string, side eventmodels.Side, quantity, price float64, timeInForce eventmodels.TimeInForce, expireTime *time.Time) (*Order, error) {
	return NewOrder(f.idGenerator.GenerateOrderID(), symbol, label, side, eventmodels.OrderTypeLimit, quantity, &price, timeInForce, expireTime, f.clock.Now())
}

func (f *OrderFactory) StopMarket(symbol eventmodels.Symbol, label string, side eventmodels.Side, quantity, price float64, timeInForce eventmodels.TimeInForce, expireTime *time.Time) (*Order, error) {
	return NewOrder(f.idGenerator.GenerateOrderID(), symbol, label, side, eventmodels.OrderTypeStopMarket, quantity, &price, timeInForce, expireTime, f.clock.Now())
}
