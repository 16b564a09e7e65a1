package models

import (
	"fmt"
	"time"

	"github.com/quantfold/tradecore/src/eventmodels"
)

// Order is a validated order value ready for submission. Market orders
// carry no price; every other type requires one. GTD orders require an
// expire time.
type Order struct {
	id          eventmodels.OrderID
	symbol      eventmodels.Symbol
	label       string
	side        eventmodels.Side
	orderType   eventmodels.OrderType
	quantity    float64
	timestamp   time.Time
	price       *float64
	timeInForce eventmodels.TimeInForce
	expireTime  *time.Time
}

func NewOrder(id eventmodels.OrderID, symbol eventmodels.Symbol, label string, side eventmodels.Side, orderType eventmodels.OrderType, quantity float64, price *float64, timeInForce eventmodels.TimeInForce, expireTime *time.Time, timestamp time.Time) (*Order, error) {
	if id == "" {
		return nil, OrderIDNotSetErr
	}

	if symbol == "" {
		return nil, SymbolNotSetErr
	}

	if side != eventmodels.SideBuy && side != eventmodels.SideSell {
		return nil, UnknownSideErr
	}

	if quantity <= 0 {
		return nil, fmt.Errorf("found %v: %w", quantity, NonPositiveQuantityErr)
	}

	if orderType.HasPrice() {
		if price == nil {
			return nil, fmt.Errorf("found %v: %w", orderType, PriceRequiredErr)
		}

		if *price <= 0 {
			return nil, fmt.Errorf("found %v: %w", *price, NonPositivePriceErr)
		}
	} else if price != nil {
		return nil, PriceNotAllowedErr
	}

	if timeInForce == eventmodels.TimeInForceGTD && expireTime == nil {
		return nil, MissingExpireTimeErr
	}

	var priceCopy *float64
	if price != nil {
		v := *price
		priceCopy = &v
	}

	var expireCopy *time.Time
	if expireTime != nil {
		t := expireTime.UTC()
		expireCopy = &t
	}

	return &Order{
		id:          id,
		symbol:      symbol,
		label:       label,
		side:        side,
		orderType:   orderType,
		quantity:    quantity,
		timestamp:   timestamp.UTC(),
		price:       priceCopy,
		timeInForce: timeInForce,
		expireTime:  expireCopy,
	}, nil
}

func (o *Order) ID() eventmodels.OrderID {
	return o.id
}

func (o *Order) Symbol() eventmodels.Symbol {
	return o.symbol
}

func (o *Order) Label() string {
	return o.label
}

func (o *Order) Side() eventmodels.Side {
	return o.side
}

func (o *Order) OrderType() eventmodels.OrderType {
	return o.orderType
}

func (o *Order) Quantity() float64 {
	return o.quantity
}

func (o *Order) OrderTimestamp() time.Time {
	return o.timestamp
}

// Price returns a copy of the worked price, or nil for market orders.
func (o *Order) Price() *float64 {
	if o.price == nil {
		return nil
	}

	v := *o.price
	return &v
}

func (o *Order) TimeInForce() eventmodels.TimeInForce {
	return o.timeInForce
}

func (o *Order) ExpireTime() *time.Time {
	if o.expireTime == nil {
		return nil
	}

	t := *o.expireTime
	return &t
}

func (o *Order) String() string {
	if o.price == nil {
		return fmt.Sprintf("Order(%s, %s %v %s %v %s)", o.id, o.side, o.quantity, o.symbol, o.orderType, o.timeInForce)
	}

	return fmt.Sprintf("Order(%s, %s %v %s %v @ %v %s)", o.id, o.side, o.quantity, o.symbol, o.orderType, *o.price, o.timeInForce)
}
