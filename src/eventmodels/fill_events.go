package eventmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderFillEvent is the execution-report contract consumed by the position
// reducer. OrderFilled and OrderPartiallyFilled implement it.
type OrderFillEvent interface {
	OrderEvent
	ExecutionID() ExecutionID
	ExecutionTicket() string
	Side() Side
	FilledQuantity() float64
	AveragePrice() float64
	ExecutionTime() time.Time
}

type baseFillEvent struct {
	BaseOrderEvent
	executionID     ExecutionID
	executionTicket string
	side            Side
	filledQuantity  float64
	averagePrice    float64
	executionTime   time.Time
}

func newBaseFillEvent(id uuid.UUID, symbol Symbol, orderID OrderID, executionID ExecutionID, executionTicket string, side Side, filledQuantity, averagePrice float64, executionTime, timestamp time.Time) (baseFillEvent, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return baseFillEvent{}, err
	}

	if executionID == "" {
		return baseFillEvent{}, ExecutionIDNotSetErr
	}

	if executionTicket == "" {
		return baseFillEvent{}, ExecutionTicketNotSetErr
	}

	if side != SideBuy && side != SideSell {
		return baseFillEvent{}, UnknownSideErr
	}

	if filledQuantity <= 0 {
		return baseFillEvent{}, fmt.Errorf("found %v: %w", filledQuantity, NonPositiveQuantityErr)
	}

	if averagePrice <= 0 {
		return baseFillEvent{}, fmt.Errorf("found %v: %w", averagePrice, NonPositivePriceErr)
	}

	return baseFillEvent{
		BaseOrderEvent:  base,
		executionID:     executionID,
		executionTicket: executionTicket,
		side:            side,
		filledQuantity:  filledQuantity,
		averagePrice:    averagePrice,
		executionTime:   executionTime.UTC(),
	}, nil
}

func (e *baseFillEvent) ExecutionID() ExecutionID {
	return e.executionID
}

func (e *baseFillEvent) ExecutionTicket() string {
	return e.executionTicket
}

func (e *baseFillEvent) Side() Side {
	return e.side
}

func (e *baseFillEvent) FilledQuantity() float64 {
	return e.filledQuantity
}

func (e *baseFillEvent) AveragePrice() float64 {
	return e.averagePrice
}

func (e *baseFillEvent) ExecutionTime() time.Time {
	return e.executionTime
}

// OrderFilled records a complete execution of the order's remaining quantity.
type OrderFilled struct {
	baseFillEvent
}

func NewOrderFilled(id uuid.UUID, symbol Symbol, orderID OrderID, executionID ExecutionID, executionTicket string, side Side, filledQuantity, averagePrice float64, executionTime, timestamp time.Time) (*OrderFilled, error) {
	base, err := newBaseFillEvent(id, symbol, orderID, executionID, executionTicket, side, filledQuantity, averagePrice, executionTime, timestamp)
	if err != nil {
		return nil, err
	}

	return &OrderFilled{baseFillEvent: base}, nil
}

func (e *OrderFilled) String() string {
	return fmt.Sprintf("OrderFilled(%s, %s %v %s @ %v)", e.orderID, e.side, e.filledQuantity, e.symbol, e.averagePrice)
}

// OrderPartiallyFilled records a partial execution with quantity still
// working at the broker.
type OrderPartiallyFilled struct {
	baseFillEvent
	leavesQuantity float64
}

func NewOrderPartiallyFilled(id uuid.UUID, symbol Symbol, orderID OrderID, executionID ExecutionID, executionTicket string, side Side, filledQuantity, leavesQuantity, averagePrice float64, executionTime, timestamp time.Time) (*OrderPartiallyFilled, error) {
	base, err := newBaseFillEvent(id, symbol, orderID, executionID, executionTicket, side, filledQuantity, averagePrice, executionTime, timestamp)
	if err != nil {
		return nil, err
	}

	if leavesQuantity <= 0 {
		return nil, fmt.Errorf("found %v: %w", leavesQuantity, NonPositiveQuantityErr)
	}

	return &OrderPartiallyFilled{baseFillEvent: base, leavesQuantity: leavesQuantity}, nil
}

func (e *OrderPartiallyFilled) LeavesQuantity() float64 {
	return e.leavesQuantity
}

func (e *OrderPartiallyFilled) String() string {
	return fmt.Sprintf("OrderPartiallyFilled(%s, %s %v %s @ %v, leaves %v)", e.orderID, e.side, e.filledQuantity, e.symbol, e.averagePrice, e.leavesQuantity)
}
