package eventmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderEvent is implemented by every event in the order lifecycle.
type OrderEvent interface {
	Event
	Symbol() Symbol
	OrderID() OrderID
}

// BaseOrderEvent adds the order coordinates shared by all order events.
type BaseOrderEvent struct {
	BaseEvent
	symbol  Symbol
	orderID OrderID
}

func newBaseOrderEvent(id uuid.UUID, symbol Symbol, orderID OrderID, timestamp time.Time) (BaseOrderEvent, error) {
	base, err := newBaseEvent(id, timestamp)
	if err != nil {
		return BaseOrderEvent{}, err
	}

	if symbol == "" {
		return BaseOrderEvent{}, SymbolNotSetErr
	}

	if orderID == "" {
		return BaseOrderEvent{}, OrderIDNotSetErr
	}

	return BaseOrderEvent{BaseEvent: base, symbol: symbol, orderID: orderID}, nil
}

func (e BaseOrderEvent) Symbol() Symbol {
	return e.symbol
}

func (e BaseOrderEvent) OrderID() OrderID {
	return e.orderID
}

// OrderSubmitted records that an order left the platform for the broker.
type OrderSubmitted struct {
	BaseOrderEvent
	submittedTime time.Time
}

func NewOrderSubmitted(id uuid.UUID, symbol Symbol, orderID OrderID, submittedTime, timestamp time.Time) (*OrderSubmitted, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	return &OrderSubmitted{BaseOrderEvent: base, submittedTime: submittedTime.UTC()}, nil
}

func (e *OrderSubmitted) SubmittedTime() time.Time {
	return e.submittedTime
}

func (e *OrderSubmitted) String() string {
	return fmt.Sprintf("OrderSubmitted(%s, %s)", e.orderID, e.symbol)
}

// OrderAccepted records broker acknowledgement of a submitted order.
type OrderAccepted struct {
	BaseOrderEvent
	acceptedTime time.Time
}

func NewOrderAccepted(id uuid.UUID, symbol Symbol, orderID OrderID, acceptedTime, timestamp time.Time) (*OrderAccepted, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	return &OrderAccepted{BaseOrderEvent: base, acceptedTime: acceptedTime.UTC()}, nil
}

func (e *OrderAccepted) AcceptedTime() time.Time {
	return e.acceptedTime
}

func (e *OrderAccepted) String() string {
	return fmt.Sprintf("OrderAccepted(%s, %s)", e.orderID, e.symbol)
}

// OrderRejected records a broker rejection together with its reason.
type OrderRejected struct {
	BaseOrderEvent
	rejectedTime   time.Time
	rejectedReason string
}

func NewOrderRejected(id uuid.UUID, symbol Symbol, orderID OrderID, rejectedTime time.Time, rejectedReason string, timestamp time.Time) (*OrderRejected, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	if rejectedReason == "" {
		return nil, EmptyRejectedReasonErr
	}

	return &OrderRejected{BaseOrderEvent: base, rejectedTime: rejectedTime.UTC(), rejectedReason: rejectedReason}, nil
}

func (e *OrderRejected) RejectedTime() time.Time {
	return e.rejectedTime
}

func (e *OrderRejected) RejectedReason() string {
	return e.rejectedReason
}

func (e *OrderRejected) String() string {
	return fmt.Sprintf("OrderRejected(%s, %s, reason=%s)", e.orderID, e.symbol, e.rejectedReason)
}

// OrderWorking records that the broker is working the order in the market.
type OrderWorking struct {
	BaseOrderEvent
	brokerOrderID string
	label         string
	side          Side
	orderType     OrderType
	quantity      float64
	price         float64
	timeInForce   TimeInForce
	workingTime   time.Time
	expireTime    *time.Time
}

func NewOrderWorking(id uuid.UUID, symbol Symbol, orderID OrderID, brokerOrderID, label string, side Side, orderType OrderType, quantity, price float64, timeInForce TimeInForce, workingTime time.Time, expireTime *time.Time, timestamp time.Time) (*OrderWorking, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	if brokerOrderID == "" {
		return nil, BrokerOrderIDNotSetErr
	}

	if side != SideBuy && side != SideSell {
		return nil, UnknownSideErr
	}

	if quantity <= 0 {
		return nil, fmt.Errorf("found %v: %w", quantity, NonPositiveQuantityErr)
	}

	if price <= 0 {
		return nil, fmt.Errorf("found %v: %w", price, NonPositivePriceErr)
	}

	if timeInForce == TimeInForceGTD && expireTime == nil {
		return nil, MissingExpireTimeErr
	}

	var expire *time.Time
	if expireTime != nil {
		t := expireTime.UTC()
		expire = &t
	}

	return &OrderWorking{
		BaseOrderEvent: base,
		brokerOrderID:  brokerOrderID,
		label:          label,
		side:           side,
		orderType:      orderType,
		quantity:       quantity,
		price:          price,
		timeInForce:    timeInForce,
		workingTime:    workingTime.UTC(),
		expireTime:     expire,
	}, nil
}

func (e *OrderWorking) BrokerOrderID() string {
	return e.brokerOrderID
}

func (e *OrderWorking) Label() string {
	return e.label
}

func (e *OrderWorking) Side() Side {
	return e.side
}

func (e *OrderWorking) OrderType() OrderType {
	return e.orderType
}

func (e *OrderWorking) Quantity() float64 {
	return e.quantity
}

func (e *OrderWorking) Price() float64 {
	return e.price
}

func (e *OrderWorking) TimeInForce() TimeInForce {
	return e.timeInForce
}

func (e *OrderWorking) WorkingTime() time.Time {
	return e.workingTime
}

// ExpireTime returns a copy of the expire time, or nil when the order does
// not expire.
func (e *OrderWorking) ExpireTime() *time.Time {
	if e.expireTime == nil {
		return nil
	}

	t := *e.expireTime
	return &t
}

func (e *OrderWorking) String() string {
	return fmt.Sprintf("OrderWorking(%s, %s %v %s %v @ %v %s)", e.orderID, e.side, e.quantity, e.symbol, e.orderType, e.price, e.timeInForce)
}

// OrderCancelled records a confirmed cancellation.
type OrderCancelled struct {
	BaseOrderEvent
	cancelledTime time.Time
}

func NewOrderCancelled(id uuid.UUID, symbol Symbol, orderID OrderID, cancelledTime, timestamp time.Time) (*OrderCancelled, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	return &OrderCancelled{BaseOrderEvent: base, cancelledTime: cancelledTime.UTC()}, nil
}

func (e *OrderCancelled) CancelledTime() time.Time {
	return e.cancelledTime
}

func (e *OrderCancelled) String() string {
	return fmt.Sprintf("OrderCancelled(%s, %s)", e.orderID, e.symbol)
}

// OrderCancelReject records the broker refusing a cancel request.
type OrderCancelReject struct {
	BaseOrderEvent
	cancelRejectTime   time.Time
	cancelResponse     string
	cancelRejectReason string
}

func NewOrderCancelReject(id uuid.UUID, symbol Symbol, orderID OrderID, cancelRejectTime time.Time, cancelResponse, cancelRejectReason string, timestamp time.Time) (*OrderCancelReject, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	if cancelResponse == "" {
		return nil, EmptyCancelResponseErr
	}

	if cancelRejectReason == "" {
		return nil, EmptyCancelRejectReasonErr
	}

	return &OrderCancelReject{
		BaseOrderEvent:     base,
		cancelRejectTime:   cancelRejectTime.UTC(),
		cancelResponse:     cancelResponse,
		cancelRejectReason: cancelRejectReason,
	}, nil
}

func (e *OrderCancelReject) CancelRejectTime() time.Time {
	return e.cancelRejectTime
}

func (e *OrderCancelReject) CancelResponse() string {
	return e.cancelResponse
}

func (e *OrderCancelReject) CancelRejectReason() string {
	return e.cancelRejectReason
}

func (e *OrderCancelReject) String() string {
	return fmt.Sprintf("OrderCancelReject(%s, %s, response=%s, reason=%s)", e.orderID, e.symbol, e.cancelResponse, e.cancelRejectReason)
}

// OrderExpired records an order lapsing at the broker.
type OrderExpired struct {
	BaseOrderEvent
	expiredTime time.Time
}

func NewOrderExpired(id uuid.UUID, symbol Symbol, orderID OrderID, expiredTime, timestamp time.Time) (*OrderExpired, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	return &OrderExpired{BaseOrderEvent: base, expiredTime: expiredTime.UTC()}, nil
}

func (e *OrderExpired) ExpiredTime() time.Time {
	return e.expiredTime
}

func (e *OrderExpired) String() string {
	return fmt.Sprintf("OrderExpired(%s, %s)", e.orderID, e.symbol)
}

// OrderModified records an accepted in-flight price modification.
type OrderModified struct {
	BaseOrderEvent
	brokerOrderID string
	modifiedPrice float64
	modifiedTime  time.Time
}

func NewOrderModified(id uuid.UUID, symbol Symbol, orderID OrderID, brokerOrderID string, modifiedPrice float64, modifiedTime, timestamp time.Time) (*OrderModified, error) {
	base, err := newBaseOrderEvent(id, symbol, orderID, timestamp)
	if err != nil {
		return nil, err
	}

	if brokerOrderID == "" {
		return nil, BrokerOrderIDNotSetErr
	}

	if modifiedPrice <= 0 {
		return nil, fmt.Errorf("found %v: %w", modifiedPrice, NonPositivePriceErr)
	}

	return &OrderModified{
		BaseOrderEvent: base,
		brokerOrderID:  brokerOrderID,
		modifiedPrice:  modifiedPrice,
		modifiedTime:   modifiedTime.UTC(),
	}, nil
}

func (e *OrderModified) BrokerOrderID() string {
	return e.brokerOrderID
}

func (e *OrderModified) ModifiedPrice() float64 {
	return e.modifiedPrice
}

func (e *OrderModified) ModifiedTime() time.Time {
	return e.modifiedTime
}

func (e *OrderModified) String() string {
	return fmt.Sprintf("OrderModified(%s, %s, price=%v)", e.orderID, e.symbol, e.modifiedPrice)
}
