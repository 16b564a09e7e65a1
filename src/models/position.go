package models

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quantfold/tradecore/src/eventmodels"
)

// Position is the event-sourced aggregate for one instrument/account
// exposure. It folds fill events in execution-time order and derives net
// quantity, weighted-average open price and realized performance.
//
// Apply is atomic: a rejected event leaves every observable field exactly
// as it was. The caller must serialize Apply per position; the reducer
// itself never blocks and runs no background work.
type Position struct {
	id        eventmodels.PositionID
	idBroker  string
	accountID eventmodels.AccountID
	symbol    eventmodels.Symbol

	fromOrderID     eventmodels.OrderID
	lastOrderID     eventmodels.OrderID
	lastExecutionID eventmodels.ExecutionID
	entryDirection  eventmodels.Side
	openedTime      time.Time
	closedTime      *time.Time

	averageOpenPrice  float64
	averageClosePrice *float64
	realizedPoints    float64
	realizedReturn    float64

	lastEvent eventmodels.OrderFillEvent
	events    []eventmodels.OrderFillEvent

	orderIDs     []eventmodels.OrderID
	orderSeen    map[eventmodels.OrderID]struct{}
	executionIDs []eventmodels.ExecutionID
	execSeen     map[eventmodels.ExecutionID]struct{}

	filledBuys       float64
	filledSells      float64
	relativeQuantity float64
	quantity         float64
	peakQuantity     float64
	marketPosition   eventmodels.MarketPosition

	// closing-cycle accumulator backing the average close price. Reset when
	// a new open cycle begins (reopen from flat or flip).
	closedCycleQuantity float64
}

// NewPosition creates an empty FLAT position. The caller creates one the
// moment the first fill for a not-yet-tracked position arrives and applies
// that fill immediately.
func NewPosition(id eventmodels.PositionID, accountID eventmodels.AccountID, symbol eventmodels.Symbol) (*Position, error) {
	if id == "" {
		return nil, PositionIDNotSetErr
	}

	if accountID == "" {
		return nil, AccountIDNotSetErr
	}

	if symbol == "" {
		return nil, SymbolNotSetErr
	}

	return &Position{
		id:             id,
		accountID:      accountID,
		symbol:         symbol,
		orderSeen:      make(map[eventmodels.OrderID]struct{}),
		execSeen:       make(map[eventmodels.ExecutionID]struct{}),
		marketPosition: eventmodels.MarketPositionFlat,
	}, nil
}

// SetBrokerID records the broker-side position identifier, when the broker
// assigns one.
func (p *Position) SetBrokerID(idBroker string) {
	p.idBroker = idBroker
}

// Apply folds one fill event into the position. It fails fast on duplicate
// execution ids and mismatched symbols without mutating any state.
func (p *Position) Apply(ev eventmodels.OrderFillEvent) error {
	if ev == nil {
		return NilEventErr
	}

	if ev.Symbol() != p.symbol {
		return fmt.Errorf("found %v, expected %v: %w", ev.Symbol(), p.symbol, SymbolMismatchErr)
	}

	if ev.Side() != eventmodels.SideBuy && ev.Side() != eventmodels.SideSell {
		return UnknownSideErr
	}

	if _, found := p.execSeen[ev.ExecutionID()]; found {
		return fmt.Errorf("found %v: %w", ev.ExecutionID(), DuplicateExecutionErr)
	}

	// Past this point the event is accepted; every update below commits.
	p.events = append(p.events, ev)
	p.lastEvent = ev
	p.lastOrderID = ev.OrderID()
	p.lastExecutionID = ev.ExecutionID()

	if _, found := p.orderSeen[ev.OrderID()]; !found {
		p.orderSeen[ev.OrderID()] = struct{}{}
		p.orderIDs = append(p.orderIDs, ev.OrderID())
	}

	p.execSeen[ev.ExecutionID()] = struct{}{}
	p.executionIDs = append(p.executionIDs, ev.ExecutionID())

	if p.fromOrderID == "" {
		p.fromOrderID = ev.OrderID()
	}

	quantity := ev.FilledQuantity()
	price := ev.AveragePrice()
	priorRelative := p.relativeQuantity

	switch ev.Side() {
	case eventmodels.SideBuy:
		p.filledBuys += quantity
	case eventmodels.SideSell:
		p.filledSells += quantity
	}

	switch {
	case priorRelative == 0:
		// Opening from flat, either the first fill ever or a re-entry after
		// a full close on the same position id.
		p.entryDirection = ev.Side()
		p.averageOpenPrice = price
		p.averageClosePrice = nil
		p.closedCycleQuantity = 0
		p.closedTime = nil

		if p.openedTime.IsZero() {
			p.openedTime = ev.ExecutionTime()
		}

	case p.sameSideAsPosition(ev.Side()):
		// Increasing exposure: quantity-weighted average of the prior open
		// quantity/price and this fill.
		openQuantity := math.Abs(priorRelative)
		p.averageOpenPrice = (p.averageOpenPrice*openQuantity + price*quantity) / (openQuantity + quantity)

	default:
		p.applyClosingFill(priorRelative, quantity, price)
	}

	p.relativeQuantity = p.filledBuys - p.filledSells
	p.quantity = math.Abs(p.relativeQuantity)
	if p.quantity > p.peakQuantity {
		p.peakQuantity = p.quantity
	}

	switch {
	case p.relativeQuantity > 0:
		p.marketPosition = eventmodels.MarketPositionLong
	case p.relativeQuantity < 0:
		p.marketPosition = eventmodels.MarketPositionShort
	default:
		p.marketPosition = eventmodels.MarketPositionFlat
		closed := ev.ExecutionTime()
		p.closedTime = &closed
	}

	return nil
}

// applyClosingFill handles a fill on the opposite side of the current
// exposure: realize P&L over the closing quantity and, when the fill more
// than offsets the open quantity, flip the remainder to the other side.
func (p *Position) applyClosingFill(priorRelative, quantity, price float64) {
	openQuantity := math.Abs(priorRelative)
	closingQuantity := math.Min(quantity, openQuantity)

	direction := 1.0
	if priorRelative < 0 {
		direction = -1.0
	}

	points := direction * (price - p.averageOpenPrice)
	p.realizedPoints += points
	if p.averageOpenPrice != 0 {
		p.realizedReturn += points / p.averageOpenPrice
	}

	if p.averageClosePrice == nil {
		avg := price
		p.averageClosePrice = &avg
		p.closedCycleQuantity = closingQuantity
	} else {
		total := p.closedCycleQuantity + closingQuantity
		avg := (*p.averageClosePrice*p.closedCycleQuantity + price*closingQuantity) / total
		p.averageClosePrice = &avg
		p.closedCycleQuantity = total
	}

	if quantity > openQuantity {
		// Flip: the remainder opens fresh exposure on the opposite side.
		// The position id and opened time carry over.
		p.averageOpenPrice = price
		p.averageClosePrice = nil
		p.closedCycleQuantity = 0
		if p.entryDirection == eventmodels.SideBuy {
			p.entryDirection = eventmodels.SideSell
		} else {
			p.entryDirection = eventmodels.SideBuy
		}
	}
}

func (p *Position) sameSideAsPosition(side eventmodels.Side) bool {
	if p.relativeQuantity > 0 {
		return side == eventmodels.SideBuy
	}

	if p.relativeQuantity < 0 {
		return side == eventmodels.SideSell
	}

	return true
}

// UnrealizedPoints returns the signed favorable price delta against the
// average open price. A flat position returns zero.
func (p *Position) UnrealizedPoints(currentPrice float64) float64 {
	switch p.marketPosition {
	case eventmodels.MarketPositionLong:
		return currentPrice - p.averageOpenPrice
	case eventmodels.MarketPositionShort:
		return p.averageOpenPrice - currentPrice
	default:
		return 0
	}
}

// UnrealizedReturn returns the unrealized points as a fraction of the
// average open price. A flat position returns zero.
func (p *Position) UnrealizedReturn(currentPrice float64) float64 {
	if p.marketPosition == eventmodels.MarketPositionFlat || p.averageOpenPrice == 0 {
		return 0
	}

	return p.UnrealizedPoints(currentPrice) / p.averageOpenPrice
}

func (p *Position) ID() eventmodels.PositionID {
	return p.id
}

func (p *Position) BrokerID() string {
	return p.idBroker
}

func (p *Position) AccountID() eventmodels.AccountID {
	return p.accountID
}

func (p *Position) Symbol() eventmodels.Symbol {
	return p.symbol
}

func (p *Position) FromOrderID() eventmodels.OrderID {
	return p.fromOrderID
}

func (p *Position) LastOrderID() eventmodels.OrderID {
	return p.lastOrderID
}

func (p *Position) LastExecutionID() eventmodels.ExecutionID {
	return p.lastExecutionID
}

func (p *Position) EntryDirection() eventmodels.Side {
	return p.entryDirection
}

func (p *Position) OpenedTime() time.Time {
	return p.openedTime
}

// ClosedTime returns the close instant, or nil while the position is open.
func (p *Position) ClosedTime() *time.Time {
	if p.closedTime == nil {
		return nil
	}

	t := *p.closedTime
	return &t
}

func (p *Position) AverageOpenPrice() float64 {
	return p.averageOpenPrice
}

// AverageClosePrice returns the quantity-weighted average price of the
// closing fills of the current open cycle, or nil when nothing has closed.
func (p *Position) AverageClosePrice() *float64 {
	if p.averageClosePrice == nil {
		return nil
	}

	avg := *p.averageClosePrice
	return &avg
}

func (p *Position) RealizedPoints() float64 {
	return p.realizedPoints
}

func (p *Position) RealizedReturn() float64 {
	return p.realizedReturn
}

func (p *Position) LastEvent() eventmodels.OrderFillEvent {
	return p.lastEvent
}

func (p *Position) EventCount() int {
	return len(p.events)
}

func (p *Position) RelativeQuantity() float64 {
	return p.relativeQuantity
}

func (p *Position) Quantity() float64 {
	return p.quantity
}

func (p *Position) PeakQuantity() float64 {
	return p.peakQuantity
}

func (p *Position) MarketPosition() eventmodels.MarketPosition {
	return p.marketPosition
}

func (p *Position) IsOpen() bool {
	return p.relativeQuantity != 0
}

func (p *Position) IsClosed() bool {
	return p.relativeQuantity == 0
}

func (p *Position) IsLong() bool {
	return p.relativeQuantity > 0
}

func (p *Position) IsShort() bool {
	return p.relativeQuantity < 0
}

// GetOrderIDs returns the contributing order ids in order of first
// appearance. The returned slice is a copy.
func (p *Position) GetOrderIDs() []eventmodels.OrderID {
	ids := make([]eventmodels.OrderID, len(p.orderIDs))
	copy(ids, p.orderIDs)
	return ids
}

// GetExecutionIDs returns the applied execution ids in application order.
// The returned slice is a copy.
func (p *Position) GetExecutionIDs() []eventmodels.ExecutionID {
	ids := make([]eventmodels.ExecutionID, len(p.executionIDs))
	copy(ids, p.executionIDs)
	return ids
}

// GetEvents returns the full applied-event history. The returned slice is a
// copy; the events themselves are immutable.
func (p *Position) GetEvents() []eventmodels.OrderFillEvent {
	events := make([]eventmodels.OrderFillEvent, len(p.events))
	copy(events, p.events)
	return events
}

// Equal implements identity equality by position id, mirroring the event
// contract.
func (p *Position) Equal(other *Position) bool {
	if other == nil {
		return false
	}

	return p.id == other.id
}

// StatusString renders a one-line human-readable summary.
func (p *Position) StatusString() string {
	if p.marketPosition == eventmodels.MarketPositionFlat {
		return fmt.Sprintf("%s FLAT", p.symbol)
	}

	pr := message.NewPrinter(language.English)
	return pr.Sprintf("%s %s %v @ %v", p.symbol, p.marketPosition, p.quantity, p.averageOpenPrice)
}

func (p *Position) String() string {
	return fmt.Sprintf("Position(%s, %s)", p.id, p.StatusString())
}
