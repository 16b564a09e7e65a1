package portfolio

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/eventpubsub"
	"github.com/quantfold/tradecore/src/identifiers"
	"github.com/quantfold/tradecore/src/models"
)

// Portfolio is the single logical writer in front of the position reducers.
// It serializes fill application per position, mints position ids for first
// fills, and keeps at most one open position per symbol: a fill for a symbol
// with no open position starts a new position under a fresh id.
type Portfolio struct {
	mu sync.Mutex

	accountID    eventmodels.AccountID
	idGenerator  *identifiers.PositionIDGenerator
	positions    map[eventmodels.PositionID]*models.Position
	openBySymbol map[eventmodels.Symbol]eventmodels.PositionID
}

func NewPortfolio(accountID eventmodels.AccountID, idGenerator *identifiers.PositionIDGenerator) (*Portfolio, error) {
	if accountID == "" {
		return nil, models.AccountIDNotSetErr
	}

	if idGenerator == nil {
		return nil, models.GeneratorNotSetErr
	}

	return &Portfolio{
		accountID:    accountID,
		idGenerator:  idGenerator,
		positions:    make(map[eventmodels.PositionID]*models.Position),
		openBySymbol: make(map[eventmodels.Symbol]eventmodels.PositionID),
	}, nil
}

// OnFill routes one fill event to its position, creating the position when
// the symbol has no open exposure. Calls are serialized internally, so the
// reducers only ever see one writer.
func (pf *Portfolio) OnFill(ev eventmodels.OrderFillEvent) (*models.Position, error) {
	if ev == nil {
		return nil, models.NilEventErr
	}

	pf.mu.Lock()
	defer pf.mu.Unlock()

	positionID, found := pf.openBySymbol[ev.Symbol()]
	if !found {
		positionID = pf.idGenerator.GeneratePositionID()

		position, err := models.NewPosition(positionID, pf.accountID, ev.Symbol())
		if err != nil {
			return nil, fmt.Errorf("Portfolio.OnFill: %w", err)
		}

		pf.positions[positionID] = position
		pf.openBySymbol[ev.Symbol()] = positionID
	}

	position := pf.positions[positionID]
	wasNew := !found

	if err := position.Apply(ev); err != nil {
		if wasNew {
			// The first fill was rejected; do not leave an empty position
			// behind.
			delete(pf.positions, positionID)
			delete(pf.openBySymbol, ev.Symbol())
		}

		return nil, fmt.Errorf("Portfolio.OnFill: %w", err)
	}

	switch {
	case wasNew:
		log.WithFields(log.Fields{"positionId": positionID, "symbol": ev.Symbol()}).Info("position opened")
		eventpubsub.Publish(eventpubsub.PositionOpenedEvent, position)
	case position.IsClosed():
		delete(pf.openBySymbol, ev.Symbol())
		log.WithFields(log.Fields{"positionId": positionID, "symbol": ev.Symbol()}).Info("position closed")
		eventpubsub.Publish(eventpubsub.PositionClosedEvent, position)
	default:
		eventpubsub.Publish(eventpubsub.PositionModifiedEvent, position)
	}

	return position, nil
}

// HandleFill is the event-bus entry point; rejected fills are reported on
// the error topic and never applied.
func (pf *Portfolio) HandleFill(ev eventmodels.OrderFillEvent) {
	if _, err := pf.OnFill(ev); err != nil {
		eventpubsub.PublishError("Portfolio.HandleFill", err)
	}
}

// SubscribeFills wires the portfolio to the fill topic.
func (pf *Portfolio) SubscribeFills() error {
	return eventpubsub.Subscribe(eventpubsub.OrderFillEvent, pf.HandleFill)
}

// GetPosition returns the position for an id, open or closed.
func (pf *Portfolio) GetPosition(id eventmodels.PositionID) (*models.Position, bool) {
	pf.mu.Lock()
	defer pf.mu.Unlock()

	position, found := pf.positions[id]
	return position, found
}

// GetOpenPosition returns the open position for a symbol, if any.
func (pf *Portfolio) GetOpenPosition(symbol eventmodels.Symbol) (*models.Position, bool) {
	pf.mu.Lock()
	defer pf.mu.Unlock()

	id, found := pf.openBySymbol[symbol]
	if !found {
		return nil, false
	}

	return pf.positions[id], true
}

// GetPositions returns all tracked positions, open and closed.
func (pf *Portfolio) GetPositions() []*models.Position {
	pf.mu.Lock()
	defer pf.mu.Unlock()

	positions := make([]*models.Position, 0, len(pf.positions))
	for _, position := range pf.positions {
		positions = append(positions, position)
	}

	return positions
}

// OpenPositionCount returns the number of symbols with open exposure.
func (pf *Portfolio) OpenPositionCount() int {
	pf.mu.Lock()
	defer pf.mu.Unlock()

	return len(pf.openBySymbol)
}
