package portfolio

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/eventpubsub"
	"github.com/quantfold/tradecore/src/identifiers"
)

var fillSequence int

func newFill(t *testing.T, symbol eventmodels.Symbol, side eventmodels.Side, quantity, price float64) eventmodels.OrderFillEvent {
	t.Helper()

	fillSequence += 1
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC).Add(time.Duration(fillSequence) * time.Second)

	ev, err := eventmodels.NewOrderFilled(
		uuid.New(),
		symbol,
		eventmodels.OrderID(fmt.Sprintf("O-%d", fillSequence)),
		eventmodels.ExecutionID(fmt.Sprintf("E-%d", fillSequence)),
		fmt.Sprintf("T-%d", fillSequence),
		side,
		quantity,
		price,
		ts,
		ts,
	)
	assert.NoError(t, err)

	return ev
}

func newTestPortfolio(t *testing.T) *Portfolio {
	t.Helper()

	eventpubsub.Init()

	clk := clock.NewFixed(time.Date(2006, 1, 2, 12, 30, 45, 0, time.UTC))
	idGenerator, err := identifiers.NewPositionIDGenerator("TESTER", "S1", clk, 0)
	assert.NoError(t, err)

	pf, err := NewPortfolio("SIM-001", idGenerator)
	assert.NoError(t, err)

	return pf
}

func TestPortfolioRouting(t *testing.T) {
	t.Run("first fill creates a position", func(t *testing.T) {
		pf := newTestPortfolio(t)

		position, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideBuy, 100, 0.8005))
		assert.NoError(t, err)
		assert.Equal(t, eventmodels.AccountID("SIM-001"), position.AccountID())
		assert.Equal(t, 1, pf.OpenPositionCount())

		got, found := pf.GetOpenPosition("AUDUSD")
		assert.True(t, found)
		assert.True(t, position.Equal(got))
	})

	t.Run("fills for the same symbol attach to the open position", func(t *testing.T) {
		pf := newTestPortfolio(t)

		first, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideBuy, 100, 0.8005))
		assert.NoError(t, err)

		second, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideBuy, 50, 0.8010))
		assert.NoError(t, err)

		assert.True(t, first.Equal(second))
		assert.Equal(t, 150.0, second.Quantity())
		assert.Equal(t, 1, pf.OpenPositionCount())
	})

	t.Run("different symbols get different positions", func(t *testing.T) {
		pf := newTestPortfolio(t)

		aud, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideBuy, 100, 0.8005))
		assert.NoError(t, err)

		gbp, err := pf.OnFill(newFill(t, "GBPUSD", eventmodels.SideSell, 50, 1.2500))
		assert.NoError(t, err)

		assert.False(t, aud.Equal(gbp))
		assert.Equal(t, 2, pf.OpenPositionCount())
	})

	t.Run("re-entry after a full close mints a new position id", func(t *testing.T) {
		pf := newTestPortfolio(t)

		first, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideBuy, 100, 0.8005))
		assert.NoError(t, err)

		closed, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideSell, 100, 0.8105))
		assert.NoError(t, err)
		assert.True(t, closed.IsClosed())
		assert.Equal(t, 0, pf.OpenPositionCount())

		reentry, err := pf.OnFill(newFill(t, "AUDUSD", eventmodels.SideBuy, 25, 0.8110))
		assert.NoError(t, err)
		assert.False(t, first.Equal(reentry))
		assert.Equal(t, 1, pf.OpenPositionCount())

		// the closed position stays available for reporting
		got, found := pf.GetPosition(first.ID())
		assert.True(t, found)
		assert.True(t, got.IsClosed())
	})

	t.Run("duplicate execution id is rejected and reported", func(t *testing.T) {
		pf := newTestPortfolio(t)

		fill := newFill(t, "AUDUSD", eventmodels.SideBuy, 100, 0.8005)
		_, err := pf.OnFill(fill)
		assert.NoError(t, err)

		_, err = pf.OnFill(fill)
		assert.Error(t, err)

		position, found := pf.GetOpenPosition("AUDUSD")
		assert.True(t, found)
		assert.Equal(t, 1, position.EventCount())
	})

	t.Run("nil fill rejected", func(t *testing.T) {
		pf := newTestPortfolio(t)

		_, err := pf.OnFill(nil)
		assert.Error(t, err)
		assert.Equal(t, 0, pf.OpenPositionCount())
	})
}
