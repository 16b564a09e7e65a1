package eventservices

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/models"
)

var fillSequence int

func applyFill(t *testing.T, p *models.Position, side eventmodels.Side, quantity, price float64) {
	t.Helper()

	fillSequence += 1
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC).Add(time.Duration(fillSequence) * time.Second)

	ev, err := eventmodels.NewOrderFilled(
		uuid.New(),
		p.Symbol(),
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
	assert.NoError(t, p.Apply(ev))
}

func TestPerformanceSummary(t *testing.T) {
	t.Run("empty portfolio yields a zero summary", func(t *testing.T) {
		summary, err := NewPerformanceSummary(nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.PositionCount)
		assert.Equal(t, 0.0, summary.WinRate)
	})

	t.Run("mixed wins and losses", func(t *testing.T) {
		winner, err := models.NewPosition("P-1", "SIM-001", "AUDUSD")
		assert.NoError(t, err)
		applyFill(t, winner, eventmodels.SideBuy, 100, 10.0)
		applyFill(t, winner, eventmodels.SideSell, 100, 12.0)

		loser, err := models.NewPosition("P-2", "SIM-001", "GBPUSD")
		assert.NoError(t, err)
		applyFill(t, loser, eventmodels.SideSell, 50, 10.0)
		applyFill(t, loser, eventmodels.SideBuy, 50, 11.0)

		open, err := models.NewPosition("P-3", "SIM-001", "EURUSD")
		assert.NoError(t, err)
		applyFill(t, open, eventmodels.SideBuy, 100, 1.10)

		summary, err := NewPerformanceSummary([]*models.Position{winner, loser, open})
		assert.NoError(t, err)

		assert.Equal(t, 3, summary.PositionCount)
		assert.Equal(t, 1, summary.OpenCount)
		assert.Equal(t, 2, summary.ClosedCount)
		assert.Equal(t, 0.5, summary.WinRate)

		// winner: +2 points, loser: -1 point
		assert.InDelta(t, 1.0, summary.TotalPoints, 1e-9)

		// returns: +0.2 and -0.1
		assert.InDelta(t, 0.05, summary.MeanReturn, 1e-9)
		assert.InDelta(t, -0.1, summary.MinReturn, 1e-9)
		assert.InDelta(t, 0.2, summary.MaxReturn, 1e-9)
		assert.InDelta(t, 0.05, summary.MedianReturn, 1e-9)
	})
}
