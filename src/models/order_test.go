package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
	"github.com/quantfold/tradecore/src/identifiers"
)

func newTestFactory(t *testing.T) (*OrderFactory, *clock.Fixed) {
	t.Helper()

	clk := clock.NewFixed(time.Date(2006, 1, 2, 12, 30, 45, 0, time.UTC))

	idGenerator, err := identifiers.NewOrderIDGenerator("TESTER", "S1", clk, 0)
	assert.NoError(t, err)

	factory, err := NewOrderFactory(idGenerator, clk)
	assert.NoError(t, err)

	return factory, clk
}

func TestOrderFactory(t *testing.T) {
	t.Run("market order carries no price", func(t *testing.T) {
		factory, clk := newTestFactory(t)

		order, err := factory.Market("AUDUSD", "scalper-1", eventmodels.SideBuy, 100)
		assert.NoError(t, err)
		assert.Equal(t, eventmodels.OrderID("O-20060102-123045-TESTER-S1-1"), order.ID())
		assert.Equal(t, eventmodels.OrderTypeMarket, order.OrderType())
		assert.Nil(t, order.Price())
		assert.Equal(t, clk.Now(), order.OrderTimestamp())
	})

	t.Run("limit order requires a price", func(t *testing.T) {
		factory, _ := newTestFactory(t)

		order, err := factory.Limit("AUDUSD", "scalper-1", eventmodels.SideSell, 100, 0.8105, eventmodels.TimeInForceGTC, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0.8105, *order.Price())
		assert.Equal(t, eventmodels.TimeInForceGTC, order.TimeInForce())
	})

	t.Run("consecutive orders get distinct ids", func(t *testing.T) {
		factory, _ := newTestFactory(t)

		first, err := factory.Market("AUDUSD", "scalper-1", eventmodels.SideBuy, 100)
		assert.NoError(t, err)

		second, err := factory.Market("AUDUSD", "scalper-1", eventmodels.SideBuy, 100)
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestOrderValidation(t *testing.T) {
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC)
	price := 0.8005

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := NewOrder("O-1", "AUDUSD", "scalper-1", eventmodels.SideBuy, eventmodels.OrderTypeMarket, 0, nil, eventmodels.TimeInForceDay, nil, ts)
		assert.ErrorIs(t, err, NonPositiveQuantityErr)
	})

	t.Run("market order with price rejected", func(t *testing.T) {
		_, err := NewOrder("O-1", "AUDUSD", "scalper-1", eventmodels.SideBuy, eventmodels.OrderTypeMarket, 100, &price, eventmodels.TimeInForceDay, nil, ts)
		assert.ErrorIs(t, err, PriceNotAllowedErr)
	})

	t.Run("limit order without price rejected", func(t *testing.T) {
		_, err := NewOrder("O-1", "AUDUSD", "scalper-1", eventmodels.SideBuy, eventmodels.OrderTypeLimit, 100, nil, eventmodels.TimeInForceDay, nil, ts)
		assert.ErrorIs(t, err, PriceRequiredErr)
	})

	t.Run("GTD without expire time rejected", func(t *testing.T) {
		_, err := NewOrder("O-1", "AUDUSD", "scalper-1", eventmodels.SideBuy, eventmodels.OrderTypeLimit, 100, &price, eventmodels.TimeInForceGTD, nil, ts)
		assert.ErrorIs(t, err, MissingExpireTimeErr)
	})

	t.Run("price accessor returns a copy", func(t *testing.T) {
		order, err := NewOrder("O-1", "AUDUSD", "scalper-1", eventmodels.SideBuy, eventmodels.OrderTypeLimit, 100, &price, eventmodels.TimeInForceDay, nil, ts)
		assert.NoError(t, err)

		got := order.Price()
		*got = 99.0
		assert.Equal(t, 0.8005, *order.Price())
	})
}
