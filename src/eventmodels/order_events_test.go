package eventmodels

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventIdentityEquality(t *testing.T) {
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC)

	t.Run("structurally identical events with distinct ids are unequal", func(t *testing.T) {
		a, err := NewOrderSubmitted(uuid.New(), "AUDUSD", "O-1", ts, ts)
		assert.NoError(t, err)

		b, err := NewOrderSubmitted(uuid.New(), "AUDUSD", "O-1", ts, ts)
		assert.NoError(t, err)

		assert.False(t, Equal(a, b))
	})

	t.Run("events sharing an id are equal regardless of payload", func(t *testing.T) {
		id := uuid.MustParse("69359037-9599-48e7-b8f2-48393c019135")

		a, err := NewOrderSubmitted(id, "AUDUSD", "O-1", ts, ts)
		assert.NoError(t, err)

		b, err := NewOrderCancelled(id, "GBPUSD", "O-2", ts.Add(time.Hour), ts.Add(time.Hour))
		assert.NoError(t, err)

		assert.True(t, Equal(a, b))
	})

	t.Run("timestamps are normalized to UTC", func(t *testing.T) {
		local := time.FixedZone("UTC+8", 8*60*60)
		ev, err := NewOrderAccepted(uuid.New(), "AUDUSD", "O-1", ts, ts.In(local))
		assert.NoError(t, err)
		assert.Equal(t, time.UTC, ev.Timestamp().Location())
	})
}

func TestOrderEventValidation(t *testing.T) {
	id := uuid.MustParse("69359037-9599-48e7-b8f2-48393c019135")
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC)

	t.Run("nil event id rejected", func(t *testing.T) {
		_, err := NewOrderSubmitted(uuid.Nil, "AUDUSD", "O-1", ts, ts)
		assert.ErrorIs(t, err, NoEventIDErr)
	})

	t.Run("zero timestamp rejected", func(t *testing.T) {
		_, err := NewOrderSubmitted(id, "AUDUSD", "O-1", ts, time.Time{})
		assert.ErrorIs(t, err, NoTimestampErr)
	})

	t.Run("empty symbol rejected", func(t *testing.T) {
		_, err := NewOrderAccepted(id, "", "O-1", ts, ts)
		assert.ErrorIs(t, err, SymbolNotSetErr)
	})

	t.Run("empty order id rejected", func(t *testing.T) {
		_, err := NewOrderAccepted(id, "AUDUSD", "", ts, ts)
		assert.ErrorIs(t, err, OrderIDNotSetErr)
	})

	t.Run("empty rejected reason rejected", func(t *testing.T) {
		_, err := NewOrderRejected(id, "AUDUSD", "O-1", ts, "", ts)
		assert.ErrorIs(t, err, EmptyRejectedReasonErr)
	})

	t.Run("cancel reject requires response and reason", func(t *testing.T) {
		_, err := NewOrderCancelReject(id, "AUDUSD", "O-1", ts, "", "ORDER_NOT_FOUND", ts)
		assert.ErrorIs(t, err, EmptyCancelResponseErr)

		_, err = NewOrderCancelReject(id, "AUDUSD", "O-1", ts, "REJECTED", "", ts)
		assert.ErrorIs(t, err, EmptyCancelRejectReasonErr)
	})

	t.Run("modified price must be positive", func(t *testing.T) {
		_, err := NewOrderModified(id, "AUDUSD", "O-1", "B-1", 0, ts, ts)
		assert.ErrorIs(t, err, NonPositivePriceErr)
	})
}

func TestOrderWorkingValidation(t *testing.T) {
	id := uuid.MustParse("69359037-9599-48e7-b8f2-48393c019135")
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC)

	t.Run("GTD without expire time rejected before construction", func(t *testing.T) {
		_, err := NewOrderWorking(id, "AUDUSD", "O-1", "B-1", "scalper-1", SideBuy, OrderTypeLimit, 100, 0.8005, TimeInForceGTD, ts, nil, ts)
		assert.ErrorIs(t, err, MissingExpireTimeErr)
	})

	t.Run("GTD with expire time accepted", func(t *testing.T) {
		expire := ts.Add(24 * time.Hour)
		ev, err := NewOrderWorking(id, "AUDUSD", "O-1", "B-1", "scalper-1", SideBuy, OrderTypeLimit, 100, 0.8005, TimeInForceGTD, ts, &expire, ts)
		assert.NoError(t, err)
		assert.Equal(t, expire, *ev.ExpireTime())
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := NewOrderWorking(id, "AUDUSD", "O-1", "B-1", "scalper-1", SideBuy, OrderTypeLimit, 0, 0.8005, TimeInForceDay, ts, nil, ts)
		assert.ErrorIs(t, err, NonPositiveQuantityErr)
	})

	t.Run("expire time accessor returns a copy", func(t *testing.T) {
		expire := ts.Add(24 * time.Hour)
		ev, err := NewOrderWorking(id, "AUDUSD", "O-1", "B-1", "scalper-1", SideBuy, OrderTypeLimit, 100, 0.8005, TimeInForceGTD, ts, &expire, ts)
		assert.NoError(t, err)

		got := ev.ExpireTime()
		*got = got.Add(time.Hour)
		assert.Equal(t, expire, *ev.ExpireTime())
	})
}

func TestFillEventValidation(t *testing.T) {
	id := uuid.MustParse("69359037-9599-48e7-b8f2-48393c019135")
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC)

	t.Run("empty execution id rejected", func(t *testing.T) {
		_, err := NewOrderFilled(id, "AUDUSD", "O-1", "", "T-1", SideBuy, 100, 0.8005, ts, ts)
		assert.ErrorIs(t, err, ExecutionIDNotSetErr)
	})

	t.Run("non-positive filled quantity rejected", func(t *testing.T) {
		_, err := NewOrderFilled(id, "AUDUSD", "O-1", "E-1", "T-1", SideBuy, -5, 0.8005, ts, ts)
		assert.ErrorIs(t, err, NonPositiveQuantityErr)
	})

	t.Run("partial fill requires positive leaves quantity", func(t *testing.T) {
		_, err := NewOrderPartiallyFilled(id, "AUDUSD", "O-1", "E-1", "T-1", SideBuy, 60, 0, 0.8005, ts, ts)
		assert.ErrorIs(t, err, NonPositiveQuantityErr)
	})

	t.Run("valid partial fill constructs", func(t *testing.T) {
		ev, err := NewOrderPartiallyFilled(id, "AUDUSD", "O-1", "E-1", "T-1", SideBuy, 60, 40, 0.8005, ts, ts)
		assert.NoError(t, err)
		assert.Equal(t, 60.0, ev.FilledQuantity())
		assert.Equal(t, 40.0, ev.LeavesQuantity())
	})
}

func TestEventStrings(t *testing.T) {
	id := uuid.MustParse("69359037-9599-48e7-b8f2-48393c019135")
	ts := time.Date(2006, 1, 2, 12, 0, 0, 0, time.UTC)

	rejected, err := NewOrderRejected(id, "AUDUSD", "O-1", ts, "INSUFFICIENT_MARGIN", ts)
	assert.NoError(t, err)
	assert.Equal(t, "OrderRejected(O-1, AUDUSD, reason=INSUFFICIENT_MARGIN)", rejected.String())

	filled, err := NewOrderFilled(id, "AUDUSD", "O-1", "E-1", "T-1", SideSell, 100, 0.8005, ts, ts)
	assert.NoError(t, err)
	assert.Equal(t, "OrderFilled(O-1, sell 100 AUDUSD @ 0.8005)", filled.String())
}
