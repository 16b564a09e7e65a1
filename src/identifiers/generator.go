package identifiers

import (
	"fmt"

	"github.com/quantfold/tradecore/src/clock"
	"github.com/quantfold/tradecore/src/eventmodels"
)

// timeTagLayout renders the clock instant as the 8-digit date and 6-digit
// time segments of every generated identifier.
const timeTagLayout = "20060102-150405"

// Generator produces identifier strings of the form
// {prefix}-{YYYYMMDD-HHMMSS}-{traderTag}-{strategyTag}-{counter}.
//
// The counter strictly increases per instance, so a single generator used
// from one goroutine never repeats an identifier. The time tag is read from
// the injected clock on every call, never cached. There is no cross-instance
// guarantee: concurrently running generators must be given disjoint
// trader/strategy tags.
type Generator struct {
	prefix      string
	traderTag   string
	strategyTag string
	clock       clock.Clock
	count       int
}

func NewGenerator(prefix, traderTag, strategyTag string, clk clock.Clock, initialCount int) (*Generator, error) {
	if prefix == "" {
		return nil, PrefixNotSetErr
	}

	if traderTag == "" {
		return nil, TraderTagNotSetErr
	}

	if strategyTag == "" {
		return nil, StrategyTagNotSetErr
	}

	if clk == nil {
		return nil, ClockNotSetErr
	}

	if initialCount < 0 {
		return nil, fmt.Errorf("found %v: %w", initialCount, NegativeCountErr)
	}

	return &Generator{
		prefix:      prefix,
		traderTag:   traderTag,
		strategyTag: strategyTag,
		clock:       clk,
		count:       initialCount,
	}, nil
}

// Generate increments the counter and returns the next identifier string.
func (g *Generator) Generate() string {
	g.count += 1
	timeTag := g.clock.Now().UTC().Format(timeTagLayout)

	return fmt.Sprintf("%s-%s-%s-%s-%d", g.prefix, timeTag, g.traderTag, g.strategyTag, g.count)
}

// Count returns the current counter value.
func (g *Generator) Count() int {
	return g.count
}

// SetCount overwrites the counter, used to resynchronize after a restart
// from persisted state.
func (g *Generator) SetCount(count int) error {
	if count < 0 {
		return fmt.Errorf("found %v: %w", count, NegativeCountErr)
	}

	g.count = count
	return nil
}

// Reset sets the counter back to zero; the next Generate yields counter 1.
func (g *Generator) Reset() {
	g.count = 0
}

const (
	orderIDPrefix    = "O"
	positionIDPrefix = "P"
)

// OrderIDGenerator mints order identifiers with the fixed "O" prefix.
type OrderIDGenerator struct {
	*Generator
}

func NewOrderIDGenerator(traderTag, strategyTag string, clk clock.Clock, initialCount int) (*OrderIDGenerator, error) {
	gen, err := NewGenerator(orderIDPrefix, traderTag, strategyTag, clk, initialCount)
	if err != nil {
		return nil, err
	}

	return &OrderIDGenerator{Generator: gen}, nil
}

func (g *OrderIDGenerator) GenerateOrderID() eventmodels.OrderID {
	return eventmodels.OrderID(g.Generate())
}

// PositionIDGenerator mints position identifiers with the fixed "P" prefix.
type PositionIDGenerator struct {
	*Generator
}

func NewPositionIDGenerator(traderTag, strategyTag string, clk clock.Clock, initialCount int) (*PositionIDGenerator, error) {
	gen, err := NewGenerator(positionIDPrefix, traderTag, strategyTag, clk, initialCount)
	if err != nil {
		return nil, err
	}

	return &PositionIDGenerator{Generator: gen}, nil
}

func (g *PositionIDGenerator) GeneratePositionID() eventmodels.PositionID {
	return eventmodels.PositionID(g.Generate())
}
