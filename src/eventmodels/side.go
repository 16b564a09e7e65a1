package eventmodels

import "fmt"

type Side int

const (
	SideBuy Side = iota
	SideSell
	SideNone
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

func NewSideFromString(s string) (Side, error) {
	switch s {
	case "buy", "BUY", "Buy":
		return SideBuy, nil
	case "sell", "SELL", "Sell":
		return SideSell, nil
	default:
		return SideNone, fmt.Errorf("found %v: %w", s, UnknownSideErr)
	}
}

// Opposite returns the side that offsets s.
func (s Side) Opposite() Side {
	switch s {
	case SideBuy:
		return SideSell
	case SideSell:
		return SideBuy
	default:
		return SideNone
	}
}
