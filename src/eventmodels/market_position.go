package eventmodels

type MarketPosition int

const (
	MarketPositionFlat MarketPosition = iota
	MarketPositionLong
	MarketPositionShort
)

func (m MarketPosition) String() string {
	switch m {
	case MarketPositionFlat:
		return "FLAT"
	case MarketPositionLong:
		return "LONG"
	case MarketPositionShort:
		return "SHORT"
	default:
		return "unknown"
	}
}

// MarginCallStatus is carried verbatim from broker collateral reports.
type MarginCallStatus string

const (
	MarginCallStatusNone        MarginCallStatus = "NONE"
	MarginCallStatusCall        MarginCallStatus = "CALL"
	MarginCallStatusLiquidation MarginCallStatus = "LIQUIDATION"
)
