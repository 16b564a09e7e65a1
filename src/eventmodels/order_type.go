package eventmodels

type OrderType int

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
	OrderTypeStopMarket
	OrderTypeStopLimit
	OrderTypeMIT
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeMarket:
		return "market"
	case OrderTypeLimit:
		return "limit"
	case OrderTypeStopMarket:
		return "stop_market"
	case OrderTypeStopLimit:
		return "stop_limit"
	case OrderTypeMIT:
		return "mit"
	default:
		return "unknown"
	}
}

// HasPrice reports whether orders of this type carry a worked price.
func (t OrderType) HasPrice() bool {
	return t != OrderTypeMarket
}
