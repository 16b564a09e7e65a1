package eventmodels

type TimeInForce int

const (
	TimeInForceDay TimeInForce = iota
	TimeInForceGTC
	TimeInForceGTD
	TimeInForceIOC
	TimeInForceFOC
)

func (t TimeInForce) String() string {
	switch t {
	case TimeInForceDay:
		return "DAY"
	case TimeInForceGTC:
		return "GTC"
	case TimeInForceGTD:
		return "GTD"
	case TimeInForceIOC:
		return "IOC"
	case TimeInForceFOC:
		return "FOC"
	default:
		return "unknown"
	}
}
