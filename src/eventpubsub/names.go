package eventpubsub

const (
	OrderFillEvent        = "OrderFillEvent"
	PositionOpenedEvent   = "PositionOpenedEvent"
	PositionModifiedEvent = "PositionModifiedEvent"
	PositionClosedEvent   = "PositionClosedEvent"
	AccountUpdateEvent    = "AccountUpdateEvent"
	TimeEventFired        = "TimeEventFired"
	Error                 = "DefaultError"
)
