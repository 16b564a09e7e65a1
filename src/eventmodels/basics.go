package eventmodels

// OrderID is the platform-assigned order identifier, minted by the order
// identifier generator.
type OrderID string

func (id OrderID) String() string {
	return string(id)
}

// PositionID identifies one position aggregate for the life of the process
// and in persisted streams.
type PositionID string

func (id PositionID) String() string {
	return string(id)
}

// ExecutionID identifies a single broker execution report. Positions use it
// to deduplicate fills.
type ExecutionID string

func (id ExecutionID) String() string {
	return string(id)
}

type AccountID string

func (id AccountID) String() string {
	return string(id)
}

type Symbol string

func (s Symbol) String() string {
	return string(s)
}
