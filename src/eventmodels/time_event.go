package eventmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeEvent records a scheduled timer firing. It drives periodic strategy
// logic and carries no order or account payload.
type TimeEvent struct {
	BaseEvent
	label string
}

func NewTimeEvent(id uuid.UUID, label string, timestamp time.Time) (*TimeEvent, error) {
	base, err := newBaseEvent(id, timestamp)
	if err != nil {
		return nil, err
	}

	if label == "" {
		return nil, EmptyLabelErr
	}

	return &TimeEvent{BaseEvent: base, label: label}, nil
}

func (e *TimeEvent) Label() string {
	return e.label
}

func (e *TimeEvent) String() string {
	return fmt.Sprintf("TimeEvent(%s, %s)", e.label, e.Timestamp().Format(time.RFC3339))
}
