package eventmodels

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract shared by every trading occurrence. Events are
// immutable once constructed: they expose no mutators and all concrete
// types keep their fields private behind accessors.
//
// Equality is defined by event id alone, never by payload. Two events are
// the same event iff they carry the same id, even when the payloads differ.
// Consumers must use Equal (or map keys on EventID) and must not compare
// events field-wise.
type Event interface {
	EventID() uuid.UUID
	Timestamp() time.Time
}

// BaseEvent carries the identity and occurrence time common to all events.
// It is embedded by every concrete event type.
type BaseEvent struct {
	id        uuid.UUID
	timestamp time.Time
}

func newBaseEvent(id uuid.UUID, timestamp time.Time) (BaseEvent, error) {
	if id == uuid.Nil {
		return BaseEvent{}, NoEventIDErr
	}

	if timestamp.IsZero() {
		return BaseEvent{}, NoTimestampErr
	}

	return BaseEvent{id: id, timestamp: timestamp.UTC()}, nil
}

func (e BaseEvent) EventID() uuid.UUID {
	return e.id
}

func (e BaseEvent) Timestamp() time.Time {
	return e.timestamp
}

// Equal implements identity equality: payloads never participate.
func Equal(a, b Event) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.EventID() == b.EventID()
}
