package eventmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OrderFilledEventName          = "OrderFilled"
	OrderPartiallyFilledEventName = "OrderPartiallyFilled"
)

// FillEventDTO is the persisted form of a fill event. The event type tag
// distinguishes complete from partial fills on the way back in.
type FillEventDTO struct {
	EventID         uuid.UUID `json:"id"`
	EventType       string    `json:"type"`
	Symbol          string    `json:"symbol"`
	OrderID         string    `json:"orderId"`
	ExecutionID     string    `json:"executionId"`
	ExecutionTicket string    `json:"executionTicket"`
	Side            string    `json:"side"`
	FilledQuantity  float64   `json:"filledQuantity"`
	LeavesQuantity  float64   `json:"leavesQuantity,omitempty"`
	AveragePrice    float64   `json:"averagePrice"`
	ExecutionTime   time.Time `json:"executionTime"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewFillEventDTO(ev OrderFillEvent) *FillEventDTO {
	dto := &FillEventDTO{
		EventID:         ev.EventID(),
		EventType:       OrderFilledEventName,
		Symbol:          string(ev.Symbol()),
		OrderID:         string(ev.OrderID()),
		ExecutionID:     string(ev.ExecutionID()),
		ExecutionTicket: ev.ExecutionTicket(),
		Side:            ev.Side().String(),
		FilledQuantity:  ev.FilledQuantity(),
		AveragePrice:    ev.AveragePrice(),
		ExecutionTime:   ev.ExecutionTime(),
		Timestamp:       ev.Timestamp(),
	}

	if partial, ok := ev.(*OrderPartiallyFilled); ok {
		dto.EventType = OrderPartiallyFilledEventName
		dto.LeavesQuantity = partial.LeavesQuantity()
	}

	return dto
}

func (dto *FillEventDTO) ToModel() (OrderFillEvent, error) {
	side, err := NewSideFromString(dto.Side)
	if err != nil {
		return nil, fmt.Errorf("FillEventDTO.ToModel: %w", err)
	}

	switch dto.EventType {
	case OrderFilledEventName:
		return NewOrderFilled(dto.EventID, Symbol(dto.Symbol), OrderID(dto.OrderID), ExecutionID(dto.ExecutionID), dto.ExecutionTicket, side, dto.FilledQuantity, dto.AveragePrice, dto.ExecutionTime, dto.Timestamp)
	case OrderPartiallyFilledEventName:
		return NewOrderPartiallyFilled(dto.EventID, Symbol(dto.Symbol), OrderID(dto.OrderID), ExecutionID(dto.ExecutionID), dto.ExecutionTicket, side, dto.FilledQuantity, dto.LeavesQuantity, dto.AveragePrice, dto.ExecutionTime, dto.Timestamp)
	default:
		return nil, fmt.Errorf("FillEventDTO.ToModel: unknown event type %s", dto.EventType)
	}
}
