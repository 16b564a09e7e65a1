package models

import (
	"time"

	"github.com/quantfold/tradecore/src/eventmodels"
)

// PositionDTO is the JSON projection served to risk/reporting readers.
type PositionDTO struct {
	ID                eventmodels.PositionID  `json:"id"`
	BrokerID          string                  `json:"brokerId,omitempty"`
	AccountID         eventmodels.AccountID   `json:"accountId"`
	Symbol            eventmodels.Symbol      `json:"symbol"`
	Status            string                  `json:"status"`
	MarketPosition    string                  `json:"marketPosition"`
	Quantity          float64                 `json:"quantity"`
	RelativeQuantity  float64                 `json:"relativeQuantity"`
	PeakQuantity      float64                 `json:"peakQuantity"`
	EntryDirection    string                  `json:"entryDirection"`
	AverageOpenPrice  float64                 `json:"averageOpenPrice"`
	AverageClosePrice *float64                `json:"averageClosePrice,omitempty"`
	RealizedPoints    float64                 `json:"realizedPoints"`
	RealizedReturn    float64                 `json:"realizedReturn"`
	OpenedTime        time.Time               `json:"openedTime"`
	ClosedTime        *time.Time              `json:"closedTime,omitempty"`
	EventCount        int                     `json:"eventCount"`
	OrderIDs          []eventmodels.OrderID   `json:"orderIds"`
	FromOrderID       eventmodels.OrderID     `json:"fromOrderId"`
	LastOrderID       eventmodels.OrderID     `json:"lastOrderId"`
	LastExecutionID   eventmodels.ExecutionID `json:"lastExecutionId"`
}

func (p *Position) ConvertToPositionDTO() *PositionDTO {
	return &PositionDTO{
		ID:                p.id,
		BrokerID:          p.idBroker,
		AccountID:         p.accountID,
		Symbol:            p.symbol,
		Status:            p.StatusString(),
		MarketPosition:    p.marketPosition.String(),
		Quantity:          p.quantity,
		RelativeQuantity:  p.relativeQuantity,
		PeakQuantity:      p.peakQuantity,
		EntryDirection:    p.entryDirection.String(),
		AverageOpenPrice:  p.averageOpenPrice,
		AverageClosePrice: p.AverageClosePrice(),
		RealizedPoints:    p.realizedPoints,
		RealizedReturn:    p.realizedReturn,
		OpenedTime:        p.openedTime,
		ClosedTime:        p.ClosedTime(),
		EventCount:        len(p.events),
		OrderIDs:          p.GetOrderIDs(),
		FromOrderID:       p.fromOrderID,
		LastOrderID:       p.lastOrderID,
		LastExecutionID:   p.lastExecutionID,
	}
}
