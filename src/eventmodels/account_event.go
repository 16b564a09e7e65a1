package eventmodels

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccountEvent is a snapshot from a broker collateral report. It carries no
// order or position state.
type AccountEvent struct {
	BaseEvent
	accountID             AccountID
	broker                string
	accountNumber         string
	currency              string
	cashBalance           float64
	cashStartDay          float64
	cashActivityDay       float64
	marginUsedLiquidation float64
	marginUsedMaintenance float64
	marginRatio           float64
	marginCallStatus      MarginCallStatus
}

func NewAccountEvent(id uuid.UUID, accountID AccountID, broker, accountNumber, currency string, cashBalance, cashStartDay, cashActivityDay, marginUsedLiquidation, marginUsedMaintenance, marginRatio float64, marginCallStatus MarginCallStatus, timestamp time.Time) (*AccountEvent, error) {
	base, err := newBaseEvent(id, timestamp)
	if err != nil {
		return nil, err
	}

	if accountID == "" {
		return nil, AccountIDNotSetErr
	}

	for _, amount := range []float64{cashBalance, cashStartDay, cashActivityDay, marginUsedLiquidation, marginUsedMaintenance, marginRatio} {
		if amount < 0 {
			return nil, fmt.Errorf("found %v: %w", amount, NegativeAmountErr)
		}
	}

	return &AccountEvent{
		BaseEvent:             base,
		accountID:             accountID,
		broker:                broker,
		accountNumber:         accountNumber,
		currency:              currency,
		cashBalance:           cashBalance,
		cashStartDay:          cashStartDay,
		cashActivityDay:       cashActivityDay,
		marginUsedLiquidation: marginUsedLiquidation,
		marginUsedMaintenance: marginUsedMaintenance,
		marginRatio:           marginRatio,
		marginCallStatus:      marginCallStatus,
	}, nil
}

func (e *AccountEvent) AccountID() AccountID {
	return e.accountID
}

func (e *AccountEvent) Broker() string {
	return e.broker
}

func (e *AccountEvent) AccountNumber() string {
	return e.accountNumber
}

func (e *AccountEvent) Currency() string {
	return e.currency
}

func (e *AccountEvent) CashBalance() float64 {
	return e.cashBalance
}

func (e *AccountEvent) CashStartDay() float64 {
	return e.cashStartDay
}

func (e *AccountEvent) CashActivityDay() float64 {
	return e.cashActivityDay
}

func (e *AccountEvent) MarginUsedLiquidation() float64 {
	return e.marginUsedLiquidation
}

func (e *AccountEvent) MarginUsedMaintenance() float64 {
	return e.marginUsedMaintenance
}

func (e *AccountEvent) MarginRatio() float64 {
	return e.marginRatio
}

func (e *AccountEvent) MarginCallStatus() MarginCallStatus {
	return e.marginCallStatus
}

func (e *AccountEvent) String() string {
	return fmt.Sprintf("AccountEvent(%s, cash=%v %s, margin=%s)", e.accountID, e.cashBalance, e.currency, e.marginCallStatus)
}
