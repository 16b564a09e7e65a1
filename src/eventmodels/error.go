package eventmodels

import "fmt"

var NoEventIDErr = fmt.Errorf("event id not set")
var NoTimestampErr = fmt.Errorf("event timestamp not set")
var SymbolNotSetErr = fmt.Errorf("symbol not set")
var OrderIDNotSetErr = fmt.Errorf("order id not set")
var BrokerOrderIDNotSetErr = fmt.Errorf("broker order id not set")
var ExecutionIDNotSetErr = fmt.Errorf("execution id not set")
var ExecutionTicketNotSetErr = fmt.Errorf("execution ticket not set")
var EmptyRejectedReasonErr = fmt.Errorf("rejected reason must be non-empty")
var EmptyCancelResponseErr = fmt.Errorf("cancel response must be non-empty")
var EmptyCancelRejectReasonErr = fmt.Errorf("cancel reject reason must be non-empty")
var EmptyLabelErr = fmt.Errorf("label must be non-empty")
var NonPositiveQuantityErr = fmt.Errorf("quantity must be positive")
var NonPositivePriceErr = fmt.Errorf("price must be positive")
var MissingExpireTimeErr = fmt.Errorf("expire time must be set for GTD orders")
var UnknownSideErr = fmt.Errorf("unknown order side")
var NegativeAmountErr = fmt.Errorf("amount must be non-negative")
var AccountIDNotSetErr = fmt.Errorf("account id not set")
