package models

import "fmt"

var PositionIDNotSetErr = fmt.Errorf("position id not set")
var AccountIDNotSetErr = fmt.Errorf("account id not set")
var SymbolNotSetErr = fmt.Errorf("symbol not set")
var NilEventErr = fmt.Errorf("event must not be nil")
var SymbolMismatchErr = fmt.Errorf("fill symbol does not match position symbol")
var DuplicateExecutionErr = fmt.Errorf("execution id already applied")
var OrderIDNotSetErr = fmt.Errorf("order id not set")
var NonPositiveQuantityErr = fmt.Errorf("quantity must be positive")
var NonPositivePriceErr = fmt.Errorf("price must be positive")
var PriceNotAllowedErr = fmt.Errorf("market orders must not carry a price")
var PriceRequiredErr = fmt.Errorf("price required for this order type")
var MissingExpireTimeErr = fmt.Errorf("expire time must be set for GTD orders")
var UnknownSideErr = fmt.Errorf("unknown order side")
var GeneratorNotSetErr = fmt.Errorf("identifier generator not set")
