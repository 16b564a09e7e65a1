package identifiers

import "fmt"

var PrefixNotSetErr = fmt.Errorf("prefix not set")
var TraderTagNotSetErr = fmt.Errorf("trader tag not set")
var StrategyTagNotSetErr = fmt.Errorf("strategy tag not set")
var ClockNotSetErr = fmt.Errorf("clock not set")
var NegativeCountErr = fmt.Errorf("count must be non-negative")
