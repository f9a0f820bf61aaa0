package session

import (
	"github.com/shopspring/decimal"

	"github.com/tellerledger/go-teller/tx"
)

// Per-session cumulative spending caps for standard sessions. The cap
// bounds the sum of admitted amounts per code, not a single call.
var limits = map[tx.Code]decimal.Decimal{
	tx.Withdrawal: decimal.New(50000, -2),  // 500.00
	tx.Transfer:   decimal.New(100000, -2), // 1000.00
	tx.Paybill:    decimal.New(200000, -2), // 2000.00
}

// Limit returns the cumulative cap for the given code and whether the
// code is capped at all.
func Limit(code tx.Code) (decimal.Decimal, bool) {
	cap, ok := limits[code]
	return cap, ok
}
