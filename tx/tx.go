// Copyright 2026 The go-teller Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tx defines the transaction records a session commits and the
// recorder that serializes them into the interchange log read by the
// reconciliation backend.
package tx

import (
	"github.com/shopspring/decimal"
)

// Code identifies the kind of a committed transaction in the
// interchange log.
type Code uint8

const (
	End Code = iota
	Withdrawal
	Transfer
	Paybill
	Deposit
	Create
	Delete
	Disable
	ChangePlan
)

func (c Code) String() string {
	switch c {
	case End:
		return "end"
	case Withdrawal:
		return "withdrawal"
	case Transfer:
		return "transfer"
	case Paybill:
		return "paybill"
	case Deposit:
		return "deposit"
	case Create:
		return "create"
	case Delete:
		return "delete"
	case Disable:
		return "disable"
	case ChangePlan:
		return "changeplan"
	}
	return "unknown"
}

// Tx is one committed transaction. Records are immutable once created
// and owned by the session history in commit order.
type Tx struct {
	Code       Code
	HolderName string
	Number     int
	Amount     decimal.Decimal
	// Misc carries the destination account number for transfers and
	// the company code for bill payments; empty otherwise.
	Misc string
}
