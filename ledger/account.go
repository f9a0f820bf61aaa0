package ledger

import (
	"github.com/shopspring/decimal"
)

// PaymentPlan is the billing plan attached to an account.
type PaymentPlan uint8

const (
	StudentPlan PaymentPlan = iota
	NonStudentPlan
)

func (p PaymentPlan) String() string {
	switch p {
	case StudentPlan:
		return "SP"
	case NonStudentPlan:
		return "NP"
	}
	return "UNKNOWN"
}

// Account is a single bank account held in the ledger. The account
// number doubles as the ledger key.
type Account struct {
	// Display name of the account holder, at most 20 columns.
	HolderName string
	// Unique positive account number.
	Number int
	// Current balance, never negative after a committed operation.
	Balance decimal.Decimal
	// Whether the account is active. Disabled accounts stay in
	// the ledger but reject ordinary operations.
	Active bool
	// Whether the account was created during this session and is
	// still waiting for clearance by the backend.
	NewlyCreated bool
	// Billing plan of the account.
	Plan PaymentPlan
}

// Available reports whether ordinary operations may use the account.
// Newly created accounts stay unavailable until the backend clears them.
func (a *Account) Available() bool {
	return a.Active && !a.NewlyCreated
}
