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

// Package op validates and applies the teller operations against a
// session. Checks run in a fixed short-circuiting order: authorization
// and identity, cumulative limit, account existence, availability,
// then non-negative resulting balances. The first failure aborts with
// the ledger and session counters untouched; success applies every
// mutation and commits one transaction record to the session history.
package op

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tellerledger/go-teller/ledger"
	"github.com/tellerledger/go-teller/log"
	"github.com/tellerledger/go-teller/session"
	"github.com/tellerledger/go-teller/tx"
)

// Company codes accepted for bill payments.
const (
	CompanyEC = "EC"
	CompanyCQ = "CQ"
	CompanyFI = "FI"
)

// Accounts are created with at most this balance.
var maxInitialBalance = decimal.New(9999999, -2) // 99999.99

// Maximum display columns of a holder name in the fixed-width formats.
const maxHolderName = 20

// Validator applies teller operations to a single session.
type Validator struct {
	s *session.Session
}

// New creates a validator bound to the given session.
func New(s *session.Session) *Validator {
	return &Validator{s: s}
}

// begin rejects operations against a closed session and non-positive
// amounts before any gate runs.
func (v *Validator) begin(amount decimal.Decimal) error {
	if v.s.Closed() {
		return session.ErrClosed
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount %s not positive: %w", amount.StringFixed(2), ErrValidation)
	}
	return nil
}

// checkIdentity enforces the identity gate: standard sessions may only
// act for their bound holder.
func (v *Validator) checkIdentity(holder string) error {
	if v.s.IsAdmin() {
		return nil
	}
	if holder != v.s.Holder() {
		return fmt.Errorf("holder %q is not the logged in holder: %w", holder, ErrIdentityMismatch)
	}
	return nil
}

// checkAdmin enforces the admin-only gate before any other check.
func (v *Validator) checkAdmin() error {
	if v.s.Closed() {
		return session.ErrClosed
	}
	if !v.s.IsAdmin() {
		return ErrAuthorization
	}
	return nil
}

// checkLimit enforces the cumulative per-code cap for standard
// sessions, boundary inclusive.
func (v *Validator) checkLimit(code tx.Code, amount decimal.Decimal) error {
	if v.s.WithinLimit(code, amount) {
		return nil
	}
	cap, _ := session.Limit(code)
	return fmt.Errorf("%s of %s exceeds remaining allowance of %s: %w",
		code, amount.StringFixed(2),
		cap.Sub(v.s.Total(code)).StringFixed(2), ErrLimitExceeded)
}

// lookup resolves an account number against the session ledger.
func (v *Validator) lookup(number int) (*ledger.Account, error) {
	acct := v.s.Ledger().Get(number)
	if acct == nil {
		return nil, fmt.Errorf("account %d: %w", number, ErrNotFound)
	}
	return acct, nil
}

// available rejects accounts that are disabled or pending clearance.
func available(acct *ledger.Account) error {
	if !acct.Available() {
		return fmt.Errorf("account %d: %w", acct.Number, ErrUnavailable)
	}
	return nil
}

func (v *Validator) commit(t *tx.Tx) *tx.Tx {
	v.s.Commit(t)
	log.Infow("transaction committed",
		"code", t.Code.String(), "holder", t.HolderName,
		"account", t.Number, "amount", t.Amount.StringFixed(2))
	return t
}

// Withdrawal removes amount from the account. The amount counts toward
// the session's withdrawal allowance only when admitted.
func (v *Validator) Withdrawal(holder string, number int, amount decimal.Decimal) (*tx.Tx, error) {
	if err := v.begin(amount); err != nil {
		return nil, err
	}
	if err := v.checkIdentity(holder); err != nil {
		return nil, err
	}
	if err := v.checkLimit(tx.Withdrawal, amount); err != nil {
		return nil, err
	}
	acct, err := v.lookup(number)
	if err != nil {
		return nil, err
	}
	if err := available(acct); err != nil {
		return nil, err
	}
	balance := acct.Balance.Sub(amount)
	if balance.IsNegative() {
		return nil, fmt.Errorf("withdrawal of %s from account %d: %w",
			amount.StringFixed(2), number, ErrInsufficientFunds)
	}

	acct.Balance = balance
	return v.commit(&tx.Tx{
		Code:       tx.Withdrawal,
		HolderName: holder,
		Number:     number,
		Amount:     amount,
	}), nil
}

// Transfer moves amount between two accounts. The identity gate
// applies to the source holder only; both accounts must exist and be
// available, and both resulting balances must be non-negative. The
// destination check cannot fire for positive amounts but is kept
// because the invariant is stated over every changed balance.
func (v *Validator) Transfer(holder string, from, to int, amount decimal.Decimal) (*tx.Tx, error) {
	if err := v.begin(amount); err != nil {
		return nil, err
	}
	if from == to {
		return nil, fmt.Errorf("transfer within account %d: %w", from, ErrValidation)
	}
	if err := v.checkIdentity(holder); err != nil {
		return nil, err
	}
	if err := v.checkLimit(tx.Transfer, amount); err != nil {
		return nil, err
	}
	src, err := v.lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := v.lookup(to)
	if err != nil {
		return nil, err
	}
	if err := available(src); err != nil {
		return nil, err
	}
	if err := available(dst); err != nil {
		return nil, err
	}
	srcBalance := src.Balance.Sub(amount)
	dstBalance := dst.Balance.Add(amount)
	if srcBalance.IsNegative() {
		return nil, fmt.Errorf("transfer of %s from account %d: %w",
			amount.StringFixed(2), from, ErrInsufficientFunds)
	}
	if dstBalance.IsNegative() {
		return nil, fmt.Errorf("transfer of %s to account %d: %w",
			amount.StringFixed(2), to, ErrInsufficientFunds)
	}

	src.Balance = srcBalance
	dst.Balance = dstBalance
	return v.commit(&tx.Tx{
		Code:       tx.Transfer,
		HolderName: holder,
		Number:     from,
		Amount:     amount,
		Misc:       fmt.Sprintf("%d", to),
	}), nil
}

// Paybill pays amount from the account to one of the known companies.
func (v *Validator) Paybill(holder string, number int, amount decimal.Decimal, company string) (*tx.Tx, error) {
	if err := v.begin(amount); err != nil {
		return nil, err
	}
	switch company {
	case CompanyEC, CompanyCQ, CompanyFI:
	default:
		return nil, fmt.Errorf("company %q: %w", company, ErrValidation)
	}
	if err := v.checkIdentity(holder); err != nil {
		return nil, err
	}
	if err := v.checkLimit(tx.Paybill, amount); err != nil {
		return nil, err
	}
	acct, err := v.lookup(number)
	if err != nil {
		return nil, err
	}
	if err := available(acct); err != nil {
		return nil, err
	}
	balance := acct.Balance.Sub(amount)
	if balance.IsNegative() {
		return nil, fmt.Errorf("bill payment of %s from account %d: %w",
			amount.StringFixed(2), number, ErrInsufficientFunds)
	}

	acct.Balance = balance
	return v.commit(&tx.Tx{
		Code:       tx.Paybill,
		HolderName: holder,
		Number:     number,
		Amount:     amount,
		Misc:       company,
	}), nil
}

// Deposit adds amount to the account. Deposits require only that the
// account exists: a disabled or pending account may still receive
// funds so clearance cannot strand money in transit. No cumulative
// cap applies.
func (v *Validator) Deposit(holder string, number int, amount decimal.Decimal) (*tx.Tx, error) {
	if err := v.begin(amount); err != nil {
		return nil, err
	}
	if err := v.checkIdentity(holder); err != nil {
		return nil, err
	}
	acct, err := v.lookup(number)
	if err != nil {
		return nil, err
	}

	acct.Balance = acct.Balance.Add(amount)
	return v.commit(&tx.Tx{
		Code:       tx.Deposit,
		HolderName: holder,
		Number:     number,
		Amount:     amount,
	}), nil
}

// Create inserts a new account numbered one past the highest existing
// number. The account starts active but pending clearance, so it is
// unusable by other operations for the rest of the session.
func (v *Validator) Create(holder string, initial decimal.Decimal) (*tx.Tx, error) {
	if err := v.checkAdmin(); err != nil {
		return nil, err
	}
	if holder == "" || len(holder) > maxHolderName {
		return nil, fmt.Errorf("holder name %q must be 1 to %d characters: %w",
			holder, maxHolderName, ErrValidation)
	}
	if initial.IsNegative() {
		return nil, fmt.Errorf("initial balance %s negative: %w",
			initial.StringFixed(2), ErrValidation)
	}
	if initial.GreaterThan(maxInitialBalance) {
		return nil, fmt.Errorf("initial balance %s over ceiling %s: %w",
			initial.StringFixed(2), maxInitialBalance.StringFixed(2), ErrValidation)
	}

	acct := &ledger.Account{
		HolderName:   holder,
		Number:       v.s.Ledger().NextNumber(),
		Balance:      initial,
		Active:       true,
		NewlyCreated: true,
		Plan:         ledger.StudentPlan,
	}
	v.s.Ledger().Insert(acct)
	return v.commit(&tx.Tx{
		Code:       tx.Create,
		HolderName: holder,
		Number:     acct.Number,
		Amount:     initial,
	}), nil
}

// Delete removes the account from the ledger. The requested holder
// must match the stored one exactly; later lookups of the number fail
// for the rest of the session.
func (v *Validator) Delete(holder string, number int) (*tx.Tx, error) {
	if err := v.checkAdmin(); err != nil {
		return nil, err
	}
	acct, err := v.lookup(number)
	if err != nil {
		return nil, err
	}
	if acct.HolderName != holder {
		return nil, fmt.Errorf("account %d is not held by %q: %w", number, holder, ErrIdentityMismatch)
	}

	v.s.Ledger().Remove(number)
	return v.commit(&tx.Tx{
		Code:       tx.Delete,
		HolderName: holder,
		Number:     number,
		Amount:     decimal.Zero,
	}), nil
}

// Disable deactivates the account for the rest of the session.
func (v *Validator) Disable(holder string, number int) (*tx.Tx, error) {
	if err := v.checkAdmin(); err != nil {
		return nil, err
	}
	acct, err := v.lookup(number)
	if err != nil {
		return nil, err
	}
	if acct.HolderName != holder {
		return nil, fmt.Errorf("account %d is not held by %q: %w", number, holder, ErrIdentityMismatch)
	}

	acct.Active = false
	return v.commit(&tx.Tx{
		Code:       tx.Disable,
		HolderName: holder,
		Number:     number,
		Amount:     decimal.Zero,
	}), nil
}

// ChangePlan moves the account to the non-student plan. The transition
// is idempotent; changing an account already on the non-student plan
// still reports success.
func (v *Validator) ChangePlan(holder string, number int) (*tx.Tx, error) {
	if err := v.checkAdmin(); err != nil {
		return nil, err
	}
	acct, err := v.lookup(number)
	if err != nil {
		return nil, err
	}
	if acct.HolderName != holder {
		return nil, fmt.Errorf("account %d is not held by %q: %w", number, holder, ErrIdentityMismatch)
	}

	acct.Plan = ledger.NonStudentPlan
	return v.commit(&tx.Tx{
		Code:       tx.ChangePlan,
		HolderName: holder,
		Number:     number,
		Amount:     decimal.Zero,
	}), nil
}
