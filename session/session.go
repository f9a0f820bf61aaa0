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

// Package session holds the per-login state a teller works with: the
// session kind, the bound account holder for standard sessions, the
// ledger snapshot, the cumulative per-operation spending totals and
// the ordered history of committed transactions.
package session

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tellerledger/go-teller/ledger"
	"github.com/tellerledger/go-teller/log"
	"github.com/tellerledger/go-teller/tx"
)

// Kind distinguishes admin from standard sessions.
type Kind uint8

const (
	Standard Kind = iota
	Admin
)

func (k Kind) String() string {
	if k == Admin {
		return "admin"
	}
	return "standard"
}

var (
	// ErrClosed is reported when an operation targets a session that
	// already flushed its history at logout.
	ErrClosed = errors.New("session is closed")

	// ErrNoHolder is reported when a standard session is created
	// without a bound account holder.
	ErrNoHolder = errors.New("standard session requires an account holder name")
)

// Session is one authenticated interval between login and logout. It
// exclusively owns its ledger, totals and history; nothing else may
// touch them while the session is alive.
type Session struct {
	id     uuid.UUID
	kind   Kind
	holder string

	ledger  *ledger.Ledger
	totals  map[tx.Code]decimal.Decimal
	history []*tx.Tx
	closed  bool
}

// NewAdmin creates an admin session over the given ledger snapshot.
func NewAdmin(l *ledger.Ledger) *Session {
	s := &Session{
		id:     uuid.New(),
		kind:   Admin,
		ledger: l,
		totals: newTotals(),
	}
	log.Infow("session started", "id", s.id.String(), "kind", s.kind.String())
	return s
}

// NewStandard creates a standard session bound to the given account
// holder. The binding is immutable for the session's lifetime.
func NewStandard(holder string, l *ledger.Ledger) (*Session, error) {
	if holder == "" {
		return nil, ErrNoHolder
	}
	s := &Session{
		id:     uuid.New(),
		kind:   Standard,
		holder: holder,
		ledger: l,
		totals: newTotals(),
	}
	log.Infow("session started", "id", s.id.String(), "kind", s.kind.String(), "holder", holder)
	return s, nil
}

func newTotals() map[tx.Code]decimal.Decimal {
	return map[tx.Code]decimal.Decimal{
		tx.Withdrawal: decimal.Zero,
		tx.Transfer:   decimal.Zero,
		tx.Paybill:    decimal.Zero,
	}
}

// ID returns the session identifier used to key the archived log.
func (s *Session) ID() string {
	return s.id.String()
}

// Kind returns the session kind.
func (s *Session) Kind() Kind {
	return s.kind
}

// IsAdmin reports whether the session has admin privileges.
func (s *Session) IsAdmin() bool {
	return s.kind == Admin
}

// Holder returns the bound account holder name, empty for admin
// sessions.
func (s *Session) Holder() string {
	return s.holder
}

// Ledger returns the ledger snapshot owned by the session.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// Closed reports whether the session already logged out.
func (s *Session) Closed() bool {
	return s.closed
}

// Total returns the cumulative admitted amount for the given code.
// Codes without a cumulative cap always report zero.
func (s *Session) Total(code tx.Code) decimal.Decimal {
	t, ok := s.totals[code]
	if !ok {
		return decimal.Zero
	}
	return t
}

// WithinLimit reports whether admitting amount for the given code
// would keep the session's cumulative total at or under the cap.
// The check uses the total before this call; reaching the cap
// exactly is allowed. Admin sessions and uncapped codes are exempt.
func (s *Session) WithinLimit(code tx.Code, amount decimal.Decimal) bool {
	if s.kind == Admin {
		return true
	}
	cap, ok := limits[code]
	if !ok {
		return true
	}
	return s.totals[code].Add(amount).LessThanOrEqual(cap)
}

// Commit appends a transaction to the session history and, for capped
// codes on standard sessions, adds its amount to the running total.
// Totals never move on rejected calls; the validator commits only
// after every check and mutation succeeded.
func (s *Session) Commit(t *tx.Tx) {
	s.history = append(s.history, t)
	if s.kind == Admin {
		return
	}
	if _, ok := limits[t.Code]; ok {
		s.totals[t.Code] = s.totals[t.Code].Add(t.Amount)
	}
}

// History returns the committed transactions in commit order. The
// returned slice is a copy; the records themselves are immutable.
func (s *Session) History() []*tx.Tx {
	out := make([]*tx.Tx, len(s.history))
	copy(out, s.history)
	return out
}

// Close marks the session as logged out and returns its history for
// flushing. Every later operation against the session fails.
func (s *Session) Close() []*tx.Tx {
	s.closed = true
	log.Infow("session closed", "id", s.id.String(), "transactions", len(s.history))
	return s.History()
}
