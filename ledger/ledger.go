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

// Package ledger holds the in-memory account snapshot a session works
// against. The snapshot is loaded once at session start from the
// fixed-width account file owned by the backend; the engine never
// writes that file back.
package ledger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/tellerledger/go-teller/log"
)

// Base for account numbering when the ledger holds no accounts yet.
const numberBase = 10000

// Ledger is the keyed collection of accounts owned by a single session.
// It is not safe for concurrent use; the owning session serializes
// every operation.
type Ledger struct {
	accounts map[int]*Account
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[int]*Account)}
}

// Load reads a fixed-width account snapshot until the sentinel record
// or EOF. A malformed line aborts the load with an error wrapping
// ErrParse and no accounts are returned.
func Load(r io.Reader) (*Ledger, error) {
	l := New()
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\n")
		if line == "" {
			continue
		}
		acct, ok, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("snapshot line %d: %w", lineno, err)
		}
		if !ok {
			break
		}
		l.accounts[acct.Number] = acct
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read snapshot: %v", err)
	}
	return l, nil
}

// LoadFile loads the snapshot at path. A missing file yields an empty
// ledger, matching the backend contract that the account file may not
// exist before the first reconciliation run.
func LoadFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warnf("account snapshot %s not found, starting with empty ledger", path)
			return New(), nil
		}
		return nil, fmt.Errorf("open snapshot: %v", err)
	}
	defer f.Close()
	return Load(f)
}

// Get returns the account with the given number, or nil when the
// number is unknown or was deleted earlier in the session.
func (l *Ledger) Get(number int) *Account {
	return l.accounts[number]
}

// Insert adds the account under its number.
func (l *Ledger) Insert(a *Account) {
	l.accounts[a.Number] = a
}

// Remove deletes the account with the given number. Later lookups of
// the number fail for the rest of the session.
func (l *Ledger) Remove(number int) {
	delete(l.accounts, number)
}

// Len returns the number of accounts held.
func (l *Ledger) Len() int {
	return len(l.accounts)
}

// NextNumber returns the number the next created account receives:
// one past the highest existing number, starting from the numbering
// base when the ledger is empty.
func (l *Ledger) NextNumber() int {
	max := numberBase
	for n := range l.accounts {
		if n > max {
			max = n
		}
	}
	return max + 1
}

// Accounts returns all accounts ordered by account number.
func (l *Ledger) Accounts() []*Account {
	out := make([]*Account, 0, len(l.accounts))
	for _, a := range l.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// WriteSnapshot serializes the ledger in the snapshot format, sentinel
// included. The canonical account file is written by the backend; this
// writer exists for reconciliation tooling and tests.
func (l *Ledger) WriteSnapshot(w io.Writer) error {
	for _, a := range l.Accounts() {
		if _, err := fmt.Fprintln(w, formatLine(a)); err != nil {
			return fmt.Errorf("write snapshot: %v", err)
		}
	}
	if _, err := fmt.Fprintln(w, SentinelLine); err != nil {
		return fmt.Errorf("write snapshot: %v", err)
	}
	return nil
}
