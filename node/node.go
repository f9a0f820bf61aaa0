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

// Package node wires the teller frontend together: it reads commands
// from the terminal, parses primitive inputs, drives the validator
// and flushes the transaction log at logout. All transaction rules
// live in tx/op; the node only does I/O.
package node

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tellerledger/go-teller/archive"
	"github.com/tellerledger/go-teller/db"
	"github.com/tellerledger/go-teller/ledger"
	"github.com/tellerledger/go-teller/log"
	"github.com/tellerledger/go-teller/session"
	"github.com/tellerledger/go-teller/tx"
	"github.com/tellerledger/go-teller/tx/op"
)

// Node is the interactive teller frontend.
type Node struct {
	config   *Config
	database db.Database
	arch     *archive.Archive

	in  *bufio.Scanner
	out io.Writer

	session   *session.Session
	validator *op.Validator
}

// NewNode creates a node reading commands from in and writing
// responses to out. When the config names a database backend, flushed
// transaction logs are also archived there.
func NewNode(conf *Config, in io.Reader, out io.Writer) *Node {
	if conf.Debug {
		log.OpenDebug()
	}
	n := &Node{
		config: conf,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	if conf.DBBackend != "" {
		ctor, err := db.GetDB(conf.DBBackend)
		if err != nil {
			log.Fatal(err)
		}
		n.database = ctor(conf.DBPath)
		arch, err := archive.New(n.database)
		if err != nil {
			log.Fatal(err)
		}
		n.arch = arch
	}
	return n
}

// Start runs the command loop until EOF. An open session is logged
// out at EOF so its transaction log is never lost.
func (n *Node) Start() {
	fmt.Fprintln(n.out, "Banking System")
	for {
		command, ok := n.prompt("> ")
		if !ok {
			break
		}

		if n.session == nil && command != "login" {
			fmt.Fprintln(n.out, "Please log in to perform transactions.")
			continue
		}
		if n.session != nil && command == "login" {
			fmt.Fprintln(n.out, "You are already logged in. Please log out before logging in again.")
			continue
		}

		switch command {
		case "login":
			n.handleLogin()
		case "logout":
			n.handleLogout()
		case "withdrawal":
			n.report(n.handleWithdrawal())
		case "transfer":
			n.report(n.handleTransfer())
		case "paybill":
			n.report(n.handlePaybill())
		case "deposit":
			n.report(n.handleDeposit())
		case "create":
			n.report(n.handleCreate())
		case "delete":
			n.report(n.handleDelete())
		case "disable":
			n.report(n.handleDisable())
		case "changeplan":
			n.report(n.handleChangePlan())
		default:
			fmt.Fprintln(n.out, "Invalid command.")
		}
	}

	if n.session != nil {
		log.Warn("input closed with an open session, logging out")
		n.handleLogout()
	}
	if n.database != nil {
		n.database.Close()
	}
}

// report prints the outcome of an operation. Failures are reasons to
// re-prompt, never faults.
func (n *Node) report(t *tx.Tx, err error) {
	if err == io.EOF {
		return
	}
	if err != nil {
		fmt.Fprintf(n.out, "Transaction rejected: %v\n", err)
		return
	}
	name := t.Code.String()
	fmt.Fprintf(n.out, "%s successful.\n", strings.ToUpper(name[:1])+name[1:])
}

func (n *Node) handleLogin() {
	var kind string
	for {
		k, ok := n.prompt("Enter session kind (admin/standard): ")
		if !ok {
			return
		}
		if k != "admin" && k != "standard" {
			fmt.Fprintln(n.out, "Invalid session kind. Please enter 'admin' or 'standard'.")
			continue
		}
		kind = k
		break
	}

	l, err := ledger.LoadFile(n.config.AccountsPath)
	if err != nil {
		fmt.Fprintf(n.out, "Cannot load accounts: %v\n", err)
		return
	}

	if kind == "admin" {
		n.session = session.NewAdmin(l)
	} else {
		holder, ok := n.prompt("Enter account holder name: ")
		if !ok {
			return
		}
		s, err := session.NewStandard(holder, l)
		if err != nil {
			fmt.Fprintf(n.out, "Cannot start session: %v\n", err)
			return
		}
		n.session = s
	}
	n.validator = op.New(n.session)
	fmt.Fprintln(n.out, "Logged in.")
}

func (n *Node) handleLogout() {
	history := n.session.Close()

	recorder := tx.NewRecorder(n.config.TxLogPath)
	if err := recorder.Flush(history); err != nil {
		log.Errorf("flush transaction log failed: %v", err)
	} else if n.arch != nil {
		if err := n.arch.Put(n.session.ID(), tx.Render(history)); err != nil {
			log.Errorf("archive transaction log failed: %v", err)
		}
	}

	n.session = nil
	n.validator = nil
	fmt.Fprintln(n.out, "Logged out.")
}

func (n *Node) handleWithdrawal() (*tx.Tx, error) {
	holder, ok := n.promptHolder()
	if !ok {
		return nil, io.EOF
	}
	number, ok := n.promptInt("Enter account number: ")
	if !ok {
		return nil, io.EOF
	}
	amount, ok := n.promptAmount("Enter amount to withdraw: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Withdrawal(holder, number, amount)
}

func (n *Node) handleTransfer() (*tx.Tx, error) {
	holder, ok := n.promptHolder()
	if !ok {
		return nil, io.EOF
	}
	from, ok := n.promptInt("Enter source account number: ")
	if !ok {
		return nil, io.EOF
	}
	to, ok := n.promptInt("Enter destination account number: ")
	if !ok {
		return nil, io.EOF
	}
	amount, ok := n.promptAmount("Enter amount to transfer: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Transfer(holder, from, to, amount)
}

func (n *Node) handlePaybill() (*tx.Tx, error) {
	holder, ok := n.promptHolder()
	if !ok {
		return nil, io.EOF
	}
	number, ok := n.promptInt("Enter account number: ")
	if !ok {
		return nil, io.EOF
	}
	company, ok := n.prompt("Enter company (EC/CQ/FI): ")
	if !ok {
		return nil, io.EOF
	}
	amount, ok := n.promptAmount("Enter amount to pay: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Paybill(holder, number, amount, company)
}

func (n *Node) handleDeposit() (*tx.Tx, error) {
	holder, ok := n.promptHolder()
	if !ok {
		return nil, io.EOF
	}
	number, ok := n.promptInt("Enter account number: ")
	if !ok {
		return nil, io.EOF
	}
	amount, ok := n.promptAmount("Enter amount to deposit: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Deposit(holder, number, amount)
}

func (n *Node) handleCreate() (*tx.Tx, error) {
	holder, ok := n.prompt("Enter account holder name: ")
	if !ok {
		return nil, io.EOF
	}
	initial, ok := n.promptAmount("Enter initial balance: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Create(holder, initial)
}

func (n *Node) handleDelete() (*tx.Tx, error) {
	holder, ok := n.prompt("Enter account holder name: ")
	if !ok {
		return nil, io.EOF
	}
	number, ok := n.promptInt("Enter account number: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Delete(holder, number)
}

func (n *Node) handleDisable() (*tx.Tx, error) {
	holder, ok := n.prompt("Enter account holder name: ")
	if !ok {
		return nil, io.EOF
	}
	number, ok := n.promptInt("Enter account number: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.Disable(holder, number)
}

func (n *Node) handleChangePlan() (*tx.Tx, error) {
	holder, ok := n.prompt("Enter account holder name: ")
	if !ok {
		return nil, io.EOF
	}
	number, ok := n.promptInt("Enter account number: ")
	if !ok {
		return nil, io.EOF
	}
	return n.validator.ChangePlan(holder, number)
}

// promptHolder asks for the holder name in admin sessions and uses
// the bound holder otherwise.
func (n *Node) promptHolder() (string, bool) {
	if n.session.IsAdmin() {
		return n.prompt("Enter account holder name: ")
	}
	return n.session.Holder(), true
}

func (n *Node) prompt(label string) (string, bool) {
	fmt.Fprint(n.out, label)
	if !n.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(n.in.Text()), true
}

func (n *Node) promptInt(label string) (int, bool) {
	for {
		text, ok := n.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(n.out, "Please enter a whole number.")
			continue
		}
		return v, true
	}
}

func (n *Node) promptAmount(label string) (decimal.Decimal, bool) {
	for {
		text, ok := n.prompt(label)
		if !ok {
			return decimal.Zero, false
		}
		v, err := decimal.NewFromString(text)
		if err != nil {
			fmt.Fprintln(n.out, "Please enter an amount like 100.00.")
			continue
		}
		return v.Round(2), true
	}
}
