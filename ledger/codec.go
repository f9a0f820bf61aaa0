package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Snapshot lines are fixed width: a 5 digit zero-padded account number,
// a space, a 20 column space-padded holder name, a space, a one character
// status ('A' for active), a space and an 8 character zero-padded balance
// with 2 decimals. The file ends with the END_OF_FILE sentinel record.
const (
	snapshotLineWidth = 37
	sentinelName      = "END_OF_FILE"

	// SentinelLine terminates every account snapshot.
	SentinelLine = "00000 END_OF_FILE           A 00000.00"
)

// ErrParse is reported when a snapshot line does not match the
// fixed-width layout.
var ErrParse = errors.New("malformed snapshot line")

// parseLine decodes one fixed-width snapshot line into an account.
// It returns ok=false for the sentinel record.
func parseLine(line string) (*Account, bool, error) {
	if len(line) < snapshotLineWidth {
		return nil, false, fmt.Errorf("line %q too short: %w", line, ErrParse)
	}

	name := strings.TrimSpace(line[6:26])
	if name == sentinelName {
		return nil, false, nil
	}

	number, err := strconv.Atoi(line[0:5])
	if err != nil {
		return nil, false, fmt.Errorf("account number %q: %w", line[0:5], ErrParse)
	}
	if number <= 0 {
		return nil, false, fmt.Errorf("account number %d not positive: %w", number, ErrParse)
	}

	balance, err := decimal.NewFromString(line[29:37])
	if err != nil {
		return nil, false, fmt.Errorf("balance %q: %w", line[29:37], ErrParse)
	}

	acct := &Account{
		HolderName: name,
		Number:     number,
		Balance:    balance,
		Active:     line[27] == 'A',
		Plan:       StudentPlan,
	}
	return acct, true, nil
}

// formatLine encodes one account as a fixed-width snapshot line.
func formatLine(a *Account) string {
	status := "D"
	if a.Active {
		status = "A"
	}
	return fmt.Sprintf("%05d %-20s %s %s", a.Number, a.HolderName, status, FormatAmount(a.Balance))
}

// FormatAmount renders an amount as the 8 character zero-padded
// 2 decimal form shared by the snapshot and the transaction log,
// e.g. 00500.00.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	for len(s) < 8 {
		s = "0" + s
	}
	return s
}
