package tx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testHistory() []*Tx {
	return []*Tx{
		{Code: Withdrawal, HolderName: "Alice", Number: 10001, Amount: dec("300.00")},
		{Code: Paybill, HolderName: "Alice", Number: 10001, Amount: dec("20.00"), Misc: "EC"},
		{Code: Create, HolderName: "Dana", Number: 10006, Amount: dec("100.00")},
	}
}

func TestRender(t *testing.T) {
	lines := strings.Split(string(Render(testHistory())), "\n")

	assert.Equal(t, "01 Alice                10001 00300.00   ", lines[0])
	assert.Equal(t, "03 Alice                10001 00020.00 EC", lines[1])
	assert.Equal(t, "05 Dana                 10006 00100.00   ", lines[2])
	// END record terminates the log
	assert.Equal(t, "00                      00000 00000.00   ", lines[3])
	assert.Equal(t, "", lines[4])
}

func TestRenderEmptyHistory(t *testing.T) {
	lines := strings.Split(string(Render(nil)), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "00                      00000 00000.00   ", lines[0])
}

func TestFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.txt")
	r := NewRecorder(path)

	err := r.Flush(testHistory())
	assert.Nil(t, err)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.Equal(t, Render(testHistory()), data)

	// the log is write-once per session
	err = r.Flush(testHistory())
	assert.Equal(t, ErrFlushed, err)
}

func TestCodeValues(t *testing.T) {
	// interchange codes are fixed by the log format
	assert.Equal(t, Code(0), End)
	assert.Equal(t, Code(1), Withdrawal)
	assert.Equal(t, Code(2), Transfer)
	assert.Equal(t, Code(3), Paybill)
	assert.Equal(t, Code(4), Deposit)
	assert.Equal(t, Code(5), Create)
	assert.Equal(t, Code(6), Delete)
	assert.Equal(t, Code(7), Disable)
	assert.Equal(t, Code(8), ChangePlan)
}
