package ledger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const testSnapshot = "10001 Alice                A 00340.00\n" +
	"10002 Bob                  D 00012.50\n" +
	"10005 Charlie Longname     A 99999.99\n" +
	"00000 END_OF_FILE           A 00000.00\n"

func TestLoad(t *testing.T) {
	l, err := Load(strings.NewReader(testSnapshot))
	assert.Nil(t, err)
	assert.Equal(t, 3, l.Len())

	alice := l.Get(10001)
	assert.NotNil(t, alice)
	assert.Equal(t, "Alice", alice.HolderName)
	assert.True(t, alice.Active)
	assert.True(t, alice.Available())
	assert.True(t, alice.Balance.Equal(decimal.RequireFromString("340.00")))
	assert.Equal(t, StudentPlan, alice.Plan)

	// Disabled accounts load but are not available.
	bob := l.Get(10002)
	assert.False(t, bob.Active)
	assert.False(t, bob.Available())

	// Records after the sentinel are ignored.
	assert.Nil(t, l.Get(0))
}

func TestLoadStopsAtSentinel(t *testing.T) {
	snapshot := testSnapshot + "10009 Ghost                A 00001.00\n"
	l, err := Load(strings.NewReader(snapshot))
	assert.Nil(t, err)
	assert.Nil(t, l.Get(10009))
}

func TestLoadMalformed(t *testing.T) {
	// Too short.
	_, err := Load(strings.NewReader("10001 Alice A 1.00\n"))
	assert.True(t, errors.Is(err, ErrParse))

	// Non-numeric account number.
	_, err = Load(strings.NewReader("1000x Alice                A 00340.00\n"))
	assert.True(t, errors.Is(err, ErrParse))

	// Garbage balance.
	_, err = Load(strings.NewReader("10001 Alice                A 003xx.00\n"))
	assert.True(t, errors.Is(err, ErrParse))
}

func TestNextNumber(t *testing.T) {
	l := New()
	assert.Equal(t, 10001, l.NextNumber())

	l.Insert(&Account{Number: 10005, HolderName: "Eve", Balance: decimal.Zero, Active: true})
	assert.Equal(t, 10006, l.NextNumber())

	l.Remove(10005)
	assert.Nil(t, l.Get(10005))
	assert.Equal(t, 10001, l.NextNumber())
}

// Loading a snapshot and writing it back reproduces the input byte
// for byte; the newly-created flag is session-local and not encoded.
func TestSnapshotRoundTrip(t *testing.T) {
	l, err := Load(strings.NewReader(testSnapshot))
	assert.Nil(t, err)

	var buf bytes.Buffer
	err = l.WriteSnapshot(&buf)
	assert.Nil(t, err)
	assert.Equal(t, testSnapshot, buf.String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "00000.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "00500.00", FormatAmount(decimal.NewFromInt(500)))
	assert.Equal(t, "00012.50", FormatAmount(decimal.RequireFromString("12.5")))
	assert.Equal(t, "99999.99", FormatAmount(decimal.RequireFromString("99999.99")))
}
