package tx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/tellerledger/go-teller/ledger"
	"github.com/tellerledger/go-teller/log"
)

// ErrFlushed is reported when a recorder is asked to write more than
// once; the transaction log is write-once per session.
var ErrFlushed = errors.New("transaction log already written")

// Recorder serializes a session's committed transactions to the
// fixed-width interchange log. One recorder serves one session.
type Recorder struct {
	path    string
	flushed bool
}

// NewRecorder creates a recorder writing to the given path at flush.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Render encodes the history in commit order, END record included.
func Render(history []*Tx) []byte {
	var buf bytes.Buffer
	for _, t := range history {
		buf.WriteString(formatRecord(t))
		buf.WriteByte('\n')
	}
	end := &Tx{Code: End, Amount: decimal.Zero}
	buf.WriteString(formatRecord(end))
	buf.WriteByte('\n')
	return buf.Bytes()
}

// Write encodes the history to w, END record included.
func Write(w io.Writer, history []*Tx) error {
	if _, err := w.Write(Render(history)); err != nil {
		return fmt.Errorf("write transaction log: %v", err)
	}
	return nil
}

// Flush writes the history to the recorder's path. It may be called
// once; the log is the sole externally observable output of a session.
func (r *Recorder) Flush(history []*Tx) error {
	if r.flushed {
		return ErrFlushed
	}
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create transaction log: %v", err)
	}
	defer f.Close()
	if err := Write(f, history); err != nil {
		return err
	}
	r.flushed = true
	log.Infow("transaction log written", "path", r.path, "records", len(history))
	return nil
}

// Records are fixed width: 2 digit zero-padded code, 20 column
// left-justified holder name, 5 digit zero-padded account number,
// 8 character zero-padded amount and a 2 character miscellaneous
// field, blank when absent.
func formatRecord(t *Tx) string {
	return fmt.Sprintf("%02d %-20s %05d %s %-2s",
		t.Code, t.HolderName, t.Number, ledger.FormatAmount(t.Amount), t.Misc)
}
