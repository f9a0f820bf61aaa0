// Package archive persists flushed transaction logs keyed by session
// ID so the reconciliation backend can replay past sessions without
// scraping log files.
package archive

import (
	"fmt"

	"github.com/tellerledger/go-teller/db"
	"github.com/tellerledger/go-teller/log"
)

const bucket = "TXLOG"

// Archive stores one serialized transaction log per session.
type Archive struct {
	database db.Database
}

// New creates an archive over the given database.
func New(database db.Database) (*Archive, error) {
	if err := database.NewBucket(bucket); err != nil {
		return nil, fmt.Errorf("create archive bucket: %v", err)
	}
	return &Archive{database: database}, nil
}

// Put stores the rendered transaction log under the session ID.
func (a *Archive) Put(sessionID string, txlog []byte) error {
	if err := a.database.Put(bucket, []byte(sessionID), txlog); err != nil {
		return fmt.Errorf("archive session %s: %v", sessionID, err)
	}
	log.Debugf("archived transaction log of session %s", sessionID)
	return nil
}

// Get returns the transaction log archived for the session ID.
func (a *Archive) Get(sessionID string) ([]byte, error) {
	txlog, err := a.database.Get(bucket, []byte(sessionID))
	if err != nil {
		return nil, fmt.Errorf("load archived session %s: %v", sessionID, err)
	}
	return txlog, nil
}

// All returns every archived transaction log.
func (a *Archive) All() ([][]byte, error) {
	logs, err := a.database.GetAll(bucket, nil)
	if err != nil {
		return nil, fmt.Errorf("scan archive: %v", err)
	}
	return logs, nil
}
