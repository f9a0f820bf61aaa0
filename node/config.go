package node

import (
	"errors"

	"github.com/spf13/viper"
)

// Config carries the file locations and storage settings of a teller
// node. Paths are explicit so tests can run against temporary files
// instead of process-wide defaults.
type Config struct {
	// Path of the account snapshot read at login.
	AccountsPath string
	// Path of the transaction log written at logout.
	TxLogPath string
	// Database backend for the transaction log archive.
	DBBackend string
	// Database file path.
	DBPath string
	// Whether to enable debug logging.
	Debug bool
}

// NewConfig builds a Config from viper with per-field validation.
func NewConfig(v *viper.Viper) (*Config, error) {
	if v.GetString("accounts_path") == "" {
		return nil, errors.New("accounts path is missing")
	}
	if v.GetString("txlog_path") == "" {
		return nil, errors.New("transaction log path is missing")
	}
	if v.GetString("db_backend") != "" && v.GetString("db_path") == "" {
		return nil, errors.New("db path is missing")
	}

	c := Config{
		AccountsPath: v.GetString("accounts_path"),
		TxLogPath:    v.GetString("txlog_path"),
		DBBackend:    v.GetString("db_backend"),
		DBPath:       v.GetString("db_path"),
		Debug:        v.GetBool("debug"),
	}

	return &c, nil
}
