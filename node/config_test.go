package node

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	v := viper.New()
	v.Set("accounts_path", "accounts.txt")
	v.Set("txlog_path", "transactions.txt")
	v.Set("db_backend", "boltdb")
	v.Set("db_path", "teller.db")
	v.Set("debug", true)

	c, err := NewConfig(v)
	assert.Nil(t, err)
	assert.Equal(t, "accounts.txt", c.AccountsPath)
	assert.Equal(t, "transactions.txt", c.TxLogPath)
	assert.Equal(t, "boltdb", c.DBBackend)
	assert.Equal(t, "teller.db", c.DBPath)
	assert.True(t, c.Debug)
}

func TestNewConfigMissingFields(t *testing.T) {
	v := viper.New()
	_, err := NewConfig(v)
	assert.NotNil(t, err)

	v.Set("accounts_path", "accounts.txt")
	_, err = NewConfig(v)
	assert.NotNil(t, err)

	// archive is optional, a config without a backend is valid
	v.Set("txlog_path", "transactions.txt")
	c, err := NewConfig(v)
	assert.Nil(t, err)
	assert.Equal(t, "", c.DBBackend)

	// naming a backend requires a path
	v.Set("db_backend", "boltdb")
	_, err = NewConfig(v)
	assert.NotNil(t, err)
}
