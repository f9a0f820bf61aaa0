package boltdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoltDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	database := New(path)
	defer database.Close()
	defer os.Remove(path)

	err := database.NewBucket("TEST")
	assert.Nil(t, err)

	// test get nonexistent key
	_, err = database.Get("TEST", []byte("none"))
	assert.NotNil(t, err)

	// test set key/value pair
	err = database.Put("TEST", []byte("testKey"), []byte("testValue"))
	assert.Nil(t, err)

	// test get value of key
	val, err := database.Get("TEST", []byte("testKey"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("testValue"), val)

	// test prefix scan
	err = database.Put("TEST", []byte("testKey2"), []byte("testValue2"))
	assert.Nil(t, err)
	vals, err := database.GetAll("TEST", []byte("testKey"))
	assert.Nil(t, err)
	assert.Equal(t, 2, len(vals))

	// test delete
	err = database.Delete("TEST", []byte("testKey"))
	assert.Nil(t, err)
	_, err = database.Get("TEST", []byte("testKey"))
	assert.NotNil(t, err)
}
