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

// Package db defines the key-value store interface used to archive
// flushed transaction logs. Backends register themselves by name so
// the node can be configured with either the durable boltdb store or
// the in-memory store used in tests.
package db

import (
	"fmt"
)

// Database is the generic key-value operation interface a backend
// must provide.
type Database interface {
	NewBucket(name string) error
	Put(bucket string, key, value []byte) error
	Get(bucket string, key []byte) ([]byte, error)
	GetAll(bucket string, keyPrefix []byte) ([][]byte, error)
	Delete(bucket string, key []byte) error
	Close() error
}

// Ctor creates a backend instance rooted at the given path.
type Ctor func(path string) Database

var constructors = make(map[string]Ctor)

// Register makes a backend available under the given name. Backends
// call this from their init function.
func Register(name string, ctor Ctor) {
	constructors[name] = ctor
}

// GetDB returns the constructor of the named backend.
func GetDB(name string) (Ctor, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("database %s not registered", name)
	}
	return ctor, nil
}
