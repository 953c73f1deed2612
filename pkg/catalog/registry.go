// Copyright 2024 replidb Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"sync"

	"github.com/replidb/replidb/pkg/util/dbterror"
)

// Registry is the process-wide set of catalogs plus the shared DDL guard
// set. It is injected by reference; nothing in this module reaches for a
// process global.
type Registry struct {
	mu       sync.RWMutex
	catalogs map[string]*Catalog
	guards   *guardSet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		catalogs: make(map[string]*Catalog),
		guards:   newGuardSet(),
	}
}

// Attach registers a catalog under its database name.
func (r *Registry) Attach(c *Catalog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.catalogs[c.name]; ok {
		return dbterror.ErrLogicalError.GenWithStackByArgs("database " + c.name + " is already attached")
	}
	r.catalogs[c.name] = c
	return nil
}

// Detach removes a catalog from the registry.
func (r *Registry) Detach(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.catalogs, name)
}

// Get returns the catalog of the named database.
func (r *Registry) Get(name string) (*Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.catalogs[name]
	if !ok {
		return nil, dbterror.ErrUnknownDatabase.GenWithStackByArgs(name)
	}
	return c, nil
}

// AcquireGuards locks the DDL guards of all keys in lexicographic order and
// returns the release function.
func (r *Registry) AcquireGuards(keys ...GuardKey) func() {
	return r.guards.acquire(keys...)
}
