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

// Package catalog implements the per-process local catalog: tables and
// dictionaries with UUID identity and on-disk metadata files. Every mutation
// commits the statement's metadata transaction between preparing and
// publishing the local change, so a coordination-store refusal leaves the
// catalog untouched.
package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
	"github.com/replidb/replidb/pkg/util/logutil"
)

const (
	metadataFileSuffix = ".sql"
	detachedFileSuffix = ".sql.detached"
	tmpFileSuffix      = ".sql.tmp"
)

// Table is one object of the catalog. Its schema lives in the definition;
// the catalog itself has no runtime storage engine.
type Table struct {
	Name string
	Def  *objdef.Definition
}

// UUID returns the stable identity of the table.
func (t *Table) UUID() uuid.UUID { return t.Def.UUID }

// IsDictionary reports whether the object is a dictionary.
func (t *Table) IsDictionary() bool { return t.Def.IsDictionary() }

// StoresDataOnDisk reports whether dropping the table loses on-disk data.
func (t *Table) StoresDataOnDisk() bool { return objdef.StoresDataOnDisk(t.Def.Engine) }

// Catalog is an atomic local catalog of one database.
type Catalog struct {
	name   string
	uuid   uuid.UUID
	dir    string // empty for shadow catalogs
	logger *zap.Logger

	mu       sync.RWMutex
	tables   map[string]*Table
	dropping map[uuid.UUID]struct{}
	dropped  *sync.Cond
}

// Open opens (or creates) the catalog of database name with its metadata
// directory at dir, loading every stored object definition.
func Open(name string, dbUUID uuid.UUID, dir string) (*Catalog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Trace(err)
	}
	c := newCatalog(name, dbUUID, dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Trace(err)
	}
	for _, entry := range entries {
		fname := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(fname, metadataFileSuffix) {
			if strings.HasSuffix(fname, tmpFileSuffix) {
				// Leftover of an interrupted commit; the change never
				// became visible, so discard it.
				_ = os.Remove(filepath.Join(dir, fname))
			}
			continue
		}
		escaped := strings.TrimSuffix(fname, metadataFileSuffix)
		tableName, err := objdef.UnescapeForFileName(escaped)
		if err != nil {
			return nil, errors.Annotatef(err, "metadata file %s", fname)
		}
		text, err := os.ReadFile(filepath.Join(dir, fname))
		if err != nil {
			return nil, errors.Trace(err)
		}
		def, err := objdef.ParseMetadata(string(text))
		if err != nil {
			return nil, errors.Annotatef(err, "metadata file %s", fname)
		}
		c.tables[tableName] = &Table{Name: tableName, Def: def}
	}
	return c, nil
}

// NewShadow returns a catalog that keeps no metadata files, so object UUIDs
// are not persistent and can be reused. Recovery moves broken tables into a
// shadow catalog.
func NewShadow(name string) *Catalog {
	return newCatalog(name, uuid.New(), "")
}

func newCatalog(name string, dbUUID uuid.UUID, dir string) *Catalog {
	c := &Catalog{
		name:     name,
		uuid:     dbUUID,
		dir:      dir,
		logger:   logutil.BgLogger().With(zap.String("catalog", name)),
		tables:   make(map[string]*Table),
		dropping: make(map[uuid.UUID]struct{}),
	}
	c.dropped = sync.NewCond(&c.mu)
	return c
}

// Name returns the database name.
func (c *Catalog) Name() string { return c.name }

// UUID returns the database UUID.
func (c *Catalog) UUID() uuid.UUID { return c.uuid }

// Empty reports whether the catalog holds no objects.
func (c *Catalog) Empty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables) == 0
}

// IsTableExist reports whether an object with this name exists.
func (c *Catalog) IsTableExist(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.tables[name]
	return ok
}

// IsDictionaryExist reports whether a dictionary with this name exists.
func (c *Catalog) IsDictionaryExist(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[name]
	return ok && t.IsDictionary()
}

// GetTable returns the named object.
func (c *Catalog) GetTable(name string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[name]
	return t, ok
}

// UUIDOf returns the UUID of the named object.
func (c *Catalog) UUIDOf(name string) (uuid.UUID, bool) {
	t, ok := c.GetTable(name)
	if !ok {
		return uuid.Nil, false
	}
	return t.UUID(), true
}

// IterateTables calls fn for every object in name order until fn returns
// false. fn must not mutate the catalog.
func (c *Catalog) IterateTables(fn func(t *Table) bool) {
	c.mu.RLock()
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	tables := make([]*Table, 0, len(names))
	for _, name := range names {
		tables = append(tables, c.tables[name])
	}
	c.mu.RUnlock()
	for _, t := range tables {
		if !fn(t) {
			return
		}
	}
}

// ReadMetadataFile returns the stored definition text of the named object.
func (c *Catalog) ReadMetadataFile(name string) (string, error) {
	if c.dir == "" {
		t, ok := c.GetTable(name)
		if !ok {
			return "", dbterror.ErrUnknownTable.GenWithStackByArgs(name)
		}
		return t.Def.Text, nil
	}
	text, err := os.ReadFile(c.metadataFilePath(name))
	if os.IsNotExist(err) {
		return "", dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	if err != nil {
		return "", errors.Trace(err)
	}
	return string(text), nil
}

func (c *Catalog) metadataFilePath(name string) string {
	return filepath.Join(c.dir, objdef.EscapeForFileName(name)+metadataFileSuffix)
}

// commitMetaTx commits the statement's metadata transaction, if any. It
// runs after the local change is prepared and before it is published, which
// makes the store's multi-op the atomicity gate of the whole statement.
func commitMetaTx(se *sessionctx.Session) error {
	if se == nil {
		return nil
	}
	txn := se.MetadataTransaction()
	if txn == nil || txn.Committed() {
		return nil
	}
	return errors.Trace(txn.Commit())
}

// CreateTable adds a new object from its normalized definition.
func (c *Catalog) CreateTable(se *sessionctx.Session, name string, def *objdef.Definition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tables[name]; ok {
		return dbterror.ErrTableExists.GenWithStackByArgs(name)
	}
	var tmp, final string
	if c.dir != "" {
		final = c.metadataFilePath(name)
		tmp = filepath.Join(c.dir, objdef.EscapeForFileName(name)+tmpFileSuffix)
		if err := os.WriteFile(tmp, []byte(def.Text), 0o644); err != nil {
			return errors.Trace(err)
		}
	}
	if err := commitMetaTx(se); err != nil {
		if tmp != "" {
			_ = os.Remove(tmp)
		}
		return err
	}
	if tmp != "" {
		if err := os.Rename(tmp, final); err != nil {
			return errors.Trace(err)
		}
	}
	c.tables[name] = &Table{Name: name, Def: def}
	return nil
}

// CreateDictionary adds a dictionary object.
func (c *Catalog) CreateDictionary(se *sessionctx.Session, name string, def *objdef.Definition) error {
	if !def.IsDictionary() {
		return dbterror.ErrLogicalError.GenWithStackByArgs("definition of " + name + " is not a dictionary")
	}
	return c.CreateTable(se, name, def)
}

// DropTable removes an object and its metadata file.
func (c *Catalog) DropTable(se *sessionctx.Session, name string) error {
	c.mu.Lock()
	t, ok := c.tables[name]
	if !ok {
		c.mu.Unlock()
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	c.dropping[t.UUID()] = struct{}{}
	c.mu.Unlock()

	finish := func() {
		c.mu.Lock()
		delete(c.dropping, t.UUID())
		c.dropped.Broadcast()
		c.mu.Unlock()
	}

	if err := commitMetaTx(se); err != nil {
		finish()
		return err
	}
	if c.dir != "" {
		if err := os.Remove(c.metadataFilePath(name)); err != nil && !os.IsNotExist(err) {
			finish()
			return errors.Trace(err)
		}
	}
	c.mu.Lock()
	delete(c.tables, name)
	delete(c.dropping, t.UUID())
	c.dropped.Broadcast()
	c.mu.Unlock()
	return nil
}

// RemoveDictionary removes a dictionary object.
func (c *Catalog) RemoveDictionary(se *sessionctx.Session, name string) error {
	if !c.IsDictionaryExist(name) {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	return c.DropTable(se, name)
}

// DetachTablePermanently removes an object from the catalog but keeps its
// metadata file under a detached marker so it is not loaded again.
func (c *Catalog) DetachTablePermanently(se *sessionctx.Session, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tables[name]; !ok {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	if err := commitMetaTx(se); err != nil {
		return err
	}
	if c.dir != "" {
		src := c.metadataFilePath(name)
		dst := filepath.Join(c.dir, objdef.EscapeForFileName(name)+detachedFileSuffix)
		if err := os.Rename(src, dst); err != nil && !os.IsNotExist(err) {
			return errors.Trace(err)
		}
	}
	delete(c.tables, name)
	return nil
}

// CommitAlter replaces the stored definition of an object.
func (c *Catalog) CommitAlter(se *sessionctx.Session, name string, def *objdef.Definition) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tables[name]
	if !ok {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	var tmp string
	if c.dir != "" {
		tmp = filepath.Join(c.dir, objdef.EscapeForFileName(name)+tmpFileSuffix)
		if err := os.WriteFile(tmp, []byte(def.Text), 0o644); err != nil {
			return errors.Trace(err)
		}
	}
	if err := commitMetaTx(se); err != nil {
		if tmp != "" {
			_ = os.Remove(tmp)
		}
		return err
	}
	if tmp != "" {
		if err := os.Rename(tmp, c.metadataFilePath(name)); err != nil {
			return errors.Trace(err)
		}
	}
	t.Def = def
	return nil
}

// RenameTable moves an object to toName in the target catalog. With
// exchange both objects must exist and they swap names atomically.
func (c *Catalog) RenameTable(se *sessionctx.Session, name string, to *Catalog, toName string, exchange bool) error {
	lockBoth(c, to)
	defer unlockBoth(c, to)

	src, ok := c.tables[name]
	if !ok {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	dst, dstExists := to.tables[toName]
	if exchange && !dstExists {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(toName)
	}
	if !exchange && dstExists {
		return dbterror.ErrTableExists.GenWithStackByArgs(toName)
	}

	if err := commitMetaTx(se); err != nil {
		return err
	}

	if err := c.removeFileLocked(name); err != nil {
		return err
	}
	if exchange {
		if err := to.removeFileLocked(toName); err != nil {
			return err
		}
	}
	if err := to.writeFileLocked(toName, src.Def.Text); err != nil {
		return err
	}
	if exchange {
		if err := c.writeFileLocked(name, dst.Def.Text); err != nil {
			return err
		}
	}

	delete(c.tables, name)
	to.tables[toName] = &Table{Name: toName, Def: src.Def}
	if exchange {
		c.tables[name] = &Table{Name: name, Def: dst.Def}
	}
	return nil
}

func lockBoth(a, b *Catalog) {
	if a == b {
		a.mu.Lock()
		return
	}
	if a.name < b.name {
		a.mu.Lock()
		b.mu.Lock()
	} else {
		b.mu.Lock()
		a.mu.Lock()
	}
}

func unlockBoth(a, b *Catalog) {
	a.mu.Unlock()
	if a != b {
		b.mu.Unlock()
	}
}

func (c *Catalog) removeFileLocked(name string) error {
	if c.dir == "" {
		return nil
	}
	if err := os.Remove(c.metadataFilePath(name)); err != nil && !os.IsNotExist(err) {
		return errors.Trace(err)
	}
	return nil
}

func (c *Catalog) writeFileLocked(name, text string) error {
	if c.dir == "" {
		return nil
	}
	return errors.Trace(os.WriteFile(c.metadataFilePath(name), []byte(text), 0o644))
}

// WaitTableFinallyDropped blocks until the UUID of a dropped table is fully
// released by the catalog.
func (c *Catalog) WaitTableFinallyDropped(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for {
		if _, ok := c.dropping[id]; !ok {
			return
		}
		c.dropped.Wait()
	}
}

// DropAll removes every object and its metadata file. Used when the whole
// database is dropped.
func (c *Catalog) DropAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name := range c.tables {
		if err := c.removeFileLocked(name); err != nil {
			return err
		}
		delete(c.tables, name)
	}
	return nil
}

// Shutdown quiesces the catalog. The apply worker must be stopped first so
// no secondary query races the teardown.
func (c *Catalog) Shutdown() {
	c.logger.Info("catalog shut down")
}
