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

package replicated

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/ddlworker"
	"github.com/replidb/replidb/pkg/metrics"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

const (
	// brokenTablesSuffix names the shadow database that receives tables
	// recovery cannot keep but must not destroy.
	brokenTablesSuffix = "_broken_tables"
	// maxSnapshotRetries bounds the consistent metadata snapshot loop.
	maxSnapshotRetries = 10
)

// RecoverLostReplica brings the replica from an arbitrary local state to
// the authoritative snapshot. It implements ddlworker.Executor and runs
// before the apply worker starts, so no statement races it.
func (db *Database) RecoverLostReplica(ourLogPtr, maxLogPtr uint32) error {
	if ourLogPtr == 0 {
		db.logger.Info("will create new replica from log pointer", zap.Uint32("maxLogPtr", maxLogPtr))
	} else {
		db.logger.Warn("will recover replica with staled log pointer",
			zap.Uint32("logPtr", ourLogPtr), zap.Uint32("maxLogPtr", maxLogPtr))
	}

	snapshot, maxLogPtr, err := db.tryGetConsistentMetadataSnapshot(maxLogPtr)
	if err != nil {
		return err
	}

	var tablesToDetach []string
	totalTables := 0
	var iterErr error
	db.catalog.IterateTables(func(t *catalog.Table) bool {
		totalTables++
		storeText, inStore := snapshot[t.Name]
		if !inStore {
			tablesToDetach = append(tablesToDetach, t.Name)
			return true
		}
		localText, err := db.catalog.ReadMetadataFile(t.Name)
		if err != nil {
			iterErr = err
			return false
		}
		if localText == storeText {
			return true
		}
		// Self-replicating tables are identified by UUID only; their
		// definitions may drift and the engine reconciles the data.
		storeDef, err := objdef.ParseMetadata(storeText)
		if err == nil && storeDef.IsReplicated() && t.Def.IsReplicated() && storeDef.UUID == t.UUID() {
			return true
		}
		tablesToDetach = append(tablesToDetach, t.Name)
		return true
	})
	if iterErr != nil {
		return iterErr
	}

	if totalTables < 2*len(tablesToDetach) {
		return dbterror.ErrReplicationFailed.GenWithStackByArgs(fmt.Sprintf(
			"too many tables to recreate: %d of %d", len(tablesToDetach), totalTables))
	}

	if len(tablesToDetach) > 0 {
		db.logger.Warn("will recreate broken tables to recover replica",
			zap.Int("count", len(tablesToDetach)))
	}

	var droppedDicts, droppedTables, movedTables int
	var droppedUUIDs []uuid.UUID
	for _, name := range tablesToDetach {
		if err := db.detachBrokenTable(name, maxLogPtr, &droppedDicts, &droppedTables, &movedTables, &droppedUUIDs); err != nil {
			return err
		}
	}
	if len(tablesToDetach) > 0 {
		db.logger.Warn("cleaned outdated objects",
			zap.Int("total", len(tablesToDetach)),
			zap.Int("droppedDictionaries", droppedDicts),
			zap.Int("droppedTables", droppedTables),
			zap.Int("movedTables", movedTables))
	}

	for _, id := range droppedUUIDs {
		db.catalog.WaitTableFinallyDropped(id)
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if db.catalog.IsTableExist(name) {
			continue
		}
		if err := db.createFromStoreMetadata(name, snapshot[name]); err != nil {
			return err
		}
	}

	return errors.Trace(db.store.Set(
		ddlworker.LogPtrPath(db.replicaPath),
		strconv.FormatUint(uint64(maxLogPtr), 10),
		coordination.AnyVersion))
}

// detachBrokenTable moves one diverged object out of the way: dictionaries
// and tables without on-disk data are dropped, everything else is renamed
// into the shadow database under a synthetic name.
func (db *Database) detachBrokenTable(name string, maxLogPtr uint32, droppedDicts, droppedTables, movedTables *int, droppedUUIDs *[]uuid.UUID) error {
	toDBName := db.cfg.Name + brokenTablesSuffix
	toName := fmt.Sprintf("%s_%d_%d", name, maxLogPtr, db.rng.Intn(1000))
	// db.cfg.Name < toDBName holds because the suffix strictly extends the
	// name, so the guard order below matches the lexicographic contract.
	release := db.registry.AcquireGuards(
		catalog.GuardKey{DB: db.cfg.Name, Table: name},
		catalog.GuardKey{DB: toDBName, Table: toName})
	defer release()

	if db.catalog.Name() != db.cfg.Name {
		return dbterror.ErrUnknownDatabase.GenWithStackByArgs(db.cfg.Name)
	}
	t, ok := db.catalog.GetTable(name)
	if !ok {
		return nil
	}
	se := sessionctx.NewSecondary(db.cfg.Name)
	switch {
	case t.IsDictionary():
		db.logger.Debug("dropping broken dictionary", zap.String("dictionary", name))
		if err := db.catalog.RemoveDictionary(se, name); err != nil {
			return err
		}
		metrics.RecoveredTables.WithLabelValues("dropped_dictionary").Inc()
		*droppedDicts++
	case !t.StoresDataOnDisk():
		db.logger.Debug("dropping broken table without on-disk data", zap.String("table", name))
		*droppedUUIDs = append(*droppedUUIDs, t.UUID())
		if err := db.catalog.DropTable(se, name); err != nil {
			return err
		}
		metrics.RecoveredTables.WithLabelValues("dropped_table").Inc()
		*droppedTables++
	default:
		db.logger.Debug("moving broken table to the shadow database",
			zap.String("table", name), zap.String("to", toDBName+"."+toName))
		broken, err := db.brokenTablesCatalog()
		if err != nil {
			return err
		}
		if err := db.catalog.RenameTable(se, name, broken, toName, false); err != nil {
			return err
		}
		metrics.RecoveredTables.WithLabelValues("moved_table").Inc()
		*movedTables++
	}
	return nil
}

// brokenTablesCatalog lazily creates the shadow database. A shadow catalog
// does not persist object UUIDs, so the originals can be reused.
func (db *Database) brokenTablesCatalog() (*catalog.Catalog, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.broken != nil {
		return db.broken, nil
	}
	name := db.cfg.Name + brokenTablesSuffix
	if c, err := db.registry.Get(name); err == nil {
		db.broken = c
		return c, nil
	}
	c := catalog.NewShadow(name)
	if err := db.registry.Attach(c); err != nil {
		return nil, err
	}
	db.broken = c
	return c, nil
}

// createFromStoreMetadata applies one missing object from the snapshot as a
// secondary query.
func (db *Database) createFromStoreMetadata(name, text string) error {
	def, err := objdef.ParseMetadata(text)
	if err != nil {
		return dbterror.ErrLogicalError.GenWithStack(
			"got unexpected object definition from %s: %v", db.metadataNodePath(name), err)
	}
	release := db.registry.AcquireGuards(catalog.GuardKey{DB: db.cfg.Name, Table: name})
	defer release()
	se := sessionctx.NewSecondary(db.cfg.Name)
	db.logger.Info("creating object from the authoritative snapshot", zap.String("name", name))
	if def.IsDictionary() {
		return db.createDictionary(se, name, def)
	}
	return db.createTable(se, name, def)
}

// tryGetConsistentMetadataSnapshot reads /metadata under a max_log_ptr
// stability check: the snapshot is consistent only if the pointer did not
// move while the values were fetched and every fetch succeeded.
func (db *Database) tryGetConsistentMetadataSnapshot(maxLogPtr uint32) (map[string]string, uint32, error) {
	for iteration := 1; iteration <= maxSnapshotRetries; iteration++ {
		db.logger.Debug("trying to get consistent metadata snapshot", zap.Uint32("maxLogPtr", maxLogPtr))
		names, _, err := db.store.GetChildren(ddlworker.MetadataPath(db.storePath))
		if err != nil {
			return nil, 0, errors.Trace(err)
		}
		futures := make([]<-chan coordination.TryGetResult, len(names))
		for i, name := range names {
			futures[i] = db.store.AsyncTryGet(ddlworker.MetadataPath(db.storePath) + "/" + name)
		}
		snapshot := make(map[string]string, len(names))
		for i := range names {
			res := <-futures[i]
			if res.Err != nil || !res.Exists {
				break
			}
			name, err := objdef.UnescapeForFileName(names[i])
			if err != nil {
				return nil, 0, err
			}
			snapshot[name] = res.Value
		}

		value, _, err := db.store.Get(ddlworker.MaxLogPtrPath(db.storePath))
		if err != nil {
			return nil, 0, errors.Trace(err)
		}
		newMaxLogPtr64, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return nil, 0, dbterror.ErrLogicalError.GenWithStack("malformed max_log_ptr: %v", err)
		}
		newMaxLogPtr := uint32(newMaxLogPtr64)

		if newMaxLogPtr == maxLogPtr && len(snapshot) == len(names) {
			db.logger.Debug("got consistent metadata snapshot", zap.Uint32("maxLogPtr", maxLogPtr))
			return snapshot, maxLogPtr, nil
		}
		metrics.SnapshotRetries.Inc()
		if maxLogPtr < newMaxLogPtr {
			db.logger.Debug("log pointer moved, will retry",
				zap.Uint32("from", maxLogPtr), zap.Uint32("to", newMaxLogPtr))
			maxLogPtr = newMaxLogPtr
		} else {
			db.logger.Debug("cannot get metadata of some tables, will retry")
		}
	}
	return nil, 0, dbterror.ErrReplicationFailed.GenWithStackByArgs("cannot get consistent metadata snapshot")
}
