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

// Package replicated implements the replicated database catalog: a database
// whose schema is kept in lock-step across replicas by funneling every
// DDL statement through an ordered log in a coordination store.
package replicated

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/ddlworker"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/util/dbterror"
	"github.com/replidb/replidb/pkg/util/logutil"
)

// Config describes one replica of a replicated database.
type Config struct {
	// Name is the local database name.
	Name string
	// StorePath is the database root in the coordination store. It must
	// begin with '/' (the store may be rooted under a chroot prefix) and
	// must not end with '/'; Open normalizes it.
	StorePath string
	// Shard and Replica name this replica's slot. Neither may contain
	// '/' or '|'.
	Shard   string
	Replica string
	// Host and TCPPort advertise this process to the cluster.
	Host    string
	TCPPort int
	// DataDir holds the local metadata files of the database.
	DataDir string
}

// Database is one replica of a replicated database.
type Database struct {
	cfg       Config
	storePath string
	store     coordination.Client
	registry  *catalog.Registry
	catalog   *catalog.Catalog

	replicaPath string
	hostID      string

	worker *ddlworker.Worker
	logger *zap.Logger

	mu     sync.Mutex
	broken *catalog.Catalog
	rng    *rand.Rand
}

// databaseUUIDFile persists the database UUID next to the metadata files.
const databaseUUIDFile = "database.uuid"

// Open validates the configuration, bootstraps the store layout if needed
// and registers the replica. The apply worker is created but not started;
// call Startup.
func Open(cfg Config, store coordination.Client, registry *catalog.Registry) (*Database, error) {
	storePath, err := validateConfig(&cfg)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, dbterror.ErrNoCoordination.GenWithStackByArgs()
	}
	exists, err := store.Exists(storePath)
	if err != nil {
		return nil, dbterror.ErrNoCoordination.GenWithStackByArgs()
	}

	dbUUID, err := loadOrCreateDatabaseUUID(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Open(cfg.Name, dbUUID, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if err := registry.Attach(cat); err != nil {
		return nil, err
	}

	db := &Database{
		cfg:       cfg,
		storePath: storePath,
		store:     store,
		registry:  registry,
		catalog:   cat,
		logger: logutil.BgLogger().With(
			zap.String("database", cfg.Name),
			zap.String("replica", cfg.Shard+"|"+cfg.Replica)),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	db.hostID = objdef.EscapeForFileName(cfg.Host) + ":" + strconv.Itoa(cfg.TCPPort) + ":" + dbUUID.String()
	db.replicaPath = ddlworker.ReplicaPath(storePath, db.FullReplicaName())

	if !exists {
		if err := db.createDatabaseNodes(); err != nil {
			registry.Detach(cfg.Name)
			return nil, err
		}
	}
	if err := db.registerReplica(); err != nil {
		registry.Detach(cfg.Name)
		return nil, err
	}

	db.worker = ddlworker.New(store, storePath, db.replicaPath, db.hostID, db)
	return db, nil
}

func validateConfig(cfg *Config) (string, error) {
	if cfg.StorePath == "" || cfg.Shard == "" || cfg.Replica == "" {
		return "", dbterror.ErrBadArguments.GenWithStackByArgs("store path, shard and replica names must be non-empty")
	}
	if strings.ContainsAny(cfg.Shard, "/|") || strings.ContainsAny(cfg.Replica, "/|") {
		return "", dbterror.ErrBadArguments.GenWithStackByArgs("shard and replica names should not contain '/' or '|'")
	}
	storePath := cfg.StorePath
	storePath = strings.TrimRight(storePath, "/")
	if storePath == "" {
		return "", dbterror.ErrBadArguments.GenWithStackByArgs("store path must name a node below the root")
	}
	// With a chroot prefix the store concatenates without a separator, so
	// the path has to carry its own leading '/'.
	if storePath[0] != '/' {
		storePath = "/" + storePath
	}
	return storePath, nil
}

func loadOrCreateDatabaseUUID(dir string) (uuid.UUID, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return uuid.Nil, errors.Trace(err)
	}
	path := filepath.Join(dir, databaseUUIDFile)
	data, err := os.ReadFile(path)
	if err == nil {
		id, perr := uuid.Parse(strings.TrimSpace(string(data)))
		if perr != nil {
			return uuid.Nil, dbterror.ErrLogicalError.GenWithStack("malformed database uuid file %s: %v", path, perr)
		}
		return id, nil
	}
	if !os.IsNotExist(err) {
		return uuid.Nil, errors.Trace(err)
	}
	id := uuid.New()
	if err := os.WriteFile(path, []byte(id.String()+"\n"), 0o644); err != nil {
		return uuid.Nil, errors.Trace(err)
	}
	return id, nil
}

// FullReplicaName returns shard|replica, the registry node name of this
// replica.
func (db *Database) FullReplicaName() string {
	return db.cfg.Shard + "|" + db.cfg.Replica
}

// ParseFullReplicaName splits shard|replica.
func ParseFullReplicaName(name string) (shard, replica string, err error) {
	parts := strings.Split(name, "|")
	if len(parts) != 2 {
		return "", "", dbterror.ErrLogicalError.GenWithStackByArgs("incorrect replica identifier: " + name)
	}
	return parts[0], parts[1], nil
}

// HostID returns host:tcp_port:database_uuid of this process.
func (db *Database) HostID() string { return db.hostID }

// DatabaseName implements ddlworker.Executor.
func (db *Database) DatabaseName() string { return db.cfg.Name }

// StorePath returns the normalized database root in the coordination store.
func (db *Database) StorePath() string { return db.storePath }

// Catalog exposes the local catalog of the database.
func (db *Database) Catalog() *catalog.Catalog { return db.catalog }

// createDatabaseNodes bootstraps the store layout. Multiple replicas may
// run it concurrently; a node-exists outcome means somebody else won and is
// not an error.
func (db *Database) createDatabaseNodes() error {
	if err := db.store.CreateAncestors(db.storePath); err != nil {
		return errors.Trace(err)
	}
	counterPrefix := ddlworker.CounterPrefix(db.storePath)
	ops := []coordination.Op{
		coordination.MakeCreateOp(db.storePath, "", coordination.ModePersistent),
		coordination.MakeCreateOp(ddlworker.LogPath(db.storePath), "", coordination.ModePersistent),
		coordination.MakeCreateOp(ddlworker.ReplicasPath(db.storePath), "", coordination.ModePersistent),
		coordination.MakeCreateOp(ddlworker.CounterPath(db.storePath), "", coordination.ModePersistent),
		// Creating and deleting one child of counter establishes its
		// sequential numbering base.
		coordination.MakeCreateOp(counterPrefix, "", coordination.ModePersistent),
		coordination.MakeRemoveOp(counterPrefix, coordination.AnyVersion),
		coordination.MakeCreateOp(ddlworker.MetadataPath(db.storePath), "", coordination.ModePersistent),
		coordination.MakeCreateOp(ddlworker.MaxLogPtrPath(db.storePath), "1", coordination.ModePersistent),
		coordination.MakeCreateOp(ddlworker.LogsToKeepPath(db.storePath), strconv.Itoa(ddlworker.DefaultLogsToKeep), coordination.ModePersistent),
	}
	err := db.store.Multi(ops)
	if err == nil || coordination.IsNodeExists(err) {
		return nil
	}
	return errors.Trace(err)
}

// registerReplica resumes an existing registration or creates the replica
// nodes, racing fairly with other processes claiming the same name.
func (db *Database) registerReplica() error {
	value, exists, err := db.store.TryGet(db.replicaPath)
	if err != nil {
		return errors.Trace(err)
	}
	if exists {
		if value != db.hostID {
			return dbterror.ErrReplicaExists.GenWithStackByArgs(
				db.cfg.Replica, db.cfg.Shard, db.storePath, value, db.hostID)
		}
		return nil
	}
	return db.createReplicaNodes()
}

// createReplicaNodes registers the replica and appends its join marker to
// the log in one multi-op, so the replica's first visible log position is
// well-defined. The max_log_ptr bump is version-checked; a lost race with a
// concurrent enqueue burns the id and retries.
func (db *Database) createReplicaNodes() error {
	entry := &ddlworker.LogEntry{Version: 1, Initiator: db.hostID}
	for i := 0; i < 10; i++ {
		counterPath, err := db.store.Create(ddlworker.CounterPrefix(db.storePath), "", coordination.ModeEphemeralSequential)
		if err != nil {
			return errors.Trace(err)
		}
		id, err := ddlworker.ParseCounterID(counterPath)
		if err != nil {
			return err
		}
		_, stat, err := db.store.Get(ddlworker.MaxLogPtrPath(db.storePath))
		if err != nil {
			return errors.Trace(err)
		}
		ops := []coordination.Op{
			coordination.MakeCreateOp(db.replicaPath, db.hostID, coordination.ModePersistent),
			coordination.MakeCreateOp(ddlworker.LogPtrPath(db.replicaPath), "0", coordination.ModePersistent),
			coordination.MakeCreateOp(ddlworker.EntryPath(db.storePath, id), entry.String(), coordination.ModePersistent),
			coordination.MakeSetOp(ddlworker.MaxLogPtrPath(db.storePath), strconv.FormatUint(uint64(id), 10), stat.Version),
			coordination.MakeRemoveOp(counterPath, coordination.AnyVersion),
		}
		err = db.store.Multi(ops)
		if err == nil {
			return nil
		}
		_ = db.store.TryRemove(counterPath, coordination.AnyVersion)
		if coordination.IsBadVersion(err) {
			continue
		}
		if coordination.IsNodeExists(err) {
			// Somebody registered the same full replica name concurrently.
			value, _, gerr := db.store.TryGet(db.replicaPath)
			if gerr == nil && value == db.hostID {
				return nil
			}
			return dbterror.ErrReplicaExists.GenWithStackByArgs(
				db.cfg.Replica, db.cfg.Shard, db.storePath, value, db.hostID)
		}
		return errors.Trace(err)
	}
	return dbterror.ErrReplicationFailed.GenWithStackByArgs("cannot register replica: too many version conflicts")
}

// Startup reconciles the replica with the authoritative state and starts
// the apply worker.
func (db *Database) Startup() error {
	return db.worker.Startup()
}

// StopReplication stops the apply worker without touching the catalog.
func (db *Database) StopReplication() {
	if db.worker != nil {
		db.worker.Shutdown()
	}
}

// Shutdown stops the apply worker first and only then quiesces the local
// catalog, so no secondary query races the teardown.
func (db *Database) Shutdown() {
	db.StopReplication()
	db.catalog.Shutdown()
}

// Drop tombstones the replica, frees all local objects and removes the
// replica subtree. The last replica to leave removes the whole database
// subtree; that final cleanup is best-effort.
func (db *Database) Drop() error {
	if err := db.store.Set(db.replicaPath, ddlworker.DroppedMark, coordination.AnyVersion); err != nil {
		return errors.Trace(err)
	}
	if err := db.catalog.DropAll(); err != nil {
		return err
	}
	db.registry.Detach(db.cfg.Name)
	db.mu.Lock()
	if db.broken != nil {
		db.registry.Detach(db.broken.Name())
		db.broken = nil
	}
	db.mu.Unlock()
	if err := db.store.TryRemoveRecursive(db.replicaPath); err != nil {
		db.logger.Warn("removing replica subtree failed", zap.Error(err))
		return nil
	}
	err := db.store.TryRemove(ddlworker.ReplicasPath(db.storePath), coordination.AnyVersion)
	if err == nil {
		// We were the last replica, remove all metadata.
		if err := db.store.TryRemoveRecursive(db.storePath); err != nil {
			db.logger.Warn("removing database subtree failed", zap.Error(err))
		}
	} else if !coordination.IsNotEmpty(err) && !coordination.IsNoNode(err) {
		db.logger.Warn("removing replica registry failed", zap.Error(err))
	}
	return nil
}
