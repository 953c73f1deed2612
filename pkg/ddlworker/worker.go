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

// Package ddlworker implements the log apply worker: the single background
// task that drains the database's DDL log in id order, and the enqueue
// protocol that appends to it.
package ddlworker

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pingcap/errors"
	atomicutil "go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/metrics"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
	"github.com/replidb/replidb/pkg/util/logutil"
)

const (
	// maxEnqueueRetries bounds the id-allocation loop of an enqueue.
	maxEnqueueRetries = 10
	// pollInterval is the fallback cadence of the drain loop when the
	// child watch misses.
	pollInterval = time.Second
	// statusPollInterval is the cadence of the replica status wait.
	statusPollInterval = 100 * time.Millisecond
)

// Executor is the narrow surface the worker needs from its owning database.
// The worker holds it only for callbacks; the database owns the worker and
// shuts it down before its own teardown.
type Executor interface {
	// DatabaseName returns the local database name for secondary sessions.
	DatabaseName() string
	// ApplyEntryQuery executes a log entry's query locally.
	ApplyEntryQuery(se *sessionctx.Session, query string) error
	// RecoverLostReplica reconciles the local catalog with the
	// authoritative snapshot and seals the replica's log pointer.
	RecoverLostReplica(ourLogPtr, maxLogPtr uint32) error
}

// ReplicaStatus is one row of the per-entry completion report.
type ReplicaStatus struct {
	Replica  string `json:"replica"`
	Finished bool   `json:"finished"`
	Dropped  bool   `json:"dropped"`
	Error    string `json:"error,omitempty"`
}

// Worker drains the DDL log of one replicated database.
type Worker struct {
	store       coordination.Client
	storePath   string
	replicaPath string
	hostID      string
	exec        Executor
	logger      *zap.Logger

	active atomicutil.Bool

	// applyMu serializes entry application between the drain loop and the
	// synchronous apply of an enqueue.
	applyMu    sync.Mutex
	appliedPtr uint32

	quit    chan struct{}
	wg      sync.WaitGroup
	started bool
}

// New returns a stopped worker.
func New(store coordination.Client, storePath, replicaPath, hostID string, exec Executor) *Worker {
	return &Worker{
		store:       store,
		storePath:   storePath,
		replicaPath: replicaPath,
		hostID:      hostID,
		exec:        exec,
		logger: logutil.BgLogger().With(
			zap.String("component", "ddlworker"),
			zap.String("replica", replicaPath)),
		quit: make(chan struct{}),
	}
}

// GetCommonHostID returns the host-id of the owning replica.
func (w *Worker) GetCommonHostID() string { return w.hostID }

// IsCurrentlyActive reports whether the drain loop runs.
func (w *Worker) IsCurrentlyActive() bool { return w.active.Load() }

// Startup reconciles the replica with the log, then starts the drain loop.
// A worker stopped with Shutdown can be started again.
func (w *Worker) Startup() error {
	if err := w.initializeReplication(); err != nil {
		return err
	}
	w.quit = make(chan struct{})
	w.started = true
	w.active.Store(true)
	w.wg.Add(1)
	go w.loop()
	return nil
}

// Shutdown stops the drain loop and waits for it.
func (w *Worker) Shutdown() {
	if !w.started {
		return
	}
	w.started = false
	w.active.Store(false)
	close(w.quit)
	w.wg.Wait()
	w.logger.Info("ddl worker stopped")
}

func (w *Worker) readUint32(path string) (uint32, error) {
	value, _, err := w.store.Get(path)
	if err != nil {
		return 0, errors.Trace(err)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, dbterror.ErrLogicalError.GenWithStack("malformed integer at %s: %v", path, err)
	}
	return uint32(n), nil
}

func (w *Worker) initializeReplication() error {
	ourPtr, err := w.readUint32(LogPtrPath(w.replicaPath))
	if err != nil {
		return err
	}
	maxPtr, err := w.readUint32(MaxLogPtrPath(w.storePath))
	if err != nil {
		return err
	}
	logsToKeep, err := w.readUint32(LogsToKeepPath(w.storePath))
	if err != nil {
		return err
	}
	if ourPtr == 0 || maxPtr-ourPtr > logsToKeep {
		if err := w.exec.RecoverLostReplica(ourPtr, maxPtr); err != nil {
			return err
		}
		ourPtr, err = w.readUint32(LogPtrPath(w.replicaPath))
		if err != nil {
			return err
		}
		w.appliedPtr = ourPtr
		return nil
	}
	w.appliedPtr = ourPtr
	return w.processLog()
}

func (w *Worker) loop() {
	defer w.wg.Done()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		_, changed, err := w.store.WatchChildren(LogPath(w.storePath))
		if err != nil {
			w.logger.Warn("watch ddl log failed", zap.Error(err))
			changed = nil
		}
		if err := w.processLog(); err != nil {
			w.logger.Warn("process ddl log failed", zap.Error(err))
		}
		if changed != nil {
			select {
			case <-changed:
			case <-w.quit:
				return
			}
			continue
		}
		select {
		case <-ticker.C:
		case <-w.quit:
			return
		}
	}
}

// processLog applies every unapplied log entry in id order.
func (w *Worker) processLog() error {
	w.applyMu.Lock()
	defer w.applyMu.Unlock()
	return w.processLogLocked(0)
}

func (w *Worker) processLogLocked(initiatorOf uint32) error {
	names, _, err := w.store.GetChildren(LogPath(w.storePath))
	if err != nil {
		return errors.Trace(err)
	}
	ids := make([]uint32, 0, len(names))
	for _, name := range names {
		id, err := ParseEntryID(name)
		if err != nil {
			w.logger.Warn("skipping malformed log node", zap.String("name", name))
			continue
		}
		if id > w.appliedPtr {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	applied := false
	for _, id := range ids {
		if err := w.applyOne(id, id == initiatorOf); err != nil {
			return err
		}
		applied = true
	}
	if applied {
		w.cleanupLog()
	}
	return nil
}

// applyOne executes one entry and advances the replica's log pointer. An
// apply failure on a non-initiating replica is recorded and skipped: the
// entry is already durable and deterministic, so every replica fails it the
// same way.
func (w *Worker) applyOne(id uint32, asInitiator bool) error {
	value, _, err := w.store.Get(EntryPath(w.storePath, id))
	if err != nil {
		return errors.Trace(err)
	}
	entry, err := ParseLogEntry(value)
	if err != nil {
		return err
	}
	var applyErr error
	if entry.Query != "" && entry.AppliesTo(w.hostID) {
		se := sessionctx.NewSecondary(w.exec.DatabaseName())
		se.SetMetadataTransaction(sessionctx.NewMetaTx(w.store, w.storePath, asInitiator))
		start := time.Now()
		applyErr = w.exec.ApplyEntryQuery(se, entry.Query)
		metrics.ObserveApply(time.Since(start), applyErr == nil)
		if applyErr != nil && !asInitiator {
			w.logger.Error("applying log entry failed",
				zap.Uint32("entry", id), zap.String("query", entry.Query), zap.Error(applyErr))
			applyErr = nil
		}
	}
	if err := w.store.Set(LogPtrPath(w.replicaPath), strconv.FormatUint(uint64(id), 10), coordination.AnyVersion); err != nil {
		return errors.Trace(err)
	}
	w.appliedPtr = id
	return applyErr
}

// TryEnqueueAndExecuteEntry makes the entry durable in the log and applies
// it on this replica synchronously. On return the mutation is visible both
// in the store and locally. The returned value is the log node path.
func (w *Worker) TryEnqueueAndExecuteEntry(entry *LogEntry, se *sessionctx.Session) (string, error) {
	// The lock covers the enqueue too: the drain loop must not pick the new
	// entry up before this call applies it with initiator semantics.
	w.applyMu.Lock()
	defer w.applyMu.Unlock()
	id, err := w.enqueue(entry)
	if err != nil {
		return "", err
	}
	initiatorOf := uint32(0)
	if se != nil && se.IsInitialQuery() {
		initiatorOf = id
	}
	if err := w.processLogLocked(initiatorOf); err != nil {
		return "", err
	}
	return EntryPath(w.storePath, id), nil
}

// enqueue allocates a log id with an ephemeral-sequential counter child and
// lands the entry with a single multi-op that also bumps max_log_ptr under
// a version check, so the pointer is monotonic even under concurrent
// proposers. A lost version race burns the id and retries with a fresh one.
func (w *Worker) enqueue(entry *LogEntry) (uint32, error) {
	for i := 0; i < maxEnqueueRetries; i++ {
		counterPath, err := w.store.Create(CounterPrefix(w.storePath), "", coordination.ModeEphemeralSequential)
		if err != nil {
			return 0, errors.Trace(err)
		}
		id, err := ParseCounterID(counterPath)
		if err != nil {
			return 0, err
		}
		_, stat, err := w.store.Get(MaxLogPtrPath(w.storePath))
		if err != nil {
			return 0, errors.Trace(err)
		}
		ops := []coordination.Op{
			coordination.MakeCreateOp(EntryPath(w.storePath, id), entry.String(), coordination.ModePersistent),
			coordination.MakeSetOp(MaxLogPtrPath(w.storePath), strconv.FormatUint(uint64(id), 10), stat.Version),
			coordination.MakeRemoveOp(counterPath, coordination.AnyVersion),
		}
		err = w.store.Multi(ops)
		if err == nil {
			metrics.EnqueuedEntries.Inc()
			return id, nil
		}
		_ = w.store.TryRemove(counterPath, coordination.AnyVersion)
		if coordination.IsBadVersion(err) {
			continue
		}
		return 0, errors.Trace(err)
	}
	return 0, dbterror.ErrReplicationFailed.GenWithStackByArgs("cannot enqueue log entry: too many version conflicts")
}

// ParseCounterID extracts the allocated id from an ephemeral-sequential
// counter path.
func ParseCounterID(counterPath string) (uint32, error) {
	i := strings.LastIndexByte(counterPath, '-')
	if i < 0 {
		return 0, dbterror.ErrLogicalError.GenWithStackByArgs("malformed counter path " + counterPath)
	}
	id, err := strconv.ParseUint(counterPath[i+1:], 10, 32)
	if err != nil {
		return 0, dbterror.ErrLogicalError.GenWithStack("malformed counter path %s: %v", counterPath, err)
	}
	return uint32(id), nil
}

// WaitForReplicas polls the log pointer of every listed replica until it
// reaches the entry id, the replica is tombstoned, or ctx expires.
func (w *Worker) WaitForReplicas(ctx context.Context, entryID uint32, replicas []string, timeout time.Duration) []ReplicaStatus {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	statuses := make([]ReplicaStatus, len(replicas))
	var g errgroup.Group
	for i, replica := range replicas {
		i, replica := i, replica
		g.Go(func() error {
			statuses[i] = w.waitForReplica(ctx, entryID, replica)
			return nil
		})
	}
	_ = g.Wait()
	return statuses
}

func (w *Worker) waitForReplica(ctx context.Context, entryID uint32, replica string) ReplicaStatus {
	status := ReplicaStatus{Replica: replica}
	replicaPath := ReplicaPath(w.storePath, replica)
	for {
		value, exists, err := w.store.TryGet(replicaPath)
		switch {
		case err != nil:
			status.Error = err.Error()
			return status
		case !exists || value == DroppedMark:
			status.Dropped = true
			return status
		}
		ptrValue, exists, err := w.store.TryGet(LogPtrPath(replicaPath))
		if err != nil {
			status.Error = err.Error()
			return status
		}
		if exists {
			ptr, perr := strconv.ParseUint(strings.TrimSpace(ptrValue), 10, 32)
			if perr == nil && uint32(ptr) >= entryID {
				status.Finished = true
				return status
			}
		}
		select {
		case <-ctx.Done():
			status.Error = "timeout while waiting for the replica"
			return status
		case <-time.After(statusPollInterval):
		}
	}
}

// cleanupLog trims entries every live replica has applied and that fall
// outside the retention window. Best effort.
func (w *Worker) cleanupLog() {
	maxPtr, err := w.readUint32(MaxLogPtrPath(w.storePath))
	if err != nil {
		return
	}
	logsToKeep, err := w.readUint32(LogsToKeepPath(w.storePath))
	if err != nil {
		return
	}
	if maxPtr <= logsToKeep {
		return
	}
	keepFrom := maxPtr - logsToKeep

	replicas, _, err := w.store.GetChildren(ReplicasPath(w.storePath))
	if err != nil {
		return
	}
	minApplied := maxPtr
	for _, replica := range replicas {
		replicaPath := ReplicaPath(w.storePath, replica)
		value, exists, err := w.store.TryGet(replicaPath)
		if err != nil || !exists || value == DroppedMark {
			continue
		}
		ptr, err := w.readUint32(LogPtrPath(replicaPath))
		if err != nil {
			return
		}
		if ptr < minApplied {
			minApplied = ptr
		}
	}
	if minApplied < keepFrom {
		keepFrom = minApplied
	}

	names, _, err := w.store.GetChildren(LogPath(w.storePath))
	if err != nil {
		return
	}
	for _, name := range names {
		id, err := ParseEntryID(name)
		if err != nil || id >= keepFrom {
			continue
		}
		if err := w.store.TryRemove(LogPath(w.storePath)+"/"+name, coordination.AnyVersion); err != nil && !coordination.IsNoNode(err) {
			w.logger.Debug("log cleanup failed", zap.String("entry", name), zap.Error(err))
			return
		}
	}
}
