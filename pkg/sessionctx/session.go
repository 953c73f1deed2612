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

// Package sessionctx carries per-query execution state: the query kind, the
// DDL task timeout and the metadata transaction hooked in by the
// replication layer.
package sessionctx

import (
	"time"

	"github.com/pingcap/errors"

	"github.com/replidb/replidb/pkg/coordination"
)

// QueryKind distinguishes queries received from clients from queries the
// apply worker and the recovery engine replay.
type QueryKind int8

// Query kinds.
const (
	// InitialQuery is a statement received directly from a client session.
	// Only initial queries may enqueue log entries.
	InitialQuery QueryKind = iota
	// SecondaryQuery is a statement produced by the apply worker or by
	// recovery. Secondary queries never re-enqueue.
	SecondaryQuery
)

// DefaultDDLTaskTimeout bounds the wait for remote replicas after a
// successful local apply. Zero means fire-and-forget.
const DefaultDDLTaskTimeout = 180 * time.Second

// Session is the execution context of a single query.
type Session struct {
	Kind QueryKind
	// Database is the current database of the session.
	Database string
	// DDLTaskTimeout bounds the replica status wait of a propose.
	DDLTaskTimeout time.Duration

	txn *MetaTx
}

// NewInitial returns a session for a client query.
func NewInitial(database string) *Session {
	return &Session{Kind: InitialQuery, Database: database, DDLTaskTimeout: DefaultDDLTaskTimeout}
}

// NewSecondary returns a session for an applied or recovered query.
func NewSecondary(database string) *Session {
	return &Session{Kind: SecondaryQuery, Database: database}
}

// IsInitialQuery reports whether the session executes a client statement.
func (s *Session) IsInitialQuery() bool { return s.Kind == InitialQuery }

// MetadataTransaction returns the metadata transaction of the current
// statement, or nil.
func (s *Session) MetadataTransaction() *MetaTx { return s.txn }

// SetMetadataTransaction attaches a metadata transaction to the session.
func (s *Session) SetMetadataTransaction(txn *MetaTx) { s.txn = txn }

// MetaTx is the bundle of pending coordination-store operations of one
// statement. The replication hooks populate it; the local catalog commits
// it at the same instant the local on-disk change is committed.
type MetaTx struct {
	// Store executes the multi-op on commit.
	Store coordination.Client
	// StorePath is the database root in the coordination store.
	StorePath string
	// IsInitialQuery makes the hooks push /metadata ops. Entries applied on
	// non-initiator replicas leave the transaction empty.
	IsInitialQuery bool

	ops       []coordination.Op
	committed bool
}

// NewMetaTx returns an empty metadata transaction.
func NewMetaTx(store coordination.Client, storePath string, isInitialQuery bool) *MetaTx {
	return &MetaTx{Store: store, StorePath: storePath, IsInitialQuery: isInitialQuery}
}

// AddOp appends a coordination-store operation to the transaction.
func (t *MetaTx) AddOp(op coordination.Op) {
	t.ops = append(t.ops, op)
}

// MetadataPath returns the /metadata node path for an escaped object name.
func (t *MetaTx) MetadataPath(escapedName string) string {
	return t.StorePath + "/metadata/" + escapedName
}

// Commit executes all pending operations atomically. It is called exactly
// once by the local catalog, between preparing and publishing the local
// change.
func (t *MetaTx) Commit() error {
	if t.committed {
		return errors.New("metadata transaction was already committed")
	}
	t.committed = true
	if len(t.ops) == 0 {
		return nil
	}
	return t.Store.Multi(t.ops)
}

// Committed reports whether Commit ran.
func (t *MetaTx) Committed() bool { return t.committed }
