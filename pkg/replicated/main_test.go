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

package replicated_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/ddlworker"
	"github.com/replidb/replidb/pkg/replicated"
	"github.com/replidb/replidb/pkg/sessionctx"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testStorePath = "/test/db1"

func openReplica(t *testing.T, store *memstore.Store, registry *catalog.Registry, dir, shard, replica, host string) *replicated.Database {
	t.Helper()
	db, err := replicated.Open(replicated.Config{
		Name:      "db1",
		StorePath: testStorePath,
		Shard:     shard,
		Replica:   replica,
		Host:      host,
		TCPPort:   9000,
		DataDir:   dir,
	}, store.Session(), registry)
	require.NoError(t, err)
	return db
}

func startReplica(t *testing.T, store *memstore.Store, shard, replica, host string) *replicated.Database {
	t.Helper()
	db := openReplica(t, store, catalog.NewRegistry(), t.TempDir(), shard, replica, host)
	require.NoError(t, db.Startup())
	t.Cleanup(db.Shutdown)
	return db
}

func execDDL(t *testing.T, db *replicated.Database, query string, wait time.Duration) []ddlworker.ReplicaStatus {
	t.Helper()
	se := sessionctx.NewInitial(db.DatabaseName())
	se.DDLTaskTimeout = wait
	statuses, err := db.ExecuteDDL(context.Background(), se, query)
	require.NoError(t, err)
	return statuses
}

func tryDDL(db *replicated.Database, query string, wait time.Duration) error {
	se := sessionctx.NewInitial(db.DatabaseName())
	se.DDLTaskTimeout = wait
	_, err := db.ExecuteDDL(context.Background(), se, query)
	return err
}
