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
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/replicated"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

const waitTimeout = 10 * time.Second

func readMaxLogPtr(t *testing.T, store *memstore.Store) int {
	t.Helper()
	value, _, err := store.Session().Get(testStorePath + "/max_log_ptr")
	require.NoError(t, err)
	n, err := strconv.Atoi(value)
	require.NoError(t, err)
	return n
}

func TestCreateTableReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	before := readMaxLogPtr(t, store)
	statuses := execDDL(t, db1, "CREATE TABLE t (x INT) ENGINE = Log", waitTimeout)
	require.Len(t, statuses, 2)
	for _, st := range statuses {
		require.True(t, st.Finished, "replica %s: %+v", st.Replica, st)
	}
	require.Equal(t, before+1, readMaxLogPtr(t, store))

	// The authoritative snapshot carries the normalized definition.
	text, _, err := store.Session().Get(testStorePath + "/metadata/t")
	require.NoError(t, err)
	localText, err := db1.Catalog().ReadMetadataFile("t")
	require.NoError(t, err)
	require.Equal(t, localText, text)

	require.True(t, db2.Catalog().IsTableExist("t"))
	remoteText, err := db2.Catalog().ReadMetadataFile("t")
	require.NoError(t, err)
	require.Equal(t, localText, remoteText)
}

func TestAlterReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	execDDL(t, db1, "CREATE TABLE t (x INT)", waitTimeout)
	execDDL(t, db2, "ALTER TABLE t ADD COLUMN y VARCHAR(10)", waitTimeout)

	text1, err := db1.Catalog().ReadMetadataFile("t")
	require.NoError(t, err)
	text2, err := db2.Catalog().ReadMetadataFile("t")
	require.NoError(t, err)
	require.Equal(t, text1, text2)
	require.Contains(t, text1, "`y`")

	storeText, _, err := store.Session().Get(testStorePath + "/metadata/t")
	require.NoError(t, err)
	require.Equal(t, text1, storeText)
}

func TestRenameReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	execDDL(t, db1, "CREATE TABLE t (x INT)", waitTimeout)
	execDDL(t, db1, "RENAME TABLE t TO u", waitTimeout)

	for _, db := range []*replicated.Database{db1, db2} {
		require.False(t, db.Catalog().IsTableExist("t"))
		require.True(t, db.Catalog().IsTableExist("u"))
	}
	s := store.Session()
	_, exists, err := s.TryGet(testStorePath + "/metadata/t")
	require.NoError(t, err)
	require.False(t, exists)
	_, exists, err = s.TryGet(testStorePath + "/metadata/u")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestExchangeReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	execDDL(t, db1, "CREATE TABLE t (x INT)", waitTimeout)
	execDDL(t, db1, "CREATE TABLE u (y INT)", waitTimeout)
	uuidT, _ := db1.Catalog().UUIDOf("t")
	uuidU, _ := db1.Catalog().UUIDOf("u")

	execDDL(t, db1, "EXCHANGE TABLES `t` AND `u`", waitTimeout)
	for _, db := range []*replicated.Database{db1, db2} {
		gotT, _ := db.Catalog().UUIDOf("t")
		gotU, _ := db.Catalog().UUIDOf("u")
		require.Equal(t, uuidU, gotT)
		require.Equal(t, uuidT, gotU)
	}
}

func TestDetachReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	execDDL(t, db1, "CREATE TABLE t (x INT)", waitTimeout)
	execDDL(t, db2, "DETACH TABLE `t` PERMANENTLY", waitTimeout)

	for _, db := range []*replicated.Database{db1, db2} {
		require.False(t, db.Catalog().IsTableExist("t"))
	}
	_, exists, err := store.Session().TryGet(testStorePath + "/metadata/t")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestDropReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	execDDL(t, db1, "CREATE TABLE t (x INT)", waitTimeout)
	execDDL(t, db1, "DROP TABLE t", waitTimeout)
	for _, db := range []*replicated.Database{db1, db2} {
		require.False(t, db.Catalog().IsTableExist("t"))
	}
}

func TestDictionaryReplicates(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")

	execDDL(t, db1, "CREATE TABLE d (k INT, v VARCHAR(20)) ENGINE = Dictionary", waitTimeout)
	require.True(t, db1.Catalog().IsDictionaryExist("d"))
	require.True(t, db2.Catalog().IsDictionaryExist("d"))

	execDDL(t, db2, "DROP TABLE d", waitTimeout)
	require.False(t, db1.Catalog().IsDictionaryExist("d"))
	require.False(t, db2.Catalog().IsDictionaryExist("d"))
}

func TestOfflineReplicaReplays(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")
	execDDL(t, db1, "CREATE TABLE t0 (x INT)", waitTimeout)

	db2.StopReplication()
	for i := 1; i <= 5; i++ {
		execDDL(t, db1, "CREATE TABLE t"+strconv.Itoa(i)+" (x INT)", 0)
	}
	require.False(t, db2.Catalog().IsTableExist("t5"))

	require.NoError(t, db2.Startup())
	for i := 0; i <= 5; i++ {
		require.True(t, db2.Catalog().IsTableExist("t"+strconv.Itoa(i)), "t%d missing after replay", i)
	}
	s := store.Session()
	maxPtr, _, err := s.Get(testStorePath + "/max_log_ptr")
	require.NoError(t, err)
	ptr2, _, err := s.Get(testStorePath + "/replicas/s1|r2/log_ptr")
	require.NoError(t, err)
	require.Equal(t, maxPtr, ptr2)
}

func TestProposeRejectsSecondaryAndUnsupported(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")

	se := sessionctx.NewSecondary(db1.DatabaseName())
	_, err := db1.ExecuteDDL(context.Background(), se, "CREATE TABLE t (x INT)")
	require.True(t, dbterror.ErrIncorrectQuery.Equal(err))

	err = tryDDL(db1, "ALTER TABLE t RENAME TO u", 0)
	require.True(t, dbterror.ErrNotImplemented.Equal(err))

	err = tryDDL(db1, "RENAME TABLE db2.t TO db2.u", 0)
	require.True(t, dbterror.ErrNotImplemented.Equal(err))

	err = tryDDL(db1, "SELECT 1", 0)
	require.True(t, dbterror.ErrIncorrectQuery.Equal(err))
}

func TestConcurrentRenameAndAlterConverge(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")
	execDDL(t, db1, "CREATE TABLE t (x INT)", waitTimeout)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		// One of the two may lose the ordering race; both outcomes are
		// legal as long as the replicas agree.
		_ = tryDDL(db1, "RENAME TABLE t TO u", waitTimeout)
	}()
	go func() {
		defer wg.Done()
		_ = tryDDL(db2, "ALTER TABLE t ADD COLUMN y INT", waitTimeout)
	}()
	wg.Wait()

	require.Eventually(t, func() bool {
		return catalogsEqual(db1, db2)
	}, waitTimeout, 50*time.Millisecond, "replicas did not converge")
}

func catalogSnapshot(db *replicated.Database) map[string]string {
	m := map[string]string{}
	db.Catalog().IterateTables(func(t *catalog.Table) bool {
		m[t.Name] = t.Def.Text
		return true
	})
	return m
}

func catalogsEqual(a, b *replicated.Database) bool {
	sa, sb := catalogSnapshot(a), catalogSnapshot(b)
	if len(sa) != len(sb) {
		return false
	}
	for name, text := range sa {
		if sb[name] != text {
			return false
		}
	}
	return true
}
