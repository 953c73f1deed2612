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
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pingcap/tidb/parser/ast"
	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

func localDef(t *testing.T, sql string) *objdef.Definition {
	t.Helper()
	node, err := objdef.ParseOne(sql)
	require.NoError(t, err)
	def, err := objdef.NormalizeCreate(node.(*ast.CreateTableStmt), uuid.New())
	require.NoError(t, err)
	return def
}

// prepareLocalCatalog seeds a data directory with objects before the
// replicated database is opened on it, simulating a replica that diverged
// while it was offline.
func prepareLocalCatalog(t *testing.T, dir string, defs map[string]*objdef.Definition) {
	t.Helper()
	c, err := catalog.Open("db1", uuid.New(), dir)
	require.NoError(t, err)
	for name, def := range defs {
		require.NoError(t, c.CreateTable(nil, name, def))
	}
}

func countMetadataFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	n := 0
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sql") {
			n++
		}
	}
	return n
}

func TestNewReplicaClonesCatalog(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	execDDL(t, db1, "CREATE TABLE t1 (x INT)", 0)
	execDDL(t, db1, "CREATE TABLE t2 (y INT) ENGINE = MergeTree", 0)

	db3 := startReplica(t, store, "s1", "r3", "hostC")
	require.True(t, db3.Catalog().IsTableExist("t1"))
	require.True(t, db3.Catalog().IsTableExist("t2"))
	require.True(t, catalogsEqual(db1, db3))

	s := store.Session()
	maxPtr, _, err := s.Get(testStorePath + "/max_log_ptr")
	require.NoError(t, err)
	ptr, _, err := s.Get(testStorePath + "/replicas/s1|r3/log_ptr")
	require.NoError(t, err)
	require.Equal(t, maxPtr, ptr)
}

func TestRecoverySafetyValve(t *testing.T) {
	store := memstore.New()
	dir := t.TempDir()
	prepareLocalCatalog(t, dir, map[string]*objdef.Definition{
		"t1": localDef(t, "CREATE TABLE t1 (x INT)"),
		"t2": localDef(t, "CREATE TABLE t2 (x INT)"),
		"t3": localDef(t, "CREATE TABLE t3 (x INT)"),
	})

	registry := catalog.NewRegistry()
	db := openReplica(t, store, registry, dir, "s1", "r1", "hostA")
	err := db.Startup()
	require.True(t, dbterror.ErrReplicationFailed.Equal(err), "got: %v", err)

	// The valve refuses before touching any local state.
	require.Equal(t, 3, countMetadataFiles(t, dir))
	_, err = registry.Get("db1_broken_tables")
	require.Error(t, err)
}

func TestRecoveryReconcilesDivergedReplica(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	for _, stmt := range []string{
		"CREATE TABLE t1 (x INT)",
		"CREATE TABLE t2 (x INT)",
		"CREATE TABLE t3 (x INT)",
		"CREATE TABLE t4 (x INT)",
	} {
		execDDL(t, db1, stmt, 0)
	}

	s := store.Session()
	defs := map[string]*objdef.Definition{
		// Same names as the authoritative t2..t4, same texts.
		// t1 diverged: a different uuid under the same name.
		"t1": localDef(t, "CREATE TABLE t1 (other INT)"),
		// Local-only leftovers: one keeps data on disk, one does not.
		"t8": localDef(t, "CREATE TABLE t8 (x INT) ENGINE = Memory"),
		"t9": localDef(t, "CREATE TABLE t9 (x INT)"),
	}
	for _, name := range []string{"t2", "t3", "t4"} {
		text, _, err := s.Get(testStorePath + "/metadata/" + name)
		require.NoError(t, err)
		def, err := objdef.ParseMetadata(text)
		require.NoError(t, err)
		defs[name] = def
	}
	dir := t.TempDir()
	prepareLocalCatalog(t, dir, defs)

	registry := catalog.NewRegistry()
	db5 := openReplica(t, store, registry, dir, "s1", "r5", "hostE")
	require.NoError(t, db5.Startup())
	t.Cleanup(db5.Shutdown)

	for _, name := range []string{"t1", "t2", "t3", "t4"} {
		require.True(t, db5.Catalog().IsTableExist(name), "%s missing after recovery", name)
	}
	require.False(t, db5.Catalog().IsTableExist("t8"))
	require.False(t, db5.Catalog().IsTableExist("t9"))
	require.True(t, catalogsEqual(db1, db5))

	// The diverged t1 and the leftover t9 store data on disk, so they were
	// moved into the shadow database instead of being destroyed.
	broken, err := registry.Get("db1_broken_tables")
	require.NoError(t, err)
	moved := 0
	broken.IterateTables(func(tbl *catalog.Table) bool {
		moved++
		require.True(t, strings.HasPrefix(tbl.Name, "t1_") || strings.HasPrefix(tbl.Name, "t9_"))
		return true
	})
	require.Equal(t, 2, moved)
}

func TestRecoveryKeepsReplicatedEnginesByUUID(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	execDDL(t, db1, "CREATE TABLE t1 (x INT) ENGINE = ReplicatedMergeTree", 0)

	s := store.Session()
	text, _, err := s.Get(testStorePath + "/metadata/t1")
	require.NoError(t, err)
	storeDef, err := objdef.ParseMetadata(text)
	require.NoError(t, err)

	alter, err := objdef.ParseOne("ALTER TABLE t1 ADD COLUMN extra INT")
	require.NoError(t, err)
	localVariant, err := objdef.ApplyAlter(storeDef, alter.(*ast.AlterTableStmt))
	require.NoError(t, err)
	require.NotEqual(t, storeDef.Text, localVariant.Text)

	dir := t.TempDir()
	prepareLocalCatalog(t, dir, map[string]*objdef.Definition{"t1": localVariant})

	registry := catalog.NewRegistry()
	db6 := openReplica(t, store, registry, dir, "s1", "r6", "hostF")
	require.NoError(t, db6.Startup())
	t.Cleanup(db6.Shutdown)

	// Same UUID and a self-replicating engine: the drifted local definition
	// is kept as is.
	localText, err := db6.Catalog().ReadMetadataFile("t1")
	require.NoError(t, err)
	require.Equal(t, localVariant.Text, localText)
	_, err = registry.Get("db1_broken_tables")
	require.Error(t, err)
}
