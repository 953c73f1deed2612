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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pingcap/tidb/parser/ast"
	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

func mustDef(t *testing.T, sql string) *objdef.Definition {
	t.Helper()
	node, err := objdef.ParseOne(sql)
	require.NoError(t, err)
	def, err := objdef.NormalizeCreate(node.(*ast.CreateTableStmt), uuid.New())
	require.NoError(t, err)
	return def
}

func TestCatalogLifecycle(t *testing.T) {
	dir := t.TempDir()
	c, err := Open("db1", uuid.New(), dir)
	require.NoError(t, err)

	def := mustDef(t, "CREATE TABLE t (x INT) ENGINE = Log")
	require.NoError(t, c.CreateTable(nil, "t", def))
	require.True(t, c.IsTableExist("t"))
	require.False(t, c.Empty())

	text, err := c.ReadMetadataFile("t")
	require.NoError(t, err)
	require.Equal(t, def.Text, text)

	// A fresh catalog on the same directory reloads the object.
	c2, err := Open("db1", c.UUID(), dir)
	require.NoError(t, err)
	tbl, ok := c2.GetTable("t")
	require.True(t, ok)
	require.Equal(t, def.UUID, tbl.UUID())

	require.NoError(t, c.DropTable(nil, "t"))
	require.False(t, c.IsTableExist("t"))
	_, err = c.ReadMetadataFile("t")
	require.True(t, dbterror.ErrUnknownTable.Equal(err))
	err = c.DropTable(nil, "t")
	require.True(t, dbterror.ErrUnknownTable.Equal(err))
}

func TestCatalogDetachPermanently(t *testing.T) {
	dir := t.TempDir()
	c, err := Open("db1", uuid.New(), dir)
	require.NoError(t, err)
	require.NoError(t, c.CreateTable(nil, "t", mustDef(t, "CREATE TABLE t (x INT)")))
	require.NoError(t, c.DetachTablePermanently(nil, "t"))
	require.False(t, c.IsTableExist("t"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	found := false
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".detached" {
			found = true
		}
	}
	require.True(t, found, "detached marker file must remain")

	// Detached objects are not loaded again.
	c2, err := Open("db1", c.UUID(), dir)
	require.NoError(t, err)
	require.False(t, c2.IsTableExist("t"))
}

func TestCatalogRename(t *testing.T) {
	c, err := Open("db1", uuid.New(), t.TempDir())
	require.NoError(t, err)
	defT := mustDef(t, "CREATE TABLE t (x INT)")
	defU := mustDef(t, "CREATE TABLE u (y INT)")
	require.NoError(t, c.CreateTable(nil, "t", defT))

	require.NoError(t, c.RenameTable(nil, "t", c, "t2", false))
	require.False(t, c.IsTableExist("t"))
	tbl, ok := c.GetTable("t2")
	require.True(t, ok)
	require.Equal(t, defT.UUID, tbl.UUID())

	require.NoError(t, c.CreateTable(nil, "u", defU))
	require.NoError(t, c.RenameTable(nil, "t2", c, "u", true))
	tbl, _ = c.GetTable("u")
	require.Equal(t, defT.UUID, tbl.UUID())
	tbl, _ = c.GetTable("t2")
	require.Equal(t, defU.UUID, tbl.UUID())

	err = c.RenameTable(nil, "nope", c, "x", false)
	require.True(t, dbterror.ErrUnknownTable.Equal(err))
	err = c.RenameTable(nil, "u", c, "missing", true)
	require.True(t, dbterror.ErrUnknownTable.Equal(err))
}

func TestCatalogMetaTxGatesCommit(t *testing.T) {
	store := memstore.New().Session()
	c, err := Open("db1", uuid.New(), t.TempDir())
	require.NoError(t, err)

	// The transaction's op targets a node whose parent does not exist, so
	// the multi fails and the local change must not become visible.
	se := sessionctx.NewSecondary("db1")
	txn := sessionctx.NewMetaTx(store, "/missing", true)
	txn.AddOp(coordination.MakeCreateOp("/missing/metadata/t", "x", coordination.ModePersistent))
	se.SetMetadataTransaction(txn)

	err = c.CreateTable(se, "t", mustDef(t, "CREATE TABLE t (x INT)"))
	require.Error(t, err)
	require.False(t, c.IsTableExist("t"))
	_, readErr := c.ReadMetadataFile("t")
	require.Error(t, readErr)
}

func TestGuardOrdering(t *testing.T) {
	r := NewRegistry()
	release := r.AcquireGuards(
		GuardKey{DB: "db1", Table: "b"},
		GuardKey{DB: "db1", Table: "a"},
		GuardKey{DB: "db1", Table: "a"},
	)
	done := make(chan struct{})
	go func() {
		release2 := r.AcquireGuards(GuardKey{DB: "db1", Table: "a"})
		release2()
		close(done)
	}()
	time.Sleep(50 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("guard must be held")
	default:
	}
	release()
	<-done
}

func TestShadowCatalog(t *testing.T) {
	c := NewShadow("db1_broken_tables")
	def := mustDef(t, "CREATE TABLE t (x INT)")
	require.NoError(t, c.CreateTable(nil, "t", def))
	text, err := c.ReadMetadataFile("t")
	require.NoError(t, err)
	require.Equal(t, def.Text, text)
}
