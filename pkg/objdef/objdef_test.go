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

package objdef

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pingcap/tidb/parser/ast"
	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/util/dbterror"
)

func parseCreate(t *testing.T, sql string) *ast.CreateTableStmt {
	t.Helper()
	node, err := ParseOne(sql)
	require.NoError(t, err)
	create, ok := node.(*ast.CreateTableStmt)
	require.True(t, ok)
	return create
}

func TestNormalizeCreate(t *testing.T) {
	id := uuid.New()
	def, err := NormalizeCreate(parseCreate(t, "CREATE TABLE IF NOT EXISTS db1.t (x INT, y VARCHAR(10)) ENGINE = Log"), id)
	require.NoError(t, err)
	require.Equal(t, id, def.UUID)
	require.Equal(t, "Log", def.Engine)
	require.Contains(t, def.Text, "`_`")
	require.NotContains(t, def.Text, "db1")
	require.NotContains(t, def.Text, "IF NOT EXISTS")
	require.NotContains(t, def.Text, "ATTACH")
}

func TestNormalizeCreateDefaultEngine(t *testing.T) {
	def, err := NormalizeCreate(parseCreate(t, "CREATE TABLE t (x INT)"), uuid.New())
	require.NoError(t, err)
	require.Equal(t, DefaultEngine, def.Engine)
	require.Contains(t, def.Text, "ENGINE")
}

func TestMetadataRoundTrip(t *testing.T) {
	def, err := NormalizeCreate(parseCreate(t, "CREATE TABLE t (x INT, KEY idx_x (x)) ENGINE = MergeTree"), uuid.New())
	require.NoError(t, err)
	parsed, err := ParseMetadata(def.Text)
	require.NoError(t, err)
	require.Equal(t, def.UUID, parsed.UUID)
	require.Equal(t, def.Engine, parsed.Engine)
	require.Equal(t, def.Text, parsed.Text)
}

func TestParseMetadataRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"CREATE TABLE `_` (`x` INT)",
		"-- uuid not-a-uuid\nCREATE TABLE `_` (`x` INT)",
		"-- uuid " + uuid.New().String() + "\nCREATE TABLE `t` (`x` INT)",
		"-- uuid " + uuid.New().String() + "\nCREATE TABLE `db`.`_` (`x` INT)",
		"-- uuid " + uuid.New().String() + "\nDROP TABLE `_`",
	}
	for _, text := range cases {
		_, err := ParseMetadata(text)
		require.Error(t, err, "case: %q", text)
	}
}

func TestStmtFor(t *testing.T) {
	def, err := NormalizeCreate(parseCreate(t, "CREATE TABLE t (x INT)"), uuid.New())
	require.NoError(t, err)
	stmt, err := def.StmtFor("db1", "t")
	require.NoError(t, err)
	require.Equal(t, "db1", stmt.Table.Schema.O)
	require.Equal(t, "t", stmt.Table.Name.O)
}

func TestEngineClassification(t *testing.T) {
	require.True(t, IsReplicatedEngine("ReplicatedMergeTree"))
	require.False(t, IsReplicatedEngine("MergeTree"))
	require.False(t, StoresDataOnDisk(EngineMemory))
	require.False(t, StoresDataOnDisk(EngineDictionary))
	require.True(t, StoresDataOnDisk("Log"))
	require.True(t, IsDictionaryEngine(EngineDictionary))
}

func TestEscapeForFileName(t *testing.T) {
	for _, name := range []string{"simple", "with space", "weird/|%`name", "тест", ""} {
		escaped := EscapeForFileName(name)
		require.NotContains(t, escaped, "/")
		require.NotContains(t, escaped, "|")
		back, err := UnescapeForFileName(escaped)
		require.NoError(t, err)
		require.Equal(t, name, back)
	}
	_, err := UnescapeForFileName("%2")
	require.Error(t, err)
	_, err = UnescapeForFileName("%zz")
	require.Error(t, err)
}

func parseAlter(t *testing.T, sql string) *ast.AlterTableStmt {
	t.Helper()
	node, err := ParseOne(sql)
	require.NoError(t, err)
	alter, ok := node.(*ast.AlterTableStmt)
	require.True(t, ok)
	return alter
}

func TestCheckAlterSupported(t *testing.T) {
	require.NoError(t, CheckAlterSupported(parseAlter(t, "ALTER TABLE t ADD COLUMN y INT")))
	err := CheckAlterSupported(parseAlter(t, "ALTER TABLE t RENAME TO u"))
	require.True(t, dbterror.ErrNotImplemented.Equal(err))
}

func TestApplyAlter(t *testing.T) {
	def, err := NormalizeCreate(parseCreate(t, "CREATE TABLE t (x INT) ENGINE = Log"), uuid.New())
	require.NoError(t, err)

	def2, err := ApplyAlter(def, parseAlter(t, "ALTER TABLE t ADD COLUMN y VARCHAR(20)"))
	require.NoError(t, err)
	require.Equal(t, def.UUID, def2.UUID)
	require.Equal(t, def.Engine, def2.Engine)
	require.Contains(t, def2.Text, "`y`")

	def3, err := ApplyAlter(def2, parseAlter(t, "ALTER TABLE t RENAME COLUMN y TO z"))
	require.NoError(t, err)
	require.Contains(t, def3.Text, "`z`")
	require.NotContains(t, def3.Text, "`y`")

	def4, err := ApplyAlter(def3, parseAlter(t, "ALTER TABLE t DROP COLUMN z"))
	require.NoError(t, err)
	require.NotContains(t, def4.Text, "`z`")

	_, err = ApplyAlter(def4, parseAlter(t, "ALTER TABLE t DROP COLUMN nope"))
	require.True(t, dbterror.ErrUnknownColumn.Equal(err))

	_, err = ApplyAlter(def4, parseAlter(t, "ALTER TABLE t ADD COLUMN x INT"))
	require.Error(t, err)
}

func TestApplyAlterPosition(t *testing.T) {
	def, err := NormalizeCreate(parseCreate(t, "CREATE TABLE t (a INT, b INT)"), uuid.New())
	require.NoError(t, err)
	def2, err := ApplyAlter(def, parseAlter(t, "ALTER TABLE t ADD COLUMN c INT FIRST"))
	require.NoError(t, err)
	require.Less(t, strings.Index(def2.Text, "`c`"), strings.Index(def2.Text, "`a`"))

	def3, err := ApplyAlter(def2, parseAlter(t, "ALTER TABLE t ADD COLUMN d INT AFTER a"))
	require.NoError(t, err)
	ai := strings.Index(def3.Text, "`a`")
	di := strings.Index(def3.Text, "`d`")
	bi := strings.Index(def3.Text, "`b`")
	require.Less(t, ai, di)
	require.Less(t, di, bi)
}

func TestStripDatabase(t *testing.T) {
	create := parseCreate(t, "CREATE TABLE db1.t (x INT)")
	StripDatabase(create)
	require.Equal(t, "", create.Table.Schema.O)

	node, err := ParseOne("RENAME TABLE db1.t TO db1.u")
	require.NoError(t, err)
	StripDatabase(node)
	text, err := StatementText(node)
	require.NoError(t, err)
	require.NotContains(t, text, "db1")
}
