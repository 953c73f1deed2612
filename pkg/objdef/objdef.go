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

// Package objdef produces and parses normalized object definitions.
//
// A normalized definition is the exact byte sequence stored both in the
// coordination store under /metadata/<escaped name> and in the local
// metadata file of the table:
//
//	-- uuid <table uuid>
//	CREATE TABLE `_` (...) ENGINE = <engine>
//
// The statement carries a placeholder in the table name position, never a
// database name, never IF NOT EXISTS. The real name is the node/file name.
package objdef

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/parser"
	"github.com/pingcap/tidb/parser/ast"
	"github.com/pingcap/tidb/parser/format"
	"github.com/pingcap/tidb/parser/model"
	_ "github.com/pingcap/tidb/parser/test_driver"

	"github.com/replidb/replidb/pkg/util/dbterror"
)

// NamePlaceholder substitutes the table name in a normalized definition.
const NamePlaceholder = "_"

// uuidHeader prefixes the first line of a normalized definition.
const uuidHeader = "-- uuid "

// Engine names with special semantics.
const (
	// DefaultEngine is assumed when a CREATE carries no ENGINE option.
	DefaultEngine = "Log"
	// EngineMemory marks tables that store no data on disk.
	EngineMemory = "Memory"
	// EngineDictionary marks dictionary objects.
	EngineDictionary = "Dictionary"
	// replicatedEnginePrefix marks engines that replicate their own data;
	// for those, recovery compares table UUIDs instead of definition text.
	replicatedEnginePrefix = "Replicated"
)

// Definition is a parsed normalized object definition.
type Definition struct {
	UUID   uuid.UUID
	Engine string
	// Text is the canonical serialized form, suitable for byte comparison.
	Text string
	// stmt is the placeholder-form CREATE. Callers get copies via StmtFor.
	stmt *ast.CreateTableStmt
}

// IsReplicatedEngine reports whether the engine replicates its own data.
func IsReplicatedEngine(engine string) bool {
	return strings.HasPrefix(engine, replicatedEnginePrefix)
}

// StoresDataOnDisk reports whether a table of this engine keeps data on disk.
func StoresDataOnDisk(engine string) bool {
	return engine != EngineMemory && engine != EngineDictionary
}

// IsDictionaryEngine reports whether the engine denotes a dictionary.
func IsDictionaryEngine(engine string) bool {
	return engine == EngineDictionary
}

// IsReplicated reports whether the defined table replicates its own data.
func (d *Definition) IsReplicated() bool { return IsReplicatedEngine(d.Engine) }

// IsDictionary reports whether the definition describes a dictionary.
func (d *Definition) IsDictionary() bool { return IsDictionaryEngine(d.Engine) }

// ParseOne parses a single SQL statement.
func ParseOne(sql string) (ast.StmtNode, error) {
	stmt, err := parser.New().ParseOneStmt(sql, "", "")
	if err != nil {
		return nil, errors.Trace(err)
	}
	return stmt, nil
}

// RestoreText serializes an AST node in canonical form.
func RestoreText(node ast.Node) (string, error) {
	var sb strings.Builder
	ctx := format.NewRestoreCtx(format.DefaultRestoreFlags, &sb)
	if err := node.Restore(ctx); err != nil {
		return "", errors.Trace(err)
	}
	return sb.String(), nil
}

// EngineOf extracts the engine name from table options, falling back to
// DefaultEngine.
func EngineOf(options []*ast.TableOption) string {
	for _, opt := range options {
		if opt.Tp == ast.TableOptionEngine {
			return opt.StrValue
		}
	}
	return DefaultEngine
}

// NormalizeCreate turns a client CREATE TABLE statement into a normalized
// definition bound to tableUUID. The input statement is not retained.
func NormalizeCreate(stmt *ast.CreateTableStmt, tableUUID uuid.UUID) (*Definition, error) {
	if stmt.ReferTable != nil || stmt.Select != nil {
		return nil, dbterror.ErrNotImplemented.GenWithStackByArgs("CREATE TABLE LIKE/AS SELECT is not supported for replicated databases")
	}
	savedSchema, savedName := stmt.Table.Schema, stmt.Table.Name
	savedIfNotExists := stmt.IfNotExists
	savedOptions := stmt.Options

	stmt.Table.Schema = model.CIStr{}
	stmt.Table.Name = model.NewCIStr(NamePlaceholder)
	stmt.IfNotExists = false
	if !hasEngineOption(stmt.Options) {
		stmt.Options = append(append([]*ast.TableOption{}, stmt.Options...),
			&ast.TableOption{Tp: ast.TableOptionEngine, StrValue: DefaultEngine})
	}
	sql, err := RestoreText(stmt)

	stmt.Table.Schema, stmt.Table.Name = savedSchema, savedName
	stmt.IfNotExists = savedIfNotExists
	stmt.Options = savedOptions
	if err != nil {
		return nil, err
	}
	return ParseMetadata(uuidHeader + tableUUID.String() + "\n" + sql)
}

func hasEngineOption(options []*ast.TableOption) bool {
	for _, opt := range options {
		if opt.Tp == ast.TableOptionEngine {
			return true
		}
	}
	return false
}

// ParseMetadata parses a normalized definition back into a Definition,
// validating the placeholder invariants.
func ParseMetadata(text string) (*Definition, error) {
	nl := strings.IndexByte(text, '\n')
	if nl < 0 || !strings.HasPrefix(text, uuidHeader) {
		return nil, dbterror.ErrLogicalError.GenWithStackByArgs("object definition has no uuid header")
	}
	id, err := uuid.Parse(strings.TrimSpace(text[len(uuidHeader):nl]))
	if err != nil {
		return nil, dbterror.ErrLogicalError.GenWithStack("object definition has a malformed uuid: %v", err)
	}
	sql := text[nl+1:]
	node, err := ParseOne(sql)
	if err != nil {
		return nil, errors.Annotate(err, "parse object definition")
	}
	create, ok := node.(*ast.CreateTableStmt)
	if !ok {
		return nil, dbterror.ErrLogicalError.GenWithStackByArgs("object definition is not a CREATE TABLE statement")
	}
	if create.Table.Schema.O != "" || create.Table.Name.O != NamePlaceholder || create.IfNotExists {
		return nil, dbterror.ErrLogicalError.GenWithStackByArgs("got unexpected object definition: " + sql)
	}
	return &Definition{
		UUID:   id,
		Engine: EngineOf(create.Options),
		Text:   uuidHeader + id.String() + "\n" + sql,
		stmt:   create,
	}, nil
}

// StmtFor returns a CREATE TABLE statement of this definition addressed to
// db.table, detached from the definition's own AST.
func (d *Definition) StmtFor(db, table string) (*ast.CreateTableStmt, error) {
	nl := strings.IndexByte(d.Text, '\n')
	node, err := ParseOne(d.Text[nl+1:])
	if err != nil {
		return nil, errors.Trace(err)
	}
	create := node.(*ast.CreateTableStmt)
	create.Table.Schema = model.NewCIStr(db)
	create.Table.Name = model.NewCIStr(table)
	return create, nil
}
