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
	"strings"

	"github.com/google/uuid"
	"github.com/pingcap/tidb/parser/ast"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

// Internal statement forms with no SQL grammar production. Detach and
// exchange travel through the log in these fixed shapes; everything else is
// parsed SQL.
const (
	detachPrefix   = "DETACH TABLE "
	detachSuffix   = " PERMANENTLY"
	exchangePrefix = "EXCHANGE TABLES "
	exchangeInfix  = " AND "
)

// uuidHeaderPrefix carries the table UUID of a CREATE entry, assigned once
// by the proposing replica so every replica creates the same table.
const uuidHeaderPrefix = "-- uuid "

func quoteName(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func unquoteName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "`") {
		if s == "" || strings.ContainsAny(s, " `") {
			return "", dbterror.ErrIncorrectQuery.GenWithStackByArgs("malformed object name " + s)
		}
		return s, nil
	}
	if len(s) < 2 || !strings.HasSuffix(s, "`") {
		return "", dbterror.ErrIncorrectQuery.GenWithStackByArgs("malformed object name " + s)
	}
	return strings.ReplaceAll(s[1:len(s)-1], "``", "`"), nil
}

// ApplyEntryQuery implements ddlworker.Executor. It executes the query of a
// log entry against the local catalog through the metadata transaction
// hooks.
func (db *Database) ApplyEntryQuery(se *sessionctx.Session, query string) error {
	if name, ok := parseDetachQuery(query); ok {
		n, err := unquoteName(name)
		if err != nil {
			return err
		}
		return db.executeDetach(se, n)
	}
	if a, b, ok := parseExchangeQuery(query); ok {
		an, err := unquoteName(a)
		if err != nil {
			return err
		}
		bn, err := unquoteName(b)
		if err != nil {
			return err
		}
		return db.executeRename(se, an, bn, true)
	}

	tableUUID := uuid.Nil
	if strings.HasPrefix(query, uuidHeaderPrefix) {
		nl := strings.IndexByte(query, '\n')
		if nl < 0 {
			return dbterror.ErrLogicalError.GenWithStackByArgs("malformed log entry query: " + query)
		}
		id, err := uuid.Parse(strings.TrimSpace(query[len(uuidHeaderPrefix):nl]))
		if err != nil {
			return dbterror.ErrLogicalError.GenWithStack("malformed uuid in log entry: %v", err)
		}
		tableUUID = id
		query = query[nl+1:]
	}
	stmt, err := objdef.ParseOne(query)
	if err != nil {
		return err
	}
	return db.executeStatement(se, stmt, tableUUID)
}

func parseDetachQuery(query string) (string, bool) {
	if strings.HasPrefix(query, detachPrefix) && strings.HasSuffix(query, detachSuffix) {
		return query[len(detachPrefix) : len(query)-len(detachSuffix)], true
	}
	return "", false
}

func parseExchangeQuery(query string) (string, string, bool) {
	if !strings.HasPrefix(query, exchangePrefix) {
		return "", "", false
	}
	rest := query[len(exchangePrefix):]
	i := strings.Index(rest, exchangeInfix)
	if i < 0 {
		return "", "", false
	}
	return rest[:i], rest[i+len(exchangeInfix):], true
}

func (db *Database) executeStatement(se *sessionctx.Session, stmt ast.StmtNode, tableUUID uuid.UUID) error {
	switch s := stmt.(type) {
	case *ast.CreateTableStmt:
		return db.executeCreate(se, s, tableUUID)
	case *ast.DropTableStmt:
		return db.executeDrop(se, s)
	case *ast.AlterTableStmt:
		return db.executeAlter(se, s)
	case *ast.RenameTableStmt:
		for _, tt := range s.TableToTables {
			if err := db.executeRename(se, tt.OldTable.Name.O, tt.NewTable.Name.O, false); err != nil {
				return err
			}
		}
		return nil
	}
	return dbterror.ErrIncorrectQuery.GenWithStackByArgs("unsupported statement for a replicated database")
}

func (db *Database) executeCreate(se *sessionctx.Session, stmt *ast.CreateTableStmt, tableUUID uuid.UUID) error {
	if tableUUID == uuid.Nil {
		return dbterror.ErrLogicalError.GenWithStackByArgs("CREATE entry carries no table uuid")
	}
	name := stmt.Table.Name.O
	release := db.registry.AcquireGuards(catalog.GuardKey{DB: db.cfg.Name, Table: name})
	defer release()
	if db.catalog.IsTableExist(name) {
		if stmt.IfNotExists {
			return nil
		}
		return dbterror.ErrTableExists.GenWithStackByArgs(name)
	}
	def, err := objdef.NormalizeCreate(stmt, tableUUID)
	if err != nil {
		return err
	}
	if def.IsDictionary() {
		return db.createDictionary(se, name, def)
	}
	return db.createTable(se, name, def)
}

func (db *Database) executeDrop(se *sessionctx.Session, stmt *ast.DropTableStmt) error {
	for _, table := range stmt.Tables {
		name := table.Name.O
		release := db.registry.AcquireGuards(catalog.GuardKey{DB: db.cfg.Name, Table: name})
		t, ok := db.catalog.GetTable(name)
		switch {
		case !ok && stmt.IfExists:
		case !ok:
			release()
			return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
		case t.IsDictionary():
			if err := db.removeDictionary(se, name); err != nil {
				release()
				return err
			}
		default:
			if err := db.dropTable(se, name); err != nil {
				release()
				return err
			}
		}
		release()
	}
	return nil
}

func (db *Database) executeAlter(se *sessionctx.Session, stmt *ast.AlterTableStmt) error {
	if err := objdef.CheckAlterSupported(stmt); err != nil {
		return err
	}
	name := stmt.Table.Name.O
	release := db.registry.AcquireGuards(catalog.GuardKey{DB: db.cfg.Name, Table: name})
	defer release()
	t, ok := db.catalog.GetTable(name)
	if !ok {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	newDef, err := objdef.ApplyAlter(t.Def, stmt)
	if err != nil {
		return err
	}
	return db.commitAlter(se, name, newDef)
}

func (db *Database) executeRename(se *sessionctx.Session, from, to string, exchange bool) error {
	release := db.registry.AcquireGuards(
		catalog.GuardKey{DB: db.cfg.Name, Table: from},
		catalog.GuardKey{DB: db.cfg.Name, Table: to})
	defer release()
	return db.renameTable(se, from, to, exchange)
}

func (db *Database) executeDetach(se *sessionctx.Session, name string) error {
	release := db.registry.AcquireGuards(catalog.GuardKey{DB: db.cfg.Name, Table: name})
	defer release()
	if !db.catalog.IsTableExist(name) {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	return db.detachTablePermanently(se, name)
}
