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
	"github.com/pingcap/tidb/parser/ast"
	"github.com/pingcap/tidb/parser/model"
)

// StripDatabase removes any embedded database name from DDL targets.
// Replication is per-database, so the log never carries one.
func StripDatabase(stmt ast.StmtNode) {
	switch s := stmt.(type) {
	case *ast.CreateTableStmt:
		s.Table.Schema = model.CIStr{}
	case *ast.DropTableStmt:
		for _, t := range s.Tables {
			t.Schema = model.CIStr{}
		}
	case *ast.AlterTableStmt:
		s.Table.Schema = model.CIStr{}
	case *ast.RenameTableStmt:
		for _, tt := range s.TableToTables {
			tt.OldTable.Schema = model.CIStr{}
			tt.NewTable.Schema = model.CIStr{}
		}
	}
}

// StatementText serializes a statement for a log entry.
func StatementText(stmt ast.StmtNode) (string, error) {
	return RestoreText(stmt)
}
