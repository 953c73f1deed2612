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

	"github.com/pingcap/tidb/parser/ast"

	"github.com/replidb/replidb/pkg/util/dbterror"
)

// supportedAlterTypes is the narrow subset of ALTER sub-commands the apply
// path can execute deterministically on every replica.
var supportedAlterTypes = map[ast.AlterTableType]struct{}{
	ast.AlterTableAddColumns:     {},
	ast.AlterTableDropColumn:     {},
	ast.AlterTableModifyColumn:   {},
	ast.AlterTableChangeColumn:   {},
	ast.AlterTableRenameColumn:   {},
	ast.AlterTableAddConstraint:  {},
	ast.AlterTableDropIndex:      {},
	ast.AlterTableDropPrimaryKey: {},
	ast.AlterTableOption:         {},
}

// CheckAlterSupported rejects any ALTER sub-command outside the allow-list.
func CheckAlterSupported(stmt *ast.AlterTableStmt) error {
	for _, spec := range stmt.Specs {
		if _, ok := supportedAlterTypes[spec.Tp]; !ok {
			return dbterror.ErrNotImplemented.GenWithStackByArgs("unsupported type of ALTER query")
		}
		if spec.Tp == ast.AlterTableOption {
			for _, opt := range spec.Options {
				if opt.Tp == ast.TableOptionEngine {
					return dbterror.ErrNotImplemented.GenWithStackByArgs("changing the table engine is not supported")
				}
			}
		}
	}
	return nil
}

// ApplyAlter returns a new definition equal to d with all sub-commands of
// stmt applied. The table UUID and engine are preserved.
func ApplyAlter(d *Definition, stmt *ast.AlterTableStmt) (*Definition, error) {
	if err := CheckAlterSupported(stmt); err != nil {
		return nil, err
	}
	create, err := d.StmtFor("", NamePlaceholder)
	if err != nil {
		return nil, err
	}
	table := stmt.Table.Name.O
	for _, spec := range stmt.Specs {
		if err := applySpec(create, spec, table); err != nil {
			return nil, err
		}
	}
	sql, err := RestoreText(create)
	if err != nil {
		return nil, err
	}
	return ParseMetadata(uuidHeader + d.UUID.String() + "\n" + sql)
}

func findColumn(cols []*ast.ColumnDef, name string) int {
	lower := strings.ToLower(name)
	for i, col := range cols {
		if col.Name.Name.L == lower {
			return i
		}
	}
	return -1
}

func insertColumn(cols []*ast.ColumnDef, col *ast.ColumnDef, pos *ast.ColumnPosition, table string) ([]*ast.ColumnDef, error) {
	at := len(cols)
	if pos != nil {
		switch pos.Tp {
		case ast.ColumnPositionFirst:
			at = 0
		case ast.ColumnPositionAfter:
			idx := findColumn(cols, pos.RelativeColumn.Name.O)
			if idx < 0 {
				return nil, dbterror.ErrUnknownColumn.GenWithStackByArgs(pos.RelativeColumn.Name.O, table)
			}
			at = idx + 1
		}
	}
	cols = append(cols, nil)
	copy(cols[at+1:], cols[at:])
	cols[at] = col
	return cols, nil
}

func applySpec(create *ast.CreateTableStmt, spec *ast.AlterTableSpec, table string) error {
	switch spec.Tp {
	case ast.AlterTableAddColumns:
		for _, col := range spec.NewColumns {
			if findColumn(create.Cols, col.Name.Name.O) >= 0 {
				if spec.IfNotExists {
					continue
				}
				return dbterror.ErrBadArguments.GenWithStackByArgs("duplicate column " + col.Name.Name.O)
			}
			var err error
			create.Cols, err = insertColumn(create.Cols, col, spec.Position, table)
			if err != nil {
				return err
			}
		}
	case ast.AlterTableDropColumn:
		idx := findColumn(create.Cols, spec.OldColumnName.Name.O)
		if idx < 0 {
			if spec.IfExists {
				return nil
			}
			return dbterror.ErrUnknownColumn.GenWithStackByArgs(spec.OldColumnName.Name.O, table)
		}
		create.Cols = append(create.Cols[:idx], create.Cols[idx+1:]...)
	case ast.AlterTableModifyColumn:
		col := spec.NewColumns[0]
		idx := findColumn(create.Cols, col.Name.Name.O)
		if idx < 0 {
			return dbterror.ErrUnknownColumn.GenWithStackByArgs(col.Name.Name.O, table)
		}
		create.Cols[idx] = col
	case ast.AlterTableChangeColumn:
		idx := findColumn(create.Cols, spec.OldColumnName.Name.O)
		if idx < 0 {
			return dbterror.ErrUnknownColumn.GenWithStackByArgs(spec.OldColumnName.Name.O, table)
		}
		create.Cols[idx] = spec.NewColumns[0]
	case ast.AlterTableRenameColumn:
		idx := findColumn(create.Cols, spec.OldColumnName.Name.O)
		if idx < 0 {
			return dbterror.ErrUnknownColumn.GenWithStackByArgs(spec.OldColumnName.Name.O, table)
		}
		create.Cols[idx].Name.Name = spec.NewColumnName.Name
	case ast.AlterTableAddConstraint:
		if name := spec.Constraint.Name; name != "" {
			for _, c := range create.Constraints {
				if strings.EqualFold(c.Name, name) {
					return dbterror.ErrBadArguments.GenWithStackByArgs("duplicate constraint " + name)
				}
			}
		}
		create.Constraints = append(create.Constraints, spec.Constraint)
	case ast.AlterTableDropIndex:
		for i, c := range create.Constraints {
			if strings.EqualFold(c.Name, spec.Name) {
				create.Constraints = append(create.Constraints[:i], create.Constraints[i+1:]...)
				return nil
			}
		}
		if !spec.IfExists {
			return dbterror.ErrBadArguments.GenWithStackByArgs("index " + spec.Name + " does not exist")
		}
	case ast.AlterTableDropPrimaryKey:
		for i, c := range create.Constraints {
			if c.Tp == ast.ConstraintPrimaryKey {
				create.Constraints = append(create.Constraints[:i], create.Constraints[i+1:]...)
				return nil
			}
		}
		return dbterror.ErrBadArguments.GenWithStackByArgs("table " + table + " has no primary key")
	case ast.AlterTableOption:
		for _, opt := range spec.Options {
			replaced := false
			for i, cur := range create.Options {
				if cur.Tp == opt.Tp {
					create.Options[i] = opt
					replaced = true
					break
				}
			}
			if !replaced {
				create.Options = append(create.Options, opt)
			}
		}
	}
	return nil
}
