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
	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

// The hooks below wrap every local catalog mutation. Each follows the same
// pattern: when the statement is the initiating one, push the matching
// /metadata operation into the statement's metadata transaction, then
// delegate to the local catalog, which commits the transaction atomically
// with the local on-disk change.

// metaTxOf returns the statement's metadata transaction and checks the
// precondition: once the apply worker runs, every catalog mutation must
// carry a transaction.
func (db *Database) metaTxOf(se *sessionctx.Session) (*sessionctx.MetaTx, error) {
	var txn *sessionctx.MetaTx
	if se != nil {
		txn = se.MetadataTransaction()
	}
	if txn == nil && db.worker != nil && db.worker.IsCurrentlyActive() {
		return nil, dbterror.ErrLogicalError.GenWithStackByArgs("catalog mutation without a metadata transaction while the ddl worker is active")
	}
	return txn, nil
}

func (db *Database) metadataNodePath(name string) string {
	return db.storePath + "/metadata/" + objdef.EscapeForFileName(name)
}

func (db *Database) createTable(se *sessionctx.Session, name string, def *objdef.Definition) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if txn != nil && txn.IsInitialQuery {
		// The multi-op fails if the metadata node exists, which makes a
		// concurrent create of the same name lose cleanly.
		txn.AddOp(coordination.MakeCreateOp(db.metadataNodePath(name), def.Text, coordination.ModePersistent))
	}
	return db.catalog.CreateTable(se, name, def)
}

func (db *Database) dropTable(se *sessionctx.Session, name string) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if txn != nil && txn.IsInitialQuery {
		txn.AddOp(coordination.MakeRemoveOp(db.metadataNodePath(name), coordination.AnyVersion))
	}
	return db.catalog.DropTable(se, name)
}

func (db *Database) detachTablePermanently(se *sessionctx.Session, name string) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if txn != nil && txn.IsInitialQuery {
		txn.AddOp(coordination.MakeRemoveOp(db.metadataNodePath(name), coordination.AnyVersion))
	}
	return db.catalog.DetachTablePermanently(se, name)
}

func (db *Database) commitAlter(se *sessionctx.Session, name string, def *objdef.Definition) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if txn != nil && txn.IsInitialQuery {
		txn.AddOp(coordination.MakeSetOp(db.metadataNodePath(name), def.Text, coordination.AnyVersion))
	}
	return db.catalog.CommitAlter(se, name, def)
}

func (db *Database) createDictionary(se *sessionctx.Session, name string, def *objdef.Definition) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if txn != nil && txn.IsInitialQuery {
		txn.AddOp(coordination.MakeCreateOp(db.metadataNodePath(name), def.Text, coordination.ModePersistent))
	}
	return db.catalog.CreateDictionary(se, name, def)
}

func (db *Database) removeDictionary(se *sessionctx.Session, name string) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if txn != nil && txn.IsInitialQuery {
		txn.AddOp(coordination.MakeRemoveOp(db.metadataNodePath(name), coordination.AnyVersion))
	}
	return db.catalog.RemoveDictionary(se, name)
}

// renameTable validates the rename contract and, on the initiating replica,
// moves the stored definitions between the /metadata nodes in the same
// multi-op that gates the local rename.
func (db *Database) renameTable(se *sessionctx.Session, name, toName string, exchange bool) error {
	txn, err := db.metaTxOf(se)
	if err != nil {
		return err
	}
	if name == toName {
		return dbterror.ErrIncorrectQuery.GenWithStackByArgs("cannot rename table to itself")
	}
	if !db.catalog.IsTableExist(name) {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(name)
	}
	if exchange && !db.catalog.IsTableExist(toName) {
		return dbterror.ErrUnknownTable.GenWithStackByArgs(toName)
	}
	if txn != nil && txn.IsInitialQuery {
		statement, err := db.catalog.ReadMetadataFile(name)
		if err != nil {
			return err
		}
		fromPath := db.metadataNodePath(name)
		toPath := db.metadataNodePath(toName)
		txn.AddOp(coordination.MakeRemoveOp(fromPath, coordination.AnyVersion))
		if exchange {
			statementTo, err := db.catalog.ReadMetadataFile(toName)
			if err != nil {
				return err
			}
			txn.AddOp(coordination.MakeRemoveOp(toPath, coordination.AnyVersion))
			txn.AddOp(coordination.MakeCreateOp(fromPath, statementTo, coordination.ModePersistent))
		}
		txn.AddOp(coordination.MakeCreateOp(toPath, statement, coordination.ModePersistent))
	}
	return db.catalog.RenameTable(se, name, db.catalog, toName, exchange)
}
