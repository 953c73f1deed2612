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
	"context"

	"github.com/google/uuid"
	"github.com/pingcap/tidb/parser/ast"
	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/ddlworker"
	"github.com/replidb/replidb/pkg/metrics"
	"github.com/replidb/replidb/pkg/objdef"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

// ExecuteDDL accepts a DDL statement from a client session, normalizes it,
// makes it durable in the log, applies it locally and, when the session's
// DDL task timeout is non-zero, waits for the other replicas to report
// completion. The returned statuses are nil on a fire-and-forget propose.
func (db *Database) ExecuteDDL(ctx context.Context, se *sessionctx.Session, query string) ([]ddlworker.ReplicaStatus, error) {
	if se == nil || !se.IsInitialQuery() {
		return nil, dbterror.ErrIncorrectQuery.GenWithStackByArgs("it's not an initial query; replicated databases accept DDL only from client sessions")
	}
	text, err := db.normalizeProposed(query)
	if err != nil {
		return nil, err
	}
	return db.propose(ctx, se, text)
}

func (db *Database) propose(ctx context.Context, se *sessionctx.Session, query string) ([]ddlworker.ReplicaStatus, error) {
	db.logger.Debug("proposing query", zap.String("query", query))
	metrics.ProposedDDLCounter.Inc()

	entry := ddlworker.NewLogEntry(query, db.hostID)
	entryPath, err := db.worker.TryEnqueueAndExecuteEntry(entry, se)
	if err != nil {
		return nil, err
	}
	if se.DDLTaskTimeout == 0 {
		return nil, nil
	}
	entryID, err := ddlworker.ParseEntryID(entryPath)
	if err != nil {
		return nil, err
	}
	replicas, _, err := db.store.GetChildren(ddlworker.ReplicasPath(db.storePath))
	if err != nil {
		return nil, err
	}
	return db.worker.WaitForReplicas(ctx, entryID, replicas, se.DDLTaskTimeout), nil
}

// normalizeProposed turns a client query into the exact text of its log
// entry: database names are stripped, the ALTER allow-list is enforced and
// CREATE entries get the table UUID the whole cluster will use.
func (db *Database) normalizeProposed(query string) (string, error) {
	if name, ok := parseDetachQuery(query); ok {
		n, err := unquoteName(name)
		if err != nil {
			return "", err
		}
		return detachPrefix + quoteName(n) + detachSuffix, nil
	}
	if a, b, ok := parseExchangeQuery(query); ok {
		an, err := unquoteName(a)
		if err != nil {
			return "", err
		}
		bn, err := unquoteName(b)
		if err != nil {
			return "", err
		}
		return exchangePrefix + quoteName(an) + exchangeInfix + quoteName(bn), nil
	}

	stmt, err := objdef.ParseOne(query)
	if err != nil {
		return "", err
	}
	switch s := stmt.(type) {
	case *ast.CreateTableStmt:
		if s.ReferTable != nil || s.Select != nil {
			return "", dbterror.ErrNotImplemented.GenWithStackByArgs("CREATE TABLE LIKE/AS SELECT is not supported for replicated databases")
		}
		objdef.StripDatabase(s)
		text, err := objdef.StatementText(s)
		if err != nil {
			return "", err
		}
		return uuidHeaderPrefix + uuid.New().String() + "\n" + text, nil
	case *ast.AlterTableStmt:
		if err := objdef.CheckAlterSupported(s); err != nil {
			return "", err
		}
		objdef.StripDatabase(s)
		return objdef.StatementText(s)
	case *ast.DropTableStmt:
		objdef.StripDatabase(s)
		return objdef.StatementText(s)
	case *ast.RenameTableStmt:
		for _, tt := range s.TableToTables {
			for _, t := range []*ast.TableName{tt.OldTable, tt.NewTable} {
				if t.Schema.O != "" && t.Schema.O != db.cfg.Name {
					return "", dbterror.ErrNotImplemented.GenWithStackByArgs("moving tables between databases is not supported for replicated databases")
				}
			}
		}
		objdef.StripDatabase(s)
		return objdef.StatementText(s)
	}
	return "", dbterror.ErrIncorrectQuery.GenWithStackByArgs("unsupported statement for a replicated database")
}
