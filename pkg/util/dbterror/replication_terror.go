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

package dbterror

import (
	"github.com/replidb/replidb/pkg/errno"
)

// Error instances of the replication layer.
var (
	ErrNoCoordination           = ClassReplication.NewStd(errno.ErrNoCoordination)
	ErrBadArguments             = ClassReplication.NewStd(errno.ErrBadArguments)
	ErrReplicaExists            = ClassReplication.NewStd(errno.ErrReplicaExists)
	ErrReplicationFailed        = ClassReplication.NewStd(errno.ErrReplicationFailed)
	ErrNotImplemented           = ClassReplication.NewStd(errno.ErrNotImplemented)
	ErrIncorrectQuery           = ClassReplication.NewStd(errno.ErrIncorrectQuery)
	ErrAllConnectionTriesFailed = ClassReplication.NewStd(errno.ErrAllConnectionTriesFailed)
	ErrLogicalError             = ClassReplication.NewStd(errno.ErrLogicalError)
)

// Error instances of the local catalog.
var (
	ErrUnknownTable    = ClassCatalog.NewStd(errno.ErrUnknownTable)
	ErrUnknownDatabase = ClassCatalog.NewStd(errno.ErrUnknownDatabase)
	ErrTableExists     = ClassCatalog.NewStd(errno.ErrTableExists)
	ErrUnknownColumn   = ClassCatalog.NewStd(errno.ErrUnknownColumn)
)
