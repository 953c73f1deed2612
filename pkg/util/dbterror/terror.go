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
	"github.com/pingcap/tidb/parser/terror"

	"github.com/replidb/replidb/pkg/errno"
)

// ErrClass represents a class of errors.
type ErrClass struct {
	terror.ErrClass
}

// Error classes. Class codes live above the ranges used by the parser
// module so registration never conflicts.
var (
	ClassReplication = ErrClass{terror.RegisterErrorClass(8101, "replication")}
	ClassCatalog     = ErrClass{terror.RegisterErrorClass(8102, "catalog")}
)

// NewStd calls New using the standard message template for the error code.
func (ec ErrClass) NewStd(code terror.ErrCode) *terror.Error {
	return ec.New(code, errno.Message(int(code)))
}
