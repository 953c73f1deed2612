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

package errno

// Error codes of the replicated catalog coordinator. The numeric space is
// stable: codes are part of the client-visible error text and must not be
// renumbered.
const (
	ErrNoCoordination           = 8001
	ErrBadArguments             = 8002
	ErrReplicaExists            = 8003
	ErrReplicationFailed        = 8004
	ErrNotImplemented           = 8005
	ErrIncorrectQuery           = 8006
	ErrUnknownTable             = 8007
	ErrUnknownDatabase          = 8008
	ErrAllConnectionTriesFailed = 8009
	ErrLogicalError             = 8010
	ErrTableExists              = 8011
	ErrUnknownColumn            = 8012
)

// ErrMessages maps an error code to its message template. Templates use
// fmt verbs and are instantiated with GenWithStackByArgs.
var ErrMessages = map[int]string{
	ErrNoCoordination:           "can't create replicated database without a coordination store",
	ErrBadArguments:             "%s",
	ErrReplicaExists:            "replica %s of shard %s of replicated database at %s already exists, replica host ID: '%s', current host ID: '%s'",
	ErrReplicationFailed:        "%s",
	ErrNotImplemented:           "%s",
	ErrIncorrectQuery:           "%s",
	ErrUnknownTable:             "table %s does not exist",
	ErrUnknownDatabase:          "database %s does not exist",
	ErrAllConnectionTriesFailed: "cannot get consistent cluster snapshot",
	ErrLogicalError:             "%s",
	ErrTableExists:              "table %s already exists",
	ErrUnknownColumn:            "unknown column %s in table %s",
}

// Message returns the message template of code, or an empty string for an
// unknown code.
func Message(code int) string {
	return ErrMessages[code]
}
