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

package ddlworker

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pingcap/errors"
)

// entryVersion is the wire version of a serialized log entry.
const entryVersion = 1

// LogEntry is one record of the ordered DDL log. An entry with an empty
// query is a heartbeat/join marker: it advances log pointers but executes
// nothing.
type LogEntry struct {
	Version int `json:"version"`
	// Query is the serialized DDL text.
	Query string `json:"query"`
	// Initiator is the host-id of the proposing replica.
	Initiator string `json:"initiator"`
	// Hosts restricts execution to the listed host-ids; empty means all.
	Hosts []string `json:"hosts,omitempty"`
}

// NewLogEntry returns an entry for a query proposed by initiator.
func NewLogEntry(query, initiator string) *LogEntry {
	return &LogEntry{Version: entryVersion, Query: query, Initiator: initiator}
}

// String serializes the entry for storage.
func (e *LogEntry) String() string {
	data, err := json.Marshal(e)
	if err != nil {
		// The entry is a plain value type; marshaling cannot fail.
		panic(err)
	}
	return string(data)
}

// AppliesTo reports whether the entry must execute on the given host-id.
func (e *LogEntry) AppliesTo(hostID string) bool {
	if len(e.Hosts) == 0 {
		return true
	}
	for _, h := range e.Hosts {
		if h == hostID {
			return true
		}
	}
	return false
}

// ParseLogEntry deserializes a stored log entry.
func ParseLogEntry(s string) (*LogEntry, error) {
	var e LogEntry
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return nil, errors.Annotate(err, "parse log entry")
	}
	return &e, nil
}

const entryNamePrefix = "query-"

// EntryName formats the log node name of an entry id.
func EntryName(id uint32) string {
	return fmt.Sprintf("%s%010d", entryNamePrefix, id)
}

// ParseEntryID extracts the entry id from a log node name or path.
func ParseEntryID(name string) (uint32, error) {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if !strings.HasPrefix(name, entryNamePrefix) {
		return 0, errors.Errorf("malformed log entry name %q", name)
	}
	id, err := strconv.ParseUint(name[len(entryNamePrefix):], 10, 32)
	if err != nil {
		return 0, errors.Annotatef(err, "malformed log entry name %q", name)
	}
	return uint32(id), nil
}
