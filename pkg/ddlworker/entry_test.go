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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogEntryRoundTrip(t *testing.T) {
	e := NewLogEntry("CREATE TABLE `t` (`x` INT)", "host:9000:uuid")
	parsed, err := ParseLogEntry(e.String())
	require.NoError(t, err)
	require.Equal(t, e.Query, parsed.Query)
	require.Equal(t, e.Initiator, parsed.Initiator)
	require.Empty(t, parsed.Hosts)

	_, err = ParseLogEntry("not json")
	require.Error(t, err)
}

func TestLogEntryAppliesTo(t *testing.T) {
	e := NewLogEntry("q", "h1")
	require.True(t, e.AppliesTo("anything"))
	e.Hosts = []string{"h1", "h2"}
	require.True(t, e.AppliesTo("h2"))
	require.False(t, e.AppliesTo("h3"))
}

func TestEntryNames(t *testing.T) {
	require.Equal(t, "query-0000000042", EntryName(42))
	id, err := ParseEntryID("query-0000000042")
	require.NoError(t, err)
	require.Equal(t, uint32(42), id)
	id, err = ParseEntryID("/db/log/query-0000000007")
	require.NoError(t, err)
	require.Equal(t, uint32(7), id)
	_, err = ParseEntryID("cnt-0000000001")
	require.Error(t, err)
}

func TestParseCounterID(t *testing.T) {
	id, err := ParseCounterID("/db/counter/cnt-0000000009")
	require.NoError(t, err)
	require.Equal(t, uint32(9), id)
	_, err = ParseCounterID("nope")
	require.Error(t, err)
}
