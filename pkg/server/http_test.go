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

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/replicated"
)

func newTestServer(t *testing.T) (*Server, *replicated.Database) {
	t.Helper()
	store := memstore.New()
	db, err := replicated.Open(replicated.Config{
		Name:      "db1",
		StorePath: "/test/db1",
		Shard:     "s1",
		Replica:   "r1",
		Host:      "hostA",
		TCPPort:   9000,
		DataDir:   t.TempDir(),
	}, store.Session(), catalog.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, db.Startup())
	t.Cleanup(db.Shutdown)
	return New("127.0.0.1:0", db, 5*time.Second), db
}

func TestHandleDDL(t *testing.T) {
	s, db := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	body, _ := json.Marshal(ddlRequest{Query: "CREATE TABLE t (x INT)"})
	resp, err := http.Post(ts.URL+"/ddl", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out ddlResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Replicas, 1)
	require.True(t, out.Replicas[0].Finished)
	require.True(t, db.Catalog().IsTableExist("t"))
}

func TestHandleDDLRejectsBadRequests(t *testing.T) {
	s, _ := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/ddl", "application/json", bytes.NewReader([]byte("{}")))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := json.Marshal(ddlRequest{Query: "SELECT 1"})
	resp, err = http.Post(ts.URL+"/ddl", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleClusterAndHealth(t *testing.T) {
	s, _ := newTestServer(t)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/cluster")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cluster replicated.Cluster
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cluster))
	require.Equal(t, [][]string{{"hostA"}}, cluster.Shards)

	resp2, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	resp3, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)
}
