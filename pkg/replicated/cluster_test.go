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

package replicated_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/coordination/memstore"
)

func TestGetClusterGroupsShards(t *testing.T) {
	store := memstore.New()
	db := openReplica(t, store, catalog.NewRegistry(), t.TempDir(), "s1", "r1", "hostA")
	openReplica(t, store, catalog.NewRegistry(), t.TempDir(), "s1", "r2", "hostB")
	openReplica(t, store, catalog.NewRegistry(), t.TempDir(), "s2", "r1", "hostC")

	cluster, err := db.GetCluster()
	require.NoError(t, err)
	require.Equal(t, [][]string{{"hostA", "hostB"}, {"hostC"}}, cluster.Shards)
	require.Equal(t, "default", cluster.User)
	require.Equal(t, "", cluster.Password)
	require.Equal(t, 9000, cluster.TCPPort)
}

func TestDroppedReplicaIsInvisible(t *testing.T) {
	store := memstore.New()
	db := openReplica(t, store, catalog.NewRegistry(), t.TempDir(), "s1", "r1", "hostA")
	openReplica(t, store, catalog.NewRegistry(), t.TempDir(), "s2", "r1", "hostC")

	s := store.Session()
	require.NoError(t, s.Set(testStorePath+"/replicas/s2|r1", "DROPPED", coordination.AnyVersion))

	cluster, err := db.GetCluster()
	require.NoError(t, err)
	require.Equal(t, [][]string{{"hostA"}}, cluster.Shards)
}
