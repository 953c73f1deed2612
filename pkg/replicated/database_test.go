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
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/replicated"
	"github.com/replidb/replidb/pkg/util/dbterror"
)

func TestBootstrapLayout(t *testing.T) {
	store := memstore.New()
	db := openReplica(t, store, catalog.NewRegistry(), t.TempDir(), "s1", "r1", "hostA")
	require.Equal(t, testStorePath, db.StorePath())
	require.Equal(t, "s1|r1", db.FullReplicaName())

	s := store.Session()
	for _, node := range []string{"/log", "/replicas", "/counter", "/metadata"} {
		exists, err := s.Exists(testStorePath + node)
		require.NoError(t, err)
		require.True(t, exists, "missing node %s", node)
	}
	value, _, err := s.Get(testStorePath + "/logs_to_keep")
	require.NoError(t, err)
	require.Equal(t, "1000", value)
	value, _, err = s.Get(testStorePath + "/max_log_ptr")
	require.NoError(t, err)
	maxPtr, err := strconv.Atoi(value)
	require.NoError(t, err)
	require.GreaterOrEqual(t, maxPtr, 1)

	// The replica node holds the host-id and a zero log pointer.
	value, _, err = s.Get(testStorePath + "/replicas/s1|r1")
	require.NoError(t, err)
	require.Equal(t, db.HostID(), value)
	value, _, err = s.Get(testStorePath + "/replicas/s1|r1/log_ptr")
	require.NoError(t, err)
	require.Equal(t, "0", value)
}

func TestConcurrentBootstrap(t *testing.T) {
	store := memstore.New()
	var wg sync.WaitGroup
	errs := make([]error, 2)
	dirs := []string{t.TempDir(), t.TempDir()}
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = replicated.Open(replicated.Config{
				Name:      "db1",
				StorePath: testStorePath,
				Shard:     "s1",
				Replica:   "r" + strconv.Itoa(i+1),
				Host:      "host" + strconv.Itoa(i+1),
				TCPPort:   9000,
				DataDir:   dirs[i],
			}, store.Session(), catalog.NewRegistry())
		}()
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	s := store.Session()
	names, _, err := s.GetChildren(testStorePath + "/replicas")
	require.NoError(t, err)
	require.Len(t, names, 2)
}

func TestReplicaNameConflict(t *testing.T) {
	store := memstore.New()
	dir := t.TempDir()
	openReplica(t, store, catalog.NewRegistry(), dir, "s1", "r1", "hostA")

	// Same name, different host-id (a different database uuid) must fail.
	_, err := replicated.Open(replicated.Config{
		Name:      "db1",
		StorePath: testStorePath,
		Shard:     "s1",
		Replica:   "r1",
		Host:      "hostA",
		TCPPort:   9000,
		DataDir:   t.TempDir(),
	}, store.Session(), catalog.NewRegistry())
	require.True(t, dbterror.ErrReplicaExists.Equal(err), "got: %v", err)

	// Same name and the same host-id resumes.
	db, err := replicated.Open(replicated.Config{
		Name:      "db1",
		StorePath: testStorePath,
		Shard:     "s1",
		Replica:   "r1",
		Host:      "hostA",
		TCPPort:   9000,
		DataDir:   dir,
	}, store.Session(), catalog.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, "s1|r1", db.FullReplicaName())
}

func TestConcurrentSameNameJoin(t *testing.T) {
	store := memstore.New()
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = replicated.Open(replicated.Config{
				Name:      "db1",
				StorePath: testStorePath,
				Shard:     "s1",
				Replica:   "r1",
				Host:      "host" + strconv.Itoa(i+1),
				TCPPort:   9000,
				DataDir:   t.TempDir(),
			}, store.Session(), catalog.NewRegistry())
		}()
	}
	wg.Wait()
	failures := 0
	for _, err := range errs {
		if err != nil {
			require.True(t, dbterror.ErrReplicaExists.Equal(err), "got: %v", err)
			failures++
		}
	}
	require.Equal(t, 1, failures, "exactly one of two concurrent joins must lose")
}

func TestConfigValidation(t *testing.T) {
	store := memstore.New()
	bad := []replicated.Config{
		{Name: "db1", StorePath: "", Shard: "s", Replica: "r"},
		{Name: "db1", StorePath: "/p", Shard: "", Replica: "r"},
		{Name: "db1", StorePath: "/p", Shard: "s", Replica: ""},
		{Name: "db1", StorePath: "/p", Shard: "s/1", Replica: "r"},
		{Name: "db1", StorePath: "/p", Shard: "s", Replica: "r|1"},
	}
	for _, cfg := range bad {
		cfg.Host, cfg.TCPPort, cfg.DataDir = "h", 9000, t.TempDir()
		_, err := replicated.Open(cfg, store.Session(), catalog.NewRegistry())
		require.True(t, dbterror.ErrBadArguments.Equal(err), "cfg: %+v, got: %v", cfg, err)
	}
}

func TestStorePathNormalization(t *testing.T) {
	store := memstore.New()
	db, err := replicated.Open(replicated.Config{
		Name:      "db1",
		StorePath: "test/db1/",
		Shard:     "s1",
		Replica:   "r1",
		Host:      "hostA",
		TCPPort:   9000,
		DataDir:   t.TempDir(),
	}, store.Session(), catalog.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, "/test/db1", db.StorePath())
}

func TestParseFullReplicaName(t *testing.T) {
	shard, replica, err := replicated.ParseFullReplicaName("s1|r1")
	require.NoError(t, err)
	require.Equal(t, "s1", shard)
	require.Equal(t, "r1", replica)
	for _, name := range []string{"s1", "s1|r1|x", ""} {
		_, _, err := replicated.ParseFullReplicaName(name)
		require.True(t, dbterror.ErrLogicalError.Equal(err))
	}
}

func TestDropDatabase(t *testing.T) {
	store := memstore.New()
	db1 := startReplica(t, store, "s1", "r1", "hostA")
	db2 := startReplica(t, store, "s1", "r2", "hostB")
	execDDL(t, db1, "CREATE TABLE t (x INT)", 10*time.Second)

	db2.Shutdown()
	require.NoError(t, db2.Drop())
	s := store.Session()
	names, _, err := s.GetChildren(testStorePath + "/replicas")
	require.NoError(t, err)
	require.Equal(t, []string{"s1|r1"}, names)

	db1.Shutdown()
	require.NoError(t, db1.Drop())
	exists, err := s.Exists(testStorePath)
	require.NoError(t, err)
	require.False(t, exists, "the last replica removes the whole subtree")
}
