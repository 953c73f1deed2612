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

package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/replidb/replidb/pkg/coordination"
)

func TestCreateGetSet(t *testing.T) {
	s := New().Session()
	_, err := s.Create("/a", "v1", coordination.ModePersistent)
	require.NoError(t, err)
	_, err = s.Create("/a", "v1", coordination.ModePersistent)
	require.True(t, coordination.IsNodeExists(err))
	_, err = s.Create("/x/y", "v", coordination.ModePersistent)
	require.True(t, coordination.IsNoNode(err))

	value, stat, err := s.Get("/a")
	require.NoError(t, err)
	require.Equal(t, "v1", value)
	require.Equal(t, int32(0), stat.Version)

	require.NoError(t, s.Set("/a", "v2", 0))
	require.True(t, coordination.IsBadVersion(s.Set("/a", "v3", 0)))
	require.NoError(t, s.Set("/a", "v3", coordination.AnyVersion))

	value, stat, err = s.Get("/a")
	require.NoError(t, err)
	require.Equal(t, "v3", value)
	require.Equal(t, int32(2), stat.Version)
}

func TestSequentialNodes(t *testing.T) {
	s := New().Session()
	_, err := s.Create("/c", "", coordination.ModePersistent)
	require.NoError(t, err)

	p1, err := s.Create("/c/cnt-", "", coordination.ModeEphemeralSequential)
	require.NoError(t, err)
	require.Equal(t, "/c/cnt-0000000000", p1)
	p2, err := s.Create("/c/cnt-", "", coordination.ModeEphemeralSequential)
	require.NoError(t, err)
	require.Equal(t, "/c/cnt-0000000001", p2)

	// A plain create/delete pair still advances the numbering base.
	require.NoError(t, s.TryRemove(p2, coordination.AnyVersion))
	p3, err := s.Create("/c/cnt-", "", coordination.ModeEphemeralSequential)
	require.NoError(t, err)
	require.Equal(t, "/c/cnt-0000000003", p3)
}

func TestMultiAtomicity(t *testing.T) {
	s := New().Session()
	_, err := s.Create("/root", "", coordination.ModePersistent)
	require.NoError(t, err)

	err = s.Multi([]coordination.Op{
		coordination.MakeCreateOp("/root/a", "1", coordination.ModePersistent),
		coordination.MakeCreateOp("/root/a", "2", coordination.ModePersistent),
	})
	require.Error(t, err)
	require.True(t, coordination.IsNodeExists(err))
	me, ok := err.(*coordination.MultiError)
	require.True(t, ok)
	require.Equal(t, 1, me.Index)

	exists, err := s.Exists("/root/a")
	require.NoError(t, err)
	require.False(t, exists, "failed multi must apply nothing")

	// Create-then-remove inside one multi, the counter trick of bootstrap.
	err = s.Multi([]coordination.Op{
		coordination.MakeCreateOp("/root/tmp", "", coordination.ModePersistent),
		coordination.MakeRemoveOp("/root/tmp", coordination.AnyVersion),
		coordination.MakeCreateOp("/root/b", "x", coordination.ModePersistent),
	})
	require.NoError(t, err)
	exists, err = s.Exists("/root/tmp")
	require.NoError(t, err)
	require.False(t, exists)
	value, _, err := s.Get("/root/b")
	require.NoError(t, err)
	require.Equal(t, "x", value)
}

func TestRemoveSemantics(t *testing.T) {
	s := New().Session()
	_, err := s.Create("/p", "", coordination.ModePersistent)
	require.NoError(t, err)
	_, err = s.Create("/p/c", "", coordination.ModePersistent)
	require.NoError(t, err)

	require.True(t, coordination.IsNotEmpty(s.TryRemove("/p", coordination.AnyVersion)))
	require.True(t, coordination.IsNoNode(s.TryRemove("/nope", coordination.AnyVersion)))
	require.NoError(t, s.TryRemoveRecursive("/p"))
	exists, err := s.Exists("/p")
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, s.TryRemoveRecursive("/p"))
}

func TestWatchChildren(t *testing.T) {
	s := New().Session()
	_, err := s.Create("/w", "", coordination.ModePersistent)
	require.NoError(t, err)

	names, changed, err := s.WatchChildren("/w")
	require.NoError(t, err)
	require.Empty(t, names)

	_, err = s.Create("/w/child", "", coordination.ModePersistent)
	require.NoError(t, err)
	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("child watch did not fire")
	}
}

func TestCreateAncestors(t *testing.T) {
	s := New().Session()
	require.NoError(t, s.CreateAncestors("/a/b/c"))
	exists, err := s.Exists("/a/b")
	require.NoError(t, err)
	require.True(t, exists)
	exists, err = s.Exists("/a/b/c")
	require.NoError(t, err)
	require.False(t, exists, "the node itself must not be created")
}
