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

// Package zkstore implements the coordination client on ZooKeeper.
package zkstore

import (
	"strings"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/pingcap/errors"
	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/util/logutil"
)

// Client wraps a ZooKeeper connection.
type Client struct {
	conn   *zk.Conn
	logger *zap.Logger
}

var _ coordination.Client = (*Client)(nil)

// Connect establishes a ZooKeeper session.
func Connect(endpoints []string, sessionTimeout time.Duration) (*Client, error) {
	conn, _, err := zk.Connect(endpoints, sessionTimeout, zk.WithLogInfo(false))
	if err != nil {
		return nil, errors.Annotate(err, "connect to coordination store")
	}
	return &Client{
		conn:   conn,
		logger: logutil.BgLogger().With(zap.String("component", "zkstore")),
	}, nil
}

func mapErr(err error) error {
	switch err {
	case nil:
		return nil
	case zk.ErrNoNode:
		return coordination.ErrNoNode
	case zk.ErrNodeExists:
		return coordination.ErrNodeExists
	case zk.ErrNotEmpty:
		return coordination.ErrNotEmpty
	case zk.ErrBadVersion:
		return coordination.ErrBadVersion
	case zk.ErrClosing, zk.ErrConnectionClosed:
		return coordination.ErrClosed
	}
	return errors.Trace(err)
}

func mapStat(st *zk.Stat) *coordination.Stat {
	if st == nil {
		return nil
	}
	return &coordination.Stat{Version: st.Version, CVersion: st.Cversion}
}

// Create implements coordination.Client.
func (c *Client) Create(path, value string, mode coordination.CreateMode) (string, error) {
	var flags int32
	if mode == coordination.ModeEphemeralSequential {
		flags = zk.FlagEphemeral | zk.FlagSequence
	}
	created, err := c.conn.Create(path, []byte(value), flags, zk.WorldACL(zk.PermAll))
	return created, mapErr(err)
}

// Set implements coordination.Client.
func (c *Client) Set(path, value string, version int32) error {
	_, err := c.conn.Set(path, []byte(value), version)
	return mapErr(err)
}

// Get implements coordination.Client.
func (c *Client) Get(path string) (string, *coordination.Stat, error) {
	data, st, err := c.conn.Get(path)
	if err != nil {
		return "", nil, mapErr(err)
	}
	return string(data), mapStat(st), nil
}

// TryGet implements coordination.Client.
func (c *Client) TryGet(path string) (string, bool, error) {
	data, _, err := c.conn.Get(path)
	if err == zk.ErrNoNode {
		return "", false, nil
	}
	if err != nil {
		return "", false, mapErr(err)
	}
	return string(data), true, nil
}

// AsyncTryGet implements coordination.Client.
func (c *Client) AsyncTryGet(path string) <-chan coordination.TryGetResult {
	ch := make(chan coordination.TryGetResult, 1)
	go func() {
		value, exists, err := c.TryGet(path)
		ch <- coordination.TryGetResult{Value: value, Exists: exists, Err: err}
	}()
	return ch
}

// GetChildren implements coordination.Client.
func (c *Client) GetChildren(path string) ([]string, *coordination.Stat, error) {
	names, st, err := c.conn.Children(path)
	if err != nil {
		return nil, nil, mapErr(err)
	}
	return names, mapStat(st), nil
}

// WatchChildren implements coordination.Client.
func (c *Client) WatchChildren(path string) ([]string, <-chan struct{}, error) {
	names, _, events, err := c.conn.ChildrenW(path)
	if err != nil {
		return nil, nil, mapErr(err)
	}
	ch := make(chan struct{})
	go func() {
		<-events
		close(ch)
	}()
	return names, ch, nil
}

// Exists implements coordination.Client.
func (c *Client) Exists(path string) (bool, error) {
	ok, _, err := c.conn.Exists(path)
	return ok, mapErr(err)
}

// TryRemove implements coordination.Client.
func (c *Client) TryRemove(path string, version int32) error {
	return mapErr(c.conn.Delete(path, version))
}

// TryRemoveRecursive implements coordination.Client.
func (c *Client) TryRemoveRecursive(path string) error {
	names, _, err := c.conn.Children(path)
	if err == zk.ErrNoNode {
		return nil
	}
	if err != nil {
		return mapErr(err)
	}
	for _, name := range names {
		if err := c.TryRemoveRecursive(path + "/" + name); err != nil {
			return err
		}
	}
	err = c.conn.Delete(path, coordination.AnyVersion)
	if err == zk.ErrNoNode {
		return nil
	}
	return mapErr(err)
}

// Multi implements coordination.Client.
func (c *Client) Multi(ops []coordination.Op) error {
	reqs := make([]interface{}, 0, len(ops))
	for _, op := range ops {
		switch op.Tp {
		case coordination.OpCreate:
			var flags int32
			if op.Mode == coordination.ModeEphemeralSequential {
				flags = zk.FlagEphemeral | zk.FlagSequence
			}
			reqs = append(reqs, &zk.CreateRequest{
				Path: op.Path, Data: []byte(op.Value), Acl: zk.WorldACL(zk.PermAll), Flags: flags,
			})
		case coordination.OpSet:
			reqs = append(reqs, &zk.SetDataRequest{Path: op.Path, Data: []byte(op.Value), Version: op.Version})
		case coordination.OpRemove:
			reqs = append(reqs, &zk.DeleteRequest{Path: op.Path, Version: op.Version})
		}
	}
	resps, err := c.conn.Multi(reqs...)
	if err == nil {
		return nil
	}
	c.logger.Debug("multi failed", zap.Int("ops", len(ops)), zap.Error(err))
	for i, resp := range resps {
		if resp.Error != nil && resp.Error != zk.ErrAPIError {
			return &coordination.MultiError{Index: i, Path: ops[i].Path, Cause: mapErr(resp.Error)}
		}
	}
	return &coordination.MultiError{Index: -1, Cause: mapErr(err)}
}

// CreateAncestors implements coordination.Client.
func (c *Client) CreateAncestors(path string) error {
	segs := coordination.SplitPath(path)
	cur := ""
	for i := 0; i+1 < len(segs); i++ {
		cur = cur + "/" + segs[i]
		_, err := c.conn.Create(cur, nil, 0, zk.WorldACL(zk.PermAll))
		if err != nil && err != zk.ErrNodeExists {
			return mapErr(err)
		}
	}
	return nil
}

// Close implements coordination.Client.
func (c *Client) Close() {
	c.conn.Close()
}

// Endpoints parses a comma separated endpoint list.
func Endpoints(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
