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

// Package memstore is an in-process coordination store with the same
// semantics the replication core assumes from ZooKeeper: atomic multi-op
// transactions, sequential node numbering derived from the parent's child
// version, and one-shot child watches. It backs tests and single-process
// deployments.
package memstore

import (
	"sort"
	"strings"
	"sync"

	"github.com/replidb/replidb/pkg/coordination"
)

type node struct {
	value    string
	version  int32
	cversion int32
	children map[string]*node
	watchers []chan struct{}
}

func newNode(value string) *node {
	return &node{value: value, children: make(map[string]*node)}
}

// Store is a hierarchical in-memory store. The zero value is not usable;
// call New.
type Store struct {
	mu   sync.Mutex
	root *node
}

// New returns an empty store.
func New() *Store {
	return &Store{root: newNode("")}
}

// Session returns a client view of the store. All sessions share the same
// tree, which is what multi-replica tests need.
func (s *Store) Session() coordination.Client {
	return &session{store: s}
}

type session struct {
	store  *Store
	closed bool
}

func (s *session) lookup(path string) (*node, bool) {
	cur := s.store.root
	for _, seg := range coordination.SplitPath(path) {
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func splitParent(path string) (parent, name string) {
	segs := coordination.SplitPath(path)
	if len(segs) == 0 {
		return "", ""
	}
	return "/" + strings.Join(segs[:len(segs)-1], "/"), segs[len(segs)-1]
}

// txn collects child-change notifications so they fire only after the whole
// operation (in particular a multi) succeeded.
type txn struct {
	notify map[*node]struct{}
	undo   []func()
}

func (t *txn) addNotify(n *node) {
	if t.notify == nil {
		t.notify = make(map[*node]struct{})
	}
	t.notify[n] = struct{}{}
}

func (t *txn) commitNotify() {
	for n := range t.notify {
		for _, w := range n.watchers {
			close(w)
		}
		n.watchers = nil
	}
}

func (t *txn) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
}

func (s *session) createLocked(t *txn, path, value string, mode coordination.CreateMode) (string, error) {
	parentPath, name := splitParent(path)
	if name == "" {
		return "", coordination.ErrNodeExists
	}
	parent, ok := s.lookup(parentPath)
	if !ok {
		return "", coordination.ErrNoNode
	}
	if mode == coordination.ModeEphemeralSequential {
		name = coordination.SeqName(name, int64(parent.cversion))
	}
	if _, ok := parent.children[name]; ok {
		return "", coordination.ErrNodeExists
	}
	parent.children[name] = newNode(value)
	parent.cversion++
	t.addNotify(parent)
	t.undo = append(t.undo, func() {
		delete(parent.children, name)
		parent.cversion--
	})
	if parentPath == "/" {
		return "/" + name, nil
	}
	return parentPath + "/" + name, nil
}

func (s *session) setLocked(t *txn, path, value string, version int32) error {
	n, ok := s.lookup(path)
	if !ok {
		return coordination.ErrNoNode
	}
	if version != coordination.AnyVersion && version != n.version {
		return coordination.ErrBadVersion
	}
	prev, prevVer := n.value, n.version
	n.value = value
	n.version++
	t.undo = append(t.undo, func() {
		n.value = prev
		n.version = prevVer
	})
	return nil
}

func (s *session) removeLocked(t *txn, path string, version int32) error {
	parentPath, name := splitParent(path)
	if name == "" {
		return coordination.ErrNotEmpty
	}
	parent, ok := s.lookup(parentPath)
	if !ok {
		return coordination.ErrNoNode
	}
	n, ok := parent.children[name]
	if !ok {
		return coordination.ErrNoNode
	}
	if version != coordination.AnyVersion && version != n.version {
		return coordination.ErrBadVersion
	}
	if len(n.children) != 0 {
		return coordination.ErrNotEmpty
	}
	delete(parent.children, name)
	parent.cversion++
	t.addNotify(parent)
	t.undo = append(t.undo, func() {
		parent.children[name] = n
		parent.cversion--
	})
	return nil
}

// Create implements coordination.Client.
func (s *session) Create(path, value string, mode coordination.CreateMode) (string, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return "", coordination.ErrClosed
	}
	var t txn
	created, err := s.createLocked(&t, path, value, mode)
	if err != nil {
		return "", err
	}
	t.commitNotify()
	return created, nil
}

// Set implements coordination.Client.
func (s *session) Set(path, value string, version int32) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return coordination.ErrClosed
	}
	var t txn
	return s.setLocked(&t, path, value, version)
}

// Get implements coordination.Client.
func (s *session) Get(path string) (string, *coordination.Stat, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return "", nil, coordination.ErrClosed
	}
	n, ok := s.lookup(path)
	if !ok {
		return "", nil, coordination.ErrNoNode
	}
	return n.value, &coordination.Stat{Version: n.version, CVersion: n.cversion}, nil
}

// TryGet implements coordination.Client.
func (s *session) TryGet(path string) (string, bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return "", false, coordination.ErrClosed
	}
	n, ok := s.lookup(path)
	if !ok {
		return "", false, nil
	}
	return n.value, true, nil
}

// AsyncTryGet implements coordination.Client.
func (s *session) AsyncTryGet(path string) <-chan coordination.TryGetResult {
	ch := make(chan coordination.TryGetResult, 1)
	value, exists, err := s.TryGet(path)
	ch <- coordination.TryGetResult{Value: value, Exists: exists, Err: err}
	return ch
}

// GetChildren implements coordination.Client.
func (s *session) GetChildren(path string) ([]string, *coordination.Stat, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return nil, nil, coordination.ErrClosed
	}
	n, ok := s.lookup(path)
	if !ok {
		return nil, nil, coordination.ErrNoNode
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, &coordination.Stat{Version: n.version, CVersion: n.cversion}, nil
}

// WatchChildren implements coordination.Client.
func (s *session) WatchChildren(path string) ([]string, <-chan struct{}, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return nil, nil, coordination.ErrClosed
	}
	n, ok := s.lookup(path)
	if !ok {
		return nil, nil, coordination.ErrNoNode
	}
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	ch := make(chan struct{})
	n.watchers = append(n.watchers, ch)
	return names, ch, nil
}

// Exists implements coordination.Client.
func (s *session) Exists(path string) (bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return false, coordination.ErrClosed
	}
	_, ok := s.lookup(path)
	return ok, nil
}

// TryRemove implements coordination.Client.
func (s *session) TryRemove(path string, version int32) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return coordination.ErrClosed
	}
	var t txn
	if err := s.removeLocked(&t, path, version); err != nil {
		return err
	}
	t.commitNotify()
	return nil
}

// TryRemoveRecursive implements coordination.Client.
func (s *session) TryRemoveRecursive(path string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return coordination.ErrClosed
	}
	parentPath, name := splitParent(path)
	if name == "" {
		return nil
	}
	parent, ok := s.lookup(parentPath)
	if !ok {
		return nil
	}
	if _, ok := parent.children[name]; !ok {
		return nil
	}
	delete(parent.children, name)
	parent.cversion++
	var t txn
	t.addNotify(parent)
	t.commitNotify()
	return nil
}

// Multi implements coordination.Client.
func (s *session) Multi(ops []coordination.Op) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return coordination.ErrClosed
	}
	var t txn
	for i, op := range ops {
		var err error
		switch op.Tp {
		case coordination.OpCreate:
			_, err = s.createLocked(&t, op.Path, op.Value, op.Mode)
		case coordination.OpSet:
			err = s.setLocked(&t, op.Path, op.Value, op.Version)
		case coordination.OpRemove:
			err = s.removeLocked(&t, op.Path, op.Version)
		}
		if err != nil {
			t.rollback()
			return &coordination.MultiError{Index: i, Path: op.Path, Cause: err}
		}
	}
	t.commitNotify()
	return nil
}

// CreateAncestors implements coordination.Client.
func (s *session) CreateAncestors(path string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.closed {
		return coordination.ErrClosed
	}
	segs := coordination.SplitPath(path)
	cur := s.store.root
	for i := 0; i+1 < len(segs); i++ {
		next, ok := cur.children[segs[i]]
		if !ok {
			next = newNode("")
			cur.children[segs[i]] = next
			cur.cversion++
			var t txn
			t.addNotify(cur)
			t.commitNotify()
		}
		cur = next
	}
	return nil
}

// Close implements coordination.Client.
func (s *session) Close() {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.closed = true
}
