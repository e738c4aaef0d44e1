// Copyright 2025 Naren Yellavula
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

package main

import (
	"sort"
	"sync"
	"time"

	"github.com/cybrota/treekit/avl"
	"github.com/cybrota/treekit/binarytree"
	"github.com/cybrota/treekit/bst"
	"github.com/cybrota/treekit/maxheap"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

type TreeKind string

const (
	KindAVL  TreeKind = "avl"
	KindBST  TreeKind = "bst"
	KindHeap TreeKind = "heap"
)

var (
	ErrUnknownKind   = errors.New("unknown tree kind")
	ErrSessionExists = errors.New("tree name already in use")
	ErrNoSession     = errors.New("no tree with that name")
	ErrUnsupported   = errors.New("operation not supported by this tree kind")
)

func ParseKind(s string) (TreeKind, error) {
	switch TreeKind(s) {
	case KindAVL, KindBST, KindHeap:
		return TreeKind(s), nil
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q (want avl, bst or heap)", s)
}

// Session is one named tree. Callers hold Lock for the whole of a command.
type Session struct {
	sync.Mutex

	Name string
	Kind TreeKind

	alloc *binarytree.LimitedAllocator[int]
	avl   *avl.Tree[int]
	bst   *bst.Tree[int]
	heap  *maxheap.Heap[int]
}

func newSession(name string, kind TreeKind, maxNodes int) *Session {
	s := &Session{
		Name:  name,
		Kind:  kind,
		alloc: binarytree.NewLimitedAllocator[int](maxNodes),
	}
	switch kind {
	case KindAVL:
		s.avl = avl.NewTree[int](s.alloc)
	case KindBST:
		s.bst = bst.NewTree[int](s.alloc)
	case KindHeap:
		s.heap = maxheap.NewHeap[int](s.alloc)
	}
	return s
}

// Root returns the current root node, nil for an empty tree.
func (s *Session) Root() *binarytree.Node[int] {
	switch s.Kind {
	case KindAVL:
		return s.avl.Root
	case KindBST:
		return s.bst.Root
	default:
		return s.heap.Root
	}
}

func (s *Session) Insert(v int) error {
	var err error
	switch s.Kind {
	case KindAVL:
		_, err = s.avl.Insert(v)
	case KindBST:
		_, err = s.bst.Insert(v)
	default:
		_, err = s.heap.Insert(v)
	}
	return err
}

// Contains reports whether v is stored. Heaps are scanned in level order.
func (s *Session) Contains(v int) bool {
	switch s.Kind {
	case KindAVL:
		return s.avl.Search(v) != nil
	case KindBST:
		return s.bst.Search(v) != nil
	}
	found := false
	binarytree.WalkLevels(s.heap.Root, func(n *binarytree.Node[int]) bool {
		found = n.Value == v
		return !found
	})
	return found
}

func (s *Session) Remove(v int) error {
	switch s.Kind {
	case KindAVL:
		return s.avl.Remove(v)
	case KindBST:
		return s.bst.Remove(v)
	}
	return errors.Wrap(ErrUnsupported, "heap remove (use extract)")
}

func (s *Session) Extract() (int, error) {
	if s.Kind != KindHeap {
		return 0, errors.Wrapf(ErrUnsupported, "%s extract", s.Kind)
	}
	return s.heap.Extract()
}

// Sorted returns the values in order. Search trees list ascending and keep
// their nodes; a heap drains into descending order and ends up empty.
func (s *Session) Sorted() []int {
	if s.Kind == KindHeap {
		return s.heap.ToSortedSlice()
	}
	return binarytree.Values(s.Root())
}

// DuplicatesAllowed reports whether Insert accepts a value already stored.
func (s *Session) DuplicatesAllowed() bool {
	return s.Kind == KindHeap
}

const (
	defaultSessionTTL     = 30 * time.Minute
	defaultSessionCleanup = 5 * time.Minute
)

// Store keeps named sessions in memory and drops them after ttl without use.
type Store struct {
	c        *cache.Cache
	ttl      time.Duration
	maxNodes int
}

func NewStore(cfg SessionConfig, maxNodes int) *Store {
	ttl, cleanup := cfg.TTL, cfg.Cleanup
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if cleanup <= 0 {
		cleanup = defaultSessionCleanup
	}
	return &Store{c: cache.New(ttl, cleanup), ttl: ttl, maxNodes: maxNodes}
}

func (st *Store) Create(name string, kind TreeKind) (*Session, error) {
	s := newSession(name, kind, st.maxNodes)
	if err := st.c.Add(name, s, st.ttl); err != nil {
		return nil, errors.Wrapf(ErrSessionExists, "%q", name)
	}
	clog.Debug("session created", "name", name, "kind", kind)
	return s, nil
}

// Get looks name up and restarts its expiry clock. The refresh uses Replace,
// so a session dropped or expired after the lookup stays gone.
func (st *Store) Get(name string) (*Session, error) {
	val, ok := st.c.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrNoSession, "%q", name)
	}
	if err := st.c.Replace(name, val, st.ttl); err != nil {
		return nil, errors.Wrapf(ErrNoSession, "%q", name)
	}
	return val.(*Session), nil
}

func (st *Store) Drop(name string) error {
	if _, ok := st.c.Get(name); !ok {
		return errors.Wrapf(ErrNoSession, "%q", name)
	}
	st.c.Delete(name)
	return nil
}

// Sessions lists live sessions by name without touching their expiry.
func (st *Store) Sessions() []*Session {
	items := st.c.Items()
	sessions := make([]*Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.Object.(*Session))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Name < sessions[j].Name
	})
	return sessions
}
