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

package binarytree

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Allocator hands out nodes to the engines. NewNode must not touch any
// existing tree: on error the caller leaves its tree as it was.
type Allocator[T constraints.Ordered] interface {
	NewNode(parent *Node[T], v T) (*Node[T], error)
	Release(n *Node[T])
}

// HeapAllocator allocates from the Go heap and never fails.
type HeapAllocator[T constraints.Ordered] struct{}

// NewNode returns a fresh node linked up to parent.
func (HeapAllocator[T]) NewNode(parent *Node[T], v T) (*Node[T], error) {
	return NewNode(parent, v), nil
}

// Release clears n's links so a stale pointer cannot reach the tree.
func (HeapAllocator[T]) Release(n *Node[T]) {
	n.Left, n.Right, n.Parent = nil, nil, nil
}

// LimitedAllocator refuses to hand out more than Max live nodes. A Max of
// zero means no limit.
type LimitedAllocator[T constraints.Ordered] struct {
	Max  int
	live int
}

// NewLimitedAllocator returns an allocator capped at max live nodes.
func NewLimitedAllocator[T constraints.Ordered](max int) *LimitedAllocator[T] {
	return &LimitedAllocator[T]{Max: max}
}

// NewNode fails with ErrAllocation once Max nodes are live.
func (a *LimitedAllocator[T]) NewNode(parent *Node[T], v T) (*Node[T], error) {
	if a.Max > 0 && a.live >= a.Max {
		return nil, errors.Wrapf(ErrAllocation, "limit of %d nodes reached", a.Max)
	}
	a.live++
	return NewNode(parent, v), nil
}

// Release returns n's slot to the allocator and clears its links.
func (a *LimitedAllocator[T]) Release(n *Node[T]) {
	if a.live > 0 {
		a.live--
	}
	n.Left, n.Right, n.Parent = nil, nil, nil
}

// Live returns the number of nodes handed out and not yet released.
func (a *LimitedAllocator[T]) Live() int {
	return a.live
}

// OrDefault returns a, or a HeapAllocator when a is nil.
func OrDefault[T constraints.Ordered](a Allocator[T]) Allocator[T] {
	if a == nil {
		return HeapAllocator[T]{}
	}
	return a
}
