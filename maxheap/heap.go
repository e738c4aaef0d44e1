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

// Package maxheap implements a max binary heap as a linked complete binary
// tree. Sifting swaps values between nodes; nodes themselves never move.
package maxheap

import (
	"github.com/cybrota/treekit/binarytree"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var hlog = log15.New("module", "maxheap")

func init() {
	hlog.SetHandler(log15.DiscardHandler())
}

// SetLogHandler routes the package's debug records to h. Output is
// discarded until this is called.
func SetLogHandler(h log15.Handler) {
	hlog.SetHandler(h)
}

// Heap is the handle of a max-heap.
type Heap[T constraints.Ordered] struct {
	Root  *binarytree.Node[T]
	alloc binarytree.Allocator[T]
}

// NewHeap returns an empty heap drawing nodes from alloc, or from the Go
// heap when alloc is nil.
func NewHeap[T constraints.Ordered](alloc binarytree.Allocator[T]) *Heap[T] {
	return &Heap[T]{alloc: binarytree.OrDefault(alloc)}
}

// FromSlice inserts values in order into a new heap. It stops at the first
// failure and returns the heap built so far.
func FromSlice[T constraints.Ordered](values []T, alloc binarytree.Allocator[T]) (*Heap[T], error) {
	h := NewHeap(alloc)
	for _, v := range values {
		if _, err := h.Insert(v); err != nil {
			return h, err
		}
	}
	return h, nil
}

func (h *Heap[T]) allocator() binarytree.Allocator[T] {
	if h.alloc == nil {
		h.alloc = binarytree.HeapAllocator[T]{}
	}
	return h.alloc
}

// Len counts the nodes in the heap.
func (h *Heap[T]) Len() int {
	return binarytree.Size(h.Root)
}

// Peek returns the maximum without removing it.
func (h *Heap[T]) Peek() (T, error) {
	if h.Root == nil {
		var zero T
		return zero, binarytree.ErrEmptyTree
	}
	return h.Root.Value, nil
}

// Insert attaches v at the first free slot in level order and sifts it up.
// It returns the node v settled in, which is not necessarily the node that
// was allocated since sifting moves values rather than nodes.
func (h *Heap[T]) Insert(v T) (*binarytree.Node[T], error) {
	parent := h.insertionParent()
	node, err := h.allocator().NewNode(parent, v)
	if err != nil {
		return nil, errors.Wrapf(err, "heap insert %v", v)
	}
	switch {
	case parent == nil:
		h.Root = node
	case parent.Left == nil:
		parent.SetLeft(node)
	default:
		parent.SetRight(node)
	}
	return siftUp(node), nil
}

// insertionParent finds the first node in level order missing a child.
func (h *Heap[T]) insertionParent() *binarytree.Node[T] {
	var found *binarytree.Node[T]
	binarytree.WalkLevels(h.Root, func(n *binarytree.Node[T]) bool {
		if n.Left == nil || n.Right == nil {
			found = n
			return false
		}
		return true
	})
	return found
}

// lastNode returns the deepest, rightmost node, the last one visited in
// level order.
func (h *Heap[T]) lastNode() *binarytree.Node[T] {
	var last *binarytree.Node[T]
	binarytree.WalkLevels(h.Root, func(n *binarytree.Node[T]) bool {
		last = n
		return true
	})
	return last
}

func siftUp[T constraints.Ordered](n *binarytree.Node[T]) *binarytree.Node[T] {
	for n.Parent != nil && n.Parent.Value < n.Value {
		n.Value, n.Parent.Value = n.Parent.Value, n.Value
		n = n.Parent
	}
	return n
}

func siftDown[T constraints.Ordered](n *binarytree.Node[T]) {
	for n != nil {
		largest := n
		if n.Left != nil && n.Left.Value > largest.Value {
			largest = n.Left
		}
		if n.Right != nil && n.Right.Value > largest.Value {
			largest = n.Right
		}
		if largest == n {
			return
		}
		n.Value, largest.Value = largest.Value, n.Value
		n = largest
	}
}

// Extract removes and returns the maximum. An empty heap yields the zero
// value and ErrEmptyTree.
func (h *Heap[T]) Extract() (T, error) {
	if h.Root == nil {
		var zero T
		return zero, errors.Wrap(binarytree.ErrEmptyTree, "heap extract")
	}
	value := h.Root.Value
	last := h.lastNode()
	if last == h.Root {
		h.allocator().Release(last)
		h.Root = nil
		return value, nil
	}

	h.Root.Value = last.Value
	last.Detach()
	h.allocator().Release(last)
	siftDown(h.Root)
	hlog.Debug("extracted root", "value", value, "new root", h.Root.Value)
	return value, nil
}

// ToSortedSlice drains the heap into a slice in non-increasing order. The
// size is taken before the first extraction; the heap is empty afterwards.
func (h *Heap[T]) ToSortedSlice() []T {
	size := h.Len()
	out := make([]T, 0, size)
	for i := 0; i < size; i++ {
		v, err := h.Extract()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}
