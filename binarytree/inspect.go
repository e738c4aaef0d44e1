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
	"github.com/emirpasic/gods/queues/arrayqueue"
	"golang.org/x/exp/constraints"
)

// IsLeaf reports whether n is a node with no children.
func IsLeaf[T constraints.Ordered](n *Node[T]) bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// IsRoot reports whether n is a node with no parent.
func IsRoot[T constraints.Ordered](n *Node[T]) bool {
	return n != nil && n.Parent == nil
}

// Height measures the tree by walking it; an empty tree has height 0 and a
// single node height 1. It ignores the cached Height field.
func Height[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(Height(n.Left), Height(n.Right))
}

// Depth is the number of edges between n and the root.
func Depth[T constraints.Ordered](n *Node[T]) int {
	d := 0
	for n != nil && n.Parent != nil {
		d++
		n = n.Parent
	}
	return d
}

// Size counts every node in the tree.
func Size[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + Size(n.Left) + Size(n.Right)
}

// Leaves counts nodes without children.
func Leaves[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	if IsLeaf(n) {
		return 1
	}
	return Leaves(n.Left) + Leaves(n.Right)
}

// Nodes counts nodes with at least one child.
func Nodes[T constraints.Ordered](n *Node[T]) int {
	if n == nil || IsLeaf(n) {
		return 0
	}
	return 1 + Nodes(n.Left) + Nodes(n.Right)
}

// Balance is Height(left) - Height(right), walking both subtrees.
func Balance[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return Height(n.Left) - Height(n.Right)
}

// IsFull reports whether every node has zero or two children.
func IsFull[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return false
	}
	return isFull(n)
}

func isFull[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return true
	}
	if (n.Left == nil) != (n.Right == nil) {
		return false
	}
	return isFull(n.Left) && isFull(n.Right)
}

// IsPerfect reports whether the tree is full and all leaves share a depth.
func IsPerfect[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return false
	}
	h := Height(n)
	return Size(n) == (1<<h)-1
}

// IsComplete reports whether every level is full except possibly the last,
// which is filled from the left. The scan is level order: once a missing
// child has been seen, no later slot may be occupied.
func IsComplete[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return false
	}
	q := arrayqueue.New()
	q.Enqueue(n)
	gap := false
	for !q.Empty() {
		v, _ := q.Dequeue()
		cur := v.(*Node[T])
		for _, child := range [2]*Node[T]{cur.Left, cur.Right} {
			if child == nil {
				gap = true
				continue
			}
			if gap {
				return false
			}
			q.Enqueue(child)
		}
	}
	return true
}

// IsBST reports whether every left subtree holds strictly smaller values and
// every right subtree strictly larger ones. Duplicates fail the check.
func IsBST[T constraints.Ordered](n *Node[T]) bool {
	if n == nil {
		return false
	}
	return isBST(n, nil, nil)
}

func isBST[T constraints.Ordered](n *Node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}
	if lo != nil && n.Value <= *lo {
		return false
	}
	if hi != nil && n.Value >= *hi {
		return false
	}
	return isBST(n.Left, lo, &n.Value) && isBST(n.Right, &n.Value, hi)
}

// IsAVL reports whether n is a BST whose subtree heights differ by at most
// one at every node. Heights are measured, not read from the cache.
func IsAVL[T constraints.Ordered](n *Node[T]) bool {
	if !IsBST(n) {
		return false
	}
	_, ok := avlHeight(n)
	return ok
}

func avlHeight[T constraints.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, ok := avlHeight(n.Left)
	if !ok {
		return 0, false
	}
	rh, ok := avlHeight(n.Right)
	if !ok {
		return 0, false
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return 1 + max(lh, rh), true
}

// Sibling returns the other child of n's parent, or nil.
func Sibling[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil || n.Parent == nil {
		return nil
	}
	if n.Parent.Left == n {
		return n.Parent.Right
	}
	return n.Parent.Left
}

// Uncle returns the sibling of n's parent, or nil.
func Uncle[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	return Sibling(n.Parent)
}

// Ancestor returns the lowest node that has both a and b in its subtree,
// following parent links. It returns nil when they are in different trees.
func Ancestor[T constraints.Ordered](a, b *Node[T]) *Node[T] {
	if a == nil || b == nil {
		return nil
	}
	da, db := Depth(a), Depth(b)
	for da > db {
		a, da = a.Parent, da-1
	}
	for db > da {
		b, db = b.Parent, db-1
	}
	for a != b {
		a, b = a.Parent, b.Parent
	}
	return a
}
