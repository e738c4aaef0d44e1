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

// Package binarytree holds the node type shared by the bst, avl and maxheap
// packages together with the traversal and inspection helpers they use.
package binarytree

import "golang.org/x/exp/constraints"

// Node is one element of a binary tree.
//
// Left and Right own their subtrees. Parent is a back-reference and must
// always agree with the owning link: for every child c of n, c.Parent == n.
// Use SetLeft, SetRight, Detach and Replace to edit links so both sides
// change together.
type Node[T constraints.Ordered] struct {
	Value  T
	Parent *Node[T]
	Left   *Node[T]
	Right  *Node[T]

	// Height is the cached subtree height. Only the AVL engine keeps it
	// accurate; use the Height function for an authoritative answer.
	Height int
}

// NewNode returns a detached leaf holding v whose parent is parent.
// The parent's child slots are not touched.
func NewNode[T constraints.Ordered](parent *Node[T], v T) *Node[T] {
	return &Node[T]{Value: v, Parent: parent, Height: 1}
}

// SetLeft makes child the left subtree of n and returns the previous left
// subtree, detached.
func (n *Node[T]) SetLeft(child *Node[T]) *Node[T] {
	old := n.Left
	if old != nil {
		old.Parent = nil
	}
	n.Left = child
	if child != nil {
		child.Parent = n
	}
	return old
}

// SetRight makes child the right subtree of n and returns the previous right
// subtree, detached.
func (n *Node[T]) SetRight(child *Node[T]) *Node[T] {
	old := n.Right
	if old != nil {
		old.Parent = nil
	}
	n.Right = child
	if child != nil {
		child.Parent = n
	}
	return old
}

// Detach unlinks n from its parent. It is a no-op for a root.
func (n *Node[T]) Detach() {
	p := n.Parent
	if p == nil {
		return
	}
	switch n {
	case p.Left:
		p.Left = nil
	case p.Right:
		p.Right = nil
	}
	n.Parent = nil
}

// IsLeftChild reports whether n hangs off its parent's left slot.
func (n *Node[T]) IsLeftChild() bool {
	return n.Parent != nil && n.Parent.Left == n
}

// Replace puts sub into the slot of parent that currently holds old and
// fixes sub's back-reference. With a nil parent it only clears sub.Parent,
// which is what a caller replacing the tree root needs; the caller is then
// responsible for storing sub as the new root.
func Replace[T constraints.Ordered](parent, old, sub *Node[T]) {
	if sub != nil {
		sub.Parent = parent
	}
	if parent == nil {
		return
	}
	if parent.Left == old {
		parent.Left = sub
	} else if parent.Right == old {
		parent.Right = sub
	}
}

// InsertLeft creates a node holding v as the left child of parent. An
// existing left child becomes the new node's left child.
func InsertLeft[T constraints.Ordered](parent *Node[T], v T) *Node[T] {
	if parent == nil {
		return nil
	}
	n := NewNode(parent, v)
	n.SetLeft(parent.SetLeft(nil))
	parent.SetLeft(n)
	return n
}

// InsertRight creates a node holding v as the right child of parent. An
// existing right child becomes the new node's right child.
func InsertRight[T constraints.Ordered](parent *Node[T], v T) *Node[T] {
	if parent == nil {
		return nil
	}
	n := NewNode(parent, v)
	n.SetRight(parent.SetRight(nil))
	parent.SetRight(n)
	return n
}

// Delete tears down the tree rooted at root, clearing every link so no
// node keeps another reachable. root is detached from its parent first.
func Delete[T constraints.Ordered](root *Node[T]) {
	if root == nil {
		return
	}
	root.Detach()
	deleteSubtree(root)
}

func deleteSubtree[T constraints.Ordered](n *Node[T]) {
	if n == nil {
		return
	}
	deleteSubtree(n.Left)
	deleteSubtree(n.Right)
	n.Left, n.Right, n.Parent = nil, nil, nil
}
