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

// Package avl implements a height-balanced binary search tree over
// binarytree nodes with parent links and cached heights.
package avl

import (
	"github.com/cybrota/treekit/binarytree"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var alog = log15.New("module", "avl")

func init() {
	alog.SetHandler(log15.DiscardHandler())
}

// SetLogHandler routes the package's debug records to h. Output is
// discarded until this is called.
func SetLogHandler(h log15.Handler) {
	alog.SetHandler(h)
}

// Tree is the handle of an AVL tree. Root changes whenever a rotation
// promotes a new node to the top.
type Tree[T constraints.Ordered] struct {
	Root  *binarytree.Node[T]
	alloc binarytree.Allocator[T]
	size  int
}

// NewTree returns an empty tree drawing nodes from alloc, or from the Go
// heap when alloc is nil.
func NewTree[T constraints.Ordered](alloc binarytree.Allocator[T]) *Tree[T] {
	return &Tree[T]{alloc: binarytree.OrDefault(alloc)}
}

// FromSlice inserts values in order into a new tree. Duplicates are
// skipped; any other failure aborts and is returned with the partial tree.
func FromSlice[T constraints.Ordered](values []T, alloc binarytree.Allocator[T]) (*Tree[T], error) {
	tree := NewTree(alloc)
	for _, v := range values {
		if _, err := tree.Insert(v); err != nil {
			if errors.Is(err, binarytree.ErrDuplicateValue) {
				continue
			}
			return tree, err
		}
	}
	return tree, nil
}

// Len returns the number of values stored.
func (tree *Tree[T]) Len() int {
	return tree.size
}

func (tree *Tree[T]) allocator() binarytree.Allocator[T] {
	if tree.alloc == nil {
		tree.alloc = binarytree.HeapAllocator[T]{}
	}
	return tree.alloc
}

// Insert adds v and returns its node. A value already in the tree is
// rejected with ErrDuplicateValue and an allocation failure with
// ErrAllocation; the tree is untouched in both cases.
func (tree *Tree[T]) Insert(v T) (*binarytree.Node[T], error) {
	var parent *binarytree.Node[T]
	cur := tree.Root
	for cur != nil {
		parent = cur
		switch {
		case v < cur.Value:
			cur = cur.Left
		case v > cur.Value:
			cur = cur.Right
		default:
			return nil, errors.Wrapf(binarytree.ErrDuplicateValue, "avl insert %v", v)
		}
	}

	node, err := tree.allocator().NewNode(parent, v)
	if err != nil {
		return nil, errors.Wrapf(err, "avl insert %v", v)
	}
	node.Height = 1
	tree.size++

	if parent == nil {
		tree.Root = node
		return node, nil
	}
	if v < parent.Value {
		parent.SetLeft(node)
	} else {
		parent.SetRight(node)
	}

	// Walk to the root. The first unbalanced ancestor is the only one a
	// single insert can produce; heights above it are still refreshed.
	fixed := false
	for cur := parent; cur != nil; cur = cur.Parent {
		binarytree.UpdateHeight(cur)
		if fixed {
			continue
		}
		if bf := binarytree.CachedBalance(cur); bf > 1 || bf < -1 {
			cur = tree.rebalance(cur)
			fixed = true
		}
	}
	return node, nil
}

// Search returns the node holding v, or nil.
func (tree *Tree[T]) Search(v T) *binarytree.Node[T] {
	return searchNode(tree.Root, v)
}

func searchNode[T constraints.Ordered](node *binarytree.Node[T], v T) *binarytree.Node[T] {
	for node != nil {
		if v < node.Value {
			node = node.Left
		} else if v > node.Value {
			node = node.Right
		} else {
			return node
		}
	}
	return nil
}

// Remove deletes v, rebalancing every ancestor of the removed position.
// It returns ErrNotFound when v is absent.
func (tree *Tree[T]) Remove(v T) error {
	node := searchNode(tree.Root, v)
	if node == nil {
		return errors.Wrapf(binarytree.ErrNotFound, "avl remove %v", v)
	}

	// A node with two children takes its in-order successor's value and
	// the successor, which has no left child, is removed instead.
	if node.Left != nil && node.Right != nil {
		succ := findMin(node.Right)
		node.Value = succ.Value
		node = succ
	}

	child := node.Left
	if child == nil {
		child = node.Right
	}
	parent := node.Parent
	binarytree.Replace(parent, node, child)
	if parent == nil {
		tree.Root = child
	}
	tree.allocator().Release(node)
	tree.size--

	// Removal can unbalance several ancestors, so keep fixing to the root.
	for cur := parent; cur != nil; cur = cur.Parent {
		binarytree.UpdateHeight(cur)
		if bf := binarytree.CachedBalance(cur); bf > 1 || bf < -1 {
			cur = tree.rebalance(cur)
		}
	}
	return nil
}

func findMin[T constraints.Ordered](node *binarytree.Node[T]) *binarytree.Node[T] {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

// rebalance restores the balance of node, re-links the rotated subtree into
// node's former parent (or the tree handle) and returns the subtree's new
// root.
func (tree *Tree[T]) rebalance(node *binarytree.Node[T]) *binarytree.Node[T] {
	var top *binarytree.Node[T]
	balanceFactor := binarytree.CachedBalance(node)

	switch {
	case balanceFactor > 1:
		if binarytree.CachedBalance(node.Left) < 0 {
			alog.Debug("left-right rotation", "at", node.Value)
			left := node.Left
			binarytree.Replace(node, left, binarytree.RotateLeft(left))
		} else {
			alog.Debug("right rotation", "at", node.Value)
		}
		top = binarytree.RotateRight(node)
	case balanceFactor < -1:
		if binarytree.CachedBalance(node.Right) > 0 {
			alog.Debug("right-left rotation", "at", node.Value)
			right := node.Right
			binarytree.Replace(node, right, binarytree.RotateRight(right))
		} else {
			alog.Debug("left rotation", "at", node.Value)
		}
		top = binarytree.RotateLeft(node)
	default:
		return node
	}

	binarytree.Replace(top.Parent, node, top)
	if top.Parent == nil {
		tree.Root = top
	}
	return top
}
