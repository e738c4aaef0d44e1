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

// Package bst is an unbalanced binary search tree. Insertion order decides
// its shape.
package bst

import (
	"github.com/cybrota/treekit/binarytree"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var blog = log15.New("module", "bst")

func init() {
	blog.SetHandler(log15.DiscardHandler())
}

// SetLogHandler routes the package's debug records to h. Output is
// discarded until this is called.
func SetLogHandler(h log15.Handler) {
	blog.SetHandler(h)
}

// Tree is the handle of a binary search tree. Removing the root value may
// leave a different node at Root.
type Tree[T constraints.Ordered] struct {
	Root  *binarytree.Node[T]
	alloc binarytree.Allocator[T]
}

// NewTree returns an empty tree drawing nodes from alloc, or from the Go
// heap when alloc is nil.
func NewTree[T constraints.Ordered](alloc binarytree.Allocator[T]) *Tree[T] {
	return &Tree[T]{alloc: binarytree.OrDefault(alloc)}
}

// FromSlice inserts values in order, skipping duplicates.
func FromSlice[T constraints.Ordered](values []T, alloc binarytree.Allocator[T]) (*Tree[T], error) {
	tree := NewTree(alloc)
	for _, v := range values {
		if _, err := tree.Insert(v); err != nil && !errors.Is(err, binarytree.ErrDuplicateValue) {
			return tree, err
		}
	}
	return tree, nil
}

// Len counts the nodes in the tree.
func (tree *Tree[T]) Len() int {
	return binarytree.Size(tree.Root)
}

func (tree *Tree[T]) allocator() binarytree.Allocator[T] {
	if tree.alloc == nil {
		tree.alloc = binarytree.HeapAllocator[T]{}
	}
	return tree.alloc
}

// Insert adds v as a new leaf. Duplicates are rejected.
func (tree *Tree[T]) Insert(v T) (*binarytree.Node[T], error) {
	var parent *binarytree.Node[T]
	cur := tree.Root
	for cur != nil {
		parent = cur
		if v < cur.Value {
			cur = cur.Left
		} else if v > cur.Value {
			cur = cur.Right
		} else {
			return nil, errors.Wrapf(binarytree.ErrDuplicateValue, "bst insert %v", v)
		}
	}

	node, err := tree.allocator().NewNode(parent, v)
	if err != nil {
		return nil, errors.Wrapf(err, "bst insert %v", v)
	}
	switch {
	case parent == nil:
		tree.Root = node
	case v < parent.Value:
		parent.SetLeft(node)
	default:
		parent.SetRight(node)
	}
	return node, nil
}

// Search returns the node holding v, or nil.
func (tree *Tree[T]) Search(v T) *binarytree.Node[T] {
	cur := tree.Root
	for cur != nil && cur.Value != v {
		if v < cur.Value {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur
}

// Remove deletes v. A node with two children is replaced by its in-order
// successor.
func (tree *Tree[T]) Remove(v T) error {
	node := tree.Search(v)
	if node == nil {
		return errors.Wrapf(binarytree.ErrNotFound, "bst remove %v", v)
	}
	if node.Left != nil && node.Right != nil {
		succ := node.Right
		for succ.Left != nil {
			succ = succ.Left
		}
		blog.Debug("remove via successor", "value", v, "successor", succ.Value)
		node.Value = succ.Value
		node = succ
	}

	child := node.Left
	if child == nil {
		child = node.Right
	}
	binarytree.Replace(node.Parent, node, child)
	if node.Parent == nil {
		tree.Root = child
	}
	tree.allocator().Release(node)
	return nil
}
