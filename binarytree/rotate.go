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

import "golang.org/x/exp/constraints"

// CachedHeight returns n's cached height, 0 for nil.
func CachedHeight[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

// UpdateHeight recomputes n's cached height from its children's caches.
func UpdateHeight[T constraints.Ordered](n *Node[T]) {
	n.Height = max(CachedHeight(n.Left), CachedHeight(n.Right)) + 1
}

// CachedBalance is the balance factor computed from cached heights.
func CachedBalance[T constraints.Ordered](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return CachedHeight(n.Left) - CachedHeight(n.Right)
}

// RotateLeft promotes n's right child into n's position:
//
//	  n              p
//	 / \            / \
//	a   p    ->    n   c
//	   / \        / \
//	  b   c      a   b
//
// The returned node p takes over n's parent pointer, but the parent's child
// slot still points at n. Callers fix that with Replace, or store p as the
// root when n had no parent. Returns nil when n or its right child is nil.
func RotateLeft[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil || n.Right == nil {
		return nil
	}
	p := n.Right
	p.Parent = n.Parent

	n.Right = p.Left
	if p.Left != nil {
		p.Left.Parent = n
	}
	p.Left = n
	n.Parent = p

	UpdateHeight(n)
	UpdateHeight(p)
	return p
}

// RotateRight is the mirror of RotateLeft and promotes n's left child.
func RotateRight[T constraints.Ordered](n *Node[T]) *Node[T] {
	if n == nil || n.Left == nil {
		return nil
	}
	p := n.Left
	p.Parent = n.Parent

	n.Left = p.Right
	if p.Right != nil {
		p.Right.Parent = n
	}
	p.Right = n
	n.Parent = p

	UpdateHeight(n)
	UpdateHeight(p)
	return p
}
