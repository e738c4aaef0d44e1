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

func Preorder[T constraints.Ordered](n *Node[T], fn func(T)) {
	if n == nil || fn == nil {
		return
	}
	fn(n.Value)
	Preorder(n.Left, fn)
	Preorder(n.Right, fn)
}

func Inorder[T constraints.Ordered](n *Node[T], fn func(T)) {
	if n == nil || fn == nil {
		return
	}
	Inorder(n.Left, fn)
	fn(n.Value)
	Inorder(n.Right, fn)
}

func Postorder[T constraints.Ordered](n *Node[T], fn func(T)) {
	if n == nil || fn == nil {
		return
	}
	Postorder(n.Left, fn)
	Postorder(n.Right, fn)
	fn(n.Value)
}

// LevelOrder visits values breadth first, left to right within a level.
func LevelOrder[T constraints.Ordered](n *Node[T], fn func(T)) {
	if fn == nil {
		return
	}
	WalkLevels(n, func(cur *Node[T]) bool {
		fn(cur.Value)
		return true
	})
}

// WalkLevels visits nodes breadth first until visit returns false.
func WalkLevels[T constraints.Ordered](n *Node[T], visit func(*Node[T]) bool) {
	if n == nil {
		return
	}
	q := arrayqueue.New()
	q.Enqueue(n)
	for !q.Empty() {
		v, _ := q.Dequeue()
		cur := v.(*Node[T])
		if !visit(cur) {
			return
		}
		if cur.Left != nil {
			q.Enqueue(cur.Left)
		}
		if cur.Right != nil {
			q.Enqueue(cur.Right)
		}
	}
}

// Values returns the tree's values in order.
func Values[T constraints.Ordered](n *Node[T]) []T {
	var out []T
	Inorder(n, func(v T) { out = append(out, v) })
	return out
}
