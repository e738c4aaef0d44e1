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
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//	      98
//	    /    \
//	  12      402
//	 /  \    /
//	6   56  256
func sampleTree() *Node[int] {
	root := NewNode[int](nil, 98)
	l := InsertLeft(root, 12)
	r := InsertRight(root, 402)
	InsertLeft(l, 6)
	InsertRight(l, 56)
	InsertLeft(r, 256)
	return root
}

func collect(walk func(*Node[int], func(int)), n *Node[int]) []int {
	var out []int
	walk(n, func(v int) { out = append(out, v) })
	return out
}

func TestTraversals(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, []int{98, 12, 6, 56, 402, 256}, collect(Preorder[int], root))
	assert.Equal(t, []int{6, 12, 56, 98, 256, 402}, collect(Inorder[int], root))
	assert.Equal(t, []int{6, 56, 12, 256, 402, 98}, collect(Postorder[int], root))
	assert.Equal(t, []int{98, 12, 402, 6, 56, 256}, collect(LevelOrder[int], root))
	assert.Equal(t, []int{6, 12, 56, 98, 256, 402}, Values(root))

	assert.Nil(t, collect(Inorder[int], nil))
	Preorder(root, nil)
}

func TestMeasures(t *testing.T) {
	root := sampleTree()
	testCases := []struct {
		Name     string
		Got      int
		Expected int
	}{
		{"Height", Height(root), 3},
		{"HeightNil", Height[int](nil), 0},
		{"Size", Size(root), 6},
		{"Leaves", Leaves(root), 3},
		{"Nodes", Nodes(root), 3},
		{"Balance", Balance(root), 0},
		{"BalanceLeftSubtree", Balance(root.Left), 0},
		{"DepthLeaf", Depth(root.Left.Right), 2},
		{"DepthRoot", Depth(root), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Got)
		})
	}
}

func TestShapePredicates(t *testing.T) {
	root := sampleTree()
	assert.False(t, IsFull(root), "402 has only one child")
	assert.False(t, IsPerfect(root))
	assert.True(t, IsComplete(root))
	assert.True(t, IsBST(root))
	assert.True(t, IsAVL(root))

	InsertRight(root.Right, 512)
	assert.True(t, IsFull(root))
	assert.True(t, IsPerfect(root))
	assert.True(t, IsComplete(root))

	// a right child with an empty left slot before it breaks completeness
	InsertRight(root.Left.Left, 7)
	assert.False(t, IsComplete(root))
	assert.False(t, IsFull(root))

	assert.False(t, IsFull[int](nil))
	assert.False(t, IsComplete[int](nil))
	assert.False(t, IsBST[int](nil))
	assert.False(t, IsAVL[int](nil))
}

func TestIsBSTRejectsDeepViolation(t *testing.T) {
	root := NewNode[int](nil, 10)
	l := InsertLeft(root, 5)
	InsertRight(l, 12) // larger than the root while sitting in its left subtree
	assert.False(t, IsBST(root))

	dup := NewNode[int](nil, 10)
	InsertRight(dup, 10)
	assert.False(t, IsBST(dup))
}

func TestIsAVLRejectsChain(t *testing.T) {
	root := NewNode[int](nil, 1)
	n := InsertRight(root, 2)
	InsertRight(n, 3)
	assert.True(t, IsBST(root))
	assert.False(t, IsAVL(root))
}

func TestRelatives(t *testing.T) {
	root := sampleTree()
	six := root.Left.Left
	fiftySix := root.Left.Right
	twoFiftySix := root.Right.Left

	assert.Equal(t, fiftySix, Sibling(six))
	assert.Nil(t, Sibling(root))
	assert.Nil(t, Sibling(twoFiftySix))
	assert.Equal(t, root.Right, Uncle(six))
	assert.Nil(t, Uncle(root.Left))

	assert.Equal(t, root.Left, Ancestor(six, fiftySix))
	assert.Equal(t, root, Ancestor(six, twoFiftySix))
	assert.Equal(t, root.Left, Ancestor(root.Left, fiftySix))
	assert.Nil(t, Ancestor(six, NewNode[int](nil, 1)))

	assert.True(t, IsRoot(root))
	assert.False(t, IsRoot(six))
	assert.True(t, IsLeaf(six))
	assert.False(t, IsLeaf(root))
}

func TestInsertLeftTakesOverExistingChild(t *testing.T) {
	root := NewNode[int](nil, 10)
	old := InsertLeft(root, 5)
	mid := InsertLeft(root, 7)

	require.Equal(t, mid, root.Left)
	assert.Equal(t, root, mid.Parent)
	assert.Equal(t, old, mid.Left)
	assert.Equal(t, mid, old.Parent)
	assert.Nil(t, InsertLeft[int](nil, 1))
	assert.Nil(t, InsertRight[int](nil, 1))
}

func TestDetachAndDelete(t *testing.T) {
	root := sampleTree()
	left := root.Left
	left.Detach()
	assert.Nil(t, root.Left)
	assert.Nil(t, left.Parent)
	assert.Equal(t, 3, Size(left))

	leaf := root.Right.Left
	Delete(root)
	assert.Nil(t, root.Right)
	assert.Nil(t, leaf.Parent)
}

func TestRotateLeft(t *testing.T) {
	root := NewNode[int](nil, 1)
	pivot := InsertRight(root, 3)
	inner := InsertLeft(pivot, 2)
	outer := InsertRight(pivot, 4)
	UpdateHeight(pivot)
	UpdateHeight(root)

	p := RotateLeft(root)
	require.Equal(t, pivot, p)
	assert.Nil(t, p.Parent)
	assert.Equal(t, root, p.Left)
	assert.Equal(t, outer, p.Right)
	assert.Equal(t, p, root.Parent)
	assert.Equal(t, inner, root.Right)
	assert.Equal(t, root, inner.Parent)
	assert.Equal(t, 2, root.Height)
	assert.Equal(t, 3, p.Height)
	assert.Equal(t, []int{1, 2, 3, 4}, Values(p))

	assert.Nil(t, RotateLeft(outer))
	assert.Nil(t, RotateLeft[int](nil))
}

func TestRotateRightKeepsOuterParent(t *testing.T) {
	top := NewNode[int](nil, 100)
	n := InsertLeft(top, 30)
	l := InsertLeft(n, 20)
	InsertLeft(l, 10)

	p := RotateRight(n)
	require.Equal(t, l, p)
	assert.Equal(t, top, p.Parent)
	assert.Equal(t, n, top.Left, "rotation leaves re-linking to the caller")

	Replace(p.Parent, n, p)
	assert.Equal(t, p, top.Left)
	assert.Equal(t, []int{10, 20, 30, 100}, Values(top))
	assert.Nil(t, RotateRight(p.Left))
}

func TestLimitedAllocator(t *testing.T) {
	a := NewLimitedAllocator[int](2)
	n1, err := a.NewNode(nil, 1)
	require.NoError(t, err)
	_, err = a.NewNode(n1, 2)
	require.NoError(t, err)

	_, err = a.NewNode(n1, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocation))
	assert.Equal(t, 2, a.Live())

	a.Release(n1)
	assert.Equal(t, 1, a.Live())
	_, err = a.NewNode(nil, 4)
	assert.NoError(t, err)

	var unlimited Allocator[int] = OrDefault[int](nil)
	for i := 0; i < 100; i++ {
		_, err := unlimited.NewNode(nil, i)
		require.NoError(t, err)
	}
}

func TestSprint(t *testing.T) {
	root := NewNode[int](nil, 2)
	InsertLeft(root, 1)
	InsertRight(root, 3)

	expected := "  .--(002)--.\n(001)     (003)\n"
	assert.Equal(t, expected, Sprint(root))

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, root))
	assert.Equal(t, expected, buf.String())

	assert.Equal(t, "", Sprint[int](nil))
	assert.Equal(t, "(abc)\n", Sprint(NewNode[string](nil, "abc")))
}
