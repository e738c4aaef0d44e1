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
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// canvas is a grid of rows that grows on write.
type canvas [][]rune

func (c canvas) set(row, col int, r rune) {
	if col < 0 {
		return
	}
	for len(c[row]) <= col {
		c[row] = append(c[row], ' ')
	}
	c[row][col] = r
}

// Sprint renders the tree as text, one row per level:
//
//	  .--(002)--.
//	(001)     (003)
//
// An empty tree renders as the empty string.
func Sprint[T constraints.Ordered](root *Node[T]) string {
	h := Height(root)
	if h == 0 {
		return ""
	}
	c := make(canvas, h)
	draw(c, root, 0, 0)

	var sb strings.Builder
	for _, row := range c {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes Sprint(root) to w.
func Print[T constraints.Ordered](w io.Writer, root *Node[T]) error {
	_, err := io.WriteString(w, Sprint(root))
	return err
}

func label[T constraints.Ordered](v T) string {
	switch x := any(v).(type) {
	case string:
		return "(" + x + ")"
	default:
		return fmt.Sprintf("(%03v)", v)
	}
}

// draw lays out the subtree at n starting at column offset on the given
// depth and returns the width it used. Children draw their connector on
// the row above them; n's label is written last so it wins any overlap.
func draw[T constraints.Ordered](c canvas, n *Node[T], offset, depth int) int {
	if n == nil {
		return 0
	}
	b := []rune(label(n.Value))
	width := len(b)
	left := draw(c, n.Left, offset, depth+1)
	right := draw(c, n.Right, offset+left+width, depth+1)

	for i, r := range b {
		c.set(depth, offset+left+i, r)
	}
	if depth == 0 {
		return left + width + right
	}
	mid := offset + left + width/2
	if n.IsLeftChild() {
		for i := 0; i < width+right; i++ {
			c.set(depth-1, mid+i, '-')
		}
	} else {
		for i := 0; i < left+width; i++ {
			c.set(depth-1, offset-width/2+i, '-')
		}
	}
	c.set(depth-1, mid, '.')
	return left + width + right
}
