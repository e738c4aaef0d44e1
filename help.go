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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

// replHelp documents the interpreter. The playground renders it with glamour.
const replHelp = `# Playground commands

| command | effect |
|---|---|
| ` + "`new <kind> <name>`" + ` | create an empty tree, kind is avl, bst or heap |
| ` + "`insert <name> <v>...`" + ` | insert values (duplicates are reported for avl and bst) |
| ` + "`remove <name> <v>`" + ` | remove a value from an avl or bst |
| ` + "`extract <name>`" + ` | pop the maximum of a heap |
| ` + "`sort <name>`" + ` | list values in order (drains a heap) |
| ` + "`show <name>`" + ` | draw the tree |
| ` + "`stats <name>`" + ` | size, height and shape checks |
| ` + "`list`" + ` | list trees |
| ` + "`drop <name>`" + ` | delete a tree |
| ` + "`help`" + ` | this page |

Values may be separated by spaces or commas: ` + "`insert t 5,3,8 1`" + `.
`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **treekit %s**

Build and inspect the classic binary trees from your terminal:
self-balancing AVL trees, plain binary search trees and max-heaps.

Built with Go %s

# 1. Commands
* treekit avl 5 3 8 1       build an AVL tree and draw it (--check verifies the shape)
* treekit bst --file vals   build a binary search tree from a file
* treekit heap --sort 5 3 8 build a max-heap and print its sorted extraction
* treekit repl              open the interactive playground
* treekit settings          show or create ~/.treekit.yaml

# 2. Flags
* --copy   copy the rendered tree to the clipboard
* --config use another configuration file

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

%s

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), replHelp)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
