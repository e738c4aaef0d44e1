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
	"strings"

	"github.com/cybrota/treekit/binarytree"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

var ErrUsage = errors.New("wrong number of arguments")

// splitCommand tokenizes a command line with shell quoting rules.
func splitCommand(cmd string) ([]string, error) {
	return shellwords.Parse(cmd)
}

// Interpreter runs playground commands against a Store.
type Interpreter struct {
	store  *Store
	loader *Loader
}

func NewInterpreter(store *Store, loader *Loader) *Interpreter {
	return &Interpreter{store: store, loader: loader}
}

type handler struct {
	usage string
	// args is the exact argument count, or the minimum when variadic.
	args     int
	variadic bool
	run      func(in *Interpreter, args []string) (string, error)
}

var handlers = map[string]handler{
	"new":     {usage: "new <avl|bst|heap> <name>", args: 2, run: (*Interpreter).cmdNew},
	"insert":  {usage: "insert <name> <v>...", args: 2, variadic: true, run: (*Interpreter).cmdInsert},
	"remove":  {usage: "remove <name> <v>", args: 2, run: (*Interpreter).cmdRemove},
	"extract": {usage: "extract <name>", args: 1, run: (*Interpreter).cmdExtract},
	"sort":    {usage: "sort <name>", args: 1, run: (*Interpreter).cmdSort},
	"show":    {usage: "show <name>", args: 1, run: (*Interpreter).cmdShow},
	"stats":   {usage: "stats <name>", args: 1, run: (*Interpreter).cmdStats},
	"list":    {usage: "list", args: 0, run: (*Interpreter).cmdList},
	"drop":    {usage: "drop <name>", args: 1, run: (*Interpreter).cmdDrop},
	"help":    {usage: "help", args: 0, run: func(*Interpreter, []string) (string, error) { return replHelp, nil }},
}

// Exec runs one command line and returns its output. Blank lines are a no-op.
func (in *Interpreter) Exec(line string) (string, error) {
	parts, err := splitCommand(line)
	if err != nil {
		return "", errors.Wrap(err, "parse command")
	}
	if len(parts) == 0 {
		return "", nil
	}

	name, args := strings.ToLower(parts[0]), parts[1:]
	h, ok := handlers[name]
	if !ok {
		return "", errors.Errorf("unknown command %q, try help", parts[0])
	}
	if len(args) < h.args || (!h.variadic && len(args) != h.args) {
		return "", errors.Wrap(ErrUsage, "usage: "+h.usage)
	}
	return h.run(in, args)
}

// withSession runs fn while holding the named tree's lock.
func (in *Interpreter) withSession(name string, fn func(s *Session) (string, error)) (string, error) {
	s, err := in.store.Get(name)
	if err != nil {
		return "", err
	}
	s.Lock()
	defer s.Unlock()
	return fn(s)
}

func (in *Interpreter) cmdNew(args []string) (string, error) {
	kind, err := ParseKind(args[0])
	if err != nil {
		return "", err
	}
	if _, err := in.store.Create(args[1], kind); err != nil {
		return "", err
	}
	return fmt.Sprintf("created %s %q", kind, args[1]), nil
}

func (in *Interpreter) cmdInsert(args []string) (string, error) {
	values, err := ParseValues(args[1:])
	if err != nil {
		return "", err
	}
	return in.withSession(args[0], func(s *Session) (string, error) {
		report := in.loader.Load(s, values)
		var b strings.Builder
		fmt.Fprintf(&b, "inserted %d value(s) into %q", report.Inserted, s.Name)
		if len(report.Duplicates) > 0 {
			fmt.Fprintf(&b, "\nduplicate value(s) ignored: %s", joinInts(report.Duplicates, " "))
		}
		if report.Err != nil {
			return b.String(), report.Err
		}
		return b.String(), nil
	})
}

func (in *Interpreter) cmdRemove(args []string) (string, error) {
	values, err := ParseValues(args[1:])
	if err != nil {
		return "", err
	}
	if len(values) != 1 {
		return "", errors.Wrap(ErrUsage, "remove takes exactly one value")
	}
	return in.withSession(args[0], func(s *Session) (string, error) {
		if err := s.Remove(values[0]); err != nil {
			return "", err
		}
		return fmt.Sprintf("removed %d from %q", values[0], s.Name), nil
	})
}

func (in *Interpreter) cmdExtract(args []string) (string, error) {
	return in.withSession(args[0], func(s *Session) (string, error) {
		v, err := s.Extract()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	})
}

func (in *Interpreter) cmdSort(args []string) (string, error) {
	return in.withSession(args[0], func(s *Session) (string, error) {
		return joinInts(s.Sorted(), " "), nil
	})
}

func (in *Interpreter) cmdShow(args []string) (string, error) {
	return in.withSession(args[0], func(s *Session) (string, error) {
		return renderTree(s.Root()), nil
	})
}

func (in *Interpreter) cmdStats(args []string) (string, error) {
	return in.withSession(args[0], func(s *Session) (string, error) {
		return fmt.Sprintf("%s %q\n%s", s.Kind, s.Name, treeStats(s.Root())), nil
	})
}

func (in *Interpreter) cmdList(_ []string) (string, error) {
	sessions := in.store.Sessions()
	if len(sessions) == 0 {
		return "no trees yet, try: new avl t", nil
	}
	lines := make([]string, 0, len(sessions))
	for _, s := range sessions {
		s.Lock()
		lines = append(lines, fmt.Sprintf("%-12s %-4s %d node(s)", s.Name, s.Kind, binarytree.Size(s.Root())))
		s.Unlock()
	}
	return strings.Join(lines, "\n"), nil
}

func (in *Interpreter) cmdDrop(args []string) (string, error) {
	if err := in.store.Drop(args[0]); err != nil {
		return "", err
	}
	return fmt.Sprintf("dropped %q", args[0]), nil
}

// renderTree draws root, or a placeholder for an empty tree.
func renderTree(root *binarytree.Node[int]) string {
	if root == nil {
		return "(empty)"
	}
	return strings.TrimRight(binarytree.Sprint(root), "\n")
}

// treeStats lists the measures and shape predicates of the tree under root.
func treeStats(root *binarytree.Node[int]) string {
	rows := []struct {
		key   string
		value interface{}
	}{
		{"size", binarytree.Size(root)},
		{"height", binarytree.Height(root)},
		{"leaves", binarytree.Leaves(root)},
		{"internal", binarytree.Nodes(root)},
		{"balance", binarytree.Balance(root)},
		{"full", binarytree.IsFull(root)},
		{"perfect", binarytree.IsPerfect(root)},
		{"complete", binarytree.IsComplete(root)},
		{"bst", binarytree.IsBST(root)},
		{"avl", binarytree.IsAVL(root)},
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("  %-9s %v", row.key, row.value))
	}
	return strings.Join(lines, "\n")
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
