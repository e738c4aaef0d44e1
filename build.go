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
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/treekit/binarytree"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildDescriptions = map[TreeKind]string{
	KindAVL:  "Build a self-balancing AVL tree and draw it",
	KindBST:  "Build an unbalanced binary search tree and draw it",
	KindHeap: "Build a max-heap and draw it",
}

type buildOptions struct {
	file  string
	copy  bool
	sort  bool
	check bool
}

// newBuildCmd returns the avl, bst or heap subcommand. cfg is resolved at
// run time, after the root command loaded the configuration.
func newBuildCmd(kind TreeKind, cfg func() *Config) *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s [values...]", kind),
		Short: buildDescriptions[kind],
		Long: buildDescriptions[kind] + ".\n\nValues are integers given as arguments (space or comma separated),\n" +
			"read from --file (one or more per line, # starts a comment), or both.",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := ParseValues(args)
			if err != nil {
				return err
			}
			if opts.file != "" {
				fromFile, err := ReadValuesFile(opts.file)
				if err != nil {
					return err
				}
				values = append(values, fromFile...)
			}
			if len(values) == 0 {
				return errors.New("no values given: pass them as arguments or with --file")
			}
			return buildAndPrint(cmd.OutOrStdout(), cmd.ErrOrStderr(), kind, values, cfg(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.file, "file", "", "read values from a file")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the drawing to the clipboard")
	if kind == KindHeap {
		cmd.Flags().BoolVar(&opts.sort, "sort", false, "print the values in extraction order after drawing")
	} else {
		cmd.Flags().BoolVar(&opts.check, "check", false, "print size, height and shape checks")
	}
	return cmd
}

func buildAndPrint(out, errOut io.Writer, kind TreeKind, values []int, config *Config, opts buildOptions) error {
	s := newSession(string(kind), kind, config.Limits.MaxNodes)
	report := NewLoader(config.Loader, errOut).Load(s, values)

	if len(report.Duplicates) > 0 {
		fmt.Fprintf(errOut, "%s⚠️  duplicate value(s) ignored:%s %s\n", Warning, Reset, joinInts(report.Duplicates, " "))
	}
	if report.Err != nil {
		if errors.Is(report.Err, binarytree.ErrAllocation) {
			fmt.Fprintf(errOut, "%s❌ node limit reached after %d value(s):%s %v\n", Error, report.Inserted, Reset, report.Err)
		} else {
			return report.Err
		}
	}

	drawing := renderTree(s.Root())
	fmt.Fprintln(out, drawing)

	if opts.check {
		fmt.Fprintln(out, treeStats(s.Root()))
	}
	if opts.sort {
		fmt.Fprintf(out, "%ssorted:%s %s\n", Green, Reset, joinInts(s.Sorted(), " "))
	}

	if opts.copy {
		if err := clipboard.WriteAll(drawing); err != nil {
			fmt.Fprintf(errOut, "%sFailed to copy to clipboard:%s %v\n", Error, Reset, err)
		} else {
			fmt.Fprintf(errOut, "📋 Copied %s%d line(s)%s to clipboard.\n", Green, strings.Count(drawing, "\n")+1, Reset)
		}
	}
	return nil
}
