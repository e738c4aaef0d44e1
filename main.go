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
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 _                  _    _ _
| |_ _ __ ___  ___ | | _(_) |_
| __| '__/ _ \/ _ \| |/ / | __|
| |_| | |  __/  __/|   <| | |_
 \__|_|  \___|\___||_|\_\_|\__|
AVL trees, binary search trees and max-heaps in your terminal [Version: %s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, version)

	var (
		configPath string
		config     *Config
	)

	var rootCmd = &cobra.Command{
		Use:           "treekit",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load configuration: %v. Using default settings.\n", err)
			}
			InitializeColors(config.Render.Color)
			if err := setupLogging(cmd.ErrOrStderr(), config.Log.Level); err != nil {
				clog.Warn("falling back to warn level", "err", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default ~/.treekit.yaml)")

	cfg := func() *Config { return config }
	for _, kind := range []TreeKind{KindAVL, KindBST, KindHeap} {
		rootCmd.AddCommand(newBuildCmd(kind, cfg))
	}

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Open the interactive tree playground",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Repl keeps named trees in memory and runs commands such as\n`new avl t`, `insert t 5 3 8` and `show t` against them."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := NewStore(config.Session, config.Limits.MaxNodes)
			interp := NewInterpreter(store, NewLoader(config.Loader, cmd.ErrOrStderr()))
			if plain, _ := cmd.Flags().GetBool("plain"); plain {
				return runLineRepl(cmd.InOrStdin(), cmd.OutOrStdout(), interp, true)
			}
			return runBubbleTeaApp(interp, NewStyles(detectedMode))
		},
	}
	cmdRepl.Flags().Bool("plain", false, "line based prompt instead of the full screen UI")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print treekit usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treekit CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print treekit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints the configuration and creates a default file when none exists"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	rootCmd.AddCommand(cmdRepl, cmdUsage, cmdVersion, cmdSettings)
	return rootCmd
}
