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
	"io"

	"github.com/cybrota/treekit/avl"
	"github.com/cybrota/treekit/bst"
	"github.com/cybrota/treekit/maxheap"
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"
)

var clog = log15.New("module", "cli")

// setupLogging installs the root handler and points the engine loggers,
// which discard by default, at the same handler.
func setupLogging(w io.Writer, level string) error {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		lvl = log15.LvlWarn
		err = errors.Wrapf(err, "log level %q", level)
	}
	h := log15.LvlFilterHandler(lvl, log15.StreamHandler(w, log15.TerminalFormat()))
	log15.Root().SetHandler(h)
	avl.SetLogHandler(h)
	bst.SetLogHandler(h)
	maxheap.SetLogHandler(h)
	return err
}
