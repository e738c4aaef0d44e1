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
	"bytes"
	"io"
	"testing"

	"github.com/cybrota/treekit/avl"
	"github.com/cybrota/treekit/maxheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingReachesEngines(t *testing.T) {
	defer func() { _ = setupLogging(io.Discard, "warn") }()

	var buf bytes.Buffer
	require.NoError(t, setupLogging(&buf, "debug"))
	_, err := avl.FromSlice([]int{1, 2, 3}, nil)
	require.NoError(t, err)
	h, err := maxheap.FromSlice([]int{5, 3, 8}, nil)
	require.NoError(t, err)
	_, err = h.Extract()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "left rotation")
	assert.Contains(t, buf.String(), "extracted root")

	buf.Reset()
	require.NoError(t, setupLogging(&buf, "warn"))
	_, err = avl.FromSlice([]int{1, 2, 3}, nil)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSetupLoggingBadLevel(t *testing.T) {
	defer func() { _ = setupLogging(io.Discard, "warn") }()

	var buf bytes.Buffer
	err := setupLogging(&buf, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `log level "loud"`)

	clog.Warn("still logging")
	assert.Contains(t, buf.String(), "still logging")
}
