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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/treekit/binarytree"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoaderConfig() LoaderConfig {
	return LoaderConfig{ShowProgress: false, BloomSize: 1 << 12, BloomHashes: 3}
}

func TestParseValues(t *testing.T) {
	tests := []struct {
		input    []string
		expected []int
	}{
		{[]string{"5", "3", "8"}, []int{5, 3, 8}},
		{[]string{"5,3", "8"}, []int{5, 3, 8}},
		{[]string{" 1 , -2 ", "0"}, []int{1, -2, 0}},
		{[]string{",,"}, nil},
		{nil, nil},
	}
	for _, tc := range tests {
		values, err := ParseValues(tc.input)
		require.NoError(t, err, "ParseValues(%q)", tc.input)
		assert.Equal(t, tc.expected, values, "ParseValues(%q)", tc.input)
	}

	_, err := ParseValues([]string{"4", "four"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"four"`)
}

func TestReadValues(t *testing.T) {
	input := "# sample\n98 402\n\n12,46\n   128\n"
	values, err := ReadValues(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []int{98, 402, 12, 46, 128}, values)

	_, err = ReadValues(strings.NewReader("1\n2 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadValuesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n1\n2\n"), 0644))

	values, err := ReadValuesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, values)

	_, err = ReadValuesFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoaderReportsDuplicates(t *testing.T) {
	s := newSession("t", KindAVL, 0)
	require.NoError(t, s.Insert(5))

	report := NewLoader(testLoaderConfig(), nil).Load(s, []int{5, 3, 8, 3, 1})
	require.NoError(t, report.Err)
	assert.Equal(t, 3, report.Inserted)
	assert.Equal(t, []int{5, 3}, report.Duplicates)
	assert.Equal(t, []int{1, 3, 5, 8}, s.Sorted())
}

func TestLoaderHeapKeepsDuplicates(t *testing.T) {
	s := newSession("h", KindHeap, 0)
	report := NewLoader(testLoaderConfig(), nil).Load(s, []int{4, 4, 2})
	require.NoError(t, report.Err)
	assert.Equal(t, 3, report.Inserted)
	assert.Empty(t, report.Duplicates)
	assert.Equal(t, []int{4, 4, 2}, s.Sorted())
}

func TestLoaderStopsAtNodeLimit(t *testing.T) {
	s := newSession("t", KindBST, 3)
	report := NewLoader(testLoaderConfig(), nil).Load(s, []int{1, 2, 2, 3, 4, 5})
	require.Error(t, report.Err)
	assert.True(t, errors.Is(report.Err, binarytree.ErrAllocation))
	assert.Equal(t, 3, report.Inserted)
	assert.Equal(t, []int{2}, report.Duplicates)
	assert.Equal(t, []int{1, 2, 3}, s.Sorted())
}

// A load big enough for the progress bar, with a small filter so that false
// positives have to be settled by a search.
func TestLoaderLargeLoadWithProgress(t *testing.T) {
	s := newSession("big", KindAVL, 0)
	var values []int
	for i := 0; i < 1000; i++ {
		values = append(values, (i*3)%700)
	}

	var out bytes.Buffer
	cfg := LoaderConfig{ShowProgress: true, BloomSize: 256, BloomHashes: 2}
	report := NewLoader(cfg, &out).Load(s, values)
	require.NoError(t, report.Err)
	assert.Equal(t, 700, report.Inserted)
	assert.Len(t, report.Duplicates, 300)
	assert.Equal(t, 700, binarytree.Size(s.Root()))
	assert.True(t, binarytree.IsAVL(s.Root()))
	assert.NotZero(t, out.Len())
}
