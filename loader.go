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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/treekit/binarytree"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// progressThreshold is the smallest load that gets a progress bar.
const progressThreshold = 512

func splitValues(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}

// ParseValues converts command line fields into integers. A field may hold
// several comma separated values.
func ParseValues(fields []string) ([]int, error) {
	var values []int
	for _, field := range fields {
		for _, tok := range strings.FieldsFunc(field, splitValues) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Errorf("invalid value %q: not an integer", tok)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// ReadValues reads integers from r, any number per line. Blank lines and
// lines starting with '#' are skipped.
func ReadValues(r io.Reader) ([]int, error) {
	var values []int
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		vs, err := ParseValues([]string{text})
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		values = append(values, vs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadValuesFile is ReadValues over the named file.
func ReadValuesFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("values file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()
	values, err := ReadValues(file)
	return values, errors.Wrap(err, path)
}

// LoadReport summarizes a bulk load.
type LoadReport struct {
	Inserted   int
	Duplicates []int
	// Err is the failure that stopped the load early, if any.
	Err error
}

// Loader inserts batches of values into a session.
type Loader struct {
	cfg LoaderConfig
	out io.Writer
}

func NewLoader(cfg LoaderConfig, out io.Writer) *Loader {
	return &Loader{cfg: cfg, out: out}
}

func bloomKey(v int) []byte {
	return strconv.AppendInt(nil, int64(v), 10)
}

// Load inserts values in order. Duplicates are collected and skipped. The
// load stops at the first other error, typically an exhausted node limit.
// The caller must hold the session lock.
func (l *Loader) Load(s *Session, values []int) LoadReport {
	var report LoadReport

	// A bloom miss proves a value is new, so only hits pay for a search.
	var filter *bloom.BloomFilter
	if !s.DuplicatesAllowed() {
		filter = bloom.New(l.cfg.BloomSize, l.cfg.BloomHashes)
		binarytree.Inorder(s.Root(), func(v int) {
			filter.Add(bloomKey(v))
		})
	}

	var bar *progressbar.ProgressBar
	if l.cfg.ShowProgress && l.out != nil && len(values) >= progressThreshold {
		bar = progressbar.NewOptions(len(values),
			progressbar.OptionSetWriter(l.out),
			progressbar.OptionSetDescription(fmt.Sprintf("🌳 Loading %s %q...", s.Kind, s.Name)),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(l.out)
			}),
		)
	}

	for _, v := range values {
		if bar != nil {
			_ = bar.Add(1)
		}
		if filter != nil && filter.TestAndAdd(bloomKey(v)) && s.Contains(v) {
			report.Duplicates = append(report.Duplicates, v)
			continue
		}
		if err := s.Insert(v); err != nil {
			if errors.Is(err, binarytree.ErrDuplicateValue) {
				report.Duplicates = append(report.Duplicates, v)
				continue
			}
			report.Err = err
			break
		}
		report.Inserted++
	}
	if bar != nil {
		_ = bar.Finish()
	}
	clog.Debug("bulk load", "tree", s.Name, "inserted", report.Inserted, "duplicates", len(report.Duplicates), "err", report.Err)
	return report
}
