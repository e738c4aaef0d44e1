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
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFileName = ".treekit.yaml"

type LogConfig struct {
	Level string `yaml:"level"`
}

type LimitsConfig struct {
	// MaxNodes caps live nodes per tree. Zero means unlimited.
	MaxNodes int `yaml:"max_nodes"`
}

type SessionConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

type LoaderConfig struct {
	ShowProgress bool `yaml:"show_progress"`
	BloomSize    uint `yaml:"bloom_size"`
	BloomHashes  uint `yaml:"bloom_hashes"`
}

type RenderConfig struct {
	Color bool `yaml:"color"`
}

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Limits  LimitsConfig  `yaml:"limits"`
	Session SessionConfig `yaml:"session"`
	Loader  LoaderConfig  `yaml:"loader"`
	Render  RenderConfig  `yaml:"render"`
}

func defaultConfig() Config {
	return Config{
		Log:    LogConfig{Level: "warn"},
		Limits: LimitsConfig{MaxNodes: 0},
		Session: SessionConfig{
			TTL:     30 * time.Minute,
			Cleanup: 5 * time.Minute,
		},
		Loader: LoaderConfig{
			ShowProgress: true,
			BloomSize:    1 << 16,
			BloomHashes:  4,
		},
		Render: RenderConfig{Color: true},
	}
}

// normalize puts back defaults for values a hand-edited file may have zeroed.
func (c *Config) normalize() {
	def := defaultConfig()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Limits.MaxNodes < 0 {
		c.Limits.MaxNodes = 0
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = def.Session.TTL
	}
	if c.Session.Cleanup <= 0 {
		c.Session.Cleanup = def.Session.Cleanup
	}
	if c.Loader.BloomSize == 0 {
		c.Loader.BloomSize = def.Loader.BloomSize
	}
	if c.Loader.BloomHashes == 0 {
		c.Loader.BloomHashes = def.Loader.BloomHashes
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the yaml file at path, or ~/.treekit.yaml when path is
// empty. A missing file yields the defaults. A malformed file yields the
// defaults together with the parse error so the caller can warn about it.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return &config, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		def := defaultConfig()
		return &def, errors.Wrapf(err, "parse config %s", path)
	}
	config.normalize()
	return &config, nil
}

func createDefaultConfigFile(path string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// displaySettings prints the effective configuration, creating the default
// file first when it does not exist yet.
func displaySettings(w io.Writer, path string) error {
	if path == "" {
		p, err := getConfigPath()
		if err != nil {
			return errors.Wrap(err, "failed to get config path")
		}
		path = p
	}

	created := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(path); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(w, "❌ %v (showing defaults)\n\n", err)
	}

	fmt.Fprintf(w, "🔧 treekit Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")
	if created {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n\n", path)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s\n\n", path)
	}

	section := func(title string) {
		fmt.Fprintf(w, "%s%s:%s\n", Green, title, Reset)
	}
	item := func(key string, value interface{}, desc string) {
		fmt.Fprintf(w, "  • %s%s%s: %v\n", Info, key, Reset, value)
		fmt.Fprintf(w, "    %s\n", desc)
	}

	section("log")
	item("level", config.Log.Level, "one of debug, info, warn, error, crit")
	section("limits")
	maxNodes := "unlimited"
	if config.Limits.MaxNodes > 0 {
		maxNodes = fmt.Sprint(config.Limits.MaxNodes)
	}
	item("max_nodes", maxNodes, "live nodes allowed per tree before inserts fail")
	section("session")
	item("ttl", config.Session.TTL, "idle time before a named repl tree is dropped")
	item("cleanup", config.Session.Cleanup, "interval of the expiry sweep")
	section("loader")
	item("show_progress", config.Loader.ShowProgress, "progress bar for large bulk loads")
	item("bloom_size", config.Loader.BloomSize, "bits in the duplicate prefilter")
	item("bloom_hashes", config.Loader.BloomHashes, "hash functions in the duplicate prefilter")
	section("render")
	item("color", config.Render.Color, "colored terminal output")
	return nil
}
