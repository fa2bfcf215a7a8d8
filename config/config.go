// Copyright 2025 Poiesic Systems
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


// Package config holds run defaults loadable from a YAML file. Values here
// only seed CLI flag defaults; flags set on the command line always win.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/poiesic/mindgrep/core"
	"github.com/poiesic/mindgrep/mindmap"
	"github.com/poiesic/mindgrep/report"
	"github.com/poiesic/mindgrep/search"
)

// Config is the optional defaults file for the mindgrep CLI.
type Config struct {
	FileFolder string   `yaml:"file_folder"` // file or directory to search
	Extensions []string `yaml:"extensions"`  // map file suffixes
	Delimiter  string   `yaml:"delimiter"`   // term delimiter for keyword input
	Workers    int      `yaml:"workers"`     // concurrent file searches
	Connector  string   `yaml:"connector"`   // ancestor path join string
	NoColor    bool     `yaml:"no_color"`    // disable terminal color
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FileFolder: "/opt/my-maps",
		Extensions: []string{mindmap.DefaultExtension},
		Delimiter:  core.DefaultDelimiter,
		Workers:    search.DefaultWorkers,
		Connector:  report.DefaultConnector,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
