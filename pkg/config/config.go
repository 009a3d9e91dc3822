//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads the editor settings from a TOML file.
package config

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	skye "github.com/timburks/skye/pkg/types"
	"github.com/timburks/skye/pkg/undo"
)

const (
	DefaultPath    = "~/.skye.toml"
	DefaultLogFile = "~/.skyelog"
)

type Config struct {
	Undo   UndoConfig   `toml:"undo"`
	Log    LogConfig    `toml:"log"`
	View   ViewConfig   `toml:"view"`
	Script ScriptConfig `toml:"script"`
}

type UndoConfig struct {
	// Limit is the maximum number of undo entries, 0 for no limit.
	Limit int `toml:"limit"`
}

type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type ViewConfig struct {
	Compass    bool   `toml:"compass"`
	Background string `toml:"background"` // hex color of new skies
}

type ScriptConfig struct {
	// Init is a lisp file evaluated at startup.
	Init string `toml:"init"`
}

func Default() *Config {
	return &Config{
		Undo: UndoConfig{Limit: undo.DefaultLimit},
		Log:  LogConfig{File: DefaultLogFile, Level: "info"},
		View: ViewConfig{Compass: true, Background: skye.Black.Hex()},
	}
}

// Load reads the file at path, or DefaultPath when path is empty. Keys that
// are not in the file keep their default values. A missing file gives the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: expand %s", path)
	}
	c := Default()
	data, err := os.ReadFile(expanded)
	if os.IsNotExist(err) {
		log.Debugf("config: %s not found, using defaults", expanded)
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "config: read %s", expanded)
	}
	if err := c.Decode(data); err != nil {
		return nil, errors.Wrapf(err, "config: %s", expanded)
	}
	return c, nil
}

// Decode applies TOML data on top of the current values and validates the
// result.
func (c *Config) Decode(data []byte) error {
	if err := toml.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "parse")
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Undo.Limit < 0 {
		return errors.Errorf("undo limit %d is negative", c.Undo.Limit)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}
	if _, err := skye.ParseColor(c.View.Background); err != nil {
		return errors.Wrap(err, "view background")
	}
	return nil
}

func (c *Config) GetLogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// GetLogFile returns the log file path with ~ expanded.
func (c *Config) GetLogFile() string {
	return expand(c.Log.File)
}

// GetInitScript returns the init script path with ~ expanded, or "".
func (c *Config) GetInitScript() string {
	return expand(c.Script.Init)
}

func (c *Config) GetBackground() skye.Color {
	color, err := skye.ParseColor(c.View.Background)
	if err != nil {
		log.Warnf("config: %v, using black background", err)
		return skye.Black
	}
	return color
}

func expand(path string) string {
	if path == "" {
		return ""
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.Warnf("config: %v", err)
		return path
	}
	return expanded
}
