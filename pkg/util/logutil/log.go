// Copyright 2024 replidb Authors.
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

package logutil

import (
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

const (
	// DefaultLogMaxSize is the max size of a log file before rotation, in MB.
	DefaultLogMaxSize = 300
	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// LogConfig serializes log related config.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level" json:"level"`
	// File is the log file path. Empty means stderr.
	File string `toml:"file" json:"file"`
	// MaxSize is the max size of a log file before rotation, in MB.
	MaxSize int `toml:"max-size" json:"max-size"`
}

// NewLogConfig creates a LogConfig with defaults applied.
func NewLogConfig(level, file string) *LogConfig {
	if level == "" {
		level = DefaultLogLevel
	}
	return &LogConfig{Level: level, File: file, MaxSize: DefaultLogMaxSize}
}

// InitLogger initializes the process-wide logger from cfg.
func InitLogger(cfg *LogConfig) error {
	c := &log.Config{
		Level: cfg.Level,
		File:  log.FileLogConfig{Filename: cfg.File, MaxSize: cfg.MaxSize},
	}
	lg, p, err := log.InitLogger(c)
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(lg, p)
	return nil
}

// BgLogger returns the global logger for background tasks.
func BgLogger() *zap.Logger {
	return log.L()
}
