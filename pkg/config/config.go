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

// Package config holds the server configuration.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"

	"github.com/replidb/replidb/pkg/util/dbterror"
	"github.com/replidb/replidb/pkg/util/logutil"
)

// Store configures the coordination store connection.
type Store struct {
	// Endpoints of the ZooKeeper ensemble. An empty list starts an
	// in-process store, useful for a standalone trial run.
	Endpoints []string `toml:"endpoints" json:"endpoints"`
	// SessionTimeoutSeconds of the store session.
	SessionTimeoutSeconds int `toml:"session-timeout-seconds" json:"session-timeout-seconds"`
}

// Config is the top-level server configuration.
type Config struct {
	// Database is the replicated database name.
	Database string `toml:"database" json:"database"`
	// StorePath is the database root in the coordination store.
	StorePath string `toml:"store-path" json:"store-path"`
	// Shard and Replica name this replica's slot.
	Shard   string `toml:"shard" json:"shard"`
	Replica string `toml:"replica" json:"replica"`
	// Host and TCPPort advertise this process to the cluster.
	Host    string `toml:"host" json:"host"`
	TCPPort int    `toml:"tcp-port" json:"tcp-port"`
	// DataDir holds local metadata files.
	DataDir string `toml:"data-dir" json:"data-dir"`
	// HTTPAddr is the listen address of the admin HTTP server.
	HTTPAddr string `toml:"http-addr" json:"http-addr"`
	// DDLTaskTimeoutSeconds bounds the replica status wait of a DDL
	// statement. Zero returns immediately after the local apply.
	DDLTaskTimeoutSeconds int `toml:"ddl-task-timeout-seconds" json:"ddl-task-timeout-seconds"`

	Store Store             `toml:"store" json:"store"`
	Log   logutil.LogConfig `toml:"log" json:"log"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Database:              "default",
		StorePath:             "/replidb/default",
		Shard:                 "s1",
		Replica:               "r1",
		Host:                  "127.0.0.1",
		TCPPort:               9000,
		DataDir:               "data",
		HTTPAddr:              "127.0.0.1:8123",
		DDLTaskTimeoutSeconds: 180,
		Store: Store{
			SessionTimeoutSeconds: 10,
		},
		Log: *logutil.NewLogConfig(logutil.DefaultLogLevel, ""),
	}
}

// Load reads a toml configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, dbterror.ErrBadArguments.GenWithStackByArgs("unknown configuration item " + undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the replication layer would refuse later.
func (c *Config) Validate() error {
	if c.Database == "" {
		return dbterror.ErrBadArguments.GenWithStackByArgs("database name must be non-empty")
	}
	if c.StorePath == "" || c.Shard == "" || c.Replica == "" {
		return dbterror.ErrBadArguments.GenWithStackByArgs("store path, shard and replica names must be non-empty")
	}
	if c.TCPPort <= 0 || c.TCPPort > 65535 {
		return dbterror.ErrBadArguments.GenWithStackByArgs("tcp-port is out of range")
	}
	if c.DataDir == "" {
		return dbterror.ErrBadArguments.GenWithStackByArgs("data-dir must be non-empty")
	}
	return nil
}

// SessionTimeout returns the store session timeout as a duration.
func (c *Config) SessionTimeout() time.Duration {
	return time.Duration(c.Store.SessionTimeoutSeconds) * time.Second
}

// DDLTaskTimeout returns the DDL status wait bound as a duration.
func (c *Config) DDLTaskTimeout() time.Duration {
	return time.Duration(c.DDLTaskTimeoutSeconds) * time.Second
}
