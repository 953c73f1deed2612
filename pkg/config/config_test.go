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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replidb.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
database = "orders"
store-path = "/clusters/orders"
shard = "s2"
replica = "r3"
host = "10.0.0.5"
tcp-port = 9100
data-dir = "/var/lib/replidb"
ddl-task-timeout-seconds = 30

[store]
endpoints = ["zk1:2181", "zk2:2181"]
session-timeout-seconds = 7

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "orders", cfg.Database)
	require.Equal(t, "/clusters/orders", cfg.StorePath)
	require.Equal(t, "s2", cfg.Shard)
	require.Equal(t, "r3", cfg.Replica)
	require.Equal(t, 9100, cfg.TCPPort)
	require.Equal(t, []string{"zk1:2181", "zk2:2181"}, cfg.Store.Endpoints)
	require.Equal(t, 7*time.Second, cfg.SessionTimeout())
	require.Equal(t, 30*time.Second, cfg.DDLTaskTimeout())
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
database = "db1"
unknown-key = true
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	cfg.TCPPort = 0
	require.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.Shard = ""
	require.Error(t, cfg.Validate())

	cfg = NewConfig()
	cfg.DataDir = ""
	require.Error(t, cfg.Validate())
}
