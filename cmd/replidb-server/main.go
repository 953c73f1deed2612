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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/catalog"
	"github.com/replidb/replidb/pkg/config"
	"github.com/replidb/replidb/pkg/coordination"
	"github.com/replidb/replidb/pkg/coordination/memstore"
	"github.com/replidb/replidb/pkg/coordination/zkstore"
	"github.com/replidb/replidb/pkg/replicated"
	"github.com/replidb/replidb/pkg/server"
	"github.com/replidb/replidb/pkg/util/logutil"
)

var (
	configPath = flag.String("config", "", "path of the configuration file")
	endpoints  = flag.String("store-endpoints", "", "comma separated coordination store endpoints, overrides the config file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			return err
		}
	}
	if *endpoints != "" {
		cfg.Store.Endpoints = zkstore.Endpoints(*endpoints)
	}
	if err := logutil.InitLogger(&cfg.Log); err != nil {
		return err
	}
	logger := logutil.BgLogger()

	var store coordination.Client
	if len(cfg.Store.Endpoints) == 0 {
		logger.Warn("no store endpoints configured, using an in-process store; replication is limited to this process")
		store = memstore.New().Session()
	} else {
		var err error
		store, err = zkstore.Connect(cfg.Store.Endpoints, cfg.SessionTimeout())
		if err != nil {
			return err
		}
	}
	defer store.Close()

	registry := catalog.NewRegistry()
	db, err := replicated.Open(replicated.Config{
		Name:      cfg.Database,
		StorePath: cfg.StorePath,
		Shard:     cfg.Shard,
		Replica:   cfg.Replica,
		Host:      cfg.Host,
		TCPPort:   cfg.TCPPort,
		DataDir:   cfg.DataDir,
	}, store, registry)
	if err != nil {
		return err
	}
	if err := db.Startup(); err != nil {
		return err
	}
	defer db.Shutdown()
	logger.Info("replica started",
		zap.String("database", cfg.Database),
		zap.String("replica", db.FullReplicaName()),
		zap.String("hostID", db.HostID()))

	srv := server.New(cfg.HTTPAddr, db, cfg.DDLTaskTimeout())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}
