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

// Package server exposes the admin HTTP surface: DDL execution, the
// cluster view, health and metrics. There is no query routing here; the
// coordinator replicates schema, not data.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pingcap/errors"
	"github.com/pingcap/tidb/parser/terror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/replidb/replidb/pkg/ddlworker"
	"github.com/replidb/replidb/pkg/metrics"
	"github.com/replidb/replidb/pkg/replicated"
	"github.com/replidb/replidb/pkg/sessionctx"
	"github.com/replidb/replidb/pkg/util/logutil"
)

// Server is the admin HTTP server of one replica.
type Server struct {
	db             *replicated.Database
	ddlTaskTimeout time.Duration
	logger         *zap.Logger
	httpServer     *http.Server
}

// New builds the server and its routes.
func New(addr string, db *replicated.Database, ddlTaskTimeout time.Duration) *Server {
	s := &Server{
		db:             db,
		ddlTaskTimeout: ddlTaskTimeout,
		logger:         logutil.BgLogger().With(zap.String("component", "http")),
	}

	registry := prometheus.NewRegistry()
	metrics.RegisterMetrics(registry)

	router := mux.NewRouter()
	router.HandleFunc("/ddl", s.handleDDL).Methods(http.MethodPost)
	router.HandleFunc("/cluster", s.handleCluster).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.httpServer = &http.Server{Addr: addr, Handler: router}
	return s
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("admin server listening", zap.String("addr", s.httpServer.Addr))
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop shuts the listener down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the HTTP handler, for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

type ddlRequest struct {
	Query string `json:"query"`
}

type ddlResponse struct {
	Replicas []ddlworker.ReplicaStatus `json:"replicas,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func errorStatusCode(err error) int {
	if _, ok := errors.Cause(err).(*terror.Error); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) handleDDL(w http.ResponseWriter, r *http.Request) {
	var req ddlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be a json object with a non-empty query field"})
		return
	}
	se := sessionctx.NewInitial(s.db.DatabaseName())
	se.DDLTaskTimeout = s.ddlTaskTimeout
	statuses, err := s.db.ExecuteDDL(r.Context(), se, req.Query)
	if err != nil {
		s.logger.Warn("ddl failed", zap.String("query", req.Query), zap.Error(err))
		writeJSON(w, errorStatusCode(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, ddlResponse{Replicas: statuses})
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	cluster, err := s.db.GetCluster()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cluster)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"replica": s.db.FullReplicaName(),
	})
}
