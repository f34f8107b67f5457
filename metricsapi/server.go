// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied. See the License for the
// specific language governing permissions and limitations
// under the License.

// Package metricsapi exposes the metric registries over HTTP as JSON,
// the read-side counterpart of the Graphite reporter.
package metricsapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/jbossorg/metrics-graphite/metrics"

	"go.uber.org/zap"
)

const defaultServerTimeout = 15 * time.Second

// Server serves GET /metrics and GET /metrics/{scope}.
type Server struct {
	registries map[string]*metrics.Registry
	server     *http.Server
	logger     *zap.SugaredLogger
}

// NewServer returns a server exposing the given registries. The
// listener is not opened until Start.
func NewServer(opts ...Option) (*Server, error) {
	s := Server{
		registries: make(map[string]*metrics.Registry),
		server: &http.Server{
			ReadTimeout:    defaultServerTimeout,
			WriteTimeout:   defaultServerTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}

	for _, opt := range opts {
		opt(&s)
	}

	if s.server.Addr == "" {
		return nil, errors.New("listen address cannot be empty")
	}

	if s.logger == nil {
		return nil, errors.New("logger cannot be empty")
	}

	return &s, nil
}

// Start begins listening for metrics requests in the background.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.handleAllScopes())
	mux.HandleFunc("/metrics/", s.handleScope())
	s.server.Handler = mux

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on addr %s: %w", s.server.Addr, err)
	}

	go func() {
		s.logger.Infof("Serving metrics on %s", ln.Addr())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("received error from http.Serve(): %v", err)
		} else {
			s.logger.Debug("metrics server closed")
		}
	}()
	return nil
}

// Shutdown stops the metrics server gracefully.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// URL: GET http://server/metrics
func (s *Server) handleAllScopes() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		s.writeJSON(w, marshalScopes(s.registries))
	}
}

// URL: GET http://server/metrics/{scope}
func (s *Server) handleScope() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		scope := strings.TrimPrefix(r.URL.Path, "/metrics/")
		registry, ok := s.registries[scope]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		s.writeJSON(w, marshalRegistry(registry))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(body); err != nil {
		s.logger.Debugf("Failed to write metrics response: %v", err)
	}
}
