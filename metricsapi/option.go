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

package metricsapi

import (
	"time"

	"github.com/jbossorg/metrics-graphite/metrics"

	"go.uber.org/zap"
)

type Option func(*Server)

// WithListenerAddress sets the address the server listens on.
func WithListenerAddress(addr string) Option {
	return func(s *Server) {
		s.server.Addr = addr
	}
}

// WithServerTimeout sets the read and write timeouts.
func WithServerTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = timeout
		s.server.WriteTimeout = timeout
	}
}

// WithRegistry exposes a registry under the given scope name.
func WithRegistry(scope string, registry *metrics.Registry) Option {
	return func(s *Server) {
		s.registries[scope] = registry
	}
}

// WithLogger configures a custom zap logger to be used by the server.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}
