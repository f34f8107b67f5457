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

// Package app wires the logger, the carbon client, the reporter and
// the scope registries into a runnable reporting process.
package app

import (
	"time"

	"github.com/jbossorg/metrics-graphite/attribute"
	"github.com/jbossorg/metrics-graphite/graphite"
	"github.com/jbossorg/metrics-graphite/logger"
	"github.com/jbossorg/metrics-graphite/metrics"
	"github.com/jbossorg/metrics-graphite/metricsapi"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

// The fixed scope names, reported in lexical order.
const (
	ScopeApplication = "application"
	ScopeBase        = "base"
	ScopeVendor      = "vendor"
)

type App struct {
	logger        *zap.SugaredLogger
	reporter      *graphite.Reporter
	metricsServer *metricsapi.Server
	registries    map[string]*metrics.Registry
	interval      time.Duration
}

// New builds the application from options, environment variables and
// the optional JSON config file.
func New(opts ...ConfigOption) (*App, error) {
	c := appConfig{}

	for _, opt := range opts {
		opt(&c)
	}

	s, err := loadSettings(c)
	if err != nil {
		return nil, err
	}

	app := &App{
		registries: map[string]*metrics.Registry{
			ScopeBase:        metrics.NewRegistry(),
			ScopeVendor:      metrics.NewRegistry(),
			ScopeApplication: metrics.NewRegistry(),
		},
		interval: s.interval,
	}

	if app.logger, err = buildLogger(s.logLevel); err != nil {
		return nil, err
	}

	disabled, err := attribute.ParseFilter(s.disabled)
	if err != nil {
		return nil, err
	}

	client, err := graphite.NewClient(
		graphite.WithAddress(s.address),
		graphite.WithNetwork(s.network),
		graphite.WithClientLogger(app.logger),
	)
	if err != nil {
		return nil, err
	}

	app.reporter, err = graphite.NewReporter(client,
		graphite.WithPrefix(s.prefix),
		graphite.WithDisabledAttributes(disabled),
		graphite.WithRateUnit(s.rateUnit),
		graphite.WithDurationUnit(s.durationUnit),
		graphite.WithLogger(app.logger),
	)
	if err != nil {
		return nil, err
	}

	if s.metricsAddr != "" {
		app.metricsServer, err = metricsapi.NewServer(
			metricsapi.WithListenerAddress(s.metricsAddr),
			metricsapi.WithLogger(app.logger),
			metricsapi.WithRegistry(ScopeBase, app.registries[ScopeBase]),
			metricsapi.WithRegistry(ScopeVendor, app.registries[ScopeVendor]),
			metricsapi.WithRegistry(ScopeApplication, app.registries[ScopeApplication]),
		)
		if err != nil {
			return nil, err
		}
	}

	registerBaseMetrics(app.registries[ScopeBase])

	return app, nil
}

// Registry returns the registry for the given scope, or nil for an
// unknown scope.
func (app *App) Registry(scope string) *metrics.Registry {
	return app.registries[scope]
}

func buildLogger(level string) (*zap.SugaredLogger, error) {
	if level == "" {
		level = "info"
	}

	l, err := logger.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithEncoderConfig(ecszap.NewDefaultEncoderConfig().ToZapCoreEncoderConfig()),
		logger.WithLevel(l),
	)
}
