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

package app

import (
	"context"
	"maps"
	"slices"
	"time"
)

// Run reports every interval until the context is done, then reports
// one final time so the shortest-lived process still ships its
// metrics.
func (app *App) Run(ctx context.Context) error {
	if app.metricsServer != nil {
		if err := app.metricsServer.Start(); err != nil {
			return err
		}
		defer func() {
			if err := app.metricsServer.Shutdown(); err != nil {
				app.logger.Warnf("Error while shutting down the metrics server: %v", err)
			}
		}()
	}

	app.logger.Infof("Reporting to Graphite every %s", app.interval)

	ticker := time.NewTicker(app.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			app.logger.Info("Received a signal, reporting one last time...")

			// The run context is already canceled; give the final
			// cycle its own deadline.
			finalCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			app.reportAll(finalCtx)
			return nil
		case <-ticker.C:
			app.reportAll(ctx)
		}
	}
}

func (app *App) reportAll(ctx context.Context) {
	for _, scope := range slices.Sorted(maps.Keys(app.registries)) {
		app.reporter.Report(ctx, scope, app.registries[scope])
	}
}
