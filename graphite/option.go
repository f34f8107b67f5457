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

package graphite

import (
	"time"

	"github.com/jbossorg/metrics-graphite/attribute"
	"github.com/jbossorg/metrics-graphite/metrics"

	"go.uber.org/zap"
)

type ClientOption func(*Client)

// WithAddress sets the carbon endpoint address, host:port.
func WithAddress(addr string) ClientOption {
	return func(c *Client) {
		c.addr = addr
	}
}

// WithNetwork selects the transport, "tcp" (default) or "udp".
func WithNetwork(network string) ClientOption {
	return func(c *Client) {
		c.network = network
	}
}

// WithDialTimeout bounds connection establishment.
func WithDialTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.dialTimeout = timeout
	}
}

// WithWriteTimeout bounds each write to the connection.
func WithWriteTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.writeTimeout = timeout
	}
}

// WithClientLogger configures a custom zap logger to be used by the
// client.
func WithClientLogger(logger *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

type ReporterOption func(*Reporter)

// WithPrefix prepends the given string to every sample key.
func WithPrefix(prefix string) ReporterOption {
	return func(r *Reporter) {
		r.prefix = prefix
	}
}

// WithDisabledAttributes suppresses emission of the given attributes
// for every metric in every registry.
func WithDisabledAttributes(f attribute.Filter) ReporterOption {
	return func(r *Reporter) {
		r.disabled = f
	}
}

// WithPredicate restricts reporting to metrics whose name matches p.
func WithPredicate(p metrics.Predicate) ReporterOption {
	return func(r *Reporter) {
		r.predicate = p
	}
}

// WithRateUnit sets the unit rates are scaled to. A meter tracking
// events per second reported with a rate unit of a minute shows
// events per minute.
func WithRateUnit(u time.Duration) ReporterOption {
	return func(r *Reporter) {
		r.rateUnit = u
	}
}

// WithDurationUnit sets the unit timer durations are scaled to.
func WithDurationUnit(u time.Duration) ReporterOption {
	return func(r *Reporter) {
		r.durationUnit = u
	}
}

// WithClock overrides the clock used to timestamp samples.
func WithClock(now func() time.Time) ReporterOption {
	return func(r *Reporter) {
		r.now = now
	}
}

// WithFlushEveryKind flushes the sink after each metric-kind batch
// instead of once at cleanup, trading syscalls for earlier delivery
// of partial cycles.
func WithFlushEveryKind() ReporterOption {
	return func(r *Reporter) {
		r.flushEveryKind = true
	}
}

// WithLogger configures a custom zap logger to be used by the
// reporter.
func WithLogger(logger *zap.SugaredLogger) ReporterOption {
	return func(r *Reporter) {
		r.logger = logger
	}
}
