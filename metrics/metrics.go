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

// Package metrics provides the measurement instruments reported to
// Graphite: gauges, counters, histograms, meters and timers, grouped
// in named registries. The set of kinds is closed; a timer is both
// metered and sampling.
package metrics

import "time"

// Gauge is an instantaneous reading of an arbitrary value. Values
// that are not numeric-like or boolean are not representable on the
// wire and are skipped by reporters.
type Gauge interface {
	Value() any
}

// Counter is a monotonic event count.
type Counter interface {
	Inc(n int64)
	Dec(n int64)
	Count() int64
}

// Metered exposes an event count together with exponentially-weighted
// rates over three windows and an all-time mean rate. Rates are in
// events per second.
type Metered interface {
	Count() int64
	Rate1() float64
	Rate5() float64
	Rate15() float64
	RateMean() float64
}

// Sampling exposes a statistical snapshot of a recorded distribution.
type Sampling interface {
	Snapshot() Snapshot
}

// Histogram records int64 observations and summarises their
// distribution.
type Histogram interface {
	Sampling
	Update(v int64)
	Count() int64
}

// Meter measures the rate at which events occur.
type Meter interface {
	Metered
	Mark(n int64)
}

// Timer combines a histogram of event durations with a meter of the
// event rate. Durations are recorded in nanoseconds.
type Timer interface {
	Metered
	Sampling
	Record(d time.Duration)
	Time(f func())
}

// Predicate selects metrics by name when a registry collection is
// read. All matches everything.
type Predicate func(name string) bool

// All is the predicate matching every metric.
var All Predicate = func(string) bool { return true }
