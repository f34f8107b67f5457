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

package metrics

import (
	"fmt"
	"sync"
)

// Registry holds the metrics of one scope, partitioned by kind. Each
// name is unique within its kind. Accessors get-or-create, so
// instrumenting code never has to check for prior registration.
type Registry struct {
	mu         sync.RWMutex
	gauges     map[string]Gauge
	counters   map[string]Counter
	histograms map[string]Histogram
	meters     map[string]Meter
	timers     map[string]Timer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		gauges:     make(map[string]Gauge),
		counters:   make(map[string]Counter),
		histograms: make(map[string]Histogram),
		meters:     make(map[string]Meter),
		timers:     make(map[string]Timer),
	}
}

// RegisterGauge registers g under name, replacing any previous gauge
// with that name.
func (r *Registry) RegisterGauge(name string, g Gauge) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gauges[name] = g
}

// Register adds a pre-built instrument under name, dispatching on its
// kind. Existing registrations of the same kind and name are
// replaced. Timers are matched before meters and histograms since a
// timer carries both shapes.
func (r *Registry) Register(name string, metric any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch m := metric.(type) {
	case Timer:
		r.timers[name] = m
	case Meter:
		r.meters[name] = m
	case Histogram:
		r.histograms[name] = m
	case Counter:
		r.counters[name] = m
	case Gauge:
		r.gauges[name] = m
	default:
		return fmt.Errorf("unsupported metric type %T", metric)
	}
	return nil
}

// Counter returns the counter registered under name, creating it on
// first use.
func (r *Registry) Counter(name string) Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.counters[name]
	if !ok {
		c = NewCounter()
		r.counters[name] = c
	}
	return c
}

// Histogram returns the histogram registered under name, creating it
// on first use.
func (r *Registry) Histogram(name string) Histogram {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.histograms[name]
	if !ok {
		h = NewHistogram()
		r.histograms[name] = h
	}
	return h
}

// Meter returns the meter registered under name, creating it on first
// use.
func (r *Registry) Meter(name string) Meter {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.meters[name]
	if !ok {
		m = NewMeter()
		r.meters[name] = m
	}
	return m
}

// Timer returns the timer registered under name, creating it on first
// use.
func (r *Registry) Timer(name string) Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.timers[name]
	if !ok {
		t = NewTimer()
		r.timers[name] = t
	}
	return t
}

// Gauges returns a copy of the gauge collection filtered by p.
func (r *Registry) Gauges(p Predicate) map[string]Gauge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Gauge, len(r.gauges))
	for name, g := range r.gauges {
		if p(name) {
			out[name] = g
		}
	}
	return out
}

// Counters returns a copy of the counter collection filtered by p.
func (r *Registry) Counters(p Predicate) map[string]Counter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Counter, len(r.counters))
	for name, c := range r.counters {
		if p(name) {
			out[name] = c
		}
	}
	return out
}

// Histograms returns a copy of the histogram collection filtered by p.
func (r *Registry) Histograms(p Predicate) map[string]Histogram {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Histogram, len(r.histograms))
	for name, h := range r.histograms {
		if p(name) {
			out[name] = h
		}
	}
	return out
}

// Meters returns a copy of the meter collection filtered by p.
func (r *Registry) Meters(p Predicate) map[string]Meter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Meter, len(r.meters))
	for name, m := range r.meters {
		if p(name) {
			out[name] = m
		}
	}
	return out
}

// Timers returns a copy of the timer collection filtered by p.
func (r *Registry) Timers(p Predicate) map[string]Timer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Timer, len(r.timers))
	for name, t := range r.timers {
		if p(name) {
			out[name] = t
		}
	}
	return out
}
