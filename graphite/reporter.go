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
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jbossorg/metrics-graphite/attribute"
	"github.com/jbossorg/metrics-graphite/metrics"

	"go.uber.org/zap"
)

// Reporter walks a metric registry and writes one timestamped sample
// per enabled attribute through a Sender. One call to Report is one
// complete sink lifecycle: connect, emit, flush, close. A cycle never
// returns an error to the caller; delivery problems degrade to fewer
// samples and a warning.
type Reporter struct {
	// mu enforces at most one active cycle per sender.
	mu sync.Mutex

	sender         Sender
	prefix         string
	disabled       attribute.Filter
	predicate      metrics.Predicate
	rateUnit       time.Duration
	durationUnit   time.Duration
	flushEveryKind bool
	now            func() time.Time
	logger         *zap.SugaredLogger

	rateFactor     float64
	durationFactor float64
}

// NewReporter returns a reporter writing through the given sender.
// Rates default to per-second, durations to milliseconds.
func NewReporter(sender Sender, opts ...ReporterOption) (*Reporter, error) {
	if sender == nil {
		return nil, errors.New("sender cannot be empty")
	}

	r := Reporter{
		sender:       sender,
		predicate:    metrics.All,
		rateUnit:     time.Second,
		durationUnit: time.Millisecond,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(&r)
	}

	if r.logger == nil {
		return nil, errors.New("logger cannot be empty")
	}

	if r.rateUnit <= 0 || r.durationUnit <= 0 {
		return nil, fmt.Errorf("invalid conversion units: rate %v, duration %v", r.rateUnit, r.durationUnit)
	}

	r.rateFactor = r.rateUnit.Seconds()
	r.durationFactor = 1 / float64(r.durationUnit.Nanoseconds())

	r.logger.Debugf("Reporting rates per %s, durations in %ss",
		rateLabel(unitName(r.rateUnit)), rateLabel(unitName(r.durationUnit)))

	return &r, nil
}

// Report runs one report cycle for the given registry scope. The
// five metric collections are visited in a fixed order, entries in
// each sorted by name. Connect and emit failures abort the remainder
// of the cycle; the sink is flushed and closed in every case.
func (r *Reporter) Report(ctx context.Context, scope string, registry *metrics.Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger.Debugf("Reporting %q registry", scope)
	timestamp := r.now().Unix()

	if err := r.sender.Connect(ctx); err != nil {
		r.logger.Warnf("Unable to connect to Graphite: %v", err)
	} else if err := r.emit(scope, registry, timestamp); err != nil {
		r.logger.Warnf("Unable to report to Graphite: %v", err)
	}

	if err := r.sender.Flush(); err != nil {
		r.logger.Warnf("Error flushing Graphite sender: %v", err)
	}
	if err := r.sender.Close(); err != nil {
		r.logger.Warnf("Error closing Graphite sender: %v", err)
	}

	if n := r.sender.FailureCount(); n > 0 {
		r.logger.Warnf("Graphite sender reported %d delivery failures", n)
	}
}

func (r *Reporter) emit(scope string, registry *metrics.Registry, timestamp int64) error {
	gauges := registry.Gauges(r.predicate)
	for _, name := range slices.Sorted(maps.Keys(gauges)) {
		if err := r.reportGauge(r.name(scope, name), gauges[name], timestamp); err != nil {
			return err
		}
	}
	if err := r.flushKind(); err != nil {
		return err
	}

	counters := registry.Counters(r.predicate)
	for _, name := range slices.Sorted(maps.Keys(counters)) {
		if err := r.reportCounter(r.name(scope, name), counters[name], timestamp); err != nil {
			return err
		}
	}
	if err := r.flushKind(); err != nil {
		return err
	}

	histograms := registry.Histograms(r.predicate)
	for _, name := range slices.Sorted(maps.Keys(histograms)) {
		if err := r.reportHistogram(r.name(scope, name), histograms[name], timestamp); err != nil {
			return err
		}
	}
	if err := r.flushKind(); err != nil {
		return err
	}

	meters := registry.Meters(r.predicate)
	for _, name := range slices.Sorted(maps.Keys(meters)) {
		if err := r.reportMetered(r.name(scope, name), meters[name], timestamp); err != nil {
			return err
		}
	}
	if err := r.flushKind(); err != nil {
		return err
	}

	timers := registry.Timers(r.predicate)
	for _, name := range slices.Sorted(maps.Keys(timers)) {
		if err := r.reportTimer(r.name(scope, name), timers[name], timestamp); err != nil {
			return err
		}
	}
	return r.flushKind()
}

func (r *Reporter) reportGauge(name string, gauge metrics.Gauge, timestamp int64) error {
	r.logger.Debugf("report gauge: %s", name)
	value, ok := formatValue(gauge.Value())
	if !ok {
		// Strings, nils and structs are not representable on the
		// wire; the gauge contributes no sample.
		return nil
	}
	return r.sender.Send(name, value, timestamp)
}

func (r *Reporter) reportCounter(name string, counter metrics.Counter, timestamp int64) error {
	r.logger.Debugf("report counter: %s", name)
	return r.sendInt(attribute.Count, name, counter.Count(), timestamp)
}

func (r *Reporter) reportHistogram(name string, histogram metrics.Histogram, timestamp int64) error {
	r.logger.Debugf("report histogram: %s", name)
	s := histogram.Snapshot()
	if err := r.sendInt(attribute.Count, name, histogram.Count(), timestamp); err != nil {
		return err
	}
	return r.sendSampling(name, s, 1, timestamp)
}

func (r *Reporter) reportMetered(name string, meter metrics.Metered, timestamp int64) error {
	r.logger.Debugf("report metered: %s", name)
	if err := r.sendInt(attribute.Count, name, meter.Count(), timestamp); err != nil {
		return err
	}
	for _, s := range []struct {
		attr attribute.Attribute
		rate float64
	}{
		{attribute.M1Rate, meter.Rate1()},
		{attribute.M5Rate, meter.Rate5()},
		{attribute.M15Rate, meter.Rate15()},
		{attribute.MeanRate, meter.RateMean()},
	} {
		if err := r.sendFloat(s.attr, name, s.rate*r.rateFactor, timestamp); err != nil {
			return err
		}
	}
	return nil
}

// reportTimer sends the sampling half scaled to the duration unit,
// then the metered half. COUNT belongs to the metered half so it is
// emitted exactly once even though a timer has both shapes.
func (r *Reporter) reportTimer(name string, timer metrics.Timer, timestamp int64) error {
	r.logger.Debugf("report timer: %s", name)
	if err := r.sendSampling(name, timer.Snapshot(), r.durationFactor, timestamp); err != nil {
		return err
	}
	return r.reportMetered(name, timer, timestamp)
}

// sendSampling emits the statistical fields of a snapshot, each
// multiplied by factor (1 for histograms, the duration conversion
// factor for timers).
func (r *Reporter) sendSampling(name string, s metrics.Snapshot, factor float64, timestamp int64) error {
	for _, f := range []struct {
		attr  attribute.Attribute
		value float64
	}{
		{attribute.Max, float64(s.Max())},
		{attribute.Mean, s.Mean()},
		{attribute.Min, float64(s.Min())},
		{attribute.StdDev, s.StdDev()},
		{attribute.P50, s.Median()},
		{attribute.P75, s.P75()},
		{attribute.P95, s.P95()},
		{attribute.P98, s.P98()},
		{attribute.P99, s.P99()},
		{attribute.P999, s.P999()},
	} {
		if err := r.sendFloat(f.attr, name, f.value*factor, timestamp); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) sendInt(a attribute.Attribute, name string, value int64, timestamp int64) error {
	if r.disabled.Disabled(a) {
		return nil
	}
	return r.sender.Send(name+"."+a.Code(), formatInt(value), timestamp)
}

func (r *Reporter) sendFloat(a attribute.Attribute, name string, value float64, timestamp int64) error {
	if r.disabled.Disabled(a) {
		return nil
	}
	return r.sender.Send(name+"."+a.Code(), formatFloat(value), timestamp)
}

func (r *Reporter) flushKind() error {
	if !r.flushEveryKind {
		return nil
	}
	return r.sender.Flush()
}

// name builds the dotted sample key from the configured prefix, the
// registry scope and the metric name, skipping empty parts.
func (r *Reporter) name(scope, metric string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.prefix, scope, metric} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
