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
	"math"
	"sync"
	"time"
)

// EWMA tick interval. Rates are smoothed in 5-second steps, the same
// cadence the UNIX load average uses.
const tickInterval = 5 * time.Second

// NewMeter returns a meter tracking 1/5/15-minute exponentially
// weighted rates plus the all-time mean rate.
func NewMeter() Meter {
	return newMeter(time.Now)
}

func newMeter(now func() time.Time) *meter {
	t := now()
	return &meter{
		now:       now,
		startTime: t,
		lastTick:  t,
		m1:        newEWMA(1 * time.Minute),
		m5:        newEWMA(5 * time.Minute),
		m15:       newEWMA(15 * time.Minute),
	}
}

type meter struct {
	mu          sync.Mutex
	now         func() time.Time
	startTime   time.Time
	lastTick    time.Time
	count       int64
	m1, m5, m15 *ewma
}

func (m *meter) Mark(n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNecessary()
	m.count += n
	m.m1.update(n)
	m.m5.update(n)
	m.m15.update(n)
}

func (m *meter) Count() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (m *meter) Rate1() float64 { return m.rate(func() float64 { return m.m1.rate }) }

func (m *meter) Rate5() float64 { return m.rate(func() float64 { return m.m5.rate }) }

func (m *meter) Rate15() float64 { return m.rate(func() float64 { return m.m15.rate }) }

func (m *meter) rate(read func() float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickIfNecessary()
	return read()
}

// RateMean returns the all-time mean rate in events per second.
func (m *meter) RateMean() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	elapsed := m.now().Sub(m.startTime).Seconds()
	if elapsed <= 0 || m.count == 0 {
		return 0
	}
	return float64(m.count) / elapsed
}

// tickIfNecessary advances the EWMAs by however many whole tick
// intervals have elapsed since the last tick. Callers hold m.mu.
func (m *meter) tickIfNecessary() {
	elapsed := m.now().Sub(m.lastTick)
	if elapsed < tickInterval {
		return
	}
	ticks := int64(elapsed / tickInterval)
	m.lastTick = m.lastTick.Add(time.Duration(ticks) * tickInterval)
	for i := int64(0); i < ticks; i++ {
		m.m1.tick()
		m.m5.tick()
		m.m15.tick()
	}
}

// ewma is an exponentially weighted moving average over a fixed
// window, updated once per tick interval.
type ewma struct {
	alpha     float64
	rate      float64 // events per second
	uncounted int64
	init      bool
}

func newEWMA(window time.Duration) *ewma {
	return &ewma{alpha: 1 - math.Exp(-tickInterval.Seconds()/window.Seconds())}
}

func (e *ewma) update(n int64) {
	e.uncounted += n
}

func (e *ewma) tick() {
	instant := float64(e.uncounted) / tickInterval.Seconds()
	e.uncounted = 0
	if !e.init {
		e.rate = instant
		e.init = true
		return
	}
	e.rate += e.alpha * (instant - e.rate)
}
