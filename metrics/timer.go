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

import "time"

// NewTimer returns a timer composed of a meter for the event rate and
// a histogram of event durations in nanoseconds.
func NewTimer() Timer {
	return &timer{
		meter:     newMeter(time.Now),
		histogram: NewHistogram(),
	}
}

type timer struct {
	meter     *meter
	histogram Histogram
}

// Record adds a completed event with the given duration. Negative
// durations are ignored.
func (t *timer) Record(d time.Duration) {
	if d < 0 {
		return
	}
	t.histogram.Update(int64(d))
	t.meter.Mark(1)
}

// Time records the duration of f.
func (t *timer) Time(f func()) {
	start := time.Now()
	f()
	t.Record(time.Since(start))
}

func (t *timer) Count() int64 { return t.meter.Count() }

func (t *timer) Rate1() float64 { return t.meter.Rate1() }

func (t *timer) Rate5() float64 { return t.meter.Rate5() }

func (t *timer) Rate15() float64 { return t.meter.Rate15() }

func (t *timer) RateMean() float64 { return t.meter.RateMean() }

func (t *timer) Snapshot() Snapshot { return t.histogram.Snapshot() }
