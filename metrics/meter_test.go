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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests advance meter time deterministically.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMeterCount(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := newMeter(clock.now)

	m.Mark(1)
	m.Mark(2)

	assert.Equal(t, int64(3), m.Count())
}

func TestMeterRateMean(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := newMeter(clock.now)

	m.Mark(10)
	clock.advance(4 * time.Second)

	assert.InDelta(t, 2.5, m.RateMean(), 1e-9)
}

func TestMeterEWMARates(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := newMeter(clock.now)

	// 10 events in the first 5-second interval gives an instant rate
	// of 2/s, which seeds all three windows on the first tick.
	m.Mark(10)
	clock.advance(tickInterval)

	assert.InDelta(t, 2.0, m.Rate1(), 1e-9)
	assert.InDelta(t, 2.0, m.Rate5(), 1e-9)
	assert.InDelta(t, 2.0, m.Rate15(), 1e-9)

	// With no further events the rates decay, fastest for the
	// one-minute window.
	clock.advance(time.Minute)
	assert.Less(t, m.Rate1(), m.Rate5())
	assert.Less(t, m.Rate5(), m.Rate15())
	assert.Greater(t, m.Rate1(), 0.0)
}

func TestMeterZeroElapsed(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	m := newMeter(clock.now)

	m.Mark(5)

	assert.Equal(t, 0.0, m.RateMean())
	assert.Equal(t, 0.0, m.Rate1())
}
