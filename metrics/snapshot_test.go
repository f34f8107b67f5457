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

package metrics_test

import (
	"math"
	"testing"

	"github.com/jbossorg/metrics-graphite/metrics"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	s := metrics.NewSnapshot([]int64{5, 1, 2, 3, 4})

	assert.Equal(t, 5, s.Size())
	assert.Equal(t, int64(5), s.Max())
	assert.Equal(t, int64(1), s.Min())
	assert.InDelta(t, 3.0, s.Mean(), 1e-9)
	assert.InDelta(t, math.Sqrt(2.5), s.StdDev(), 1e-9)
	assert.InDelta(t, 3.0, s.Median(), 1e-9)
	assert.InDelta(t, 4.5, s.P75(), 1e-9)
	assert.InDelta(t, 5.0, s.P99(), 1e-9)
}

func TestSnapshotEmpty(t *testing.T) {
	s := metrics.NewSnapshot(nil)

	assert.Equal(t, 0, s.Size())
	assert.Equal(t, int64(0), s.Max())
	assert.Equal(t, int64(0), s.Min())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.Median())
}

func TestSnapshotSingleValue(t *testing.T) {
	s := metrics.NewSnapshot([]int64{42})

	assert.Equal(t, 0.0, s.StdDev())
	assert.InDelta(t, 42.0, s.Median(), 1e-9)
	assert.InDelta(t, 42.0, s.P999(), 1e-9)
}

func TestSnapshotOutOfRangeQuantile(t *testing.T) {
	s := metrics.NewSnapshot([]int64{1, 2, 3})
	assert.True(t, math.IsNaN(s.Percentile(-0.1)))
	assert.True(t, math.IsNaN(s.Percentile(1.1)))
}

func TestSnapshotIsImmutable(t *testing.T) {
	values := []int64{3, 1, 2}
	s := metrics.NewSnapshot(values)
	values[0] = 100

	assert.Equal(t, int64(3), s.Max())
}
