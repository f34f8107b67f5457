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
	"sort"
)

// Snapshot is an immutable statistical summary of a set of recorded
// values, taken at a point in time.
type Snapshot struct {
	values []int64 // sorted ascending
}

// NewSnapshot copies and sorts the given values.
func NewSnapshot(values []int64) Snapshot {
	sorted := make([]int64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Snapshot{values: sorted}
}

// Size returns the number of recorded values in the snapshot.
func (s Snapshot) Size() int { return len(s.values) }

// Max returns the highest recorded value, or 0 for an empty snapshot.
func (s Snapshot) Max() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

// Min returns the lowest recorded value, or 0 for an empty snapshot.
func (s Snapshot) Min() int64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[0]
}

// Mean returns the arithmetic mean of the recorded values.
func (s Snapshot) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.values {
		sum += float64(v)
	}
	return sum / float64(len(s.values))
}

// StdDev returns the standard deviation of the recorded values.
func (s Snapshot) StdDev() float64 {
	if len(s.values) <= 1 {
		return 0
	}
	mean := s.Mean()
	var sum float64
	for _, v := range s.values {
		d := float64(v) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(s.values)-1))
}

// Percentile returns the value at the given quantile in [0, 1], with
// linear interpolation between closest ranks.
func (s Snapshot) Percentile(q float64) float64 {
	if q < 0 || q > 1 || math.IsNaN(q) {
		return math.NaN()
	}
	n := len(s.values)
	if n == 0 {
		return 0
	}
	pos := q * float64(n+1)
	switch {
	case pos < 1:
		return float64(s.values[0])
	case pos >= float64(n):
		return float64(s.values[n-1])
	}
	lower := float64(s.values[int(pos)-1])
	upper := float64(s.values[int(pos)])
	return lower + (pos-math.Floor(pos))*(upper-lower)
}

// Median returns the 50th percentile.
func (s Snapshot) Median() float64 { return s.Percentile(0.5) }

// P75 returns the 75th percentile.
func (s Snapshot) P75() float64 { return s.Percentile(0.75) }

// P95 returns the 95th percentile.
func (s Snapshot) P95() float64 { return s.Percentile(0.95) }

// P98 returns the 98th percentile.
func (s Snapshot) P98() float64 { return s.Percentile(0.98) }

// P99 returns the 99th percentile.
func (s Snapshot) P99() float64 { return s.Percentile(0.99) }

// P999 returns the 99.9th percentile.
func (s Snapshot) P999() float64 { return s.Percentile(0.999) }
