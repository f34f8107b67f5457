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
	"math/rand"
	"sync"
)

const defaultReservoirSize = 1028

// NewHistogram returns a histogram backed by a uniform reservoir of
// the default size (1028 values, a statistically representative
// sample for up to high-throughput streams).
func NewHistogram() Histogram {
	return NewHistogramWithReservoir(defaultReservoirSize)
}

// NewHistogramWithReservoir returns a histogram keeping at most size
// values, sampled uniformly over the full stream (Vitter's
// algorithm R).
func NewHistogramWithReservoir(size int) Histogram {
	return &histogram{values: make([]int64, 0, size), size: size}
}

type histogram struct {
	mu     sync.Mutex
	count  int64
	size   int
	values []int64
}

func (h *histogram) Update(v int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	if len(h.values) < h.size {
		h.values = append(h.values, v)
		return
	}
	if i := rand.Int63n(h.count); i < int64(h.size) {
		h.values[i] = v
	}
}

func (h *histogram) Count() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func (h *histogram) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return NewSnapshot(h.values)
}
