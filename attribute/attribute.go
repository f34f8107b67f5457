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

// Package attribute enumerates the statistical facets a metric can
// contribute to a report, together with their wire-format codes.
package attribute

import "fmt"

// Attribute identifies one statistical facet of a metric, e.g. the
// 99th percentile of a timer or the five-minute rate of a meter.
type Attribute string

// The full catalog. Codes are stable wire identifiers shared with the
// carbon naming scheme and must never change.
const (
	Max      Attribute = "max"
	Mean     Attribute = "mean"
	Min      Attribute = "min"
	StdDev   Attribute = "stddev"
	P50      Attribute = "p50"
	P75      Attribute = "p75"
	P95      Attribute = "p95"
	P98      Attribute = "p98"
	P99      Attribute = "p99"
	P999     Attribute = "p999"
	Count    Attribute = "count"
	M1Rate   Attribute = "m1_rate"
	M5Rate   Attribute = "m5_rate"
	M15Rate  Attribute = "m15_rate"
	MeanRate Attribute = "mean_rate"
)

var catalog = []Attribute{
	Max, Mean, Min, StdDev,
	P50, P75, P95, P98, P99, P999,
	Count, M1Rate, M5Rate, M15Rate, MeanRate,
}

// Code returns the canonical wire token for the attribute.
func (a Attribute) Code() string {
	return string(a)
}

// All returns the full catalog in emission order.
func All() []Attribute {
	out := make([]Attribute, len(catalog))
	copy(out, catalog)
	return out
}

// Parse resolves a wire code back to its attribute. Matching is exact:
// codes are lowercase ASCII and configuration is expected to use them
// verbatim.
func Parse(code string) (Attribute, error) {
	for _, a := range catalog {
		if string(a) == code {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown metric attribute %q", code)
}
