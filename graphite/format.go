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
	"strconv"
	"strings"
	"time"
)

// formatValue renders a gauge value for the wire. Integer-likes keep
// their full precision, floats are fixed to two decimals and booleans
// become 1 or 0. The second return is false for values that are not
// representable; such gauges are skipped.
func formatValue(v any) (string, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return "1", true
		}
		return "0", true
	case int:
		return formatInt(int64(n)), true
	case int8:
		return formatInt(int64(n)), true
	case int16:
		return formatInt(int64(n)), true
	case int32:
		return formatInt(int64(n)), true
	case int64:
		return formatInt(n), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return formatFloat(float64(n)), true
	case float64:
		return formatFloat(n), true
	}
	return "", false
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

// formatFloat renders v with exactly two decimal places and a '.'
// separator regardless of host locale. The carbon plaintext format is
// pretty underspecified, but it wants US-formatted digits. Rounding
// is strconv's round-to-nearest of the exact binary value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// unitName returns the plural english name of a conversion unit,
// e.g. "milliseconds" for time.Millisecond.
func unitName(u time.Duration) string {
	switch u {
	case time.Nanosecond:
		return "nanoseconds"
	case time.Microsecond:
		return "microseconds"
	case time.Millisecond:
		return "milliseconds"
	case time.Second:
		return "seconds"
	case time.Minute:
		return "minutes"
	case time.Hour:
		return "hours"
	}
	return u.String()
}

// rateLabel derives the display label for a rate unit from its name:
// lower-cased, trailing plural 's' stripped ("SECONDS" -> "second").
// Display only, never part of a sample key.
func rateLabel(name string) string {
	return strings.TrimSuffix(strings.ToLower(name), "s")
}
