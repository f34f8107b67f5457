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

package metricsapi

import (
	"maps"
	"slices"

	"github.com/jbossorg/metrics-graphite/attribute"
	"github.com/jbossorg/metrics-graphite/metrics"

	"go.elastic.co/fastjson"
)

// marshalScopes renders all registries keyed by scope name.
func marshalScopes(registries map[string]*metrics.Registry) []byte {
	var w fastjson.Writer
	w.RawByte('{')
	for i, scope := range slices.Sorted(maps.Keys(registries)) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(scope)
		w.RawByte(':')
		w.RawBytes(marshalRegistry(registries[scope]))
	}
	w.RawByte('}')
	return w.Bytes()
}

// marshalRegistry renders one registry partitioned by kind, using the
// same attribute codes as the Graphite wire format.
func marshalRegistry(r *metrics.Registry) []byte {
	var w fastjson.Writer
	w.RawByte('{')

	w.RawString(`"gauges":{`)
	gauges := r.Gauges(metrics.All)
	first := true
	for _, name := range slices.Sorted(maps.Keys(gauges)) {
		if !writeGaugeValue(&w, name, gauges[name].Value(), first) {
			continue
		}
		first = false
	}
	w.RawByte('}')

	w.RawString(`,"counters":{`)
	counters := r.Counters(metrics.All)
	for i, name := range slices.Sorted(maps.Keys(counters)) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(name)
		w.RawString(`:{"count":`)
		w.Int64(counters[name].Count())
		w.RawByte('}')
	}
	w.RawByte('}')

	w.RawString(`,"histograms":{`)
	histograms := r.Histograms(metrics.All)
	for i, name := range slices.Sorted(maps.Keys(histograms)) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(name)
		w.RawByte(':')
		h := histograms[name]
		w.RawByte('{')
		w.RawString(`"count":`)
		w.Int64(h.Count())
		writeSnapshot(&w, h.Snapshot())
		w.RawByte('}')
	}
	w.RawByte('}')

	w.RawString(`,"meters":{`)
	meters := r.Meters(metrics.All)
	for i, name := range slices.Sorted(maps.Keys(meters)) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(name)
		w.RawByte(':')
		w.RawByte('{')
		writeMetered(&w, meters[name])
		w.RawByte('}')
	}
	w.RawByte('}')

	w.RawString(`,"timers":{`)
	timers := r.Timers(metrics.All)
	for i, name := range slices.Sorted(maps.Keys(timers)) {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(name)
		w.RawByte(':')
		t := timers[name]
		w.RawByte('{')
		writeMetered(&w, t)
		writeSnapshot(&w, t.Snapshot())
		w.RawByte('}')
	}
	w.RawByte('}')

	w.RawByte('}')
	return w.Bytes()
}

// writeGaugeValue writes `"name":value` for representable values and
// reports whether anything was written. Gauges holding strings or
// structs are left out, matching the reporter.
func writeGaugeValue(w *fastjson.Writer, name string, v any, first bool) bool {
	var write func()
	switch n := v.(type) {
	case bool:
		write = func() { w.Bool(n) }
	case int:
		write = func() { w.Int64(int64(n)) }
	case int8:
		write = func() { w.Int64(int64(n)) }
	case int16:
		write = func() { w.Int64(int64(n)) }
	case int32:
		write = func() { w.Int64(int64(n)) }
	case int64:
		write = func() { w.Int64(n) }
	case uint:
		write = func() { w.Uint64(uint64(n)) }
	case uint8:
		write = func() { w.Uint64(uint64(n)) }
	case uint16:
		write = func() { w.Uint64(uint64(n)) }
	case uint32:
		write = func() { w.Uint64(uint64(n)) }
	case uint64:
		write = func() { w.Uint64(n) }
	case float32:
		write = func() { w.Float64(float64(n)) }
	case float64:
		write = func() { w.Float64(n) }
	default:
		return false
	}
	if !first {
		w.RawByte(',')
	}
	w.String(name)
	w.RawByte(':')
	write()
	return true
}

func writeMetered(w *fastjson.Writer, m metrics.Metered) {
	w.RawString(`"count":`)
	w.Int64(m.Count())
	writeFloatField(w, attribute.M1Rate, m.Rate1())
	writeFloatField(w, attribute.M5Rate, m.Rate5())
	writeFloatField(w, attribute.M15Rate, m.Rate15())
	writeFloatField(w, attribute.MeanRate, m.RateMean())
}

func writeSnapshot(w *fastjson.Writer, s metrics.Snapshot) {
	writeFloatField(w, attribute.Max, float64(s.Max()))
	writeFloatField(w, attribute.Mean, s.Mean())
	writeFloatField(w, attribute.Min, float64(s.Min()))
	writeFloatField(w, attribute.StdDev, s.StdDev())
	writeFloatField(w, attribute.P50, s.Median())
	writeFloatField(w, attribute.P75, s.P75())
	writeFloatField(w, attribute.P95, s.P95())
	writeFloatField(w, attribute.P98, s.P98())
	writeFloatField(w, attribute.P99, s.P99())
	writeFloatField(w, attribute.P999, s.P999())
}

func writeFloatField(w *fastjson.Writer, a attribute.Attribute, v float64) {
	w.RawByte(',')
	w.String(a.Code())
	w.RawByte(':')
	w.Float64(v)
}
