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

package app

import (
	"runtime"
	"time"

	"github.com/jbossorg/metrics-graphite/metrics"

	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

// registerBaseMetrics fills the base scope with runtime and host
// gauges. Gauges that cannot produce a reading return nil and are
// skipped by the reporter, so a probe failure costs one sample, not
// the cycle.
func registerBaseMetrics(r *metrics.Registry) {
	start := time.Now()

	r.RegisterGauge("uptime.seconds", metrics.GaugeFunc(func() any {
		return int64(time.Since(start).Seconds())
	}))

	r.RegisterGauge("goroutine.count", metrics.GaugeFunc(func() any {
		return runtime.NumGoroutine()
	}))

	r.RegisterGauge("memory.heap.used_bytes", metrics.GaugeFunc(func() any {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return ms.HeapAlloc
	}))

	r.RegisterGauge("memory.host.used_percent", metrics.GaugeFunc(func() any {
		vm, err := mem.VirtualMemory()
		if err != nil {
			return nil
		}
		return vm.UsedPercent
	}))

	r.RegisterGauge("cpu.load.1m", metrics.GaugeFunc(func() any {
		avg, err := load.Avg()
		if err != nil {
			return nil
		}
		return avg.Load1
	}))
}
