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
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

type appConfig struct {
	logLevel   string
	configFile string
}

type ConfigOption func(*appConfig)

// WithLogLevel sets the log level, overriding GRAPHITE_LOG_LEVEL.
func WithLogLevel(level string) ConfigOption {
	return func(c *appConfig) {
		c.logLevel = level
	}
}

// WithConfigFile points at a JSON settings file, overriding
// GRAPHITE_METRICS_CONFIG_FILE.
func WithConfigFile(path string) ConfigOption {
	return func(c *appConfig) {
		c.configFile = path
	}
}

// settings are the resolved reporting parameters. Environment
// variables win over the JSON config file, the file over defaults.
type settings struct {
	address      string
	network      string
	prefix       string
	interval     time.Duration
	rateUnit     time.Duration
	durationUnit time.Duration
	disabled     string
	metricsAddr  string
	logLevel     string
}

const defaultReportInterval = 60 * time.Second

func loadSettings(c appConfig) (settings, error) {
	s := settings{
		network:      "tcp",
		interval:     defaultReportInterval,
		rateUnit:     time.Second,
		durationUnit: time.Millisecond,
		logLevel:     c.logLevel,
	}

	path := c.configFile
	if path == "" {
		path = os.Getenv("GRAPHITE_METRICS_CONFIG_FILE")
	}
	if path != "" {
		if err := s.applyFile(path); err != nil {
			return settings{}, err
		}
	}

	if err := s.applyEnv(); err != nil {
		return settings{}, err
	}

	if s.address == "" {
		return settings{}, fmt.Errorf("carbon address is not configured, set GRAPHITE_ADDR")
	}
	return s, nil
}

// applyFile overlays values from a JSON settings file, e.g.
//
//	{"address": "carbon:2003", "prefix": "app", "interval": "30s",
//	 "duration_unit": "milliseconds", "disabled_attributes": ["p999"]}
func (s *settings) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config file %s is not valid JSON", path)
	}

	if v := gjson.GetBytes(data, "address"); v.Exists() {
		s.address = v.String()
	}
	if v := gjson.GetBytes(data, "network"); v.Exists() {
		s.network = v.String()
	}
	if v := gjson.GetBytes(data, "prefix"); v.Exists() {
		s.prefix = v.String()
	}
	if v := gjson.GetBytes(data, "interval"); v.Exists() {
		d, err := time.ParseDuration(v.String())
		if err != nil {
			return fmt.Errorf("failed to parse interval in %s: %w", path, err)
		}
		s.interval = d
	}
	if v := gjson.GetBytes(data, "rate_unit"); v.Exists() {
		u, err := parseUnit(v.String())
		if err != nil {
			return err
		}
		s.rateUnit = u
	}
	if v := gjson.GetBytes(data, "duration_unit"); v.Exists() {
		u, err := parseUnit(v.String())
		if err != nil {
			return err
		}
		s.durationUnit = u
	}
	if v := gjson.GetBytes(data, "disabled_attributes"); v.Exists() {
		var codes string
		for i, a := range v.Array() {
			if i > 0 {
				codes += ","
			}
			codes += a.String()
		}
		s.disabled = codes
	}
	if v := gjson.GetBytes(data, "metrics_addr"); v.Exists() {
		s.metricsAddr = v.String()
	}
	if v := gjson.GetBytes(data, "log_level"); v.Exists() && s.logLevel == "" {
		s.logLevel = v.String()
	}
	return nil
}

func (s *settings) applyEnv() error {
	if v := os.Getenv("GRAPHITE_ADDR"); v != "" {
		s.address = v
	}
	if v := os.Getenv("GRAPHITE_NETWORK"); v != "" {
		s.network = v
	}
	if v := os.Getenv("GRAPHITE_PREFIX"); v != "" {
		s.prefix = v
	}
	if v := os.Getenv("GRAPHITE_REPORT_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("failed to parse GRAPHITE_REPORT_INTERVAL: %w", err)
		}
		s.interval = d
	}
	if v := os.Getenv("GRAPHITE_RATE_UNIT"); v != "" {
		u, err := parseUnit(v)
		if err != nil {
			return err
		}
		s.rateUnit = u
	}
	if v := os.Getenv("GRAPHITE_DURATION_UNIT"); v != "" {
		u, err := parseUnit(v)
		if err != nil {
			return err
		}
		s.durationUnit = u
	}
	if v := os.Getenv("GRAPHITE_DISABLED_ATTRIBUTES"); v != "" {
		s.disabled = v
	}
	if v := os.Getenv("GRAPHITE_METRICS_ADDR"); v != "" {
		s.metricsAddr = v
	}
	return nil
}

// parseUnit resolves a conversion unit name, e.g. "milliseconds".
func parseUnit(name string) (time.Duration, error) {
	switch name {
	case "nanoseconds":
		return time.Nanosecond, nil
	case "microseconds":
		return time.Microsecond, nil
	case "milliseconds":
		return time.Millisecond, nil
	case "seconds":
		return time.Second, nil
	case "minutes":
		return time.Minute, nil
	case "hours":
		return time.Hour, nil
	}
	return 0, fmt.Errorf("unknown conversion unit %q", name)
}
