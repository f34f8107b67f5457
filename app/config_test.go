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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func writeConfigFile(t *testing.T, pairs map[string]any) string {
	t.Helper()
	body := []byte(`{}`)
	var err error
	for key, value := range pairs {
		body, err = sjson.SetBytes(body, key, value)
		require.NoError(t, err)
	}
	path := filepath.Join(t.TempDir(), "graphite.json")
	require.NoError(t, os.WriteFile(path, body, 0o600))
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("GRAPHITE_ADDR", "carbon:2003")

	s, err := loadSettings(appConfig{})
	require.NoError(t, err)

	assert.Equal(t, "carbon:2003", s.address)
	assert.Equal(t, "tcp", s.network)
	assert.Equal(t, defaultReportInterval, s.interval)
	assert.Equal(t, time.Second, s.rateUnit)
	assert.Equal(t, time.Millisecond, s.durationUnit)
	assert.Empty(t, s.prefix)
}

func TestLoadSettingsMissingAddress(t *testing.T) {
	_, err := loadSettings(appConfig{})
	require.Error(t, err)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := writeConfigFile(t, map[string]any{
		"address":             "carbon:2103",
		"prefix":              "app",
		"interval":            "30s",
		"rate_unit":           "minutes",
		"duration_unit":       "microseconds",
		"disabled_attributes": []string{"p999", "stddev"},
		"metrics_addr":        ":8080",
	})

	s, err := loadSettings(appConfig{configFile: path})
	require.NoError(t, err)

	assert.Equal(t, "carbon:2103", s.address)
	assert.Equal(t, "app", s.prefix)
	assert.Equal(t, 30*time.Second, s.interval)
	assert.Equal(t, time.Minute, s.rateUnit)
	assert.Equal(t, time.Microsecond, s.durationUnit)
	assert.Equal(t, "p999,stddev", s.disabled)
	assert.Equal(t, ":8080", s.metricsAddr)
}

func TestLoadSettingsEnvWinsOverFile(t *testing.T) {
	path := writeConfigFile(t, map[string]any{
		"address":  "from-file:2003",
		"interval": "30s",
	})
	t.Setenv("GRAPHITE_ADDR", "from-env:2003")
	t.Setenv("GRAPHITE_REPORT_INTERVAL", "5s")

	s, err := loadSettings(appConfig{configFile: path})
	require.NoError(t, err)

	assert.Equal(t, "from-env:2003", s.address)
	assert.Equal(t, 5*time.Second, s.interval)
}

func TestLoadSettingsInvalid(t *testing.T) {
	testCases := map[string]struct {
		file map[string]any
		env  map[string]string
	}{
		"bad interval env": {
			env: map[string]string{"GRAPHITE_REPORT_INTERVAL": "soon"},
		},
		"bad rate unit": {
			env: map[string]string{"GRAPHITE_RATE_UNIT": "fortnights"},
		},
		"bad file interval": {
			file: map[string]any{"interval": "whenever"},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("GRAPHITE_ADDR", "carbon:2003")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			c := appConfig{}
			if tc.file != nil {
				c.configFile = writeConfigFile(t, tc.file)
			}
			_, err := loadSettings(c)
			require.Error(t, err)
		})
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphite.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := loadSettings(appConfig{configFile: path})
	require.Error(t, err)
}

func TestParseUnit(t *testing.T) {
	u, err := parseUnit("milliseconds")
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, u)

	_, err = parseUnit("parsecs")
	require.Error(t, err)
}
