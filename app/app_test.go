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

package app_test

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/jbossorg/metrics-graphite/app"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := map[string]struct {
		env         map[string]string
		expectedErr bool
	}{
		"no address": {
			expectedErr: true,
		},
		"bad log level": {
			env: map[string]string{
				"GRAPHITE_ADDR":      "carbon:2003",
				"GRAPHITE_LOG_LEVEL": "chatty",
			},
			expectedErr: true,
		},
		"bad disabled attributes": {
			env: map[string]string{
				"GRAPHITE_ADDR":                "carbon:2003",
				"GRAPHITE_DISABLED_ATTRIBUTES": "p1000",
			},
			expectedErr: true,
		},
		"valid": {
			env: map[string]string{
				"GRAPHITE_ADDR":   "carbon:2003",
				"GRAPHITE_PREFIX": "app",
			},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			// Isolate from ambient configuration.
			t.Setenv("GRAPHITE_ADDR", "")
			t.Setenv("GRAPHITE_METRICS_CONFIG_FILE", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			application, err := app.New(app.WithLogLevel(tc.env["GRAPHITE_LOG_LEVEL"]))
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, application.Registry(app.ScopeBase))
			assert.NotNil(t, application.Registry(app.ScopeApplication))
			assert.Nil(t, application.Registry("bogus"))
		})
	}
}

// carbonStub accepts connections and collects plaintext lines.
func carbonStub(t *testing.T) (string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	lines := make(chan string, 1024)
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				scanner := bufio.NewScanner(conn)
				for scanner.Scan() {
					lines <- scanner.Text()
				}
			}(conn)
		}
	}()
	return ln.Addr().String(), lines
}

func TestRunReportsToCarbon(t *testing.T) {
	addr, lines := carbonStub(t)

	t.Setenv("GRAPHITE_ADDR", addr)
	t.Setenv("GRAPHITE_PREFIX", "testapp")
	t.Setenv("GRAPHITE_REPORT_INTERVAL", "50ms")
	t.Setenv("GRAPHITE_METRICS_CONFIG_FILE", "")
	t.Setenv("GRAPHITE_METRICS_ADDR", "")
	t.Setenv("GRAPHITE_LOG_LEVEL", "off")

	application, err := app.New(app.WithLogLevel("off"))
	require.NoError(t, err)

	counterName := "requests-" + uuid.New().String()
	application.Registry(app.ScopeApplication).Counter(counterName).Inc(42)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	expected := "testapp.application." + counterName + ".count 42 "
	deadline := time.After(5 * time.Second)
	var found bool
	for !found {
		select {
		case line := <-lines:
			found = strings.HasPrefix(line, expected)
		case <-deadline:
			t.Fatal("timed out waiting for counter sample")
		}
	}

	cancel()
	require.NoError(t, <-done)
}
