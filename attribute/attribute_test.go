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

package attribute_test

import (
	"testing"

	"github.com/jbossorg/metrics-graphite/attribute"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCodes(t *testing.T) {
	seen := make(map[string]struct{})
	for _, a := range attribute.All() {
		code := a.Code()
		require.NotEmpty(t, code)
		for _, r := range code {
			isLower := r >= 'a' && r <= 'z'
			isDigit := r >= '0' && r <= '9'
			assert.True(t, isLower || isDigit || r == '_', "code %q contains %q", code, r)
		}
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %q", code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, 15)
}

func TestParse(t *testing.T) {
	for _, a := range attribute.All() {
		parsed, err := attribute.Parse(a.Code())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := attribute.Parse("p42")
	require.Error(t, err)
}

func TestFilter(t *testing.T) {
	testCases := map[string]struct {
		filter   attribute.Filter
		disabled []attribute.Attribute
		enabled  []attribute.Attribute
	}{
		"zero value": {
			enabled: attribute.All(),
		},
		"empty": {
			filter:  attribute.NewFilter(),
			enabled: attribute.All(),
		},
		"subset": {
			filter:   attribute.NewFilter(attribute.StdDev, attribute.P999),
			disabled: []attribute.Attribute{attribute.StdDev, attribute.P999},
			enabled:  []attribute.Attribute{attribute.Count, attribute.Max, attribute.M1Rate},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			for _, a := range tc.disabled {
				assert.True(t, tc.filter.Disabled(a), "%s should be disabled", a)
			}
			for _, a := range tc.enabled {
				assert.False(t, tc.filter.Disabled(a), "%s should be enabled", a)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	testCases := map[string]struct {
		input       string
		expectedErr bool
		disabled    []attribute.Attribute
	}{
		"empty": {
			input: "",
		},
		"single": {
			input:    "stddev",
			disabled: []attribute.Attribute{attribute.StdDev},
		},
		"list with spaces": {
			input:    "p999, m15_rate ,stddev",
			disabled: []attribute.Attribute{attribute.P999, attribute.M15Rate, attribute.StdDev},
		},
		"unknown code": {
			input:       "p999,bogus",
			expectedErr: true,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			f, err := attribute.ParseFilter(tc.input)
			if tc.expectedErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, a := range tc.disabled {
				assert.True(t, f.Disabled(a))
			}
			assert.False(t, f.Disabled(attribute.Count))
		})
	}
}
