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

package attribute

import "strings"

// Filter is an immutable set of disabled attributes. The zero value
// disables nothing. A Filter must not be mutated after it is handed to
// a reporter; it is read concurrently across report cycles.
type Filter struct {
	disabled map[Attribute]struct{}
}

// NewFilter builds a filter disabling the given attributes.
func NewFilter(disabled ...Attribute) Filter {
	if len(disabled) == 0 {
		return Filter{}
	}
	set := make(map[Attribute]struct{}, len(disabled))
	for _, a := range disabled {
		set[a] = struct{}{}
	}
	return Filter{disabled: set}
}

// ParseFilter builds a filter from a comma-separated list of wire
// codes, e.g. "p999,stddev,m15_rate". Empty entries are ignored.
func ParseFilter(s string) (Filter, error) {
	var disabled []Attribute
	for _, code := range strings.Split(s, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		a, err := Parse(code)
		if err != nil {
			return Filter{}, err
		}
		disabled = append(disabled, a)
	}
	return NewFilter(disabled...), nil
}

// Disabled reports whether emission of the attribute is suppressed.
func (f Filter) Disabled(a Attribute) bool {
	_, ok := f.disabled[a]
	return ok
}
