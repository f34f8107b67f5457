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

// Package graphite reports metric registries to a carbon plaintext
// endpoint, one "key value timestamp" line per sample.
package graphite

import "context"

// Sender is the line-protocol transport a Reporter writes samples
// through. A sender is stateful: Connect opens the connection for one
// report cycle, Send writes one sample line, Flush drains buffered
// lines and Close releases the connection. Implementations keep a
// monotonically non-decreasing count of failed writes, surfaced via
// FailureCount.
type Sender interface {
	Connect(ctx context.Context) error
	Send(name, value string, timestamp int64) error
	Flush() error
	Close() error
	FailureCount() int
}
