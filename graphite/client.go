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
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"go.uber.org/zap"
)

const (
	defaultNetwork      = "tcp"
	defaultDialTimeout  = 5 * time.Second
	defaultWriteTimeout = 3 * time.Second
)

// Client is a carbon plaintext protocol sender over a single TCP or
// UDP connection. It is not safe for concurrent use; the reporter
// serializes access to it.
type Client struct {
	addr         string
	network      string
	dialTimeout  time.Duration
	writeTimeout time.Duration
	logger       *zap.SugaredLogger

	mu       sync.Mutex
	conn     net.Conn
	w        *bufio.Writer
	failures int
}

// NewClient returns a client for the carbon endpoint at the
// configured address. The connection is not opened until Connect.
func NewClient(opts ...ClientOption) (*Client, error) {
	c := Client{
		network:      defaultNetwork,
		dialTimeout:  defaultDialTimeout,
		writeTimeout: defaultWriteTimeout,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.addr == "" {
		return nil, errors.New("carbon address cannot be empty")
	}

	if c.network != "tcp" && c.network != "udp" {
		return nil, fmt.Errorf("unsupported network %q", c.network)
	}

	if c.logger == nil {
		return nil, errors.New("logger cannot be empty")
	}

	return &c, nil
}

// Connect opens the connection to the carbon endpoint. Calling
// Connect on an already connected client is an error.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return errors.New("already connected")
	}

	d := net.Dialer{Timeout: c.dialTimeout}
	conn, err := d.DialContext(ctx, c.network, c.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to carbon at %s: %w", c.addr, err)
	}

	c.logger.Debugf("Connected to carbon at %s over %s", c.addr, c.network)
	c.conn = conn
	c.w = bufio.NewWriter(conn)
	return nil
}

// Send writes one plaintext sample line. The name and value have any
// whitespace replaced with '-' so they cannot break the line format.
func (c *Client) Send(name, value string, timestamp int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return errors.New("not connected")
	}

	if c.writeTimeout > 0 {
		if err := c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}

	line := sanitize(name) + " " + sanitize(value) + " " + strconv.FormatInt(timestamp, 10) + "\n"
	if _, err := c.w.WriteString(line); err != nil {
		c.failures++
		return fmt.Errorf("failed to send sample: %w", err)
	}
	return nil
}

// Flush drains buffered sample lines to the connection.
func (c *Client) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.w == nil {
		return nil
	}
	if err := c.w.Flush(); err != nil {
		c.failures++
		return fmt.Errorf("failed to flush samples: %w", err)
	}
	return nil
}

// Close releases the connection. The client can be connected again
// for the next report cycle.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.w = nil
	return err
}

// FailureCount returns the number of failed writes since the client
// was created.
func (c *Client) FailureCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failures
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)
}
