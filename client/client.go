/*
 * Copyright (c) 2023, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */
package client

import (
	"net"
	"net/http"
	"time"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultRequestTimeout = 10 * time.Second
	defaultMaxConnections = 20
)

// HttpRunner is the narrow http client contract consumed by API clients.
type HttpRunner interface {
	Do(r *http.Request) (*http.Response, error)
}

// Config bounds the outbound transport; an unbounded client blocking on a
// dead endpoint is a defect, so zero values fall back to defaults.
type Config struct {
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	MaxConnections int
}

// NewHttpClient returns a pooled http client with bounded connect and
// request timeouts. Constructed once at startup and shared by reference;
// there is no ambient singleton.
func NewHttpClient(c Config) *http.Client {
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.MaxConnections == 0 {
		c.MaxConnections = defaultMaxConnections
	}

	return &http.Client{
		Timeout: c.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: c.ConnectTimeout,
			}).DialContext,
			MaxIdleConns:        c.MaxConnections,
			MaxIdleConnsPerHost: c.MaxConnections,
		},
	}
}
