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
package model

import (
	"github.com/pkg/errors"
)

// ErrNoState marks a state timeline with no entries; HYPR never returns
// one on success, so an empty timeline is a server contract violation.
var ErrNoState = errors.New("state response contains no state entries")

// State is a single entry of the HYPR-side status timeline.
type State struct {
	Value   string `json:"value"`
	Message string `json:"message"`
}

// StateResponse is the status timeline of one push authentication request.
type StateResponse struct {
	RequestID string  `json:"requestId"`
	NamedUser string  `json:"namedUser"`
	State     []State `json:"state"`
}

// CurrentState returns the value of the last timeline entry.
func (s *StateResponse) CurrentState() (string, error) {
	if len(s.State) == 0 {
		return "", ErrNoState
	}
	return s.State[len(s.State)-1].Value, nil
}
