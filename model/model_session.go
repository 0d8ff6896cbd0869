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
	"time"
)

// SessionState correlates one login attempt across HTTP round trips.
//
// AuthRequestID is present whenever AuthStatus holds any value; once
// AuthStatus is terminal no further HYPR calls are made for the session.
type SessionState struct {
	SessionKey string `json:"sessionKey" bson:"session_key"`

	// resolved subject; set once when the push is initiated
	Username string `json:"username" bson:"username,omitempty"`

	AuthStatus    AuthenticationStatus `json:"authStatus" bson:"auth_status,omitempty"`
	AuthRequestID string               `json:"authRequestId" bson:"auth_request_id,omitempty"`

	// last mutation time, drives store-side expiry
	UpdatedTs time.Time `json:"-" bson:"updated_ts"`
}
