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
package store

import (
	"context"
	"errors"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
)

var (
	// session not found
	ErrSessionNotFound = errors.New("session not found")
)

// SessionStore is the key-addressed store of per-login-attempt state.
// Backends synchronize individual get/put calls; concurrent polls on one
// session converge last-write-wins, mirroring the host session cache
// this store stands in for.
type SessionStore interface {
	// find the session stored under `sessionKey`; if no session was
	// stored, error is set to ErrSessionNotFound
	GetSession(ctx context.Context, sessionKey string) (*model.SessionState, error)

	// insert or replace the session stored under sess.SessionKey
	PutSession(ctx context.Context, sess *model.SessionState) error
}
