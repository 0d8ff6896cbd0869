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

// Package memstore provides an in-memory SessionStore for development
// and tests; sessions live until process exit.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

type DataStoreMem struct {
	mu       sync.RWMutex
	sessions map[string]model.SessionState
}

func NewDataStoreMem() *DataStoreMem {
	return &DataStoreMem{
		sessions: make(map[string]model.SessionState),
	}
}

func (db *DataStoreMem) GetSession(ctx context.Context, sessionKey string) (*model.SessionState, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	sess, ok := db.sessions[sessionKey]
	if !ok {
		return nil, store.ErrSessionNotFound
	}

	out := sess
	return &out, nil
}

func (db *DataStoreMem) PutSession(ctx context.Context, sess *model.SessionState) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	up := *sess
	up.UpdatedTs = time.Now().UTC()
	db.sessions[up.SessionKey] = up

	return nil
}
