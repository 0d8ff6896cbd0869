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
package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

func TestMemGetSessionNotFound(t *testing.T) {
	db := NewDataStoreMem()

	_, err := db.GetSession(context.Background(), "missing")
	assert.Equal(t, store.ErrSessionNotFound, err)
}

func TestMemPutGetSession(t *testing.T) {
	db := NewDataStoreMem()
	ctx := context.Background()

	sess := &model.SessionState{
		SessionKey:    "sess-1",
		Username:      "alice",
		AuthStatus:    model.StatusPending,
		AuthRequestID: "REQ1",
	}
	assert.NoError(t, db.PutSession(ctx, sess))

	out, err := db.GetSession(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, model.StatusPending, out.AuthStatus)

	// returned state is a copy, callers can't mutate the store
	out.AuthStatus = model.StatusFailed
	again, err := db.GetSession(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, again.AuthStatus)
}

func TestMemConcurrentPuts(t *testing.T) {
	db := NewDataStoreMem()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess := &model.SessionState{
				SessionKey: fmt.Sprintf("sess-%d", i%4),
				AuthStatus: model.StatusPending,
			}
			assert.NoError(t, db.PutSession(ctx, sess))
			_, _ = db.GetSession(ctx, sess.SessionKey)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		out, err := db.GetSession(ctx, fmt.Sprintf("sess-%d", i))
		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, out.AuthStatus)
	}
}
