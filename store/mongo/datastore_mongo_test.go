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
package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/mgo.v2"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

// getDb dials the test mongo instance; tests are skipped unless
// TEST_MONGO_URL points at one.
func getDb(t *testing.T) *DataStoreMongo {
	if testing.Short() {
		t.Skip("skipping mongo test in short mode")
	}

	url := os.Getenv("TEST_MONGO_URL")
	if url == "" {
		t.Skip("TEST_MONGO_URL not set")
	}

	s, err := mgo.Dial(url)
	assert.NoError(t, err)

	_ = s.DB(DbName).C(DbSessionsColl).DropCollection()

	db := NewDataStoreMongoWithSession(s)
	assert.NoError(t, db.EnsureIndexes())
	return db
}

func TestMongoGetSessionNotFound(t *testing.T) {
	db := getDb(t)
	defer db.session.Close()

	_, err := db.GetSession(context.Background(), "missing")
	assert.Equal(t, store.ErrSessionNotFound, err)
}

func TestMongoPutGetSession(t *testing.T) {
	db := getDb(t)
	defer db.session.Close()

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
	assert.Equal(t, sess.Username, out.Username)
	assert.Equal(t, sess.AuthStatus, out.AuthStatus)
	assert.Equal(t, sess.AuthRequestID, out.AuthRequestID)
	assert.False(t, out.UpdatedTs.IsZero())

	// replace on second put
	sess.AuthStatus = model.StatusCompleted
	assert.NoError(t, db.PutSession(ctx, sess))

	out, err = db.GetSession(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, out.AuthStatus)
}
