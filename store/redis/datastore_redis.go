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
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

const (
	defaultKeyPrefix     = "hyprauth:sessions:"
	defaultSessionExpiry = time.Duration(1) * time.Hour
)

type DataStoreRedisConfig struct {
	// redis address like "localhost:6379"
	Addr string

	// prefix for all session keys
	KeyPrefix string

	// per-session TTL, refreshed on every put
	SessionExpiry time.Duration
}

type DataStoreRedis struct {
	client    *redis.Client
	keyPrefix string
	expiry    time.Duration
}

func NewDataStoreRedis(config DataStoreRedisConfig) (*DataStoreRedis, error) {
	cl := redis.NewClient(&redis.Options{Addr: config.Addr})
	if err := cl.Ping(context.Background()).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to open redis connection")
	}

	return NewDataStoreRedisWithClient(cl, config), nil
}

func NewDataStoreRedisWithClient(cl *redis.Client, config DataStoreRedisConfig) *DataStoreRedis {
	db := &DataStoreRedis{
		client:    cl,
		keyPrefix: config.KeyPrefix,
		expiry:    config.SessionExpiry,
	}
	if db.keyPrefix == "" {
		db.keyPrefix = defaultKeyPrefix
	}
	if db.expiry == 0 {
		db.expiry = defaultSessionExpiry
	}
	return db
}

func (db *DataStoreRedis) Close() error {
	return db.client.Close()
}

func (db *DataStoreRedis) sessionKey(sessionKey string) string {
	return db.keyPrefix + sessionKey
}

func (db *DataStoreRedis) GetSession(ctx context.Context, sessionKey string) (*model.SessionState, error) {
	data, err := db.client.Get(ctx, db.sessionKey(sessionKey)).Bytes()
	if err == redis.Nil {
		return nil, store.ErrSessionNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to fetch session")
	}

	res := model.SessionState{}
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &res, nil
}

func (db *DataStoreRedis) PutSession(ctx context.Context, sess *model.SessionState) error {
	up := *sess
	up.UpdatedTs = time.Now().UTC()

	data, err := json.Marshal(&up)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	err = db.client.Set(ctx, db.sessionKey(up.SessionKey), data, db.expiry).Err()
	if err != nil {
		return errors.Wrap(err, "failed to store session")
	}

	return nil
}
