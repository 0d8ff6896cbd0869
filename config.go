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
package main

import (
	"fmt"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/config"
)

const (
	SettingListen        = "listen"
	SettingListenDefault = ":8080"

	SettingMiddleware        = "middleware"
	SettingMiddlewareDefault = EnvProd

	// session store driver, one of: memory, mongo, redis
	SettingStoreDriver        = "store_driver"
	SettingStoreDriverDefault = StoreDriverMemory

	SettingDb        = "mongo"
	SettingDbDefault = "mongo-sessions:27017"

	SettingDbSSL        = "mongo_ssl"
	SettingDbSSLDefault = false

	SettingDbSSLSkipVerify        = "mongo_ssl_skipverify"
	SettingDbSSLSkipVerifyDefault = false

	SettingDbUsername = "mongo_username"
	SettingDbPassword = "mongo_password"

	SettingRedisAddr        = "redis_addr"
	SettingRedisAddrDefault = "localhost:6379"

	SettingRedisKeyPrefix        = "redis_key_prefix"
	SettingRedisKeyPrefixDefault = "hyprauth:sessions:"

	// lifetime of a login attempt, seconds
	SettingSessionExpiry        = "session_expiry"
	SettingSessionExpiryDefault = 3600

	SettingHyprBaseURL  = "hypr_base_url"
	SettingHyprAppID    = "hypr_app_id"
	SettingHyprAPIToken = "hypr_api_token"

	// per-call HYPR API timeout, seconds
	SettingHyprTimeout        = "hypr_timeout"
	SettingHyprTimeoutDefault = 10

	SettingHyprStrictBadRequest        = "hypr_strict_bad_request"
	SettingHyprStrictBadRequestDefault = false
)

const (
	StoreDriverMemory = "memory"
	StoreDriverMongo  = "mongo"
	StoreDriverRedis  = "redis"
)

type ConfigDefault struct {
	key   string
	value interface{}
}

var (
	configDefaults = []ConfigDefault{
		{SettingListen, SettingListenDefault},
		{SettingMiddleware, SettingMiddlewareDefault},
		{SettingStoreDriver, SettingStoreDriverDefault},
		{SettingDb, SettingDbDefault},
		{SettingDbSSL, SettingDbSSLDefault},
		{SettingDbSSLSkipVerify, SettingDbSSLSkipVerifyDefault},
		{SettingRedisAddr, SettingRedisAddrDefault},
		{SettingRedisKeyPrefix, SettingRedisKeyPrefixDefault},
		{SettingSessionExpiry, SettingSessionExpiryDefault},
		{SettingHyprTimeout, SettingHyprTimeoutDefault},
		{SettingHyprStrictBadRequest, SettingHyprStrictBadRequestDefault},
	}

	configValidators = []config.Validator{
		validateMiddleware,
		validateStoreDriver,
	}
)

func validateMiddleware(c config.Reader) error {
	mwtype := c.GetString(SettingMiddleware)
	if mwtype != EnvProd && mwtype != EnvDev {
		return fmt.Errorf("incorrect middleware type: %s", mwtype)
	}
	return nil
}

func validateStoreDriver(c config.Reader) error {
	driver := c.GetString(SettingStoreDriver)
	switch driver {
	case StoreDriverMemory, StoreDriverMongo, StoreDriverRedis:
		return nil
	}
	return fmt.Errorf("incorrect store driver: %s", driver)
}
