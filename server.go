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
	"net/http"
	"time"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	api_http "github.com/wso2-extensions/identity-outbound-auth-hypr/api/http"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/authenticator"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/client"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/client/hypr"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/config"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store/memstore"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store/mongo"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store/redis"
)

func SetupStore(c config.Reader) (store.SessionStore, error) {
	expiry := time.Duration(c.GetInt(SettingSessionExpiry)) * time.Second

	driver := c.GetString(SettingStoreDriver)
	switch driver {
	case StoreDriverMongo:
		return mongo.NewDataStoreMongo(mongo.DataStoreMongoConfig{
			ConnectionString: c.GetString(SettingDb),
			SSL:              c.GetBool(SettingDbSSL),
			SSLSkipVerify:    c.GetBool(SettingDbSSLSkipVerify),
			Username:         c.GetString(SettingDbUsername),
			Password:         c.GetString(SettingDbPassword),
			SessionExpiry:    expiry,
		})
	case StoreDriverRedis:
		return redis.NewDataStoreRedis(redis.DataStoreRedisConfig{
			Addr:          c.GetString(SettingRedisAddr),
			KeyPrefix:     c.GetString(SettingRedisKeyPrefix),
			SessionExpiry: expiry,
		})
	case StoreDriverMemory:
		return memstore.NewDataStoreMem(), nil
	}

	return nil, fmt.Errorf("incorrect store driver: %s", driver)
}

func SetupApp(c config.Reader) (authenticator.App, error) {
	db, err := SetupStore(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up session store")
	}

	timeout := time.Duration(c.GetInt(SettingHyprTimeout)) * time.Second

	hyprConf := hypr.Config{
		BaseURL:          c.GetString(SettingHyprBaseURL),
		AppID:            c.GetString(SettingHyprAppID),
		APIToken:         c.GetString(SettingHyprAPIToken),
		Timeout:          timeout,
		StrictBadRequest: c.GetBool(SettingHyprStrictBadRequest),
	}

	hyprClient := hypr.NewClient(hyprConf,
		client.NewHttpClient(client.Config{
			RequestTimeout: timeout,
		}))

	return authenticator.New(db, hyprClient, hyprConf), nil
}

func RunServer(c config.Reader) error {

	l := log.New(log.Ctx{})

	api := rest.NewApi()

	if err := SetupMiddleware(api, c.GetString(SettingMiddleware)); err != nil {
		return errors.Wrap(err, "failed to setup middleware")
	}

	app, err := SetupApp(c)
	if err != nil {
		return errors.Wrap(err, "failed to create app")
	}

	apphandlers := api_http.NewHyprAuthApiHandlers(app)

	apiApp, err := apphandlers.GetApp()
	if err != nil {
		return errors.Wrap(err, "failed to create API app")
	}

	api.SetApp(apiApp)

	addr := c.GetString(SettingListen)
	l.Printf("listening on %s", addr)

	return http.ListenAndServe(addr, api.MakeHandler())
}
