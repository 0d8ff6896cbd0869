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
package hypr

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/apperrors"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/client"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
)

const (
	// user device info path, followed by {appId}/{username}/devices
	UserDeviceInfoPath = "/rp/api/oob/client/authentication/"
	// push initiation path
	AuthRequestPath = "/rp/api/oob/client/authentication/requests"
	// status poll path, followed by {requestId}
	AuthStatusCheckPath = "/rp/api/oob/client/authentication/requests/"

	// default per-call timeout
	defaultHyprReqTimeout = time.Duration(10) * time.Second
)

// Config holds the relying party coordinates of one HYPR deployment.
type Config struct {
	// root HYPR server address
	BaseURL string
	// relying party app ID from the HYPR control center
	AppID string
	// relying party API token, confidential
	APIToken string
	// per-call timeout
	Timeout time.Duration

	// StrictBadRequest disables the HYPR convention of reporting an
	// unknown username as HTTP 400 on push initiation; when set, 400
	// maps to a generic push failure instead of an invalid user.
	StrictBadRequest bool
}

// Validate checks the configured coordinates before any HYPR call is
// made; a blank value aborts the attempt.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return apperrors.New(apperrors.ErrBaseURLInvalid)
	}
	u, err := url.ParseRequestURI(c.BaseURL)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrBaseURLInvalid, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return apperrors.New(apperrors.ErrBaseURLInvalid)
	}
	if strings.TrimSpace(c.AppID) == "" {
		return apperrors.New(apperrors.ErrAppIDInvalid)
	}
	if strings.TrimSpace(c.APIToken) == "" {
		return apperrors.New(apperrors.ErrAPITokenInvalid)
	}
	return nil
}

// AuthClient drives the three HYPR relying party operations.
type AuthClient interface {
	ListRegisteredDevices(ctx context.Context, username string) ([]model.RegisteredDevice, error)
	InitiateAuthentication(ctx context.Context, username, machineID string) (*model.DeviceAuthenticationResponse, error)
	GetAuthenticationStatus(ctx context.Context, requestID string) (*model.StateResponse, error)
}

type Client struct {
	client client.HttpRunner
	conf   Config
}

func NewClient(conf Config, client client.HttpRunner) *Client {
	if conf.Timeout == 0 {
		conf.Timeout = defaultHyprReqTimeout
	}
	return &Client{
		client: client,
		conf:   conf,
	}
}

// ListRegisteredDevices returns the devices registered for the user; an
// empty list is meaningful and not an error.
func (c *Client) ListRegisteredDevices(ctx context.Context, username string) ([]model.RegisteredDevice, error) {
	l := log.FromContext(ctx)
	l.Debugf("retrieving registered devices for user %s", username)

	url := c.buildDeviceInfoURL(username)

	code, body, err := c.doGet(ctx, url)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRetrievingDevicesFailed, err)
	}

	switch {
	case code == http.StatusOK:
		var devices []model.RegisteredDevice
		if err := json.Unmarshal(body, &devices); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRetrievingDevicesFailed,
				errors.Wrap(err, "failed to parse device list"))
		}
		return devices, nil
	case code == http.StatusUnauthorized:
		return nil, apperrors.New(apperrors.ErrAPITokenInvalid)
	default:
		return nil, apperrors.Wrap(apperrors.ErrRetrievingDevicesFailed,
			errors.Errorf("device list request failed with status %v", code))
	}
}

// InitiateAuthentication sends a push notification to the user's devices
// and returns the HYPR response carrying the request ID to poll on.
func (c *Client) InitiateAuthentication(ctx context.Context, username, machineID string) (*model.DeviceAuthenticationResponse, error) {
	l := log.FromContext(ctx)
	l.Debugf("initiating push authentication for user %s", username)

	authReq, err := model.NewDeviceAuthenticationRequest(username, machineID, c.conf.AppID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrHashAlgorithmUnavailable, err)
	}

	reqJson, err := json.Marshal(authReq)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSendPushFailed,
			errors.Wrap(err, "failed to prepare authentication request"))
	}

	code, body, err := c.doPost(ctx, c.buildURL(AuthRequestPath), reqJson)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSendPushFailed, err)
	}

	switch {
	case code == http.StatusOK:
		var authRsp model.DeviceAuthenticationResponse
		if err := json.Unmarshal(body, &authRsp); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrSendPushFailed,
				errors.Wrap(err, "failed to parse authentication response"))
		}
		return &authRsp, nil
	case code == http.StatusUnauthorized:
		return nil, apperrors.New(apperrors.ErrAPITokenInvalid)
	case code == http.StatusBadRequest && !c.conf.StrictBadRequest:
		return nil, apperrors.New(apperrors.ErrInvalidUser)
	default:
		return nil, apperrors.Wrap(apperrors.ErrSendPushFailed,
			errors.Errorf("push initiation request failed with status %v", code))
	}
}

// GetAuthenticationStatus polls the status timeline of an in-flight push
// request.
func (c *Client) GetAuthenticationStatus(ctx context.Context, requestID string) (*model.StateResponse, error) {
	l := log.FromContext(ctx)
	l.Debugf("polling authentication status for request %s", requestID)

	url := c.buildURL(AuthStatusCheckPath + url.PathEscape(requestID))

	code, body, err := c.doGet(ctx, url)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRetrievingStatusFailed, err)
	}

	switch {
	case code == http.StatusOK:
		var stateRsp model.StateResponse
		if err := json.Unmarshal(body, &stateRsp); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrRetrievingStatusFailed,
				errors.Wrap(err, "failed to parse state response"))
		}
		return &stateRsp, nil
	case code == http.StatusBadRequest:
		return nil, apperrors.New(apperrors.ErrInvalidAuthenticationProperties)
	case code == http.StatusUnauthorized:
		return nil, apperrors.New(apperrors.ErrAPITokenInvalid)
	default:
		return nil, apperrors.Wrap(apperrors.ErrRetrievingStatusFailed,
			errors.Errorf("status poll request failed with status %v", code))
	}
}

func (c *Client) buildURL(path string) string {
	return strings.TrimSuffix(c.conf.BaseURL, "/") + path
}

func (c *Client) buildDeviceInfoURL(username string) string {
	return c.buildURL(UserDeviceInfoPath +
		url.PathEscape(c.conf.AppID) + "/" + url.PathEscape(username) + "/devices")
}

func (c *Client) doGet(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to prepare request")
	}
	req.Header.Set("Authorization", "Bearer "+c.conf.APIToken)

	return c.do(ctx, req)
}

func (c *Client) doPost(ctx context.Context, url string, body []byte) (int, []byte, error) {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to prepare request")
	}
	req.Header.Set("Authorization", "Bearer "+c.conf.APIToken)
	req.Header.Set("Content-Type", "application/json")

	return c.do(ctx, req)
}

// do runs the request with a bounded timeout and buffers the response
// body fully so the connection is released before returning.
func (c *Client) do(ctx context.Context, req *http.Request) (int, []byte, error) {
	if c.client == nil {
		return 0, nil, apperrors.New(apperrors.ErrClientTransport)
	}

	ctx, cancel := context.WithTimeout(ctx, c.conf.Timeout)
	defer cancel()

	rsp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return 0, nil, apperrors.Wrap(apperrors.ErrClientTransport, err)
	}
	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return 0, nil, apperrors.Wrap(apperrors.ErrClientTransport,
			errors.Wrap(err, "failed to read response body"))
	}

	return rsp.StatusCode, body, nil
}
