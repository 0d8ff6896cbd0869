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
package authenticator

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/apperrors"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/client/hypr"
	hmocks "github.com/wso2-extensions/identity-outbound-auth-hypr/client/hypr/mocks"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
	smocks "github.com/wso2-extensions/identity-outbound-auth-hypr/store/mocks"
)

func testHyprConfig() hypr.Config {
	return hypr.Config{
		BaseURL:  "https://hypr.example.com",
		AppID:    "testApp",
		APIToken: "testApiToken",
	}
}

func TestCanHandle(t *testing.T) {
	a := New(nil, nil, testHyprConfig())

	assert.True(t, a.CanHandle(&Request{SessionKey: "sess-1"}))
	assert.False(t, a.CanHandle(&Request{}))
	assert.Equal(t, "sess-1", a.ContextIdentifier(&Request{SessionKey: "sess-1"}))
}

func TestStartSession(t *testing.T) {
	db := smocks.NewSessionStore(t)

	var stored *model.SessionState
	db.On("PutSession", mock.Anything, mock.AnythingOfType("*model.SessionState")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.SessionState)
		}).
		Return(nil)

	a := New(db, nil, testHyprConfig())

	sess, err := a.StartSession(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, sess.SessionKey)
	assert.Equal(t, sess, stored)
	assert.Empty(t, sess.AuthStatus)
}

func TestStartSessionStoreError(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("PutSession", mock.Anything, mock.Anything).
		Return(errors.New("store: internal error"))

	a := New(db, nil, testHyprConfig())

	_, err := a.StartSession(context.Background())
	assert.EqualError(t, err, "failed to create session: store: internal error")
}

func TestProcessLogout(t *testing.T) {
	a := New(nil, nil, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{
		SessionKey: "sess-1",
		Logout:     true,
	})
	assert.NoError(t, err)
	assert.Equal(t, FlowSuccessCompleted, res.Flow)
	assert.Nil(t, res.Redirect)
}

func TestProcessUnknownSession(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "missing").
		Return(nil, store.ErrSessionNotFound)

	a := New(db, nil, testHyprConfig())

	_, err := a.Process(context.Background(), &Request{SessionKey: "missing"})
	assert.True(t, apperrors.IsKind(err, apperrors.ErrInvalidSessionKey))
}

func TestProcessPromptForUsername(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{SessionKey: "sess-1"}, nil)

	a := New(db, nil, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{SessionKey: "sess-1"})
	assert.NoError(t, err)
	assert.Equal(t, FlowIncomplete, res.Flow)
	assert.Equal(t, LoginPage, res.Redirect.Page)
	assert.Equal(t, "sess-1", res.Redirect.Params.Get(ParamSessionDataKey))
	assert.Equal(t, AuthenticatorFriendlyName,
		res.Redirect.Params.Get(ParamAuthenticatorName))
	assert.Empty(t, res.Redirect.Params.Get(ParamStatus))
}

func TestProcessInitiateSuccess(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{SessionKey: "sess-1"}, nil)

	var stored *model.SessionState
	db.On("PutSession", mock.Anything, mock.AnythingOfType("*model.SessionState")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.SessionState)
		}).
		Return(nil)

	hc := hmocks.NewAuthClient(t)
	hc.On("ListRegisteredDevices", mock.Anything, "alice").
		Return([]model.RegisteredDevice{
			{DeviceID: "dev-1", MachineID: "MID1", NamedUser: "alice"},
		}, nil)
	hc.On("InitiateAuthentication", mock.Anything, "alice", "MID1").
		Return(&model.DeviceAuthenticationResponse{
			Response: model.RequestIDResponse{RequestID: "REQ1"},
		}, nil)

	a := New(db, hc, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{
		SessionKey: "sess-1",
		Username:   "alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, FlowIncomplete, res.Flow)
	assert.Equal(t, model.StatusPending.String(),
		res.Redirect.Params.Get(ParamStatus))

	assert.Equal(t, "alice", stored.Username)
	assert.Equal(t, model.StatusPending, stored.AuthStatus)
	assert.Equal(t, "REQ1", stored.AuthRequestID)
}

func TestProcessNoRegisteredDevices(t *testing.T) {
	testCases := map[string]struct {
		authenticatedUser string
		outStatus         model.AuthenticationStatus
	}{
		"first factor": {
			outStatus: model.StatusInvalidRequest,
		},
		"subsequent factor": {
			authenticatedUser: "bob",
			outStatus:         model.StatusInvalidUser,
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			db := smocks.NewSessionStore(t)
			db.On("GetSession", mock.Anything, "sess-1").
				Return(&model.SessionState{SessionKey: "sess-1"}, nil)

			hc := hmocks.NewAuthClient(t)
			hc.On("ListRegisteredDevices", mock.Anything, "bob").
				Return([]model.RegisteredDevice{}, nil)

			a := New(db, hc, testHyprConfig())

			res, err := a.Process(context.Background(), &Request{
				SessionKey:        "sess-1",
				Username:          "bob",
				AuthenticatedUser: tc.authenticatedUser,
			})
			assert.NoError(t, err)
			assert.Equal(t, FlowIncomplete, res.Flow)
			assert.Equal(t, tc.outStatus.String(),
				res.Redirect.Params.Get(ParamStatus))
			assert.Equal(t, tc.outStatus.Message(),
				res.Redirect.Params.Get(ParamMessage))

			hc.AssertNotCalled(t, "InitiateAuthentication",
				mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProcessBlankMachineID(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{SessionKey: "sess-1"}, nil)

	hc := hmocks.NewAuthClient(t)
	hc.On("ListRegisteredDevices", mock.Anything, "alice").
		Return([]model.RegisteredDevice{
			{DeviceID: "dev-1", NamedUser: "alice"},
		}, nil)

	a := New(db, hc, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{
		SessionKey: "sess-1",
		Username:   "alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, FlowIncomplete, res.Flow)
	assert.Equal(t, model.StatusFailed.String(),
		res.Redirect.Params.Get(ParamStatus))

	hc.AssertNotCalled(t, "InitiateAuthentication",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessBlankRequestID(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{SessionKey: "sess-1"}, nil)

	hc := hmocks.NewAuthClient(t)
	hc.On("ListRegisteredDevices", mock.Anything, "alice").
		Return([]model.RegisteredDevice{
			{DeviceID: "dev-1", MachineID: "MID1"},
		}, nil)
	hc.On("InitiateAuthentication", mock.Anything, "alice", "MID1").
		Return(&model.DeviceAuthenticationResponse{}, nil)

	a := New(db, hc, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{
		SessionKey: "sess-1",
		Username:   "alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusFailed.String(),
		res.Redirect.Params.Get(ParamStatus))

	db.AssertNotCalled(t, "PutSession", mock.Anything, mock.Anything)
}

func TestProcessInvalidToken(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{SessionKey: "sess-1"}, nil)

	hc := hmocks.NewAuthClient(t)
	hc.On("ListRegisteredDevices", mock.Anything, "alice").
		Return([]model.RegisteredDevice{
			{DeviceID: "dev-1", MachineID: "MID1"},
		}, nil)
	hc.On("InitiateAuthentication", mock.Anything, "alice", "MID1").
		Return(nil, apperrors.New(apperrors.ErrAPITokenInvalid))

	a := New(db, hc, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{
		SessionKey: "sess-1",
		Username:   "alice",
	})
	assert.NoError(t, err)
	assert.Equal(t, FlowIncomplete, res.Flow)
	assert.Equal(t, model.StatusInvalidToken.String(),
		res.Redirect.Params.Get(ParamStatus))
}

func TestProcessInitiateHardFailures(t *testing.T) {
	testCases := map[string]struct {
		devicesErr  error
		initiateErr error
		outKind     apperrors.Kind
	}{
		"device lookup fails": {
			devicesErr: apperrors.New(apperrors.ErrRetrievingDevicesFailed),
			outKind:    apperrors.ErrRetrievingDevicesFailed,
		},
		"push initiation fails": {
			initiateErr: apperrors.New(apperrors.ErrSendPushFailed),
			outKind:     apperrors.ErrSendPushFailed,
		},
	}

	for name := range testCases {
		tc := testCases[name]
		t.Run(name, func(t *testing.T) {
			db := smocks.NewSessionStore(t)
			db.On("GetSession", mock.Anything, "sess-1").
				Return(&model.SessionState{SessionKey: "sess-1"}, nil)

			hc := hmocks.NewAuthClient(t)
			if tc.devicesErr != nil {
				hc.On("ListRegisteredDevices", mock.Anything, "alice").
					Return(nil, tc.devicesErr)
			} else {
				hc.On("ListRegisteredDevices", mock.Anything, "alice").
					Return([]model.RegisteredDevice{
						{DeviceID: "dev-1", MachineID: "MID1"},
					}, nil)
				hc.On("InitiateAuthentication", mock.Anything, "alice", "MID1").
					Return(nil, tc.initiateErr)
			}

			a := New(db, hc, testHyprConfig())

			_, err := a.Process(context.Background(), &Request{
				SessionKey: "sess-1",
				Username:   "alice",
			})
			assert.True(t, apperrors.IsKind(err, tc.outKind))
		})
	}
}

func TestProcessInvalidConfiguration(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{SessionKey: "sess-1"}, nil)

	a := New(db, nil, hypr.Config{AppID: "testApp", APIToken: "testApiToken"})

	_, err := a.Process(context.Background(), &Request{
		SessionKey: "sess-1",
		Username:   "alice",
	})
	assert.True(t, apperrors.IsKind(err, apperrors.ErrBaseURLInvalid))
}

func TestProcessStoredCompleted(t *testing.T) {
	db := smocks.NewSessionStore(t)
	db.On("GetSession", mock.Anything, "sess-1").
		Return(&model.SessionState{
			SessionKey:    "sess-1",
			Username:      "alice",
			AuthStatus:    model.StatusCompleted,
			AuthRequestID: "REQ1",
		}, nil)

	hc := hmocks.NewAuthClient(t)

	a := New(db, hc, testHyprConfig())

	res, err := a.Process(context.Background(), &Request{SessionKey: "sess-1"})
	assert.NoError(t, err)
	assert.Equal(t, FlowSuccessCompleted, res.Flow)
	assert.Equal(t, "alice", res.AuthenticatedUser)
	assert.Nil(t, res.Redirect)
}

func TestProcessStoredNonTerminal(t *testing.T) {
	for _, status := range []model.AuthenticationStatus{
		model.StatusPending,
		model.StatusFailed,
		model.StatusCanceled,
	} {
		t.Run(string(status), func(t *testing.T) {
			db := smocks.NewSessionStore(t)
			db.On("GetSession", mock.Anything, "sess-1").
				Return(&model.SessionState{
					SessionKey:    "sess-1",
					Username:      "alice",
					AuthStatus:    status,
					AuthRequestID: "REQ1",
				}, nil)

			hc := hmocks.NewAuthClient(t)

			a := New(db, hc, testHyprConfig())

			res, err := a.Process(context.Background(),
				&Request{SessionKey: "sess-1"})
			assert.NoError(t, err)
			assert.Equal(t, FlowIncomplete, res.Flow)
			assert.Equal(t, status.String(),
				res.Redirect.Params.Get(ParamStatus))
			assert.Empty(t, res.AuthenticatedUser)
		})
	}
}
