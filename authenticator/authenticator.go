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

// Package authenticator drives a HYPR push login attempt from "need
// username" through "push sent" to a terminal status, keyed by the
// session identifier the host flow correlates on.
package authenticator

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/apperrors"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/client/hypr"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

const (
	AuthenticatorName         = "HYPRAuthenticator"
	AuthenticatorFriendlyName = "HYPR"

	// login page rendered by the host's authentication endpoint
	LoginPage = "/authenticationendpoint/hyprlogin.jsp"

	ParamSessionDataKey    = "sessionDataKey"
	ParamUsername          = "username"
	ParamAuthenticatorName = "AuthenticatorName"
	ParamStatus            = "status"
	ParamMessage           = "message"
)

// FlowStatus is the verdict handed back to the host flow.
type FlowStatus int

const (
	FlowIncomplete FlowStatus = iota
	FlowSuccessCompleted
)

func (f FlowStatus) String() string {
	if f == FlowSuccessCompleted {
		return "SUCCESS_COMPLETED"
	}
	return "INCOMPLETE"
}

// Request is one host-framework invocation of the authenticator.
type Request struct {
	// session identifier correlating the login attempt
	SessionKey string

	// username submitted through the login form, empty otherwise
	Username string

	// subject already established by an earlier factor, empty on a
	// first-factor flow
	AuthenticatedUser string

	// logout requests complete without touching HYPR
	Logout bool
}

// Redirect is a computed redirect; emission is the caller's business.
type Redirect struct {
	Page   string     `json:"page"`
	Params url.Values `json:"params"`
}

// Result of processing one request.
type Result struct {
	Flow FlowStatus
	// set on every incomplete outcome rendered to the end user
	Redirect *Redirect
	// subject bound on completion
	AuthenticatedUser string
}

// App is the capability set the host framework invokes; it has no
// knowledge of the host beyond this contract.
type App interface {
	CanHandle(r *Request) bool
	ContextIdentifier(r *Request) string

	StartSession(ctx context.Context) (*model.SessionState, error)
	Process(ctx context.Context, r *Request) (*Result, error)

	// Status is the stateless read path polled against the REST surface
	Status(ctx context.Context, sessionKey string) (model.AuthenticationStatus, error)
}

func New(db store.SessionStore, client hypr.AuthClient, conf hypr.Config) App {
	return &HyprAuthenticator{
		db:     db,
		client: client,
		conf:   conf,
	}
}

type HyprAuthenticator struct {
	db     store.SessionStore
	client hypr.AuthClient
	conf   hypr.Config
}

// CanHandle reports whether the request carries the session identifier
// the entire flow relies on.
func (a *HyprAuthenticator) CanHandle(r *Request) bool {
	return r.SessionKey != ""
}

// ContextIdentifier returns the identifier correlating request and
// response of one login attempt.
func (a *HyprAuthenticator) ContextIdentifier(r *Request) string {
	return r.SessionKey
}

// StartSession mints a fresh login attempt; the host framework owns
// session creation in an embedded deployment, the REST surface does
// here.
func (a *HyprAuthenticator) StartSession(ctx context.Context) (*model.SessionState, error) {
	sess := &model.SessionState{
		SessionKey: uuid.NewString(),
	}

	if err := a.db.PutSession(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return sess, nil
}

func (a *HyprAuthenticator) Process(ctx context.Context, r *Request) (*Result, error) {
	l := log.FromContext(ctx)

	if r.Logout {
		// nothing to unwind with HYPR on logout
		return &Result{Flow: FlowSuccessCompleted}, nil
	}

	sess, err := a.db.GetSession(ctx, r.SessionKey)
	if err == store.ErrSessionNotFound {
		return nil, apperrors.Wrap(apperrors.ErrInvalidSessionKey, err)
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to fetch session")
	}

	switch {
	case r.Username != "" || (r.AuthenticatedUser != "" && sess.AuthStatus == ""):
		// login form submission, or a subsequent factor with the
		// subject already known
		username := r.Username
		if username == "" {
			username = r.AuthenticatedUser
		}
		return a.initiateHyprAuthentication(ctx, sess, username, r.AuthenticatedUser != "")

	case sess.AuthStatus != "":
		return a.handleStoredStatus(ctx, sess)

	default:
		// no username yet, prompt for one
		l.Debugf("session %s has no username, redirecting to login page", r.SessionKey)
		return &Result{
			Flow:     FlowIncomplete,
			Redirect: a.loginRedirect(r.SessionKey, ""),
		}, nil
	}
}

// initiateHyprAuthentication resolves the user's registered device and
// sends the push notification; the only transition performing outbound
// HYPR calls other than status polling.
func (a *HyprAuthenticator) initiateHyprAuthentication(ctx context.Context, sess *model.SessionState,
	username string, subsequentFactor bool) (*Result, error) {

	l := log.FromContext(ctx)

	if err := a.conf.Validate(); err != nil {
		return nil, err
	}

	invalidUserStatus := model.StatusInvalidRequest
	if subsequentFactor {
		// identity already partially established, naming the failure
		// leaks nothing
		invalidUserStatus = model.StatusInvalidUser
	}

	if username == "" {
		return a.incomplete(sess.SessionKey, model.StatusInvalidRequest), nil
	}

	devices, err := a.client.ListRegisteredDevices(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve registered devices")
	}

	// a HYPR user cannot exist without registered devices
	if len(devices) == 0 {
		l.Debugf("user %s has no registered devices", username)
		return a.incomplete(sess.SessionKey, invalidUserStatus), nil
	}

	machineID := model.MachineID(devices)
	if machineID == "" {
		l.Debugf("retrieved machine ID for user %s is blank", username)
		return a.incomplete(sess.SessionKey, model.StatusFailed), nil
	}

	authRsp, err := a.client.InitiateAuthentication(ctx, username, machineID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.ErrAPITokenInvalid) {
			// token invalidity on push initiation is rendered to the
			// user instead of aborting the attempt
			return a.incomplete(sess.SessionKey, model.StatusInvalidToken), nil
		}
		return nil, errors.Wrap(err, "failed to send push notification")
	}

	requestID := authRsp.Response.RequestID
	if requestID == "" {
		l.Debugf("retrieved request ID for user %s is blank", username)
		return a.incomplete(sess.SessionKey, model.StatusFailed), nil
	}

	sess.Username = username
	sess.AuthStatus = model.StatusPending
	sess.AuthRequestID = requestID

	if err := a.db.PutSession(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	l.Infof("push notification sent for user %s, request %s", username, requestID)

	return a.incomplete(sess.SessionKey, model.StatusPending), nil
}

// handleStoredStatus re-enters a session that already has a push in
// flight or concluded; no HYPR calls are made from this path.
func (a *HyprAuthenticator) handleStoredStatus(ctx context.Context, sess *model.SessionState) (*Result, error) {
	l := log.FromContext(ctx)

	if sess.AuthStatus == model.StatusCompleted {
		l.Infof("successfully logged in the user %s", sess.Username)
		return &Result{
			Flow:              FlowSuccessCompleted,
			AuthenticatedUser: sess.Username,
		}, nil
	}

	return a.incomplete(sess.SessionKey, sess.AuthStatus), nil
}

func (a *HyprAuthenticator) incomplete(sessionKey string, status model.AuthenticationStatus) *Result {
	return &Result{
		Flow:     FlowIncomplete,
		Redirect: a.loginRedirect(sessionKey, status),
	}
}

// loginRedirect computes the login page redirect carrying the session
// key and, when present, the rendered status and message.
func (a *HyprAuthenticator) loginRedirect(sessionKey string, status model.AuthenticationStatus) *Redirect {
	params := url.Values{}
	params.Set(ParamSessionDataKey, sessionKey)
	params.Set(ParamAuthenticatorName, AuthenticatorFriendlyName)

	if status != "" {
		params.Set(ParamStatus, status.String())
		params.Set(ParamMessage, status.Message())
	}

	return &Redirect{
		Page:   LoginPage,
		Params: params,
	}
}
