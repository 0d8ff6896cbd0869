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

// Package http exposes the authenticator over REST: session creation,
// flow processing and the status endpoint polled by the login page.
package http

import (
	"context"
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/mendersoftware/go-lib-micro/requestlog"
	"github.com/pkg/errors"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/apperrors"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/authenticator"
)

const (
	uriAuthentication         = "/api/hypr/v1/authentication"
	uriAuthenticationSessions = "/api/hypr/v1/authentication/sessions"
	uriAuthenticationStatus   = "/api/hypr/v1/authentication/status"

	paramSessionKey = "sessionKey"
)

// AuthenticationRequest is the flow-processing request body.
type AuthenticationRequest struct {
	SessionDataKey    string `json:"sessionDataKey"`
	Username          string `json:"username"`
	AuthenticatedUser string `json:"authenticatedUser"`
	Logout            bool   `json:"logout"`
}

// AuthenticationResponse reports the flow verdict for one invocation.
type AuthenticationResponse struct {
	FlowStatus        string                  `json:"flowStatus"`
	AuthenticatedUser string                  `json:"authenticatedUser,omitempty"`
	Redirect          *authenticator.Redirect `json:"redirect,omitempty"`
}

type SessionResponse struct {
	SessionKey string `json:"sessionKey"`
}

type StatusResponse struct {
	SessionKey string `json:"sessionKey"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

// ApiError is the error body of every non-2xx response.
type ApiError struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	TraceID     string `json:"traceId"`
}

type HyprAuthHandlers struct {
	App authenticator.App
}

func NewHyprAuthApiHandlers(app authenticator.App) ApiHandler {
	return &HyprAuthHandlers{
		app,
	}
}

func (h *HyprAuthHandlers) GetApp() (rest.App, error) {
	routes := []*rest.Route{
		rest.Post(uriAuthenticationSessions, h.StartSessionHandler),
		rest.Post(uriAuthentication, h.ProcessHandler),
		rest.Get(uriAuthenticationStatus, h.GetStatusHandler),
	}

	app, err := rest.MakeRouter(
		// augment routes with OPTIONS handler
		AutogenOptionsRoutes(routes, AllowHeaderOptionsGenerator)...,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create router")
	}

	return app, nil
}

func (h *HyprAuthHandlers) StartSessionHandler(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	sess, err := h.App.StartSession(restToContext(r))
	if err != nil {
		restErrWithLog(w, r, l, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.WriteJson(SessionResponse{SessionKey: sess.SessionKey})
}

func (h *HyprAuthHandlers) ProcessHandler(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	var in AuthenticationRequest
	if err := r.DecodeJsonPayload(&in); err != nil {
		err = apperrors.Wrap(apperrors.ErrInvalidRequestPayload,
			errors.Wrap(err, "failed to decode request body"))
		restErrWithLog(w, r, l, err)
		return
	}

	req := &authenticator.Request{
		SessionKey:        in.SessionDataKey,
		Username:          in.Username,
		AuthenticatedUser: in.AuthenticatedUser,
		Logout:            in.Logout,
	}

	if !h.App.CanHandle(req) {
		err := apperrors.New(apperrors.ErrInvalidSessionKey)
		restErrWithLogCode(w, r, l, err, http.StatusBadRequest)
		return
	}

	res, err := h.App.Process(restToContext(r), req)
	if err != nil {
		restErrWithLog(w, r, l, err)
		return
	}

	w.WriteJson(AuthenticationResponse{
		FlowStatus:        res.Flow.String(),
		AuthenticatedUser: res.AuthenticatedUser,
		Redirect:          res.Redirect,
	})
}

func (h *HyprAuthHandlers) GetStatusHandler(w rest.ResponseWriter, r *rest.Request) {
	l := requestlog.GetRequestLogger(r)

	sessionKey := r.URL.Query().Get(paramSessionKey)
	if sessionKey == "" {
		err := apperrors.New(apperrors.ErrInvalidSessionKey)
		restErrWithLogCode(w, r, l, err, http.StatusBadRequest)
		return
	}

	status, err := h.App.Status(restToContext(r), sessionKey)
	if err != nil {
		restErrWithLog(w, r, l, err)
		return
	}

	w.WriteJson(StatusResponse{
		SessionKey: sessionKey,
		Status:     status.String(),
		Message:    status.Message(),
	})
}

// restErrWithLog renders the error with a status code derived from its
// kind: client kinds map to 400, everything else to 500.
func restErrWithLog(w rest.ResponseWriter, r *rest.Request, l *log.Logger, e error) {
	code := http.StatusInternalServerError
	if apperrors.KindOf(e).IsClientError() {
		code = http.StatusBadRequest
	}
	restErrWithLogCode(w, r, l, e, code)
}

// restErrWithLogCode renders the error's kind as the response body with
// the given status code and logs the full cause chain.
func restErrWithLogCode(w rest.ResponseWriter, r *rest.Request, l *log.Logger, e error, code int) {
	kind := apperrors.KindOf(e)

	traceID := requestid.GetReqId(r)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	w.WriteHeader(code)
	err := w.WriteJson(ApiError{
		Code:        kind.Code(),
		Message:     kind.Message(),
		Description: kind.Description(),
		TraceID:     traceID,
	})
	if err != nil {
		panic(err)
	}
	l.F(log.Ctx{}).Error(errors.Wrap(e, kind.Message()).Error())
}

// unpack contextual request data into context.Context
func restToContext(r *rest.Request) context.Context {
	ctx := r.Context()
	ctx = log.WithContext(ctx, requestlog.GetRequestLogger(r))
	ctx = requestid.WithContext(ctx, requestid.GetReqId(r))
	return ctx
}
