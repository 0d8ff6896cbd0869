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

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/pkg/errors"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/apperrors"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/model"
	"github.com/wso2-extensions/identity-outbound-auth-hypr/store"
)

// Status resolves the current authentication status of a login attempt.
// Terminal statuses are answered from the store; for a pending attempt
// HYPR is polled and the observed status persisted before returning.
func (a *HyprAuthenticator) Status(ctx context.Context, sessionKey string) (model.AuthenticationStatus, error) {
	l := log.FromContext(ctx)

	if err := a.conf.Validate(); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInvalidConfiguration, err)
	}

	sess, err := a.db.GetSession(ctx, sessionKey)
	if err == store.ErrSessionNotFound {
		return "", apperrors.Wrap(apperrors.ErrInvalidSessionKey, err)
	} else if err != nil {
		return "", errors.Wrap(err, "failed to fetch session")
	}

	if sess.AuthStatus.IsTerminal() {
		// concluded attempts never hit HYPR again
		return sess.AuthStatus, nil
	}

	if sess.AuthStatus == "" || sess.AuthRequestID == "" {
		return "", apperrors.New(apperrors.ErrInvalidAuthenticationProperties)
	}

	stateRsp, err := a.client.GetAuthenticationStatus(ctx, sess.AuthRequestID)
	if err != nil {
		return "", err
	}

	cur, err := stateRsp.CurrentState()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrRetrievingStatusFailed, err)
	}

	status := model.AuthenticationStatus(cur)

	sess.AuthStatus = status
	if err := a.db.PutSession(ctx, sess); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}
	l.Debugf("session %s polled, status %s", sessionKey, status)

	return status, nil
}
