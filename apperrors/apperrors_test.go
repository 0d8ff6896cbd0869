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
package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "HYPR-API-60001", ErrInvalidSessionKey.Code())
	assert.Equal(t, "HYPR-API-65011", ErrAPITokenInvalid.Code())
}

func TestErrorWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrSendPushFailed, cause)

	assert.Contains(t, err.Error(), "HYPR-API-65005")
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Cause(error(err)))

	assert.True(t, IsKind(err, ErrSendPushFailed))
	assert.False(t, IsKind(err, ErrRetrievingDevicesFailed))
	assert.Equal(t, ErrSendPushFailed, KindOf(err))
}

func TestErrorWrapped(t *testing.T) {
	// kinds survive further annotation by callers
	err := errors.Wrap(New(ErrInvalidSessionKey), "failed to query status")

	assert.True(t, IsKind(err, ErrInvalidSessionKey))
	assert.Equal(t, ErrInvalidSessionKey, KindOf(err))
}

func TestKindOfUnmapped(t *testing.T) {
	assert.Equal(t, ErrServerErrorGeneral, KindOf(errors.New("boom")))
}

func TestClientClassification(t *testing.T) {
	assert.True(t, ErrInvalidSessionKey.IsClientError())
	assert.True(t, ErrInvalidRequestPayload.IsClientError())
	assert.True(t, ErrInvalidUser.IsClientError())
	assert.False(t, ErrInvalidConfiguration.IsClientError())
	assert.False(t, ErrServerErrorGeneral.IsClientError())
}
