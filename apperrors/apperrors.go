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

// Package apperrors defines the closed error taxonomy shared by the HYPR
// client, the authenticator and the REST layer. Each kind carries a
// stable public code, a message and a description; errors wrap an
// optional transport-level cause.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// CodePrefix is prepended to every public error code.
const CodePrefix = "HYPR-API-"

// Kind identifies one member of the taxonomy.
type Kind struct {
	code        string
	message     string
	description string

	// caused by the caller rather than this service or HYPR
	client bool
}

var (
	ErrInvalidSessionKey = Kind{
		code:        "60001",
		message:     "Invalid session key provided.",
		description: "The provided session key doesn't exist.",
		client:      true,
	}
	ErrInvalidRequestPayload = Kind{
		code:        "60002",
		message:     "Invalid request payload provided.",
		description: "The provided request body could not be parsed.",
		client:      true,
	}
	ErrRetrievingDevicesFailed = Kind{
		code:        "65003",
		message:     "Retrieving the registered devices failed.",
		description: "Error occurred while retrieving the registered devices from the HYPR server.",
	}
	ErrSendPushFailed = Kind{
		code:        "65005",
		message:     "Sending the push notification failed.",
		description: "Error occurred while sending a push notification to the registered device.",
	}
	ErrHashAlgorithmUnavailable = Kind{
		code:        "65006",
		message:     "Retrieving the hash algorithm failed.",
		description: "The runtime is missing the digest algorithm or random source required to build the request.",
	}
	ErrRetrievingStatusFailed = Kind{
		code:        "65008",
		message:     "Error while retrieving authentication status.",
		description: "Error occurred while retrieving the authentication status from the HYPR server.",
	}
	ErrBaseURLInvalid = Kind{
		code:        "65009",
		message:     "Provided HYPR base URL is invalid.",
		description: "Configured HYPR base URL is either blank or doesn't exist.",
	}
	ErrAppIDInvalid = Kind{
		code:        "65010",
		message:     "Provided HYPR app ID is invalid.",
		description: "Configured HYPR relying party app ID is blank.",
	}
	ErrAPITokenInvalid = Kind{
		code:        "65011",
		message:     "Provided HYPR endpoint API token is either invalid or expired.",
		description: "The configured HYPR API token was rejected by the HYPR server.",
	}
	ErrServerErrorGeneral = Kind{
		code:        "65012",
		message:     "Server error occurred.",
		description: "Unable to complete the action due to a server error.",
	}
	ErrInvalidConfiguration = Kind{
		code:        "65016",
		message:     "Invalid authenticator configurations.",
		description: "Extracted HYPR authenticator configurations missing either baseUrl, appId or apiToken.",
	}
	ErrInvalidAuthenticationProperties = Kind{
		code:        "65017",
		message:     "Invalid authentication properties.",
		description: "Extracted HYPR authentication properties missing either authStatus or requestId.",
	}
	ErrClientTransport = Kind{
		code:        "65018",
		message:     "Error while getting the http client.",
		description: "Server error encountered while obtaining or using the http client.",
	}
	ErrInvalidUser = Kind{
		code:        "65020",
		message:     "Invalid username provided.",
		description: "The provided username doesn't exist or has no registered devices.",
		client:      true,
	}
)

// Code returns the public, prefix-qualified error code.
func (k Kind) Code() string {
	return CodePrefix + k.code
}

func (k Kind) Message() string {
	return k.message
}

func (k Kind) Description() string {
	return k.description
}

// IsClientError reports whether the kind maps to a 400-class response.
func (k Kind) IsClientError() bool {
	return k.client
}

// Error is a taxonomy member with an optional wrapped cause.
type Error struct {
	kind  Kind
	cause error
}

func New(kind Kind) *Error {
	return &Error{kind: kind}
}

func Wrap(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s | %s: %s", e.kind.Code(), e.kind.message, e.cause.Error())
	}
	return fmt.Sprintf("%s | %s", e.kind.Code(), e.kind.message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Cause implements the pkg/errors causer chain.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf extracts the taxonomy kind from an error chain; unmapped errors
// degrade to ErrServerErrorGeneral.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return ErrServerErrorGeneral
}

// IsKind reports whether err carries the given taxonomy kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
