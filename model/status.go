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
package model

// AuthenticationStatus is the shared status vocabulary between the HYPR
// server and the authenticator.
type AuthenticationStatus string

const (
	StatusInvalidToken   AuthenticationStatus = "INVALID_TOKEN"
	StatusInvalidRequest AuthenticationStatus = "INVALID_REQUEST"
	StatusInvalidUser    AuthenticationStatus = "INVALID_USER"
	StatusPending        AuthenticationStatus = "PENDING"
	StatusCompleted      AuthenticationStatus = "COMPLETED"
	StatusFailed         AuthenticationStatus = "FAILED"
	StatusCanceled       AuthenticationStatus = "CANCELED"
)

var statusMessages = map[AuthenticationStatus]string{
	StatusInvalidToken: "Authentication failed due to an internal server error. " +
		"To fix this, contact your system administrator.",
	StatusInvalidRequest: "Invalid username provided.",
	StatusInvalidUser:    "Provided username doesn't exist.",
	StatusPending: "Authentication with HYPR is in progress. Awaiting for the user to " +
		"authenticate via the registered smart device.",
	StatusCompleted: "Authentication successfully completed.",
	StatusFailed:    "Authentication failed. Try again.",
	StatusCanceled:  "Authentication with HYPR was cancelled by the user.",
}

func (s AuthenticationStatus) String() string {
	return string(s)
}

// Message returns the user facing message rendered alongside the status.
func (s AuthenticationStatus) Message() string {
	return statusMessages[s]
}

// IsTerminal reports whether no further HYPR calls may be made for a
// session holding this status.
func (s AuthenticationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCanceled:
		return true
	}
	return false
}
