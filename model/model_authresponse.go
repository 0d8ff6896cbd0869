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

// ResponseEntity carries the HYPR-side response status envelope.
type ResponseEntity struct {
	ResponseCode    int    `json:"responseCode"`
	ResponseMessage string `json:"responseMessage"`
}

// RequestIDResponse holds the identifier of the in-flight push request.
type RequestIDResponse struct {
	RequestID string `json:"requestId"`
}

// DeviceAuthenticationResponse is returned by HYPR when a push
// authentication is initiated.
type DeviceAuthenticationResponse struct {
	Status   ResponseEntity    `json:"status"`
	Response RequestIDResponse `json:"response"`
}
