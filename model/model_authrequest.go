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

import (
	"github.com/wso2-extensions/identity-outbound-auth-hypr/utils"
)

// MachineValue tags the client platform initiating the push.
const MachineValue = "WEB"

// DeviceAuthenticationRequest is the POST body initiating a push
// authentication. The four nonce fields are opaque anti-replay tokens,
// independently generated per request.
type DeviceAuthenticationRequest struct {
	NamedUser    string `json:"namedUser"`
	Machine      string `json:"machine"`
	MachineID    string `json:"machineId"`
	AppID        string `json:"appId"`
	SessionNonce string `json:"sessionNonce"`
	DeviceNonce  string `json:"deviceNonce"`
	ServiceNonce string `json:"serviceNonce"`
	ServiceHmac  string `json:"serviceHmac"`
}

// NewDeviceAuthenticationRequest builds a request with freshly generated
// nonces. Fails only if the random source is unavailable.
func NewDeviceAuthenticationRequest(namedUser, machineID, appID string) (*DeviceAuthenticationRequest, error) {
	req := DeviceAuthenticationRequest{
		NamedUser: namedUser,
		Machine:   MachineValue,
		MachineID: machineID,
		AppID:     appID,
	}

	var err error
	for _, nonce := range []*string{
		&req.SessionNonce, &req.DeviceNonce, &req.ServiceNonce, &req.ServiceHmac,
	} {
		*nonce, err = utils.RandomPinSha256()
		if err != nil {
			return nil, err
		}
	}

	return &req, nil
}
