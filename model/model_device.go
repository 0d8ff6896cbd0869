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

// RegisteredDevice is a single device registered with HYPR for a user. A
// user without registered devices cannot authenticate via push.
type RegisteredDevice struct {
	DeviceID        string `json:"deviceId"`
	ProtocolVersion string `json:"protocolVersion"`
	ModelNumber     string `json:"modelNumber"`

	// per-user stable identifier targeting push notifications
	MachineID string `json:"machineId"`
	NamedUser string `json:"namedUser"`
}

// MachineID extracts the machine ID targeting the user's devices: the
// first device carrying a non-empty one wins.
func MachineID(devices []RegisteredDevice) string {
	for _, d := range devices {
		if d.MachineID != "" {
			return d.MachineID
		}
	}
	return ""
}
