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
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

const (
	pinMin  = 100000
	pinSpan = 900000
)

// RandomPin returns a uniformly distributed 6-digit pin in [100000, 999999].
func RandomPin() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(pinSpan))
	if err != nil {
		return 0, errors.Wrap(err, "cannot read random source")
	}
	return pinMin + int(n.Int64()), nil
}

// Sha256Hex returns the SHA-256 digest of the input as a 64 character
// lowercase hex string.
func Sha256Hex(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// RandomPinSha256 hashes a freshly generated pin; used as an opaque
// per-request nonce in device authentication requests.
func RandomPinSha256() (string, error) {
	pin, err := RandomPin()
	if err != nil {
		return "", err
	}
	return Sha256Hex(strconv.Itoa(pin)), nil
}
