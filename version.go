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
package main

import "fmt"

// populated at build time via -ldflags
var (
	Commit string
	Tag    string
	Branch string
)

func CreateVersionString() string {
	switch {
	case Tag != "":
		return Tag
	case Branch != "":
		return fmt.Sprintf("%s_%s", Branch, Commit)
	case Commit != "":
		return Commit
	}
	return "unknown"
}
