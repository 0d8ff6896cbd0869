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
package http

import (
	"github.com/ant0ine/go-json-rest/rest"
)

type ApiHandler interface {
	GetApp() (rest.App, error)
}

type routeOptionsGenerator func(methods []string) rest.HandlerFunc

// AllowHeaderOptionsGenerator answers OPTIONS with an Allow header
// listing the methods registered for the route.
func AllowHeaderOptionsGenerator(methods []string) rest.HandlerFunc {
	return func(w rest.ResponseWriter, r *rest.Request) {
		for _, m := range methods {
			w.Header().Add("Allow", m)
		}
		w.Header().Add("Allow", "OPTIONS")
	}
}

// AutogenOptionsRoutes appends an OPTIONS route for every path that
// does not define one already.
func AutogenOptionsRoutes(routes []*rest.Route, gen routeOptionsGenerator) []*rest.Route {
	methods := make(map[string][]string)

	for _, route := range routes {
		if route.HttpMethod == "OPTIONS" {
			continue
		}
		methods[route.PathExp] = append(methods[route.PathExp], route.HttpMethod)
	}

	out := routes
	for path, ms := range methods {
		out = append(out, rest.Options(path, gen(ms)))
	}

	return out
}
