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

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/wso2-extensions/identity-outbound-auth-hypr/config"
)

func main() {
	var configPath string
	var printVersion bool
	flag.StringVar(&configPath, "config",
		"config.yaml",
		"Configuration file path. Supports JSON, TOML, YAML and HCL formatted configs.")
	flag.BoolVar(&printVersion, "version",
		false, "Show version")

	flag.Parse()

	if printVersion {
		fmt.Println(CreateVersionString())
		os.Exit(0)
	}

	c, err := HandleConfigFile(configPath)
	if err != nil {
		log.Fatalf("error loading configuration: %s", err)
	}

	log.Printf("HYPR Authentication Service, version %s starting up",
		CreateVersionString())

	if err := RunServer(c); err != nil {
		log.Fatalf("error running server: %s", err)
	}
}

func HandleConfigFile(filePath string) (config.Reader, error) {

	c := viper.New()
	c.SetConfigFile(filePath)

	// Set default values for config
	SetDefaultConfigs(c, configDefaults)

	// Find and read the config file
	if err := c.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed to read configuration")
	}

	// Validate config
	if err := config.ValidateConfig(c, configValidators...); err != nil {
		return nil, errors.Wrap(err, "failed to validate configuration")
	}

	return c, nil
}

func SetDefaultConfigs(config *viper.Viper, defaults []ConfigDefault) {
	for _, def := range defaults {
		config.SetDefault(def.key, def.value)
	}
}
