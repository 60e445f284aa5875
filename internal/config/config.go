/*
 * Copyright 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// DataDir is the sole filesystem root files may be read from.
	DataDir string
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string
	// HTTPAddr is the listen address for the streamable HTTP transport.
	HTTPAddr string
}

var globalConfig *Config

// NewViper returns a viper instance with env binding and defaults applied.
// Environment variables use the CSV_ANALYST_ prefix (CSV_ANALYST_DATA_DIR).
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("csv_analyst")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("data_dir", "./data")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_addr", ":8000")
	return v
}

// FromViper materializes a Config from a bound viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		DataDir:  v.GetString("data_dir"),
		LogLevel: v.GetString("log_level"),
		HTTPAddr: v.GetString("http_addr"),
	}
}

// SetConfig sets the global configuration.
func SetConfig(cfg *Config) {
	globalConfig = cfg
}

// GetConfig returns the global configuration set during command startup.
func GetConfig() *Config {
	return globalConfig
}
