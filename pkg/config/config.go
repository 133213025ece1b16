// reconnect - an assistant for rekindling dormant professional connections.
// Copyright (C) 2025 The reconnect authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

type Config struct {
	Listen  string  `yaml:"listen"`
	Logging Logging `yaml:"logging"`

	Auth      Auth            `yaml:"auth"`
	ScrapeAPI ScrapeAPI       `yaml:"scrape_api"`
	Assistant AssistantConfig `yaml:"assistant"`

	// CSVHeader tunes the header-locator heuristic. The weights are
	// empirically derived; leave zeroed to use the defaults.
	CSVHeader csvimport.HeaderScoreConfig `yaml:"csv_header"`
}

type Logging struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`
	// Console switches from JSON to human-readable output.
	Console bool `yaml:"console"`
}

type Auth struct {
	// Token is the static bearer token accepted by the API. Empty
	// disables authentication (local development only).
	Token string `yaml:"token"`
}

type ScrapeAPI struct {
	BaseURL      string `yaml:"base_url"`
	CookieHeader string `yaml:"cookie_header"`
}

type AssistantConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

func Default() Config {
	return Config{
		Listen:    ":8080",
		Logging:   Logging{Level: "info"},
		CSVHeader: csvimport.DefaultHeaderScoreConfig(),
	}
}

// Load reads a YAML config file on top of the defaults. A missing path is
// not an error: the defaults plus environment-free zero values apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("config: listen address must not be empty")
	}
	if c.Assistant.BaseURL != "" && c.Assistant.APIKey == "" {
		return fmt.Errorf("config: assistant.api_key is required when assistant.base_url is set")
	}
	return nil
}
