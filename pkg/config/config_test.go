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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconnecthq/reconnect/pkg/config"
	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, csvimport.DefaultHeaderScoreConfig(), cfg.CSVHeader)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
logging:
  level: debug
  console: true
auth:
  token: hunter2
scrape_api:
  base_url: https://scraper.internal
  cookie_header: li_at=secret
assistant:
  base_url: https://llm.internal/v1
  api_key: sk-test
  model: test-model
csv_header:
  pattern_weight: 4
  shape_weight: 2
  split_bonus: 5
  min_score: 9
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Console)
	assert.Equal(t, "hunter2", cfg.Auth.Token)
	assert.Equal(t, "https://scraper.internal", cfg.ScrapeAPI.BaseURL)
	assert.Equal(t, "li_at=secret", cfg.ScrapeAPI.CookieHeader)
	assert.Equal(t, "test-model", cfg.Assistant.Model)
	assert.Equal(t, csvimport.HeaderScoreConfig{
		PatternWeight: 4,
		ShapeWeight:   2,
		SplitBonus:    5,
		MinScore:      9,
	}, cfg.CSVHeader)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "auth:\n  token: abc\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "abc", cfg.Auth.Token)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "listen: [unclosed")
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyListen(t *testing.T) {
	path := writeConfig(t, `listen: ""`)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadRequiresAssistantKey(t *testing.T) {
	path := writeConfig(t, "assistant:\n  base_url: https://llm.internal/v1\n")
	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api_key")
}
