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

// Package csvimport parses LinkedIn connections CSV exports into contacts.
// The export prepends a multi-line free-text disclaimer before the actual
// header row, so parsing starts with a heuristic scan for the most
// header-looking line.
package csvimport

import (
	"regexp"
	"strings"
)

// HeaderScoreConfig holds the weights of the header-locator heuristic. The
// defaults are empirically tuned against real exports; they are exposed as
// configuration rather than constants so retuning does not need a rebuild.
type HeaderScoreConfig struct {
	// PatternWeight is added once per matched domain header pattern
	// (first name, email, company, position, connected on, url).
	PatternWeight int `yaml:"pattern_weight"`
	// ShapeWeight is added per generic CSV-shape indicator: the line
	// contains a comma, and the line matches word-comma-word.
	ShapeWeight int `yaml:"shape_weight"`
	// SplitBonus is added when the line splits into at least four
	// non-empty comma-separated parts.
	SplitBonus int `yaml:"split_bonus"`
	// MinScore is the confidence threshold: below it the input is
	// returned verbatim and header handling is left to the CSV reader.
	MinScore int `yaml:"min_score"`
}

func DefaultHeaderScoreConfig() HeaderScoreConfig {
	return HeaderScoreConfig{
		PatternWeight: 2,
		ShapeWeight:   1,
		SplitBonus:    3,
		MinScore:      5,
	}
}

func (c HeaderScoreConfig) withDefaults() HeaderScoreConfig {
	if c == (HeaderScoreConfig{}) {
		return DefaultHeaderScoreConfig()
	}
	return c
}

var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)first\s*_?name`),
	regexp.MustCompile(`(?i)e-?mail`),
	regexp.MustCompile(`(?i)company`),
	regexp.MustCompile(`(?i)position`),
	regexp.MustCompile(`(?i)connected\s*_?on`),
	regexp.MustCompile(`(?i)\burl\b`),
}

var wordCommaWord = regexp.MustCompile(`\w+\s*,\s*\w+`)

// LocateHeader returns text starting at the best-scoring header candidate
// line, or text unchanged when no line reaches cfg.MinScore. Lines that are
// empty, wrapped in quotes, or mention "note" are never candidates; those
// are the disclaimer preamble of the export, and matching on its wording
// would break the moment the wording changes.
func LocateHeader(text string, cfg HeaderScoreConfig) string {
	cfg = cfg.withDefaults()

	lines := strings.Split(text, "\n")
	bestScore := 0
	bestLine := -1

	for i, line := range lines {
		candidate := strings.TrimRight(line, "\r")
		if skipCandidate(candidate) {
			continue
		}
		// First line reaching the max wins: > keeps earlier ties.
		if score := scoreLine(candidate, cfg); score > bestScore {
			bestScore = score
			bestLine = i
		}
	}

	if bestLine < 0 || bestScore < cfg.MinScore {
		return text
	}
	return strings.Join(lines[bestLine:], "\n")
}

func skipCandidate(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		return true
	}
	return strings.Contains(strings.ToLower(trimmed), "note")
}

func scoreLine(line string, cfg HeaderScoreConfig) int {
	score := 0

	for _, pattern := range headerPatterns {
		if pattern.MatchString(line) {
			score += cfg.PatternWeight
		}
	}

	if strings.Contains(line, ",") {
		score += cfg.ShapeWeight
	}
	if wordCommaWord.MatchString(line) {
		score += cfg.ShapeWeight
	}

	parts := strings.Split(line, ",")
	nonEmpty := 0
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty++
		}
	}
	if nonEmpty >= 4 {
		score += cfg.SplitBonus
	}

	return score
}
