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

package profile

// Fields defaulted to explicit null when the API omits them. The validator
// accepts null for all of these, so defaulting keeps "omitted" and "nulled"
// indistinguishable downstream, which is what the privacy-setting-dependent
// API behavior calls for.
var nullableCollections = []string{
	"languages",
	"skills",
	"courses",
	"certifications",
	"honors",
	"volunteering",
	"givenRecommendation",
	"receivedRecommendation",
}

var requiredBools = []string{"isOpenToWork", "isHiring"}

var requiredCounts = []string{"givenRecommendationCount", "receivedRecommendationCount"}

var positionKeys = []string{"position", "fullPositions"}

// Preprocess repairs known-bad shapes in a raw profile object before
// validation. The input is not mutated. Each repair is independent of the
// others and applying Preprocess to its own output is a no-op.
//
// The validator deliberately does not re-apply these defaults: it requires
// the fields this function fills in, so accidentally dropping the
// preprocessing step from the pipeline fails loudly instead of silently
// changing semantics.
func Preprocess(raw map[string]any) map[string]any {
	out, _ := deepCopy(raw).(map[string]any)
	if out == nil {
		out = map[string]any{}
	}

	for _, key := range requiredBools {
		if _, ok := out[key]; !ok {
			out[key] = false
		}
	}

	for _, key := range requiredCounts {
		if _, ok := out[key]; !ok {
			out[key] = 0
		}
	}

	for _, key := range nullableCollections {
		if _, ok := out[key]; !ok {
			out[key] = nil
		}
	}

	switch projects := out["projects"].(type) {
	case nil:
		out["projects"] = map[string]any{"total": 0, "items": nil}
	case map[string]any:
		if _, ok := projects["total"]; !ok {
			projects["total"] = 0
		}
		if _, ok := projects["items"]; !ok {
			projects["items"] = nil
		}
	}

	for _, key := range positionKeys {
		positions, ok := out[key].([]any)
		if !ok {
			continue
		}
		for _, elem := range positions {
			pos, ok := elem.(map[string]any)
			if !ok {
				continue
			}
			if logo, present := pos["companyLogo"]; present {
				pos["companyLogo"] = cleanLogo(logo)
			}
		}
	}

	return out
}

func deepCopy(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = deepCopy(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = deepCopy(elem)
		}
		return out
	default:
		return v
	}
}
