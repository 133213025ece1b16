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

import (
	"encoding/json"

	"go.mau.fi/util/exerrors"

	"github.com/reconnecthq/reconnect/pkg/schema"
)

// Validate checks a preprocessed profile object against the profile schema.
// It returns either the typed profile and no issues, or nil and every issue
// found in the input. It never panics for malformed input: a non-object top
// level (null, string, number) is reported as an issue like any other.
//
// Validation collects all issues in one pass instead of stopping at the
// first. A rejected response usually reveals several schema gaps at once,
// and each gap is a discovery signal for patching the schema, so hiding all
// but the first would slow that loop down.
func Validate(raw any) (*Profile, []schema.Issue) {
	normalized, issues := schema.Validate(profileSchema, raw)
	if len(issues) > 0 {
		return nil, issues
	}

	// The normalized value is schema-clean, so re-encoding it into the
	// typed struct cannot fail.
	data := exerrors.Must(json.Marshal(normalized))
	var p Profile
	exerrors.PanicIfNotNil(json.Unmarshal(data, &p))
	return &p, nil
}

// Pipeline runs the full normalization pipeline on a raw decoded API
// response: Preprocess then Validate.
func Pipeline(raw map[string]any) (*Profile, map[string]any, []schema.Issue) {
	pre := Preprocess(raw)
	typed, issues := Validate(pre)
	return typed, pre, issues
}
