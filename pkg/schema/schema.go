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

// Package schema implements declarative validation of untyped JSON values.
//
// A Schema describes the expected shape of a value and collects every
// mismatch it finds instead of stopping at the first one. Check may also
// return a normalized replacement for the value it was given, which is how
// tolerant repairs (for example coercing malformed URLs to null) are
// expressed without a separate pass.
package schema

import (
	"strings"
)

// Schema validates an untyped value and returns its normalized form plus
// any issues found. Implementations must never panic on structurally
// navigable input and must not mutate the input value.
type Schema interface {
	Check(path Path, v any) (any, []Issue)
}

// Func adapts a plain function into a Schema.
type Func func(path Path, v any) (any, []Issue)

func (f Func) Check(path Path, v any) (any, []Issue) {
	return f(path, v)
}

// Validate runs s against the root value.
func Validate(s Schema, v any) (any, []Issue) {
	return s.Check(nil, v)
}

// String accepts any string.
func String() Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		if _, ok := v.(string); !ok {
			return v, []Issue{newIssue(path, CodeInvalidType, "expected string, got %T", v)}
		}
		return v, nil
	})
}

// MinString accepts a string of at least min characters after trimming.
func MinString(min int) Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		s, ok := v.(string)
		if !ok {
			return v, []Issue{newIssue(path, CodeInvalidType, "expected string, got %T", v)}
		}
		if len(strings.TrimSpace(s)) < min {
			return v, []Issue{newIssue(path, CodeTooShort, "expected at least %d characters", min)}
		}
		return v, nil
	})
}

// Bool accepts exactly a boolean. No coercion: "true" is not true.
func Bool() Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		if _, ok := v.(bool); !ok {
			return v, []Issue{newIssue(path, CodeInvalidType, "expected boolean, got %T", v)}
		}
		return v, nil
	})
}

// Number accepts any JSON number. Values defaulted in Go code may arrive as
// int rather than float64, so both are accepted.
func Number() Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		switch v.(type) {
		case float64, float32, int, int64:
			return v, nil
		}
		return v, []Issue{newIssue(path, CodeInvalidType, "expected number, got %T", v)}
	})
}

// Any accepts everything, including null.
func Any() Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		return v, nil
	})
}

// Nullable accepts null, otherwise defers to inner.
func Nullable(inner Schema) Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		if v == nil {
			return nil, nil
		}
		return inner.Check(path, v)
	})
}

// ArrayOf accepts an array whose every element matches item. Element issues
// are collected across the whole array.
func ArrayOf(item Schema) Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		arr, ok := v.([]any)
		if !ok {
			return v, []Issue{newIssue(path, CodeInvalidType, "expected array, got %T", v)}
		}
		var issues []Issue
		normalized := make([]any, len(arr))
		for i, elem := range arr {
			norm, elemIssues := item.Check(path.Index(i), elem)
			normalized[i] = norm
			issues = append(issues, elemIssues...)
		}
		return normalized, issues
	})
}

// MinArray is ArrayOf with a minimum element count.
func MinArray(min int, item Schema) Schema {
	inner := ArrayOf(item)
	return Func(func(path Path, v any) (any, []Issue) {
		norm, issues := inner.Check(path, v)
		if arr, ok := norm.([]any); ok && len(arr) < min {
			issues = append(issues, newIssue(path, CodeTooSmall, "expected at least %d elements", min))
		}
		return norm, issues
	})
}

// MapOf accepts an object whose every value matches value. An empty object
// is valid.
func MapOf(value Schema) Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		m, ok := v.(map[string]any)
		if !ok {
			return v, []Issue{newIssue(path, CodeInvalidType, "expected object, got %T", v)}
		}
		var issues []Issue
		normalized := make(map[string]any, len(m))
		for key, elem := range m {
			norm, elemIssues := value.Check(path.Key(key), elem)
			normalized[key] = norm
			issues = append(issues, elemIssues...)
		}
		return normalized, issues
	})
}

// OneOf accepts a value matching any of the options, trying them in order.
// The first option that matches cleanly wins and its normalized value is
// returned. If none match, a single invalid_union issue is reported for the
// whole value rather than one issue per failed option.
func OneOf(description string, options ...Schema) Schema {
	return Func(func(path Path, v any) (any, []Issue) {
		for _, opt := range options {
			norm, issues := opt.Check(path, v)
			if len(issues) == 0 {
				return norm, nil
			}
		}
		return v, []Issue{newIssue(path, CodeInvalidUnion, "expected %s", description)}
	})
}

// Field is one named member of an Object schema.
type Field struct {
	Name     string
	Schema   Schema
	Required bool
}

type objectSchema struct {
	fields []Field
}

// Object accepts a JSON object with the given fields. Optional fields may be
// absent entirely; Required only asserts presence, null-handling belongs to
// the field's own schema. Keys not named by any field pass through to the
// normalized output unchanged so that upstream additions survive a round
// trip instead of being dropped.
func Object(fields ...Field) Schema {
	return &objectSchema{fields: fields}
}

func (o *objectSchema) Check(path Path, v any) (any, []Issue) {
	m, ok := v.(map[string]any)
	if !ok {
		return v, []Issue{newIssue(path, CodeInvalidType, "expected object, got %T", v)}
	}

	normalized := make(map[string]any, len(m))
	declared := make(map[string]struct{}, len(o.fields))
	var issues []Issue

	for _, field := range o.fields {
		declared[field.Name] = struct{}{}
		value, present := m[field.Name]
		if !present {
			if field.Required {
				issues = append(issues, newIssue(path.Key(field.Name), CodeRequired, "missing required field"))
			}
			continue
		}
		norm, fieldIssues := field.Schema.Check(path.Key(field.Name), value)
		normalized[field.Name] = norm
		issues = append(issues, fieldIssues...)
	}

	for key, value := range m {
		if _, ok := declared[key]; !ok {
			normalized[key] = value
		}
	}

	return normalized, issues
}
