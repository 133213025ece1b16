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

package schema

import (
	"fmt"
	"strings"
)

// Path locates a field inside a nested value. Elements are strings for
// object keys and ints for array indices.
type Path []any

func (p Path) Key(key string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, key)
}

func (p Path) Index(i int) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, i)
}

func (p Path) String() string {
	var sb strings.Builder
	for _, elem := range p {
		switch e := elem.(type) {
		case int:
			fmt.Fprintf(&sb, "[%d]", e)
		default:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			fmt.Fprintf(&sb, "%v", e)
		}
	}
	return sb.String()
}

// Issue codes. These are part of the wire contract consumed by the UI.
const (
	CodeRequired     = "required"
	CodeInvalidType  = "invalid_type"
	CodeInvalidUnion = "invalid_union"
	CodeTooShort     = "too_short"
	CodeTooSmall     = "too_small"
)

// Issue is a single validation failure. A failed validation produces the
// complete list of issues found in the input, never just the first one.
type Issue struct {
	Path    Path   `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s at %q: %s", i.Code, i.Path.String(), i.Message)
}

func newIssue(path Path, code, format string, args ...any) Issue {
	return Issue{Path: path, Code: code, Message: fmt.Sprintf(format, args...)}
}
