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

// Package assistant is the boundary to the language-model service. The
// service is treated as an opaque text/object generation capability; no
// retry, streaming, or provider-specific behavior leaks past this package.
package assistant

import (
	"context"

	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

// Recommendation is one contact the model considers relevant to the goal.
type Recommendation struct {
	ContactID string `json:"contactId"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
}

// Completer generates recommendations and outreach drafts. Implementations
// must be safe for concurrent use.
type Completer interface {
	// Recommend picks the contacts relevant to the stated business goal.
	Recommend(ctx context.Context, goal string, contacts []csvimport.Contact) ([]Recommendation, error)
	// Draft writes an outreach message to one contact for the goal.
	Draft(ctx context.Context, goal string, contact csvimport.Contact) (string, error)
}
