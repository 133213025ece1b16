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

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"go.mau.fi/util/exerrors"
	"go.mau.fi/util/exhttp"

	"github.com/reconnecthq/reconnect/pkg/csvimport"
	"github.com/reconnecthq/reconnect/pkg/schema"
)

// The assistant request bodies are fixed-field objects validated by the
// same schema mechanism as profiles, at far lower complexity.
var recommendRequestSchema = schema.Object(
	schema.Field{Name: "goal", Schema: schema.MinString(10), Required: true},
	schema.Field{Name: "contacts", Schema: schema.MinArray(1, schema.Any()), Required: true},
)

var draftRequestSchema = schema.Object(
	schema.Field{Name: "goal", Schema: schema.MinString(10), Required: true},
	schema.Field{Name: "contact", Schema: schema.MapOf(schema.Any()), Required: true},
)

// decodeValidated decodes the request body, validates it against sc, and on
// success re-decodes the normalized object into out.
func decodeValidated(w http.ResponseWriter, r *http.Request, sc schema.Schema, out any) bool {
	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}

	normalized, issues := schema.Validate(sc, body)
	if len(issues) > 0 {
		exhttp.WriteJSONResponse(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request parameters",
			Details: issues,
		})
		return false
	}

	data := exerrors.Must(json.Marshal(normalized))
	if err := json.Unmarshal(data, out); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request parameters")
		return false
	}
	return true
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if s.completer == nil {
		writeError(w, http.StatusServiceUnavailable, "Assistant is not configured")
		return
	}

	var req struct {
		Goal     string              `json:"goal"`
		Contacts []csvimport.Contact `json:"contacts"`
	}
	if !decodeValidated(w, r, recommendRequestSchema, &req) {
		return
	}

	recs, err := s.completer.Recommend(r.Context(), req.Goal, req.Contacts)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("recommendation request failed")
		writeError(w, http.StatusBadGateway, "Assistant request failed")
		return
	}
	exhttp.WriteJSONResponse(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	if s.completer == nil {
		writeError(w, http.StatusServiceUnavailable, "Assistant is not configured")
		return
	}

	var req struct {
		Goal    string            `json:"goal"`
		Contact csvimport.Contact `json:"contact"`
	}
	if !decodeValidated(w, r, draftRequestSchema, &req) {
		return
	}

	message, err := s.completer.Draft(r.Context(), req.Goal, req.Contact)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("draft request failed")
		writeError(w, http.StatusBadGateway, "Assistant request failed")
		return
	}
	exhttp.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": message})
}
