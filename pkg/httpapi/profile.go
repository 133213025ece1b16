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
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"
	"go.mau.fi/util/exhttp"

	"github.com/reconnecthq/reconnect/pkg/profile"
	"github.com/reconnecthq/reconnect/pkg/schema"
	"github.com/reconnecthq/reconnect/pkg/scrapin"
)

// profileCacheControl lets the fronting HTTP cache serve a validated
// profile for an hour and revalidate in the background for a day. The
// pipeline is deterministic for identical input, so cached entries cannot
// diverge from a fresh computation.
const profileCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// validationFailure is the stable wire shape for a profile that failed
// validation. RawData carries the complete preprocessed object so a schema
// gap can be diagnosed and patched from the response alone.
type validationFailure struct {
	Error   string         `json:"error"`
	Details []schema.Issue `json:"details"`
	RawData map[string]any `json:"rawData"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profileURL := r.URL.Query().Get("url")
	if !scrapin.IsProfileURL(profileURL) {
		writeError(w, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	raw, err := s.profiles.GetProfile(r.Context(), profileURL)
	if err != nil {
		s.writeFetchError(w, r, err)
		return
	}

	typed, preprocessed, issues := profile.Pipeline(raw)
	if len(issues) > 0 {
		hlog.FromRequest(r).Warn().
			Str("profile_url", profileURL).
			Int("issue_count", len(issues)).
			Msg("profile failed validation")
		exhttp.WriteJSONResponse(w, http.StatusInternalServerError, validationFailure{
			Error:   "Validation failed",
			Details: issues,
			RawData: preprocessed,
		})
		return
	}

	w.Header().Set("Cache-Control", profileCacheControl)
	exhttp.WriteJSONResponse(w, http.StatusOK, typed)
}

func (s *Server) writeFetchError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("profile fetch failed")
	switch {
	case errors.Is(err, scrapin.ErrInvalidProfileURL):
		writeError(w, http.StatusBadRequest, "Invalid request parameters")
	case errors.Is(err, scrapin.ErrAuthFailed):
		writeError(w, http.StatusUnauthorized, "Authentication with the profile service failed")
	case errors.Is(err, scrapin.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "Profile service rate limit reached, try again later")
	case errors.Is(err, scrapin.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "Profile not found")
	default:
		writeError(w, http.StatusBadGateway, "Failed to fetch profile")
	}
}
