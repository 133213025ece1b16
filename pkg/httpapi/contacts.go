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
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"
	"go.mau.fi/util/exhttp"

	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

const maxUploadBytes = 16 << 20

// importResponse is the upload outcome shown to the user. Message carries
// the human-facing notification text; tests pin it as part of the contract.
type importResponse struct {
	Contacts []csvimport.Contact `json:"contacts"`
	Imported int                 `json:"imported"`
	Skipped  int                 `json:"skipped"`
	Message  string              `json:"message"`
}

func (s *Server) handleImportContacts(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file upload")
		return
	}
	defer file.Close()

	// Rejected on the filename alone, before any parse attempt.
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		writeError(w, http.StatusBadRequest, "Only .csv files are supported")
		return
	}

	result, err := csvimport.ParseContacts(file, s.csvCfg)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Str("filename", header.Filename).Msg("csv parse failed")
		exhttp.WriteJSONResponse(w, http.StatusUnprocessableEntity, importResponse{
			Contacts: []csvimport.Contact{},
			Message:  "Failed to parse CSV file",
		})
		return
	}

	resp := importResponse{
		Contacts: result.Contacts,
		Imported: len(result.Contacts),
		Skipped:  result.Skipped,
	}
	switch {
	case len(result.Contacts) == 0:
		resp.Message = "No valid contacts found in the file"
	case result.Skipped > 0:
		resp.Message = fmt.Sprintf("Imported %d contacts (%d rows skipped)", resp.Imported, resp.Skipped)
	default:
		resp.Message = fmt.Sprintf("Imported %d contacts", resp.Imported)
	}

	hlog.FromRequest(r).Info().
		Str("filename", header.Filename).
		Int("imported", resp.Imported).
		Int("skipped", resp.Skipped).
		Msg("contacts imported")
	exhttp.WriteJSONResponse(w, http.StatusOK, resp)
}
