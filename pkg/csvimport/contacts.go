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

package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Contact is one row of a connections export after normalization. ID is
// generated at parse time and is only unique within one upload session; it
// is not a stable identity for the person.
type Contact struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	URL          string `json:"url"`
	EmailAddress string `json:"emailAddress"`
	Company      string `json:"company"`
	Position     string `json:"position"`
	ConnectedOn  string `json:"connectedOn"`
}

// DisplayName joins the name parts, falling back to the company.
func (c Contact) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name == "" {
		return c.Company
	}
	return name
}

// headerAliases maps lowercased, trimmed source headers to canonical field
// names. Several generations of the export (and hand-edited files) spell
// these differently; headers not listed here pass through unchanged so new
// export columns are not silently dropped.
var headerAliases = map[string]string{
	"first name": "firstName",
	"firstname":  "firstName",
	"first_name": "firstName",

	"last name": "lastName",
	"lastname":  "lastName",
	"last_name": "lastName",

	"url":         "url",
	"profile url": "url",
	"linkedin":    "url",

	"email address": "emailAddress",
	"email":         "emailAddress",
	"emailaddress":  "emailAddress",
	"email_address": "emailAddress",
	"e-mail":        "emailAddress",

	"company":      "company",
	"organization": "company",
	"organisation": "company",

	"position":  "position",
	"title":     "position",
	"job title": "position",

	"connected on": "connectedOn",
	"connectedon":  "connectedOn",
	"connected_on": "connectedOn",
}

// CanonicalHeader resolves a raw header cell to its canonical field name.
func CanonicalHeader(header string) string {
	trimmed := strings.TrimSpace(header)
	if canonical, ok := headerAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// nullTokens are literal strings that mean "no value" in exports that went
// through a spreadsheet or another tool on the way here.
var nullTokens = map[string]struct{}{
	"null":      {},
	"undefined": {},
	"n/a":       {},
}

func cleanField(value string) string {
	value = strings.TrimSpace(value)
	if _, isNull := nullTokens[strings.ToLower(value)]; isNull {
		return ""
	}
	return value
}

// ImportResult is the outcome of one CSV upload.
type ImportResult struct {
	Contacts []Contact `json:"contacts"`
	// Skipped counts rows dropped for lacking identifying data. Trailing
	// blank lines in exports make nonzero values entirely normal.
	Skipped int `json:"skipped"`
}

// ErrNoHeader means the input had no readable header row at all.
var ErrNoHeader = errors.New("csvimport: no header row")

// ParseContacts reads a connections export and returns the retained
// contacts plus the skipped-row count. A malformed individual row is
// skipped, never fatal; only unreadable input (no header row) returns an
// error.
func ParseContacts(r io.Reader, cfg HeaderScoreConfig) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(LocateHeader(string(data), cfg)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rawHeader, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}
	header := make([]string, len(rawHeader))
	for i, h := range rawHeader {
		header[i] = CanonicalHeader(h)
	}

	result := &ImportResult{Contacts: []Contact{}}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One damaged row must not abort the upload.
			result.Skipped++
			continue
		}

		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = cleanField(row[i])
			} else {
				fields[name] = ""
			}
		}

		contact, ok := buildContact(fields)
		if !ok {
			result.Skipped++
			continue
		}
		result.Contacts = append(result.Contacts, contact)
	}

	return result, nil
}

// buildContact applies the retention rule: a row survives only if at least
// one of firstName, lastName, company is non-empty after cleaning.
func buildContact(fields map[string]string) (Contact, bool) {
	contact := Contact{
		FirstName:    fields["firstName"],
		LastName:     fields["lastName"],
		URL:          fields["url"],
		EmailAddress: fields["emailAddress"],
		Company:      fields["company"],
		Position:     fields["position"],
		ConnectedOn:  fields["connectedOn"],
	}
	if contact.FirstName == "" && contact.LastName == "" && contact.Company == "" {
		return Contact{}, false
	}
	contact.ID = uuid.NewString()
	return contact, true
}
