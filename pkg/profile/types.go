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

// Package profile turns the scraping API's loosely shaped profile JSON into
// a typed, render-safe representation. The pipeline is Preprocess followed
// by Validate; both are pure and deterministic.
package profile

import (
	"encoding/json"
	"fmt"
)

// Profile is one contact's public profile after preprocessing and
// validation. Nil slices mean the upstream API omitted or nulled the
// collection, which is distinct from an empty one.
type Profile struct {
	URN      string `json:"urn,omitempty"`
	ID       string `json:"id,omitempty"`
	Username string `json:"username,omitempty"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Headline  string `json:"headline,omitempty"`
	Summary   string `json:"summary,omitempty"`

	MultiLocaleFirstName map[string]string `json:"multiLocaleFirstName,omitempty"`
	MultiLocaleLastName  map[string]string `json:"multiLocaleLastName,omitempty"`
	MultiLocaleHeadline  map[string]string `json:"multiLocaleHeadline,omitempty"`

	// ProfilePicture is nil when the API returned nothing renderable.
	ProfilePicture *string `json:"profilePicture"`

	IsOpenToWork bool `json:"isOpenToWork"`
	IsHiring     bool `json:"isHiring"`
	IsCreator    bool `json:"isCreator,omitempty"`
	IsPremium    bool `json:"isPremium,omitempty"`

	GivenRecommendationCount    int `json:"givenRecommendationCount"`
	ReceivedRecommendationCount int `json:"receivedRecommendationCount"`

	GivenRecommendation    []json.RawMessage `json:"givenRecommendation"`
	ReceivedRecommendation []json.RawMessage `json:"receivedRecommendation"`

	Languages      *LanguageList   `json:"languages"`
	Skills         []Skill         `json:"skills"`
	Courses        []Course        `json:"courses"`
	Certifications []Certification `json:"certifications"`
	Honors         []Honor         `json:"honors"`
	Volunteering   []Volunteer     `json:"volunteering"`

	Projects Projects `json:"projects"`

	Geo *Geo `json:"geo,omitempty"`

	Position      []Position  `json:"position,omitempty"`
	FullPositions []Position  `json:"fullPositions,omitempty"`
	Educations    []Education `json:"educations,omitempty"`
}

// Date is a {year, month, day} triple straight from the API. Zero means
// unknown; no calendar validity is implied (day 31 in a 30-day month passes
// through untouched because the system only displays these values).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Geo is the profile's location block. Every field is optional.
type Geo struct {
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Full        string `json:"full,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

// Position is one employment entry. Every field is optional; exec profiles
// in particular have been observed with nothing but a title.
type Position struct {
	CompanyName            string `json:"companyName,omitempty"`
	CompanyUsername        string `json:"companyUsername,omitempty"`
	CompanyIndustry        string `json:"companyIndustry,omitempty"`
	CompanyStaffCountRange string `json:"companyStaffCountRange,omitempty"`

	// CompanyURL is nil when the API sent nothing or an unparseable URL.
	CompanyURL *string `json:"companyURL"`
	// CompanyLogo is "" when absent or unparseable; the UI uses empty
	// string as the no-image sentinel for img sources.
	CompanyLogo string `json:"companyLogo,omitempty"`

	Title          string `json:"title,omitempty"`
	Location       string `json:"location,omitempty"`
	Description    string `json:"description,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`

	MultiLocaleTitle       map[string]string `json:"multiLocaleTitle,omitempty"`
	MultiLocaleCompanyName map[string]string `json:"multiLocaleCompanyName,omitempty"`

	Start *Date `json:"start,omitempty"`
	End   *Date `json:"end,omitempty"`
}

// Education is one education entry.
type Education struct {
	SchoolName   string  `json:"schoolName,omitempty"`
	SchoolID     string  `json:"schoolId,omitempty"`
	Degree       string  `json:"degree,omitempty"`
	FieldOfStudy string  `json:"fieldOfStudy,omitempty"`
	Grade        string  `json:"grade,omitempty"`
	Description  string  `json:"description,omitempty"`
	Activities   string  `json:"activities,omitempty"`
	URL          *string `json:"url"`

	Start *Date `json:"start,omitempty"`
	End   *Date `json:"end,omitempty"`
}

type Skill struct {
	Name                  string `json:"name,omitempty"`
	PassedSkillAssessment bool   `json:"passedSkillAssessment,omitempty"`
	EndorsementsCount     int    `json:"endorsementsCount,omitempty"`
}

type Course struct {
	Name   string `json:"name,omitempty"`
	Number string `json:"number,omitempty"`
}

type Certification struct {
	Name      string `json:"name,omitempty"`
	Authority string `json:"authority,omitempty"`
	Start     *Date  `json:"start,omitempty"`
	End       *Date  `json:"end,omitempty"`
}

type Honor struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	IssuedOn    *Date  `json:"issuedOn,omitempty"`
}

type Volunteer struct {
	Title       string `json:"title,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Description string `json:"description,omitempty"`
	Start       *Date  `json:"start,omitempty"`
	End         *Date  `json:"end,omitempty"`
}

// Projects groups the profile's project entries. Total comes straight from
// the API and is never reconciled against len(Items): the API routinely
// truncates the item list while reporting the full count.
type Projects struct {
	Total int       `json:"total"`
	Items []Project `json:"items"`
}

type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Start       *Date  `json:"start,omitempty"`
	End         *Date  `json:"end,omitempty"`
}

// LanguageEntry is the structured variant of a language item.
type LanguageEntry struct {
	Name        string `json:"name,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// LanguageList absorbs the API's shape drift for the languages collection:
// some profiles carry plain strings, others structured objects. Exactly one
// of Names and Entries is populated.
type LanguageList struct {
	Names   []string
	Entries []LanguageEntry
}

var _ json.Marshaler = (*LanguageList)(nil)
var _ json.Unmarshaler = (*LanguageList)(nil)

func (l *LanguageList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = LanguageList{}
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*l = LanguageList{Names: names}
		return nil
	}
	var entries []LanguageEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("languages is neither a string list nor an object list: %w", err)
	}
	*l = LanguageList{Entries: entries}
	return nil
}

func (l LanguageList) MarshalJSON() ([]byte, error) {
	if l.Entries != nil {
		return json.Marshal(l.Entries)
	}
	return json.Marshal(l.Names)
}

// Len is the number of language items regardless of representation.
func (l *LanguageList) Len() int {
	if l == nil {
		return 0
	}
	if l.Entries != nil {
		return len(l.Entries)
	}
	return len(l.Names)
}
