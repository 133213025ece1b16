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
	"github.com/reconnecthq/reconnect/pkg/schema"
)

// urlOrNull accepts null or a string and degrades non-URL strings to null
// via CleanURL. Anything else is a type error.
func urlOrNull() schema.Schema {
	return schema.Func(func(path schema.Path, v any) (any, []schema.Issue) {
		switch s := v.(type) {
		case nil:
			return nil, nil
		case string:
			if cleaned := CleanURL(s); cleaned != nil {
				return *cleaned, nil
			}
			return nil, nil
		default:
			return v, []schema.Issue{{
				Path:    path,
				Code:    schema.CodeInvalidType,
				Message: "expected string or null",
			}}
		}
	})
}

func opt(name string, s schema.Schema) schema.Field {
	return schema.Field{Name: name, Schema: s}
}

func req(name string, s schema.Schema) schema.Field {
	return schema.Field{Name: name, Schema: s, Required: true}
}

// Declarative profile shape. Field policy, in short: identity strings are
// optional; isOpenToWork/isHiring and the recommendation counts are required
// with strict types so upstream API drift surfaces loudly; collections are
// nullable; URL fields degrade rather than reject. See the package tests for
// the observed API shapes that drove each choice.
var profileSchema = func() schema.Schema {
	localeMap := schema.MapOf(schema.String())

	dateSchema := schema.Nullable(schema.Object(
		req("year", schema.Number()),
		req("month", schema.Number()),
		req("day", schema.Number()),
	))

	positionSchema := schema.Object(
		opt("companyName", schema.String()),
		opt("companyUsername", schema.String()),
		opt("companyIndustry", schema.String()),
		opt("companyStaffCountRange", schema.String()),
		opt("companyURL", urlOrNull()),
		opt("companyLogo", schema.String()),
		opt("title", schema.String()),
		opt("location", schema.String()),
		opt("description", schema.String()),
		opt("employmentType", schema.String()),
		opt("multiLocaleTitle", localeMap),
		opt("multiLocaleCompanyName", localeMap),
		opt("start", dateSchema),
		opt("end", dateSchema),
	)

	educationSchema := schema.Object(
		opt("schoolName", schema.String()),
		opt("schoolId", schema.String()),
		opt("degree", schema.String()),
		opt("fieldOfStudy", schema.String()),
		opt("grade", schema.String()),
		opt("description", schema.String()),
		opt("activities", schema.String()),
		opt("url", urlOrNull()),
		opt("start", dateSchema),
		opt("end", dateSchema),
	)

	skillSchema := schema.Object(
		opt("name", schema.String()),
		opt("passedSkillAssessment", schema.Bool()),
		opt("endorsementsCount", schema.Number()),
	)

	languageEntrySchema := schema.Object(
		opt("name", schema.String()),
		opt("proficiency", schema.String()),
	)

	// Some profiles return plain strings here, others structured objects.
	languagesSchema := schema.Nullable(schema.OneOf(
		"array of strings or array of language objects",
		schema.ArrayOf(schema.String()),
		schema.ArrayOf(languageEntrySchema),
	))

	courseSchema := schema.Object(
		opt("name", schema.String()),
		opt("number", schema.String()),
	)

	certificationSchema := schema.Object(
		opt("name", schema.String()),
		opt("authority", schema.String()),
		opt("start", dateSchema),
		opt("end", dateSchema),
	)

	honorSchema := schema.Object(
		opt("title", schema.String()),
		opt("description", schema.String()),
		opt("issuer", schema.String()),
		opt("issuedOn", dateSchema),
	)

	volunteerSchema := schema.Object(
		opt("title", schema.String()),
		opt("companyName", schema.String()),
		opt("description", schema.String()),
		opt("start", dateSchema),
		opt("end", dateSchema),
	)

	projectSchema := schema.Object(
		opt("title", schema.String()),
		opt("description", schema.String()),
		opt("start", dateSchema),
		opt("end", dateSchema),
	)

	// total and items are intentionally not cross-checked; the API reports
	// full totals alongside truncated item lists.
	projectsSchema := schema.Object(
		req("total", schema.Number()),
		opt("items", schema.Nullable(schema.ArrayOf(projectSchema))),
	)

	geoSchema := schema.Object(
		opt("country", schema.String()),
		opt("city", schema.String()),
		opt("full", schema.String()),
		opt("countryCode", schema.String()),
	)

	return schema.Object(
		opt("urn", schema.String()),
		opt("id", schema.String()),
		opt("username", schema.String()),
		opt("firstName", schema.String()),
		opt("lastName", schema.String()),
		opt("headline", schema.String()),
		opt("summary", schema.String()),
		opt("multiLocaleFirstName", localeMap),
		opt("multiLocaleLastName", localeMap),
		opt("multiLocaleHeadline", localeMap),
		opt("profilePicture", urlOrNull()),
		req("isOpenToWork", schema.Bool()),
		req("isHiring", schema.Bool()),
		opt("isCreator", schema.Bool()),
		opt("isPremium", schema.Bool()),
		req("givenRecommendationCount", schema.Number()),
		req("receivedRecommendationCount", schema.Number()),
		opt("givenRecommendation", schema.Nullable(schema.ArrayOf(schema.Any()))),
		opt("receivedRecommendation", schema.Nullable(schema.ArrayOf(schema.Any()))),
		opt("languages", languagesSchema),
		opt("skills", schema.Nullable(schema.ArrayOf(skillSchema))),
		opt("courses", schema.Nullable(schema.ArrayOf(courseSchema))),
		opt("certifications", schema.Nullable(schema.ArrayOf(certificationSchema))),
		opt("honors", schema.Nullable(schema.ArrayOf(honorSchema))),
		opt("volunteering", schema.Nullable(schema.ArrayOf(volunteerSchema))),
		opt("projects", projectsSchema),
		opt("geo", geoSchema),
		opt("position", schema.ArrayOf(positionSchema)),
		opt("fullPositions", schema.ArrayOf(positionSchema)),
		opt("educations", schema.ArrayOf(educationSchema)),
	)
}()
