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

package scrapin_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconnecthq/reconnect/pkg/scrapin"
)

const profileURL = "https://www.linkedin.com/in/johndoe"

func TestIsProfileURL(t *testing.T) {
	assert.True(t, scrapin.IsProfileURL("https://www.linkedin.com/in/johndoe"))
	assert.True(t, scrapin.IsProfileURL("https://de.linkedin.com/in/johndoe/"))
	assert.False(t, scrapin.IsProfileURL("https://www.linkedin.com/company/acme"))
	assert.False(t, scrapin.IsProfileURL("https://example.com/in/johndoe"))
	assert.False(t, scrapin.IsProfileURL(""))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *scrapin.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := scrapin.NewClient(scrapin.Config{
		BaseURL:      srv.URL,
		CookieHeader: `JSESSIONID="ajax:123"; li_at=secret`,
	})
	require.NoError(t, err)
	return client
}

func TestGetProfile(t *testing.T) {
	var gotRequest *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"firstName": "John", "isOpenToWork": false}`))
	})

	raw, err := client.GetProfile(context.Background(), profileURL)
	require.NoError(t, err)
	assert.Equal(t, "John", raw["firstName"])

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/v1/enrichment/profile", gotRequest.URL.Path)
	assert.Equal(t, profileURL, gotRequest.URL.Query().Get("linkedInUrl"))
	assert.Equal(t, "ajax:123", gotRequest.Header.Get("csrf-token"))

	session, err := gotRequest.Cookie("JSESSIONID")
	require.NoError(t, err)
	assert.Equal(t, "ajax:123", session.Value)
}

func TestGetProfileRejectsNonProfileURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an invalid URL")
	})

	_, err := client.GetProfile(context.Background(), "https://example.com/whatever")
	assert.ErrorIs(t, err, scrapin.ErrInvalidProfileURL)
}

func TestGetProfileStatusMapping(t *testing.T) {
	cases := []struct {
		status   int
		category error
		code     string
	}{
		{401, scrapin.ErrAuthFailed, "AUTH_EXPIRED"},
		{429, scrapin.ErrRateLimited, "RATE_LIMITED"},
		{404, scrapin.ErrProfileNotFound, "NOT_FOUND"},
		{500, scrapin.ErrFetchFailed, "SERVER_ERROR"},
		{503, scrapin.ErrFetchFailed, "SERVER_ERROR"},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.GetProfile(context.Background(), profileURL)
		require.Error(t, err, "status %d", tc.status)
		assert.ErrorIs(t, err, tc.category, "status %d", tc.status)

		var fetchErr *scrapin.FetchError
		require.ErrorAs(t, err, &fetchErr, "status %d", tc.status)
		assert.Equal(t, tc.status, fetchErr.StatusCode)
		assert.Equal(t, tc.code, fetchErr.Code)
	}
}

func TestGetProfileInvalidJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.GetProfile(context.Background(), profileURL)
	assert.ErrorIs(t, err, scrapin.ErrFetchFailed)
}

func TestNewClientInvalidCookieHeader(t *testing.T) {
	_, err := scrapin.NewClient(scrapin.Config{CookieHeader: ";;;"})
	assert.Error(t, err)
}

func TestFetchErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
	})
	_, err := client.GetProfile(context.Background(), profileURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream status 429")
	assert.False(t, errors.Is(err, scrapin.ErrProfileNotFound))
}
