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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconnecthq/reconnect/pkg/scrapin"
)

func TestJarFromCookieHeader(t *testing.T) {
	jar, err := scrapin.NewJarFromCookieHeader(`JSESSIONID="ajax:1234567890"; li_at=secret`)
	require.NoError(t, err)

	assert.Equal(t, "ajax:1234567890", jar.GetCookie("JSESSIONID"))
	assert.Equal(t, "secret", jar.GetCookie("li_at"))
	assert.Empty(t, jar.GetCookie("missing"))
	assert.Len(t, jar.Cookies(nil), 2)
}

func TestJarFromCookieHeaderInvalid(t *testing.T) {
	_, err := scrapin.NewJarFromCookieHeader(";;;")
	assert.Error(t, err)
}

func TestJarSetCookiesMerges(t *testing.T) {
	jar, err := scrapin.NewJarFromCookieHeader("a=1; b=2")
	require.NoError(t, err)

	jar.SetCookies(nil, []*http.Cookie{
		{Name: "b", Value: "changed"},
		{Name: "c", Value: "3"},
	})

	assert.Equal(t, "1", jar.GetCookie("a"))
	assert.Equal(t, "changed", jar.GetCookie("b"))
	assert.Equal(t, "3", jar.GetCookie("c"))
	assert.Len(t, jar.Cookies(nil), 3)
}

func TestJarClear(t *testing.T) {
	jar, err := scrapin.NewJarFromCookieHeader("a=1")
	require.NoError(t, err)

	jar.Clear()
	assert.Empty(t, jar.Cookies(nil))
	assert.Empty(t, jar.GetCookie("a"))
}

func TestJarJSONRoundTrip(t *testing.T) {
	jar, err := scrapin.NewJarFromCookieHeader("li_at=secret")
	require.NoError(t, err)

	data, err := json.Marshal(jar)
	require.NoError(t, err)
	assert.Equal(t, `"li_at=secret"`, string(data))

	restored := scrapin.NewEmptyCookieJar()
	require.NoError(t, json.Unmarshal(data, restored))
	assert.Equal(t, "secret", restored.GetCookie("li_at"))
}
