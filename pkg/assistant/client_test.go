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

package assistant_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconnecthq/reconnect/pkg/assistant"
	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

func TestRecommend(t *testing.T) {
	payload := `[{"contactId": "c1", "name": "John Doe", "reason": "fintech background"}]`
	var gotAuth string
	var gotPath string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		var err error
		gotBody, err = json.Marshal(decodeChatRequest(t, r))
		require.NoError(t, err)
		writeChatResponse(w, payload)
	}))
	t.Cleanup(srv.Close)

	client := assistant.NewClient(assistant.Config{BaseURL: srv.URL, APIKey: "sk-test", Model: "test-model"})
	contacts := []csvimport.Contact{{ID: "c1", FirstName: "John", LastName: "Doe", Company: "Acme"}}

	recs, err := client.Recommend(context.Background(), "find fintech intros", contacts)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "c1", recs[0].ContactID)
	assert.Equal(t, "John Doe", recs[0].Name)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/chat/completions", gotPath)
	assert.Contains(t, string(gotBody), "test-model")
	assert.Contains(t, string(gotBody), "id=c1")
	assert.Contains(t, string(gotBody), "find fintech intros")
}

func TestRecommendStripsCodeFence(t *testing.T) {
	payload := "```json\n[{\"contactId\": \"c1\", \"name\": \"John\", \"reason\": \"x\"}]\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatResponse(w, payload)
	}))
	t.Cleanup(srv.Close)

	client := assistant.NewClient(assistant.Config{BaseURL: srv.URL, APIKey: "sk-test"})
	recs, err := client.Recommend(context.Background(), "goal", nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "c1", recs[0].ContactID)
}

func TestRecommendUnparseableModelOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatResponse(w, "I'd recommend reaching out to John.")
	}))
	t.Cleanup(srv.Close)

	client := assistant.NewClient(assistant.Config{BaseURL: srv.URL, APIKey: "sk-test"})
	_, err := client.Recommend(context.Background(), "goal", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable")
}

func TestRecommendUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := assistant.NewClient(assistant.Config{BaseURL: srv.URL, APIKey: "sk-test"})
	_, err := client.Recommend(context.Background(), "goal", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeChatResponse(w, "Hi John, it has been a while since we worked together at Acme.")
	}))
	t.Cleanup(srv.Close)

	client := assistant.NewClient(assistant.Config{BaseURL: srv.URL, APIKey: "sk-test"})
	message, err := client.Draft(context.Background(), "reconnect about roles", csvimport.Contact{
		ID: "c1", FirstName: "John", Company: "Acme", Position: "Engineer",
	})
	require.NoError(t, err)
	assert.Contains(t, message, "Hi John")
}

func decodeChatRequest(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func writeChatResponse(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"choices": [{"message": {"role": "assistant", "content": %s}}]}`, mustJSON(content))
}

func mustJSON(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
