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

package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.mau.fi/util/exerrors"

	"github.com/reconnecthq/reconnect/pkg/csvimport"
)

const defaultModel = "gpt-4o-mini"

type Config struct {
	// BaseURL of an OpenAI-compatible chat completions endpoint.
	BaseURL string
	APIKey  string
	Model   string
}

// Client implements Completer against an OpenAI-compatible API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

var _ Completer = (*Client)(nil)

func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		http:    &http.Client{},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	payload := exerrors.Must(json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		zerolog.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Str("body", string(body)).
			Msg("completion request rejected")
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response had no choices")
	}
	return decoded.Choices[0].Message.Content, nil
}

const recommendSystemPrompt = `You help a professional decide which dormant connections to reach out to.
Given a business goal and a contact list, reply with a JSON array of objects
with keys "contactId", "name" and "reason". Reply with JSON only.`

func (c *Client) Recommend(ctx context.Context, goal string, contacts []csvimport.Contact) ([]Recommendation, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Goal: %s\n\nContacts:\n", goal)
	for _, contact := range contacts {
		fmt.Fprintf(&sb, "- id=%s name=%q company=%q position=%q connected=%q\n",
			contact.ID, contact.DisplayName(), contact.Company, contact.Position, contact.ConnectedOn)
	}

	content, err := c.complete(ctx, recommendSystemPrompt, sb.String())
	if err != nil {
		return nil, err
	}

	var recs []Recommendation
	if err = json.Unmarshal([]byte(stripFences(content)), &recs); err != nil {
		return nil, fmt.Errorf("model returned unparseable recommendations: %w", err)
	}
	return recs, nil
}

const draftSystemPrompt = `You write short, warm re-connection messages for LinkedIn.
Two to four sentences, no subject line, no placeholders left unfilled.`

func (c *Client) Draft(ctx context.Context, goal string, contact csvimport.Contact) (string, error) {
	prompt := fmt.Sprintf("Goal: %s\n\nContact: %s, %s at %s, connected on %s.",
		goal, contact.DisplayName(), contact.Position, contact.Company, contact.ConnectedOn)
	return c.complete(ctx, draftSystemPrompt, prompt)
}

// stripFences removes a markdown code fence if the model wrapped its JSON
// in one despite being told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
