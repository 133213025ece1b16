package scrapin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.mau.fi/util/exerrors"
)

func (c *Client) getCSRFToken() string {
	return c.jar.GetCookie(cookieJSESSIONID)
}

type apiRequest struct {
	parseErr error

	method string
	url    *url.URL
	header http.Header
	params url.Values
	body   io.Reader

	client *Client
}

func (c *Client) newAPIRequest(method, urlStr string) *apiRequest {
	ar := apiRequest{header: http.Header{}, method: method, client: c}
	ar.url, ar.parseErr = url.Parse(urlStr)
	ar.params = url.Values{}

	// The scraping backend rejects non-browser user agents.
	ar.header.Add("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
	ar.header.Add("Accept-Language", "en-US,en;q=0.9")
	ar.header.Add("Accept", contentTypeJSON)

	return &ar
}

func (a *apiRequest) WithHeader(key, value string) *apiRequest {
	a.header.Set(key, value)
	return a
}

func (a *apiRequest) WithParam(key, value string) *apiRequest {
	a.params.Add(key, value)
	return a
}

// WithCSRF mirrors the session cookie into the csrf-token header the way
// the upstream web client does.
func (a *apiRequest) WithCSRF() *apiRequest {
	return a.WithHeader("csrf-token", a.client.getCSRFToken())
}

func (a *apiRequest) WithJSONPayload(payload any) *apiRequest {
	a.body = bytes.NewReader(exerrors.Must(json.Marshal(payload)))
	return a.WithContentType(contentTypeJSON)
}

func (a *apiRequest) WithContentType(contentType string) *apiRequest {
	return a.WithHeader("content-type", contentType)
}

func (a *apiRequest) Do(ctx context.Context) (*http.Response, error) {
	if a.parseErr != nil {
		return nil, a.parseErr
	}
	a.url.RawQuery = a.params.Encode()

	req, err := http.NewRequestWithContext(ctx, a.method, a.url.String(), a.body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request %s %s: %w", a.method, a.url, err)
	}
	req.Header = a.header
	return a.client.http.Do(req)
}
