package partnersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an unauthenticated request.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// postJSON sends v as a JSON body without authentication and decodes the
// expected status into target.
func (c *Client) postJSON(ctx context.Context, path string, v, target any, expectedStatus int) error {
	body, headers, err := jsonBody(v)
	if err != nil {
		return err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, path, body, headers)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

// postStatus sends v as a JSON body without authentication and expects a
// response without content.
func (c *Client) postStatus(ctx context.Context, path string, v any, expectedStatus int) error {
	body, headers, err := jsonBody(v)
	if err != nil {
		return err
	}
	resp, err := c.doRequest(ctx, http.MethodPost, path, body, headers)
	if err != nil {
		return err
	}
	return checkStatus(resp, expectedStatus)
}

// postForm sends an OAuth2 form request.
func (c *Client) postForm(ctx context.Context, path string, data url.Values) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, strings.NewReader(data.Encode()), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
	})
}

// doAuthRequest performs a request with the session's access token,
// checking scopes and refreshing the token first when needed.
func (s *Session) doAuthRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
	requiredScopes ...string,
) (*http.Response, error) {
	if err := s.checkScopes(requiredScopes...); err != nil {
		return nil, err
	}

	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.client.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// authJSON sends an authenticated request with an optional JSON body and
// decodes the expected status into target. A nil target expects 204.
func (s *Session) authJSON(
	ctx context.Context,
	method, path string,
	v, target any,
	expectedStatus int,
	requiredScopes ...string,
) error {
	var (
		body    io.Reader
		headers map[string]string
	)
	if v != nil {
		b, h, err := jsonBody(v)
		if err != nil {
			return err
		}
		body, headers = b, h
	}

	resp, err := s.doAuthRequest(ctx, method, path, body, headers, requiredScopes...)
	if err != nil {
		return err
	}
	if target == nil {
		return checkStatusNoContent(resp)
	}
	return decodeJSON(resp, target, expectedStatus)
}

func jsonBody(v any) (io.Reader, map[string]string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return bytes.NewReader(b), map[string]string{"Content-Type": "application/json"}, nil
}

// withQuery appends the non-empty values of q to path.
func withQuery(path string, q url.Values) string {
	for k, v := range q {
		if len(v) == 0 || v[0] == "" {
			q.Del(k)
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// decodeJSON decodes a response with the expected status into target and
// returns a typed error for anything else.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatusNoContent(resp *http.Response) error {
	return checkStatus(resp, http.StatusNoContent)
}

// checkStatus discards the body of a response with the expected status.
func checkStatus(resp *http.Response, expectedStatus int) error {
	defer resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}
