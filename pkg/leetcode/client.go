// Package leetcode provides a minimal HTTP client for the public
// LeetCode GraphQL API. It returns raw response bodies; decoding into
// domain models is the repository layer's job.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client represents a LeetCode GraphQL API client
type Client struct {
	URL        string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates a new LeetCode API client
func NewClient(url, userAgent string, timeout time.Duration) *Client {
	return &Client{
		URL:        url,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// graphqlRequest is the envelope LeetCode expects for every query.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the envelope LeetCode wraps every response in.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// Query executes a GraphQL query and returns the raw "data" payload.
// GraphQL-level errors are returned as Go errors; a null matchedUser is
// not an error at this layer since callers need to distinguish it.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) ([]byte, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("leetcode request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("leetcode error: status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return nil, fmt.Errorf("leetcode graphql error: %s", envelope.Errors[0].Message)
	}

	return envelope.Data, nil
}
