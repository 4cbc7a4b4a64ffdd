package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the API response wrapper
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorBody      `json:"error"`
}

// ErrorBody mirrors the error part of the envelope
type ErrorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Details   []struct {
		Field   string `json:"field"`
		Rule    string `json:"rule"`
		Message string `json:"message"`
	} `json:"details"`
}

// Fields returns the field of every validation detail
func (e *ErrorBody) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		out = append(out, d.Field)
	}
	return out
}

// Response is a recorded HTTP response
type Response struct {
	Code     int
	Header   http.Header
	Body     []byte
	Envelope Envelope
}

// Client sends requests to an in-process handler
type Client struct {
	t       *testing.T
	handler http.Handler
	headers map[string]string
}

// NewClient creates a Client for handler
func NewClient(t *testing.T, handler http.Handler) *Client {
	return &Client{t: t, handler: handler, headers: map[string]string{}}
}

// WithHeader returns a copy of the client that sends an extra header
func (c *Client) WithHeader(key, value string) *Client {
	headers := make(map[string]string, len(c.headers)+1)
	for k, v := range c.headers {
		headers[k] = v
	}
	headers[key] = value
	return &Client{t: c.t, handler: c.handler, headers: headers}
}

// Do sends a request. A string body is sent verbatim, anything else as JSON.
func (c *Client) Do(method, path string, body any) *Response {
	c.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	resp := &Response{Code: w.Code, Header: w.Header(), Body: w.Body.Bytes()}
	if len(resp.Body) > 0 {
		require.NoError(c.t, json.Unmarshal(resp.Body, &resp.Envelope), "Failed to parse response: %s", resp.Body)
	}
	return resp
}

// Get sends a GET request
func (c *Client) Get(path string) *Response {
	c.t.Helper()
	return c.Do(http.MethodGet, path, nil)
}

// Post sends a POST request with a JSON body
func (c *Client) Post(path string, body any) *Response {
	c.t.Helper()
	return c.Do(http.MethodPost, path, body)
}

// Put sends a PUT request with a JSON body
func (c *Client) Put(path string, body any) *Response {
	c.t.Helper()
	return c.Do(http.MethodPut, path, body)
}

// Delete sends a DELETE request
func (c *Client) Delete(path string) *Response {
	c.t.Helper()
	return c.Do(http.MethodDelete, path, nil)
}

// DataAs decodes the envelope data into T
func DataAs[T any](t *testing.T, r *Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(r.Envelope.Data, &out), "Failed to parse data: %s", r.Envelope.Data)
	return out
}

// AssertSuccess asserts a successful envelope with the given status
func AssertSuccess(t *testing.T, r *Response, status int) {
	t.Helper()

	require.Equal(t, status, r.Code, "Unexpected status code: %s", r.Body)
	assert.True(t, r.Envelope.Success, "Expected success to be true")
	assert.Nil(t, r.Envelope.Error, "Expected no error")
}

// AssertError asserts an error envelope with the given status and code
func AssertError(t *testing.T, r *Response, status int, code string) {
	t.Helper()

	require.Equal(t, status, r.Code, "Unexpected status code: %s", r.Body)
	assert.False(t, r.Envelope.Success, "Expected success to be false")
	require.NotNil(t, r.Envelope.Error, "Expected error object in response")
	assert.Equal(t, code, r.Envelope.Error.Code, "Unexpected error code")
}
