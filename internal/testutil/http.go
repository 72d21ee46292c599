package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// NewJSONRequest creates a new HTTP request with JSON body
func NewJSONRequest(method, url string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// DecodeJSON decodes JSON from a reader
func DecodeJSON(r io.Reader, v interface{}) error {
	return json.NewDecoder(r).Decode(v)
}

// ReadString reads the entire response body as a string
func ReadString(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ErrorResponse mirrors the server's error body
type ErrorResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ParseErrorResponse parses an error response body
func ParseErrorResponse(body io.Reader) (*ErrorResponse, error) {
	raw, err := ReadString(body)
	if err != nil {
		return nil, err
	}
	var errResp ErrorResponse
	if err := json.Unmarshal([]byte(raw), &errResp); err != nil {
		errResp.Error = strings.TrimSpace(raw)
	}
	return &errResp, nil
}
