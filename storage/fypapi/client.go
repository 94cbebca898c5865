// Package fypapi is the client of the FYP REST backend. Every method maps one
// logical operation to exactly one HTTP request: no retries, no caching.
package fypapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/fyp/core"
)

type Client struct {
	baseURL string
	rest    *rest.Client
	logger  core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.Backend.URL, "/"),
		rest:    &rest.Client{HTTPClient: &http.Client{Timeout: conf.Backend.Timeout}},
		logger:  logger,
	}
}

// call describes one backend request.
type call struct {
	method      rest.Method
	path        string
	query       map[string]string
	body        interface{} // JSON encoded unless raw is set
	raw         []byte
	contentType string
}

func (c *Client) send(ctx context.Context, cl call) (*rest.Response, error) {
	req := rest.Request{
		Method:      cl.method,
		BaseURL:     c.baseURL + cl.path,
		Headers:     map[string]string{"Accept": "application/json"},
		QueryParams: cl.query,
	}
	switch {
	case cl.raw != nil:
		req.Body = cl.raw
		req.Headers["Content-Type"] = cl.contentType
	case cl.body != nil:
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request body")
		}
		req.Body = data
		req.Headers["Content-Type"] = "application/json"
	}
	if token := core.TokenFrom(ctx); token != "" {
		req.Headers["Authorization"] = "Bearer " + token
	}

	res, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", cl.method, cl.path)
	}
	if res.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(string(cl.method), cl.path, res)
		if res.StatusCode >= http.StatusInternalServerError {
			c.logger.Warn(fmt.Sprintf("backend error: %v", apiErr), map[string]interface{}{
				"status": res.StatusCode,
				"body":   res.Body,
			})
		}
		return nil, apiErr
	}
	return res, nil
}

// do sends the call and decodes the unwrapped envelope into out (when not nil).
func (c *Client) do(ctx context.Context, cl call, out interface{}) error {
	res, err := c.send(ctx, cl)
	if err != nil {
		return err
	}
	if out == nil || strings.TrimSpace(res.Body) == "" {
		return nil
	}
	if err := json.Unmarshal(unwrap([]byte(res.Body)), out); err != nil {
		return errors.Wrapf(err, "decoding %s %s", cl.method, cl.path)
	}
	return nil
}

// unwrap strips the response envelope. The backend answers `{data: X}` on most
// endpoints and `{data: {data: X}}` on some; both yield X. Bodies without a
// `data` key are returned unchanged.
func unwrap(body []byte) json.RawMessage {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		return body
	}
	data, ok := env["data"]
	if !ok {
		return body
	}
	var inner map[string]json.RawMessage
	if err := json.Unmarshal(data, &inner); err == nil {
		if nested, ok := inner["data"]; ok {
			return nested
		}
	}
	return data
}

func pathf(format string, ids ...string) string {
	args := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		args = append(args, url.PathEscape(id))
	}
	return fmt.Sprintf(format, args...)
}
