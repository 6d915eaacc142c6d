package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"taskvortex/internal/logger"
)

// TokenSource yields the current bearer token, or "" when unauthenticated.
// The client attaches the token to every outgoing request when present and
// otherwise sends the request bare (the login call must go through).
type TokenSource func() string

// Client is the gateway to the TaskVortex HTTP API. It is stateless: one
// request per operation, no retries, no caching.
type Client struct {
	rc  *resty.Client
	log logger.Logger
}

func New(baseURL string, timeout time.Duration, token TokenSource, log logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token != nil {
			if t := token(); t != "" {
				req.SetHeader("Authorization", "Bearer "+t)
			}
		}
		return nil
	})
	return &Client{rc: rc, log: log}
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return statusError(resp)
	}

	c.log.Debug("api request", "method", method, "path", path, "status", resp.StatusCode())
	return nil
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPut, path, body, result)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
