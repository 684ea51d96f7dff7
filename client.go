package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"apassphrase/internal/config"
	"apassphrase/internal/phrase"
)

// remoteError is returned for any failure talking to the backend.
type remoteError struct {
	Endpoint string
	Err      error
}

func (e *remoteError) Error() string {
	return fmt.Sprintf("could not connect to %s: %v", e.Endpoint, e.Err)
}

func (e *remoteError) Unwrap() error { return e.Err }

// remoteClient fetches pre-generated phrases from a backend.
type remoteClient struct {
	cfg    config.RemoteConfig
	client *fasthttp.Client
}

func newRemoteClient(cfg config.RemoteConfig) *remoteClient {
	return &remoteClient{
		cfg: cfg,
		client: &fasthttp.Client{
			Name:         "apassphrase",
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
	}
}

func (c *remoteClient) Passphrase(ctx context.Context) (string, error) {
	var msg PassphraseMsg
	if err := c.get(ctx, "passphrase", &msg); err != nil {
		return "", err
	}
	return msg.Passphrase, nil
}

func (c *remoteClient) Emojiphrase(ctx context.Context) (phrase.Emojiphrase, error) {
	var msg EmojiphraseMsg
	if err := c.get(ctx, "emojiphrase", &msg); err != nil {
		return phrase.Emojiphrase{}, err
	}
	return phrase.Emojiphrase{Names: msg.Emojiphrase, Icons: msg.Emojis}, nil
}

func (c *remoteClient) get(ctx context.Context, path string, v any) error {
	endpoint := c.cfg.Endpoint(path)
	if err := ctx.Err(); err != nil {
		return &remoteError{Endpoint: endpoint, Err: err}
	}

	deadline := time.Now().Add(c.cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return &remoteError{Endpoint: endpoint, Err: err}
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		var msg ErrorMsg
		if err := sonic.Unmarshal(resp.Body(), &msg); err == nil && msg.Error != "" {
			return &remoteError{Endpoint: endpoint, Err: fmt.Errorf("status %d: %s", status, msg.Error)}
		}
		return &remoteError{Endpoint: endpoint, Err: fmt.Errorf("unexpected status %d", status)}
	}

	if err := sonic.Unmarshal(resp.Body(), v); err != nil {
		return &remoteError{Endpoint: endpoint, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
