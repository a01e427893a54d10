// Package repository contains the data access layer. Unlike a classic
// repository package it is not backed by a local database: every entity
// this service renders belongs to the upstream EMS API and is re-fetched
// per render, so each repo wraps a read endpoint of that API and decodes
// its JSON into internal models. Sentinel errors let callers distinguish
// "not authenticated" from genuine upstream failures.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iliyamo/event-calendar/internal/model"
)

// Client is the shared HTTP transport for all upstream repos. It owns the
// base URL and timeout; individual repos own paths and decoding.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a Client for the given upstream base URL, e.g.
// "https://ems-backend-9cfa.onrender.com". A trailing slash is tolerated.
func NewClient(base string, timeout time.Duration) *Client {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
	}
}

// getJSON issues GET base+path with the credential attached and decodes a
// 2xx JSON body into out. The bearer token travels in the Authorization
// header and session cookies are replayed verbatim, mirroring how the web
// client authenticates against the same API.
func (c *Client) getJSON(ctx context.Context, path string, cred model.Credential, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	if cred.Bearer != "" {
		req.Header.Set("Authorization", "Bearer "+cred.Bearer)
	}
	for _, ck := range cred.Cookies {
		req.AddCookie(ck)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("upstream %s: %w: %s", path, ErrUpstreamStatus, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream %s: decode: %w", path, err)
	}
	return nil
}
