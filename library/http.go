// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cogentcore/probegen/probe"
)

// DefaultBaseURL is the canonical probeinterface library location.
const DefaultBaseURL = "https://raw.githubusercontent.com/SpikeInterface/probeinterface_library/main"

// FetcherOptions configures a [Fetcher].
type FetcherOptions struct {
	// BaseURL is the library root URL; empty means [DefaultBaseURL].
	BaseURL string

	// CacheDir caches fetched documents on disk when non-empty,
	// mirroring the library's directory layout.
	CacheDir string

	// InsecureSkipVerify disables TLS certificate verification for
	// this fetcher's client only. Some deployments sit behind
	// intercepting proxies with broken chains; the workaround is
	// scoped to the one client that needs it, never set globally.
	InsecureSkipVerify bool

	// Timeout bounds each fetch; zero means 30 seconds.
	Timeout time.Duration
}

// Fetcher is a [Library] fetching probe documents over HTTP, with an
// optional on-disk cache. Network trust is configured per fetcher
// through [FetcherOptions]; nothing touches process-global TLS state.
type Fetcher struct {
	base   string
	cache  string
	client *http.Client
}

// NewFetcher returns a Fetcher for the given options.
func NewFetcher(opts *FetcherOptions) *Fetcher {
	if opts == nil {
		opts = &FetcherOptions{}
	}
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if opts.InsecureSkipVerify {
		if tr.TLSClientConfig == nil {
			tr.TLSClientConfig = &tls.Config{}
		}
		tr.TLSClientConfig.InsecureSkipVerify = true
	}
	return &Fetcher{
		base:  base,
		cache: opts.CacheDir,
		client: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
	}
}

// Probe returns the named probe, from the cache when present,
// otherwise fetched from the library and cached.
func (ft *Fetcher) Probe(ctx context.Context, manufacturer, name string) (*probe.Probe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ft.cache != "" {
		path := ft.cachePath(manufacturer, name)
		if data, err := os.ReadFile(path); err == nil {
			return Decode(bytes.NewReader(data), manufacturer, name)
		}
	}
	url := fmt.Sprintf("%s/%s/%s/%s.json", ft.base, manufacturer, name, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ft.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("library: fetch %s/%s: %w", manufacturer, name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, manufacturer, name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("library: fetch %s/%s: status %s", manufacturer, name, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("library: fetch %s/%s: %w", manufacturer, name, err)
	}
	ft.store(manufacturer, name, data)
	return Decode(bytes.NewReader(data), manufacturer, name)
}

// List returns the keys present in the on-disk cache. The remote
// library has no index document, so listing is limited to what has
// been fetched already.
func (ft *Fetcher) List(ctx context.Context) ([]Key, error) {
	if ft.cache == "" {
		return nil, nil
	}
	return NewDir(ft.cache).List(ctx)
}

func (ft *Fetcher) cachePath(manufacturer, name string) string {
	return filepath.Join(ft.cache, manufacturer, name, name+".json")
}

// store caches a fetched document; cache failures are ignored since
// the document is already in hand.
func (ft *Fetcher) store(manufacturer, name string, data []byte) {
	if ft.cache == "" {
		return
	}
	path := ft.cachePath(manufacturer, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}
