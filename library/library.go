// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package library loads probe geometry descriptions from the
// probeinterface probe library, keyed by manufacturer and probe name,
// from either a local directory tree or HTTP with an on-disk cache.
package library

import (
	"context"
	"errors"

	"github.com/cogentcore/probegen/probe"
)

// ErrNotFound indicates that a named probe is absent from the library.
var ErrNotFound = errors.New("library: probe not found")

// Key identifies one probe in the library.
type Key struct {
	Manufacturer string
	Name         string
}

func (ky Key) String() string {
	return ky.Manufacturer + "/" + ky.Name
}

// Library is the external probe-geometry provider.
type Library interface {
	// Probe returns the named probe, ready for normalization.
	// An absent probe returns an error wrapping [ErrNotFound]; a
	// present but malformed document returns an error wrapping
	// [probe.ErrConfig].
	Probe(ctx context.Context, manufacturer, name string) (*probe.Probe, error)

	// List returns the probe keys known to the library, sorted.
	List(ctx context.Context) ([]Key, error)
}
