// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cogentcore/probegen/probe"
)

// Dir is a [Library] reading a local checkout of the probeinterface
// library, laid out as <root>/<manufacturer>/<name>/<name>.json.
type Dir struct {
	// Root is the library root directory.
	Root string
}

// NewDir returns a directory-backed library at the given root.
func NewDir(root string) *Dir {
	return &Dir{Root: root}
}

// Probe returns the named probe from the directory tree.
func (dl *Dir) Probe(ctx context.Context, manufacturer, name string) (*probe.Probe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := filepath.Join(dl.Root, manufacturer, name, name+".json")
	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, manufacturer, name)
		}
		return nil, err
	}
	defer fp.Close()
	return Decode(fp, manufacturer, name)
}

// List walks the two-level manufacturer/probe directory layout and
// returns the keys found, sorted. Hidden directories are skipped.
func (dl *Dir) List(ctx context.Context) ([]Key, error) {
	mans, err := os.ReadDir(dl.Root)
	if err != nil {
		return nil, err
	}
	var keys []Key
	for _, man := range mans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !man.IsDir() || strings.HasPrefix(man.Name(), ".") {
			continue
		}
		probes, err := os.ReadDir(filepath.Join(dl.Root, man.Name()))
		if err != nil {
			return nil, err
		}
		for _, pd := range probes {
			if !pd.IsDir() || strings.HasPrefix(pd.Name(), ".") {
				continue
			}
			keys = append(keys, Key{Manufacturer: man.Name(), Name: pd.Name()})
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Manufacturer != keys[j].Manufacturer {
			return keys[i].Manufacturer < keys[j].Manufacturer
		}
		return keys[i].Name < keys[j].Name
	})
	return keys, nil
}
