// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probegen

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cogentcore/probegen/library"
)

// Batch loads each requested probe from the library and generates its
// artifacts, processing probes concurrently up to [Options.Jobs] at a
// time. Probes share no state, so a failed probe never aborts its
// siblings; every request yields exactly one [Result], in request
// order. Probes get sequential metadata type ids starting at
// [Options.TypeBase]. Cancelling the context stops unstarted probes,
// recording the cancellation in their results.
func Batch(ctx context.Context, lib library.Library, keys []library.Key, opts *Options) []*Result {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	base := opts.TypeBase
	if base == 0 {
		base = 1
	}
	results := make([]*Result, len(keys))
	gr := new(errgroup.Group)
	gr.SetLimit(jobs)
	for ki, ky := range keys {
		gr.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[ki] = &Result{Key: ky, Err: err}
				return nil
			}
			pb, err := lib.Probe(ctx, ky.Manufacturer, ky.Name)
			if err != nil {
				slog.Warn("probe load failed", "probe", ky.String(), "err", err)
				results[ki] = &Result{Key: ky, Err: err}
				return nil
			}
			po := *opts
			po.Type = base + ki
			results[ki] = Generate(pb, &po)
			slog.Debug("probe generated", "probe", ky.String(), "ok", results[ki].OK())
			return nil
		})
	}
	gr.Wait()
	return results
}
