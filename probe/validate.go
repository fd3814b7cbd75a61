// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import "fmt"

// Validate checks the structural invariants of the probe description:
// at least one shank outline, every contact referencing an existing
// shank, and electrode numbers dense from 1 to NumContacts with no
// duplicates. Any violation returns an error wrapping [ErrConfig].
func (pb *Probe) Validate() error {
	if len(pb.Outlines) == 0 {
		return fmt.Errorf("%w: probe %q has no shank outlines", ErrConfig, pb.Name)
	}
	n := len(pb.Contacts)
	seen := make([]bool, n)
	for ci := range pb.Contacts {
		ct := &pb.Contacts[ci]
		if ct.Shank < 0 || ct.Shank >= len(pb.Outlines) {
			return fmt.Errorf("%w: contact %d references shank %d of %d", ErrConfig, ct.Number, ct.Shank, len(pb.Outlines))
		}
		if ct.Number < 1 || ct.Number > n {
			return fmt.Errorf("%w: electrode number %d outside dense range 1..%d", ErrConfig, ct.Number, n)
		}
		if seen[ct.Number-1] {
			return fmt.Errorf("%w: duplicate electrode number %d", ErrConfig, ct.Number)
		}
		seen[ct.Number-1] = true
	}
	return nil
}
