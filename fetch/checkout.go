/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package fetch maintains the process-local mapping from package URL to
// working directory and drives the state machine of a single Checkout:
// Unfetched -> Fetched(versions) -> Finalized(version, manifest). A
// Finalized checkout may transition to a different Finalized state only
// while the Resolver driving it is still running.
package fetch

import (
	"fmt"

	"dirpx.dev/dxpkg/dxcore/model/semver"
	"dirpx.dev/dxpkg/manifest"
)

// State enumerates the lifecycle stages of a Checkout.
type State uint8

const (
	// StateUnfetched is the zero value: no working directory exists yet.
	StateUnfetched State = iota
	// StateFetched means a working directory exists and availableVersions
	// has been populated, but no version has been selected.
	StateFetched
	// StateFinalized means a specific version has been selected, its ref
	// checked out, and its manifest loaded.
	StateFinalized
)

func (s State) String() string {
	switch s {
	case StateUnfetched:
		return "unfetched"
	case StateFetched:
		return "fetched"
	case StateFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Checkout is the mutable-until-finalized working-tree state for a single
// package URL. It transitions Unfetched -> Fetched -> Finalized, and may be
// re-finalized to a different version while the Resolver driving it is
// still running; once the Resolver returns, the last Finalized state is
// frozen.
type Checkout struct {
	URL     string
	Dir     string
	State   State

	// AvailableVersions is populated on entering StateFetched, sorted
	// ascending by Version ordering (the Resolver selects the largest
	// satisfying entry).
	AvailableVersions []semver.Version

	// Tags maps each available Version back to its raw tag spelling (which
	// may carry a "v" prefix), needed to check the selected ref out.
	Tags map[string]string

	CurrentVersion *semver.Version
	Manifest       *manifest.Manifest
}

// newCheckout constructs a StateUnfetched Checkout for url rooted at dir.
func newCheckout(url, dir string) *Checkout {
	return &Checkout{URL: url, Dir: dir, State: StateUnfetched}
}

// finalize transitions c into StateFinalized at version v with the given
// manifest, regardless of its current state. Re-finalizing an
// already-Finalized checkout to a different version is a normal part of the
// Resolver's re-selection cascade (spec.md's "Finalized may transition to
// another Finalized state only while the Resolver is running").
func (c *Checkout) finalize(v semver.Version, m manifest.Manifest) {
	version := v
	mf := m
	c.CurrentVersion = &version
	c.Manifest = &mf
	c.State = StateFinalized
}

// tagFor returns the raw tag string for v, as reported by ListTags.
func (c *Checkout) tagFor(v semver.Version) (string, bool) {
	tag, ok := c.Tags[v.String()]
	return tag, ok
}
