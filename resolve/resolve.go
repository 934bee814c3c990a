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

// Package resolve implements the Resolver (spec.md §4.6): recursive
// constraint-intersection over a dependency DAG, driving a fetch.Fetcher
// over a vcs.VCS, producing a reverse-topological sequence of
// ResolvedPackage such that every transitive dependency appears exactly
// once inside the intersection of every range that constrains it.
package resolve

import (
	"fmt"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/dxcore/model/semver"
	"dirpx.dev/dxpkg/fetch"
	"dirpx.dev/dxpkg/loader"
	"dirpx.dev/dxpkg/manifest"
	"dirpx.dev/dxpkg/vcs"
	"dirpx.dev/rxmerr"
)

// ResolvedPackage is a url paired with the version the Resolver selected
// for it, its loaded manifest, and the checkout directory materializing it
// on disk.
type ResolvedPackage struct {
	URL          string
	Version      semver.Version
	Ref          string
	Manifest     manifest.Manifest
	CheckoutPath string
}

// Resolver drives a fetch.Fetcher to a fixed point over a manifest's
// declared dependencies. A Resolver instance is single-use: construct one
// per Resolve call, since it assumes exclusive ownership of its Fetcher's
// checkout root for the duration of the run (spec.md §5).
type Resolver struct {
	fetcher *fetch.Fetcher
}

// NewResolver constructs a Resolver that fetches through v and loads
// manifests through l, materializing checkouts under checkoutRoot.
func NewResolver(v vcs.VCS, l loader.Loader, checkoutRoot string) *Resolver {
	return &Resolver{fetcher: fetch.NewFetcher(v, l, checkoutRoot)}
}

// Resolve resolves root's declared dependencies to a concrete,
// reverse-topologically ordered sequence of ResolvedPackage. Warnings
// accumulates non-fatal diagnostics (spec.md §4.9); a non-nil error means
// resolution failed terminally and no partial graph is returned.
func (r *Resolver) Resolve(root manifest.Manifest) ([]ResolvedPackage, *diag.Warnings, error) {
	warnings := &diag.Warnings{}
	bounds := make(map[string]semver.Range)
	var frontier []string

	intersectBound := func(url string, rng semver.Range) (semver.Range, bool, error) {
		existing, had := bounds[url]
		base := semver.MaxRange
		if had {
			base = existing
		}
		narrowed, ok := base.Constrain(rng)
		if !ok {
			collector := rxmerr.NewCollector()
			collector.Append(fmt.Errorf("existing bound %s", base))
			collector.Append(fmt.Errorf("incoming range %s", rng))
			reason := ""
			if err := collector.Err(); err != nil {
				reason = err.Error()
			}
			return semver.Range{}, false, &diag.InvalidDependencyGraph{URL: url, Reason: reason}
		}
		changed := !had || !narrowed.Equal(existing)
		return narrowed, changed, nil
	}

	for _, d := range root.DeclaredDependencies {
		url := string(d.URL)
		narrowed, _, err := intersectBound(url, d.VersionRange)
		if err != nil {
			return nil, warnings, err
		}
		bounds[url] = narrowed
		frontier = append(frontier, url)
	}

	for len(frontier) > 0 {
		url := frontier[0]
		frontier = frontier[1:]
		bound := bounds[url]

		checkout, err := r.fetcher.Fetch(url)
		if err != nil {
			return nil, warnings, err
		}
		if len(checkout.AvailableVersions) == 0 {
			return nil, warnings, &diag.Unversioned{URL: url}
		}

		v, ok := selectLargest(checkout.AvailableVersions, bound)
		if !ok {
			return nil, warnings, &diag.InvalidDependencyGraphMissingTag{
				URL: url, Range: bound, Available: checkout.AvailableVersions,
			}
		}

		alreadyCurrent := checkout.State == fetch.StateFinalized &&
			checkout.CurrentVersion != nil && checkout.CurrentVersion.Equal(v) &&
			checkout.Manifest != nil
		if !alreadyCurrent {
			if err := r.fetcher.FinalizeTo(checkout, v); err != nil {
				return nil, warnings, err
			}
		}

		if checkout.Manifest.IsZero() {
			warnings.Add("package %s at %s declares an empty manifest", url, v)
		}

		for _, d := range checkout.Manifest.DeclaredDependencies {
			cu := string(d.URL)
			narrowed, changed, err := intersectBound(cu, d.VersionRange)
			if err != nil {
				return nil, warnings, err
			}
			bounds[cu] = narrowed
			if changed {
				frontier = append(frontier, cu)
			}
		}
	}

	order, err := r.emitReverseTopological(root)
	if err != nil {
		return nil, warnings, err
	}
	return order, warnings, nil
}

// selectLargest returns the largest Version in available (ascending order)
// that bound.Contains, with ties (equal parsed Version from distinct tags)
// broken by preferring the later entry in available, matching spec.md
// §4.6's "later in the input tag list wins".
func selectLargest(available []semver.Version, bound semver.Range) (semver.Version, bool) {
	var best semver.Version
	found := false
	for _, v := range available {
		if !bound.Contains(v) {
			continue
		}
		if !found || best.Less(v) || best.Equal(v) {
			best = v
			found = true
		}
	}
	return best, found
}

// emitReverseTopological walks the final, finalized dependency graph
// starting from root's direct dependencies, emitting each package only
// after every package it depends on, via post-order DFS. Any url reachable
// only through a since-superseded version selection is naturally excluded,
// since the walk follows only each checkout's final (possibly re-finalized)
// manifest.
func (r *Resolver) emitReverseTopological(root manifest.Manifest) ([]ResolvedPackage, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)
	var order []ResolvedPackage

	var visit func(url string) error
	visit = func(url string) error {
		switch state[url] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("resolve: unexpected cycle reaching %s", url)
		}
		state[url] = visiting

		checkout, ok := r.fetcher.Find(url)
		if !ok || checkout.Manifest == nil || checkout.CurrentVersion == nil {
			return fmt.Errorf("resolve: %s was never finalized", url)
		}
		for _, d := range checkout.Manifest.DeclaredDependencies {
			if err := visit(string(d.URL)); err != nil {
				return err
			}
		}

		state[url] = done
		order = append(order, ResolvedPackage{
			URL:          url,
			Version:      *checkout.CurrentVersion,
			Ref:          checkout.Tags[checkout.CurrentVersion.String()],
			Manifest:     *checkout.Manifest,
			CheckoutPath: checkout.Dir,
		})
		return nil
	}

	for _, d := range root.DeclaredDependencies {
		if err := visit(string(d.URL)); err != nil {
			return nil, err
		}
	}
	return order, nil
}
