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

package fetch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/dxcore/model/git"
	"dirpx.dev/dxpkg/dxcore/model/semver"
	"dirpx.dev/dxpkg/loader"
	"dirpx.dev/dxpkg/vcs"
)

// Fetcher maintains the process-local url -> Checkout mapping described in
// spec.md §4.5. It is the only component that performs VCS I/O on the
// Resolver's behalf.
type Fetcher struct {
	VCS    vcs.VCS
	Loader loader.Loader
	Root   string

	checkouts map[string]*Checkout
}

// NewFetcher constructs a Fetcher rooted at root, the durable checkout
// directory the Resolver owns exclusively for the duration of its run.
func NewFetcher(v vcs.VCS, l loader.Loader, root string) *Fetcher {
	return &Fetcher{VCS: v, Loader: l, Root: root, checkouts: make(map[string]*Checkout)}
}

// Find returns the existing Checkout for url without performing any I/O, or
// (nil, false) if url has not been referenced yet.
func (f *Fetcher) Find(url string) (*Checkout, bool) {
	c, ok := f.checkouts[url]
	return c, ok
}

// Fetch returns the Checkout for url, cloning and listing tags on first
// reference. Subsequent calls return the same Checkout unchanged.
func (f *Fetcher) Fetch(url string) (*Checkout, error) {
	if c, ok := f.checkouts[url]; ok {
		return c, nil
	}

	dir := filepath.Join(f.Root, provisionalDirName(url))
	if err := f.VCS.Clone(url, dir); err != nil {
		return nil, fmt.Errorf("fetch: cloning %s: %w", url, err)
	}

	rawTags, err := f.VCS.ListTags(url)
	if err != nil {
		return nil, fmt.Errorf("fetch: listing tags for %s: %w", url, err)
	}
	sorted := vcs.SortTags(rawTags)

	c := newCheckout(url, dir)
	c.State = StateFetched
	c.Tags = make(map[string]string, len(sorted))
	c.AvailableVersions = make([]semver.Version, 0, len(sorted))
	for _, tv := range sorted {
		c.AvailableVersions = append(c.AvailableVersions, tv.Version)
		c.Tags[tv.Version.String()] = tv.Tag
	}

	f.checkouts[url] = c
	return c, nil
}

// FinalizeTo selects v on c: checks out its tag and loads its manifest. It
// may be called repeatedly on the same Checkout as the Resolver's
// re-selection cascade revises the chosen version; each call overwrites the
// prior Finalized state.
//
// Returns a *diag.NoManifestAtRef error if v's tag has no manifest.
func (f *Fetcher) FinalizeTo(c *Checkout, v semver.Version) error {
	tag, ok := c.tagFor(v)
	if !ok {
		return fmt.Errorf("fetch: %s has no tag for version %s", c.URL, v)
	}

	ref, err := git.ParseRefName(tag)
	if err != nil {
		return fmt.Errorf("fetch: %s tag %q is not a valid ref: %w", c.URL, tag, err)
	}

	if err := f.VCS.Checkout(c.Dir, ref); err != nil {
		return fmt.Errorf("fetch: checking out %s@%s: %w", c.URL, tag, err)
	}

	m, err := f.Loader.Load(c.Dir, ref)
	if err != nil {
		var noManifest *diag.NoManifest
		if errors.As(err, &noManifest) {
			return &diag.NoManifestAtRef{URL: c.URL, Ref: tag}
		}
		return fmt.Errorf("fetch: loading manifest for %s@%s: %w", c.URL, tag, err)
	}

	c.finalize(v, m)

	canonical := filepath.Join(f.Root, canonicalDirName(m.DisplayName, v))
	if canonical != c.Dir {
		if err := os.Rename(c.Dir, canonical); err == nil {
			c.Dir = canonical
		}
	}
	return nil
}

// provisionalDirName derives a working-directory name from url before any
// manifest is known, used for the initial clone.
func provisionalDirName(url string) string {
	name := url
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".git")
	if name == "" {
		name = "checkout"
	}
	return name
}

// canonicalDirName builds the durable "<PackageName>-<Version>" directory
// name described in spec.md §6.
func canonicalDirName(displayName string, v semver.Version) string {
	return fmt.Sprintf("%s-%s", displayName, v)
}
