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

// Package record writes the resolved manifest record (spec.md §6): a text
// document, one entry per resolved url, listing the version dxpkg chose
// and the commit it resolved to. The core never parses this document back
// in; it exists purely so downstream tooling can reproduce a resolution
// without re-running it.
package record

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxpkg/dxcore/model/git"
	"dirpx.dev/dxpkg/resolve"
	"dirpx.dev/dxpkg/vcs"
)

// Entry is one resolved package's durable record. Commit is empty when the
// driving VCS implementation cannot resolve refs to commit hashes (for
// example, vcs.Mock in tests).
type Entry struct {
	URL     string `yaml:"url"`
	Version string `yaml:"version"`
	Ref     string `yaml:"ref"`
	Commit  string `yaml:"commit,omitempty"`
}

// BuildEntries converts a Resolver's output into records, resolving a
// commit hash per entry through v when v implements vcs.CommitResolver.
func BuildEntries(resolved []resolve.ResolvedPackage, v vcs.VCS) ([]Entry, error) {
	resolver, _ := v.(vcs.CommitResolver)

	entries := make([]Entry, 0, len(resolved))
	for _, pkg := range resolved {
		entry := Entry{
			URL:     pkg.URL,
			Version: pkg.Version.String(),
			Ref:     pkg.Ref,
		}

		if resolver != nil && pkg.Ref != "" {
			ref, err := git.ParseRefName(pkg.Ref)
			if err != nil {
				return nil, fmt.Errorf("record: %s has invalid ref %q: %w", pkg.URL, pkg.Ref, err)
			}
			commit, err := resolver.ResolveCommit(pkg.CheckoutPath, ref)
			if err != nil {
				return nil, fmt.Errorf("record: resolving commit for %s: %w", pkg.URL, err)
			}
			entry.Commit = commit
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// Write serializes resolved (in the order the Resolver produced it) to w
// as the resolved manifest record, resolving commit ids through v where
// possible. The output is a plain YAML sequence of Entry; per spec.md §6
// it is opaque to the core and meant only for downstream tooling.
func Write(resolved []resolve.ResolvedPackage, v vcs.VCS, w io.Writer) error {
	entries, err := BuildEntries(resolved, v)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(entries)
}
