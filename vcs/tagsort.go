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

package vcs

import (
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	dxsemver "dirpx.dev/dxpkg/dxcore/model/semver"
)

// TaggedVersion pairs a parsed Version with the raw tag string it came from,
// preserving the original tag spelling (v-prefixed or not) for checkouts.
type TaggedVersion struct {
	Tag     string
	Version dxsemver.Version
}

// SortTags parses raw into Versions, discarding any tag that is not a
// syntactically plausible semver tag, and returns the survivors in
// ascending version order.
//
// A tag is accepted with or without a leading "v" (spec.md's ListTags
// contract). golang.org/x/mod/semver.IsValid is used as a cheap syntactic
// prefilter ahead of the fuller dxcore/model/semver.ParseVersion parse,
// since x/mod/semver rejects most malformed tags (non-numeric components,
// stray whitespace) without allocating. The shorthand forms it accepts
// ("v2", "v1.2") are then rejected by ParseVersion.
func SortTags(raw []string) []TaggedVersion {
	out := make([]TaggedVersion, 0, len(raw))
	for _, tag := range raw {
		canonical := tag
		if !strings.HasPrefix(canonical, "v") {
			canonical = "v" + canonical
		}
		if !semver.IsValid(canonical) {
			continue
		}

		v, err := dxsemver.ParseVersion(strings.TrimPrefix(canonical, "v"))
		if err != nil {
			continue
		}
		out = append(out, TaggedVersion{Tag: tag, Version: v})
	}

	// SliceStable, not Slice: when two tags parse to the same Version, the
	// one that appeared later in raw must sort later too, so the Resolver's
	// last-one-wins tie-break (spec.md §4.6) can simply take the final
	// occurrence of the maximum.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Version.Less(out[j].Version)
	})
	return out
}
