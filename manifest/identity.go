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

// Package manifest holds the pure value types dxpkg resolves against: a
// package's identity, its declared dependencies, and the targets and
// products it exports. Parsing a manifest file into these values is
// delegated to a pluggable Loader (see the loader package); this package
// only defines the shape.
package manifest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	dxerrors "dirpx.dev/dxpkg/dxcore/errors"
	"dirpx.dev/dxpkg/dxcore/model"
	"gopkg.in/yaml.v3"
)

// PackageIdentity is a normalized repository URL. Two URLs denoting the
// same repository MUST normalize to the same PackageIdentity; dxpkg uses
// PackageIdentity, never the raw manifest-declared string, as the key for
// every per-url map in the Fetcher and Resolver.
//
// Normalization is scheme/case/suffix-insensitive but does not attempt
// cross-host de-aliasing: two distinct hosts (or a host reached by two
// genuinely different paths) that happen to serve the same physical repo
// normalize to two distinct identities, per spec.md's open design note on
// aliasing. This is a deliberate scope limit, not an oversight.
type PackageIdentity string

// NormalizeURL normalizes a manifest-declared dependency URL into a
// PackageIdentity:
//   - the scheme and host are lowercased,
//   - a trailing ".git" suffix is stripped,
//   - a trailing slash is stripped,
//   - surrounding whitespace is trimmed.
//
// If s does not parse as a URL, NormalizeURL falls back to trimming
// whitespace and a trailing ".git"/"/" from the raw string, since many
// real-world dependency URLs are scp-style ("git@host:owner/repo.git")
// rather than URL-syntax.
func NormalizeURL(s string) PackageIdentity {
	s = strings.TrimSpace(s)

	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		u.Scheme = strings.ToLower(u.Scheme)
		u.Host = strings.ToLower(u.Host)
		u.Path = strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), ".git")
		return PackageIdentity(u.String())
	}

	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, ".git")
	return PackageIdentity(s)
}

// Compile-time assertion that PackageIdentity implements model.Model.
var _ model.Model = (*PackageIdentity)(nil)

func (p PackageIdentity) String() string {
	return string(p)
}

// Redacted returns the identity unchanged: repository URLs routinely
// appear in diagnostics and are not treated as secrets by dxpkg.
func (p PackageIdentity) Redacted() string {
	return string(p)
}

func (p PackageIdentity) TypeName() string {
	return "PackageIdentity"
}

func (p PackageIdentity) IsZero() bool {
	return p == ""
}

func (p PackageIdentity) Equal(other PackageIdentity) bool {
	return p == other
}

// Validate reports whether p is a non-empty, already-normalized identity.
// Validate does not re-normalize; callers MUST construct PackageIdentity
// values via NormalizeURL.
func (p PackageIdentity) Validate() error {
	if p.IsZero() {
		return &dxerrors.ValidationError{Type: "PackageIdentity", Reason: "must not be empty"}
	}
	if NormalizeURL(string(p)) != p {
		return &dxerrors.ValidationError{
			Type:   "PackageIdentity",
			Reason: "is not in normalized form; construct via NormalizeURL",
			Value:  string(p),
		}
	}
	return nil
}

func (p PackageIdentity) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(string(p))
}

func (p *PackageIdentity) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "PackageIdentity", Data: data, Reason: err.Error()}
	}
	parsed := NormalizeURL(s)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", parsed.TypeName(), err)
	}
	*p = parsed
	return nil
}

func (p PackageIdentity) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return string(p), nil
}

func (p *PackageIdentity) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "PackageIdentity", Reason: err.Error()}
	}
	parsed := NormalizeURL(s)
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled %s is invalid: %w", parsed.TypeName(), err)
	}
	*p = parsed
	return nil
}
