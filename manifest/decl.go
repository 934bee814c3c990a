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

package manifest

import (
	"encoding/json"
	"fmt"

	dxerrors "dirpx.dev/dxpkg/dxcore/errors"
	"dirpx.dev/dxpkg/dxcore/model"
	"dirpx.dev/dxpkg/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

// DependencyDecl is a single dependency declaration: a package URL paired
// with the version range the declaring manifest requires of it. The
// Resolver intersects every DependencyDecl.VersionRange that constrains a
// given URL across the whole resolved graph.
type DependencyDecl struct {
	URL          PackageIdentity `json:"url" yaml:"url"`
	VersionRange semver.Range    `json:"version_range" yaml:"version_range"`
}

var _ model.Model = (*DependencyDecl)(nil)

func (d DependencyDecl) String() string {
	return fmt.Sprintf("%s%s", d.URL, d.VersionRange)
}

func (d DependencyDecl) Redacted() string { return d.String() }
func (d DependencyDecl) TypeName() string { return "DependencyDecl" }
func (d DependencyDecl) IsZero() bool     { return d.URL.IsZero() && d.VersionRange.IsZero() }

func (d DependencyDecl) Equal(other DependencyDecl) bool {
	return d.URL == other.URL && d.VersionRange.Equal(other.VersionRange)
}

func (d DependencyDecl) Validate() error {
	if err := d.URL.Validate(); err != nil {
		return fmt.Errorf("DependencyDecl.URL: %w", err)
	}
	if err := d.VersionRange.Validate(); err != nil {
		return fmt.Errorf("DependencyDecl.VersionRange: %w", err)
	}
	return nil
}

func (d DependencyDecl) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	type alias DependencyDecl
	return json.Marshal((alias)(d))
}

func (d *DependencyDecl) UnmarshalJSON(data []byte) error {
	type alias DependencyDecl
	if err := json.Unmarshal(data, (*alias)(d)); err != nil {
		return &dxerrors.UnmarshalError{Type: "DependencyDecl", Data: data, Reason: err.Error()}
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("unmarshaled DependencyDecl is invalid: %w", err)
	}
	return nil
}

func (d DependencyDecl) MarshalYAML() (interface{}, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	type alias DependencyDecl
	return (alias)(d), nil
}

func (d *DependencyDecl) UnmarshalYAML(node *yaml.Node) error {
	type alias DependencyDecl
	if err := node.Decode((*alias)(d)); err != nil {
		return &dxerrors.UnmarshalError{Type: "DependencyDecl", Reason: err.Error()}
	}
	if err := d.Validate(); err != nil {
		return fmt.Errorf("unmarshaled DependencyDecl is invalid: %w", err)
	}
	return nil
}

// TargetDecl describes one compilable unit declared (or implied) by a
// manifest: its name, the kind of artifact it produces, and the names of
// the sibling targets or declared products it depends on.
//
// ExplicitSources and ExplicitPublicHeadersDir, when non-empty, pin the
// Layout Walker's rule 1 (manifest-declared sources override directory
// convention) for this target.
type TargetDecl struct {
	Name                     string     `json:"name" yaml:"name"`
	DependencyNames          []string   `json:"dependency_names,omitempty" yaml:"dependency_names,omitempty"`
	Kind                     TargetKind `json:"kind" yaml:"kind"`
	ExplicitSources          []string   `json:"explicit_sources,omitempty" yaml:"explicit_sources,omitempty"`
	ExplicitPublicHeadersDir string     `json:"explicit_public_headers_dir,omitempty" yaml:"explicit_public_headers_dir,omitempty"`
}

var _ model.Model = (*TargetDecl)(nil)

func (t TargetDecl) String() string { return t.Name }
func (t TargetDecl) Redacted() string { return t.Name }
func (t TargetDecl) TypeName() string { return "TargetDecl" }
func (t TargetDecl) IsZero() bool     { return t.Name == "" && t.Kind == TargetKindUnknown }

func (t TargetDecl) Equal(other TargetDecl) bool {
	if t.Name != other.Name || t.Kind != other.Kind || t.ExplicitPublicHeadersDir != other.ExplicitPublicHeadersDir {
		return false
	}
	return stringSlicesEqual(t.DependencyNames, other.DependencyNames) &&
		stringSlicesEqual(t.ExplicitSources, other.ExplicitSources)
}

func (t TargetDecl) Validate() error {
	if t.Name == "" {
		return &dxerrors.ValidationError{Type: "TargetDecl", Field: "Name", Reason: "must not be empty"}
	}
	if err := t.Kind.Validate(); err != nil {
		return fmt.Errorf("TargetDecl.Kind: %w", err)
	}
	return nil
}

func (t TargetDecl) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type alias TargetDecl
	return json.Marshal((alias)(t))
}

func (t *TargetDecl) UnmarshalJSON(data []byte) error {
	type alias TargetDecl
	if err := json.Unmarshal(data, (*alias)(t)); err != nil {
		return &dxerrors.UnmarshalError{Type: "TargetDecl", Data: data, Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("unmarshaled TargetDecl is invalid: %w", err)
	}
	return nil
}

func (t TargetDecl) MarshalYAML() (interface{}, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	type alias TargetDecl
	return (alias)(t), nil
}

func (t *TargetDecl) UnmarshalYAML(node *yaml.Node) error {
	type alias TargetDecl
	if err := node.Decode((*alias)(t)); err != nil {
		return &dxerrors.UnmarshalError{Type: "TargetDecl", Reason: err.Error()}
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("unmarshaled TargetDecl is invalid: %w", err)
	}
	return nil
}

// ProductDecl describes a named, externally visible build output assembled
// from one or more of the declaring package's target modules.
type ProductDecl struct {
	Name              string      `json:"name" yaml:"name"`
	Kind              ProductKind `json:"kind" yaml:"kind"`
	MemberTargetNames []string    `json:"member_target_names" yaml:"member_target_names"`
}

var _ model.Model = (*ProductDecl)(nil)

func (p ProductDecl) String() string   { return p.Name }
func (p ProductDecl) Redacted() string { return p.Name }
func (p ProductDecl) TypeName() string { return "ProductDecl" }
func (p ProductDecl) IsZero() bool     { return p.Name == "" && p.Kind == ProductKindUnknown }

func (p ProductDecl) Equal(other ProductDecl) bool {
	if p.Name != other.Name || p.Kind != other.Kind {
		return false
	}
	return stringSlicesEqual(p.MemberTargetNames, other.MemberTargetNames)
}

func (p ProductDecl) Validate() error {
	if p.Name == "" {
		return &dxerrors.ValidationError{Type: "ProductDecl", Field: "Name", Reason: "must not be empty"}
	}
	if err := p.Kind.Validate(); err != nil {
		return fmt.Errorf("ProductDecl.Kind: %w", err)
	}
	if len(p.MemberTargetNames) == 0 {
		return &dxerrors.ValidationError{Type: "ProductDecl", Field: "MemberTargetNames", Reason: "must name at least one target"}
	}
	return nil
}

func (p ProductDecl) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias ProductDecl
	return json.Marshal((alias)(p))
}

func (p *ProductDecl) UnmarshalJSON(data []byte) error {
	type alias ProductDecl
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return &dxerrors.UnmarshalError{Type: "ProductDecl", Data: data, Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled ProductDecl is invalid: %w", err)
	}
	return nil
}

func (p ProductDecl) MarshalYAML() (interface{}, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	type alias ProductDecl
	return (alias)(p), nil
}

func (p *ProductDecl) UnmarshalYAML(node *yaml.Node) error {
	type alias ProductDecl
	if err := node.Decode((*alias)(p)); err != nil {
		return &dxerrors.UnmarshalError{Type: "ProductDecl", Reason: err.Error()}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled ProductDecl is invalid: %w", err)
	}
	return nil
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
