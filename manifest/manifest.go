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
	"path"
	"strings"

	dxerrors "dirpx.dev/dxpkg/dxcore/errors"
	"dirpx.dev/dxpkg/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Manifest is a package's full declaration: its display name, the
// dependency ranges it requires, and the targets/products it builds.
// Manifest values are produced by a Loader (see the loader package); the
// core never constructs one except in tests.
type Manifest struct {
	DisplayName          string           `json:"display_name" yaml:"display_name"`
	DeclaredDependencies []DependencyDecl `json:"declared_dependencies,omitempty" yaml:"declared_dependencies,omitempty"`
	Targets              []TargetDecl     `json:"targets,omitempty" yaml:"targets,omitempty"`
	Products             []ProductDecl    `json:"products,omitempty" yaml:"products,omitempty"`

	// ExcludedPaths are relative, OS-native-separator-normalized-to-forward-
	// slash path prefixes. A source path under an excluded prefix is never
	// considered by the Layout Walker.
	ExcludedPaths []string `json:"excluded_paths,omitempty" yaml:"excluded_paths,omitempty"`
}

var _ model.Model = (*Manifest)(nil)

func (m Manifest) String() string {
	return fmt.Sprintf("Manifest{%s, %d deps, %d targets, %d products}",
		m.DisplayName, len(m.DeclaredDependencies), len(m.Targets), len(m.Products))
}

func (m Manifest) Redacted() string { return m.String() }
func (m Manifest) TypeName() string { return "Manifest" }

func (m Manifest) IsZero() bool {
	return m.DisplayName == "" && len(m.DeclaredDependencies) == 0 &&
		len(m.Targets) == 0 && len(m.Products) == 0
}

// Equal reports whether m and other declare the same dependencies, targets
// and products, in the same order. Manifest equality is order-sensitive
// because declaration order is a tie-break the Resolver relies on.
func (m Manifest) Equal(other Manifest) bool {
	if m.DisplayName != other.DisplayName {
		return false
	}
	if len(m.DeclaredDependencies) != len(other.DeclaredDependencies) {
		return false
	}
	for i := range m.DeclaredDependencies {
		if !m.DeclaredDependencies[i].Equal(other.DeclaredDependencies[i]) {
			return false
		}
	}
	if len(m.Targets) != len(other.Targets) {
		return false
	}
	for i := range m.Targets {
		if !m.Targets[i].Equal(other.Targets[i]) {
			return false
		}
	}
	if len(m.Products) != len(other.Products) {
		return false
	}
	for i := range m.Products {
		if !m.Products[i].Equal(other.Products[i]) {
			return false
		}
	}
	return stringSlicesEqual(m.ExcludedPaths, other.ExcludedPaths)
}

// Validate checks that the manifest's own fields are well-formed and that
// every product's MemberTargetNames names a declared target. Target
// DependencyNames are not cross-checked here, since they may name products
// of other packages.
//
// Validate does not check dependency ranges against anything external; that
// is the Resolver's job.
func (m Manifest) Validate() error {
	if m.DisplayName == "" {
		return &dxerrors.ValidationError{Type: "Manifest", Field: "DisplayName", Reason: "must not be empty"}
	}

	targetNames := make(map[string]bool, len(m.Targets))
	for _, t := range m.Targets {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("Manifest.Targets[%s]: %w", t.Name, err)
		}
		if targetNames[t.Name] {
			return &dxerrors.ValidationError{Type: "Manifest", Field: "Targets", Reason: "duplicate target name", Value: t.Name}
		}
		targetNames[t.Name] = true
	}

	productNames := make(map[string]bool, len(m.Products))
	for _, p := range m.Products {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("Manifest.Products[%s]: %w", p.Name, err)
		}
		if productNames[p.Name] {
			return &dxerrors.ValidationError{Type: "Manifest", Field: "Products", Reason: "duplicate product name", Value: p.Name}
		}
		productNames[p.Name] = true
		for _, member := range p.MemberTargetNames {
			if !targetNames[member] {
				return &dxerrors.ValidationError{
					Type:   "Manifest",
					Field:  "Products",
					Reason: fmt.Sprintf("product %q names unknown member target %q", p.Name, member),
				}
			}
		}
	}

	for _, d := range m.DeclaredDependencies {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("Manifest.DeclaredDependencies: %w", err)
		}
	}

	for _, excluded := range m.ExcludedPaths {
		if strings.Contains(excluded, "\\") {
			return &dxerrors.ValidationError{
				Type:   "Manifest",
				Field:  "ExcludedPaths",
				Reason: "must use forward-slash separators",
				Value:  excluded,
			}
		}
	}

	return nil
}

// IsExcluded reports whether relPath (forward-slash separated, relative to
// the package root) falls under one of the manifest's ExcludedPaths, either
// because it equals an excluded path or is nested beneath one.
func (m Manifest) IsExcluded(relPath string) bool {
	clean := path.Clean(filepathToSlash(relPath))
	for _, excluded := range m.ExcludedPaths {
		excludedClean := path.Clean(filepathToSlash(excluded))
		if clean == excludedClean || strings.HasPrefix(clean, excludedClean+"/") {
			return true
		}
	}
	return false
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

func (m Manifest) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	type alias Manifest
	return json.Marshal((alias)(m))
}

func (m *Manifest) UnmarshalJSON(data []byte) error {
	type alias Manifest
	if err := json.Unmarshal(data, (*alias)(m)); err != nil {
		return &dxerrors.UnmarshalError{Type: "Manifest", Data: data, Reason: err.Error()}
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Manifest is invalid: %w", err)
	}
	return nil
}

func (m Manifest) MarshalYAML() (interface{}, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	type alias Manifest
	return (alias)(m), nil
}

func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	type alias Manifest
	if err := node.Decode((*alias)(m)); err != nil {
		return &dxerrors.UnmarshalError{Type: "Manifest", Reason: err.Error()}
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Manifest is invalid: %w", err)
	}
	return nil
}
