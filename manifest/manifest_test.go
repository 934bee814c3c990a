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

package manifest_test

import (
	"testing"

	"dirpx.dev/dxpkg/manifest"
)

func validManifest() manifest.Manifest {
	return manifest.Manifest{
		DisplayName: "Widget",
		Targets: []manifest.TargetDecl{
			{Name: "WidgetCore", Kind: manifest.TargetKindLibrary},
			{Name: "WidgetTests", Kind: manifest.TargetKindTest, DependencyNames: []string{"WidgetCore"}},
		},
		Products: []manifest.ProductDecl{
			{Name: "Widget", Kind: manifest.ProductKindLibraryAuto, MemberTargetNames: []string{"WidgetCore"}},
		},
	}
}

func TestManifest_Validate(t *testing.T) {
	m := validManifest()
	if err := m.Validate(); err != nil {
		t.Fatalf("valid Manifest failed Validate: %v", err)
	}
}

func TestManifest_Validate_DuplicateTargetName(t *testing.T) {
	m := validManifest()
	m.Targets = append(m.Targets, manifest.TargetDecl{Name: "WidgetCore", Kind: manifest.TargetKindLibrary})

	if err := m.Validate(); err == nil {
		t.Errorf("Manifest with duplicate target names should fail Validate")
	}
}

func TestManifest_Validate_ProductReferencesUnknownTarget(t *testing.T) {
	m := validManifest()
	m.Products = append(m.Products, manifest.ProductDecl{
		Name:              "Ghost",
		Kind:              manifest.ProductKindLibraryAuto,
		MemberTargetNames: []string{"DoesNotExist"},
	})

	if err := m.Validate(); err == nil {
		t.Errorf("Manifest with product referencing unknown target should fail Validate")
	}
}

func TestManifest_IsExcluded(t *testing.T) {
	m := manifest.Manifest{DisplayName: "Widget", ExcludedPaths: []string{"Tests/Fixtures"}}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"exact_match", "Tests/Fixtures", true},
		{"nested_under_excluded", "Tests/Fixtures/data.txt", true},
		{"sibling_not_excluded", "Tests/Fixtures2/data.txt", false},
		{"unrelated_path", "Sources/Widget/widget.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsExcluded(tt.path); got != tt.want {
				t.Errorf("IsExcluded(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestManifest_Equal(t *testing.T) {
	a := validManifest()
	b := validManifest()
	if !a.Equal(b) {
		t.Errorf("two manifests built identically should be Equal")
	}

	b.DisplayName = "Other"
	if a.Equal(b) {
		t.Errorf("manifests with different DisplayName should not be Equal")
	}
}

func TestManifest_JSONRoundTrip(t *testing.T) {
	m := validManifest()

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() failed: %v", err)
	}

	var got manifest.Manifest
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON(%s) failed: %v", data, err)
	}
	if !got.Equal(m) {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}
