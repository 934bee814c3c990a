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

func TestParseTargetKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    manifest.TargetKind
		wantErr bool
	}{
		{"library", "library", manifest.TargetKindLibrary, false},
		{"executable", "executable", manifest.TargetKindExecutable, false},
		{"test", "test", manifest.TargetKindTest, false},
		{"case_insensitive", "LIBRARY", manifest.TargetKindLibrary, false},
		{"whitespace", "  plugin  ", manifest.TargetKindPlugin, false},
		{"unknown_name", "bogus", manifest.TargetKindUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.ParseTargetKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTargetKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTargetKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargetKind_StringRoundTrip(t *testing.T) {
	kinds := []manifest.TargetKind{
		manifest.TargetKindLibrary,
		manifest.TargetKindExecutable,
		manifest.TargetKindTest,
		manifest.TargetKindPlugin,
		manifest.TargetKindMacro,
		manifest.TargetKindSystemLibrary,
	}

	for _, k := range kinds {
		parsed, err := manifest.ParseTargetKind(k.String())
		if err != nil {
			t.Fatalf("ParseTargetKind(%q) failed: %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("round trip %v -> %q -> %v", k, k.String(), parsed)
		}
	}
}

func TestParseProductKind(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want manifest.ProductKind
	}{
		{"library_auto", "library-auto", manifest.ProductKindLibraryAuto},
		{"library_static", "library-static", manifest.ProductKindLibraryStatic},
		{"library_dynamic", "library-dynamic", manifest.ProductKindLibraryDynamic},
		{"executable", "executable", manifest.ProductKindExecutable},
		{"plugin", "plugin", manifest.ProductKindPlugin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.ParseProductKind(tt.in)
			if err != nil {
				t.Fatalf("ParseProductKind(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseProductKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargetKind_Validate(t *testing.T) {
	if err := manifest.TargetKindLibrary.Validate(); err != nil {
		t.Errorf("TargetKindLibrary should validate, got %v", err)
	}
	if err := manifest.TargetKind(99).Validate(); err == nil {
		t.Errorf("out-of-range TargetKind should fail Validate")
	}
}
