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

package layout_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/layout"
	"dirpx.dev/dxpkg/manifest"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("// placeholder\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

func TestWalk_SourcesConvention(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Sources", "WidgetCore", "core.c"))
	writeFile(t, filepath.Join(dir, "Sources", "WidgetCLI", "main.c"))

	modules, warnings, err := layout.Walk(dir, "pkg://widget", manifest.Manifest{DisplayName: "Widget"})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if !warnings.Empty() {
		t.Errorf("warnings = %v, want none", warnings.Messages())
	}
	if len(modules) != 2 {
		t.Fatalf("Walk returned %d modules, want 2: %+v", len(modules), modules)
	}
	if modules[0].Name != "WidgetCLI" || modules[0].Kind != manifest.TargetKindExecutable {
		t.Errorf("modules[0] = %+v, want WidgetCLI/executable", modules[0])
	}
	if modules[1].Name != "WidgetCore" || modules[1].Kind != manifest.TargetKindLibrary {
		t.Errorf("modules[1] = %+v, want WidgetCore/library", modules[1])
	}
}

func TestWalk_TestsConvention(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Sources", "WidgetCore", "core.c"))
	writeFile(t, filepath.Join(dir, "Tests", "WidgetCoreTests", "core_test.c"))

	modules, _, err := layout.Walk(dir, "pkg://widget", manifest.Manifest{DisplayName: "Widget"})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	found := false
	for _, mod := range modules {
		if mod.Name == "WidgetCoreTests" {
			found = true
			if mod.Kind != manifest.TargetKindTest {
				t.Errorf("WidgetCoreTests.Kind = %v, want Test", mod.Kind)
			}
		}
	}
	if !found {
		t.Fatalf("Walk did not produce a WidgetCoreTests module: %+v", modules)
	}
}

func TestWalk_FlatSingleModule(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "widget.c"))

	modules, _, err := layout.Walk(dir, "pkg://widget", manifest.Manifest{DisplayName: "Widget"})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(modules) != 1 || modules[0].Name != "Widget" {
		t.Fatalf("Walk = %+v, want single Widget module", modules)
	}
}

// TestWalk_FlatWithSubdirsRejected covers spec.md §8 scenario 7: a flat
// layout (no Sources/ or Tests/ convention directory) with a stray
// subdirectory must fail, and removing the offending subdirectory must
// make the layout valid without any other change.
func TestWalk_FlatWithSubdirsRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "widget.c"))
	writeFile(t, filepath.Join(dir, "extra", "stray.c"))

	_, _, err := layout.Walk(dir, "pkg://widget", manifest.Manifest{DisplayName: "Widget"})
	var invalid *diag.InvalidLayout
	if !errors.As(err, &invalid) {
		t.Fatalf("Walk error = %v, want *diag.InvalidLayout", err)
	}
	if invalid.Reason != diag.LayoutReasonFlatWithSubdirs {
		t.Errorf("InvalidLayout.Reason = %s, want flatWithSubdirs", invalid.Reason)
	}

	if err := os.RemoveAll(filepath.Join(dir, "extra")); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	modules, _, err := layout.Walk(dir, "pkg://widget", manifest.Manifest{DisplayName: "Widget"})
	if err != nil {
		t.Fatalf("Walk failed after removing stray subdirectory: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("Walk = %+v, want single module once the layout is flat", modules)
	}
}

func TestWalk_MultipleRootsRejected(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.c"))
	writeFile(t, filepath.Join(dir, "Sources", "WidgetCore", "core.c"))

	_, _, err := layout.Walk(dir, "pkg://widget", manifest.Manifest{DisplayName: "Widget"})
	var invalid *diag.InvalidLayout
	if !errors.As(err, &invalid) {
		t.Fatalf("Walk error = %v, want *diag.InvalidLayout", err)
	}
	if invalid.Reason != diag.LayoutReasonMultipleRoots {
		t.Errorf("InvalidLayout.Reason = %s, want multipleRoots", invalid.Reason)
	}
}

func TestWalk_ExclusionsAppliedBeforeRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "widget.c"))
	writeFile(t, filepath.Join(dir, "vendor", "third_party.c"))

	m := manifest.Manifest{DisplayName: "Widget", ExcludedPaths: []string{"vendor"}}
	modules, _, err := layout.Walk(dir, "pkg://widget", m)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(modules) != 1 {
		t.Fatalf("Walk = %+v, want a single module once vendor/ is excluded", modules)
	}
}

func TestWalk_ExplicitSourcesOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Sources", "WidgetCore", "core.c"))
	writeFile(t, filepath.Join(dir, "odd", "place", "impl.c"))

	m := manifest.Manifest{
		DisplayName: "Widget",
		Targets: []manifest.TargetDecl{
			{Name: "WidgetCore", Kind: manifest.TargetKindLibrary, ExplicitSources: []string{"odd/place"}},
		},
	}
	modules, _, err := layout.Walk(dir, "pkg://widget", m)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(modules) != 1 || modules[0].Sources[0] != "odd/place" {
		t.Fatalf("Walk = %+v, want one module sourced from odd/place verbatim", modules)
	}
}
