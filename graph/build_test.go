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

package graph_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/graph"
	"dirpx.dev/dxpkg/manifest"
)

func moduleNames(modules []graph.Module) []string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	return names
}

func TestBuild_IntraPackageEdge(t *testing.T) {
	root := manifest.PackageIdentity("pkg://root")
	packages := []graph.PackageModules{
		{
			URL: root,
			Modules: []graph.Module{
				{Name: "App", Kind: manifest.TargetKindExecutable, DeclaredTargetDepNames: []string{"Core"}, ContainingPackage: root},
				{Name: "Core", Kind: manifest.TargetKindLibrary, ContainingPackage: root},
			},
		},
	}

	g, warnings, err := graph.Build(root, packages)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !warnings.Empty() {
		t.Errorf("warnings = %v, want none", warnings.Messages())
	}
	if diff := cmp.Diff([]string{"Core", "App"}, moduleNames(g.Order)); diff != "" {
		t.Fatalf("Order names mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_CrossPackageProductEdge(t *testing.T) {
	root := manifest.PackageIdentity("pkg://root")
	dep := manifest.PackageIdentity("pkg://dep")
	packages := []graph.PackageModules{
		{
			URL:                root,
			DirectDependencies: []manifest.PackageIdentity{dep},
			Modules: []graph.Module{
				{Name: "App", Kind: manifest.TargetKindExecutable, DeclaredProductDepNames: []string{"DepLib"}, ContainingPackage: root},
			},
		},
		{
			URL: dep,
			Modules: []graph.Module{
				{Name: "DepCore", Kind: manifest.TargetKindLibrary, ContainingPackage: dep},
			},
			Products: []manifest.ProductDecl{
				{Name: "DepLib", Kind: manifest.ProductKindLibraryAuto, MemberTargetNames: []string{"DepCore"}},
			},
		},
	}

	g, _, err := graph.Build(root, packages)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if diff := cmp.Diff([]string{"DepCore", "App"}, moduleNames(g.Order)); diff != "" {
		t.Fatalf("Order names mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_NonTransitiveProductLookup(t *testing.T) {
	root := manifest.PackageIdentity("pkg://root")
	dep := manifest.PackageIdentity("pkg://dep")
	transitive := manifest.PackageIdentity("pkg://transitive")
	packages := []graph.PackageModules{
		{
			URL:                root,
			DirectDependencies: []manifest.PackageIdentity{dep},
			Modules: []graph.Module{
				{Name: "App", Kind: manifest.TargetKindExecutable, DeclaredProductDepNames: []string{"TransitiveLib"}, ContainingPackage: root},
			},
		},
		{
			URL:                dep,
			DirectDependencies: []manifest.PackageIdentity{transitive},
		},
		{
			URL: transitive,
			Products: []manifest.ProductDecl{
				{Name: "TransitiveLib", Kind: manifest.ProductKindLibraryAuto, MemberTargetNames: []string{"Core"}},
			},
		},
	}

	_, _, err := graph.Build(root, packages)
	var unknown *diag.UnknownModuleDependency
	if !errors.As(err, &unknown) {
		t.Fatalf("Build error = %v, want *diag.UnknownModuleDependency (product not directly depended-on)", err)
	}
}

func TestBuild_CycleDetected(t *testing.T) {
	root := manifest.PackageIdentity("pkg://root")
	packages := []graph.PackageModules{
		{
			URL: root,
			Modules: []graph.Module{
				{Name: "A", DeclaredTargetDepNames: []string{"B"}, ContainingPackage: root},
				{Name: "B", DeclaredTargetDepNames: []string{"A"}, ContainingPackage: root},
			},
		},
	}

	_, _, err := graph.Build(root, packages)
	var cycle *diag.CyclicModuleGraph
	if !errors.As(err, &cycle) {
		t.Fatalf("Build error = %v, want *diag.CyclicModuleGraph", err)
	}
}

func TestBuild_ExcludesNonRootTestModules(t *testing.T) {
	root := manifest.PackageIdentity("pkg://root")
	dep := manifest.PackageIdentity("pkg://dep")
	packages := []graph.PackageModules{
		{
			URL:                root,
			DirectDependencies: []manifest.PackageIdentity{dep},
			Modules: []graph.Module{
				{Name: "App", Kind: manifest.TargetKindExecutable, DeclaredProductDepNames: []string{"DepLib"}, ContainingPackage: root},
			},
		},
		{
			URL: dep,
			Modules: []graph.Module{
				{Name: "DepCore", Kind: manifest.TargetKindLibrary, ContainingPackage: dep},
				{Name: "DepCoreTests", Kind: manifest.TargetKindTest, ContainingPackage: dep},
			},
			Products: []manifest.ProductDecl{
				{Name: "DepLib", Kind: manifest.ProductKindLibraryAuto, MemberTargetNames: []string{"DepCore"}},
			},
		},
	}

	g, _, err := graph.Build(root, packages)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, mod := range g.Order {
		if mod.Name == "DepCoreTests" {
			t.Fatalf("Order = %+v, want DepCoreTests excluded (non-root test module)", g.Order)
		}
	}
}

func TestBuild_ProductWithMissingModulesWarns(t *testing.T) {
	root := manifest.PackageIdentity("pkg://root")
	packages := []graph.PackageModules{
		{
			URL: root,
			Products: []manifest.ProductDecl{
				{Name: "Missing", Kind: manifest.ProductKindLibraryAuto, MemberTargetNames: []string{"Ghost"}},
			},
		},
	}

	_, warnings, err := graph.Build(root, packages)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if warnings.Empty() {
		t.Fatalf("warnings = none, want a ProductWithNoModules warning")
	}
}
