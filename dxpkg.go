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

// Package dxpkg is the public entry point to the dependency resolution
// core: Resolve drives the Resolver (package resolve) to a fixed point
// over a root manifest's declared dependencies, and BuildModuleGraph
// drives the Package Layout Walker (package layout) and Module Graph
// Builder (package graph) over the resolved packages to produce a
// buildable module graph.
package dxpkg

import (
	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/graph"
	"dirpx.dev/dxpkg/layout"
	"dirpx.dev/dxpkg/loader"
	"dirpx.dev/dxpkg/manifest"
	"dirpx.dev/dxpkg/resolve"
	"dirpx.dev/dxpkg/vcs"
)

// Resolve resolves rootManifest's declared dependencies to a concrete,
// reverse-topologically ordered sequence of ResolvedPackage, fetching and
// checking out packages under checkoutRoot through v and loading their
// manifests through l. A non-nil error means resolution failed terminally;
// warnings carries non-fatal diagnostics regardless of outcome.
func Resolve(rootManifest manifest.Manifest, checkoutRoot string, v vcs.VCS, l loader.Loader) ([]resolve.ResolvedPackage, *diag.Warnings, error) {
	return resolve.NewResolver(v, l, checkoutRoot).Resolve(rootManifest)
}

// BuildModuleGraph walks rootDir (the root package's own checkout, at
// rootURL) and every resolved package's checkout with the Package Layout
// Walker, then assembles a ModuleGraph from the combined module set. A
// non-nil error means the layout or the module graph was invalid;
// warnings carries non-fatal diagnostics regardless of outcome.
func BuildModuleGraph(rootDir string, rootURL manifest.PackageIdentity, rootManifest manifest.Manifest, resolved []resolve.ResolvedPackage) (*graph.ModuleGraph, *diag.Warnings, error) {
	warnings := &diag.Warnings{}

	packages := make([]graph.PackageModules, 0, len(resolved)+1)

	rootModules, rootWarnings, err := layout.Walk(rootDir, rootURL, rootManifest)
	if err != nil {
		return nil, warnings, err
	}
	mergeWarnings(warnings, rootWarnings)
	packages = append(packages, graph.PackageModules{
		URL:                rootURL,
		Modules:            rootModules,
		Products:           rootManifest.Products,
		DirectDependencies: dependencyURLs(rootManifest),
	})

	for _, pkg := range resolved {
		url := manifest.PackageIdentity(pkg.URL)
		modules, w, err := layout.Walk(pkg.CheckoutPath, url, pkg.Manifest)
		if err != nil {
			return nil, warnings, err
		}
		mergeWarnings(warnings, w)
		packages = append(packages, graph.PackageModules{
			URL:                url,
			Modules:            modules,
			Products:           pkg.Manifest.Products,
			DirectDependencies: dependencyURLs(pkg.Manifest),
		})
	}

	g, buildWarnings, err := graph.Build(rootURL, packages)
	mergeWarnings(warnings, buildWarnings)
	if err != nil {
		return nil, warnings, err
	}
	return g, warnings, nil
}

func dependencyURLs(m manifest.Manifest) []manifest.PackageIdentity {
	out := make([]manifest.PackageIdentity, len(m.DeclaredDependencies))
	for i, d := range m.DeclaredDependencies {
		out[i] = d.URL
	}
	return out
}

func mergeWarnings(dst, src *diag.Warnings) {
	for _, msg := range src.Messages() {
		dst.Add("%s", msg)
	}
}
