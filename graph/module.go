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

// Package graph holds the Module and ModuleGraph data model (spec.md §3)
// and the Module Graph Builder (spec.md §4.8) that assembles a ModuleGraph
// from the modules the Package Layout Walker (package layout) enumerated
// per resolved package.
package graph

import (
	"dirpx.dev/dxpkg/manifest"
)

// Module is a single compilation unit discovered by the layout walker: a
// directory of sources with a kind and a set of unresolved dependency
// names, already split by whether each name can only ever refer to a
// sibling target (present in the owning package's own Targets) or must
// refer to a product some other package declares.
type Module struct {
	Name                    string
	Kind                    manifest.TargetKind
	Sources                 []string
	IncludeDir              string
	DeclaredTargetDepNames  []string
	DeclaredProductDepNames []string
	ContainingPackage       manifest.PackageIdentity
}

// PackageModules is everything the layout walker produced for one resolved
// package: its modules plus the manifest-declared products those modules
// may be exposed under, keyed by product name for the Module Graph
// Builder's cross-package product index.
type PackageModules struct {
	URL      manifest.PackageIdentity
	Modules  []Module
	Products []manifest.ProductDecl
	// DirectDependencies is the set of package URLs this package's own
	// manifest declares a dependency on, constraining which packages'
	// product indexes a module in this package may search (spec.md §4.8
	// step 3: "not transitive").
	DirectDependencies []manifest.PackageIdentity
}

// Edge is a single "uses at compile time" relationship between two
// Modules, identified by their containing package URL and module name.
type Edge struct {
	FromPackage manifest.PackageIdentity
	FromModule  string
	ToPackage   manifest.PackageIdentity
	ToModule    string
}

// ModuleGraph is the acyclic graph of Modules produced by the Module Graph
// Builder. Order is the reverse-topological module order downstream
// builders should consume: every module appears after every module it
// depends on.
type ModuleGraph struct {
	Order []Module
	Edges []Edge
}
