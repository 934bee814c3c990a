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

package graph

import (
	"sort"

	"go.uber.org/multierr"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/manifest"
)

// moduleKey identifies a Module uniquely across every resolved package.
type moduleKey struct {
	pkg  manifest.PackageIdentity
	name string
}

// productKey identifies one package's declared product.
type productKey struct {
	pkg  manifest.PackageIdentity
	name string
}

// Build assembles a ModuleGraph from the Modules the layout walker
// produced for each package (spec.md §4.8). root identifies the root
// package, whose test modules are kept; every non-root package's test
// modules are excluded from the returned graph. Build returns
// accumulated non-fatal warnings (e.g. an empty product) alongside any
// fatal error; a fatal error means no graph is returned.
func Build(root manifest.PackageIdentity, packages []PackageModules) (*ModuleGraph, *diag.Warnings, error) {
	warnings := &diag.Warnings{}

	byKey := make(map[moduleKey]*Module)
	byPackage := make(map[manifest.PackageIdentity][]*Module)
	directDeps := make(map[manifest.PackageIdentity]map[manifest.PackageIdentity]bool)
	productMembers := make(map[productKey][]moduleKey)

	for _, pkg := range packages {
		deps := make(map[manifest.PackageIdentity]bool, len(pkg.DirectDependencies))
		for _, d := range pkg.DirectDependencies {
			deps[d] = true
		}
		directDeps[pkg.URL] = deps

		for i := range pkg.Modules {
			mod := &pkg.Modules[i]
			key := moduleKey{pkg: pkg.URL, name: mod.Name}
			byKey[key] = mod
			byPackage[pkg.URL] = append(byPackage[pkg.URL], mod)
		}

		for _, product := range pkg.Products {
			pk := productKey{pkg: pkg.URL, name: product.Name}
			for _, memberName := range product.MemberTargetNames {
				productMembers[pk] = append(productMembers[pk], moduleKey{pkg: pkg.URL, name: memberName})
			}
		}
	}

	var edges []Edge
	var resolveErrs error
	for _, pkg := range packages {
		for i := range pkg.Modules {
			mod := &pkg.Modules[i]

			for _, name := range mod.DeclaredTargetDepNames {
				target := moduleKey{pkg: pkg.URL, name: name}
				if _, ok := byKey[target]; !ok {
					resolveErrs = multierr.Append(resolveErrs, &diag.UnknownModuleDependency{Module: mod.Name, Name: name})
					continue
				}
				edges = append(edges, Edge{FromPackage: pkg.URL, FromModule: mod.Name, ToPackage: pkg.URL, ToModule: name})
			}

			for _, name := range mod.DeclaredProductDepNames {
				members, found := findProduct(productMembers, directDeps[pkg.URL], name)
				if !found {
					resolveErrs = multierr.Append(resolveErrs, &diag.UnknownModuleDependency{Module: mod.Name, Name: name})
					continue
				}
				for _, member := range members {
					edges = append(edges, Edge{FromPackage: pkg.URL, FromModule: mod.Name, ToPackage: member.pkg, ToModule: member.name})
				}
			}
		}
	}
	if resolveErrs != nil {
		return nil, warnings, resolveErrs
	}

	reportMissingProductMembers(packages, byKey, warnings)

	order, err := topologicalOrder(root, byPackage, byKey, edges)
	if err != nil {
		return nil, warnings, err
	}

	return &ModuleGraph{Order: order, Edges: edges}, warnings, nil
}

// findProduct searches the product index of every package in candidates
// (the packages the searching module's own package directly depends on)
// for a product named name, per spec.md §4.8 step 3's "not transitive"
// rule.
func findProduct(index map[productKey][]moduleKey, candidates map[manifest.PackageIdentity]bool, name string) ([]moduleKey, bool) {
	for pkg := range candidates {
		if members, ok := index[productKey{pkg: pkg, name: name}]; ok {
			return members, true
		}
	}
	return nil, false
}

// reportMissingProductMembers emits ProductWithNoModules /
// ProductWithMissingModules warnings for any declared product whose
// member target list is empty or names targets no package's layout
// actually produced as a Module.
func reportMissingProductMembers(packages []PackageModules, byKey map[moduleKey]*Module, warnings *diag.Warnings) {
	for _, pkg := range packages {
		for _, product := range pkg.Products {
			if len(product.MemberTargetNames) == 0 {
				warnings.Add("product %s has no member targets declared", product.Name)
				continue
			}
			var missing []string
			for _, memberName := range product.MemberTargetNames {
				if _, ok := byKey[moduleKey{pkg: pkg.URL, name: memberName}]; !ok {
					missing = append(missing, memberName)
				}
			}
			if len(missing) == len(product.MemberTargetNames) {
				warnings.Add("%s", (&diag.ProductWithNoModules{Product: product.Name}).Error())
			} else if len(missing) > 0 {
				warnings.Add("%s", (&diag.ProductWithMissingModules{Product: product.Name, Missing: missing}).Error())
			}
		}
	}
}

// topologicalOrder runs DFS cycle-coloring (spec.md §4.8 step 4) over
// root's own modules (plus, transitively, every module they reach),
// excluding test modules belonging to non-root packages (step 5), and
// returns the modules in reverse-topological order.
func topologicalOrder(root manifest.PackageIdentity, byPackage map[manifest.PackageIdentity][]*Module, byKey map[moduleKey]*Module, edges []Edge) ([]Module, error) {
	adjacency := make(map[moduleKey][]moduleKey)
	for _, e := range edges {
		from := moduleKey{pkg: e.FromPackage, name: e.FromModule}
		to := moduleKey{pkg: e.ToPackage, name: e.ToModule}
		adjacency[from] = append(adjacency[from], to)
	}

	const (
		white = iota
		gray
		black
	)
	color := make(map[moduleKey]int)
	var order []Module

	var visit func(key moduleKey, path []string) error
	visit = func(key moduleKey, path []string) error {
		switch color[key] {
		case black:
			return nil
		case gray:
			return &diag.CyclicModuleGraph{Path: append(append([]string(nil), path...), key.name)}
		}
		color[key] = gray
		path = append(path, key.name)

		neighbors := append([]moduleKey(nil), adjacency[key]...)
		sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].name < neighbors[j].name })
		for _, next := range neighbors {
			if err := visit(next, path); err != nil {
				return err
			}
		}

		color[key] = black
		mod := byKey[key]
		if mod != nil && !(key.pkg != root && mod.Kind == manifest.TargetKindTest) {
			order = append(order, *mod)
		}
		return nil
	}

	rootModules := append([]*Module(nil), byPackage[root]...)
	sort.Slice(rootModules, func(i, j int) bool { return rootModules[i].Name < rootModules[j].Name })
	for _, mod := range rootModules {
		key := moduleKey{pkg: root, name: mod.Name}
		if err := visit(key, nil); err != nil {
			return nil, err
		}
	}

	return order, nil
}
