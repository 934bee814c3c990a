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

// Package layout implements the Package Layout Walker (spec.md §4.7):
// given a checkout directory and its Manifest, it enumerates the Modules
// a build of that checkout would produce, by a fixed set of ordered
// directory conventions.
package layout

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/graph"
	"dirpx.dev/dxpkg/ident"
	"dirpx.dev/dxpkg/loader"
	"dirpx.dev/dxpkg/manifest"
)

// sourceRootNames lists the accepted spellings of the sources convention
// directory, in the case-insensitive first-existing-wins order spec.md
// §4.7 rule 2 specifies.
var sourceRootNames = []string{"Sources", "src", "source", "Source"}

// testRootNames is sourceRootNames' analogue for spec.md §4.7 rule 3.
var testRootNames = []string{"Tests", "tests", "test", "Test"}

// Walk enumerates the Modules dir (a finalized checkout of a package
// identified by url) produces under m, applying m's exclusions before any
// rule is evaluated. warnings accumulates non-fatal diagnostics (e.g. a
// package with no sources at all); a non-nil error means the layout is
// ambiguous or malformed and no modules are returned.
func Walk(dir string, url manifest.PackageIdentity, m manifest.Manifest) ([]graph.Module, *diag.Warnings, error) {
	warnings := &diag.Warnings{}

	entries, err := readDirExcluding(dir, m)
	if err != nil {
		return nil, warnings, err
	}

	explicit := explicitSourceTargets(m)
	sourcesDir, hasSources := firstExistingDir(dir, entries, sourceRootNames)
	testsDir, hasTests := firstExistingDir(dir, entries, testRootNames)
	topLevelMain := hasTopLevelMain(entries)

	if len(explicit) == 0 && topLevelMain && hasSources {
		return nil, warnings, &diag.InvalidLayout{Path: dir, Reason: diag.LayoutReasonMultipleRoots}
	}

	var modules []graph.Module

	overridden := make(map[string]bool, len(explicit))
	if len(explicit) > 0 {
		for _, t := range explicit {
			modules = append(modules, moduleFromExplicitTarget(t, url))
			overridden[moduleName(t.Name)] = true
		}
	}

	// Sources/ and Tests/ are independent subtrees; walk both before
	// failing so a bad entry under one doesn't hide a bad entry under the
	// other.
	var conventionErr error
	if hasSources {
		sourceModules, err := walkConventionDir(sourcesDir, url, m, manifest.TargetKindLibrary)
		conventionErr = multierr.Append(conventionErr, err)
		modules = append(modules, sourceModules...)
	}
	if hasTests {
		testModules, err := walkConventionDir(testsDir, url, m, manifest.TargetKindTest)
		conventionErr = multierr.Append(conventionErr, err)
		modules = append(modules, testModules...)
	}
	if conventionErr != nil {
		return nil, warnings, conventionErr
	}

	// A convention directory named after an explicit-source target is
	// superseded by that target's explicit sources.
	kept := modules[:len(explicit)]
	for _, mod := range modules[len(explicit):] {
		if !overridden[mod.Name] {
			kept = append(kept, mod)
		}
	}
	modules = kept

	if len(explicit) == 0 && !hasSources && !hasTests {
		flat, ok, err := flatFallback(dir, entries, url, m)
		if err != nil {
			return nil, warnings, err
		}
		if ok {
			modules = append(modules, flat)
		}
	}

	if len(modules) == 0 {
		warnings.Add("package %s produced no modules from %s", url, dir)
	}

	return modules, warnings, nil
}

// explicitSourceTargets returns the TargetDecls that pin their own sources
// explicitly (spec.md §4.7 rule 1), in manifest declaration order.
func explicitSourceTargets(m manifest.Manifest) []manifest.TargetDecl {
	var out []manifest.TargetDecl
	for _, t := range m.Targets {
		if len(t.ExplicitSources) > 0 {
			out = append(out, t)
		}
	}
	return out
}

func moduleFromExplicitTarget(t manifest.TargetDecl, url manifest.PackageIdentity) graph.Module {
	targetDeps, productDeps := splitDependencyNames(t.DependencyNames, nil)
	return graph.Module{
		Name:                    moduleName(t.Name),
		Kind:                    t.Kind,
		Sources:                 append([]string(nil), t.ExplicitSources...),
		IncludeDir:              t.ExplicitPublicHeadersDir,
		DeclaredTargetDepNames:  targetDeps,
		DeclaredProductDepNames: productDeps,
		ContainingPackage:       url,
	}
}

// walkConventionDir turns each direct subdirectory of convention (a
// Sources/-or-Tests/-like root) into one Module of the given defaultKind,
// overridden to executable when the subdirectory contains a main.<ext>
// entry file, per spec.md §4.7 rule 2. Excluded paths were already
// stripped by readDirExcluding before convention was located, but nested
// subdirectories are re-filtered here since exclusions apply package-wide.
func walkConventionDir(convention string, url manifest.PackageIdentity, m manifest.Manifest, defaultKind manifest.TargetKind) ([]graph.Module, error) {
	entries, err := os.ReadDir(convention)
	if err != nil {
		return nil, err
	}

	var modules []graph.Module
	var readErrs error
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		relPath := filepath.ToSlash(filepath.Join(relBase(convention), e.Name()))
		if m.IsExcluded(relPath) {
			continue
		}

		sub := filepath.Join(convention, e.Name())
		subEntries, err := os.ReadDir(sub)
		if err != nil {
			// Keep walking the remaining sibling module directories instead
			// of aborting the whole convention root on one bad entry; every
			// unreadable subdirectory is reported together at the end.
			readErrs = multierr.Append(readErrs, err)
			continue
		}

		kind := defaultKind
		if defaultKind != manifest.TargetKindTest && hasTopLevelMain(subEntries) {
			kind = manifest.TargetKindExecutable
		}

		name := e.Name()
		for _, t := range m.Targets {
			if strings.EqualFold(t.Name, name) {
				name = t.Name
				break
			}
		}

		targetDeps, productDeps := dependencyNamesForModule(e.Name(), m)
		modules = append(modules, graph.Module{
			Name:                    moduleName(name),
			Kind:                    kind,
			Sources:                 []string{sub},
			IncludeDir:              includeDirFor(sub, subEntries),
			DeclaredTargetDepNames:  targetDeps,
			DeclaredProductDepNames: productDeps,
			ContainingPackage:       url,
		})
	}
	if readErrs != nil {
		return nil, readErrs
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].Name < modules[j].Name })
	return modules, nil
}

// flatFallback synthesizes spec.md §4.7 rule 4's single module: a whole
// checkout treated as one module when it has no Sources/Tests/ convention
// directory. entries is already filtered by readDirExcluding (exclusion
// list plus .git), so any subdirectory remaining here is an error.
func flatFallback(dir string, entries []os.DirEntry, url manifest.PackageIdentity, m manifest.Manifest) (graph.Module, bool, error) {
	hasFiles := false
	for _, e := range entries {
		if e.IsDir() {
			return graph.Module{}, false, &diag.InvalidLayout{Path: dir, Reason: diag.LayoutReasonFlatWithSubdirs}
		}
		if !isManifestFile(e.Name()) {
			hasFiles = true
		}
	}
	if !hasFiles {
		return graph.Module{}, false, nil
	}

	targetDeps, productDeps := allDependencyNames(m)
	return graph.Module{
		Name:                    moduleName(m.DisplayName),
		Kind:                    manifest.TargetKindLibrary,
		Sources:                 []string{dir},
		IncludeDir:              includeDirFor(dir, entries),
		DeclaredTargetDepNames:  targetDeps,
		DeclaredProductDepNames: productDeps,
		ContainingPackage:       url,
	}, true, nil
}

// dependencyNamesForModule looks up the TargetDecl named after subdirName
// (a convention-derived module), falling back to no declared dependencies
// when the manifest names no matching target explicitly.
func dependencyNamesForModule(subdirName string, m manifest.Manifest) (targetDeps, productDeps []string) {
	for _, t := range m.Targets {
		if strings.EqualFold(t.Name, subdirName) {
			return splitDependencyNames(t.DependencyNames, m.Targets)
		}
	}
	return nil, nil
}

// allDependencyNames collects every declared dependency name across all of
// m's targets, for the flat single-module fallback where one Module
// stands in for the whole package.
func allDependencyNames(m manifest.Manifest) (targetDeps, productDeps []string) {
	var all []string
	for _, t := range m.Targets {
		all = append(all, t.DependencyNames...)
	}
	return splitDependencyNames(all, m.Targets)
}

// splitDependencyNames partitions names into those that match a sibling
// target declared in siblings and those that must therefore refer to a
// product of some dependency package, per the Module data model (spec.md
// §3) splitting declaredTargetDepNames from declaredProductDepNames ahead
// of cross-package resolution in the Module Graph Builder.
func splitDependencyNames(names []string, siblings []manifest.TargetDecl) (targetDeps, productDeps []string) {
	for _, name := range names {
		if isSiblingTarget(name, siblings) {
			targetDeps = append(targetDeps, name)
		} else {
			productDeps = append(productDeps, name)
		}
	}
	return targetDeps, productDeps
}

func isSiblingTarget(name string, siblings []manifest.TargetDecl) bool {
	for _, t := range siblings {
		if t.Name == name {
			return true
		}
	}
	return false
}

func moduleName(s string) string {
	return ident.Mangle(s)
}

func includeDirFor(base string, entries []os.DirEntry) string {
	for _, e := range entries {
		if e.IsDir() && e.Name() == "include" {
			return filepath.Join(base, "include")
		}
	}
	return ""
}

func hasTopLevelMain(entries []os.DirEntry) bool {
	for _, e := range entries {
		if !e.IsDir() && isMainFile(e.Name()) {
			return true
		}
	}
	return false
}

func isMainFile(name string) bool {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return base == "main" && filepath.Ext(name) != ""
}

func isManifestFile(name string) bool {
	return name == loader.FileName
}

// firstExistingDir returns the absolute path of the first name in
// candidates that exists as a directory directly under dir (case
// insensitive), matching spec.md §4.7's "first existing wins" rule.
func firstExistingDir(dir string, entries []os.DirEntry, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		for _, e := range entries {
			if e.IsDir() && strings.EqualFold(e.Name(), candidate) {
				return filepath.Join(dir, e.Name()), true
			}
		}
	}
	return "", false
}

// readDirExcluding lists dir's direct entries, dropping any path the
// manifest excludes plus the VCS working-copy directory itself, so every
// downstream rule sees an already-filtered tree (spec.md §4.7: "paths
// inside an excluded directory are never sources", and rule 4's flat
// fallback explicitly carves out ".git" alongside the exclusion list).
func readDirExcluding(dir string, m manifest.Manifest) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var kept []os.DirEntry
	for _, e := range entries {
		if e.Name() == ".git" || m.IsExcluded(e.Name()) {
			continue
		}
		kept = append(kept, e)
	}
	return kept, nil
}

func relBase(path string) string {
	return filepath.Base(path)
}
