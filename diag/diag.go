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

// Package diag holds the closed, exhaustive error taxonomy returned by the
// resolver, layout walker, and module graph builder, plus a Warnings
// accumulator for non-fatal conditions. Every error carries enough context
// (url, version/range, path) to reproduce the condition from its message
// alone, following the same philosophy as dxcore/errors' enum-error types.
package diag

import (
	"fmt"
	"strings"

	"dirpx.dev/dxpkg/dxcore/model/semver"
)

// InvalidVersionString reports a string that failed to parse as a Version.
type InvalidVersionString struct {
	Text   string
	Reason string
}

func (e *InvalidVersionString) Error() string {
	return fmt.Sprintf("dxpkg: invalid version string %q: %s", e.Text, e.Reason)
}

// NoManifest reports that a Manifest Loader found no manifest file at path.
type NoManifest struct {
	Path string
}

func (e *NoManifest) Error() string {
	return fmt.Sprintf("dxpkg: no manifest found at %s", e.Path)
}

// NoManifestAtRef reports that the selected ref of url has no manifest,
// which is always fatal (unlike an unselected HEAD lacking one).
type NoManifestAtRef struct {
	URL string
	Ref string
}

func (e *NoManifestAtRef) Error() string {
	return fmt.Sprintf("dxpkg: %s has no manifest at ref %s", e.URL, e.Ref)
}

// Unversioned reports that url has no semver tags at all but resolution
// requires a version.
type Unversioned struct {
	URL string
}

func (e *Unversioned) Error() string {
	return fmt.Sprintf("dxpkg: %s has no semver tags", e.URL)
}

// InvalidDependencyGraph reports that the accumulated constraints on url
// intersected to the empty range. Reason, when non-empty, is a
// newline-joined account of the individual contributing constraints
// (assembled via an rxmerr.Collector when more than one constraint
// contributed to the conflict), so the message alone reproduces the
// condition.
type InvalidDependencyGraph struct {
	URL    string
	Reason string
}

func (e *InvalidDependencyGraph) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("dxpkg: constraints on %s are unsatisfiable (empty intersection)", e.URL)
	}
	return fmt.Sprintf("dxpkg: constraints on %s are unsatisfiable (empty intersection): %s", e.URL, e.Reason)
}

// InvalidDependencyGraphMissingTag reports that no published tag of url
// satisfies the intersected range.
type InvalidDependencyGraphMissingTag struct {
	URL       string
	Range     semver.Range
	Available []semver.Version
}

func (e *InvalidDependencyGraphMissingTag) Error() string {
	tags := make([]string, len(e.Available))
	for i, v := range e.Available {
		tags[i] = v.String()
	}
	return fmt.Sprintf("dxpkg: no tag of %s satisfies %s (available: %s)", e.URL, e.Range, strings.Join(tags, ", "))
}

// LayoutReason enumerates why the Package Layout Walker rejected a checkout.
type LayoutReason string

const (
	LayoutReasonMultipleRoots   LayoutReason = "multipleRoots"
	LayoutReasonFlatWithSubdirs LayoutReason = "flatWithSubdirs"
	LayoutReasonOverlap         LayoutReason = "overlap"
)

// InvalidLayout reports that the Package Layout Walker could not derive an
// unambiguous module set from a checkout directory.
type InvalidLayout struct {
	Path   string
	Reason LayoutReason
}

func (e *InvalidLayout) Error() string {
	return fmt.Sprintf("dxpkg: invalid layout at %s: %s", e.Path, e.Reason)
}

// UnknownModuleDependency reports that a module declared a dependency name
// the Module Graph Builder could not resolve to a sibling module or a
// product of a directly-depended-on package.
type UnknownModuleDependency struct {
	Module string
	Name   string
}

func (e *UnknownModuleDependency) Error() string {
	return fmt.Sprintf("dxpkg: module %s declares unknown dependency %q", e.Module, e.Name)
}

// CyclicModuleGraph reports a dependency cycle, naming the modules on the
// cycle in traversal order.
type CyclicModuleGraph struct {
	Path []string
}

func (e *CyclicModuleGraph) Error() string {
	return fmt.Sprintf("dxpkg: cyclic module dependency: %s", strings.Join(e.Path, " -> "))
}

// ProductWithNoModules reports a declared product whose member target list
// produced zero modules.
type ProductWithNoModules struct {
	Product string
}

func (e *ProductWithNoModules) Error() string {
	return fmt.Sprintf("dxpkg: product %s has no modules", e.Product)
}

// ProductWithMissingModules reports a declared product naming member
// modules that no package actually produced.
type ProductWithMissingModules struct {
	Product string
	Missing []string
}

func (e *ProductWithMissingModules) Error() string {
	return fmt.Sprintf("dxpkg: product %s is missing modules: %s", e.Product, strings.Join(e.Missing, ", "))
}

// Warnings accumulates non-fatal diagnostics produced during resolution,
// layout walking, or graph building. The zero value is ready to use.
type Warnings struct {
	messages []string
}

// Add appends a formatted warning message.
func (w *Warnings) Add(format string, args ...any) {
	w.messages = append(w.messages, fmt.Sprintf(format, args...))
}

// Messages returns the accumulated warnings in the order they were added.
func (w *Warnings) Messages() []string {
	return w.messages
}

// Empty reports whether no warnings have been recorded.
func (w *Warnings) Empty() bool {
	return len(w.messages) == 0
}
