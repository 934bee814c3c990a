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

// Package loader defines the capability the Resolver uses to turn a
// checkout directory (and optional ref) into a manifest.Manifest. The
// concrete manifest language is a pluggable concern: YAMLLoader is the
// reference implementation, reading "dxpkg.manifest.yaml" via
// gopkg.in/yaml.v3.
package loader

import (
	"dirpx.dev/dxpkg/dxcore/model/git"
	"dirpx.dev/dxpkg/manifest"
)

// FileName is the manifest filename YAMLLoader looks for at the root of a
// checkout.
const FileName = "dxpkg.manifest.yaml"

// Loader loads a Manifest from a checkout directory at an optional ref.
// Implementations read through a vcs.VCS so the loader works identically
// against a real working tree or an in-memory fixture.
type Loader interface {
	// Load returns the Manifest found in dir at ref. An empty ref means
	// "the tree as it currently sits checked out" (typically HEAD).
	// Returns a *diag.NoManifest error (wrapped) if the expected manifest
	// file is absent.
	Load(dir string, ref git.RefName) (manifest.Manifest, error)
}
