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

package loader

import (
	"errors"
	"fmt"
	"path/filepath"

	"dirpx.dev/dxpkg/diag"
	"dirpx.dev/dxpkg/dxcore/model/git"
	"dirpx.dev/dxpkg/manifest"
	"dirpx.dev/dxpkg/vcs"
	"gopkg.in/yaml.v3"
)

// YAMLLoader reads manifest.Manifest values out of a FileName document at
// the root of a checkout, via a vcs.VCS so it works the same way against a
// real working tree or an in-memory fixture.
type YAMLLoader struct {
	VCS vcs.VCS
}

// NewYAMLLoader constructs a YAMLLoader reading through v.
func NewYAMLLoader(v vcs.VCS) *YAMLLoader {
	return &YAMLLoader{VCS: v}
}

func (l *YAMLLoader) Load(dir string, ref git.RefName) (manifest.Manifest, error) {
	data, err := l.VCS.ReadFile(dir, ref, FileName)
	if err != nil {
		if errors.Is(err, vcs.ErrNotFound) {
			return manifest.Manifest{}, &diag.NoManifest{Path: filepath.Join(dir, FileName)}
		}
		return manifest.Manifest{}, fmt.Errorf("loader: reading %s: %w", FileName, err)
	}

	var m manifest.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return manifest.Manifest{}, fmt.Errorf("loader: parsing %s: %w", FileName, err)
	}
	return m, nil
}

var _ Loader = (*YAMLLoader)(nil)
