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

package fetch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dirpx.dev/dxpkg/dxcore/model/semver"
)

// ScannedEntry is one directory found under a checkout root by
// ScanCheckoutRoot: either a finalized "<PackageName>-<Version>" checkout,
// or a bare "<PackageName>" clone adopted as-is (its Version is the zero
// value; its effective version, if any, comes only from its checked-out
// manifest).
type ScannedEntry struct {
	Dir         string
	DisplayName string
	Version     semver.Version
	HasVersion  bool
}

// ScanCheckoutRoot lists every top-level directory under root and
// classifies each as a versioned or bare checkout per the durable directory
// layout in spec.md §6. It performs no VCS I/O; it only reads directory
// names. It does not map entries to package URLs, and neither the Fetcher
// nor the Resolver consults it, so existing checkouts are not adopted.
func ScanCheckoutRoot(root string) ([]ScannedEntry, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch: scanning checkout root %s: %w", root, err)
	}

	var out []ScannedEntry
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		displayName, version, hasVersion := splitVersionSuffix(name)
		out = append(out, ScannedEntry{
			Dir:         filepath.Join(root, name),
			DisplayName: displayName,
			Version:     version,
			HasVersion:  hasVersion,
		})
	}
	return out, nil
}

// splitVersionSuffix splits "<PackageName>-<Version>" at its last hyphen
// run that yields a parseable Version suffix. A name with no such suffix is
// returned unsplit, with hasVersion false (a bare "tip" clone).
func splitVersionSuffix(name string) (displayName string, version semver.Version, hasVersion bool) {
	idx := strings.LastIndexByte(name, '-')
	for idx > 0 {
		candidate := name[idx+1:]
		if v, err := semver.ParseVersion(candidate); err == nil {
			return name[:idx], v, true
		}
		idx = strings.LastIndexByte(name[:idx], '-')
	}
	return name, semver.Version{}, false
}
