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

package vcs

import (
	"fmt"
	"sort"
	"sync"

	"dirpx.dev/dxpkg/dxcore/model/git"
)

// MockRepo is the fixture state for a single URL in a Mock: the tags it
// exposes and, for each ref, the file tree visible at that ref.
type MockRepo struct {
	// Tags maps tag names (without the "refs/tags/" prefix) to the file tree
	// present at that tag. A manifest is typically keyed as
	// "dxpkg.manifest.yaml".
	Tags map[string]map[string][]byte

	// HeadFiles is the file tree visible at HEAD, independent of any tag.
	HeadFiles map[string][]byte

	// Status is what HasLocalChanges reports for this repo's checkout.
	Status git.WorktreeStatus
}

// Mock is an in-memory VCS double for tests. It never touches the
// filesystem or a real git binary; Clone and Checkout only record which ref
// is currently active per destDir.
type Mock struct {
	mu       sync.Mutex
	repos    map[string]*MockRepo
	checkout map[string]string // destDir -> url
	active   map[string]string // destDir -> current ref name
}

// NewMock constructs an empty Mock. Use AddRepo to populate fixture data
// before running resolver/fetcher tests against it.
func NewMock() *Mock {
	return &Mock{
		repos:    make(map[string]*MockRepo),
		checkout: make(map[string]string),
		active:   make(map[string]string),
	}
}

// AddRepo registers repo as the fixture for url, overwriting any prior
// fixture for that url.
func (m *Mock) AddRepo(url string, repo *MockRepo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repos[url] = repo
}

func (m *Mock) ListTags(url string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo, ok := m.repos[url]
	if !ok {
		return nil, fmt.Errorf("vcs: mock has no fixture for %q", url)
	}
	tags := make([]string, 0, len(repo.Tags))
	for t := range repo.Tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags, nil
}

func (m *Mock) Clone(url, destDir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.repos[url]; !ok {
		return fmt.Errorf("vcs: mock has no fixture for %q", url)
	}
	if existing, ok := m.checkout[destDir]; ok && existing != url {
		return fmt.Errorf("vcs: mock destDir %q already bound to %q, cannot clone %q", destDir, existing, url)
	}
	m.checkout[destDir] = url
	return nil
}

func (m *Mock) Checkout(dir string, ref git.RefName) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.checkout[dir]; !ok {
		return fmt.Errorf("vcs: mock dir %q was never cloned", dir)
	}
	m.active[dir] = ref.String()
	return nil
}

func (m *Mock) ReadFile(dir string, ref git.RefName, relativePath string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	url, ok := m.checkout[dir]
	if !ok {
		return nil, fmt.Errorf("vcs: mock dir %q was never cloned", dir)
	}
	repo := m.repos[url]

	var tree map[string][]byte
	if ref.String() == "HEAD" || ref.String() == "" {
		tree = repo.HeadFiles
	} else {
		var ok bool
		tree, ok = repo.Tags[ref.String()]
		if !ok {
			return nil, &NotFoundError{Dir: dir, Ref: ref, RelativePath: relativePath}
		}
	}

	data, ok := tree[relativePath]
	if !ok {
		return nil, &NotFoundError{Dir: dir, Ref: ref, RelativePath: relativePath}
	}
	return data, nil
}

func (m *Mock) HasLocalChanges(dir string) (git.WorktreeStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	url, ok := m.checkout[dir]
	if !ok {
		return git.WorktreeStatus{}, fmt.Errorf("vcs: mock dir %q was never cloned", dir)
	}
	return m.repos[url].Status, nil
}

var _ VCS = (*Mock)(nil)
