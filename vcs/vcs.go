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

// Package vcs defines the capability dxpkg uses to talk to a package's
// source-control history: list tags, clone, check out a ref, read a file
// at a ref, and detect local modifications. The Resolver and Fetcher are
// written against the VCS interface; ExecVCS is the production
// implementation (shells out to a real `git` binary) and Mock is the
// in-memory test double.
package vcs

import (
	"errors"
	"fmt"

	"dirpx.dev/dxpkg/dxcore/model/git"
)

// ErrNotFound is returned by VCS.ReadFile when the requested path does not
// exist at the given ref. Callers MUST check for this with errors.Is rather
// than comparing strings.
var ErrNotFound = errors.New("vcs: file not found at ref")

// VCS is the capability set the Fetcher and Resolver are written against.
// Production code drives a real git binary (ExecVCS); tests drive an
// in-memory double (Mock). Every method blocks; the VCS Adapter is the
// single suspension point in the core (spec.md §5).
type VCS interface {
	// ListTags returns every tag known for url, in whatever order the
	// underlying VCS reports them. Callers MUST NOT assume any particular
	// order; sort with SortTags before use.
	ListTags(url string) ([]string, error)

	// Clone materializes url into destDir. Clone is a no-op (and MUST NOT
	// error) if destDir already contains a working tree for url.
	Clone(url, destDir string) error

	// Checkout moves dir's working tree to ref.
	Checkout(dir string, ref git.RefName) error

	// ReadFile returns the contents of relativePath as it exists at ref
	// within dir, without mutating dir's working tree. Returns ErrNotFound
	// (wrapped) if the path does not exist at that ref.
	ReadFile(dir string, ref git.RefName, relativePath string) ([]byte, error)

	// HasLocalChanges reports dir's working tree status: whether it has
	// staged, unstaged, or untracked modifications relative to its current
	// ref.
	HasLocalChanges(dir string) (git.WorktreeStatus, error)
}

// CommitResolver is an optional capability a VCS implementation may offer
// beyond the core interface: resolving a ref to the commit hash it
// currently points at, for the resolved manifest record (spec.md §6). Not
// every VCS implementation can support it (Mock has no notion of commit
// hashes), so callers that want a record with commit ids type-assert for
// it rather than requiring it on VCS itself.
type CommitResolver interface {
	ResolveCommit(dir string, ref git.RefName) (string, error)
}

// NotFoundError wraps ErrNotFound with the path and ref that were missing,
// for diagnostics.
type NotFoundError struct {
	Dir          string
	Ref          git.RefName
	RelativePath string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vcs: %s not found at ref %s in %s", e.RelativePath, e.Ref, e.Dir)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
