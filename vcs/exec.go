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
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"dirpx.dev/dxpkg/dxcore/model/git"
)

// ExecVCS drives a real `git` binary found on PATH. It is the production
// VCS implementation; dxpkg never embeds a pure-Go git client.
type ExecVCS struct {
	// GitPath overrides the git binary to invoke. Empty means "git" (resolved
	// via PATH).
	GitPath string
}

func (e *ExecVCS) gitPath() string {
	if e.GitPath != "" {
		return e.GitPath
	}
	return "git"
}

// run executes git with args in dir, suppressing any interactive credential
// prompt, and returns combined stdout+stderr.
func (e *ExecVCS) run(dir string, args ...string) ([]byte, error) {
	cmd := exec.Command(e.gitPath(), args...)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Env = mergeEnv(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("vcs: git %s failed: %w: %s", strings.Join(args, " "), err, bytes.TrimSpace(out))
	}
	return out, nil
}

func mergeEnv(base []string, overrides ...string) []string {
	merged := make([]string, 0, len(base)+len(overrides))
	merged = append(merged, base...)
	merged = append(merged, overrides...)
	return merged
}

func (e *ExecVCS) ListTags(url string) ([]string, error) {
	out, err := e.run("", "ls-remote", "--tags", "--refs", url)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		const prefix = "refs/tags/"
		if !strings.HasPrefix(fields[1], prefix) {
			continue
		}
		tags = append(tags, strings.TrimPrefix(fields[1], prefix))
	}
	return tags, nil
}

func (e *ExecVCS) Clone(url, destDir string) error {
	if info, err := os.Stat(destDir); err == nil && info.IsDir() {
		if _, err := os.Stat(destDir + "/.git"); err == nil {
			return nil
		}
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("vcs: creating %q: %w", destDir, err)
	}
	_, err := e.run("", "clone", url, destDir)
	return err
}

func (e *ExecVCS) Checkout(dir string, ref git.RefName) error {
	_, err := e.run(dir, "checkout", "--force", ref.String())
	return err
}

func (e *ExecVCS) ReadFile(dir string, ref git.RefName, relativePath string) ([]byte, error) {
	out, err := e.run(dir, "show", fmt.Sprintf("%s:%s", ref.String(), relativePath))
	if err != nil {
		if strings.Contains(err.Error(), "exists on disk, but not in") ||
			strings.Contains(err.Error(), "does not exist in") ||
			strings.Contains(err.Error(), "fatal: invalid object name") ||
			strings.Contains(err.Error(), "Path") {
			return nil, &NotFoundError{Dir: dir, Ref: ref, RelativePath: relativePath}
		}
		return nil, err
	}
	return out, nil
}

func (e *ExecVCS) HasLocalChanges(dir string) (git.WorktreeStatus, error) {
	out, err := e.run(dir, "status", "--porcelain")
	if err != nil {
		return git.WorktreeStatus{}, err
	}

	var hasUnstaged, hasStaged, hasUntracked bool
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 2 {
			continue
		}
		indexStatus, worktreeStatus := line[0], line[1]
		switch {
		case indexStatus == '?' && worktreeStatus == '?':
			hasUntracked = true
		case indexStatus != ' ' && indexStatus != '?':
			hasStaged = true
			fallthrough
		default:
			if worktreeStatus != ' ' && worktreeStatus != '?' {
				hasUnstaged = true
			}
		}
	}
	return git.NewWorktreeStatus(hasUnstaged, hasStaged, hasUntracked), nil
}

// ResolveCommit returns the full commit hash ref points at in dir. It
// implements CommitResolver, an optional capability beyond the core VCS
// interface that only a real git checkout can satisfy (spec.md §6's
// resolved manifest record wants "the commit id", which the core VCS
// Adapter contract itself has no need of).
func (e *ExecVCS) ResolveCommit(dir string, ref git.RefName) (string, error) {
	out, err := e.run(dir, "rev-parse", ref.String())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

var _ VCS = (*ExecVCS)(nil)
var _ CommitResolver = (*ExecVCS)(nil)
