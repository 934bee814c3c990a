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

package record_test

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxpkg/dxcore/model/git"
	dxsemver "dirpx.dev/dxpkg/dxcore/model/semver"
	"dirpx.dev/dxpkg/manifest"
	"dirpx.dev/dxpkg/record"
	"dirpx.dev/dxpkg/resolve"
	"dirpx.dev/dxpkg/vcs"
)

func mustVersion(t *testing.T, s string) dxsemver.Version {
	t.Helper()
	v, err := dxsemver.ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q): %v", s, err)
	}
	return v
}

func TestWrite_WithoutCommitResolver(t *testing.T) {
	resolved := []resolve.ResolvedPackage{
		{
			URL:          "https://example.com/a",
			Version:      mustVersion(t, "1.2.3"),
			Ref:          "v1.2.3",
			Manifest:     manifest.Manifest{DisplayName: "A"},
			CheckoutPath: "/checkouts/A-1.2.3",
		},
	}

	var buf bytes.Buffer
	if err := record.Write(resolved, vcs.NewMock(), &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var entries []record.Entry
	if err := yaml.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("Unmarshal failed: %v\noutput:\n%s", err, buf.String())
	}
	if len(entries) != 1 || entries[0].Version != "1.2.3" || entries[0].Commit != "" {
		t.Fatalf("entries = %+v, want one A@1.2.3 entry with no commit", entries)
	}
	if !strings.Contains(buf.String(), "url: https://example.com/a") {
		t.Errorf("output missing url field:\n%s", buf.String())
	}
}

// stubCommitResolver embeds a nil vcs.VCS to satisfy the interface for
// methods this test never calls, adding only ResolveCommit so it also
// satisfies vcs.CommitResolver.
type stubCommitResolver struct {
	vcs.VCS
	commit string
}

func (s stubCommitResolver) ResolveCommit(dir string, ref git.RefName) (string, error) {
	return s.commit, nil
}

func TestWrite_WithCommitResolver(t *testing.T) {
	resolved := []resolve.ResolvedPackage{
		{
			URL:          "https://example.com/a",
			Version:      mustVersion(t, "1.2.3"),
			Ref:          "v1.2.3",
			Manifest:     manifest.Manifest{DisplayName: "A"},
			CheckoutPath: "/checkouts/A-1.2.3",
		},
	}

	var buf bytes.Buffer
	resolver := stubCommitResolver{VCS: vcs.NewMock(), commit: "abc123"}
	if err := record.Write(resolved, resolver, &buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	var entries []record.Entry
	if err := yaml.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("Unmarshal failed: %v\noutput:\n%s", err, buf.String())
	}
	if len(entries) != 1 || entries[0].Commit != "abc123" {
		t.Fatalf("entries = %+v, want commit abc123", entries)
	}
}
