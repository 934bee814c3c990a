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

package semver_test

import (
	"testing"

	"dirpx.dev/dxpkg/dxcore/model/semver"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, s string) semver.Version {
	t.Helper()
	v, err := semver.ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q) failed: %v", s, err)
	}
	return v
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name  string
		lower string
		upper string
		v     string
		want  bool
	}{
		{"inside", "1.0.0", "2.0.0", "1.5.0", true},
		{"at_lower_inclusive", "1.0.0", "2.0.0", "1.0.0", true},
		{"at_upper_exclusive", "1.0.0", "2.0.0", "2.0.0", false},
		{"below_lower", "1.0.0", "2.0.0", "0.9.9", false},
		{"above_upper", "1.0.0", "2.0.0", "2.0.1", false},
		{"prerelease_excluded_by_default", "1.0.0", "2.0.0", "1.5.0-alpha", false},
		{"prerelease_excluded_even_if_same_triplet_as_nonprerelease_lower", "1.0.0", "2.0.0", "1.0.0-alpha", false},
		{"prerelease_admitted_when_lower_is_prerelease_same_triplet", "1.0.0-alpha", "1.0.0", "1.0.0-alpha.1", true},
		{"prerelease_admitted_exactly_at_prerelease_lower", "1.0.0-alpha", "1.0.0", "1.0.0-alpha", true},
		{"prerelease_excluded_when_lower_is_prerelease_but_different_triplet", "1.0.0-alpha", "2.0.0", "1.5.0-beta", false},
		{"release_admitted_when_lower_is_prerelease", "1.0.0-alpha", "2.0.0", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := semver.NewRange(mustParse(t, tt.lower), mustParse(t, tt.upper))
			got := r.Contains(mustParse(t, tt.v))
			if got != tt.want {
				t.Errorf("Range(%s,%s).Contains(%s) = %v, want %v", tt.lower, tt.upper, tt.v, got, tt.want)
			}
		})
	}
}

func TestRange_Singleton(t *testing.T) {
	v := mustParse(t, "1.2.3")
	r := semver.Singleton(v)

	if !r.Contains(v) {
		t.Fatalf("Singleton(%s) must contain %s", v, v)
	}
	if r.Contains(mustParse(t, "1.2.4")) {
		t.Fatalf("Singleton(%s) must not contain 1.2.4", v)
	}
	if r.Contains(mustParse(t, "1.2.2")) {
		t.Fatalf("Singleton(%s) must not contain 1.2.2", v)
	}
}

func TestRange_Constrain(t *testing.T) {
	tests := []struct {
		name      string
		a, b      semver.Range
		wantLower string
		wantUpper string
		wantOK    bool
	}{
		{
			name:      "overlapping_narrows_to_intersection",
			a:         semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "3.0.0")),
			b:         semver.NewRange(mustParse(t, "2.0.0"), mustParse(t, "4.0.0")),
			wantLower: "2.0.0",
			wantUpper: "3.0.0",
			wantOK:    true,
		},
		{
			name:   "disjoint_is_empty",
			a:      semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "2.0.0")),
			b:      semver.NewRange(mustParse(t, "3.0.0"), mustParse(t, "4.0.0")),
			wantOK: false,
		},
		{
			name:      "identity_element_is_max_range",
			a:         semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "2.0.0")),
			b:         semver.MaxRange,
			wantLower: "1.0.0",
			wantUpper: "2.0.0",
			wantOK:    true,
		},
		{
			name:   "touching_bounds_is_empty",
			a:      semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "2.0.0")),
			b:      semver.NewUnboundedRange(mustParse(t, "2.0.0")),
			wantOK: false,
		},
		{
			name:      "nested_range_returns_inner",
			a:         semver.MaxRange,
			b:         semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "1.5.0")),
			wantLower: "1.0.0",
			wantUpper: "1.5.0",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Constrain(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Constrain() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			want := semver.NewRange(mustParse(t, tt.wantLower), mustParse(t, tt.wantUpper))
			if !got.Equal(want) {
				t.Errorf("Constrain() = %s, want %s", got, want)
			}
		})
	}
}

func TestRange_IsEmpty(t *testing.T) {
	v := mustParse(t, "1.0.0")
	r := semver.NewRange(v, v)
	if !r.IsEmpty() {
		t.Fatalf("Range with Lower == Upper must be empty")
	}

	nonEmpty := semver.Singleton(v)
	if nonEmpty.IsEmpty() {
		t.Fatalf("Singleton range must not be empty")
	}
}

func TestRange_HasUpperBound(t *testing.T) {
	if !semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "2.0.0")).HasUpperBound() {
		t.Fatalf("bounded range must report HasUpperBound true")
	}
	if semver.MaxRange.HasUpperBound() {
		t.Fatalf("MaxRange must report HasUpperBound false")
	}
	if semver.NewUnboundedRange(mustParse(t, "1.0.0")).HasUpperBound() {
		t.Fatalf("unbounded range must report HasUpperBound false")
	}
}

func TestRange_String(t *testing.T) {
	bounded := semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "2.0.0"))
	if got, want := bounded.String(), "[1.0.0, 2.0.0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	unbounded := semver.NewUnboundedRange(mustParse(t, "1.0.0"))
	if got, want := unbounded.String(), "[1.0.0, inf)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRange_Validate(t *testing.T) {
	if err := semver.MaxRange.Validate(); err != nil {
		t.Errorf("MaxRange should be valid, got %v", err)
	}

	v := mustParse(t, "1.0.0")
	empty := semver.NewRange(v, v)
	if err := empty.Validate(); err == nil {
		t.Errorf("empty range should fail Validate")
	}
}

func TestRange_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		r    semver.Range
	}{
		{"bounded", semver.NewRange(mustParse(t, "1.0.0"), mustParse(t, "2.0.0"))},
		{"unbounded", semver.NewUnboundedRange(mustParse(t, "1.0.0"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.r.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() failed: %v", err)
			}

			var got semver.Range
			if err := got.UnmarshalJSON(data); err != nil {
				t.Fatalf("UnmarshalJSON(%s) failed: %v", data, err)
			}
			if !got.Equal(tt.r) {
				t.Errorf("round trip = %s, want %s", got, tt.r)
			}
		})
	}
}

func TestRange_YAMLRoundTrip(t *testing.T) {
	r := semver.NewRange(mustParse(t, "1.2.0"), mustParse(t, "1.3.0"))

	out, err := yaml.Marshal(r)
	if err != nil {
		t.Fatalf("yaml marshal failed: %v", err)
	}

	var got semver.Range
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("yaml unmarshal failed: %v", err)
	}
	if !got.Equal(r) {
		t.Errorf("round trip = %s, want %s", got, r)
	}
}
