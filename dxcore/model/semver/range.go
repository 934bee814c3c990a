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

package semver

import (
	"encoding/json"
	"fmt"
	"math"

	dxerrors "dirpx.dev/dxpkg/dxcore/errors"
	"dirpx.dev/dxpkg/dxcore/model"
	"gopkg.in/yaml.v3"
)

// upperInfinite is the sentinel used as Range.Upper when a range has no
// declared upper bound. It is larger than any Version dxpkg ever parses
// from a real Git tag, which keeps Upper a plain Version instead of an
// Optional[Version] and keeps Contains/Constrain branch-free.
var upperInfinite = Version{Major: math.MaxInt32}

// MaxRange is the unconstrained range [0.0.0, +inf), the identity element
// of Range.Constrain: constraining any Range r against MaxRange returns a
// range equal to r.
var MaxRange = Range{Lower: Version{}, Upper: upperInfinite}

// Range represents a half-open interval [Lower, Upper) over Version, the
// unit of dependency version constraint that dxpkg intersects across every
// manifest that declares a dependency on a given package URL.
//
// A Range with Lower == Upper denotes the empty set: nothing satisfies it.
// A Range built as {Lower: v, Upper: v.Successor()} denotes the singleton
// {v} (spec: "a range [v, v.successor) denotes the singleton v").
//
// Range is an immutable value type; all operations return a new Range
// rather than mutating the receiver.
type Range struct {
	// Lower is the inclusive lower bound of the interval.
	Lower Version

	// Upper is the exclusive upper bound of the interval. Use MaxRange.Upper
	// (via MaxRange or NewUnboundedRange) to express "no upper bound".
	Upper Version
}

// Compile-time assertion that Range implements model.Model.
var _ model.Model = (*Range)(nil)

// NewRange constructs a Range from an inclusive lower bound and an
// exclusive upper bound. It does not validate that lower < upper; use
// Validate or IsEmpty to check that afterward.
func NewRange(lower, upper Version) Range {
	return Range{Lower: lower, Upper: upper}
}

// NewUnboundedRange constructs a Range with the given inclusive lower
// bound and no upper bound.
func NewUnboundedRange(lower Version) Range {
	return Range{Lower: lower, Upper: upperInfinite}
}

// Singleton constructs the Range [v, v.Successor()). For a release v it
// contains only versions of the same precedence as v; for a prerelease v it
// also contains later prereleases of the same (Major, Minor, Patch) and that
// release itself.
func Singleton(v Version) Range {
	return Range{Lower: v, Upper: v.Successor()}
}

// IsEmpty reports whether the Range denotes the empty set, i.e. Lower is
// not strictly less than Upper.
func (r Range) IsEmpty() bool {
	return !r.Lower.Less(r.Upper)
}

// HasUpperBound reports whether the Range carries a real upper bound, as
// opposed to the +inf sentinel used by MaxRange and NewUnboundedRange.
func (r Range) HasUpperBound() bool {
	return r.Upper.Compare(upperInfinite) < 0
}

// Constrain returns the intersection of r and other: the range of versions
// satisfying both. The result is ∅ (IsEmpty() == true, reported via the
// returned bool being false) when the two ranges do not overlap.
//
// Constrain computes the intersection per spec: (max(r.Lower, other.Lower),
// min(r.Upper, other.Upper)), returning the zero Range and false when the
// computed lower bound is not strictly less than the computed upper bound.
func (r Range) Constrain(other Range) (Range, bool) {
	lower := r.Lower
	if other.Lower.Greater(lower) {
		lower = other.Lower
	}

	upper := r.Upper
	if other.Upper.Less(upper) {
		upper = other.Upper
	}

	result := Range{Lower: lower, Upper: upper}
	if result.IsEmpty() {
		return Range{}, false
	}
	return result, true
}

// Contains reports whether v lies within the half-open interval [Lower,
// Upper) AND, when v carries prerelease identifiers, whether the range
// admits prereleases at all.
//
// Per spec.md §3, a prerelease version is contained only when the Lower
// bound itself carries prerelease identifiers AND the prerelease version
// shares (Major, Minor, Patch) with that Lower bound; the normal interval
// check then applies.
//
// Otherwise prerelease versions are excluded even when their (Major,
// Minor, Patch) triplet would numerically fall inside the interval. This
// mirrors common SemVer-based package-manager convention: "[1.0.0, 2.0.0)"
// does not silently admit "1.5.0-alpha".
func (r Range) Contains(v Version) bool {
	if v.Prerelease != "" {
		lowerIsPrerelease := r.Lower.Prerelease != ""
		sameTriplet := v.Major == r.Lower.Major && v.Minor == r.Lower.Minor && v.Patch == r.Lower.Patch
		if !(lowerIsPrerelease && sameTriplet) {
			return false
		}
	}
	return !v.Less(r.Lower) && v.Less(r.Upper)
}

// String returns a half-open interval notation, e.g. "[1.0.0, 2.0.0)" or
// "[1.0.0, inf)" when the range has no upper bound.
func (r Range) String() string {
	if r.HasUpperBound() {
		return fmt.Sprintf("[%s, %s)", r.Lower.String(), r.Upper.String())
	}
	return fmt.Sprintf("[%s, inf)", r.Lower.String())
}

// TypeName returns "Range".
func (r Range) TypeName() string {
	return "Range"
}

// Redacted returns a safe-for-logging representation. Ranges are never
// sensitive, so Redacted is identical to String.
func (r Range) Redacted() string {
	return r.String()
}

// IsZero reports whether r is the zero Range (both bounds are the zero
// Version), which denotes the empty set.
func (r Range) IsZero() bool {
	return r.Lower.IsZero() && r.Upper.IsZero()
}

// Equal reports whether r and other denote the same interval.
func (r Range) Equal(other Range) bool {
	return r.Lower.EqualExact(other.Lower) && r.Upper.EqualExact(other.Upper)
}

// Validate checks that r's bounds are individually valid Versions and that
// Lower is strictly less than Upper (a Range MUST NOT be constructed
// already-empty by callers that expect it to admit at least one version;
// callers that intentionally need to represent "no solution" should test
// IsEmpty rather than relying on a Range that fails Validate).
func (r Range) Validate() error {
	if err := r.Lower.Validate(); err != nil {
		return fmt.Errorf("invalid Range.Lower: %w", err)
	}
	if err := r.Upper.Validate(); err != nil && r.Upper.Compare(upperInfinite) != 0 {
		return fmt.Errorf("invalid Range.Upper: %w", err)
	}
	if r.IsEmpty() {
		return fmt.Errorf("Range %s is empty: Lower must be strictly less than Upper", r.String())
	}
	return nil
}

// rangeJSON is the JSON/YAML wire shape for Range: two version strings.
// "inf" is used verbatim for an unbounded upper bound.
type rangeJSON struct {
	Lower string `json:"lower" yaml:"lower"`
	Upper string `json:"upper" yaml:"upper"`
}

func (r Range) toWire() rangeJSON {
	upper := "inf"
	if r.HasUpperBound() {
		upper = r.Upper.String()
	}
	return rangeJSON{Lower: r.Lower.String(), Upper: upper}
}

func (r *Range) fromWire(w rangeJSON) error {
	lower, err := ParseVersion(w.Lower)
	if err != nil {
		return fmt.Errorf("invalid Range.lower %q: %w", w.Lower, err)
	}

	upper := upperInfinite
	if w.Upper != "inf" {
		upper, err = ParseVersion(w.Upper)
		if err != nil {
			return fmt.Errorf("invalid Range.upper %q: %w", w.Upper, err)
		}
	}

	*r = Range{Lower: lower, Upper: upper}
	return nil
}

// MarshalJSON implements json.Marshaler for Range.
func (r Range) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(r.toWire())
}

// UnmarshalJSON implements json.Unmarshaler for Range.
func (r *Range) UnmarshalJSON(data []byte) error {
	var w rangeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return &dxerrors.UnmarshalError{Type: "Range", Data: data, Reason: err.Error()}
	}
	return r.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler for Range.
func (r Range) MarshalYAML() (interface{}, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.toWire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Range.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var w rangeJSON
	if err := value.Decode(&w); err != nil {
		return &dxerrors.UnmarshalError{Type: "Range", Data: nil, Reason: err.Error()}
	}
	return r.fromWire(w)
}
