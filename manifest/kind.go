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

package manifest

import (
	"encoding/json"
	"strings"

	dxerrors "dirpx.dev/dxpkg/dxcore/errors"
	"dirpx.dev/dxpkg/dxcore/model"
	"gopkg.in/yaml.v3"
)

// TargetKind classifies a TargetDecl by what the compiler produces from it.
type TargetKind uint8

const (
	TargetKindUnknown TargetKind = iota
	TargetKindLibrary
	TargetKindExecutable
	TargetKindTest
	TargetKindPlugin
	TargetKindMacro
	TargetKindSystemLibrary
)

var targetKindNames = map[TargetKind]string{
	TargetKindUnknown:       "unknown",
	TargetKindLibrary:       "library",
	TargetKindExecutable:    "executable",
	TargetKindTest:          "test",
	TargetKindPlugin:        "plugin",
	TargetKindMacro:         "macro",
	TargetKindSystemLibrary: "system-library",
}

// ParseTargetKind parses a kind name, case-insensitively, into a TargetKind.
func ParseTargetKind(s string) (TargetKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for k, name := range targetKindNames {
		if name == normalized {
			return k, nil
		}
	}
	return TargetKindUnknown, &dxerrors.ParseError{Type: "TargetKind", Value: s}
}

var _ model.Model = (*TargetKind)(nil)

func (k TargetKind) String() string {
	if name, ok := targetKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k TargetKind) Redacted() string            { return k.String() }
func (k TargetKind) TypeName() string            { return "TargetKind" }
func (k TargetKind) IsZero() bool                { return k == TargetKindUnknown }
func (k TargetKind) Equal(other TargetKind) bool { return k == other }

func (k TargetKind) Validate() error {
	if _, ok := targetKindNames[k]; !ok {
		return &dxerrors.ValidationError{Type: "TargetKind", Reason: "not a known kind", Value: uint8(k)}
	}
	return nil
}

func (k TargetKind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(k.String())
}

func (k *TargetKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "TargetKind", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseTargetKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k TargetKind) MarshalYAML() (interface{}, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k.String(), nil
}

func (k *TargetKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "TargetKind", Reason: err.Error()}
	}
	parsed, err := ParseTargetKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ProductKind classifies a ProductDecl by its externally visible shape.
// Library products additionally distinguish the linkage convention,
// flattened here into one closed enum rather than a kind+linkage pair,
// since linkage only ever matters for the library kind.
type ProductKind uint8

const (
	ProductKindUnknown ProductKind = iota
	ProductKindLibraryAuto
	ProductKindLibraryStatic
	ProductKindLibraryDynamic
	ProductKindExecutable
	ProductKindPlugin
)

var productKindNames = map[ProductKind]string{
	ProductKindUnknown:        "unknown",
	ProductKindLibraryAuto:    "library-auto",
	ProductKindLibraryStatic:  "library-static",
	ProductKindLibraryDynamic: "library-dynamic",
	ProductKindExecutable:     "executable",
	ProductKindPlugin:         "plugin",
}

func ParseProductKind(s string) (ProductKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for k, name := range productKindNames {
		if name == normalized {
			return k, nil
		}
	}
	return ProductKindUnknown, &dxerrors.ParseError{Type: "ProductKind", Value: s}
}

var _ model.Model = (*ProductKind)(nil)

func (k ProductKind) String() string {
	if name, ok := productKindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k ProductKind) Redacted() string             { return k.String() }
func (k ProductKind) TypeName() string             { return "ProductKind" }
func (k ProductKind) IsZero() bool                 { return k == ProductKindUnknown }
func (k ProductKind) Equal(other ProductKind) bool { return k == other }

func (k ProductKind) Validate() error {
	if _, ok := productKindNames[k]; !ok {
		return &dxerrors.ValidationError{Type: "ProductKind", Reason: "not a known kind", Value: uint8(k)}
	}
	return nil
}

func (k ProductKind) MarshalJSON() ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(k.String())
}

func (k *ProductKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "ProductKind", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseProductKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k ProductKind) MarshalYAML() (interface{}, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k.String(), nil
}

func (k *ProductKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "ProductKind", Reason: err.Error()}
	}
	parsed, err := ParseProductKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
