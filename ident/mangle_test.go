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

package ident_test

import (
	"testing"

	"dirpx.dev/dxpkg/ident"
)

func TestMangle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already_valid", "MyModule", "MyModule"},
		{"leading_digit", "3DGraphics", "_DGraphics"},
		{"hyphenated", "my-module", "my_module"},
		{"spaces", "My Module Name", "My_Module_Name"},
		{"dots", "com.example.widget", "com_example_widget"},
		{"empty", "", "_"},
		{"underscore_preserved", "_already_mangled", "_already_mangled"},
		{"unicode_letters_preserved", "café", "café"},
		{"mixed_symbols", "foo+bar=baz", "foo_bar_baz"},
		{"digit_not_leading", "foo3bar", "foo3bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ident.Mangle(tt.in); got != tt.want {
				t.Errorf("Mangle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
