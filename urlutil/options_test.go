/*
Copyright 2025 Trident Authors

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

//nolint:testpackage // This is a white-box test file. It needs to be in the same package to test unexported functions.
package urlutil

import "testing"

// TestNewOptions tests the defaults and the application order of options.
func TestNewOptions(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		expected options
	}{
		{
			name:     "defaults",
			expected: options{ignoreProtocol: true, withoutSubdirectory: false},
		},
		{
			name:     "nil option is skipped",
			opts:     []Option{nil},
			expected: options{ignoreProtocol: true},
		},
		{
			name:     "protocol check",
			opts:     []Option{IgnoreProtocol(false)},
			expected: options{ignoreProtocol: false},
		},
		{
			name:     "strip subdirectory",
			opts:     []Option{WithoutSubdirectory(true)},
			expected: options{ignoreProtocol: true, withoutSubdirectory: true},
		},
		{
			name:     "last option wins",
			opts:     []Option{IgnoreProtocol(false), WithoutSubdirectory(true), IgnoreProtocol(true), WithoutSubdirectory(false)},
			expected: options{ignoreProtocol: true, withoutSubdirectory: false},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := newOptions(tc.opts); got != tc.expected {
				t.Errorf("newOptions() = %+v, want %+v", got, tc.expected)
			}
		})
	}
}
