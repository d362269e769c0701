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

package urlutil

// Option configures how URLs are matched against a root.
type Option func(*options)

type options struct {
	ignoreProtocol      bool
	withoutSubdirectory bool
}

// newOptions applies opts on top of the defaults: the protocol is ignored
// and the subdirectory is kept.
func newOptions(opts []Option) options {
	o := options{ignoreProtocol: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// IgnoreProtocol controls whether a URL whose scheme differs from the
// root's scheme can still match (e.g. https links against an http root).
// Defaults to true.
func IgnoreProtocol(ignore bool) Option {
	return func(o *options) {
		o.ignoreProtocol = ignore
	}
}

// WithoutSubdirectory controls whether the root's subdirectory is removed
// from the returned path. Defaults to false.
func WithoutSubdirectory(strip bool) Option {
	return func(o *options) {
		o.withoutSubdirectory = strip
	}
}
