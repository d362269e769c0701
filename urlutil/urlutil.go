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

// Package urlutil rewrites absolute links that point back at a site into
// site-relative paths.
//
// The conversion is a total function: inputs that are already relative,
// use a scheme other than http or https, or belong to another origin are
// returned unchanged, so callers can apply it to every link they find:
//
//	urlutil.AbsoluteToRelative("https://example.com/my/file.png", "https://example.com")
//	// "/my/file.png"
//
// Pipelines that rewrite many links against the same root can parse it
// once with NewRoot.
package urlutil

import "strings"

// AbsoluteToRelative converts rawURL into a path relative to the site
// described by root. The path, query and fragment of rawURL are returned
// exactly as written.
//
// An empty root strips the scheme and authority of any absolute http(s)
// URL. Otherwise rawURL must share the root's host (and port) and, when
// the root has a path, sit under that subdirectory. See IgnoreProtocol
// and WithoutSubdirectory for the available options.
//
// rawURL is returned unchanged when it cannot be relativised, including
// when root itself is not an absolute http(s) URL.
func AbsoluteToRelative(rawURL, root string, opts ...Option) string {
	u, err := parseAbsolute(rawURL)
	if err != nil {
		return rawURL
	}
	if root == "" {
		return u.relativePath(u.Path())
	}

	r, err := NewRoot(root, opts...)
	if err != nil {
		return rawURL
	}
	return r.relative(u)
}

// Root is a parsed site root that URLs are matched against. It is
// immutable and safe for concurrent use.
type Root struct {
	scheme       string
	host         string
	subdirectory string
	opts         options
}

// NewRoot parses root, an absolute http(s) URL whose path, if any, is the
// site's subdirectory. A single trailing slash on the path is ignored, as
// are the query and fragment.
func NewRoot(root string, opts ...Option) (*Root, error) {
	u, err := parseAbsolute(root)
	if err != nil {
		return nil, newParseError(err)
	}

	return &Root{
		scheme:       u.scheme,
		host:         u.canonical,
		subdirectory: strings.TrimSuffix(u.Path(), "/"),
		opts:         newOptions(opts),
	}, nil
}

// Matches reports whether rawURL is an absolute http(s) URL on the root's
// host and under its subdirectory.
func (r *Root) Matches(rawURL string) bool {
	u, err := parseAbsolute(rawURL)
	if err != nil {
		return false
	}
	return r.matches(u)
}

// Relative returns the site-relative form of rawURL, or rawURL itself if
// it does not match the root.
func (r *Root) Relative(rawURL string) string {
	u, err := parseAbsolute(rawURL)
	if err != nil {
		return rawURL
	}
	return r.relative(u)
}

// String returns the root's origin followed by its subdirectory, with the
// host in canonical form.
func (r *Root) String() string {
	return r.scheme + "://" + r.host + r.subdirectory
}

func (r *Root) matches(u *absoluteURL) bool {
	if !r.opts.ignoreProtocol && u.scheme != r.scheme {
		return false
	}
	if u.canonical != r.host {
		return false
	}
	return r.subdirectory == "" || hasPathPrefix(u.Path(), r.subdirectory)
}

func (r *Root) relative(u *absoluteURL) string {
	if !r.matches(u) {
		return u.raw
	}

	path := u.Path()
	if r.opts.withoutSubdirectory {
		path = strings.TrimPrefix(path, r.subdirectory)
	}
	return u.relativePath(path)
}

// hasPathPrefix reports whether path is prefix or starts with prefix
// followed by a segment boundary, so "/sub" never matches "/subdir".
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}
