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

import "strings"

const (
	// authorityPrefix introduces the authority component.
	authorityPrefix = "//"
)

// positions holds the end indices of the components of a parsed URL.
// SchemeEnd points just past the ':' and AuthorityEnd just past the
// authority, so the path, query and fragment are s[AuthorityEnd:].
type positions struct {
	SchemeEnd    int
	AuthorityEnd int
	PathEnd      int
	QueryEnd     int
}

// absoluteURL is an absolute http(s) URL split into its components. The
// original input is kept untouched so that the path, query and fragment
// can be returned exactly as written.
type absoluteURL struct {
	raw       string
	pos       positions
	scheme    string
	host      string
	port      string
	canonical string
}

// parseScheme returns the lower-cased scheme of s and the index just past
// its ':'. It fails with errNoScheme when s is a relative reference.
func parseScheme(s string) (string, int, error) {
	if s == "" || !isASCIILetter(rune(s[0])) {
		return "", 0, errNoScheme
	}
	for i := 1; i < len(s); i++ {
		c := rune(s[i])
		switch {
		case isSchemeChar(c):
		case c == ':':
			return strings.ToLower(s[:i]), i + 1, nil
		default:
			return "", 0, errNoScheme
		}
	}
	return "", 0, errNoScheme
}

// isHTTPScheme reports whether scheme is one of the schemes this package
// relativises. The scheme must already be lower-cased.
func isHTTPScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

// parseAbsolute parses s as an absolute http(s) URL. Non-http(s) inputs
// fail with errUnsupportedScheme so that callers can tell them apart from
// malformed http(s) URLs.
func parseAbsolute(s string) (*absoluteURL, error) {
	scheme, schemeEnd, err := parseScheme(s)
	if err != nil {
		return nil, err
	}
	if !isHTTPScheme(scheme) {
		return nil, &kindError{message: errUnsupportedScheme.message, details: scheme}
	}

	rest := s[schemeEnd:]
	if !strings.HasPrefix(rest, authorityPrefix) {
		return nil, errNoAuthority
	}
	authorityStart := schemeEnd + len(authorityPrefix)

	u := &absoluteURL{raw: s, scheme: scheme}
	u.pos.SchemeEnd = schemeEnd
	u.pos.AuthorityEnd = len(s)
	if i := strings.IndexAny(s[authorityStart:], "/?#"); i != -1 {
		u.pos.AuthorityEnd = authorityStart + i
	}

	// Userinfo takes no part in host comparison.
	_, u.host, u.port = splitAuthority(s[authorityStart:u.pos.AuthorityEnd])
	if err := validatePort(u.port); err != nil {
		return nil, err
	}
	if u.host == "" {
		return nil, errEmptyHost
	}
	u.canonical = canonicalHost(u.host, u.port, scheme)

	u.pos.PathEnd = len(s)
	u.pos.QueryEnd = len(s)
	if i := strings.IndexByte(s[u.pos.AuthorityEnd:], '#'); i != -1 {
		u.pos.QueryEnd = u.pos.AuthorityEnd + i
	}
	if i := strings.IndexByte(s[u.pos.AuthorityEnd:u.pos.QueryEnd], '?'); i != -1 {
		u.pos.PathEnd = u.pos.AuthorityEnd + i
	} else {
		u.pos.PathEnd = u.pos.QueryEnd
	}

	return u, nil
}

// Path returns the path component exactly as written. It may be empty.
func (u *absoluteURL) Path() string {
	return u.raw[u.pos.AuthorityEnd:u.pos.PathEnd]
}

// Suffix returns everything after the path: the query and fragment with
// their '?' and '#' delimiters.
func (u *absoluteURL) Suffix() string {
	return u.raw[u.pos.PathEnd:]
}

// relativePath rebuilds the site-relative form of u from the given path.
// An empty path stands for the root of the site.
func (u *absoluteURL) relativePath(path string) string {
	if path == "" {
		path = "/"
	}
	return path + u.Suffix()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSchemeChar reports whether r may appear after the first letter of a
// scheme, per RFC 3986, Section 3.1.
func isSchemeChar(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}
