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

import (
	"errors"
	"fmt"
)

var (
	// errNoScheme is returned when the input does not start with a scheme
	// followed by a colon. Such inputs are relative references.
	errNoScheme = &kindError{message: "No scheme found in an absolute URL"}
	// errUnsupportedScheme is returned when a root uses a scheme other than
	// http or https.
	errUnsupportedScheme = &kindError{message: "Unsupported scheme"}
	// errNoAuthority is returned when an http(s) URL is not followed by "//".
	errNoAuthority = &kindError{message: "No authority found after the http(s) scheme"}
	// errEmptyHost is returned when the authority carries no host.
	errEmptyHost = &kindError{message: "Empty host"}
)

// ParseError is returned by NewRoot when the root cannot be used to match
// URLs against.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URL parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps err in a ParseError. It returns nil for a nil error.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	cause := errors.Unwrap(err)
	if cause == nil {
		cause = err
	}
	return &ParseError{Message: err.Error(), Err: cause}
}

// kindError describes why the parser rejected an input.
type kindError struct {
	message string
	char    rune
	details string
}

func (e *kindError) Error() string {
	msg := e.message
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}
