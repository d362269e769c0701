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
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// defaultPorts maps the relativised schemes to the port implied when none
// is written.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// splitAuthority splits an authority string into its userinfo, host and
// port components. Bracketed IP literals keep their brackets.
func splitAuthority(authority string) (string, string, string) {
	var userinfo, host, port string

	endUserinfo := strings.LastIndex(authority, "@")
	hostport := authority
	if endUserinfo != -1 {
		userinfo = authority[:endUserinfo]
		hostport = authority[endUserinfo+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndex(hostport, "]")
		if endBracket == -1 {
			return userinfo, hostport, ""
		}
		host = hostport[:endBracket+1]
		if len(hostport) > endBracket+1 && hostport[endBracket+1] == ':' {
			port = hostport[endBracket+2:]
		}
		return userinfo, host, port
	}

	if endHost := strings.LastIndex(hostport, ":"); endHost != -1 {
		return userinfo, hostport[:endHost], hostport[endHost+1:]
	}
	return userinfo, hostport, ""
}

// validatePort checks that a port only contains ASCII digits. An empty
// port is valid.
func validatePort(port string) error {
	for _, r := range port {
		if !isASCIIDigit(r) {
			return &kindError{message: "Invalid port character", char: r}
		}
	}
	return nil
}

// canonicalHost returns the form of host and port used to decide whether
// two URLs share an origin. The host is NFC normalized, lower-cased and
// converted to its ASCII (punycode) form; IP literals are only
// lower-cased. A port equal to the scheme's default is dropped.
func canonicalHost(host, port, scheme string) string {
	canonical := strings.ToLower(norm.NFC.String(host))
	if !strings.HasPrefix(canonical, "[") {
		if asciiHost, err := idna.ToASCII(canonical); err == nil {
			canonical = asciiHost
		}
	}

	if port == "" || port == defaultPorts[scheme] {
		return canonical
	}
	return canonical + ":" + port
}
