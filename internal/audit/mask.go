// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package audit

import "strings"

// maskToken is the fixed redaction suffix used for both session IDs and the
// final IPv4 octet.
const maskToken = "***"

// MaskSessionID truncates a session identifier to its first 8 characters and
// appends the masking token. Empty input stays empty.
func MaskSessionID(sessionID string) string {
	if sessionID == "" {
		return ""
	}
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}
	return sessionID + maskToken
}

// MaskIP replaces the last octet of a dotted-quad IPv4 address with the
// masking token. Anything that is not four valid octets — hostnames, IPv6,
// octets out of range or with leading zeros — passes through unchanged.
func MaskIP(ip string) string {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return ip
	}

	for _, part := range parts {
		if !validOctet(part) {
			return ip
		}
	}

	return parts[0] + "." + parts[1] + "." + parts[2] + "." + maskToken
}

func validOctet(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}

	v := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v <= 255
}
