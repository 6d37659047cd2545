// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package models

// Credentials maps a username to its stored secret. Depending on how the
// credential list was configured the secret is either a PHC-encoded Argon2id
// hash supplied verbatim (hashed mode) or a hash produced at parse time from
// a plaintext secret. Verification never needs to distinguish the two cases.
type Credentials map[string]string

// Usernames returns every username present in the credential set.
// Order is unspecified.
func (c Credentials) Usernames() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}
