// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package auth

import (
	"strings"

	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/models"
)

// Legacy single-user slots used when the delimited credential list yields no
// entries. The usernames are fixed; only the passwords come from
// configuration.
const (
	legacyAdminUser   = "admin"
	legacyManagerUser = "manager"
)

// ParseUsers builds the username→secret mapping from the configured
// credential list. The list is a single string of `username:secret` pairs
// and the delimiter is chosen by content:
//
//   - `|` anywhere in the string wins outright — it is the recommended
//     delimiter because PHC Argon2id hashes themselves contain commas;
//   - otherwise, in hashed mode with a `$argon2id$` marker present, the
//     string splits on commas only at pair boundaries (a comma directly
//     between a word character and a `name:` head), so commas inside hash
//     parameters survive;
//   - otherwise a plain comma split.
//
// Each pair splits on its first `:`; pairs missing either half are dropped
// silently. In plaintext mode every secret is hashed here, once, through
// Argon2id over secret+appSecret, so verification downstream is a single
// code path regardless of mode.
//
// If the list yields nothing, the legacy `admin` and `manager` slots are
// consulted, with the same mode handling.
//
// The parse is pure over the provided configuration; a hashing failure for
// one entry drops that entry only.
func ParseUsers(cfg config.App) models.Credentials {
	users := models.Credentials{}

	if cfg.Users != "" {
		for _, pair := range splitPairs(cfg.Users, cfg.UseHashedPasswords) {
			pair = strings.TrimSpace(pair)

			username, secret, found := strings.Cut(pair, ":")
			if !found {
				continue
			}

			username = strings.TrimSpace(username)
			secret = strings.TrimSpace(secret)
			if username == "" || secret == "" {
				continue
			}

			stored, ok := storedSecret(secret, cfg)
			if ok {
				users[username] = stored
			}
		}
	}

	if len(users) == 0 {
		if cfg.AdminPassword != "" {
			if stored, ok := storedSecret(cfg.AdminPassword, cfg); ok {
				users[legacyAdminUser] = stored
			}
		}
		if cfg.ManagerPassword != "" {
			if stored, ok := storedSecret(cfg.ManagerPassword, cfg); ok {
				users[legacyManagerUser] = stored
			}
		}
	}

	return users
}

// VerifyUser checks a plaintext candidate password for the given username
// against the parsed credential set. An unknown username is simply false.
// The comparison always goes through the Argon2id verify primitive; there is
// no string-equality path.
func VerifyUser(username, password string, creds models.Credentials, secret string) bool {
	if username == "" || password == "" {
		return false
	}

	stored, ok := creds[username]
	if !ok {
		return false
	}

	return VerifyPassword(password, secret, stored)
}

// storedSecret converts one configured secret into its stored form: kept
// verbatim in hashed mode, Argon2id-hashed with the app secret otherwise.
func storedSecret(secret string, cfg config.App) (string, bool) {
	if cfg.UseHashedPasswords {
		return secret, true
	}

	hashed, err := HashPassword(secret, cfg.Secret)
	if err != nil {
		return "", false
	}
	return hashed, true
}

// splitPairs applies the three-way delimiter heuristic described on
// ParseUsers.
func splitPairs(users string, hashedMode bool) []string {
	if strings.Contains(users, "|") {
		return strings.Split(users, "|")
	}

	if hashedMode && strings.Contains(users, phcPrefix) {
		return splitAtPairBoundaries(users)
	}

	return strings.Split(users, ",")
}

// splitAtPairBoundaries splits on commas that sit between a word character
// and the start of a `name:` head — i.e. only at boundaries between
// `username:hash` pairs, never inside a hash token whose parameter block
// contains commas.
func splitAtPairBoundaries(s string) []string {
	var pairs []string
	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] != ',' || i == 0 {
			continue
		}
		if !isWordByte(s[i-1]) {
			continue
		}
		if !startsPairHead(s[i+1:]) {
			continue
		}

		pairs = append(pairs, s[start:i])
		start = i + 1
	}

	return append(pairs, s[start:])
}

// startsPairHead reports whether s begins with one or more word characters
// immediately followed by a colon.
func startsPairHead(s string) bool {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	return i > 0 && i < len(s) && s[i] == ':'
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
