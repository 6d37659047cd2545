// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used when hashing new secrets. Stored hashes are
// self-describing, so verification reads its parameters from the encoded
// hash instead and these values only matter at hashing time. They must stay
// in sync with whatever produced any pre-hashed credential list.
const (
	argonMemory  uint32 = 64 * 1024 // KiB
	argonTime    uint32 = 4
	argonThreads uint8  = 3
	argonKeyLen  uint32 = 32
	argonSaltLen        = 16
)

// phcPrefix is the PHC-string marker for Argon2id hashes. Its presence in a
// credential list also drives the comma-splitting heuristic in ParseUsers.
const phcPrefix = "$argon2id$"

// HashPassword derives an Argon2id hash of password+secret and returns it in
// PHC string form:
//
//	$argon2id$v=19$m=65536,t=4,p=3$<b64 salt>$<b64 digest>
//
// The application secret acts as a keying suffix so that a leaked credential
// list alone is not enough to mount an offline attack. A fresh random salt
// is read from the OS CSPRNG on every call. Returns an error only if the
// random read fails.
func HashPassword(password, secret string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password+secret), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		phcPrefix,
		argon2.Version,
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	), nil
}

// VerifyPassword checks a plaintext candidate against a PHC-encoded Argon2id
// hash. The candidate is suffixed with the application secret before
// derivation, mirroring HashPassword. The hash's own parameters are used for
// the derivation and the digests are compared in constant time.
//
// Any malformed hash yields false, never an error: a corrupt credential
// entry must behave exactly like a wrong password.
func VerifyPassword(candidate, secret, encoded string) bool {
	params, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(candidate+secret), salt, params.time, params.memory, params.threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(derived, digest) == 1
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

// decodeHash splits a PHC Argon2id string into its parameters, salt, and
// digest. Layout: $argon2id$v=<ver>$m=<mem>,t=<time>,p=<par>$<salt>$<digest>
// with both binary fields in unpadded standard base64.
func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}
	if version != argon2.Version {
		return argonParams{}, nil, nil, ErrIncompatibleHashVersion
	}

	var p argonParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(digest) == 0 {
		return argonParams{}, nil, nil, ErrMalformedHash
	}

	return p, salt, digest, nil
}
