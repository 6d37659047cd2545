// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

// Package ratelimit provides a file-backed sliding-window request limiter.
//
// Each identifier's request history is a JSON array of unix timestamps in
// its own state file. There is deliberately no cross-process locking: two
// concurrent checks for the same identifier can both read a stale count and
// both admit. That race is an accepted property of this low-volume internal
// tool, coordinated — like the audit logs — only through the filesystem.
package ratelimit

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/weisetech/booking-admin/internal/logger"
)

// Limiter admits or rejects requests per identifier over a trailing window.
type Limiter struct {
	dir string
	log *logger.Logger
	now func() time.Time
}

// NewLimiter constructs a Limiter storing per-identifier state under dir.
// The directory is created lazily on first use.
func NewLimiter(dir string, log *logger.Logger) *Limiter {
	return &Limiter{
		dir: dir,
		log: log,
		now: time.Now,
	}
}

// Allow checks whether the identifier may make another request given at most
// max requests per window. It loads the identifier's timestamp sequence
// (starting fresh if absent), prunes entries that have left the window, and
// then either rejects without recording (count already at max) or records
// the current instant and admits.
//
// State I/O failures fail open: a limiter that cannot persist must not take
// the application down with it. Failures are logged at debug level.
func (l *Limiter) Allow(identifier string, max int, window time.Duration) bool {
	now := l.now()

	timestamps := l.load(identifier)

	kept := timestamps[:0]
	for _, ts := range timestamps {
		if now.Sub(time.Unix(ts, 0)) < window {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= max {
		return false
	}

	kept = append(kept, now.Unix())
	l.store(identifier, kept)
	return true
}

// stateFile derives the state file name for an identifier. The md5 here is
// a filename hash, not a security boundary — identifiers may contain
// characters that are unsafe in paths.
func (l *Limiter) stateFile(identifier string) string {
	sum := md5.Sum([]byte(identifier))
	return filepath.Join(l.dir, fmt.Sprintf("rate_%s.json", hex.EncodeToString(sum[:])))
}

func (l *Limiter) load(identifier string) []int64 {
	data, err := os.ReadFile(l.stateFile(identifier))
	if err != nil {
		return nil
	}

	var timestamps []int64
	if err := json.Unmarshal(data, &timestamps); err != nil {
		// corrupt state file: start the window over
		l.log.Debug().Err(err).Str("identifier", identifier).Msg("rate limit state unreadable")
		return nil
	}
	return timestamps
}

func (l *Limiter) store(identifier string, timestamps []int64) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		l.log.Debug().Err(err).Str("dir", l.dir).Msg("rate limit dir creation failed")
		return
	}

	data, err := json.Marshal(timestamps)
	if err != nil {
		l.log.Debug().Err(err).Msg("rate limit state marshal failed")
		return
	}

	if err := os.WriteFile(l.stateFile(identifier), data, 0o644); err != nil {
		l.log.Debug().Err(err).Str("identifier", identifier).Msg("rate limit state write failed")
	}
}
