// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package session

import (
	"context"

	"github.com/weisetech/booking-admin/models"
)

// Store is the persistence contract for server-side sessions.
//
// Implementations must return [ErrSessionNotFound] from Get and Delete when
// the ID is unknown; Save is an upsert.
type Store interface {
	// Get loads the session with the given ID.
	Get(ctx context.Context, id string) (models.Session, error)

	// Save inserts or replaces the session keyed by its ID.
	Save(ctx context.Context, s models.Session) error

	// Delete removes the session with the given ID.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying storage resources.
	Close() error
}
