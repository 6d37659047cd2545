// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

var sessionColumns = []string{"id", "authenticated", "username", "csrf_token", "login_time", "last_regeneration"}

// newMockStore returns a store over a sqlmock database.
func newMockStore(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return newSQLStore(db, logger.Nop()), mock
}

// ─────────────────────────────────────────────
// Get
// ─────────────────────────────────────────────

func TestSQLiteStore_Get(t *testing.T) {
	store, mock := newMockStore(t)

	loginTime := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM sessions WHERE id = ?").
		WithArgs("sess-1").
		WillReturnRows(sqlmock.NewRows(sessionColumns).
			AddRow("sess-1", 1, "alice", "csrf-token", loginTime.Unix(), loginTime.Unix()))

	sess, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "sess-1", sess.ID)
	assert.True(t, sess.Authenticated)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, "csrf-token", sess.CSRFToken)
	assert.True(t, sess.LoginTime.Equal(loginTime))
	assert.True(t, sess.LastRegeneration.Equal(loginTime))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Get_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT .+ FROM sessions WHERE id = ?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(sessionColumns))

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Get_QueryError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT .+ FROM sessions WHERE id = ?").
		WithArgs("sess-1").
		WillReturnError(errors.New("database is locked"))

	_, err := store.Get(context.Background(), "sess-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────

func TestSQLiteStore_Save(t *testing.T) {
	store, mock := newMockStore(t)

	loginTime := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	sess := models.Session{
		ID:               "sess-1",
		Authenticated:    true,
		Username:         "alice",
		CSRFToken:        "csrf-token",
		LoginTime:        loginTime,
		LastRegeneration: loginTime,
	}

	mock.ExpectExec("INSERT INTO sessions .+ ON CONFLICT").
		WithArgs("sess-1", 1, "alice", "csrf-token", loginTime.Unix(), loginTime.Unix()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Save(context.Background(), sess))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Save_Error(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(errors.New("disk I/O error"))

	err := store.Save(context.Background(), models.Session{ID: "sess-1"})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestSQLiteStore_Delete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM sessions WHERE id = ?").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), "sess-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStore_Delete_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM sessions WHERE id = ?").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// Round trip against real SQLite
// ─────────────────────────────────────────────

// TestSQLiteStore_RoundTrip exercises the real driver end to end with an
// in-memory database.
func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	loginTime := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	sess := models.Session{
		ID:               "sess-1",
		Authenticated:    true,
		Username:         "alice",
		CSRFToken:        "csrf-token",
		LoginTime:        loginTime,
		LastRegeneration: loginTime,
	}

	require.NoError(t, store.Save(context.Background(), sess))

	got, err := store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.Username, got.Username)
	assert.True(t, got.LoginTime.Equal(loginTime))

	// upsert overwrites in place
	sess.Username = "alice-renamed"
	require.NoError(t, store.Save(context.Background(), sess))
	got, err = store.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "alice-renamed", got.Username)

	require.NoError(t, store.Delete(context.Background(), "sess-1"))
	_, err = store.Get(context.Background(), "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
