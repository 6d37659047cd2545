// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Weise Tech

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/weisetech/booking-admin/internal/logger"
	"github.com/weisetech/booking-admin/models"
)

// sessionsSchema bootstraps the single table this store needs. Timestamps
// are stored as unix seconds; session semantics are second-granular anyway.
const sessionsSchema = `CREATE TABLE IF NOT EXISTS sessions (
	id                TEXT PRIMARY KEY,
	authenticated     INTEGER NOT NULL,
	username          TEXT NOT NULL,
	csrf_token        TEXT NOT NULL,
	login_time        INTEGER NOT NULL,
	last_regeneration INTEGER NOT NULL
);`

// sqliteStore is the SQLite-backed implementation of [Store].
type sqliteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at path
// and ensures the sessions table exists. Use ":memory:" for tests.
func NewSQLiteStore(path string, log *logger.Logger) (Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err := db.Exec(sessionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("session store opened")
	return &sqliteStore{db: db, log: log}, nil
}

// newSQLStore wraps an existing database handle. Used by tests that drive
// the store through sqlmock.
func newSQLStore(db *sql.DB, log *logger.Logger) Store {
	return &sqliteStore{db: db, log: log}
}

// Get implements [Store].
func (s *sqliteStore) Get(ctx context.Context, id string) (models.Session, error) {
	query, args, err := sq.
		Select("id", "authenticated", "username", "csrf_token", "login_time", "last_regeneration").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("build session select: %w", err)
	}

	var (
		sess          models.Session
		authenticated int64
		loginUnix     int64
		regenUnix     int64
	)

	row := s.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&sess.ID, &authenticated, &sess.Username, &sess.CSRFToken, &loginUnix, &regenUnix)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	sess.Authenticated = authenticated != 0
	sess.LoginTime = time.Unix(loginUnix, 0)
	sess.LastRegeneration = time.Unix(regenUnix, 0)

	return sess, nil
}

// Save implements [Store] as an upsert keyed by session ID.
func (s *sqliteStore) Save(ctx context.Context, sess models.Session) error {
	authenticated := 0
	if sess.Authenticated {
		authenticated = 1
	}

	query, args, err := sq.
		Insert(models.Session{}.TableName()).
		Columns("id", "authenticated", "username", "csrf_token", "login_time", "last_regeneration").
		Values(sess.ID, authenticated, sess.Username, sess.CSRFToken, sess.LoginTime.Unix(), sess.LastRegeneration.Unix()).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			authenticated     = excluded.authenticated,
			username          = excluded.username,
			csrf_token        = excluded.csrf_token,
			login_time        = excluded.login_time,
			last_regeneration = excluded.last_regeneration`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session upsert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Delete implements [Store].
func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	query, args, err := sq.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build session delete: %w", err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Close implements [Store].
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
