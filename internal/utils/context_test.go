package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisetech/booking-admin/models"
)

func TestGetSessionFromContext(t *testing.T) {
	sess := models.Session{ID: "abc123", Username: "admin", Authenticated: true}
	ctx := context.WithValue(context.Background(), SessionCtxKey, sess)

	got, ok := GetSessionFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestGetSessionFromContext_Absent(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())

	assert.False(t, ok)
}

func TestGetRequestContext(t *testing.T) {
	rc := models.RequestContext{Username: "admin", IP: "203.0.113.7"}
	ctx := context.WithValue(context.Background(), RequestCtxKey, rc)

	got, ok := GetRequestContext(ctx)

	require.True(t, ok)
	assert.Equal(t, rc, got)
}

func TestGetRequestContext_Absent(t *testing.T) {
	_, ok := GetRequestContext(context.Background())

	assert.False(t, ok)
}

// TestContextKeys_DoNotCollideWithStrings verifies plain string keys cannot
// read values stored under the typed keys.
func TestContextKeys_DoNotCollideWithStrings(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, models.Session{ID: "abc"})

	assert.Nil(t, ctx.Value("session"))
	assert.Equal(t, "session", SessionCtxKey.String())
}
