package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisetech/booking-admin/internal/service"
	"github.com/weisetech/booking-admin/internal/utils"
	"github.com/weisetech/booking-admin/models"
)

// guardedEcho wraps a probe handler in the session guard and reports what
// the probe observed in the request context.
func guardedEcho(h *Handler, sawSession *models.Session, sawRequestCtx *models.RequestContext) http.Handler {
	return h.sessionGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := utils.GetSessionFromContext(r.Context()); ok {
			*sawSession = sess
		}
		if rc, ok := utils.GetRequestContext(r.Context()); ok {
			*sawRequestCtx = rc
		}
		w.WriteHeader(http.StatusNoContent)
	}))
}

// ─────────────────────────────────────────────
// Rejections
// ─────────────────────────────────────────────

func TestSessionGuard_NoCookie_HTMLRedirects(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	guardedEcho(h, &models.Session{}, &models.RequestContext{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionGuard_NoCookie_APIGets401(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	rec := httptest.NewRecorder()
	guardedEcho(h, &models.Session{}, &models.RequestContext{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized access"}`, rec.Body.String())
}

func TestSessionGuard_UnknownSession_IsRejected(t *testing.T) {
	h := newTestHandler(t, &service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	req.AddCookie(sessionCookie("deadbeefdeadbeefdeadbeefdeadbeef"))
	rec := httptest.NewRecorder()
	guardedEcho(h, &models.Session{}, &models.RequestContext{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized access"}`, rec.Body.String())

	// the stale cookie is cleared
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

// ─────────────────────────────────────────────
// Admission
// ─────────────────────────────────────────────

func TestSessionGuard_ValidSession_PopulatesContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	sess := loginSession(t, h, "manager")

	var sawSession models.Session
	var sawRequestCtx models.RequestContext

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.RemoteAddr = "203.0.113.7:50000"
	req.Header.Set("User-Agent", "test-agent")
	req.AddCookie(sessionCookie(sess.ID))

	rec := httptest.NewRecorder()
	guardedEcho(h, &sawSession, &sawRequestCtx).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, sess.ID, sawSession.ID)
	assert.Equal(t, "manager", sawSession.Username)
	assert.True(t, sawSession.Authenticated)

	assert.Equal(t, "manager", sawRequestCtx.Username)
	assert.Equal(t, "203.0.113.7", sawRequestCtx.IP)
	assert.Equal(t, "test-agent", sawRequestCtx.UserAgent)
	assert.Equal(t, sess.ID, sawRequestCtx.SessionID)
}

// ─────────────────────────────────────────────
// Expiry and rotation (driven by short real lifetimes)
// ─────────────────────────────────────────────

// newExpiringHandler builds a handler whose sessions live for the given
// durations, so expiry and rotation happen within the test.
func newExpiringHandler(t *testing.T, timeout, regeneration time.Duration) *Handler {
	t.Helper()

	cfg := testStructuredConfig(t)
	cfg.Session.Timeout = timeout
	cfg.Session.RegenerationInterval = regeneration
	return newTestHandlerWithConfig(t, &service.Services{}, cfg)
}

func TestSessionGuard_ExpiredSession_HTMLTimeoutRedirect(t *testing.T) {
	h := newExpiringHandler(t, 30*time.Millisecond, time.Hour)
	sess := loginSession(t, h, "admin")
	time.Sleep(60 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	guardedEcho(h, &models.Session{}, &models.RequestContext{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?timeout=1", rec.Header().Get("Location"))
}

func TestSessionGuard_ExpiredSession_APIGets401(t *testing.T) {
	h := newExpiringHandler(t, 30*time.Millisecond, time.Hour)
	sess := loginSession(t, h, "admin")
	time.Sleep(60 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	guardedEcho(h, &models.Session{}, &models.RequestContext{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Session expired"}`, rec.Body.String())
}

func TestSessionGuard_RotatedSession_RefreshesCookie(t *testing.T) {
	h := newExpiringHandler(t, time.Hour, 10*time.Millisecond)
	sess := loginSession(t, h, "admin")
	time.Sleep(30 * time.Millisecond)

	var sawSession models.Session

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	guardedEcho(h, &sawSession, &models.RequestContext{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, sess.ID, cookies[0].Value)
	assert.Equal(t, sawSession.ID, cookies[0].Value)
}
