package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// WriteJSON
// ─────────────────────────────────────────────

func TestWriteJSON_WritesBodyAndHeaders(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"error": "Access denied"}, http.StatusForbidden)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Access denied"}`, rec.Body.String())
}

func TestWriteJSON_UnmarshalableValue(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, func() {}, http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// ClientIP
// ─────────────────────────────────────────────

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "203.0.113.7:52810",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "single forwarded entry",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "198.51.100.4",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded chain keeps first hop",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "198.51.100.4, 10.0.0.2, 10.0.0.3",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded entry with spaces",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "  198.51.100.4  ,10.0.0.2",
			want:       "198.51.100.4",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
