package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCookies_Set(t *testing.T) {
	rec := httptest.NewRecorder()
	c := NewHTTPCookies(rec, true)

	expires := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.Set("token", "abc123", expires))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	got := cookies[0]
	assert.Equal(t, "token", got.Name)
	assert.Equal(t, "abc123", got.Value)
	assert.Equal(t, "/", got.Path)
	assert.True(t, got.HttpOnly)
	assert.True(t, got.Secure)
	assert.WithinDuration(t, expires, got.Expires, time.Second)
}

func TestHTTPCookies_Clear(t *testing.T) {
	rec := httptest.NewRecorder()
	c := NewHTTPCookies(rec, false)

	require.NoError(t, c.Clear("token"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestNopCookies(t *testing.T) {
	var c CookieWriter = NopCookies{}
	assert.NoError(t, c.Set("token", "x", time.Time{}))
	assert.NoError(t, c.Clear("token"))
}
