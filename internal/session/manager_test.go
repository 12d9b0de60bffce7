package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	current time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.current
}

func newTestManager(t *testing.T) (*Manager, *fixedClock) {
	t.Helper()

	clock := &fixedClock{current: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	mgr, err := NewManager(Config{
		CookieName:  "test_session",
		HashKey:     []byte("12345678901234567890123456789012"),
		BlockKey:    []byte("abcdefghijklmnopqrstuv0123456789"),
		IdleTimeout: 10 * time.Minute,
		Lifetime:    2 * time.Hour,
		Now:         clock.Now,
	})
	require.NoError(t, err)
	return mgr, clock
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestManager_LocaleRoundTrip(t *testing.T) {
	mgr, clock := newTestManager(t)

	sess, err := mgr.Load(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
	require.Empty(t, sess.Locale())
	require.True(t, sess.Dirty())

	sess.SetLocale("en")
	token, err := sess.EnsureCSRFToken()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))
	require.False(t, sess.Dirty())

	cookie := findCookie(rec.Result().Cookies(), "test_session")
	require.NotNil(t, cookie)

	clock.current = clock.current.Add(time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	loaded, err := mgr.Load(req)
	require.NoError(t, err)
	require.Equal(t, sess.ID(), loaded.ID())
	require.Equal(t, "en", loaded.Locale())
	require.Equal(t, token, loaded.CSRFToken())
	require.False(t, loaded.Dirty())

	loaded.SetLocale("en")
	require.False(t, loaded.Dirty(), "setting the same locale is a no-op")
}

func TestManager_CookieIsBrowserSessionScoped(t *testing.T) {
	mgr, _ := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, mgr.New()))

	raw := rec.Header().Get("Set-Cookie")
	require.NotContains(t, raw, "Expires=")
	require.NotContains(t, raw, "Max-Age=")
	require.Contains(t, raw, "HttpOnly")
	require.Contains(t, raw, "SameSite=Lax")
}

func TestManager_IdleTimeout(t *testing.T) {
	mgr, clock := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, mgr.New()))
	cookie := findCookie(rec.Result().Cookies(), "test_session")

	clock.current = clock.current.Add(20 * time.Minute)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	_, err := mgr.Load(req)
	require.True(t, errors.Is(err, ErrExpired))
}

func TestManager_AbsoluteLifetime(t *testing.T) {
	mgr, clock := newTestManager(t)
	sess := mgr.New()

	// keep the session active so only the absolute limit applies
	for i := 0; i < 14; i++ {
		rec := httptest.NewRecorder()
		require.NoError(t, mgr.Save(rec, sess))
		cookie := findCookie(rec.Result().Cookies(), "test_session")
		clock.current = clock.current.Add(9 * time.Minute)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		loaded, err := mgr.Load(req)
		if err != nil {
			require.ErrorIs(t, err, ErrExpired)
			require.Greater(t, i, 12)
			return
		}
		sess = loaded
	}
	t.Fatal("expected session to expire after its lifetime")
}

func TestManager_TamperedCookieStartsFresh(t *testing.T) {
	mgr, _ := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "test_session", Value: "garbage"})
	sess, err := mgr.Load(req)
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID())
	require.Empty(t, sess.Locale())
}

func TestManager_LoadMarksStaleSessionForRefresh(t *testing.T) {
	mgr, clock := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, mgr.New()))
	cookie := findCookie(rec.Result().Cookies(), "test_session")
	savedAt := clock.current

	load := func() *Session {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookie)
		sess, err := mgr.Load(req)
		require.NoError(t, err)
		return sess
	}

	clock.current = savedAt.Add(2 * time.Minute)
	require.False(t, load().Dirty(), "recently active sessions need no rewrite")

	clock.current = savedAt.Add(3 * time.Minute)
	sess := load()
	require.True(t, sess.Dirty(), "past a quarter of the idle timeout")

	rec = httptest.NewRecorder()
	require.NoError(t, mgr.Save(rec, sess))
	require.False(t, sess.Dirty())
	require.Equal(t, clock.current, sess.data.LastActive)
}

func TestNewManagerValidatesKeys(t *testing.T) {
	_, err := NewManager(Config{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewManager(Config{HashKey: []byte("12345678901234567890123456789012"), BlockKey: []byte("short")})
	require.ErrorIs(t, err, ErrInvalidConfig)

	mgr, err := NewManager(Config{HashKey: []byte("12345678901234567890123456789012")})
	require.NoError(t, err)
	require.Equal(t, "landing_session", mgr.CookieName())
}
