package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosessions/sessionkit/pkg/cookie"
	"github.com/gosessions/sessionkit/pkg/session"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newTestManager(t *testing.T, opts ...session.Option) (*session.Manager, *session.MemoryProvider) {
	t.Helper()

	cookies, err := cookie.New([]string{testSecret})
	require.NoError(t, err)

	provider := session.NewMemoryProvider()
	registry := session.NewRegistry()
	registry.Register("memory", provider)

	base := []session.Option{
		session.WithCookieManager(cookies),
		session.WithTokenName("test-sid"),
		session.WithMaxLifetime(time.Hour),
	}

	manager, err := session.NewManager(registry, append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	return manager, provider
}

// carryCookies copies the session cookie from a prior response onto a new
// request, like a browser would.
func carryCookies(r *http.Request, w *httptest.ResponseRecorder) {
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
}

func TestNewManager(t *testing.T) {
	t.Parallel()

	t.Run("unknown backend", func(t *testing.T) {
		cookies, err := cookie.New([]string{testSecret})
		require.NoError(t, err)

		cfg := session.DefaultConfig()
		cfg.Backend = "bolt"

		_, err = session.NewManager(session.NewRegistry(),
			session.WithConfig(cfg),
			session.WithCookieManager(cookies),
		)
		assert.ErrorIs(t, err, session.ErrUnknownBackend)
	})

	t.Run("no transport", func(t *testing.T) {
		registry := session.NewRegistry()
		registry.Register("memory", session.NewMemoryProvider())

		_, err := session.NewManager(registry)
		assert.ErrorIs(t, err, session.ErrNoTransport)
	})

	t.Run("explicit provider skips registry", func(t *testing.T) {
		manager, err := session.NewManager(nil,
			session.WithProvider(session.NewMemoryProvider()),
			session.WithTransport(session.NewHeaderTransport("X-Session-Token")),
		)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, manager.MaxLifetime())
	})
}

func TestManager_Start(t *testing.T) {
	t.Parallel()

	t.Run("no token creates a session and sets the cookie", func(t *testing.T) {
		manager, _ := newTestManager(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		sess, err := manager.Start(context.Background(), w, r)
		require.NoError(t, err)
		require.NotNil(t, sess)

		_, ok := sess.Get("anything")
		assert.False(t, ok)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "test-sid", cookies[0].Name)
		assert.Equal(t, "/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, 3600, cookies[0].MaxAge)
	})

	t.Run("valid token resumes the same session", func(t *testing.T) {
		manager, _ := newTestManager(t)
		ctx := context.Background()

		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		sess1, err := manager.Start(ctx, w1, r1)
		require.NoError(t, err)
		sess1.Set("user", "alice")

		w2 := httptest.NewRecorder()
		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		carryCookies(r2, w1)

		sess2, err := manager.Start(ctx, w2, r2)
		require.NoError(t, err)
		assert.Equal(t, sess1.Token(), sess2.Token())

		user, ok := sess2.GetString("user")
		assert.True(t, ok)
		assert.Equal(t, "alice", user)

		// Resuming emits no new cookie.
		assert.Empty(t, w2.Result().Cookies())
	})

	t.Run("stale token degrades to a fresh session", func(t *testing.T) {
		manager, provider := newTestManager(t)
		ctx := context.Background()

		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		sess1, err := manager.Start(ctx, w1, r1)
		require.NoError(t, err)

		// Session evicted server-side while the client still holds the cookie.
		require.NoError(t, provider.Destroy(ctx, sess1.Token()))

		w2 := httptest.NewRecorder()
		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		carryCookies(r2, w1)

		sess2, err := manager.Start(ctx, w2, r2)
		require.NoError(t, err)
		assert.NotEqual(t, sess1.Token(), sess2.Token())
		require.Len(t, w2.Result().Cookies(), 1)
	})

	t.Run("tampered cookie degrades to a fresh session", func(t *testing.T) {
		manager, _ := newTestManager(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "test-sid", Value: "bm90LWEtcmVhbC10b2tlbg|forged"})

		sess, err := manager.Start(context.Background(), w, r)
		require.NoError(t, err)
		require.NotNil(t, sess)
		require.Len(t, w.Result().Cookies(), 1)
	})
}

func TestManager_Destroy(t *testing.T) {
	t.Parallel()

	t.Run("destroys the session and expires the cookie", func(t *testing.T) {
		manager, provider := newTestManager(t)
		ctx := context.Background()

		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		sess, err := manager.Start(ctx, w1, r1)
		require.NoError(t, err)

		w2 := httptest.NewRecorder()
		r2 := httptest.NewRequest(http.MethodPost, "/logout", nil)
		carryCookies(r2, w1)

		require.NoError(t, manager.Destroy(ctx, w2, r2))

		_, err = provider.Read(ctx, sess.Token())
		assert.ErrorIs(t, err, session.ErrNotFound)

		cookies := w2.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Negative(t, cookies[0].MaxAge)

		// The dead token never resurrects: the next Start mints a new one.
		w3 := httptest.NewRecorder()
		r3 := httptest.NewRequest(http.MethodGet, "/", nil)
		carryCookies(r3, w1)

		fresh, err := manager.Start(ctx, w3, r3)
		require.NoError(t, err)
		assert.NotEqual(t, sess.Token(), fresh.Token())
	})

	t.Run("no token is a no-op", func(t *testing.T) {
		manager, _ := newTestManager(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/logout", nil)

		require.NoError(t, manager.Destroy(context.Background(), w, r))
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("idempotent", func(t *testing.T) {
		manager, _ := newTestManager(t)
		ctx := context.Background()

		w1 := httptest.NewRecorder()
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := manager.Start(ctx, w1, r1)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/logout", nil)
			carryCookies(r, w1)
			require.NoError(t, manager.Destroy(ctx, w, r))
		}
	})
}

func TestManager_Lookup(t *testing.T) {
	t.Parallel()

	manager, _ := newTestManager(t)
	ctx := context.Background()

	t.Run("miss without token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := manager.Lookup(ctx, r)
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("finds existing session without touching the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		r1 := httptest.NewRequest(http.MethodGet, "/", nil)
		created, err := manager.Start(ctx, w, r1)
		require.NoError(t, err)

		r2 := httptest.NewRequest(http.MethodGet, "/", nil)
		carryCookies(r2, w)

		found, err := manager.Lookup(ctx, r2)
		require.NoError(t, err)
		assert.Equal(t, created.Token(), found.Token())
	})
}

func TestManager_Save(t *testing.T) {
	t.Parallel()

	// The memory provider hands out live objects; Save has nothing to do.
	manager, _ := newTestManager(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	sess, err := manager.Start(context.Background(), w, r)
	require.NoError(t, err)

	assert.NoError(t, manager.Save(context.Background(), sess))
}

func TestManager_HeaderTransport(t *testing.T) {
	t.Parallel()

	manager, err := session.NewManager(nil,
		session.WithProvider(session.NewMemoryProvider()),
		session.WithTransport(session.NewHeaderTransport("X-Session-Token")),
		session.WithMaxLifetime(time.Hour),
	)
	require.NoError(t, err)
	ctx := context.Background()

	w1 := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/", nil)
	sess1, err := manager.Start(ctx, w1, r1)
	require.NoError(t, err)

	value := w1.Header().Get("X-Session-Token")
	require.True(t, strings.HasPrefix(value, "Bearer "))

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.Header.Set("X-Session-Token", value)

	sess2, err := manager.Start(ctx, httptest.NewRecorder(), r2)
	require.NoError(t, err)
	assert.Equal(t, sess1.Token(), sess2.Token())
}
