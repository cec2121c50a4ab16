package session

import (
	"log/slog"
	"net/http"
)

// Middleware attaches the visitor's session to the request context when one
// exists. It never creates a session; requests without a valid token pass
// through untouched.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Lookup(r.Context(), r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// EnsureSession resolves or creates the visitor's session before the handler
// runs and writes mutated state back to persistent backends after it
// returns.
func (m *Manager) EnsureSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Start(r.Context(), w, r)
		if err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))

		if err := m.Save(r.Context(), sess); err != nil {
			m.log.ErrorContext(r.Context(), "session: save failed", slog.Any("error", err))
		}
	})
}
