// Package session provides server-side session management for HTTP
// applications: opaque crypto-random tokens, a pluggable storage provider
// abstraction, token transports, and background reclamation of idle
// sessions.
//
// # Architecture
//
// A Manager orchestrates the session life-cycle. It relies on a Transport to
// read and write the session token on every request and on a Provider to own
// the authoritative store of live sessions. Providers are registered by name
// in a Registry built at startup; the manager resolves its configured
// backend through it.
//
//	┌────────┐   token   ┌───────────┐
//	│ Client │ ────────► │ Transport │
//	└────────┘           └───────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────┐
//	│             Manager             │──► GC sweep (background)
//	└─────────────────────────────────┘
//	                           │
//	                           ▼
//	                     ┌──────────┐
//	                     │ Provider │ (memory, redis, postgres)
//	                     └──────────┘
//
// The manager's lock covers only identifier-lifecycle transitions: the
// create-or-resume decision in Start, Destroy, and the GC sweep. Value
// operations go straight to the resolved *Session, which carries its own
// lock, so payload traffic is never serialized through the manager.
//
// # Usage
//
//	registry := session.NewRegistry()
//	registry.Register("memory", session.NewMemoryProvider())
//
//	cookies, _ := cookie.New([]string{"32-byte-minimum-signing-secret..."})
//	manager, _ := session.NewManager(registry,
//	    session.WithCookieManager(cookies),
//	    session.WithMaxLifetime(30*time.Minute),
//	)
//	manager.StartGC()
//	defer manager.Close()
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, err := manager.Start(r.Context(), w, r)
//	    if err != nil { ... }
//	    sess.Set("cart", items)
//	}
//
// A stale or tampered token never fails a request: Start degrades to a fresh
// session under a new token. Token generation failure (entropy exhaustion)
// does fail the request, since issuing an unidentified session would be
// worse.
//
// # Expiry
//
// Every Get, Set, and Delete refreshes the session's last access time. The
// GC sweep removes sessions idle for at least the configured MaxLifetime; it
// reschedules itself only after a sweep completes, so sweeps never overlap.
package session
