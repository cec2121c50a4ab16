// Package cookie wraps net/http cookie handling with shared default
// attributes, functional per-write options, and HMAC-SHA256 signed values
// with key rotation support.
//
//	mgr, err := cookie.New([]string{"at-least-32-bytes-of-secret....."})
//	mgr.SetSigned(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := mgr.GetSigned(r, "sid")
//
// Signing protects integrity only; values remain readable by the client.
package cookie
