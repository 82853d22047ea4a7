// Package client contains client-side building blocks for the evidence
// timeline.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     login/registration, timelines, events and user administration.
//  2. A concrete HTTP JSON implementation (see HTTPClient) that stamps every
//     request with Content-Type, X-Request-ID and, when signed in,
//     X-Auth-Email.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// A request that never produced an HTTP response wraps ErrUnavailable. A
// non-2xx response is returned as *APIError, which carries the server's
// "error"/"message" fields and unwraps to ErrUnauthorized for 401/403.
package client
