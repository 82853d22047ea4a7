// Package cli provides the interactive evidence-timeline command-line client.
//
// It wires configuration, the local session database, the API and media
// services, and a REPL that mirrors the web page: an auth panel while
// logged out, and a timeline view with an event form once logged in.
//
// Key features:
//   - Login / Register / Logout with a persisted session
//   - Timeline selection and creation
//   - Date-grouped event rendering with image and audio attachments
//   - Add / edit / delete events, including image cropping
//   - Super-admin user management
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
