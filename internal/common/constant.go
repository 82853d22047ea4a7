// Package common contains shared constants and sentinel errors used across
// the timeline client packages.
package common

const (
	// AuthEmailHeaderName carries the signed-in user's email on every
	// authenticated API request.
	AuthEmailHeaderName = "X-Auth-Email"

	// RequestIDHeaderName tags outbound requests so server logs can be
	// correlated with client logs.
	RequestIDHeaderName = "X-Request-ID"
)
