// Package api implements the HTTP client for the playlist service.
//
// The client covers the six resource operations the service exposes: listing
// and creating playlists, listing and adding songs scoped to a playlist, and
// listing and granting playlist access for users. Reads are plain GETs with a
// "list" query parameter where scoped; creates POST form-encoded bodies. All
// responses are JSON and every decoded record is validated before it is
// returned, so callers never see a record missing its server-assigned
// identifier.
//
// Requests carry an X-Request-ID correlation header, optionally a bearer
// token, and pass through a client-side rate limiter.
package api
