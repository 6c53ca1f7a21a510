// Package models defines the wire records exchanged with the playlist service.
//
// Records are transient, client-held projections of server state; nothing is
// persisted beyond the session. Every record validates its required fields
// after decoding ([Playlist.Validate] and friends) and knows how to render
// itself for display ([Song.Label]) and how to derive a stable item
// identifier from its server-assigned ID ([Song.ItemID]).
package models
