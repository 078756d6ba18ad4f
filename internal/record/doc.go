// Package record stores typed sensor readings as a msgpack stream so they
// can be rendered later by cmd/ufmt dump.
//
// A stream starts with a header carrying the schema version, followed by one
// Reading per value. Readers reject streams from another schema with
// ErrSchema.
package record
