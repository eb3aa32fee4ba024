// Package model describes the metadata records exchanged with the
// storage backend: buckets, objects and their access control grants.
//
// Types here are wire-shaped: field names follow the backend's JSON
// schema, and fields subject to explicit clearing are pointer-typed so
// nil distinguishes "absent" from a zero value. Labels and custom
// metadata use map values of *string: an entry with a nil value is a
// tombstone the backend interprets as "delete this key", while an
// absent key means "leave unchanged".
package model
