// Package metadata reconciles sparse update requests against the
// current metadata of a storage resource.
//
// An Updater mutates a caller-owned working copy of the metadata in
// place: scalars resolve through tri-state patch fields, access control
// lists reconcile with identity matching, labels merge with tombstones
// for removals, and compression-derived fields take precedence over
// user-supplied values. Independently, the cleared-field collectors
// inspect the same request and return the wire field paths that must be
// force-included in the outgoing patch despite null or empty values.
//
// Reconciliation is synchronous and completes (or fails) before the
// resolved metadata is handed to transport. An Updater is safe for
// concurrent use; a single metadata value is not.
package metadata
