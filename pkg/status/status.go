// Package status declares error constants returned by
// the metadata reconciliation packages.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/metadata and the
// packages it builds upon.
package status

import "github.com/oneconcern/metapatch/pkg/errors"

var (
	// Sentinel errors surfaced to callers. All of them indicate a request
	// that cannot be satisfied, not a transient fault: they are never
	// retried or recovered locally.

	// ErrUnmatchedRemoval indicates that one or more ACL entities marked
	// for removal did not match any existing grant
	ErrUnmatchedRemoval = errors.New("ACL entities marked for removal did not match existing grants")

	// ErrPreserveACL indicates an attempt to preserve ACLs on copy while the source has none
	ErrPreserveACL = errors.New("attempting to preserve ACLs but found no source ACLs")

	// ErrMalformedDocument indicates that an override document (ACL, CORS,
	// lifecycle, labels) could not be parsed
	ErrMalformedDocument = errors.New("malformed metadata override document")

	// ErrInvalidPatch indicates that a patch request failed validation
	ErrInvalidPatch = errors.New("invalid patch request")
)
