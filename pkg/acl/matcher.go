// Package acl reconciles access control lists: it computes a new grant
// list from an existing one plus add and remove instructions, with
// identity matching delegated to a pluggable Matcher.
package acl

import (
	"strings"

	"github.com/oneconcern/metapatch/pkg/model"
)

// Matcher decides whether an existing grant matches one of the removal
// identifiers, returning the matched identifier in its original case.
type Matcher interface {
	Match(grant *model.Grant, identifiers []string) (string, bool)
}

// MatcherFor returns the matching strategy for the given compatibility
// mode: the legacy shim matcher when shim is true, exact matching
// otherwise.
func MatcherFor(shim bool) Matcher {
	if shim {
		return ShimMatcher{}
	}
	return ExactMatcher{}
}

// ExactMatcher matches removal identifiers against the grant's canonical
// entity string, case-sensitively.
type ExactMatcher struct{}

// Match compares the raw entity string against each identifier
func (ExactMatcher) Match(grant *model.Grant, identifiers []string) (string, bool) {
	if grant == nil {
		return "", false
	}
	for _, identifier := range identifiers {
		if grant.Entity == identifier {
			return identifier, true
		}
	}
	return "", false
}

// ShimMatcher is the compatibility strategy for the predecessor tool:
// case-insensitive matching tried in priority order against entity ID,
// email, domain, project-team composite, then the well-known public
// group entities. Only those two entity names match by the canonical
// entity string; everything else must match a specific identity
// attribute.
type ShimMatcher struct{}

// Match returns the original-case identifier matching the grant, if any.
// The identifier's original case is preserved for error reporting even
// though comparison is case-folded.
func (ShimMatcher) Match(grant *model.Grant, identifiers []string) (string, bool) {
	if grant == nil {
		return "", false
	}
	// Building this mapping per grant is O(n^2) over the list, but removal
	// sets are user-typed flags and stay tiny.
	normalized := make(map[string]string, len(identifiers))
	for _, identifier := range identifiers {
		normalized[strings.ToLower(identifier)] = identifier
	}

	if grant.EntityID != "" {
		if original, ok := normalized[strings.ToLower(grant.EntityID)]; ok {
			return original, true
		}
	}
	if grant.Email != "" {
		if original, ok := normalized[strings.ToLower(grant.Email)]; ok {
			return original, true
		}
	}
	if grant.Domain != "" {
		if original, ok := normalized[strings.ToLower(grant.Domain)]; ok {
			return original, true
		}
	}
	if grant.ProjectTeam != nil {
		composite := strings.ToLower(grant.ProjectTeam.Team + "-" + grant.ProjectTeam.ProjectNumber)
		if original, ok := normalized[composite]; ok {
			return original, true
		}
	}
	if grant.Entity != "" {
		entity := strings.ToLower(grant.Entity)
		if entity == strings.ToLower(model.AllUsers) || entity == strings.ToLower(model.AllAuthenticatedUsers) {
			if original, ok := normalized[entity]; ok {
				return original, true
			}
		}
	}
	return "", false
}
