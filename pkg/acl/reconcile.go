package acl

import (
	"fmt"
	"sort"

	"github.com/oneconcern/metapatch/pkg/model"
	"github.com/oneconcern/metapatch/pkg/status"
)

// Change requests one grant to be added: an entity plus its role
type Change struct {
	Entity string `json:"entity"`
	Role   string `json:"role"`
}

// Reconcile returns a new grant list built from existing grants minus the
// removal identifiers, plus a fresh grant per requested addition.
//
// The relative order of untouched existing grants is preserved; added
// grants are appended after them in caller-supplied order. A grant whose
// entity is also being added is dropped from the retained section and
// recreated fresh, so a single call can replace a grant's role without
// producing duplicates. Removal is all-or-nothing: if any identifier
// matches no existing grant, Reconcile fails with
// status.ErrUnmatchedRemoval listing every unmatched identifier, sorted,
// and no removal takes effect. The existing list is never mutated.
func Reconcile(existing []*model.Grant, toRemove []string, toAdd []Change, matcher Matcher) ([]*model.Grant, error) {
	if matcher == nil {
		matcher = ExactMatcher{}
	}

	found := make(map[string]bool, len(toRemove))
	for _, identifier := range toRemove {
		found[identifier] = false
	}
	adding := make(map[string]struct{}, len(toAdd))
	for _, change := range toAdd {
		adding[change.Entity] = struct{}{}
	}

	reconciled := make([]*model.Grant, 0, len(existing)+len(toAdd))
	for _, grant := range existing {
		if matched, ok := matcher.Match(grant, toRemove); ok {
			if _, tracked := found[matched]; tracked {
				found[matched] = true
				continue
			}
		}
		if _, beingAdded := adding[grant.Entity]; beingAdded {
			// dropped here and recreated below, so the new role wins
			continue
		}
		reconciled = append(reconciled, grant)
	}

	var unmatched []string
	for identifier, ok := range found {
		if !ok {
			unmatched = append(unmatched, identifier)
		}
	}
	if len(unmatched) > 0 {
		sort.Strings(unmatched)
		return nil, status.ErrUnmatchedRemoval.Wrap(fmt.Errorf("%v", unmatched))
	}

	for _, change := range toAdd {
		reconciled = append(reconciled, &model.Grant{Entity: change.Entity, Role: change.Role})
	}
	return reconciled, nil
}
