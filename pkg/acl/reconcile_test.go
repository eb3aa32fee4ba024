package acl

import (
	"testing"

	"github.com/oneconcern/metapatch/pkg/errors"
	"github.com/oneconcern/metapatch/pkg/model"
	"github.com/oneconcern/metapatch/pkg/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grants(entities ...string) []*model.Grant {
	list := make([]*model.Grant, 0, len(entities))
	for _, e := range entities {
		list = append(list, &model.Grant{Entity: e, Role: "READER"})
	}
	return list
}

func TestReconcileNoop(t *testing.T) {
	existing := grants("user-a@x.com", "user-b@x.com", "allUsers")

	reconciled, err := Reconcile(existing, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, reconciled)

	// callers own the result: a fresh slice, not the existing backing array
	require.Len(t, reconciled, len(existing))
	reconciled[0] = &model.Grant{Entity: "other"}
	assert.Equal(t, "user-a@x.com", existing[0].Entity)
}

func TestReconcileRemoveAndAdd(t *testing.T) {
	existing := []*model.Grant{{Entity: "user-a@x.com", Role: "READER"}}

	reconciled, err := Reconcile(existing,
		[]string{"user-a@x.com"},
		[]Change{{Entity: "user-b@x.com", Role: "WRITER"}},
		ExactMatcher{})
	require.NoError(t, err)
	require.Len(t, reconciled, 1)
	assert.Equal(t, "user-b@x.com", reconciled[0].Entity)
	assert.Equal(t, "WRITER", reconciled[0].Role)
}

func TestReconcileOrder(t *testing.T) {
	existing := grants("a", "b", "c", "d")

	reconciled, err := Reconcile(existing,
		[]string{"b"},
		[]Change{{Entity: "e", Role: "OWNER"}, {Entity: "f", Role: "READER"}},
		ExactMatcher{})
	require.NoError(t, err)

	order := make([]string, 0, len(reconciled))
	for _, g := range reconciled {
		order = append(order, g.Entity)
	}
	assert.Equal(t, []string{"a", "c", "d", "e", "f"}, order)
}

func TestReconcileReAdd(t *testing.T) {
	// a grant being re-added is dropped from the retained section and
	// recreated fresh, so the new role wins without duplicates
	existing := []*model.Grant{
		{Entity: "user-a@x.com", Role: "READER"},
		{Entity: "user-b@x.com", Role: "READER"},
	}

	reconciled, err := Reconcile(existing, nil,
		[]Change{{Entity: "user-a@x.com", Role: "OWNER"}},
		ExactMatcher{})
	require.NoError(t, err)
	require.Len(t, reconciled, 2)
	assert.Equal(t, "user-b@x.com", reconciled[0].Entity)
	assert.Equal(t, "user-a@x.com", reconciled[1].Entity)
	assert.Equal(t, "OWNER", reconciled[1].Role)
}

func TestReconcileUnmatched(t *testing.T) {
	existing := grants("user-a@x.com")

	_, err := Reconcile(existing, []string{"user-z@x.com", "user-b@x.com"}, nil, ExactMatcher{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrUnmatchedRemoval))
	// unmatched identifiers are reported sorted for reproducible diagnostics
	assert.Contains(t, err.Error(), "[user-b@x.com user-z@x.com]")

	// all-or-nothing: the existing list is unaffected
	require.Len(t, existing, 1)
	assert.Equal(t, "user-a@x.com", existing[0].Entity)
}

func TestReconcileRemoveNonExistentAlwaysFails(t *testing.T) {
	_, err := Reconcile(nil, []string{"nobody"}, []Change{{Entity: "user-a@x.com", Role: "READER"}}, ExactMatcher{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrUnmatchedRemoval))
}

func TestShimMatcher(t *testing.T) {
	shim := ShimMatcher{}
	exact := ExactMatcher{}

	t.Run("email matches case-insensitively in shim mode only", func(t *testing.T) {
		grant := &model.Grant{Entity: "user-User-A@X.com", Email: "User-A@X.com"}

		matched, ok := shim.Match(grant, []string{"user-a@x.com"})
		require.True(t, ok)
		// original case preserved for error reporting
		assert.Equal(t, "user-a@x.com", matched)

		_, ok = exact.Match(grant, []string{"user-a@x.com"})
		assert.False(t, ok)
	})

	t.Run("priority order tries entity id before email", func(t *testing.T) {
		grant := &model.Grant{EntityID: "1234", Email: "user-a@x.com"}

		matched, ok := shim.Match(grant, []string{"1234", "user-a@x.com"})
		require.True(t, ok)
		assert.Equal(t, "1234", matched)
	})

	t.Run("domain and project team composite", func(t *testing.T) {
		grant := &model.Grant{Domain: "Example.com"}
		matched, ok := shim.Match(grant, []string{"example.COM"})
		require.True(t, ok)
		assert.Equal(t, "example.COM", matched)

		grant = &model.Grant{ProjectTeam: &model.ProjectTeam{Team: "Viewers", ProjectNumber: "42"}}
		matched, ok = shim.Match(grant, []string{"viewers-42"})
		require.True(t, ok)
		assert.Equal(t, "viewers-42", matched)
	})

	t.Run("entity string matches only the public group aliases", func(t *testing.T) {
		grant := &model.Grant{Entity: "AllUsers"}
		_, ok := shim.Match(grant, []string{"allusers"})
		assert.True(t, ok)

		grant = &model.Grant{Entity: "user-a@x.com"}
		_, ok = shim.Match(grant, []string{"user-a@x.com"})
		assert.False(t, ok)
	})
}

func TestReconcileShimRemoval(t *testing.T) {
	existing := []*model.Grant{
		{Entity: "user-User-A@X.com", Email: "User-A@X.com", Role: "READER"},
	}

	reconciled, err := Reconcile(existing, []string{"user-a@x.com"}, nil, ShimMatcher{})
	require.NoError(t, err)
	assert.Empty(t, reconciled)

	_, err = Reconcile(existing, []string{"user-a@x.com"}, nil, ExactMatcher{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrUnmatchedRemoval))
}

func TestMatcherFor(t *testing.T) {
	assert.IsType(t, ShimMatcher{}, MatcherFor(true))
	assert.IsType(t, ExactMatcher{}, MatcherFor(false))
}
