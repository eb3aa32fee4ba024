package model

const (
	// AllUsers is the well-known entity granting public access
	AllUsers = "allUsers"

	// AllAuthenticatedUsers is the well-known entity granting access to any authenticated account
	AllAuthenticatedUsers = "allAuthenticatedUsers"

	// privateDefaultObjectACLID marks an intentionally empty default object ACL
	privateDefaultObjectACLID = "PRIVATE_DEFAULT_OBJ_ACL"
)

// Grant is one access control list entry, binding an identity to a role.
//
// Identity is carried by one of several mutually exclusive attributes
// (EntityID, Email, Domain, ProjectTeam or a well-known Entity name);
// the Entity string is the canonical form the backend echoes back.
type Grant struct {
	ID          string       `json:"id,omitempty"`
	Entity      string       `json:"entity,omitempty"`
	EntityID    string       `json:"entityId,omitempty"`
	Email       string       `json:"email,omitempty"`
	Domain      string       `json:"domain,omitempty"`
	ProjectTeam *ProjectTeam `json:"projectTeam,omitempty"`
	Role        string       `json:"role,omitempty"`
}

// ProjectTeam identifies a grant holder by project role
type ProjectTeam struct {
	ProjectNumber string `json:"projectNumber,omitempty"`
	Team          string `json:"team,omitempty"`
}

// PrivateDefaultObjectACL returns the marker grant for a private
// (empty) default object ACL. A default object ACL of nil means
// "don't modify", so an explicit marker is needed to request an ACL
// containing no entries.
func PrivateDefaultObjectACL() *Grant {
	return &Grant{ID: privateDefaultObjectACLID}
}

// IsPrivateDefaultObjectACL reports whether g is the private default object ACL marker
func (g *Grant) IsPrivateDefaultObjectACL() bool {
	return g != nil && g.ID == privateDefaultObjectACLID
}

// Clone returns a deep copy of the grant
func (g *Grant) Clone() *Grant {
	if g == nil {
		return nil
	}
	clone := *g
	if g.ProjectTeam != nil {
		team := *g.ProjectTeam
		clone.ProjectTeam = &team
	}
	return &clone
}

// CloneGrants returns a deep copy of a grant list
func CloneGrants(grants []*Grant) []*Grant {
	if grants == nil {
		return nil
	}
	clones := make([]*Grant, 0, len(grants))
	for _, g := range grants {
		clones = append(clones, g.Clone())
	}
	return clones
}
