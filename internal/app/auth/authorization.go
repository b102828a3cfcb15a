// Package auth holds the role and ownership predicates used by the
// controllers. Predicates are stateless and re-evaluated per request; the
// requester identity comes from the verified token claims, so no database
// lookup is needed to answer them.
package auth

import (
	"github.com/oguzk/jobport/internal/app/models"
)

// Requester is the authenticated identity attached to a request.
type Requester struct {
	UserID int64
	Email  string
	Role   models.Role
}

// IsAdmin reports whether the requester has the admin role.
func IsAdmin(r Requester) bool {
	return r.Role == models.RoleAdmin
}

// IsEmployer reports whether the requester has the employer role.
func IsEmployer(r Requester) bool {
	return r.Role == models.RoleEmployer
}

// IsOwner reports whether the requester is the user referenced by the
// target record's owning-user foreign key.
func IsOwner(r Requester, ownerID int64) bool {
	return r.UserID == ownerID
}

// CanManageCompanies reports whether the requester may create, update or
// delete companies and job postings (employer or admin).
func CanManageCompanies(r Requester) bool {
	return IsEmployer(r) || IsAdmin(r)
}

// CanModifyOwned reports whether the requester may mutate a record owned
// by ownerID (owner or admin).
func CanModifyOwned(r Requester, ownerID int64) bool {
	return IsOwner(r, ownerID) || IsAdmin(r)
}

// ApplicationScope describes which subset of applications a requester may see.
type ApplicationScope int

const (
	// ScopeOwn restricts listing to the requester's own applications.
	// This applies to seekers and, matching the original rule set, admins.
	ScopeOwn ApplicationScope = iota
	// ScopeEmployer restricts listing to applications against postings
	// under companies the requester created.
	ScopeEmployer
)

// ApplicationScopeFor selects the listing scope for a requester's role.
func ApplicationScopeFor(r Requester) ApplicationScope {
	if IsEmployer(r) {
		return ScopeEmployer
	}
	return ScopeOwn
}
