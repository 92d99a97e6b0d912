// Package rbac decides request admission from per-role permission documents.
package rbac

import "time"

// Action codes form a closed set matching the four CRUD operations.
const (
	ActionCreate = "C"
	ActionRead   = "R"
	ActionUpdate = "U"
	ActionDelete = "D"
)

// PermissionSet is a role's permission document: page identifier to the
// action grants on that page.
type PermissionSet map[string]map[string]bool

// Role represents a provisioned role. Roles are read-only from this
// service's perspective; they are seeded out-of-band.
type Role struct {
	ID          int64
	Name        string
	Permissions PermissionSet
	CreatedAt   time.Time
}

// Allowed reports whether perms explicitly grants action on page. A nil
// document, an unknown page, an unknown action, and an explicit false all
// deny; only an explicit true grants. It never faults on missing keys.
func Allowed(perms PermissionSet, page, action string) bool {
	actions, ok := perms[page]
	if !ok {
		return false
	}
	return actions[action]
}
