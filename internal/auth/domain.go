package auth

import (
	"time"

	"github.com/staffdesk/staffdesk/internal/rbac"
)

// RoleNames is the closed set of provisioned roles accepted at signup.
var RoleNames = []string{"superadmin", "admin", "guest", "viewer", "contributor"}

// User is an account row joined with its role. Accounts are immutable after
// signup and never deleted by this service.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	RoleName     string
	Permissions  rbac.PermissionSet
	CreatedAt    time.Time
}
