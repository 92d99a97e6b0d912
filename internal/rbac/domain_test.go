package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedDenyByDefault(t *testing.T) {
	doc := PermissionSet{
		"employee-page": {ActionRead: true, ActionCreate: false},
	}

	tests := []struct {
		name   string
		perms  PermissionSet
		page   string
		action string
		want   bool
	}{
		{"explicit true grants", doc, "employee-page", ActionRead, true},
		{"explicit false denies", doc, "employee-page", ActionCreate, false},
		{"absent action denies", doc, "employee-page", ActionDelete, false},
		{"absent page denies", doc, "admin-page", ActionRead, false},
		{"nil document denies", nil, "employee-page", ActionRead, false},
		{"empty document denies", PermissionSet{}, "employee-page", ActionRead, false},
		{"nil action map denies", PermissionSet{"employee-page": nil}, "employee-page", ActionRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.perms, tt.page, tt.action))
		})
	}
}

func TestAllowedNeverGrantsUnlistedPairs(t *testing.T) {
	doc := PermissionSet{
		"employee-page": {ActionRead: true},
		"report-page":   {ActionCreate: true, ActionUpdate: false},
	}
	pages := []string{"employee-page", "report-page", "settings-page", ""}
	actions := []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete, "X", ""}

	for _, page := range pages {
		for _, action := range actions {
			explicit := doc[page] != nil && doc[page][action]
			assert.Equal(t, explicit, Allowed(doc, page, action), "page=%q action=%q", page, action)
		}
	}
}
