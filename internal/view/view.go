// Package view holds the closed role→view capability table. The HTTP router
// enforces the same policy with middleware; this table is the single source
// used to build menus and to answer "can role R see view V".
package view

import "github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"

// View identifies one screen of the application.
type View string

const (
	Dashboard  View = "DASHBOARD"
	POS        View = "POS"
	Inventory  View = "INVENTORY"
	Reports    View = "REPORTS"
	Settings   View = "SETTINGS"
	AdminPanel View = "ADMIN_PANEL"
	StaffMgmt  View = "STAFF_MGMT"
)

// capabilities maps each role to its reachable views. Platform admins only
// see the global surfaces; staff are limited to the register and the audit
// trail. An unknown role maps to nothing.
var capabilities = map[string][]View{
	model.RolePlatformAdmin: {AdminPanel, Reports},
	model.RoleShopOwner:     {Dashboard, POS, Inventory, StaffMgmt, Reports, Settings},
	model.RoleStaff:         {POS, Reports},
}

// Allowed returns the views reachable by role, in menu order. The returned
// slice is a copy; callers may mutate it freely.
func Allowed(role string) []View {
	src := capabilities[role]
	out := make([]View, len(src))
	copy(out, src)
	return out
}

// Can reports whether role may render v. Out-of-set requests are expected to
// be treated as a no-op by callers, never an error path.
func Can(role string, v View) bool {
	for _, allowed := range capabilities[role] {
		if allowed == v {
			return true
		}
	}
	return false
}
