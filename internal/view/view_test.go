package view

import (
	"testing"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAllowed_PerRole(t *testing.T) {
	assert.Equal(t, []View{AdminPanel, Reports}, Allowed(model.RolePlatformAdmin))
	assert.Equal(t, []View{Dashboard, POS, Inventory, StaffMgmt, Reports, Settings}, Allowed(model.RoleShopOwner))
	assert.Equal(t, []View{POS, Reports}, Allowed(model.RoleStaff))
}

func TestAllowed_UnknownRoleIsEmpty(t *testing.T) {
	assert.Empty(t, Allowed("JANITOR"))
	assert.Empty(t, Allowed(""))
}

func TestAllowed_ReturnsCopy(t *testing.T) {
	views := Allowed(model.RoleStaff)
	views[0] = "HACKED"
	assert.Equal(t, []View{POS, Reports}, Allowed(model.RoleStaff))
}

func TestCan(t *testing.T) {
	assert.True(t, Can(model.RoleStaff, POS))
	assert.False(t, Can(model.RoleStaff, Inventory))
	assert.False(t, Can(model.RoleStaff, AdminPanel))
	assert.True(t, Can(model.RolePlatformAdmin, AdminPanel))
	assert.False(t, Can(model.RolePlatformAdmin, POS))
	assert.True(t, Can(model.RoleShopOwner, Settings))
	assert.False(t, Can("JANITOR", POS))
}
