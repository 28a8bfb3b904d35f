package model

import (
	"time"

	"github.com/google/uuid"
)

// Staff member roles within a tenant.
const (
	StaffRoleCashier = "CASHIER"
	StaffRoleManager = "MANAGER"
)

// Staff is a tenant-scoped operator. StaffID is the login identifier the
// operator types; it is unique only within its owning tenant, so two shops
// can both have an "S1" with different credentials.
type Staff struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID     string    `gorm:"size:64;not null;uniqueIndex:idx_tenant_staff"`
	StaffID      string    `gorm:"size:64;not null;uniqueIndex:idx_tenant_staff"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	// Role: CASHIER | MANAGER
	Role      string `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
