package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tenant lifecycle states.
const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusTrial     = "trial"
)

// Subscription tiers.
const (
	TierBasic      = "Basic"
	TierPro        = "Pro"
	TierEnterprise = "Enterprise"
)

// Session roles.
const (
	RolePlatformAdmin = "PLATFORM_ADMIN"
	RoleShopOwner     = "SHOP_OWNER"
	RoleStaff         = "STAFF"
)

// Reserved platform identifiers. A login against PlatformTenantID with
// PlatformAdminID is resolved against the master secret, never the registry.
const (
	PlatformTenantID = "CORE"
	PlatformAdminID  = "platform_admin"
)

// Tenant is one isolated business node: its own catalog, staff and orders.
// The ID is the operator-facing store identifier (chosen at provisioning or
// auto-generated) and partitions every per-shop collection.
type Tenant struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"not null"`
	OwnerName    string `gorm:"not null"`
	Email        string `gorm:"index;not null"`
	PasswordHash string `gorm:"not null"`
	LogoURL      string
	Address      string
	Phone        string
	Currency     string          `gorm:"size:8;not null;default:'$'"`
	TaxRate      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	// Status: active | suspended | trial
	Status           string `gorm:"type:varchar(20);not null;default:'active'"`
	SubscriptionType string `gorm:"type:varchar(20);not null;default:'Pro'"`
	// ExpiryDate is the subscription deadline; logins are rejected once it is
	// strictly in the past, before any credential comparison.
	ExpiryDate time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Staff []Staff `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// Expired reports whether the subscription deadline has passed at now.
func (t *Tenant) Expired(now time.Time) bool {
	return t.ExpiryDate.Before(now)
}
