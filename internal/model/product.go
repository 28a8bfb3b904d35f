package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product belongs to exactly one tenant's catalog. Stock is decremented by
// order completion and never goes below zero.
type Product struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantID string          `gorm:"size:64;index;not null"`
	Name     string          `gorm:"index;not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category string          `gorm:"not null;default:'General'"`
	Stock    int             `gorm:"not null;default:0"`
	ImageURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
