package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ProvisionTenantRequest is the platform-admin draft for a new business node.
// Everything except name and owner is defaulted when omitted.
type ProvisionTenantRequest struct {
	ID               string `json:"id"                validate:"omitempty,min=3,max=64"`
	Name             string `json:"name"              validate:"required,min=2,max=100"`
	OwnerName        string `json:"owner_name"        validate:"required,min=2,max=100"`
	Email            string `json:"email"             validate:"required,email"`
	Password         string `json:"password"          validate:"omitempty,min=8"`
	SubscriptionType string `json:"subscription_type" validate:"omitempty,oneof=Basic Pro Enterprise"`
	ExpiryDate       string `json:"expiry_date"       validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTenantRequest is a full replacement keyed by the previous identifier
// in the URL; ID may differ from it (identifier rotation).
type UpdateTenantRequest struct {
	ID               string          `json:"id"                validate:"required,min=3,max=64"`
	Name             string          `json:"name"              validate:"required,min=2,max=100"`
	OwnerName        string          `json:"owner_name"        validate:"required,min=2,max=100"`
	Email            string          `json:"email"             validate:"required,email"`
	Password         string          `json:"password"          validate:"omitempty,min=8"`
	LogoURL          string          `json:"logo_url"`
	Address          string          `json:"address"`
	Phone            string          `json:"phone"`
	Currency         string          `json:"currency"          validate:"omitempty,max=8"`
	TaxRate          decimal.Decimal `json:"tax_rate"          validate:"min=0,max=100"`
	Status           string          `json:"status"            validate:"required,oneof=active suspended trial"`
	SubscriptionType string          `json:"subscription_type" validate:"required,oneof=Basic Pro Enterprise"`
	ExpiryDate       string          `json:"expiry_date"       validate:"required,datetime=2006-01-02"`
}

type SetTenantStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended trial"`
}

// UpdateShopSettingsRequest is the owner-facing subset of tenant settings.
type UpdateShopSettingsRequest struct {
	Name     string          `json:"name"     validate:"required,min=2,max=100"`
	LogoURL  string          `json:"logo_url"`
	Address  string          `json:"address"`
	Phone    string          `json:"phone"`
	Currency string          `json:"currency" validate:"omitempty,max=8"`
	TaxRate  decimal.Decimal `json:"tax_rate" validate:"min=0,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TenantResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	OwnerName        string          `json:"owner_name"`
	Email            string          `json:"email"`
	LogoURL          string          `json:"logo_url"`
	Address          string          `json:"address"`
	Phone            string          `json:"phone"`
	Currency         string          `json:"currency"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	Status           string          `json:"status"`
	SubscriptionType string          `json:"subscription_type"`
	ExpiryDate       string          `json:"expiry_date"`
	CreatedAt        string          `json:"created_at"`
	StaffCount       int             `json:"staff_count"`
}
