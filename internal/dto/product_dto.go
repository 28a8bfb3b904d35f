package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=150"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Category string          `json:"category" validate:"omitempty,max=60"`
	Stock    int             `json:"stock"    validate:"min=0"`
	ImageURL string          `json:"image_url"`
}

type UpdateProductRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=150"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
	Category string          `json:"category" validate:"omitempty,max=60"`
	Stock    int             `json:"stock"    validate:"min=0"`
	ImageURL string          `json:"image_url"`
}

// AdjustStockRequest nudges stock by a signed delta; the result never drops
// below zero.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	ImageURL string          `json:"image_url"`
}
