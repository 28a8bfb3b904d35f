package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type CompleteOrderRequest struct {
	Items         []CartItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=Cash Card Digital"`
	// ClientTotal is the register's own running total. When present it must
	// match the server-computed subtotal+tax to the cent or the sale is
	// rejected — the server never trusts a client-side sum.
	ClientTotal *decimal.Decimal `json:"client_total" validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	ReceiptCode   string              `json:"receipt_code"`
	TenantID      string              `json:"tenant_id"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	CreatedAt     string              `json:"created_at"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type SalesSummaryResponse struct {
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	TaxTotal   decimal.Decimal `json:"tax_total"`
}

// InsightResponse carries the advisor strings and whether they are the
// fallback (advisor unreachable) or a real analysis.
type InsightResponse struct {
	Insights []string `json:"insights"`
	Fallback bool     `json:"fallback"`
}
