package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest covers all three login modes. StoreID "CORE" plus UserID
// "platform_admin" selects the master login; AsStaff selects staff resolution
// inside the store; otherwise the owner email/password path is taken.
type LoginRequest struct {
	StoreID  string `json:"store_id" validate:"required,min=1,max=64"`
	UserID   string `json:"user_id"  validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=4"`
	AsStaff  bool   `json:"as_staff"`
	// RememberMe opts the client into the 30-day credential-memory cookies
	// (store id, user id, role — never the password). False clears them.
	RememberMe bool `json:"remember_me"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SessionUser is the resolved ephemeral identity.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"` // PLATFORM_ADMIN | SHOP_OWNER | STAFF
	TenantID string `json:"tenant_id,omitempty"`
	// StaffName is filled only for STAFF sessions.
	StaffName string `json:"staff_name,omitempty"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int         `json:"expires_in"` // seconds
	User        SessionUser `json:"user"`
	// Views is the permitted screen set for the resolved role, so the client
	// can build its menu without a second round trip.
	Views []string `json:"views"`
}
