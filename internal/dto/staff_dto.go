package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateStaffRequest struct {
	StaffID  string `json:"staff_id" validate:"required,min=1,max=64"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=CASHIER MANAGER"`
}

type UpdateStaffRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=100"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=CASHIER MANAGER"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StaffResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}
