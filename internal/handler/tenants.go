package handler

import (
	"net/http"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/middleware"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantsHandler is the platform-admin surface over the tenant registry.
type TenantsHandler struct{ svc service.TenantService }

func NewTenantsHandler(svc service.TenantService) *TenantsHandler {
	return &TenantsHandler{svc: svc}
}

// Provision godoc
// @Summary      Provision a new business node
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProvisionTenantRequest true "Node draft"
// @Success      201 {object} dto.TenantResponse
// @Failure      409 {object} apierror.APIError
// @Failure      503 {object} apierror.APIError
// @Router       /v1/admin/tenants [post]
func (h *TenantsHandler) Provision(c *gin.Context) {
	var req dto.ProvisionTenantRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Provision(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TenantsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TenantsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update replaces the whole node configuration; the URL carries the previous
// identifier so the id itself may rotate in the body.
func (h *TenantsHandler) Update(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TenantsHandler) SetStatus(c *gin.Context) {
	var req dto.SetTenantStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TenantsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Shop settings (owner-facing) ─────────────────────────────────────────────

type SettingsHandler struct{ svc service.TenantService }

func NewSettingsHandler(svc service.TenantService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Get(c.Request.Context(), claims.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateShopSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.UpdateSettings(c.Request.Context(), claims.TenantID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
