package handler

import (
	"net/http"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/middleware"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/view"

	"github.com/gin-gonic/gin"
)

// Credential-memory cookies ("remember me"). Only identifiers are stored —
// never the password.
const (
	cookieStoreID  = "bw_store_id"
	cookieUserID   = "bw_user_id"
	cookieRole     = "bw_role"
	cookieRemember = "bw_remember"

	rememberMaxAge = 30 * 24 * 60 * 60 // 30 days, seconds
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Resolve a login attempt into a role and bound store
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	// The reference system writes or clears the credential-memory cookies on
	// every attempt, before the outcome is known; flag off must leave all
	// four entries absent even after a previously-remembered session.
	h.applyRememberMe(c, req)

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) applyRememberMe(c *gin.Context, req dto.LoginRequest) {
	if !req.RememberMe {
		for _, name := range []string{cookieStoreID, cookieUserID, cookieRole, cookieRemember} {
			c.SetCookie(name, "", -1, "/", "", false, true)
		}
		return
	}

	mode := "OWNER"
	switch {
	case req.StoreID == model.PlatformTenantID && req.UserID == model.PlatformAdminID:
		mode = "SYSTEM"
	case req.AsStaff:
		mode = "STAFF"
	}
	c.SetCookie(cookieStoreID, req.StoreID, rememberMaxAge, "/", "", false, true)
	c.SetCookie(cookieUserID, req.UserID, rememberMaxAge, "/", "", false, true)
	c.SetCookie(cookieRole, mode, rememberMaxAge, "/", "", false, true)
	c.SetCookie(cookieRemember, "true", rememberMaxAge, "/", "", false, true)
}

// Views returns the permitted screen set for the current session, so clients
// can rebuild their menu after a role change without re-login.
func Views(c *gin.Context) {
	claims := middleware.GetClaims(c)
	allowed := view.Allowed(claims.Role)
	views := make([]string, len(allowed))
	for i, v := range allowed {
		views[i] = string(v)
	}
	c.JSON(http.StatusOK, gin.H{"role": claims.Role, "views": views})
}
