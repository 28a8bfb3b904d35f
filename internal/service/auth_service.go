package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/config"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/view"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService is the authorization gate: it resolves a login attempt into a
// role and bound tenant, or rejects it with one specific reason.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	tenants repository.TenantRepository
	staff   repository.StaffRepository
	cfg     *config.Config
	now     func() time.Time
}

func NewAuthService(tenants repository.TenantRepository, staff repository.StaffRepository, cfg *config.Config) AuthService {
	return &authService{tenants: tenants, staff: staff, cfg: cfg, now: time.Now}
}

// Login resolves the attempt in a fixed order: master access, tenant lookup,
// expiry, suspension, then credentials. Subscription state is always checked
// before any credential comparison — an expired or suspended node rejects
// even a correct password.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.StoreID == model.PlatformTenantID && req.UserID == model.PlatformAdminID {
		if !s.masterSecretMatches(req.Password) {
			return nil, ErrInvalidMasterCredentials
		}
		return s.issueSession(dto.SessionUser{
			ID:       "bw_system_001",
			Username: model.PlatformAdminID,
			Role:     model.RolePlatformAdmin,
		})
	}

	tenant, err := s.tenants.FindByID(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	if tenant.Expired(s.now()) {
		return nil, ErrSubscriptionExpired
	}
	if tenant.Status == model.StatusSuspended {
		return nil, ErrTenantSuspended
	}

	if req.AsStaff {
		return s.loginStaff(ctx, tenant, req)
	}
	return s.loginOwner(tenant, req)
}

func (s *authService) loginStaff(ctx context.Context, tenant *model.Tenant, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// Lookup is scoped to this exact tenant: the same staff id in another
	// shop is a different account with different credentials.
	member, err := s.staff.FindByStaffID(ctx, tenant.ID, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidStaffCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidStaffCredentials
	}
	return s.issueSession(dto.SessionUser{
		ID:        member.StaffID,
		Username:  member.StaffID,
		Role:      model.RoleStaff,
		TenantID:  tenant.ID,
		StaffName: member.Name,
	})
}

func (s *authService) loginOwner(tenant *model.Tenant, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.UserID != tenant.Email {
		return nil, ErrInvalidOwnerCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(tenant.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidOwnerCredentials
	}
	return s.issueSession(dto.SessionUser{
		ID:       tenant.ID,
		Username: tenant.Email,
		Role:     model.RoleShopOwner,
		TenantID: tenant.ID,
	})
}

// masterSecretMatches compares against the configured master secret; the
// previous secret is also accepted while a rotation window is open.
func (s *authService) masterSecretMatches(password string) bool {
	if constantTimeEq(password, s.cfg.MasterSecret) {
		return true
	}
	return s.cfg.MasterSecretPrevious != "" && constantTimeEq(password, s.cfg.MasterSecretPrevious)
}

func constantTimeEq(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func (s *authService) issueSession(user dto.SessionUser) (*dto.LoginResponse, error) {
	expiry := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"role":       user.Role,
		"tenant_id":  user.TenantID,
		"staff_name": user.StaffName,
		"exp":        s.now().Add(expiry).Unix(),
		"iat":        s.now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	allowed := view.Allowed(user.Role)
	views := make([]string, len(allowed))
	for i, v := range allowed {
		views[i] = string(v)
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        user,
		Views:       views,
	}, nil
}
