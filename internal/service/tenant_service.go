package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/config"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Connectivity reports the live online/offline flag maintained by the
// connectivity watcher.
type Connectivity interface {
	Online() bool
}

// TenantService is the registry lifecycle: provisioning, replacement,
// status transitions and deletion of business nodes. Every mutation is
// connectivity-gated; reads, logins and sales never are.
type TenantService interface {
	Provision(ctx context.Context, req dto.ProvisionTenantRequest) (*dto.TenantResponse, error)
	Update(ctx context.Context, oldID string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	SetStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*dto.TenantResponse, error)
	List(ctx context.Context) ([]dto.TenantResponse, error)
	UpdateSettings(ctx context.Context, id string, req dto.UpdateShopSettingsRequest) (*dto.TenantResponse, error)
}

type tenantService struct {
	repo       repository.TenantRepository
	net        Connectivity
	dispatcher *worker.Dispatcher
	cfg        *config.Config
}

func NewTenantService(repo repository.TenantRepository, net Connectivity, dispatcher *worker.Dispatcher, cfg *config.Config) TenantService {
	return &tenantService{repo: repo, net: net, dispatcher: dispatcher, cfg: cfg}
}

func (s *tenantService) Provision(ctx context.Context, req dto.ProvisionTenantRequest) (*dto.TenantResponse, error) {
	if !s.net.Online() {
		return nil, ErrOfflineWriteRejected
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		// uuid-derived suffix; the duplicate check below still gates
		// acceptance, so a collision can never slip into the registry.
		id = "node_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	}
	if exists, err := s.repo.Exists(ctx, id); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicateTenantID
	}

	password := req.Password
	if password == "" {
		password = s.cfg.DefaultTenantPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}

	tier := req.SubscriptionType
	if tier == "" {
		tier = model.TierPro
	}
	expiry := time.Now().AddDate(1, 0, 0)
	if req.ExpiryDate != "" {
		if d, perr := time.Parse("2006-01-02", req.ExpiryDate); perr == nil {
			expiry = d
		}
	}

	tenant := &model.Tenant{
		ID:               id,
		Name:             req.Name,
		OwnerName:        req.OwnerName,
		Email:            req.Email,
		PasswordHash:     string(hash),
		LogoURL:          fmt.Sprintf("https://picsum.photos/seed/%s/200/200", id),
		Address:          "Awaiting physical address configuration",
		Phone:            "000-000-0000",
		Currency:         "$",
		TaxRate:          decimal.NewFromInt(10),
		Status:           model.StatusActive,
		SubscriptionType: tier,
		ExpiryDate:       expiry,
	}
	if err := s.repo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	// Welcome mail — best effort, never blocks provisioning.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: tenant.Email,
			Subject: "Your ByteWave business node is live",
			Body: fmt.Sprintf("Hi %s,\n\nYour store %q has been provisioned.\nStore ID: %s\n\nByteWave System",
				tenant.OwnerName, tenant.Name, tenant.ID),
		})
	}

	return tenantToResponse(tenant), nil
}

func (s *tenantService) Update(ctx context.Context, oldID string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error) {
	if !s.net.Online() {
		return nil, ErrOfflineWriteRejected
	}

	current, err := s.repo.FindByID(ctx, oldID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	if req.ID != oldID {
		if exists, err := s.repo.Exists(ctx, req.ID); err != nil {
			return nil, err
		} else if exists {
			return nil, ErrDuplicateTenantID
		}
	}

	passwordHash := current.PasswordHash
	if req.Password != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if herr != nil {
			return nil, herr
		}
		passwordHash = string(hash)
	}

	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, fmt.Errorf("invalid expiry date: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = current.Currency
	}

	next := &model.Tenant{
		ID:               req.ID,
		Name:             req.Name,
		OwnerName:        req.OwnerName,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		LogoURL:          req.LogoURL,
		Address:          req.Address,
		Phone:            req.Phone,
		Currency:         currency,
		TaxRate:          req.TaxRate,
		Status:           req.Status,
		SubscriptionType: req.SubscriptionType,
		ExpiryDate:       expiry,
		CreatedAt:        current.CreatedAt,
	}
	if err := s.repo.Update(ctx, oldID, next); err != nil {
		return nil, err
	}
	next.Staff = current.Staff
	return tenantToResponse(next), nil
}

func (s *tenantService) SetStatus(ctx context.Context, id, status string) error {
	if !s.net.Online() {
		return ErrOfflineWriteRejected
	}
	err := s.repo.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTenantNotFound
	}
	return err
}

func (s *tenantService) Delete(ctx context.Context, id string) error {
	if !s.net.Online() {
		return ErrOfflineWriteRejected
	}
	// Cascade removes the node's staff, catalog and order history; live
	// sessions bound to it die on their next request when the JWT
	// middleware fails to re-resolve the tenant.
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTenantNotFound
	}
	return err
}

func (s *tenantService) Get(ctx context.Context, id string) (*dto.TenantResponse, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenantToResponse(tenant), nil
}

func (s *tenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		resp[i] = *tenantToResponse(&tenants[i])
	}
	return resp, nil
}

// UpdateSettings is the owner-facing surface: branding, currency and tax
// rate only. It is not connectivity-gated — it is not a platform-admin
// registry mutation.
func (s *tenantService) UpdateSettings(ctx context.Context, id string, req dto.UpdateShopSettingsRequest) (*dto.TenantResponse, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	tenant.Name = req.Name
	tenant.LogoURL = req.LogoURL
	tenant.Address = req.Address
	tenant.Phone = req.Phone
	if req.Currency != "" {
		tenant.Currency = req.Currency
	}
	tenant.TaxRate = req.TaxRate
	if err := s.repo.Update(ctx, id, tenant); err != nil {
		return nil, err
	}
	return tenantToResponse(tenant), nil
}

func tenantToResponse(t *model.Tenant) *dto.TenantResponse {
	return &dto.TenantResponse{
		ID:               t.ID,
		Name:             t.Name,
		OwnerName:        t.OwnerName,
		Email:            t.Email,
		LogoURL:          t.LogoURL,
		Address:          t.Address,
		Phone:            t.Phone,
		Currency:         t.Currency,
		TaxRate:          t.TaxRate,
		Status:           t.Status,
		SubscriptionType: t.SubscriptionType,
		ExpiryDate:       t.ExpiryDate.Format("2006-01-02"),
		CreatedAt:        t.CreatedAt.UTC().Format(time.RFC3339),
		StaffCount:       len(t.Staff),
	}
}
