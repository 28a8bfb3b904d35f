package service

import (
	"context"
	"errors"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrStaffNotFound  = errors.New("staff member not found")
	ErrDuplicateStaff = errors.New("a staff member with this ID already exists in this store")
)

// StaffService manages a tenant's roster. Reachable only through the owner's
// staff-management surface.
type StaffService interface {
	Create(ctx context.Context, tenantID string, req dto.CreateStaffRequest) (*dto.StaffResponse, error)
	List(ctx context.Context, tenantID string) ([]dto.StaffResponse, error)
	Update(ctx context.Context, tenantID string, id uuid.UUID, req dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}

type staffService struct {
	repo repository.StaffRepository
}

func NewStaffService(repo repository.StaffRepository) StaffService {
	return &staffService{repo: repo}
}

func (s *staffService) Create(ctx context.Context, tenantID string, req dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	if _, err := s.repo.FindByStaffID(ctx, tenantID, req.StaffID); err == nil {
		return nil, ErrDuplicateStaff
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	member := &model.Staff{
		ID:           uuid.New(),
		TenantID:     tenantID,
		StaffID:      req.StaffID,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return staffToResponse(member), nil
}

func (s *staffService) List(ctx context.Context, tenantID string) ([]dto.StaffResponse, error) {
	staff, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StaffResponse, len(staff))
	for i := range staff {
		resp[i] = *staffToResponse(&staff[i])
	}
	return resp, nil
}

func (s *staffService) Update(ctx context.Context, tenantID string, id uuid.UUID, req dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	var member *model.Staff
	for i := range staff {
		if staff[i].ID == id {
			member = &staff[i]
			break
		}
	}
	if member == nil {
		return nil, ErrStaffNotFound
	}
	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Role != "" {
		member.Role = req.Role
	}
	if req.Password != "" {
		hash, herr := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if herr != nil {
			return nil, herr
		}
		member.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return staffToResponse(member), nil
}

func (s *staffService) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	err := s.repo.Delete(ctx, tenantID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrStaffNotFound
	}
	return err
}

func staffToResponse(m *model.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:        m.ID.String(),
		StaffID:   m.StaffID,
		Name:      m.Name,
		Role:      m.Role,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
