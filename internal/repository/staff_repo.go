package repository

import (
	"context"
	"errors"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRepository manages a tenant's staff roster. Every query is scoped by
// tenant id — a staff id only means something inside its own shop.
type StaffRepository interface {
	Create(ctx context.Context, s *model.Staff) error
	FindByStaffID(ctx context.Context, tenantID, staffID string) (*model.Staff, error)
	List(ctx context.Context, tenantID string) ([]model.Staff, error)
	Update(ctx context.Context, s *model.Staff) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}

type staffRepo struct{ db *gorm.DB }

func NewStaffRepository(db *gorm.DB) StaffRepository { return &staffRepo{db: db} }

func (r *staffRepo) Create(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *staffRepo) FindByStaffID(ctx context.Context, tenantID, staffID string) (*model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND staff_id = ?", tenantID, staffID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *staffRepo) List(ctx context.Context, tenantID string) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).
		Order("created_at ASC").Find(&staff).Error
	return staff, err
}

func (r *staffRepo) Update(ctx context.Context, s *model.Staff) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *staffRepo) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model.Staff{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
