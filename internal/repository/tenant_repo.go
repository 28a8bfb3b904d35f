package repository

import (
	"context"
	"errors"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"

	"gorm.io/gorm"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("not found")

// TenantRepository is the registry of all business nodes. Injected into the
// auth gate and the lifecycle service so storage stays swappable in tests.
type TenantRepository interface {
	Create(ctx context.Context, t *model.Tenant) error
	FindByID(ctx context.Context, id string) (*model.Tenant, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Tenant, error)
	Count(ctx context.Context) (int64, error)
	// Update replaces the tenant keyed by its previous identifier; when the
	// identifier itself rotates, every per-tenant collection is re-keyed in
	// the same transaction.
	Update(ctx context.Context, oldID string, t *model.Tenant) error
	UpdateStatus(ctx context.Context, id, status string) error
	// Delete removes the tenant and cascades to its staff, products and orders.
	Delete(ctx context.Context, id string) error
}

type tenantRepo struct{ db *gorm.DB }

func NewTenantRepository(db *gorm.DB) TenantRepository { return &tenantRepo{db: db} }

func (r *tenantRepo) Create(ctx context.Context, t *model.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tenantRepo) FindByID(ctx context.Context, id string) (*model.Tenant, error) {
	var t model.Tenant
	err := r.db.WithContext(ctx).Preload("Staff").First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &t, err
}

func (r *tenantRepo) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tenant{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *tenantRepo) List(ctx context.Context) ([]model.Tenant, error) {
	var tenants []model.Tenant
	err := r.db.WithContext(ctx).Preload("Staff").Order("created_at DESC").Find(&tenants).Error
	return tenants, err
}

func (r *tenantRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Tenant{}).Count(&n).Error
	return n, err
}

func (r *tenantRepo) Update(ctx context.Context, oldID string, t *model.Tenant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Tenant{}).Where("id = ?", oldID).Updates(map[string]interface{}{
			"id":                t.ID,
			"name":              t.Name,
			"owner_name":        t.OwnerName,
			"email":             t.Email,
			"password_hash":     t.PasswordHash,
			"logo_url":          t.LogoURL,
			"address":           t.Address,
			"phone":             t.Phone,
			"currency":          t.Currency,
			"tax_rate":          t.TaxRate,
			"status":            t.Status,
			"subscription_type": t.SubscriptionType,
			"expiry_date":       t.ExpiryDate,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if oldID == t.ID {
			return nil
		}
		// Identifier rotation — re-key every tenant-partitioned collection.
		for _, m := range []interface{}{&model.Staff{}, &model.Product{}, &model.Order{}} {
			if err := tx.Model(m).Where("tenant_id = ?", oldID).
				Update("tenant_id", t.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *tenantRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&model.Tenant{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tenant_id = ?", id).Delete(&model.Staff{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&model.Product{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id IN (?)",
			tx.Model(&model.Order{}).Select("id").Where("tenant_id = ?", id),
		).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tenant_id = ?", id).Delete(&model.Order{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Tenant{ID: id})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
