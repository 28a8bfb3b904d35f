package repository

import (
	"context"
	"errors"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository manages one tenant's catalog.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*model.Product, error)
	// FindByIDTx reads a product inside a running transaction.
	FindByIDTx(tx *gorm.DB, tenantID string, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, tenantID string) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
	// DecrementStockTx subtracts quantity from stock, clamped at zero,
	// within the supplied sale transaction.
	DecrementStockTx(tx *gorm.DB, tenantID string, id uuid.UUID, quantity int) error
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, tenantID string, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.Where("tenant_id = ? AND id = ?", tenantID, id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context, tenantID string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).
		Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) DecrementStockTx(tx *gorm.DB, tenantID string, id uuid.UUID, quantity int) error {
	return tx.Model(&model.Product{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Update("stock", gorm.Expr("GREATEST(stock - ?, 0)", quantity)).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
