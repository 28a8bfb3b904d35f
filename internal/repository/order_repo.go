package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderFilter narrows and pages the order history listing.
type OrderFilter struct {
	Date  string `form:"date"` // YYYY-MM-DD, empty = all
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

// SalesSummary is the dashboard aggregate for one tenant.
type SalesSummary struct {
	OrderCount int64
	Revenue    decimal.Decimal
	TaxTotal   decimal.Decimal
}

// OrderRepository manages one tenant's immutable order history.
type OrderRepository interface {
	// CreateTx inserts the order and its item snapshots inside the sale
	// transaction; pass a nil tx only from unit tests.
	CreateTx(tx *gorm.DB, o *model.Order) error
	FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, tenantID string, filter OrderFilter) ([]model.Order, int64, error)
	Summary(ctx context.Context, tenantID string) (*SalesSummary, error)
	DB() *gorm.DB
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepository(db *gorm.DB) OrderRepository { return &orderRepo{db: db} }

func (r *orderRepo) CreateTx(tx *gorm.DB, o *model.Order) error {
	return tx.Create(o).Error
}

func (r *orderRepo) FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &o, err
}

func (r *orderRepo) List(ctx context.Context, tenantID string, filter OrderFilter) ([]model.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Order{}).Where("tenant_id = ?", tenantID)

	if filter.Date != "" {
		day, err := time.Parse("2006-01-02", filter.Date)
		if err == nil {
			q = q.Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := q.Preload("Items").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) Summary(ctx context.Context, tenantID string) (*SalesSummary, error) {
	var row struct {
		OrderCount int64
		Revenue    decimal.Decimal
		TaxTotal   decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COUNT(*) AS order_count, COALESCE(SUM(total), 0) AS revenue, COALESCE(SUM(tax), 0) AS tax_total").
		Where("tenant_id = ?", tenantID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &SalesSummary{OrderCount: row.OrderCount, Revenue: row.Revenue, TaxTotal: row.TaxTotal}, nil
}

func (r *orderRepo) DB() *gorm.DB { return r.db }
