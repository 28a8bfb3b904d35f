package service

import (
	"context"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory TenantRepository stub ──────────────────────────────────────────

type stubTenantRepo struct {
	tenants map[string]*model.Tenant
}

func newStubTenantRepo() *stubTenantRepo {
	return &stubTenantRepo{tenants: make(map[string]*model.Tenant)}
}

func (r *stubTenantRepo) Create(_ context.Context, t *model.Tenant) error {
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *stubTenantRepo) FindByID(_ context.Context, id string) (*model.Tenant, error) {
	t, ok := r.tenants[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTenantRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.tenants[id]
	return ok, nil
}

func (r *stubTenantRepo) List(_ context.Context) ([]model.Tenant, error) {
	out := make([]model.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTenantRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.tenants)), nil
}

func (r *stubTenantRepo) Update(_ context.Context, oldID string, t *model.Tenant) error {
	if _, ok := r.tenants[oldID]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tenants, oldID)
	cp := *t
	r.tenants[t.ID] = &cp
	return nil
}

func (r *stubTenantRepo) UpdateStatus(_ context.Context, id, status string) error {
	t, ok := r.tenants[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Status = status
	return nil
}

func (r *stubTenantRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.tenants[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.tenants, id)
	return nil
}

var _ repository.TenantRepository = (*stubTenantRepo)(nil)

// ── In-memory StaffRepository stub ───────────────────────────────────────────

type stubStaffRepo struct {
	staff []*model.Staff
}

func newStubStaffRepo() *stubStaffRepo { return &stubStaffRepo{} }

func (r *stubStaffRepo) Create(_ context.Context, s *model.Staff) error {
	cp := *s
	r.staff = append(r.staff, &cp)
	return nil
}

func (r *stubStaffRepo) FindByStaffID(_ context.Context, tenantID, staffID string) (*model.Staff, error) {
	for _, s := range r.staff {
		if s.TenantID == tenantID && s.StaffID == staffID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubStaffRepo) List(_ context.Context, tenantID string) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.staff {
		if s.TenantID == tenantID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStaffRepo) Update(_ context.Context, s *model.Staff) error {
	for i, existing := range r.staff {
		if existing.ID == s.ID {
			cp := *s
			r.staff[i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *stubStaffRepo) Delete(_ context.Context, tenantID string, id uuid.UUID) error {
	for i, s := range r.staff {
		if s.TenantID == tenantID && s.ID == id {
			r.staff = append(r.staff[:i], r.staff[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.StaffRepository = (*stubStaffRepo)(nil)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, tenantID string, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok || p.TenantID != tenantID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, tenantID string, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), tenantID, id)
}

func (r *stubProductRepo) List(_ context.Context, tenantID string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.TenantID == tenantID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, tenantID string, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok || p.TenantID != tenantID {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, tenantID string, id uuid.UUID, quantity int) error {
	p, ok := r.products[id]
	if !ok || p.TenantID != tenantID {
		return repository.ErrNotFound
	}
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── In-memory OrderRepository stub ───────────────────────────────────────────

type stubOrderRepo struct {
	orders []*model.Order
}

func newStubOrderRepo() *stubOrderRepo { return &stubOrderRepo{} }

func (r *stubOrderRepo) CreateTx(_ *gorm.DB, o *model.Order) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	cp := *o
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, tenantID string, id uuid.UUID) (*model.Order, error) {
	for _, o := range r.orders {
		if o.TenantID == tenantID && o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubOrderRepo) List(_ context.Context, tenantID string, filter repository.OrderFilter) ([]model.Order, int64, error) {
	var out []model.Order
	for _, o := range r.orders {
		if o.TenantID == tenantID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) Summary(_ context.Context, tenantID string) (*repository.SalesSummary, error) {
	sum := &repository.SalesSummary{Revenue: decimal.Zero, TaxTotal: decimal.Zero}
	for _, o := range r.orders {
		if o.TenantID == tenantID {
			sum.OrderCount++
			sum.Revenue = sum.Revenue.Add(o.Total)
			sum.TaxTotal = sum.TaxTotal.Add(o.Tax)
		}
	}
	return sum, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Connectivity stub ────────────────────────────────────────────────────────

type stubConnectivity struct{ online bool }

func (c *stubConnectivity) Online() bool { return c.online }

var _ Connectivity = (*stubConnectivity)(nil)
