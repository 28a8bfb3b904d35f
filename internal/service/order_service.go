package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService is the order completion engine plus the read side of the
// order history.
type OrderService interface {
	CompleteOrder(ctx context.Context, tenantID string, req dto.CompleteOrderRequest) (*dto.OrderResponse, error)
	List(ctx context.Context, tenantID string, filter repository.OrderFilter) (*dto.OrderListResponse, error)
	Summary(ctx context.Context, tenantID string) (*dto.SalesSummaryResponse, error)
}

type orderService struct {
	repo       repository.OrderRepository
	products   repository.ProductRepository
	tenants    repository.TenantRepository
	dispatcher *worker.Dispatcher
}

func NewOrderService(
	repo repository.OrderRepository,
	products repository.ProductRepository,
	tenants repository.TenantRepository,
	dispatcher *worker.Dispatcher,
) OrderService {
	return &orderService{repo: repo, products: products, tenants: tenants, dispatcher: dispatcher}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// CompleteOrder is the one multi-step domain operation:
//  1. Resolve each cart line against the tenant's catalog (pre-flight,
//     outside the transaction).
//  2. Compute subtotal, tax from the tenant's rate at this moment, total.
//  3. Verify the register's running total when supplied.
//  4. In one transaction: insert the order with immutable item snapshots and
//     decrement stock per line, floored at zero.
//  5. Fire the insight refresh and hand the order to receipt presentation.
//
// No partial application is ever visible: the history and the stock move
// together or not at all.
func (s *orderService) CompleteOrder(ctx context.Context, tenantID string, req dto.CompleteOrderRequest) (*dto.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	type resolvedItem struct {
		productID uuid.UUID
		name      string
		price     decimal.Decimal
		quantity  int
		lineTotal decimal.Decimal
	}

	var resolved []resolvedItem
	subtotal := decimal.Zero
	for _, item := range req.Items {
		pid, perr := uuid.Parse(item.ProductID)
		if perr != nil {
			return nil, fmt.Errorf("invalid product_id: %w", perr)
		}
		p, ferr := s.products.FindByID(ctx, tenantID, pid)
		if ferr != nil {
			return nil, fmt.Errorf("product %s not found in this store", item.ProductID)
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		resolved = append(resolved, resolvedItem{
			productID: pid,
			name:      p.Name,
			price:     p.Price,
			quantity:  item.Quantity,
			lineTotal: lineTotal,
		})
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(tenant.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(tax)

	if req.ClientTotal != nil && !req.ClientTotal.Round(2).Equal(total) {
		return nil, ErrTotalMismatch
	}

	order := model.Order{
		ID:            uuid.New(),
		ReceiptCode:   newReceiptCode(),
		TenantID:      tenantID,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
	}
	for _, r := range resolved {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: r.productID,
			Name:      r.name,
			UnitPrice: r.price,
			Quantity:  r.quantity,
			LineTotal: r.lineTotal,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &order); err != nil {
			return err
		}
		for _, r := range resolved {
			if err := s.products.DecrementStockTx(tx, tenantID, r.productID, r.quantity); err != nil {
				return fmt.Errorf("decrementing stock of %s: %w", r.name, err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Advisor refresh — best effort, fire & forget.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueInsight(ctx, worker.InsightJobPayload{TenantID: tenantID})
	}

	return orderToResponse(&order), nil
}

func (s *orderService) List(ctx context.Context, tenantID string, filter repository.OrderFilter) (*dto.OrderListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	orders, total, err := s.repo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, *orderToResponse(&orders[i]))
	}
	return &dto.OrderListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *orderService) Summary(ctx context.Context, tenantID string) (*dto.SalesSummaryResponse, error) {
	sum, err := s.repo.Summary(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &dto.SalesSummaryResponse{
		OrderCount: sum.OrderCount,
		Revenue:    sum.Revenue,
		TaxTotal:   sum.TaxTotal,
	}, nil
}

// newReceiptCode returns the short uppercase code printed on receipts.
// Uniqueness is enforced by the orders.receipt_code index; uuid entropy makes
// a collision retry unnecessary in practice.
func newReceiptCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}
	return &dto.OrderResponse{
		ID:            o.ID.String(),
		ReceiptCode:   o.ReceiptCode,
		TenantID:      o.TenantID,
		Items:         items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
}
