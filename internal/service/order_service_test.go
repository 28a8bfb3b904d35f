package service

import (
	"context"
	"testing"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo *stubProductRepo, tenantID, name string, price string, stock int) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, repo.Create(context.Background(), &model.Product{
		ID:       id,
		TenantID: tenantID,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Category: "General",
		Stock:    stock,
	}))
	return id
}

func buildOrderSvc(t *testing.T, taxRate string) (OrderService, *stubOrderRepo, *stubProductRepo, *stubTenantRepo) {
	t.Helper()
	tenants := newStubTenantRepo()
	require.NoError(t, tenants.Create(context.Background(), &model.Tenant{
		ID:         "node_a",
		Name:       "Shop A",
		TaxRate:    decimal.RequireFromString(taxRate),
		Status:     model.StatusActive,
		ExpiryDate: time.Now().AddDate(1, 0, 0),
	}))
	orders := newStubOrderRepo()
	products := newStubProductRepo()
	svc := NewOrderService(orders, products, tenants, nil)
	return svc, orders, products, tenants
}

func TestCompleteOrder_Math(t *testing.T) {
	svc, orders, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 5)

	resp, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 2}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("20.00")), resp.Subtotal.String())
	assert.True(t, resp.Tax.Equal(decimal.RequireFromString("2.00")), resp.Tax.String())
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("22.00")), resp.Total.String())
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "Soda", resp.Items[0].Name)
	assert.NotEmpty(t, resp.ReceiptCode)
	assert.Len(t, orders.orders, 1)

	// Stock was decremented in the same completion.
	p, _ := products.FindByID(context.Background(), "node_a", pid)
	assert.Equal(t, 3, p.Stock)
}

func TestCompleteOrder_TaxRoundsToCents(t *testing.T) {
	svc, _, products, _ := buildOrderSvc(t, "8.25")
	pid := seedProduct(t, products, "node_a", "Gum", "1.99", 100)

	resp, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 3}},
		PaymentMethod: model.PaymentCard,
	})
	require.NoError(t, err)

	// 3 × 1.99 = 5.97; 5.97 × 8.25% = 0.492525 → 0.49
	assert.True(t, resp.Subtotal.Equal(decimal.RequireFromString("5.97")), resp.Subtotal.String())
	assert.True(t, resp.Tax.Equal(decimal.RequireFromString("0.49")), resp.Tax.String())
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("6.46")), resp.Total.String())
}

func TestCompleteOrder_EmptyCart(t *testing.T) {
	svc, _, _, _ := buildOrderSvc(t, "10")

	_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		PaymentMethod: model.PaymentCash,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCompleteOrder_ClientTotalMismatch(t *testing.T) {
	svc, orders, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 5)

	wrong := decimal.RequireFromString("21.99")
	_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 2}},
		PaymentMethod: model.PaymentCash,
		ClientTotal:   &wrong,
	})
	assert.ErrorIs(t, err, ErrTotalMismatch)
	assert.Empty(t, orders.orders)

	// Nothing was decremented on rejection.
	p, _ := products.FindByID(context.Background(), "node_a", pid)
	assert.Equal(t, 5, p.Stock)
}

func TestCompleteOrder_ClientTotalMatchAccepted(t *testing.T) {
	svc, _, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 5)

	exact := decimal.RequireFromString("22.00")
	_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 2}},
		PaymentMethod: model.PaymentCash,
		ClientTotal:   &exact,
	})
	assert.NoError(t, err)
}

func TestCompleteOrder_StockFlooredAtZero(t *testing.T) {
	svc, _, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 1)

	_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 4}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	p, _ := products.FindByID(context.Background(), "node_a", pid)
	assert.Equal(t, 0, p.Stock)
}

func TestCompleteOrder_DoubleCompletionYieldsTwoOrders(t *testing.T) {
	// Two identical completions are two sales, not an idempotent replay.
	svc, orders, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 10)

	req := dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 2}},
		PaymentMethod: model.PaymentCash,
	}
	first, err := svc.CompleteOrder(context.Background(), "node_a", req)
	require.NoError(t, err)
	second, err := svc.CompleteOrder(context.Background(), "node_a", req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, orders.orders, 2)
	p, _ := products.FindByID(context.Background(), "node_a", pid)
	assert.Equal(t, 6, p.Stock)
}

func TestCompleteOrder_SnapshotSurvivesCatalogEdit(t *testing.T) {
	svc, orders, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 5)

	resp, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 1}},
		PaymentMethod: model.PaymentCash,
	})
	require.NoError(t, err)

	// Reprice the product after the sale; the recorded line is untouched.
	p, _ := products.FindByID(context.Background(), "node_a", pid)
	p.Price = decimal.RequireFromString("99.00")
	require.NoError(t, products.Update(context.Background(), p))

	stored, err := orders.FindByID(context.Background(), "node_a", uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestCompleteOrder_ProductFromAnotherTenantRejected(t *testing.T) {
	svc, orders, products, tenants := buildOrderSvc(t, "10")
	require.NoError(t, tenants.Create(context.Background(), &model.Tenant{
		ID: "node_b", TaxRate: decimal.NewFromInt(10), Status: model.StatusActive,
		ExpiryDate: time.Now().AddDate(1, 0, 0),
	}))
	foreign := seedProduct(t, products, "node_b", "Imported", "5.00", 5)

	_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: foreign.String(), Quantity: 1}},
		PaymentMethod: model.PaymentCash,
	})
	assert.Error(t, err)
	assert.Empty(t, orders.orders)
}

func TestSummary_AggregatesPerTenant(t *testing.T) {
	svc, _, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 50)

	for i := 0; i < 3; i++ {
		_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
			Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 1}},
			PaymentMethod: model.PaymentCash,
		})
		require.NoError(t, err)
	}

	sum, err := svc.Summary(context.Background(), "node_a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), sum.OrderCount)
	assert.True(t, sum.Revenue.Equal(decimal.RequireFromString("33.00")), sum.Revenue.String())
	assert.True(t, sum.TaxTotal.Equal(decimal.RequireFromString("3.00")), sum.TaxTotal.String())
}

func TestList_DefaultsPaging(t *testing.T) {
	svc, _, products, _ := buildOrderSvc(t, "10")
	pid := seedProduct(t, products, "node_a", "Soda", "10.00", 50)

	_, err := svc.CompleteOrder(context.Background(), "node_a", dto.CompleteOrderRequest{
		Items:         []dto.CartItemRequest{{ProductID: pid.String(), Quantity: 1}},
		PaymentMethod: model.PaymentDigital,
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), "node_a", repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 50, resp.Limit)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.PaymentDigital, resp.Data[0].PaymentMethod)
}
