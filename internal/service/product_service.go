package service

import (
	"context"
	"errors"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"

	"github.com/google/uuid"
)

// ProductService is the tenant-scoped catalog surface.
type ProductService interface {
	Create(ctx context.Context, tenantID string, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, tenantID string, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, tenantID string) ([]dto.ProductResponse, error)
	Update(ctx context.Context, tenantID string, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	AdjustStock(ctx context.Context, tenantID string, id uuid.UUID, delta int) (*dto.ProductResponse, error)
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}

var ErrProductNotFound = errors.New("product not found")

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, tenantID string, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	category := req.Category
	if category == "" {
		category = "General"
	}
	p := &model.Product{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     req.Name,
		Price:    req.Price,
		Category: category,
		Stock:    req.Stock,
		ImageURL: req.ImageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, tenantID string, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, tenantID string) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i := range products {
		resp[i] = *productToResponse(&products[i])
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, tenantID string, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	p.Name = req.Name
	p.Price = req.Price
	if req.Category != "" {
		p.Category = req.Category
	}
	p.Stock = req.Stock
	p.ImageURL = req.ImageURL
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) AdjustStock(ctx context.Context, tenantID string, id uuid.UUID, delta int) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	err := s.repo.Delete(ctx, tenantID, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Stock:    p.Stock,
		ImageURL: p.ImageURL,
	}
}
