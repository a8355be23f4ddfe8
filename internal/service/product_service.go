package service

import (
	"context"

	"shop-service/internal/entity"
	"shop-service/internal/repository"
)

type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *entity.ProductCreate) (*entity.Product, error) {
	product := &entity.Product{Name: req.Name, Price: req.Price}
	createdProduct, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	return createdProduct, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}

	return products, nil
}
