package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"commerce-api/internal/apperr"
	"commerce-api/internal/domain"
	"commerce-api/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/singleflight"
)

const productCacheTTL = time.Minute

// ProductService is the catalog read side. Lookups go through an optional
// redis cache; availability and stock checks are pure and never mutate.
type ProductService struct {
	products    repository.ProductRepository
	redisClient *redis.Client
	group       singleflight.Group
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *ProductService) GetProductOrThrow(ctx context.Context, productID uint64) (*domain.Product, error) {
	p, err := s.getProductWithCache(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("product lookup failed", err)
	}
	if p == nil {
		return nil, apperr.NotFound(apperr.CodeProductNotFound, "product not found",
			fmt.Sprintf("Product ID: %d", productID))
	}
	return p, nil
}

func (s *ProductService) getProductWithCache(ctx context.Context, productID uint64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("product:%d", productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	// Collapse concurrent misses for the same product into one DB read.
	v, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		p, err := s.products.FindByID(ctx, productID)
		if err != nil {
			return nil, err
		}

		if s.redisClient != nil && p != nil {
			if data, err := json.Marshal(p); err == nil {
				s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
			}
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *ProductService) ValidateAvailability(p *domain.Product) error {
	if !p.IsAvailable() {
		return apperr.BusinessRule(apperr.CodeProductNotAvailable, "product is not available for sale",
			fmt.Sprintf("Product ID: %d", p.ProductID))
	}
	return nil
}

func (s *ProductService) ValidateStock(p *domain.Product, quantity int) error {
	if !p.HasEnoughStock(quantity) {
		return apperr.BusinessRule(apperr.CodeOutOfStock, "not enough stock",
			fmt.Sprintf("Requested: %d, Available: %d", quantity, p.AvailableStock))
	}
	return nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	out, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("product listing failed", err)
	}
	return out, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	return s.GetProductOrThrow(ctx, productID)
}
