package repository

import (
	"errors"

	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/mappers"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) GetActiveProduct(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := r.DB.First(&productModel, "id = ? AND status = ?", productID, "active").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("product %s not found or inactive", productID)
		}
		return nil, domain.UpstreamError("failed to load product", err)
	}
	return mappers.ToDomainProduct(&productModel), nil
}

func (r *DefaultCatalogRepository) GetProduct(productID string) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := r.DB.First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("product %s not found", productID)
		}
		return nil, domain.UpstreamError("failed to load product", err)
	}
	return mappers.ToDomainProduct(&productModel), nil
}
