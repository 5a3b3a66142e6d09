package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/matiascayunao/pvsa-p/internal/domain"
	"github.com/matiascayunao/pvsa-p/internal/repository"
)

// CatalogService manages categories, object kinds and object variants.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category, error)
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error

	ListObjectKinds(ctx context.Context, categoryID string) ([]*domain.ObjectKind, error)
	GetObjectKind(ctx context.Context, kindID string) (*domain.ObjectKind, error)
	CreateObjectKind(ctx context.Context, categoryID, name string) (*domain.ObjectKind, error)
	UpdateObjectKind(ctx context.Context, kindID, categoryID, name string) (*domain.ObjectKind, error)
	DeleteObjectKind(ctx context.Context, kindID string) error

	ListObjectVariants(ctx context.Context, kindID, categoryID string) ([]*domain.ObjectVariant, error)
	GetObjectVariant(ctx context.Context, variantID string) (*domain.ObjectVariant, error)
	CreateObjectVariant(ctx context.Context, kindID, brand, material string) (*domain.ObjectVariant, error)
	UpdateObjectVariant(ctx context.Context, variantID, kindID, brand, material string) (*domain.ObjectVariant, error)
	DeleteObjectVariant(ctx context.Context, variantID string) error
}

type catalogService struct {
	repo   repository.CatalogRepo
	logger *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepo, logger *zap.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, categoryID string) (*domain.Category, error) {
	if categoryID == "" {
		return nil, fmt.Errorf("category_id is required")
	}
	return s.repo.GetCategory(ctx, categoryID)
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category_name is required")
	}
	c := &domain.Category{CategoryName: name}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, categoryID, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if categoryID == "" || name == "" {
		return nil, fmt.Errorf("category_id and category_name are required")
	}
	c := &domain.Category{CategoryID: categoryID, CategoryName: name}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return c, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return fmt.Errorf("category_id is required")
	}
	return s.repo.DeleteCategory(ctx, categoryID)
}

func (s *catalogService) ListObjectKinds(ctx context.Context, categoryID string) ([]*domain.ObjectKind, error) {
	return s.repo.ListObjectKinds(ctx, categoryID)
}

func (s *catalogService) GetObjectKind(ctx context.Context, kindID string) (*domain.ObjectKind, error) {
	if kindID == "" {
		return nil, fmt.Errorf("kind_id is required")
	}
	return s.repo.GetObjectKind(ctx, kindID)
}

func (s *catalogService) CreateObjectKind(ctx context.Context, categoryID, name string) (*domain.ObjectKind, error) {
	name = strings.TrimSpace(name)
	if categoryID == "" || name == "" {
		return nil, fmt.Errorf("category_id and kind_name are required")
	}
	k := &domain.ObjectKind{CategoryID: categoryID, KindName: name}
	if err := s.repo.CreateObjectKind(ctx, k); err != nil {
		return nil, fmt.Errorf("failed to create object kind: %w", err)
	}
	s.logger.Info("object kind created", zap.String("kind_id", k.KindID), zap.String("name", name))
	return k, nil
}

func (s *catalogService) UpdateObjectKind(ctx context.Context, kindID, categoryID, name string) (*domain.ObjectKind, error) {
	name = strings.TrimSpace(name)
	if kindID == "" || categoryID == "" || name == "" {
		return nil, fmt.Errorf("kind_id, category_id and kind_name are required")
	}
	k := &domain.ObjectKind{KindID: kindID, CategoryID: categoryID, KindName: name}
	if err := s.repo.UpdateObjectKind(ctx, k); err != nil {
		return nil, fmt.Errorf("failed to update object kind: %w", err)
	}
	return k, nil
}

func (s *catalogService) DeleteObjectKind(ctx context.Context, kindID string) error {
	if kindID == "" {
		return fmt.Errorf("kind_id is required")
	}
	return s.repo.DeleteObjectKind(ctx, kindID)
}

func (s *catalogService) ListObjectVariants(ctx context.Context, kindID, categoryID string) ([]*domain.ObjectVariant, error) {
	return s.repo.ListObjectVariants(ctx, kindID, categoryID)
}

func (s *catalogService) GetObjectVariant(ctx context.Context, variantID string) (*domain.ObjectVariant, error) {
	if variantID == "" {
		return nil, fmt.Errorf("variant_id is required")
	}
	return s.repo.GetObjectVariant(ctx, variantID)
}

func (s *catalogService) CreateObjectVariant(ctx context.Context, kindID, brand, material string) (*domain.ObjectVariant, error) {
	if kindID == "" {
		return nil, fmt.Errorf("kind_id is required")
	}
	v := &domain.ObjectVariant{
		KindID:   kindID,
		Brand:    strings.TrimSpace(brand),
		Material: strings.TrimSpace(material),
	}
	if err := s.repo.CreateObjectVariant(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to create object variant: %w", err)
	}
	return v, nil
}

func (s *catalogService) UpdateObjectVariant(ctx context.Context, variantID, kindID, brand, material string) (*domain.ObjectVariant, error) {
	if variantID == "" || kindID == "" {
		return nil, fmt.Errorf("variant_id and kind_id are required")
	}
	v := &domain.ObjectVariant{
		VariantID: variantID,
		KindID:    kindID,
		Brand:     strings.TrimSpace(brand),
		Material:  strings.TrimSpace(material),
	}
	if err := s.repo.UpdateObjectVariant(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to update object variant: %w", err)
	}
	return v, nil
}

func (s *catalogService) DeleteObjectVariant(ctx context.Context, variantID string) error {
	if variantID == "" {
		return fmt.Errorf("variant_id is required")
	}
	return s.repo.DeleteObjectVariant(ctx, variantID)
}
