package repository

import (
	"context"

	"gorm.io/gorm"

	"imobiliare/internal/domain"
)

type OwnerRepository struct {
	db *gorm.DB
}

func NewOwnerRepository(db *gorm.DB) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// Save upserts: owners arrive nested inside apartment payloads and may or may
// not already exist.
func (r *OwnerRepository) Save(ctx context.Context, owner *domain.Owner) error {
	return r.db.WithContext(ctx).Save(owner).Error
}
