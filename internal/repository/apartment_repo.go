package repository

import (
	"context"

	"gorm.io/gorm"

	"imobiliare/internal/domain"
)

type ApartmentRepository struct {
	db *gorm.DB
}

func NewApartmentRepository(db *gorm.DB) *ApartmentRepository {
	return &ApartmentRepository{db: db}
}

// GetAll returns every apartment with its owner inlined.
func (r *ApartmentRepository) GetAll(ctx context.Context) ([]domain.Apartment, error) {
	var apartments []domain.Apartment

	err := r.db.WithContext(ctx).
		Preload("Owner").
		Find(&apartments).Error

	return apartments, err
}

// GetByID fetches an apartment by its ID. Returns gorm.ErrRecordNotFound
// when the id does not resolve.
func (r *ApartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	var apartment domain.Apartment

	err := r.db.WithContext(ctx).
		Preload("Owner").
		First(&apartment, id).Error

	if err != nil {
		return nil, err
	}

	return &apartment, nil
}

// GetByOwnerID returns the apartments belonging to one owner. An unknown
// owner yields an empty slice, not an error.
func (r *ApartmentRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Apartment, error) {
	var apartments []domain.Apartment

	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Preload("Owner").
		Find(&apartments).Error

	return apartments, err
}

// CreateWithOwner persists the apartment together with its nested owner in a
// single transaction. The owner is upserted first; if that write fails the
// apartment is not created either.
func (r *ApartmentRepository) CreateWithOwner(ctx context.Context, apartment *domain.Apartment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if apartment.Owner != nil {
			if err := tx.Save(apartment.Owner).Error; err != nil {
				return err
			}
			apartment.OwnerID = apartment.Owner.ID
		}

		return tx.Omit("Owner").Create(apartment).Error
	})
}

// Save is a full-replace upsert: a missing id creates a new row instead of
// failing.
func (r *ApartmentRepository) Save(ctx context.Context, apartment *domain.Apartment) error {
	return r.db.WithContext(ctx).Save(apartment).Error
}

func (r *ApartmentRepository) Delete(ctx context.Context, apartment *domain.Apartment) error {
	return r.db.WithContext(ctx).Delete(apartment).Error
}

// CountAll returns the total number of apartments, wishlisted or not.
func (r *ApartmentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Apartment{}).
		Count(&count).Error

	return count, err
}
