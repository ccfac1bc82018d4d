package repository

import (
	"context"

	"gorm.io/gorm"

	"imobiliare/internal/domain"
)

// WishlistRepository covers the wishlist join table: plain CRUD plus the
// derived queries the wishlist endpoints need.
type WishlistRepository interface {
	GetAll(ctx context.Context) ([]domain.Wishlist, error)
	GetByID(ctx context.Context, id int64) (*domain.Wishlist, error)
	Create(ctx context.Context, w *domain.Wishlist) error
	Delete(ctx context.Context, w *domain.Wishlist) error
	GetApartmentsByUserID(ctx context.Context, userID int64) ([]domain.Apartment, error)
	DeleteByUserAndApartment(ctx context.Context, userID, apartmentID int64) (int64, error)
	Exists(ctx context.Context, userID, apartmentID int64) (bool, error)
	CountByApartmentID(ctx context.Context, apartmentID int64) (int64, error)
	CountDistinctApartments(ctx context.Context) (int64, error)
	CountByOwnerID(ctx context.Context, ownerID int64) (int64, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) GetAll(ctx context.Context) ([]domain.Wishlist, error) {
	var entries []domain.Wishlist

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Apartment").
		Preload("Apartment.Owner").
		Find(&entries).Error

	return entries, err
}

func (r *wishlistRepository) GetByID(ctx context.Context, id int64) (*domain.Wishlist, error) {
	var entry domain.Wishlist

	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *wishlistRepository) Create(ctx context.Context, w *domain.Wishlist) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *wishlistRepository) Delete(ctx context.Context, w *domain.Wishlist) error {
	return r.db.WithContext(ctx).Delete(w).Error
}

// GetApartmentsByUserID returns the apartments in one user's wishlist via a
// join through the wishlists table.
func (r *wishlistRepository) GetApartmentsByUserID(ctx context.Context, userID int64) ([]domain.Apartment, error) {
	var apartments []domain.Apartment

	err := r.db.WithContext(ctx).
		Select("apartments.*").
		Joins("JOIN wishlists ON wishlists.apartment_id = apartments.id").
		Where("wishlists.user_id = ?", userID).
		Preload("Owner").
		Find(&apartments).Error

	return apartments, err
}

// DeleteByUserAndApartment removes the matching pair and reports how many
// rows went away. Zero rows is not an error: the delete is idempotent.
func (r *wishlistRepository) DeleteByUserAndApartment(ctx context.Context, userID, apartmentID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND apartment_id = ?", userID, apartmentID).
		Delete(&domain.Wishlist{})

	return result.RowsAffected, result.Error
}

func (r *wishlistRepository) Exists(ctx context.Context, userID, apartmentID int64) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Wishlist{}).
		Where("user_id = ? AND apartment_id = ?", userID, apartmentID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountByApartmentID counts the wishlist rows referencing one apartment.
// The (user_id, apartment_id) unique index makes this the distinct-user count.
func (r *wishlistRepository) CountByApartmentID(ctx context.Context, apartmentID int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Wishlist{}).
		Where("apartment_id = ?", apartmentID).
		Count(&count).Error

	return count, err
}

// CountDistinctApartments counts how many different apartments appear in any
// user's wishlist.
func (r *wishlistRepository) CountDistinctApartments(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Wishlist{}).
		Distinct("apartment_id").
		Count(&count).Error

	return count, err
}

// CountByOwnerID counts wishlist rows whose apartment belongs to the given
// owner.
func (r *wishlistRepository) CountByOwnerID(ctx context.Context, ownerID int64) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Wishlist{}).
		Joins("JOIN apartments ON apartments.id = wishlists.apartment_id").
		Where("apartments.owner_id = ?", ownerID).
		Count(&count).Error

	return count, err
}
