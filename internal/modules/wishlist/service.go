package wishlist

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"imobiliare/internal/domain"
	"imobiliare/internal/repository"
)

type Service struct {
	wishlists  repository.WishlistRepository
	users      UserFinder
	apartments ApartmentFinder
	reports    ReportGenerator
}

func NewService(
	wishlists repository.WishlistRepository,
	users UserFinder,
	apartments ApartmentFinder,
	reports ReportGenerator,
) *Service {
	return &Service{
		wishlists:  wishlists,
		users:      users,
		apartments: apartments,
		reports:    reports,
	}
}

// AddToWishlist creates the (user, apartment) entry. Both ids must resolve;
// an already-present pair is a no-op, so calling this twice leaves exactly
// one row behind.
func (s *Service) AddToWishlist(ctx context.Context, userID, apartmentID int64) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if _, err := s.apartments.GetByID(ctx, apartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrApartmentNotFound
		}
		return err
	}

	exists, err := s.wishlists.Exists(ctx, userID, apartmentID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	entry := &domain.Wishlist{
		UserID:      userID,
		ApartmentID: apartmentID,
	}

	if err := s.wishlists.Create(ctx, entry); err != nil {
		// A concurrent insert of the same pair trips idx_user_apartment;
		// that still counts as the pair being present.
		if isDuplicatePair(err) {
			return nil
		}
		return err
	}

	return nil
}

// RemoveFromWishlist deletes the matching pair. Nothing matching is fine.
func (s *Service) RemoveFromWishlist(ctx context.Context, userID, apartmentID int64) error {
	_, err := s.wishlists.DeleteByUserAndApartment(ctx, userID, apartmentID)
	return err
}

// Report renders the user's wishlisted apartments as PDF bytes.
func (s *Service) Report(ctx context.Context, userID int64) ([]byte, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	apartments, err := s.wishlists.GetApartmentsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.reports.Generate(apartments)
}

func isDuplicatePair(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}

	// the modernc sqlite error is not translated to gorm.ErrDuplicatedKey
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
