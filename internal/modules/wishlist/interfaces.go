package wishlist

import (
	"context"

	"imobiliare/internal/domain"
)

type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ApartmentFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

// ReportGenerator renders a set of apartments into a downloadable document.
// Implemented by internal/report.
type ReportGenerator interface {
	Generate(apartments []domain.Apartment) ([]byte, error)
}
