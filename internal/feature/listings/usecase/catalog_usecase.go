package usecase

import (
	"context"
	"strings"

	"realty_backend/internal/feature/listings/domain/entity"
)

// HomePageLimit caps how many listings the landing page shows.
const HomePageLimit = 6

// SearchQuery carries the catalog filters. Q and City are matched as
// case-insensitive substrings; Mode is "rent", "sale", or anything else for
// no mode filter; Limit caps the result count when positive.
type SearchQuery struct {
	Q     string
	City  string
	Mode  string
	Limit int
}

// PropertyReader abstracts the read side of the property store.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type PropertyReader interface {
	// Search returns properties matching the query, newest first.
	Search(ctx context.Context, q SearchQuery) ([]entity.Property, error)

	// FindByID retrieves one property with its images.
	// Returns ErrNotFound on a miss.
	FindByID(ctx context.Context, id uint) (*entity.Property, error)
}

// CatalogUsecase provides the public read-only listing views.
type CatalogUsecase struct {
	props PropertyReader
}

// NewCatalogUsecase creates a new CatalogUsecase with the given repository.
func NewCatalogUsecase(props PropertyReader) *CatalogUsecase {
	return &CatalogUsecase{props: props}
}

// Search returns listings filtered by the query, newest first.
// Filter semantics are identical for the home page and the full listing;
// only the limit differs.
func (u *CatalogUsecase) Search(ctx context.Context, q SearchQuery) ([]entity.Property, error) {
	q.Q = strings.TrimSpace(q.Q)
	q.City = strings.TrimSpace(q.City)
	return u.props.Search(ctx, q)
}

// Detail returns one property with its images, or ErrNotFound.
func (u *CatalogUsecase) Detail(ctx context.Context, id uint) (*entity.Property, error) {
	return u.props.FindByID(ctx, id)
}
