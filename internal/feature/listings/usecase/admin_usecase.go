package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"realty_backend/internal/feature/listings/domain/entity"
	uploads "realty_backend/internal/feature/uploads/usecase"
)

// PropertyRepository abstracts the full property store for admin operations.
type PropertyRepository interface {
	PropertyReader

	// Create persists a new property.
	Create(ctx context.Context, p *entity.Property) error

	// Update overwrites all mutable fields of an existing property.
	Update(ctx context.Context, p *entity.Property) error

	// DeleteCascade removes the property and its image rows in one
	// transaction and returns the filenames of the deleted images.
	// Returns ErrNotFound if the property does not exist.
	DeleteCascade(ctx context.Context, id uint) ([]string, error)
}

// ImageIngestor stores uploaded files for a property and records their rows.
type ImageIngestor interface {
	Ingest(ctx context.Context, propertyID uint, files []uploads.Upload) ([]string, error)
}

// FileCleaner removes a property's upload directory after deletion.
type FileCleaner interface {
	RemoveAll(dir string) error
}

// PropertyInput is the validated set of mutable property fields.
// Defaults for the optional fields are applied during form validation.
type PropertyInput struct {
	Title       string
	Address     string
	City        string
	State       string
	Price       int
	ForRent     bool
	Beds        int
	Baths       float64
	Sqft        int
	Description string
}

// AdminUsecase implements the authenticated create/update/delete operations
// over properties, orchestrating image ingestion.
type AdminUsecase struct {
	props  PropertyRepository
	ingest ImageIngestor
	files  FileCleaner
}

// NewAdminUsecase creates a new AdminUsecase instance.
func NewAdminUsecase(props PropertyRepository, ingest ImageIngestor, files FileCleaner) *AdminUsecase {
	return &AdminUsecase{props: props, ingest: ingest, files: files}
}

// List returns all properties, newest first, for the dashboard.
func (u *AdminUsecase) List(ctx context.Context) ([]entity.Property, error) {
	return u.props.Search(ctx, SearchQuery{})
}

// Get returns one property with its images, or ErrNotFound.
// Used to pre-populate the edit form.
func (u *AdminUsecase) Get(ctx context.Context, id uint) (*entity.Property, error) {
	return u.props.FindByID(ctx, id)
}

// Create persists a new property and then ingests any supplied images under
// its ID. The property insert and the image ingestion are separate commits;
// a failed upload never rolls back the created listing.
func (u *AdminUsecase) Create(ctx context.Context, in PropertyInput, files []uploads.Upload) (*entity.Property, error) {
	p := &entity.Property{
		Title:       in.Title,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Price:       in.Price,
		ForRent:     in.ForRent,
		Beds:        in.Beds,
		Baths:       in.Baths,
		Sqft:        in.Sqft,
		Description: in.Description,
	}
	if err := u.props.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if _, err := u.ingest.Ingest(ctx, p.ID, files); err != nil {
		slog.Error("image ingestion failed", "property_id", p.ID, "error", err)
	}
	return p, nil
}

// Update overwrites all mutable fields of the property and appends any newly
// supplied images to its existing set.
// Returns ErrNotFound if the property does not exist.
func (u *AdminUsecase) Update(ctx context.Context, id uint, in PropertyInput, files []uploads.Upload) (*entity.Property, error) {
	p, err := u.props.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.Price = in.Price
	p.ForRent = in.ForRent
	p.Beds = in.Beds
	p.Baths = in.Baths
	p.Sqft = in.Sqft
	p.Description = in.Description

	if err := u.props.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	if _, err := u.ingest.Ingest(ctx, p.ID, files); err != nil {
		slog.Error("image ingestion failed", "property_id", p.ID, "error", err)
	}
	return p, nil
}

// Delete removes the property and its image rows in one transaction, then
// removes the property's upload directory. File cleanup is best-effort; a
// failure is logged, not surfaced.
// Returns ErrNotFound if the property does not exist.
func (u *AdminUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.props.DeleteCascade(ctx, id); err != nil {
		return err
	}

	dir := strconv.FormatUint(uint64(id), 10)
	if err := u.files.RemoveAll(dir); err != nil {
		slog.Warn("failed to remove upload directory", "property_id", id, "error", err)
	}
	return nil
}
