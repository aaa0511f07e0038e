// Package dto defines the HTTP form objects for the listings feature.
package dto

import (
	"strconv"
	"strings"

	"realty_backend/internal/feature/listings/domain/entity"
	"realty_backend/internal/feature/listings/usecase"
)

// Defaults applied to the optional property fields when left blank.
const (
	DefaultBeds  = 1
	DefaultBaths = 1.0
	DefaultSqft  = 500
)

// PropertyForm is the admin create/edit form as submitted.
// Everything binds as a string so invalid numbers surface as field errors
// and the entered values round-trip back into the re-rendered form.
type PropertyForm struct {
	Title       string `form:"title"`
	Address     string `form:"address"`
	City        string `form:"city"`
	State       string `form:"state"`
	Price       string `form:"price"`
	Mode        string `form:"mode"`
	Beds        string `form:"beds"`
	Baths       string `form:"baths"`
	Sqft        string `form:"sqft"`
	Description string `form:"description"`
}

// FormFromEntity pre-populates the edit form from an existing property.
func FormFromEntity(p *entity.Property) PropertyForm {
	return PropertyForm{
		Title:       p.Title,
		Address:     p.Address,
		City:        p.City,
		State:       p.State,
		Price:       strconv.Itoa(p.Price),
		Mode:        p.Mode(),
		Beds:        strconv.Itoa(p.Beds),
		Baths:       strconv.FormatFloat(p.Baths, 'f', -1, 64),
		Sqft:        strconv.Itoa(p.Sqft),
		Description: p.Description,
	}
}

// Validate checks the form and converts it into a PropertyInput.
// The returned map is keyed by field name; a non-empty map means the input
// must not be used. Optional blank fields fall back to the documented
// defaults (beds=1, baths=1.0, sqft=500, description="").
func (f *PropertyForm) Validate() (usecase.PropertyInput, map[string]string) {
	errs := map[string]string{}
	in := usecase.PropertyInput{
		Title:       strings.TrimSpace(f.Title),
		Address:     strings.TrimSpace(f.Address),
		City:        strings.TrimSpace(f.City),
		State:       strings.TrimSpace(f.State),
		Description: strings.TrimSpace(f.Description),
	}

	if in.Title == "" {
		errs["title"] = "Title is required."
	}
	if in.Address == "" {
		errs["address"] = "Address is required."
	}
	if in.City == "" {
		errs["city"] = "City is required."
	}
	if in.State == "" {
		errs["state"] = "State is required."
	}

	switch price, err := strconv.Atoi(strings.TrimSpace(f.Price)); {
	case strings.TrimSpace(f.Price) == "":
		errs["price"] = "Price is required."
	case err != nil || price < 0:
		errs["price"] = "Price must be a non-negative whole number."
	default:
		in.Price = price
	}

	switch strings.TrimSpace(f.Mode) {
	case "rent":
		in.ForRent = true
	case "sale":
		in.ForRent = false
	default:
		errs["mode"] = "Type must be rent or sale."
	}

	in.Beds = DefaultBeds
	if s := strings.TrimSpace(f.Beds); s != "" {
		if v, err := strconv.Atoi(s); err != nil || v < 0 {
			errs["beds"] = "Beds must be a non-negative whole number."
		} else {
			in.Beds = v
		}
	}

	in.Baths = DefaultBaths
	if s := strings.TrimSpace(f.Baths); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err != nil || v < 0 {
			errs["baths"] = "Baths must be a non-negative number."
		} else {
			in.Baths = v
		}
	}

	in.Sqft = DefaultSqft
	if s := strings.TrimSpace(f.Sqft); s != "" {
		if v, err := strconv.Atoi(s); err != nil || v < 0 {
			errs["sqft"] = "Square feet must be a non-negative whole number."
		} else {
			in.Sqft = v
		}
	}

	return in, errs
}
