package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty_backend/internal/feature/listings/domain/entity"
)

func validForm() PropertyForm {
	return PropertyForm{
		Title:   "Modern Downtown Loft",
		Address: "123 Market St Unit 504",
		City:    "Los Angeles",
		State:   "CA",
		Price:   "2950",
		Mode:    "rent",
		Beds:    "1",
		Baths:   "1",
		Sqft:    "740",
	}
}

func TestPropertyForm_Validate(t *testing.T) {
	t.Run("valid form converts cleanly", func(t *testing.T) {
		f := validForm()
		in, errs := f.Validate()

		require.Empty(t, errs)
		assert.Equal(t, "Modern Downtown Loft", in.Title)
		assert.Equal(t, 2950, in.Price)
		assert.True(t, in.ForRent)
		assert.Equal(t, 1, in.Beds)
		assert.Equal(t, 1.0, in.Baths)
		assert.Equal(t, 740, in.Sqft)
	})

	t.Run("blank optional fields fall back to defaults", func(t *testing.T) {
		f := validForm()
		f.Beds, f.Baths, f.Sqft, f.Description = "", "", "", ""

		in, errs := f.Validate()

		require.Empty(t, errs)
		assert.Equal(t, DefaultBeds, in.Beds)
		assert.Equal(t, DefaultBaths, in.Baths)
		assert.Equal(t, DefaultSqft, in.Sqft)
		assert.Empty(t, in.Description)
	})

	t.Run("required fields", func(t *testing.T) {
		tests := []struct {
			field  string
			mutate func(*PropertyForm)
		}{
			{"title", func(f *PropertyForm) { f.Title = "  " }},
			{"address", func(f *PropertyForm) { f.Address = "" }},
			{"city", func(f *PropertyForm) { f.City = "" }},
			{"state", func(f *PropertyForm) { f.State = "" }},
			{"price", func(f *PropertyForm) { f.Price = "" }},
		}
		for _, tt := range tests {
			t.Run(tt.field, func(t *testing.T) {
				f := validForm()
				tt.mutate(&f)

				_, errs := f.Validate()
				assert.Contains(t, errs, tt.field)
			})
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		tests := []struct {
			name   string
			field  string
			mutate func(*PropertyForm)
		}{
			{"non-numeric price", "price", func(f *PropertyForm) { f.Price = "cheap" }},
			{"negative price", "price", func(f *PropertyForm) { f.Price = "-1" }},
			{"non-numeric beds", "beds", func(f *PropertyForm) { f.Beds = "two" }},
			{"negative baths", "baths", func(f *PropertyForm) { f.Baths = "-0.5" }},
			{"fractional sqft", "sqft", func(f *PropertyForm) { f.Sqft = "74.5" }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := validForm()
				tt.mutate(&f)

				_, errs := f.Validate()
				assert.Contains(t, errs, tt.field)
			})
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		f := validForm()
		f.Mode = "lease"

		_, errs := f.Validate()
		assert.Contains(t, errs, "mode")
	})

	t.Run("half baths are accepted", func(t *testing.T) {
		f := validForm()
		f.Baths = "1.5"

		in, errs := f.Validate()
		require.Empty(t, errs)
		assert.Equal(t, 1.5, in.Baths)
	})

	t.Run("all errors are collected at once", func(t *testing.T) {
		f := PropertyForm{}

		_, errs := f.Validate()
		for _, field := range []string{"title", "address", "city", "state", "price", "mode"} {
			assert.Contains(t, errs, field)
		}
	})
}

func TestFormFromEntity(t *testing.T) {
	p := &entity.Property{
		ID:          7,
		Title:       "Modern Downtown Loft",
		Address:     "123 Market St Unit 504",
		City:        "Los Angeles",
		State:       "CA",
		Price:       2950,
		ForRent:     true,
		Beds:        1,
		Baths:       1.5,
		Sqft:        740,
		Description: "Bright corner unit.",
	}

	f := FormFromEntity(p)

	assert.Equal(t, "2950", f.Price)
	assert.Equal(t, "rent", f.Mode)
	assert.Equal(t, "1.5", f.Baths)

	in, errs := f.Validate()
	require.Empty(t, errs)
	assert.Equal(t, p.Price, in.Price)
	assert.Equal(t, p.ForRent, in.ForRent)
	assert.Equal(t, p.Baths, in.Baths)
}
