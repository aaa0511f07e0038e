// Package handler provides HTTP handlers for the intake feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/feature/intake/transport/http/dto"
	"realty_backend/internal/feature/intake/usecase"
	listingsentity "realty_backend/internal/feature/listings/domain/entity"
	listings "realty_backend/internal/feature/listings/usecase"
)

// IntakeUsecase defines the submission operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type IntakeUsecase interface {
	SubmitApplication(ctx context.Context, propertyID uint, in usecase.ApplicationInput) error
	SubmitInquiry(ctx context.Context, in usecase.InquiryInput) error
}

// PropertyViewer loads the property rendered above the application form.
type PropertyViewer interface {
	Detail(ctx context.Context, id uint) (*listingsentity.Property, error)
}

// IntakeHandler serves the public application and contact pages.
type IntakeHandler struct {
	intake IntakeUsecase
	props  PropertyViewer
}

// NewIntakeHandler creates a new IntakeHandler instance.
func NewIntakeHandler(intake IntakeUsecase, props PropertyViewer) *IntakeHandler {
	return &IntakeHandler{intake: intake, props: props}
}

func (h *IntakeHandler) loadProperty(c *gin.Context) (*listingsentity.Property, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
		return nil, false
	}

	p, err := h.props.Detail(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, listings.ErrNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
			return nil, false
		}
		slog.Error("property lookup failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return nil, false
	}
	return p, true
}

// ApplyPage renders the rental application form for an existing property.
func (h *IntakeHandler) ApplyPage(c *gin.Context) {
	p, ok := h.loadProperty(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "apply.html", gin.H{
		"Property": p,
		"Form":     dto.ApplicationForm{},
		"Errors":   map[string]string{},
	})
}

// Apply handles the application submission. Validation failures re-render the
// form with field errors and the entered values; nothing is written. Success
// redirects to the property detail page with a confirmation notice.
func (h *IntakeHandler) Apply(c *gin.Context) {
	p, ok := h.loadProperty(c)
	if !ok {
		return
	}

	var form dto.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("application form bind failed", "error", err)
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	in, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusBadRequest, "apply.html", gin.H{
			"Property": p,
			"Form":     form,
			"Errors":   fieldErrs,
		})
		return
	}

	if err := h.intake.SubmitApplication(c.Request.Context(), p.ID, in); err != nil {
		if errors.Is(err, usecase.ErrPropertyNotFound) {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
			return
		}
		slog.Error("failed to submit application", "property_id", p.ID, "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound,
		fmt.Sprintf("/properties/%d?notice=Application+submitted.+We%%27ll+be+in+touch+shortly.", p.ID))
}

// ContactPage renders the general contact form.
func (h *IntakeHandler) ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Form":   dto.InquiryForm{},
		"Errors": map[string]string{},
		"Notice": c.Query("notice"),
	})
}

// Contact handles the contact submission. Validation failures re-render the
// form; success persists the inquiry and redirects back to the contact page.
func (h *IntakeHandler) Contact(c *gin.Context) {
	var form dto.InquiryForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("inquiry form bind failed", "error", err)
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	in, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusBadRequest, "contact.html", gin.H{
			"Form":   form,
			"Errors": fieldErrs,
		})
		return
	}

	if err := h.intake.SubmitInquiry(c.Request.Context(), in); err != nil {
		slog.Error("failed to submit inquiry", "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/contact?notice=Thanks%21+We%27ll+reply+shortly.")
}
