package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/feature/listings/domain/entity"
	"realty_backend/internal/feature/listings/transport/http/dto"
	"realty_backend/internal/feature/listings/usecase"
	uploads "realty_backend/internal/feature/uploads/usecase"
)

// AdminUsecase defines the property management operations the handler depends on.
type AdminUsecase interface {
	List(ctx context.Context) ([]entity.Property, error)
	Get(ctx context.Context, id uint) (*entity.Property, error)
	Create(ctx context.Context, in usecase.PropertyInput, files []uploads.Upload) (*entity.Property, error)
	Update(ctx context.Context, id uint, in usecase.PropertyInput, files []uploads.Upload) (*entity.Property, error)
	Delete(ctx context.Context, id uint) error
}

// AdminHandler serves the session-guarded property management pages.
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// formUploads converts the multipart "images" files into upload values.
// Opening is deferred so disallowed files are never read.
func formUploads(c *gin.Context) []uploads.Upload {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	headers := form.File["images"]
	out := make([]uploads.Upload, 0, len(headers))
	for _, fh := range headers {
		out = append(out, uploads.Upload{
			Filename: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return out
}

// Dashboard lists all properties, newest first.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	props, err := h.admin.List(c.Request.Context())
	if err != nil {
		slog.Error("failed to list properties", "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Properties": props,
		"Notice":     c.Query("notice"),
	})
}

// NewForm renders an empty create form.
func (h *AdminHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_new.html", gin.H{
		"Form":   dto.PropertyForm{},
		"Errors": map[string]string{},
	})
}

// Create validates the submitted form, persists the property, and ingests any
// uploaded images under the new ID. Validation failures re-render the form
// with field errors and the entered values; nothing is written.
func (h *AdminHandler) Create(c *gin.Context) {
	var form dto.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("property form bind failed", "error", err)
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	in, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusBadRequest, "admin_new.html", gin.H{
			"Form":   form,
			"Errors": fieldErrs,
		})
		return
	}

	if _, err := h.admin.Create(c.Request.Context(), in, formUploads(c)); err != nil {
		slog.Error("failed to create property", "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin?notice=Property+created.")
}

// EditForm renders the edit form pre-populated with the current values.
func (h *AdminHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	p, err := h.admin.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			notFound(c)
			return
		}
		slog.Error("property lookup failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "admin_edit.html", gin.H{
		"Form":     dto.FormFromEntity(p),
		"Property": p,
		"Errors":   map[string]string{},
	})
}

// Update validates the submitted form, overwrites the property's mutable
// fields, and appends any newly uploaded images to its existing set.
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	var form dto.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		slog.Warn("property form bind failed", "error", err)
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	in, fieldErrs := form.Validate()
	if len(fieldErrs) > 0 {
		p, err := h.admin.Get(c.Request.Context(), id)
		if err != nil {
			notFound(c)
			return
		}
		c.HTML(http.StatusBadRequest, "admin_edit.html", gin.H{
			"Form":     form,
			"Errors":   fieldErrs,
			"Property": p,
		})
		return
	}

	if _, err := h.admin.Update(c.Request.Context(), id, in, formUploads(c)); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			notFound(c)
			return
		}
		slog.Error("failed to update property", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin?notice=Property+updated.")
}

// Delete removes the property, its image rows, and (best-effort) its files.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	if err := h.admin.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			notFound(c)
			return
		}
		slog.Error("failed to delete property", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.Redirect(http.StatusFound, "/admin?notice=Property+deleted.")
}
