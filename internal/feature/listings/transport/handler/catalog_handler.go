// Package handler provides HTTP handlers for the listings feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/feature/listings/domain/entity"
	"realty_backend/internal/feature/listings/usecase"
)

// CatalogUsecase defines the public catalog operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type CatalogUsecase interface {
	Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Property, error)
	Detail(ctx context.Context, id uint) (*entity.Property, error)
}

// CatalogHandler serves the public browse/search/detail pages.
type CatalogHandler struct {
	catalog CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// searchQuery reads the shared catalog filters from the request.
func searchQuery(c *gin.Context) usecase.SearchQuery {
	return usecase.SearchQuery{
		Q:    c.Query("q"),
		City: c.Query("city"),
		Mode: c.DefaultQuery("mode", "all"),
	}
}

// parseID parses the numeric id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// notFound renders the shared 404 page.
func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}

// Home renders the landing page with at most six filtered listings.
func (h *CatalogHandler) Home(c *gin.Context) {
	q := searchQuery(c)
	q.Limit = usecase.HomePageLimit

	props, err := h.catalog.Search(c.Request.Context(), q)
	if err != nil {
		slog.Error("property search failed", "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Properties": props,
		"Q":          q.Q,
		"City":       q.City,
		"Mode":       q.Mode,
	})
}

// Index renders the full filtered listing.
func (h *CatalogHandler) Index(c *gin.Context) {
	q := searchQuery(c)

	props, err := h.catalog.Search(c.Request.Context(), q)
	if err != nil {
		slog.Error("property search failed", "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "properties.html", gin.H{
		"Properties": props,
		"Q":          q.Q,
		"City":       q.City,
		"Mode":       q.Mode,
	})
}

// Detail renders one listing, or a 404 when the ID does not resolve.
func (h *CatalogHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	p, err := h.catalog.Detail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			notFound(c)
			return
		}
		slog.Error("property lookup failed", "id", id, "error", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	c.HTML(http.StatusOK, "property_detail.html", gin.H{
		"Property": p,
		"Notice":   c.Query("notice"),
	})
}
