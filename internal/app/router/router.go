// Package router assembles the gin engine and route groups.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "realty_backend/internal/feature/auth/transport/handler"
	authusecase "realty_backend/internal/feature/auth/usecase"
	intakehandler "realty_backend/internal/feature/intake/transport/handler"
	listingshandler "realty_backend/internal/feature/listings/transport/handler"
	"realty_backend/internal/platform/session"
)

// Deps carries everything the router needs.
type Deps struct {
	Auth     *authhandler.AuthHandler
	Catalog  *listingshandler.CatalogHandler
	Admin    *listingshandler.AdminHandler
	Intake   *intakehandler.IntakeHandler
	Sessions authusecase.SessionRepository

	// TemplateGlob locates the HTML templates, e.g. "web/templates/*.html".
	TemplateGlob string
	// UploadRoot is served read-only under /uploads.
	UploadRoot string
}

// NewRouter builds the gin engine with the public, intake, auth, and
// session-guarded admin route groups.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(deps.TemplateGlob)

	// Uploaded images, addressed by their property-scoped relative path.
	r.Static("/uploads", deps.UploadRoot)

	// Public catalog
	r.GET("/", deps.Catalog.Home)
	r.GET("/properties", deps.Catalog.Index)
	r.GET("/properties/:id", deps.Catalog.Detail)

	// Public submissions
	r.GET("/apply/:id", deps.Intake.ApplyPage)
	r.POST("/apply/:id", deps.Intake.Apply)
	r.GET("/contact", deps.Intake.ContactPage)
	r.POST("/contact", deps.Intake.Contact)

	// Admin sign-in (the only unauthenticated /admin route)
	r.GET("/admin/login", deps.Auth.LoginPage)
	r.POST("/admin/login", deps.Auth.Login)

	// Session-guarded admin area
	admin := r.Group("/admin")
	admin.Use(session.AuthRequired(deps.Sessions))
	{
		admin.GET("", deps.Admin.Dashboard)
		admin.GET("/logout", deps.Auth.Logout)
		admin.GET("/new", deps.Admin.NewForm)
		admin.POST("/new", deps.Admin.Create)
		admin.GET("/:id/edit", deps.Admin.EditForm)
		admin.POST("/:id/edit", deps.Admin.Update)
		admin.POST("/:id/delete", deps.Admin.Delete)
	}

	return r
}
