package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/boxpack-service/internal/middleware"
	"github.com/guttosm/boxpack-service/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService),
		authService: authService,
	}
}

// RegisterPublicRoutes registers login, register and refresh.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", r.handler.Login)
	auth.POST("/register", r.handler.Register)
	auth.POST("/refresh", r.handler.Refresh)
}

// ProtectedGroup returns a sub-group guarded by JWT validation.
func (r *AuthRoutes) ProtectedGroup(rg *gin.RouterGroup) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(r.authService))
	return protected
}

// Handler returns the underlying auth handler.
func (r *AuthRoutes) Handler() *AuthHandler {
	return r.handler
}
