package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/services/account/handler/http"
)

// Handler coordinates the HTTP handlers for the account service
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	profileHandler *http.ProfileHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			if token, ok := c.Get("user").(*jwt.Token); ok {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					if userID, exists := claims["user_id"]; exists {
						c.Set("user_id", userID)
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all account service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/auth")
	auth.POST("/register", h.authHandler.Register)
	auth.POST("/verify", h.authHandler.Verify)
	auth.POST("/login", h.authHandler.Login)
	auth.POST("/otp/resend", h.authHandler.ResendOTP)

	users := e.Group("/users", h.GetJWTMiddleware())
	users.GET("/:id/profile", h.profileHandler.GetProfile)
	users.PUT("/:id/profile", h.profileHandler.UpdateProfile)
	users.DELETE("/:id", h.profileHandler.DeleteAccount)

	users.GET("/:id/contacts", h.profileHandler.ListContacts)
	users.POST("/:id/contacts", h.profileHandler.SaveContact)
	users.DELETE("/:id/contacts/:contactId", h.profileHandler.DeleteContact)
}
