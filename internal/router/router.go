package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/errors"
	"portfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	imageHandler *handler.ImageHandler,
	homepageHandler *handler.HomepageHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(cfg.MaxUploadSize))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"message": "Portfolio Admin API is running",
		})
	})

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/create-admin", authHandler.CreateAdmin)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/images/:id", imageHandler.Serve)
	api.GET("/homepage", homepageHandler.Get)
	api.GET("/stats", statsHandler.Get)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "authorization token is required",
				Code:  "UNAUTHORIZED",
			})
		},
	}))

	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/auth/change-password", authHandler.ChangePassword)

	secured.PUT("/homepage", homepageHandler.Update)

	secured.POST("/projects", projectHandler.Create)
	secured.PUT("/projects/:id", projectHandler.Update)
	secured.DELETE("/projects/:id", projectHandler.Delete)

	secured.POST("/projects/:id/images", imageHandler.Upload)
	secured.PUT("/projects/:id/images/reorder", imageHandler.Reorder)
	secured.PUT("/images/:id/metadata", imageHandler.UpdateMetadata)
	secured.DELETE("/images/:id", imageHandler.Delete)

	// Built frontend fallback; API and swagger routes win on 404.
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  cfg.StaticDir,
		HTML5: true,
	}))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
