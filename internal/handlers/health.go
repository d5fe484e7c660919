package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and store reachability
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":  "unavailable",
			"service": "social-api",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "social-api",
	})
}

// Sitemap lists every registered "METHOD path" pair
func Sitemap(c echo.Context) error {
	routes := []string{}
	for _, r := range c.Echo().Routes() {
		routes = append(routes, r.Method+" "+r.Path)
	}
	sort.Strings(routes)
	return c.JSON(http.StatusOK, echo.Map{"routes": routes})
}
