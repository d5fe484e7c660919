package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// parseID reads the :id path parameter as a surrogate key
func parseID(c echo.Context, resource string) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+resource+" ID")
	}
	return uint(id), nil
}

// bindAndValidate decodes the JSON body into req and runs its validate tags
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

// notFound is the structured 404 every resource returns for a missing key
func notFound(message string) error {
	return echo.NewHTTPError(http.StatusNotFound, message)
}

const (
	conflictMessage = "Conflict with existing data"
	failureMessage  = "Internal server error"
)

// storeError maps a repository error that is not a lookup miss. The driver
// error is kept as the internal error for the request log only.
func storeError(err error) error {
	if repositories.IsConstraintViolation(err) {
		return echo.NewHTTPError(http.StatusConflict, conflictMessage).SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, failureMessage).SetInternal(err)
}

// lookupError maps a repository error from a single-row lookup
func lookupError(err error, message string) error {
	if repositories.IsNotFound(err) {
		return notFound(message)
	}
	return storeError(err)
}
