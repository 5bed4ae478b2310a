package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guessdle/guessdle/internal/apperrors"
)

// HTTPErrorHandler maps AppErrors returned by the services onto JSON
// responses, so handlers can return service errors unchanged.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= 500 {
			log.Println("internal error:", appErr)
		}
		if jsonErr := c.JSON(appErr.Code, echo.Map{"error": appErr.Message}); jsonErr != nil {
			log.Println("Error writing error response:", jsonErr)
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if jsonErr := c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message}); jsonErr != nil {
			log.Println("Error writing error response:", jsonErr)
		}
		return
	}

	log.Println("unhandled error:", err)
	if jsonErr := c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"}); jsonErr != nil {
		log.Println("Error writing error response:", jsonErr)
	}
}
