package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"webstore/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTP error handler: logs the failure and answers
// with a JSON message body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	logger.Error("request failed", "path", c.Path(), "status", code, err)

	if jsonErr := c.JSON(code, map[string]string{"message": message}); jsonErr != nil {
		logger.Error("failed to write error response", jsonErr)
	}
}
