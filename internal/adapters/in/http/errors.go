package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"courierapi/internal/core/application/usecases/commands"
	"courierapi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// clientErrors are reported to the caller as 400 Bad Request. Unknown couriers and
// orders are included: clients of this API expect 400 rather than 404 for them.
var clientErrors = []error{
	errs.ErrObjectNotFound,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsRequired,
	errs.ErrValueIsOutOfRange,
	errs.ErrAssignmentMismatch,
	errs.ErrUnknownVehicleType,
	errs.ErrMalformedInterval,
	commands.ErrNothingToUpdate,
	commands.ErrCouriersAreRequired,
	commands.ErrOrdersAreRequired,
}

// NewErrorHandler maps errors returned by route handlers to responses.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := errorResponse(err)
		ctx := c.Request().Context()
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed", "error", err, "path", c.Path())
		} else {
			logger.DebugContext(ctx, "request rejected", "error", err, "status", status)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(ctx, "failed to write error response", "error", err)
		}
	}
}

func errorResponse(err error) (int, any) {
	var invalidItems *errs.InvalidItemsError
	if errors.As(err, &invalidItems) {
		return http.StatusBadRequest, ValidationError{
			ValidationError: map[string][]ItemID{
				invalidItems.Collection: toItemIDs(invalidItems.IDs),
			},
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	}

	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()}
		}
	}

	return http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
