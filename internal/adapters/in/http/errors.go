package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// writeError maps application and upstream errors onto the wire contract.
//
// Not found resources map to 404, validation and invalid-transition errors to
// 400, completion by a non-assigned agent to 403, an exhausted agent pool to
// 409. Upstream problems keep their distinction: unreachable collaborator 503,
// deadline 504, any other upstream status is propagated as-is. Everything
// unrecognized is a 500.
func writeError(ctx echo.Context, err error) error {
	var upstreamFailure *errs.UpstreamFailureError

	switch {
	case errors.Is(err, commands.ErrAgentNotAssignedToOrder):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, commands.ErrOrderAlreadyClosed):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, commands.ErrRestaurantIsClosed):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, ports.ErrNoAgentAvailable):
		return ctx.JSON(http.StatusConflict, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, errs.ErrUpstreamTimeout):
		return ctx.JSON(http.StatusGatewayTimeout, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: err.Error()})

	case errors.As(err, &upstreamFailure):
		return ctx.JSON(upstreamFailure.StatusCode, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, order.ErrOrderNotDelivered),
		errors.Is(err, order.ErrAgentAlreadyAssigned):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})

	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}
}

// badRequest reports request decoding and command construction failures.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
}
