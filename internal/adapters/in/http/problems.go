package http

import (
	"errors"
	"log/slog"
	"net/http"

	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/moogar0880/problems"
)

// respondError translates application errors into RFC 7807 problem responses.
// Unexpected errors are logged and returned as opaque 500s.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return problem(ctx, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, errs.ErrEquipmentConflict):
		return problem(ctx, http.StatusConflict, "equipment_conflict", err.Error())

	case errors.Is(err, errs.ErrInvalidState):
		return problem(ctx, http.StatusConflict, "invalid_state", err.Error())

	case errors.Is(err, errs.ErrValueIsRequired):
		return problem(ctx, http.StatusUnprocessableEntity, "missing_value", err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid):
		return problem(ctx, http.StatusBadRequest, "validation_error", err.Error())

	default:
		slog.Error("request failed",
			"path", ctx.Path(),
			"method", ctx.Request().Method,
			"error", err)
		return problem(ctx, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func badRequest(ctx echo.Context, detail string) error {
	return problem(ctx, http.StatusBadRequest, "validation_error", detail)
}

func unauthorized(ctx echo.Context, detail string) error {
	return problem(ctx, http.StatusUnauthorized, "unauthorized", detail)
}

func forbidden(ctx echo.Context, detail string) error {
	return problem(ctx, http.StatusForbidden, "forbidden", detail)
}

func problem(ctx echo.Context, status int, problemType, detail string) error {
	p := problems.NewStatusProblem(status).
		WithInstance(ctx.Request().URL.Path).
		WithType(problemType).
		WithDetail(detail)

	return ctx.JSON(status, p)
}
