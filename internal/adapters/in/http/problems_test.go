package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_MapsApplicationErrors(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectType   string
	}{
		{
			name:         "object not found",
			err:          errs.NewObjectNotFoundError("orderID", "b4d0"),
			expectStatus: http.StatusNotFound,
			expectType:   "not_found",
		},
		{
			name:         "equipment conflict",
			err:          errs.NewEquipmentConflictError("Press-1", "1825", "Jane Smith"),
			expectStatus: http.StatusConflict,
			expectType:   "equipment_conflict",
		},
		{
			name:         "invalid state",
			err:          errs.NewInvalidStateError("start execution", "process is completed"),
			expectStatus: http.StatusConflict,
			expectType:   "invalid_state",
		},
		{
			name:         "value is required",
			err:          errs.NewValueIsRequiredError("orderNumber"),
			expectStatus: http.StatusUnprocessableEntity,
			expectType:   "missing_value",
		},
		{
			name:         "value is invalid",
			err:          errs.NewValueIsInvalidError("status"),
			expectStatus: http.StatusBadRequest,
			expectType:   "validation_error",
		},
		{
			name:         "unexpected error stays opaque",
			err:          errors.New("connection refused"),
			expectStatus: http.StatusInternalServerError,
			expectType:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			// Act
			err := respondError(ctx, tt.err)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectStatus, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectType, body["type"])
			assert.Equal(t, float64(tt.expectStatus), body["status"])
		})
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	// Arrange
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	// Act
	err := respondError(ctx, errors.New("password=hunter2 leaked in dsn"))

	// Assert
	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}
