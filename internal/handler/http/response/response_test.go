package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/timesheet"
	"github.com/staffhub/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate employee email", employee.ErrEmailExists, http.StatusBadRequest, "CONFLICT"},
		{"already clocked in", timesheet.ErrAlreadyClockedIn, http.StatusBadRequest, "CONFLICT"},
		{"not clocked in", timesheet.ErrNotClockedIn, http.StatusBadRequest, "CONFLICT"},
		{"unknown error stays opaque", errors.New("pgx: connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.wantCode, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, c.wantErr, resp.Error.Code)
		})
	}
}

func TestHandleErrorUnknownMessageNotLeaked(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("pgx: connection refused"))

	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "pgx")
}

func TestHandleErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "email", Message: "Email is required"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "Email is required", resp.Error.Details["email"])
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}
