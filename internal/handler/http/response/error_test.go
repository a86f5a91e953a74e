package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcpms/personnel-backend-go/internal/domain/archive"
	"github.com/ptcpms/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcpms/personnel-backend-go/internal/domain/auth"
	"github.com/ptcpms/personnel-backend-go/internal/domain/personnel"
	"github.com/ptcpms/personnel-backend-go/internal/domain/user"
	"github.com/ptcpms/personnel-backend-go/internal/pkg/validator"
)

func TestHandleErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"revoked refresh token", auth.ErrRefreshTokenRevoked, http.StatusUnauthorized},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden},
		{"personnel not found", personnel.ErrPersonnelNotFound, http.StatusNotFound},
		{"duplicate pno", personnel.ErrPNOExists, http.StatusConflict},
		{"bad personnel type", personnel.ErrInvalidPersonnelType, http.StatusBadRequest},
		{"leave record not found", attendance.ErrLeaveRecordNotFound, http.StatusNotFound},
		{"bad record type", attendance.ErrInvalidRecordType, http.StatusBadRequest},
		{"folder not found", archive.ErrFolderNotFound, http.StatusNotFound},
		{"no personnel matched", archive.ErrNoPersonnelMatched, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleErrorUnwrapsSentinels(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, fmt.Errorf("failed to look up personnel: %w", personnel.ErrPersonnelNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleErrorValidationDetails(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "pno", Message: "pno is required"},
		{Field: "name", Message: "name is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "pno is required", body.Error.Details["pno"])
}
