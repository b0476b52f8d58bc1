package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("SET_004", "Case number already used", http.StatusConflict)
	assert.Equal(t, "SET_004", err.Code)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus)
	assert.Equal(t, "[SET_004] Case number already used", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, inner, err.Unwrap())
	assert.True(t, errors.Is(err, inner))
}

func TestErrorConstructors(t *testing.T) {
	cases := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized(), "ACC_001", http.StatusForbidden},
		{"SystemPaused", ErrSystemPaused(), "ACC_002", http.StatusServiceUnavailable},
		{"NotVerified", ErrNotVerified(), "SET_001", http.StatusForbidden},
		{"InvalidAmount", ErrInvalidAmount(), "SET_002", http.StatusBadRequest},
		{"SameParty", ErrSameParty(), "SET_003", http.StatusBadRequest},
		{"DuplicateCaseNumber", ErrDuplicateCaseNumber(), "SET_004", http.StatusConflict},
		{"NotFound", ErrNotFound("settlement"), "SET_005", http.StatusNotFound},
		{"NoOpTransition", ErrNoOpTransition(), "SET_006", http.StatusConflict},
		{"InvalidStatus", ErrInvalidStatus(), "SET_007", http.StatusBadRequest},
		{"TransitionDenied", ErrTransitionDenied(), "SET_008", http.StatusConflict},
		{"IncorrectAmount", ErrIncorrectAmount(), "ESC_001", http.StatusBadRequest},
		{"FundsNotDeposited", ErrFundsNotDeposited(), "ESC_002", http.StatusConflict},
		{"TransferFailed", ErrTransferFailed(errors.New("no account")), "ESC_003", http.StatusBadGateway},
		{"FundsAlreadyDeposited", ErrFundsAlreadyDeposited(), "ESC_004", http.StatusConflict},
		{"NotAuthorized", ErrNotAuthorized(), "DOC_001", http.StatusForbidden},
		{"InvalidArgument", ErrInvalidArgument("Document hash cannot be empty"), "DOC_002", http.StatusBadRequest},
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.NotNil(t, tc.err)
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.httpStatus, tc.err.HTTPStatus)
			assert.NotEmpty(t, tc.err.Message)
		})
	}
}

func TestNotFound_EntityInMessage(t *testing.T) {
	err := ErrNotFound("settlement")
	assert.Equal(t, "settlement not found", err.Message)
}
