package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"luxeroom/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	if failure.ErrInvalidPin.Code != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, failure.ErrInvalidPin.Code)
	}

	if failure.ErrInvalidPin.Message != "invalid PIN" {
		t.Errorf("expected message to be 'invalid PIN', got %s", failure.ErrInvalidPin.Message)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
		},
		{
			name: "BadRequest",
			err:  failure.BadRequest(errors.New("bad input")),
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthenticated",
			err:  failure.Unauthenticated("staff login required"),
			code: http.StatusUnauthorized,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("nope"),
			code: http.StatusUnauthorized,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("room not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("already there"),
			code: http.StatusConflict,
		},
		{
			name: "InternalError",
			err:  failure.InternalError(errors.New("boom")),
			code: http.StatusInternalServerError,
		},
		{
			name: "ServiceUnavailable",
			err:  failure.ServiceUnavailable("down"),
			code: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to %d, got %d", http.StatusInternalServerError, got)
	}

	if got := failure.GetCode(failure.NotFound("missing")); got != http.StatusNotFound {
		t.Errorf("expected code to be %d, got %d", http.StatusNotFound, got)
	}
}

func TestNilErrorConstructors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}
