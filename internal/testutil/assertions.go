package testutil

import (
	"errors"
	"testing"

	apperrors "coinbudget/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	appErr := requireAppError(t, err, expectedCode)
	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertAppErrorKind checks that err is an *AppError of the expected kind.
func AssertAppErrorKind(t *testing.T, err error, expectedKind apperrors.Kind) {
	t.Helper()

	appErr := requireAppError(t, err, string(expectedKind))
	if appErr.Kind != expectedKind {
		t.Errorf("expected error kind %q, got %q (code: %s)", expectedKind, appErr.Kind, appErr.Code)
	}
}

func requireAppError(t *testing.T, err error, want string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError %q, got nil", want)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
