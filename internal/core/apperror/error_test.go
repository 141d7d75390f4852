package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewValidation("price must be non-negative")
	if err.Error() != "VALIDATION_ERROR: price must be non-negative" {
		t.Errorf("got %q", err.Error())
	}

	cause := errors.New("boom")
	withCause := NewFormat("cannot serialize document").WithCause(cause)
	if withCause.Error() != "FORMAT_ERROR: cannot serialize document (caused by: boom)" {
		t.Errorf("got %q", withCause.Error())
	}
	if !errors.Is(withCause, cause) {
		t.Error("Unwrap must expose the cause")
	}
}

func TestWithDetail(t *testing.T) {
	err := NewValidation("bad").WithDetail("line", 3).WithDetail("field", "rate")
	if err.Details["line"] != 3 || err.Details["field"] != "rate" {
		t.Errorf("details = %v", err.Details)
	}
}

func TestCodeHelpers(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
	}{
		{NewValidation("x"), IsValidation},
		{NewNotFound("product", 7), IsNotFound},
		{NewDuplicate("customer", 1), IsConflict},
		{NewConflict("x"), IsConflict},
		{NewPolicy("x"), IsPolicy},
		{NewFormat("x"), IsFormat},
		{NewCrypto(), IsCrypto},
	}
	for _, tt := range tests {
		if !tt.check(tt.err) {
			t.Errorf("helper rejected %v", tt.err)
		}
	}

	if IsValidation(errors.New("plain")) {
		t.Error("plain errors carry no code")
	}
	if IsValidation(nil) {
		t.Error("nil carries no code")
	}
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewNotFound("customer", 9))
	appErr, ok := AsAppError(wrapped)
	if !ok || appErr.Code != CodeNotFound {
		t.Errorf("got %v, %v", appErr, ok)
	}
}

func TestCryptoMessageIsFixed(t *testing.T) {
	// Two different failure paths must be indistinguishable to the user.
	if NewCrypto().Message != NewCrypto().Message {
		t.Error("crypto message must be constant")
	}
}
