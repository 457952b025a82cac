package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad flag %q", "-x")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidInput)
	}
	if !strings.Contains(err.Error(), `bad flag "-x"`) {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.HasPrefix(err.Error(), "INVALID_INPUT: ") {
		t.Errorf("Error() = %q, want INVALID_INPUT prefix", err.Error())
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("short read")
	err := Wrap(ErrCodeInvalidEncoding, cause, "reading stdin")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if !strings.Contains(err.Error(), "short read") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidEncoding, "stdin is not valid UTF-8")
	wrapped := fmt.Errorf("run: %w", err)

	if !Is(wrapped, ErrCodeInvalidEncoding) {
		t.Error("Is() should match through wrapping")
	}
	if Is(wrapped, ErrCodeInvalidInput) {
		t.Error("Is() matched the wrong code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidInput) {
		t.Error("Is() matched a plain error")
	}
}
