package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUserFriendlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UserFriendlyError
		contains []string
	}{
		{
			name:     "message only",
			err:      UserFriendlyError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "all fields",
			err: UserFriendlyError{
				Message: "connection failed",
				Reason:  "timeout",
				Hint:    "check network",
				Try:     "ping host",
				Err:     fmt.Errorf("dial tcp: timeout"),
			},
			contains: []string{"connection failed", "Reason: timeout", "Hint: check network", "Try: ping host", "Details: dial tcp: timeout"},
		},
		{
			name: "no reason",
			err: UserFriendlyError{
				Message: "failed",
				Hint:    "hint here",
			},
			contains: []string{"failed", "Hint: hint here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want to contain %q", msg, s)
				}
			}
		})
	}
}

func TestUserFriendlyError_ErrorOmitsEmptyFields(t *testing.T) {
	err := UserFriendlyError{Message: "msg"}
	msg := err.Error()
	if strings.Contains(msg, "Reason:") || strings.Contains(msg, "Hint:") || strings.Contains(msg, "Try:") || strings.Contains(msg, "Details:") {
		t.Errorf("Error() = %q, should not contain empty fields", msg)
	}
}

func TestUserFriendlyError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("root cause")
	err := UserFriendlyError{Message: "wrapper", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Unwrap should return the inner error")
	}

	var nilErr UserFriendlyError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil Err should return nil")
	}
}

func TestWrapSourceError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapSourceError(nil, "http", "Data") != nil {
			t.Error("expected nil")
		}
	})

	tests := []struct {
		name   string
		err    error
		reason string
	}{
		{"timeout", fmt.Errorf("Get \"x\": context deadline exceeded"), "timed out"},
		{"refused", fmt.Errorf("dial tcp 127.0.0.1:1: connect: connection refused"), "refused"},
		{"dns", fmt.Errorf("dial tcp: lookup nowhere: no such host"), "Host not found"},
		{"status", fmt.Errorf("unexpected status 500 Internal Server Error"), "error status"},
		{"missing file", fmt.Errorf("open data/Data.csv: no such file or directory"), "does not exist"},
		{"bad csv", fmt.Errorf("parse sheet: bare quote"), "not valid CSV"},
		{"other", fmt.Errorf("something else"), "Sheet could not be read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapSourceError(tt.err, "https://example.test/exec", "Data")
			ufe := err.(UserFriendlyError)
			if !strings.Contains(ufe.Message, `"Data"`) {
				t.Errorf("message should name the sheet, got %q", ufe.Message)
			}
			if !strings.Contains(ufe.Reason, tt.reason) {
				t.Errorf("reason = %q, want to contain %q", ufe.Reason, tt.reason)
			}
			if !errors.Is(err, tt.err) {
				t.Error("wrapped error should unwrap to the cause")
			}
		})
	}
}

func TestWrapLoadError(t *testing.T) {
	if WrapLoadError(nil, "dir data") != nil {
		t.Error("expected nil")
	}

	cause := fmt.Errorf("sheet Images: boom")
	err := WrapLoadError(cause, "dir data")
	ufe := err.(UserFriendlyError)
	if ufe.Message != "Failed to load data." {
		t.Errorf("unexpected message %q", ufe.Message)
	}
	if !strings.Contains(ufe.Reason, "dir data") {
		t.Errorf("reason should name the source, got %q", ufe.Reason)
	}
	if !errors.Is(err, cause) {
		t.Error("Unwrap should return the cause")
	}
}

func TestWrapConfigError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapConfigError(nil, "config.yaml") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("wraps config error", func(t *testing.T) {
		err := WrapConfigError(fmt.Errorf("invalid yaml"), "catview.yaml")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "catview.yaml") {
			t.Errorf("message should contain config path, got %q", ufe.Message)
		}
		if ufe.Reason != "invalid yaml" {
			t.Errorf("reason should be inner error message, got %q", ufe.Reason)
		}
		if !strings.Contains(ufe.Try, "catview init") {
			t.Errorf("try should suggest init, got %q", ufe.Try)
		}
	})
}
