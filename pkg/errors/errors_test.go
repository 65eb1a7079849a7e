// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "repo_not_found_error",
			code:    errors.ErrRepoNotFound,
			message: "/home/u/repos/dotfiles",
			wantStr: "[REPO_NOT_FOUND] /home/u/repos/dotfiles",
		},
		{
			name:    "invalid_command_error",
			code:    errors.ErrInvalidCommand,
			message: "Tool 'vim' not found",
			wantStr: "[INVALID_COMMAND] Tool 'vim' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrInvalidCommand, "Tool '%s' not found", "git")
	if err.Message != "Tool 'git' not found" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDistributionParse, "bad manifest")

		if err.Code != errors.ErrDistributionParse {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrDistributionParse)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[DISTRIBUTION_PARSE] bad manifest: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrFileWrite, "cannot write %s", "a.conf")
		if err.Message != "cannot write a.conf" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFileNotFound, "not found").
		WithDetail("path", "/test/path").
		WithDetail("section", "vim")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v, want %v", err.Details["path"], "/test/path")
	}

	if got := errors.GetErrorDetails(err)["section"]; got != "vim" {
		t.Errorf("GetErrorDetails() section = %v, want vim", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFileNotFound, "error 1")
	err2 := errors.New(errors.ErrFileNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with DotsyncError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrDistributionNotFound, "missing"),
			code:     errors.ErrDistributionNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrDistributionNotFound, "missing"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "non_dotsync_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrFileNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrFileNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "dotsync_error",
			err:      errors.New(errors.ErrRepoNotFound, "no repo"),
			expected: errors.ErrRepoNotFound,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	parseErr := errors.Wrap(fileErr, errors.ErrDistributionParse, "failed to load manifest")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(parseErr, errors.ErrDistributionParse) {
			t.Error("Top level should have ErrDistributionParse code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var dsErr *errors.DotsyncError
		if stderrors.As(parseErr.Unwrap(), &dsErr) {
			if !errors.IsErrorCode(dsErr, errors.ErrFileAccess) {
				t.Error("Middle error should have ErrFileAccess code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(parseErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
