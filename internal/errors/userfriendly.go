package errors

import (
	"fmt"
	"strings"
)

// UserFriendlyError provides user-friendly error messages with context and hints
type UserFriendlyError struct {
	Message string
	Reason  string
	Hint    string
	Try     string
	Err     error
}

func (e UserFriendlyError) Error() string {
	var buf strings.Builder
	buf.WriteString(e.Message)
	if e.Reason != "" {
		buf.WriteString("\n  Reason: " + e.Reason)
	}
	if e.Hint != "" {
		buf.WriteString("\n  Hint: " + e.Hint)
	}
	if e.Try != "" {
		buf.WriteString("\n  Try: " + e.Try)
	}
	if e.Err != nil {
		buf.WriteString("\n  Details: " + e.Err.Error())
	}
	return buf.String()
}

func (e UserFriendlyError) Unwrap() error {
	return e.Err
}

// WrapSourceError wraps a sheet fetch error with the source it came from.
func WrapSourceError(err error, source, sheet string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Failed to fetch sheet %q from %s", sheet, source),
		Reason:  extractSourceReason(err),
		Hint:    "The data endpoint may be down, or the sheet name may not match the spreadsheet tab",
		Try:     "Check the source and sheets sections of your config file",
		Err:     err,
	}
}

// WrapLoadError wraps a catalogue load failure.
func WrapLoadError(err error, source string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: "Failed to load data.",
		Reason:  fmt.Sprintf("one or more sheets could not be loaded from %s", source),
		Hint:    "Loading is all-or-nothing; every sheet must fetch and parse",
		Try:     "catview categories --verbose",
		Err:     err,
	}
}

// WrapConfigError wraps configuration errors with user-friendly context
func WrapConfigError(err error, configPath string) error {
	if err == nil {
		return nil
	}

	return UserFriendlyError{
		Message: fmt.Sprintf("Configuration error in %s", configPath),
		Reason:  err.Error(),
		Hint:    "Run 'catview init' to generate a config file",
		Try:     fmt.Sprintf("catview init --defaults --config %s", configPath),
		Err:     err,
	}
}

func extractSourceReason(err error) string {
	errStr := err.Error()

	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return "Request timed out - the endpoint may be slow or unreachable"
	}
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused - nothing is listening at the configured address"
	}
	if strings.Contains(errStr, "no such host") {
		return "Host not found - check the base URL"
	}
	if strings.Contains(errStr, "unexpected status") {
		return "The endpoint answered with an error status"
	}
	if strings.Contains(errStr, "no such file") || strings.Contains(errStr, "NoSuchKey") {
		return "The sheet file does not exist"
	}
	if strings.Contains(errStr, "parse") {
		return "The sheet is not valid CSV"
	}

	return "Sheet could not be read"
}
