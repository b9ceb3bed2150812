package websum

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// Each code maps to exactly one user-facing AnalysisError kind, so a failed
// pipeline run is always distinguishable from success and always names the
// failing stage.
const (
	EINVALID    = "invalid"              // validation failed
	EINTERNAL   = "internal"             // internal error
	EPERMISSION = "permission_denied"    // robots.txt disallows the path
	EPERMCHECK  = "permission_check"     // robots.txt could not be retrieved
	EFETCH      = "fetch_failed"         // target page could not be retrieved
	ENOCONTENT  = "insufficient_content" // reduced content too small to analyze
	ESCHEMA     = "schema_invalid"       // model reply malformed or incomplete
	EAPI        = "api_failed"           // model-provider call failed
)

// Error represents an application-specific error. Application errors carry
// a machine-readable code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("websum error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AnalysisError is the tagged failure outcome emitted instead of an
// AnalysisResult when the pipeline cannot complete. It marshals to the
// user-facing error object {"error": "<kind>", "message": "<detail>"}.
type AnalysisError struct {
	Kind    string `json:"error"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// errorKinds maps application error codes to user-facing error kinds.
var errorKinds = map[string]string{
	EPERMISSION: "PermissionDeniedError",
	EPERMCHECK:  "PermissionCheckFetchError",
	EFETCH:      "FetchError",
	ENOCONTENT:  "InsufficientContentError",
	ESCHEMA:     "SchemaValidationError",
	EAPI:        "ApiError",
}

// NewAnalysisError converts a pipeline failure into its user-facing shape.
// Codes without a dedicated kind surface as InternalError so internal
// details never leak into the output object.
func NewAnalysisError(err error) *AnalysisError {
	if err == nil {
		return nil
	}
	if kind, ok := errorKinds[ErrorCode(err)]; ok {
		return &AnalysisError{Kind: kind, Message: ErrorMessage(err)}
	}
	return &AnalysisError{Kind: "InternalError", Message: ErrorMessage(err)}
}
