package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Serialization errors
	ErrSerialize   ErrorCode = "SERIALIZE"
	ErrDeserialize ErrorCode = "DESERIALIZE"

	// Course errors
	ErrCourseAlreadyExists ErrorCode = "COURSE_ALREADY_EXISTS"
	ErrCourseDoesNotExist  ErrorCode = "COURSE_DOES_NOT_EXIST"
	ErrCourseCodeInvalid   ErrorCode = "COURSE_CODE_INVALID"

	// Template errors
	ErrTemplateAlreadyExists                ErrorCode = "TEMPLATE_ALREADY_EXISTS"
	ErrTemplateDoesNotExist                 ErrorCode = "TEMPLATE_DOES_NOT_EXIST"
	ErrTemplateContextParameterDoesNotExist ErrorCode = "TEMPLATE_CONTEXT_PARAMETER_DOES_NOT_EXIST"
	ErrTemplateCommandIsEmpty               ErrorCode = "TEMPLATE_COMMAND_IS_EMPTY"
	ErrTemplateCommandFailed                ErrorCode = "TEMPLATE_COMMAND_FAILED"
	ErrTemplateCourseCodeMissing            ErrorCode = "TEMPLATE_COURSE_CODE_MISSING"
	ErrTemplateCompile                      ErrorCode = "TEMPLATE_COMPILE"
	ErrTemplateRender                       ErrorCode = "TEMPLATE_RENDER"
	ErrFilterInvalid                        ErrorCode = "FILTER_INVALID"

	// Render errors
	ErrRenderAlreadyExists ErrorCode = "RENDER_ALREADY_EXISTS"
	ErrRenderPathInvalid   ErrorCode = "RENDER_PATH_INVALID"

	// Process errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrDirRemove  ErrorCode = "DIR_REMOVE"
)

// UniiError represents a structured error with code and details
type UniiError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UniiError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UniiError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UniiError) Is(target error) bool {
	var targetErr *UniiError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UniiError with the given code and message
func New(code ErrorCode, message string) *UniiError {
	return &UniiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UniiError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UniiError {
	return &UniiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a UniiError
func Wrap(err error, code ErrorCode, message string) *UniiError {
	if err == nil {
		return nil
	}
	return &UniiError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UniiError {
	if err == nil {
		return nil
	}
	return &UniiError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UniiError) WithDetail(key string, value interface{}) *UniiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *UniiError) WithDetails(details map[string]interface{}) *UniiError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var uniiErr *UniiError
	if errors.As(err, &uniiErr) {
		return uniiErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a UniiError
func GetErrorCode(err error) ErrorCode {
	var uniiErr *UniiError
	if errors.As(err, &uniiErr) {
		return uniiErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a UniiError
func GetErrorDetails(err error) map[string]interface{} {
	var uniiErr *UniiError
	if errors.As(err, &uniiErr) {
		return uniiErr.Details
	}
	return nil
}

// GetErrorMessage returns the message of a UniiError without its code, or the
// plain error text otherwise
func GetErrorMessage(err error) string {
	var uniiErr *UniiError
	if errors.As(err, &uniiErr) {
		return uniiErr.Message
	}
	return err.Error()
}
