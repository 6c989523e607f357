package errors

import (
	"errors"
	"slices"
)

// As is errors.As specialised to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain.
// nil is CodeOK and uncoded errors are CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries any of the given codes
func HasCode(err error, want ...Code) bool {
	return err != nil && slices.Contains(want, GetCode(err))
}

func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

// GetMessage returns the client-facing message, falling back to err.Error()
// for uncoded errors
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Message
	}
	return err.Error()
}

func IsNotFound(err error) bool           { return HasCode(err, CodeNotFound) }
func IsInvalidArgument(err error) bool    { return HasCode(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool      { return HasCode(err, CodeAlreadyExists) }
func IsFailedPrecondition(err error) bool { return HasCode(err, CodeFailedPrecondition) }
func IsOutOfRange(err error) bool         { return HasCode(err, CodeOutOfRange) }
func IsInternal(err error) bool           { return HasCode(err, CodeInternal) }
func IsAlreadyEquipped(err error) bool    { return HasCode(err, CodeAlreadyEquipped) }
func IsCategoryConflict(err error) bool   { return HasCode(err, CodeCategoryConflict) }
