package errors

// Request shape

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// OutOfRange reports a value outside its accepted bounds, such as a drop
// chance above 1
func OutOfRange(message string) *Error { return New(CodeOutOfRange, message) }

func OutOfRangef(format string, args ...any) *Error {
	return Newf(CodeOutOfRange, format, args...)
}

// Store outcomes

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExists reports a key collision in the store
func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// FailedPrecondition reports a write the store refused because of a
// referencing record
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

// Equipment outcomes

// AlreadyEquipped reports that the item is already in the character's set
func AlreadyEquipped(message string) *Error { return New(CodeAlreadyEquipped, message) }

func AlreadyEquippedf(format string, args ...any) *Error {
	return Newf(CodeAlreadyEquipped, format, args...)
}

// CategoryConflict reports that another item of the same category is
// already equipped
func CategoryConflict(message string) *Error { return New(CodeCategoryConflict, message) }

func CategoryConflictf(format string, args ...any) *Error {
	return Newf(CodeCategoryConflict, format, args...)
}
