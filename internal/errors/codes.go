package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code classifies an error independently of the transport
type Code string

// Generic codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Equipment codes. The request was well formed but the character's current
// equipped set rejects it.
const (
	CodeAlreadyEquipped  Code = "ALREADY_EQUIPPED"
	CodeCategoryConflict Code = "CATEGORY_CONFLICT"
)

type statusPair struct {
	http int
	grpc codes.Code
}

var statuses = map[Code]statusPair{
	CodeOK:                 {http.StatusOK, codes.OK},
	CodeInvalidArgument:    {http.StatusBadRequest, codes.InvalidArgument},
	CodeOutOfRange:         {http.StatusBadRequest, codes.OutOfRange},
	CodeAlreadyEquipped:    {http.StatusBadRequest, codes.AlreadyExists},
	CodeCategoryConflict:   {http.StatusBadRequest, codes.FailedPrecondition},
	CodeFailedPrecondition: {http.StatusBadRequest, codes.FailedPrecondition},
	CodeNotFound:           {http.StatusNotFound, codes.NotFound},
	CodeAlreadyExists:      {http.StatusConflict, codes.AlreadyExists},
	CodeUnavailable:        {http.StatusServiceUnavailable, codes.Unavailable},
	CodeInternal:           {http.StatusInternalServerError, codes.Internal},
}

// Shared gRPC codes resolve to the generic Code. The status detail written
// by ToGRPCError restores the equipment codes.
var fromGRPC = map[codes.Code]Code{
	codes.OK:                 CodeOK,
	codes.InvalidArgument:    CodeInvalidArgument,
	codes.OutOfRange:         CodeOutOfRange,
	codes.NotFound:           CodeNotFound,
	codes.AlreadyExists:      CodeAlreadyExists,
	codes.FailedPrecondition: CodeFailedPrecondition,
	codes.Unavailable:        CodeUnavailable,
	codes.Internal:           CodeInternal,
}

func (c Code) String() string {
	return string(c)
}

// Known reports whether c is one of the codes above
func (c Code) Known() bool {
	_, ok := statuses[c]
	return ok
}

// HTTPStatus returns the HTTP status for the code, 500 when unknown
func (c Code) HTTPStatus() int {
	if pair, ok := statuses[c]; ok {
		return pair.http
	}
	return http.StatusInternalServerError
}

// GRPCCode returns the gRPC code for the code, Unknown when unknown
func (c Code) GRPCCode() codes.Code {
	if pair, ok := statuses[c]; ok {
		return pair.grpc
	}
	return codes.Unknown
}

func codeFromGRPC(c codes.Code) Code {
	if code, ok := fromGRPC[c]; ok {
		return code
	}
	return CodeInternal
}
