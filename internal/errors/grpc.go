package errors

import (
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Keys of the structpb detail attached to every status built here
const (
	detailCodeKey = "code"
	detailMetaKey = "meta"
)

// ToGRPCError converts err to a gRPC status error. Status errors pass
// through, uncoded errors become Internal. The Code and metadata travel as a
// structpb.Struct detail so FromGRPCError can restore codes gRPC has no name
// for.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var coded *Error
	if !As(err, &coded) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(coded.Code.GRPCCode(), coded.Message)
	if detail, detailErr := structpb.NewStruct(detailFields(coded)); detailErr == nil {
		if withDetail, attachErr := st.WithDetails(detail); attachErr == nil {
			st = withDetail
		}
	}
	return st.Err()
}

// detailFields flattens meta through JSON so every value is structpb-safe
func detailFields(e *Error) map[string]any {
	fields := map[string]any{detailCodeKey: string(e.Code)}
	if len(e.Meta) == 0 {
		return fields
	}

	raw, err := json.Marshal(e.Meta)
	if err != nil {
		return fields
	}
	var meta map[string]any
	if json.Unmarshal(raw, &meta) == nil {
		fields[detailMetaKey] = meta
	}
	return fields
}

// FromGRPCError rebuilds an *Error from a gRPC status error. Non-status
// errors are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{Code: codeFromGRPC(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		s, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		values := s.AsMap()
		if code := Code(stringValue(values[detailCodeKey])); code.Known() {
			out.Code = code
		}
		if meta, ok := values[detailMetaKey].(map[string]any); ok {
			out.Meta = meta
		}
		break
	}
	return out
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}
