package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrMessageNotFound = fmt.Errorf("message not found")
	ErrRecordTooLarge  = fmt.Errorf("record exceeds store limits")
	ErrMalformedRecord = fmt.Errorf("malformed record")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)

// NotFoundError is returned when no message is stored under ID.
type NotFoundError struct {
	ID string
}

func NewNotFoundError(id string) NotFoundError {
	return NotFoundError{ID: id}
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Message not found with id=%s", e.ID)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrMessageNotFound
}

// MapToGRPCError converts a domain error into a gRPC status error.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, ErrMessageNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, ErrRecordTooLarge):
		return status.Error(codes.ResourceExhausted, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
