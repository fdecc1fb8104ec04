package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrRunNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "run")
}

type ErrRunAlreadyExists struct {
	error
}

func NewErrRunAlreadyExists(name string) *ErrRunAlreadyExists {
	return &ErrRunAlreadyExists{fmt.Errorf("run %q already exists", name)}
}

// ErrInvalidRequest is returned for input the projections cannot interpret,
// such as an unknown report format or narrative kind.
type ErrInvalidRequest struct {
	error
}

func NewErrInvalidRequest(format string, args ...any) *ErrInvalidRequest {
	return &ErrInvalidRequest{fmt.Errorf(format, args...)}
}
