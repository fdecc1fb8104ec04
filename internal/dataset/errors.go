package dataset

import "github.com/pkg/errors"

type ErrInvalidDataset struct {
	error
}

func NewErrInvalidDataset(format string, args ...any) *ErrInvalidDataset {
	return &ErrInvalidDataset{errors.Errorf("invalid dataset: "+format, args...)}
}
