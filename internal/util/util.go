package util

import (
	"strconv"
)

// Round rounds v to the given number of decimal places, half to even on the
// exact binary value.
func Round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func Ptr[T any](v T) *T {
	return &v
}

func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
