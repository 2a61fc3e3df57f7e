package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives a value of a
	// type no registry rule set covers.
	ErrUnsupportedType = errors.New("unsupported type for validation")
)
