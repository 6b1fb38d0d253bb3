package fault

import "errors"

// Sentinel errors, one per Kind. A *Error matches exactly one of them via errors.Is.
var (
	// ErrParameterNull indicates a required parameter is absent.
	ErrParameterNull = errors.New("fault: necessary parameter is not provided")

	// ErrParameterInvalid indicates a present parameter failed verification.
	ErrParameterInvalid = errors.New("fault: parameter is invalid")

	// ErrSchemaInvalid indicates the schema argument is not a well-formed mapping.
	ErrSchemaInvalid = errors.New("fault: verification type is invalid")
)

// Kind enumerates the failure classes.
type Kind int

const (
	// KindUnknown is the zero Kind; KindOf returns it for foreign errors.
	KindUnknown Kind = iota
	// KindParameterNull marks a missing required parameter.
	KindParameterNull
	// KindParameterInvalid marks a parameter that failed its type contract.
	KindParameterInvalid
	// KindSchemaInvalid marks a malformed schema.
	KindSchemaInvalid
)

// String returns the stable code of the kind.
func (k Kind) String() string {
	switch k {
	case KindParameterNull:
		return CodeParameterNull
	case KindParameterInvalid:
		return CodeParameterInvalid
	case KindSchemaInvalid:
		return CodeSchemaInvalid
	default:
		return "UNKNOWN"
	}
}

// Client-facing codes.
const (
	CodeParameterNull    = "PARAMETER_NOT_PROVIDED"
	CodeParameterInvalid = "PARAMETER_INVALID"
	CodeSchemaInvalid    = "SCHEMA_INVALID"
)

// HTTP status codes suggested for the boundary layer.
const (
	StatusBadRequest          = 400
	StatusInternalServerError = 500
)

func (k Kind) sentinel() error {
	switch k {
	case KindParameterNull:
		return ErrParameterNull
	case KindParameterInvalid:
		return ErrParameterInvalid
	case KindSchemaInvalid:
		return ErrSchemaInvalid
	default:
		return nil
	}
}
