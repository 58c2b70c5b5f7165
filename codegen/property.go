package codegen

// Property classifies a unified struct field: whether it came from the object
// body or an operation parameter, and whether it is required.
type Property int

const (
	// RequiredField is an object field that must be supplied (body required
	// and the field itself marked required).
	RequiredField Property = iota
	// OptionalField is an object field that may be omitted.
	OptionalField
	// RequiredParam is an operation parameter that must be supplied.
	RequiredParam
	// OptionalParam is an operation parameter that may be omitted.
	OptionalParam
)

// IsRequired reports whether this property must be supplied before the
// builder's terminal send, i.e. whether it gets a typestate marker.
func (p Property) IsRequired() bool {
	return p == RequiredField || p == RequiredParam
}

// IsParameter reports whether this property is an operation parameter.
func (p Property) IsParameter() bool {
	return p == RequiredParam || p == OptionalParam
}

// IsField reports whether this property is an object field.
func (p Property) IsField() bool {
	return p == RequiredField || p == OptionalField
}

// String returns the property kind for diagnostics.
func (p Property) String() string {
	switch p {
	case RequiredField:
		return "required field"
	case OptionalField:
		return "optional field"
	case RequiredParam:
		return "required parameter"
	case OptionalParam:
		return "optional parameter"
	default:
		return "unknown"
	}
}
