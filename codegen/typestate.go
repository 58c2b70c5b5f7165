package codegen

import (
	"io"

	"github.com/oxidegen/oxidegen/internal/naming"
	"github.com/oxidegen/oxidegen/model"
)

// typeParamMode selects how WriteGenerics renders each typestate marker.
type typeParamMode int

const (
	modeGeneric typeParamMode = iota
	modeChangeOne
	modeChangeAll
	modeReplaceAll
)

// TypeParameters selects how the typestate markers of a builder are rendered.
// Construct values with Generic, ChangeOne, ChangeAll, or ReplaceAll.
type TypeParameters struct {
	mode typeParamMode
	name string
}

// Generic renders each required property as a fresh, unconstrained generic
// parameter named after the property. Used when declaring the builder type.
func Generic() TypeParameters {
	return TypeParameters{mode: modeGeneric}
}

// ChangeOne renders the marker for the named property as its "satisfied"
// marker type while all others keep their plain generic name. Used for the
// return type of that property's setter.
func ChangeOne(name string) TypeParameters {
	return TypeParameters{mode: modeChangeOne, name: name}
}

// ChangeAll renders every marker as its "satisfied" marker type. Used for the
// receiver of the terminal send method, which is what makes a missing
// required property a compile error.
func ChangeAll() TypeParameters {
	return TypeParameters{mode: modeChangeAll}
}

// ReplaceAll renders every marker as its "missing" marker type. Used for the
// constructor's initial instantiation.
func ReplaceAll() TypeParameters {
	return TypeParameters{mode: modeReplaceAll}
}

// WriteGenerics writes this builder's generic parameter list (including the
// angle brackets) to w, if any parameters are needed, and returns how many
// were written.
//
// One marker is emitted per required property, in unification order. The
// markers live in the generated helper module: Missing{Name} for the initial
// state and {Name}Exists for the satisfied state. When the builder is generic
// over the dynamically-typed payload slot, one trailing capability parameter
// is appended; anyValue overrides its default name and is never affected by
// the rendering mode.
func (b *ObjectBuilder) WriteGenerics(w io.Writer, anyValue string, params TypeParameters) (int, error) {
	s := &sink{w: w}
	numGenerics := 0

	for _, field := range b.StructFields() {
		if !field.Prop.IsRequired() {
			continue
		}
		if numGenerics == 0 {
			s.str("<")
		} else {
			s.str(", ")
		}
		numGenerics++

		marker := naming.ToPascalCase(field.Name)
		switch {
		case params.mode == modeChangeOne && field.Name == params.name,
			params.mode == modeChangeAll:
			s.str(b.HelperModulePrefix)
			s.str("generics::")
			s.str(marker)
			s.str("Exists")
		case params.mode == modeReplaceAll:
			s.str(b.HelperModulePrefix)
			s.str("generics::Missing")
			s.str(marker)
		default:
			s.str(marker)
		}
	}

	if b.NeedsAny {
		if numGenerics > 0 {
			s.str(", ")
		} else {
			s.str("<")
		}
		if anyValue != "" {
			s.str(anyValue)
		} else {
			s.str(model.AnyGenericParameter)
		}
		numGenerics++
	}

	if numGenerics > 0 {
		s.str(">")
	}

	return numGenerics, s.err
}
