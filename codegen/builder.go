package codegen

import (
	"io"
	"strconv"

	"github.com/oxidegen/oxidegen/internal/naming"
	"github.com/oxidegen/oxidegen/model"
)

// ObjectBuilder is the ephemeral per-object×operation view the renderer works
// on: one object's fields combined with one operation's parameters, plus the
// context needed to pick names. It borrows from the model and is discarded
// after rendering.
type ObjectBuilder struct {
	// Idx disambiguates this builder among builders for the same object and
	// HTTP method (0 for the first occurrence).
	Idx int
	// Description for docs, if any.
	Description string
	// BodyRequired reports whether the object body is required for this
	// operation.
	BodyRequired bool
	// HelperModulePrefix addresses generated helper modules from the crate
	// root (e.g. "crate::").
	HelperModulePrefix string
	// OpID is the operation identifier, if any.
	OpID string
	// Deprecated marks the operation as deprecated.
	Deprecated bool
	// Method is the HTTP method of the operation. Empty for the builder of
	// the object itself.
	Method model.HttpMethod
	// RelPath is the relative URL path; present exactly when Method is.
	RelPath string
	// IsListOp reports whether the operation returns a list of the object.
	IsListOp bool
	// Response for the operation, if any.
	Response model.Response
	// Object is the name of the object this builder belongs to.
	Object string
	// Encoding is the operation's request coder, when not JSON.
	Encoding *model.MediaCoder
	// Decoding is the operation's response coder, when not JSON. Used to set
	// the Accept header for operations returning dynamically-typed objects.
	Decoding *model.MediaCoder
	// MultipleBuildersExist reports whether the object has more than one
	// builder, which forces disambiguated constructor names.
	MultipleBuildersExist bool
	// Fields are the object's own fields.
	Fields []model.ObjectField
	// GlobalParams are shared by every operation on the URL path.
	GlobalParams []model.Parameter
	// LocalParams are specific to this operation.
	LocalParams []model.Parameter
	// NeedsAny reports whether this builder is generic over the
	// dynamically-typed payload slot.
	NeedsAny bool
}

// StructField is the unified view of one field-or-parameter as seen by the
// renderer.
type StructField struct {
	// Name of the property (wire-format spelling, case unspecified).
	Name string
	// Ty is the type path of the property.
	Ty string
	// Prop classifies what this property represents.
	Prop Property
	// Desc is the doc description, if any.
	Desc string
	// Overridden marks a parameter that collided with a same-named,
	// same-typed object field: the later declaration is the single source
	// of truth at render time, not a duplicate.
	Overridden bool
	// StrictChildFields lists required fields of the deepest child type.
	// When non-empty, setters take a builder instead of a literal value.
	StrictChildFields []string
	// Delimiting lists collection formats for array parameters.
	Delimiting []model.CollectionFormat
	// ParamLoc is the parameter location; empty for object fields.
	ParamLoc model.ParameterIn
	// NeedsAny reports whether this property is or contains a
	// dynamically-typed value. Only applicable to object fields.
	NeedsAny bool
	// NeedsFile reports whether this property is a file upload.
	NeedsFile bool
}

// TypeCollision records a name collision between a parameter and an object
// field whose types disagree. The later entry is dropped; which one "should"
// win is ambiguous, so the fallback is surfaced as a generation issue rather
// than silently applied.
type TypeCollision struct {
	// Name is the colliding property name.
	Name string
	// KeptTy is the type of the entry that stayed in the unified list.
	KeptTy string
	// DroppedTy is the type of the entry that was dropped.
	DroppedTy string
}

// StructFields returns the unified, ordered list of this builder's fields and
// parameters. Names in the returned list are unique: a local parameter
// overrides a same-named global parameter (last write wins, first position
// kept), and a field colliding with a parameter is dropped, flagging the
// parameter as overridden when the types match.
func (b *ObjectBuilder) StructFields() []StructField {
	fields, _ := b.unifyFields()
	return fields
}

// unifyFields performs the unification and additionally reports
// mismatched-type collisions for diagnostics.
func (b *ObjectBuilder) unifyFields() ([]StructField, []TypeCollision) {
	fields := make([]StructField, 0, len(b.GlobalParams)+len(b.LocalParams)+len(b.Fields))
	byName := make(map[string]int, cap(fields))
	var collisions []TypeCollision

	// Parameters first: global, then local. A later parameter with a seen
	// name replaces the earlier one in place, so local wins while the
	// original position is kept.
	addParam := func(p *model.Parameter) {
		sf := StructField{
			Name: p.Name,
			Ty:   p.TypePath,
			Prop: OptionalParam,
			Desc: p.Description,
			// Parameters are never nested objects, so they carry no
			// strict child fields and never hold Any.
			Delimiting: p.Delimiting,
			ParamLoc:   p.Presence,
			NeedsFile:  p.TypePath == model.FileMarker,
		}
		if p.Required {
			sf.Prop = RequiredParam
		}
		if i, ok := byName[p.Name]; ok {
			fields[i] = sf
			return
		}
		byName[p.Name] = len(fields)
		fields = append(fields, sf)
	}
	for i := range b.GlobalParams {
		addParam(&b.GlobalParams[i])
	}
	for i := range b.LocalParams {
		addParam(&b.LocalParams[i])
	}

	// Then object fields, in declaration order. Body fields are only
	// "required" when the body itself is: an absent body makes inner
	// requiredness moot.
	for i := range b.Fields {
		f := &b.Fields[i]
		sf := StructField{
			Name:              f.Name,
			Ty:                f.TypePath,
			Prop:              OptionalField,
			Desc:              f.Description,
			StrictChildFields: f.ChildReqFields,
			NeedsAny:          f.NeedsAny,
			NeedsFile:         f.TypePath == model.FileMarker,
		}
		if b.BodyRequired && f.IsRequired {
			sf.Prop = RequiredField
		}
		if j, ok := byName[f.Name]; ok {
			if fields[j].Ty == sf.Ty {
				fields[j].Overridden = true
			} else {
				collisions = append(collisions, TypeCollision{
					Name:      f.Name,
					KeptTy:    fields[j].Ty,
					DroppedTy: sf.Ty,
				})
			}
			continue
		}
		byName[f.Name] = len(fields)
		fields = append(fields, sf)
	}

	return fields, collisions
}

// ConstructorName returns the snake_case name of the function that creates
// this builder, and whether one could be derived. The operation ID wins; a
// lone builder falls back to its HTTP method; duplicate methods fall back to
// an indexed method name. With no operation ID and no method there is nothing
// to derive a name from.
func (b *ObjectBuilder) ConstructorName() (string, bool) {
	switch {
	case b.OpID != "":
		return naming.ToSnakeCase(b.OpID), true
	case b.Method != "" && !b.MultipleBuildersExist:
		return naming.ToSnakeCase(string(b.Method)), true
	case b.Method != "":
		name := naming.ToSnakeCase(string(b.Method))
		if b.Idx > 0 {
			name += "_" + strconv.Itoa(b.Idx)
		}
		return name, true
	default:
		// TODO(naming): derive a name from the route segments instead of
		// giving up; today only operation builders reach this case.
		return "", false
	}
}

// Name returns this builder's type name: the object name, the HTTP method
// (when the builder belongs to an operation), "Builder", and the
// disambiguation index when non-zero.
func (b *ObjectBuilder) Name() string {
	name := b.Object
	if b.Method != "" {
		name += methodTypeSegment(b.Method)
	}
	name += "Builder"
	if b.Idx > 0 {
		name += strconv.Itoa(b.Idx)
	}
	return name
}

// ContainerName returns the name of this builder's marker-free inner
// container struct.
func (b *ObjectBuilder) ContainerName() string {
	return b.Name() + "Container"
}

// methodTypeSegment renders an HTTP method as a PascalCase type name segment
// ("GET" -> "Get").
func methodTypeSegment(m model.HttpMethod) string {
	return naming.ToPascalCase(naming.ToSnakeCase(string(m)))
}

// HasAtLeastOneField reports whether the builder struct will hold at least
// one concrete field: any parameter, or any required property (required
// properties always materialize a phantom marker field).
func (b *ObjectBuilder) HasAtLeastOneField() bool {
	for _, f := range b.StructFields() {
		if f.Prop.IsParameter() || f.Prop.IsRequired() {
			return true
		}
	}
	return false
}

// NeedsContainer reports whether the builder's data must be split into a
// separate marker-free container struct.
//
// The emitted builders change their typestate markers between setter calls by
// reinterpreting the value at its existing layout, which is only sound when
// the struct is repr(transparent): exactly one non-zero-sized field. So the
// real data moves into a container whenever markers must coexist with more
// than one piece of data:
//
//   - at least one operation parameter is required, or
//   - the body is required with at least one required field AND the
//     operation has at least one parameter of any kind.
//
// A body-only builder needs no container: the body handle is the single
// non-zero-sized field and can be reinterpreted directly.
func (b *ObjectBuilder) NeedsContainer() bool {
	for i := range b.LocalParams {
		if b.LocalParams[i].Required {
			return true
		}
	}
	for i := range b.GlobalParams {
		if b.GlobalParams[i].Required {
			return true
		}
	}
	if b.BodyRequired && len(b.LocalParams)+len(b.GlobalParams) > 0 {
		for i := range b.Fields {
			if b.Fields[i].IsRequired {
				return true
			}
		}
	}
	return false
}

// WriteName writes this builder's type name to w.
func (b *ObjectBuilder) WriteName(w io.Writer) error {
	_, err := io.WriteString(w, b.Name())
	return err
}
