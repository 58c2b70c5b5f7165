package codegen

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/oxidegen/oxidegen/internal/naming"
	"github.com/oxidegen/oxidegen/model"
)

// docEscapeRe matches the characters that carry link meaning in Rust doc
// comments and must be escaped in free-text descriptions.
var docEscapeRe = regexp.MustCompile(`[\[\]]`)

// Renderer emits Rust source text for objects and their builder views.
// Rendering is synchronous and side-effect-free: the only failure mode is a
// write error from the sink, which aborts the current item unchanged.
type Renderer struct {
	// HelperModulePrefix addresses the generated helper modules (generics,
	// util) from the crate root, e.g. "crate::".
	HelperModulePrefix string
}

// Builders constructs every builder view for an object: one for the object
// itself, then one per path×method in deterministic order (paths lexically,
// methods canonically). The disambiguation index counts builders sharing the
// same HTTP method.
func (r *Renderer) Builders(obj *model.ApiObject) []ObjectBuilder {
	objAny := obj.HasAnyField()
	total := 0
	for _, ops := range obj.Paths {
		total += len(ops.Ops)
	}
	multiple := total > 1

	builders := make([]ObjectBuilder, 0, total+1)
	// The object's own builder: body always present, no parameters.
	builders = append(builders, ObjectBuilder{
		Description:           obj.Description,
		BodyRequired:          true,
		HelperModulePrefix:    r.HelperModulePrefix,
		Object:                obj.Name,
		Fields:                obj.Fields,
		MultipleBuildersExist: multiple,
		NeedsAny:              objAny,
	})

	methodCounts := make(map[model.HttpMethod]int)
	for _, path := range obj.SortedPaths() {
		ops := obj.Paths[path]
		for _, method := range ops.SortedMethods() {
			op := ops.Ops[method]
			idx := methodCounts[method]
			methodCounts[method]++
			builders = append(builders, ObjectBuilder{
				Idx:                   idx,
				Description:           op.Description,
				BodyRequired:          op.BodyRequired,
				HelperModulePrefix:    r.HelperModulePrefix,
				OpID:                  op.ID,
				Deprecated:            op.Deprecated,
				Method:                method,
				RelPath:               path,
				IsListOp:              op.Listable,
				Response:              op.Response,
				Object:                obj.Name,
				Encoding:              op.Encoding,
				Decoding:              op.Decoding,
				MultipleBuildersExist: multiple,
				Fields:                obj.Fields,
				GlobalParams:          ops.Params,
				LocalParams:           op.Params,
				NeedsAny:              (op.BodyRequired && objAny) || op.Response.ContainsAny || op.Response.TypePath == "",
			})
		}
	}
	return builders
}

// WriteObject writes the documented data struct declaration for obj,
// including serde derives and per-field rename attributes wherever the
// wire-format spelling differs from the Rust identifier.
func (r *Renderer) WriteObject(w io.Writer, obj *model.ApiObject) error {
	s := &sink{w: w}

	writeDocs(s, obj.Description, 0)
	s.str("#[derive(Debug, Default, Clone, Deserialize, Serialize)]")
	s.str("\npub struct ")
	s.str(obj.Name)
	if obj.HasAnyField() {
		writeAnyGeneric(s)
	}
	s.str(" {")

	for i := range obj.Fields {
		field := &obj.Fields[i]
		newName := escapeReservedWord(naming.ToSnakeCase(field.Name))

		writeDocs(s, field.Description, 1)
		if field.Description == "" {
			s.str("\n")
		}
		s.str("    ")
		// Keep (de)serialization matched to the source schema whenever the
		// identifier had to change spelling.
		if newName != field.Name {
			s.str("#[serde(rename = \"")
			s.str(field.Name)
			s.str("\")]\n    ")
		}

		s.str("pub ")
		s.str(newName)
		s.str(": ")
		if !field.IsRequired {
			s.str("Option<")
		}
		if field.Boxed {
			s.str("Box<")
		}
		if field.NeedsAny {
			writeFieldWithAny(s, field.TypePath)
		} else {
			s.str(field.TypePath)
		}
		if field.Boxed {
			s.str(">")
		}
		if !field.IsRequired {
			s.str(">")
		}
		s.str(",")
	}

	if len(obj.Fields) > 0 {
		s.str("\n")
	}
	s.str("}\n")
	return s.err
}

// WriteBuilder writes the builder struct declaration for b, and its inner
// container struct when the layout planner requires one.
func (r *Renderer) WriteBuilder(w io.Writer, b *ObjectBuilder) error {
	s := &sink{w: w}

	s.str("/// Builder ")
	if name, ok := b.ConstructorName(); ok && b.Method != "" {
		s.str("created by [`")
		s.str(b.Object)
		s.str("::")
		s.str(name)
		s.str("`](./struct.")
		s.str(b.Object)
		s.str(".html#method.")
		s.str(name)
		s.str(") method for a `")
		s.str(strings.ToUpper(string(b.Method)))
		s.str("` operation associated with `")
		s.str(b.Object)
		s.str("`.\n")
	} else {
		s.str("for [`")
		s.str(b.Object)
		s.str("`](./struct.")
		s.str(b.Object)
		s.str(".html) object.\n")
	}

	// When markers must coexist with more than one piece of data, the data
	// is boxed into a marker-free container and the builder holds only that
	// handle, keeping it repr(transparent) so setters can change typestate
	// without touching the stored bytes.
	needsContainer := b.NeedsContainer()
	if needsContainer {
		s.str("#[repr(transparent)]\n")
	}

	s.str("#[derive(Debug, Clone)]\npub struct ")
	s.str(b.Name())
	if s.err == nil {
		_, s.err = b.WriteGenerics(w, "", Generic())
	}

	// Builders with no fields at all become unit structs.
	hasFields := b.HasAtLeastOneField()

	if hasFields || b.BodyRequired || needsContainer {
		s.str(" {")
	}

	var containerBuf strings.Builder
	container := &sink{w: &containerBuf}
	if needsContainer {
		container.str("#[derive(Debug, Default, Clone)]\nstruct ")
		container.str(b.ContainerName())
		if b.NeedsAny {
			writeAnyGeneric(container)
		}
		container.str(" {")
		writeBodyFieldIfRequired(container, b)

		s.str("\n    inner: ")
		s.str(b.ContainerName())
		if b.NeedsAny {
			writeAnyGeneric(s)
		}
		s.str(",")
	} else {
		writeBodyFieldIfRequired(s, b)
	}

	// Struct fields, and phantom markers for the required ones.
	for _, field := range b.StructFields() {
		sk := naming.ToSnakeCase(field.Name)
		if needsContainer {
			r.writeParameterIfRequired(container, field, sk)
		} else {
			r.writeParameterIfRequired(s, field, sk)
		}

		if field.Prop.IsRequired() {
			s.str("\n    ")
			if field.Prop.IsParameter() {
				s.str("_param")
			}
			s.str("_")
			s.str(sk)
			s.str(": core::marker::PhantomData<")
			s.str(naming.ToPascalCase(field.Name))
			s.str(">,")
		}
	}

	if hasFields || b.BodyRequired {
		s.str("\n}\n")
	} else {
		s.str(";\n")
	}

	if needsContainer {
		s.str("\n")
		s.str(containerBuf.String())
		s.str("\n}\n")
	}

	return s.err
}

// writeBodyFieldIfRequired writes the body field holding the object value
// when the operation requires one. The "self::" addressing avoids collisions
// between the body type and the builder's generic parameters.
func writeBodyFieldIfRequired(s *sink, b *ObjectBuilder) {
	if !b.BodyRequired {
		return
	}
	s.str("\n    body: self::")
	s.str(b.Object)
	if b.NeedsAny {
		writeAnyGeneric(s)
	}
	s.str(",")
}

// writeParameterIfRequired writes the optional storage field for a parameter
// property. File-typed parameters store a local filesystem path; array-typed
// parameters get their delimited wrapping.
func (r *Renderer) writeParameterIfRequired(s *sink, field StructField, name string) {
	if !field.Prop.IsParameter() {
		return
	}
	s.str("\n    param_")
	s.str(name)
	s.str(": Option<")
	if field.Ty == model.FileMarker {
		s.str("std::path::PathBuf")
	} else {
		writeWrappedTy(s, r.HelperModulePrefix, field.Ty, field.Delimiting)
	}
	s.str(">,")
}

// writeAnyGeneric writes the dynamically-typed payload slot as a generic
// parameter, including the angle brackets.
func writeAnyGeneric(s *sink) {
	s.str("<")
	s.str(model.AnyGenericParameter)
	s.str(">")
}

// writeDocs writes the given free text as Rust doc comments at the given
// indent level: one doc line per source line, blank lines preserved, link
// characters escaped, trailing whitespace stripped.
func writeDocs(s *sink, text string, levels int) {
	if text == "" {
		return
	}
	indent := strings.Repeat(" ", levels*4)
	for _, line := range strings.Split(text, "\n") {
		s.str("\n")
		s.str(indent)
		s.str("///")
		if line == "" {
			continue
		}
		s.str(" ")
		escaped := docEscapeRe.ReplaceAllString(line, `\$0`)
		s.str(strings.TrimRight(escaped, " \t"))
	}
	s.str("\n")
}

// isSimpleType reports whether a type path is primitive, i.e. not an object
// defined by this generation run.
func isSimpleType(ty string) bool {
	return !strings.Contains(ty, "::") || strings.HasSuffix(ty, "Delimited")
}

// writeFieldWithAny writes a field type that is or contains the
// dynamically-typed placeholder, substituting the generic slot recursively
// through sequence and mapping wrappers until a non-container leaf is
// reached. Any other generic shape is a modeling-contract violation and
// panics: silently emitting wrong source would be worse than stopping.
func writeFieldWithAny(s *sink, ty string) {
	if i := strings.IndexByte(ty, '<'); i >= 0 {
		head := ty[:i]
		switch {
		case strings.HasSuffix(head, "Vec"):
			s.str(ty[:i+1])
			writeFieldWithAny(s, ty[i+1:len(ty)-1])
		case strings.HasSuffix(head, "std::collections::BTreeMap"):
			// Skip past "<String, " to the value type.
			s.str(ty[:i+9])
			writeFieldWithAny(s, ty[i+9:len(ty)-1])
		default:
			panic(fmt.Sprintf("codegen: unexpected generic container in %q; only sequence and mapping wrappers carry Any", ty))
		}
		s.str(">")
		return
	}

	s.str(ty)
	if !isSimpleType(ty) {
		writeAnyGeneric(s)
	}
}

// writeWrappedTy rewrites a sequence-typed parameter, innermost first, into
// the generated Delimited wrapper carrying the collection format that applies
// at each nesting level, and writes the result. Non-sequence types pass
// through unchanged.
func writeWrappedTy(s *sink, prefix, ty string, delims []model.CollectionFormat) {
	if !strings.Contains(ty, "Vec") {
		s.str(ty)
		return
	}

	// Parameters are limited to basic types and arrays, so every generic
	// bracket here belongs to a Vec.
	rest := strings.ReplaceAll(ty, "Vec", prefix+"util::Delimited")
	var out strings.Builder
	delimIdx := len(delims)
	for {
		idx := strings.IndexByte(rest, '>')
		if idx < 0 {
			break
		}
		if delimIdx == 0 {
			panic(fmt.Sprintf("codegen: parameter type %q nests deeper than its %d delimiter(s)", ty, len(delims)))
		}
		delimIdx--
		out.WriteString(rest[:idx])
		out.WriteString(", ")
		out.WriteString(prefix)
		out.WriteString("util::")
		out.WriteString(delims[delimIdx].TypeName())
		out.WriteByte('>')
		if idx == len(rest)-1 {
			break
		}
		rest = rest[idx+1:]
	}

	s.str(out.String())
}
