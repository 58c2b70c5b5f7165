package model

import "sort"

// FileMarker is the reserved type path denoting a file upload or file response.
// It stands in for a concrete type path and is rendered as a local filesystem
// path type in generated code.
const FileMarker = "__file__"

// AnyGenericParameter is the reserved name of the generic slot used for
// dynamically-typed payloads in generated code.
const AnyGenericParameter = "Any"

// HttpMethod is an HTTP method addressing an operation.
type HttpMethod string

// Supported HTTP methods.
const (
	MethodGet     HttpMethod = "GET"
	MethodPut     HttpMethod = "PUT"
	MethodPost    HttpMethod = "POST"
	MethodDelete  HttpMethod = "DELETE"
	MethodOptions HttpMethod = "OPTIONS"
	MethodHead    HttpMethod = "HEAD"
	MethodPatch   HttpMethod = "PATCH"
)

// methodOrder fixes the emission order of operations within a path so that
// rendering is independent of map iteration order.
var methodOrder = map[HttpMethod]int{
	MethodGet:     0,
	MethodPut:     1,
	MethodPost:    2,
	MethodDelete:  3,
	MethodOptions: 4,
	MethodHead:    5,
	MethodPatch:   6,
}

// ParameterIn indicates where a parameter lives in a request.
type ParameterIn string

// Parameter locations.
const (
	InPath     ParameterIn = "path"
	InQuery    ParameterIn = "query"
	InHeader   ParameterIn = "header"
	InBody     ParameterIn = "body"
	InFormData ParameterIn = "formData"
)

// CollectionFormat is the strategy for serializing repeated parameter values
// into a single textual value.
type CollectionFormat string

// Collection formats, matching the wire-format separators.
const (
	FormatCsv   CollectionFormat = "csv"   // comma-separated
	FormatSsv   CollectionFormat = "ssv"   // space-separated
	FormatTsv   CollectionFormat = "tsv"   // tab-separated
	FormatPipes CollectionFormat = "pipes" // pipe-separated
	FormatMulti CollectionFormat = "multi" // repeated parameter instances
)

// TypeName returns the generated-code type name for this collection format
// (e.g. "Csv"), used when wrapping array parameter types.
func (c CollectionFormat) TypeName() string {
	switch c {
	case FormatCsv:
		return "Csv"
	case FormatSsv:
		return "Ssv"
	case FormatTsv:
		return "Tsv"
	case FormatPipes:
		return "Pipes"
	case FormatMulti:
		return "Multi"
	default:
		return "Csv"
	}
}

// Coder is an opaque handle to a wire-format encoder/decoder implementation.
// The generator only carries it through; it never interprets the paths.
type Coder struct {
	// EncoderPath is the type path of the encoder function or type.
	EncoderPath string `yaml:"encoderPath"`
	// DecoderPath is the type path of the decoder function or type.
	DecoderPath string `yaml:"decoderPath"`
}

// MediaCoder pairs a media range with the coder preferred for it.
type MediaCoder struct {
	// Range is the media range (e.g. "application/yaml").
	Range string `yaml:"range"`
	// Coder is the opaque coder handle for this media range.
	Coder *Coder `yaml:"coder,omitempty"`
}

// Api is the root of a resolved Object Model: everything one generation run consumes.
type Api struct {
	// Title is the human-readable API title, used in generated crate docs.
	Title string `yaml:"title"`
	// Objects are the API data objects, in emission order.
	Objects []*ApiObject `yaml:"objects"`
}

// ApiObject represents one generated record type and the operations addressing it.
type ApiObject struct {
	// Name of the object (PascalCase identifier, unique within the namespace).
	Name string `yaml:"name"`
	// Description for this object (if any), used for docs.
	Description string `yaml:"description,omitempty"`
	// Path to this object from the generated root module, dotted
	// (e.g. "io.petstore.pet").
	Path string `yaml:"path,omitempty"`
	// Fields of the object, in emission order.
	Fields []ObjectField `yaml:"fields,omitempty"`
	// Paths maps URL paths to the operations that address this object.
	Paths map[string]PathOps `yaml:"paths,omitempty"`
}

// SortedPaths returns the object's URL paths in lexical order so that
// rendering is a pure function of the model contents.
func (o *ApiObject) SortedPaths() []string {
	paths := make([]string, 0, len(o.Paths))
	for p := range o.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// HasAnyField reports whether any field of this object is or contains a
// dynamically-typed value.
func (o *ApiObject) HasAnyField() bool {
	for i := range o.Fields {
		if o.Fields[i].NeedsAny {
			return true
		}
	}
	return false
}

// PathOps holds the operations for one URL path.
type PathOps struct {
	// Ops maps HTTP methods to their requirements.
	Ops map[HttpMethod]OpRequirement `yaml:"ops,omitempty"`
	// Params are shared by all operations in this path.
	Params []Parameter `yaml:"params,omitempty"`
}

// SortedMethods returns the path's HTTP methods in a fixed canonical order
// (GET, PUT, POST, DELETE, OPTIONS, HEAD, PATCH), unknown methods last in
// lexical order.
func (p *PathOps) SortedMethods() []HttpMethod {
	methods := make([]HttpMethod, 0, len(p.Ops))
	for m := range p.Ops {
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool {
		oi, iok := methodOrder[methods[i]]
		oj, jok := methodOrder[methods[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok:
			return true
		case jok:
			return false
		default:
			return methods[i] < methods[j]
		}
	})
	return methods
}

// OpRequirement describes what one operation requires from its object.
type OpRequirement struct {
	// ID is the operation identifier, if the source schema provided one.
	// When multiple operations exist for the same path, it disambiguates
	// constructor names.
	ID string `yaml:"id,omitempty"`
	// Description of this operation (if any), used for docs.
	Description string `yaml:"description,omitempty"`
	// Deprecated marks the operation as deprecated.
	Deprecated bool `yaml:"deprecated,omitempty"`
	// Params are local to this operation.
	Params []Parameter `yaml:"params,omitempty"`
	// BodyRequired reports whether the object itself is required in the body.
	BodyRequired bool `yaml:"bodyRequired,omitempty"`
	// Listable reports whether this operation returns a list of the object.
	Listable bool `yaml:"listable,omitempty"`
	// Response describes this operation's response.
	Response Response `yaml:"response,omitempty"`
	// Encoding is the preferred media range and coder for request bodies.
	// Ignored for methods without a body; absence means JSON.
	Encoding *MediaCoder `yaml:"encoding,omitempty"`
	// Decoding is the preferred media range and coder for responses. Only
	// used when objects make use of dynamically-typed payloads; absence
	// means JSON.
	Decoding *MediaCoder `yaml:"decoding,omitempty"`
}

// Response holds response information for an operation.
type Response struct {
	// TypePath is the type path of the response. Empty means the response
	// is dynamically typed.
	TypePath string `yaml:"typePath,omitempty"`
	// ContainsAny reports whether the response contains a dynamically-typed
	// value. Useful when operations get bound to some other object.
	ContainsAny bool `yaml:"containsAny,omitempty"`
}

// IsFile reports whether this response is a file.
func (r Response) IsFile() bool {
	return r.TypePath == FileMarker
}

// Parameter represents a parameter somewhere in a request (header, path,
// query, etc.).
type Parameter struct {
	// Name of the parameter (wire-format spelling).
	Name string `yaml:"name"`
	// Description of this parameter (if any), used for docs.
	Description string `yaml:"description,omitempty"`
	// TypePath is the type of the parameter as a path.
	TypePath string `yaml:"typePath"`
	// Required reports whether this parameter must be supplied.
	Required bool `yaml:"required,omitempty"`
	// Presence is where the parameter lives.
	Presence ParameterIn `yaml:"in"`
	// Delimiting lists the collection formats for array parameters,
	// outermost to innermost for nested arrays.
	Delimiting []CollectionFormat `yaml:"delimiting,omitempty"`
}

// ObjectField represents one field of an API object.
type ObjectField struct {
	// Name of the field (wire-format spelling).
	Name string `yaml:"name"`
	// TypePath is the type of the field as a path.
	TypePath string `yaml:"typePath"`
	// Description of this field (if any), used for docs.
	Description string `yaml:"description,omitempty"`
	// IsRequired reports whether this field is required (i.e., not optional).
	IsRequired bool `yaml:"isRequired,omitempty"`
	// NeedsAny reports whether this field's type is or contains a
	// dynamically-typed value.
	NeedsAny bool `yaml:"needsAny,omitempty"`
	// Boxed forces heap indirection to break a recursive type reference.
	Boxed bool `yaml:"boxed,omitempty"`
	// ChildReqFields lists the required fields of the deepest non-container
	// child type reachable by unwrapping nested sequence/mapping wrappers.
	// A non-empty list means a nested value needs its own builder rather
	// than a literal.
	ChildReqFields []string `yaml:"childReqFields,omitempty"`
}
