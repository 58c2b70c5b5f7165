// Package codegen turns a resolved Object Model into Rust source text.
//
// For every object it renders a plain data struct, and for the object plus every
// operation addressing it, a builder struct. Builders carry one phantom generic
// marker per required field or parameter: setters flip a marker from Missing{Name}
// to {Name}Exists in the type only, and the terminal send is defined solely on the
// all-Exists instantiation, so a forgotten required property fails to compile in
// the generated crate.
//
// The package is split along four concerns:
//
//   - field/parameter unification: ObjectBuilder.StructFields merges an object's
//     fields with path-level and operation-level parameters into one ordered,
//     collision-resolved list
//   - typestate synthesis: ObjectBuilder.WriteGenerics renders the marker list in
//     one of four modes (Generic, ChangeOne, ChangeAll, ReplaceAll)
//   - container layout planning: ObjectBuilder.NeedsContainer decides whether the
//     builder's data must be split into a marker-free inner container so the
//     emitted repr(transparent) reinterpretation stays sound
//   - rendering: Renderer writes the actual struct, attribute, and doc text
//
// Rendering is purely deterministic: the same model renders to byte-identical
// output, and independent objects may be rendered concurrently as long as the
// model itself is not mutated.
package codegen
