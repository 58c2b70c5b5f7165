// Package oxidegen generates Rust API-client source code from a resolved API model.
//
// oxidegen consumes an already-resolved Object Model (data objects, their fields, and
// the HTTP operations that address them) and emits Rust source text for plain data
// structs and for per-operation builder types. The builders use a typestate encoding:
// one phantom generic marker per required field or parameter, so that the terminal
// build call only exists on the fully-satisfied instantiation and a missing required
// property is a Rust compile error, not a runtime one.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - model: the resolved Object Model consumed by generation, plus YAML loading
//   - codegen: field/parameter unification, typestate synthesis, container layout
//     planning, and the Rust text renderer
//
// # Quick Start
//
// Generate Rust sources from a resolved model document:
//
//	import "github.com/oxidegen/oxidegen/codegen"
//
//	result, err := codegen.GenerateWithOptions(
//		codegen.WithModelPath("model.yaml"),
//		codegen.WithHelperModulePrefix("crate::"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("out/src"); err != nil {
//		log.Fatal(err)
//	}
//
// Parsing an API description format (OpenAPI or otherwise) into the Object Model is
// out of scope; oxidegen starts where schema resolution ends.
package oxidegen
