// Package naming provides shared case conversion utilities for oxidegen packages.
//
// This internal package contains the string transformations used when turning model
// names into Rust identifiers:
//   - ToSnakeCase: field, parameter, and constructor function names
//   - ToPascalCase: type and typestate marker names
//   - ToTitleCase: human-readable titles in generated crate documentation
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
