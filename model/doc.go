// Package model defines the resolved Object Model consumed by code generation.
//
// The model is the output of schema resolution: API data objects with their fields,
// and the URL paths and HTTP operations that address each object. It is deliberately
// free of any source description format (OpenAPI or otherwise); references are already
// resolved into type paths and requiredness flags. The codegen package treats a loaded
// model as read-only, so generation of independent objects may run concurrently.
//
// Models can be constructed directly or loaded from a YAML document via Load or
// LoadFile.
package model
