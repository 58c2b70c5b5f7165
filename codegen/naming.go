// This file implements name conversion from model identifiers to valid Rust
// identifiers, including reserved word escaping.

package codegen

// rustReservedWords contains Rust keywords that cannot be used as identifiers.
// Both strict and reserved-for-future-use keywords are included, since either
// would break the generated crate.
var rustReservedWords = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true, "become": true,
	"box": true, "break": true, "const": true, "continue": true, "crate": true,
	"do": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "final": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "macro": true,
	"match": true, "mod": true, "move": true, "mut": true, "override": true,
	"priv": true, "pub": true, "ref": true, "return": true, "self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"try": true, "type": true, "typeof": true, "unsafe": true, "unsized": true,
	"use": true, "virtual": true, "where": true, "while": true, "yield": true,
}

// escapeReservedWord checks if a name is a Rust keyword and escapes it by
// appending an underscore if necessary. The escaped name no longer matches the
// wire-format spelling, so callers must emit a rename attribute in that case.
func escapeReservedWord(name string) string {
	if rustReservedWords[name] {
		return name + "_"
	}
	return name
}
