package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, space, slash) trigger capitalization of the
// next letter.
// Example: "user_profile" -> "UserProfile"
// Example: "petId" -> "PetId"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == ' ' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToSnakeCase converts a string to snake_case.
// A lower-to-upper boundary inserts an underscore, and a run of uppercase letters is
// treated as one word ("APIClient" -> "api_client"). Existing separators (hyphen,
// dot, space, slash) are converted to underscores.
// Example: "UserProfile" -> "user_profile"
// Example: "petId" -> "pet_id"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder
	for i, r := range runes {
		switch {
		case r == '-' || r == '.' || r == ' ' || r == '/' || r == '_':
			result.WriteRune('_')
		case unicode.IsUpper(r):
			// Underscore before a new word: after a lowercase/digit, or at the
			// end of an uppercase run followed by a lowercase letter.
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					result.WriteRune('_')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// titleCaser performs English title casing; strings.Title is deprecated.
var titleCaser = cases.Title(language.English)

// ToTitleCase converts a string to English Title Case.
// Example: "swagger petstore" -> "Swagger Petstore"
func ToTitleCase(s string) string {
	return titleCaser.String(s)
}
