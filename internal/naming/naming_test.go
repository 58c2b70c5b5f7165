package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"user_profile", "UserProfile"},
		{"api-client", "ApiClient"},
		{"petId", "PetId"},
		{"pet id", "PetId"},
		{"already", "Already"},
		{"verbose", "Verbose"},
		{"a.b.c", "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascalCase(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"UserProfile", "user_profile"},
		{"petId", "pet_id"},
		{"APIClient", "api_client"},
		{"GET", "get"},
		{"listPets", "list_pets"},
		{"already_snake", "already_snake"},
		{"kebab-case", "kebab_case"},
		{"HTTPStatusCode", "http_status_code"},
		{"v2Beta", "v2_beta"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnakeCase(tt.input))
		})
	}
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Swagger Petstore", ToTitleCase("swagger petstore"))
	assert.Equal(t, "", ToTitleCase(""))
}
