package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperty(t *testing.T) {
	assert.True(t, RequiredField.IsRequired())
	assert.True(t, RequiredParam.IsRequired())
	assert.False(t, OptionalField.IsRequired())
	assert.False(t, OptionalParam.IsRequired())

	assert.True(t, RequiredParam.IsParameter())
	assert.True(t, OptionalParam.IsParameter())
	assert.False(t, RequiredField.IsParameter())

	assert.True(t, RequiredField.IsField())
	assert.True(t, OptionalField.IsField())
	assert.False(t, OptionalParam.IsField())

	assert.Equal(t, "required field", RequiredField.String())
	assert.Equal(t, "optional parameter", OptionalParam.String())
}
