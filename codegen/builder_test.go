package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxidegen/oxidegen/model"
)

func TestStructFields_UnificationTotality(t *testing.T) {
	b := &ObjectBuilder{
		Object:       "Pet",
		BodyRequired: true,
		GlobalParams: []model.Parameter{
			{Name: "a", TypePath: "String", Presence: model.InQuery},
			{Name: "b", TypePath: "String", Presence: model.InQuery},
		},
		LocalParams: []model.Parameter{
			{Name: "b", TypePath: "String", Presence: model.InHeader, Required: true},
			{Name: "c", TypePath: "i64", Presence: model.InQuery},
		},
		Fields: []model.ObjectField{
			{Name: "c", TypePath: "i64", IsRequired: true},
			{Name: "d", TypePath: "bool"},
		},
	}

	fields := b.StructFields()
	require.Len(t, fields, 4)

	names := make(map[string]int)
	for _, f := range fields {
		names[f.Name]++
	}
	for name, count := range names {
		assert.Equal(t, 1, count, "name %q must appear exactly once", name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"},
		[]string{fields[0].Name, fields[1].Name, fields[2].Name, fields[3].Name},
		"unification must preserve first-occurrence order")
}

func TestStructFields_LocalOverridesGlobal(t *testing.T) {
	b := &ObjectBuilder{
		Object: "Pet",
		GlobalParams: []model.Parameter{
			{Name: "q", TypePath: "String", Description: "global", Presence: model.InQuery},
		},
		LocalParams: []model.Parameter{
			{Name: "q", TypePath: "String", Description: "local", Presence: model.InQuery, Required: true},
		},
	}

	fields := b.StructFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "local", fields[0].Desc, "local parameter description must win")
	assert.Equal(t, RequiredParam, fields[0].Prop, "local parameter requiredness must win")
}

func TestStructFields_LocalOverridesGlobal_TypeMismatch(t *testing.T) {
	b := &ObjectBuilder{
		Object: "Pet",
		GlobalParams: []model.Parameter{
			{Name: "q", TypePath: "String", Presence: model.InQuery},
		},
		LocalParams: []model.Parameter{
			{Name: "q", TypePath: "i64", Presence: model.InQuery},
		},
	}

	fields := b.StructFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "i64", fields[0].Ty, "the later-declared (local) parameter wins")
}

func TestStructFields_FieldParamCollision_SameType(t *testing.T) {
	b := &ObjectBuilder{
		Object:       "Pet",
		BodyRequired: true,
		LocalParams: []model.Parameter{
			{Name: "id", TypePath: "i64", Presence: model.InPath, Required: true},
		},
		Fields: []model.ObjectField{
			{Name: "id", TypePath: "i64", IsRequired: true},
		},
	}

	fields, collisions := b.unifyFields()
	require.Len(t, fields, 1)
	assert.Empty(t, collisions)
	assert.True(t, fields[0].Overridden, "same-typed collision flags the parameter as overridden")
	assert.Equal(t, RequiredParam, fields[0].Prop)
}

func TestStructFields_FieldParamCollision_TypeMismatch(t *testing.T) {
	b := &ObjectBuilder{
		Object:       "Pet",
		BodyRequired: true,
		LocalParams: []model.Parameter{
			{Name: "id", TypePath: "String", Presence: model.InPath, Required: true},
		},
		Fields: []model.ObjectField{
			{Name: "id", TypePath: "i64", IsRequired: true},
		},
	}

	fields, collisions := b.unifyFields()
	require.Len(t, fields, 1)
	assert.Equal(t, "String", fields[0].Ty, "the parameter stays, the field is dropped")
	assert.False(t, fields[0].Overridden)

	require.Len(t, collisions, 1)
	assert.Equal(t, "id", collisions[0].Name)
	assert.Equal(t, "String", collisions[0].KeptTy)
	assert.Equal(t, "i64", collisions[0].DroppedTy)
}

func TestStructFields_BodyRequiredGatesFieldRequiredness(t *testing.T) {
	fields := []model.ObjectField{{Name: "name", TypePath: "String", IsRequired: true}}

	optional := &ObjectBuilder{Object: "Pet", Fields: fields}
	got := optional.StructFields()
	require.Len(t, got, 1)
	assert.Equal(t, OptionalField, got[0].Prop, "an absent body makes inner requiredness moot")

	required := &ObjectBuilder{Object: "Pet", Fields: fields, BodyRequired: true}
	got = required.StructFields()
	require.Len(t, got, 1)
	assert.Equal(t, RequiredField, got[0].Prop)
}

func TestStructFields_FileAndDelimiting(t *testing.T) {
	b := &ObjectBuilder{
		Object: "Doc",
		LocalParams: []model.Parameter{
			{Name: "upload", TypePath: model.FileMarker, Presence: model.InFormData},
			{Name: "tags", TypePath: "Vec<String>", Presence: model.InQuery,
				Delimiting: []model.CollectionFormat{model.FormatCsv}},
		},
	}

	fields := b.StructFields()
	require.Len(t, fields, 2)
	assert.True(t, fields[0].NeedsFile)
	assert.Equal(t, model.InFormData, fields[0].ParamLoc)
	assert.Equal(t, []model.CollectionFormat{model.FormatCsv}, fields[1].Delimiting)
}

func TestConstructorName(t *testing.T) {
	tests := []struct {
		name     string
		builder  ObjectBuilder
		expected string
		ok       bool
	}{
		{
			name:     "operation ID wins",
			builder:  ObjectBuilder{OpID: "listPets", Method: model.MethodGet, MultipleBuildersExist: true},
			expected: "list_pets",
			ok:       true,
		},
		{
			name:     "lone builder uses the method",
			builder:  ObjectBuilder{Method: model.MethodGet},
			expected: "get",
			ok:       true,
		},
		{
			name:     "first duplicate keeps the bare method name",
			builder:  ObjectBuilder{Method: model.MethodGet, MultipleBuildersExist: true},
			expected: "get",
			ok:       true,
		},
		{
			name:     "later duplicates get an index",
			builder:  ObjectBuilder{Method: model.MethodGet, MultipleBuildersExist: true, Idx: 2},
			expected: "get_2",
			ok:       true,
		},
		{
			name:    "nothing to derive from",
			builder: ObjectBuilder{},
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := tt.builder.ConstructorName()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestBuilderName(t *testing.T) {
	obj := ObjectBuilder{Object: "Pet"}
	assert.Equal(t, "PetBuilder", obj.Name())

	get := ObjectBuilder{Object: "Pet", Method: model.MethodGet}
	assert.Equal(t, "PetGetBuilder", get.Name())
	assert.Equal(t, "PetGetBuilderContainer", get.ContainerName())

	dup := ObjectBuilder{Object: "Pet", Method: model.MethodGet, Idx: 1}
	assert.Equal(t, "PetGetBuilder1", dup.Name())
}

func TestHasAtLeastOneField(t *testing.T) {
	unit := &ObjectBuilder{
		Object: "Pet",
		Fields: []model.ObjectField{{Name: "tag", TypePath: "String"}},
	}
	assert.False(t, unit.HasAtLeastOneField(), "optional fields alone need no storage in the builder")

	withParam := &ObjectBuilder{
		Object:      "Pet",
		LocalParams: []model.Parameter{{Name: "q", TypePath: "String", Presence: model.InQuery}},
	}
	assert.True(t, withParam.HasAtLeastOneField())

	withRequired := &ObjectBuilder{
		Object:       "Pet",
		BodyRequired: true,
		Fields:       []model.ObjectField{{Name: "id", TypePath: "i64", IsRequired: true}},
	}
	assert.True(t, withRequired.HasAtLeastOneField())
}

func TestNeedsContainer(t *testing.T) {
	t.Run("no required params or fields", func(t *testing.T) {
		b := &ObjectBuilder{
			Object:      "Pet",
			LocalParams: []model.Parameter{{Name: "q", TypePath: "String", Presence: model.InQuery}},
			Fields:      []model.ObjectField{{Name: "tag", TypePath: "String"}},
		}
		assert.False(t, b.NeedsContainer())
	})

	t.Run("one required param, zero required fields", func(t *testing.T) {
		b := &ObjectBuilder{
			Object:      "Pet",
			LocalParams: []model.Parameter{{Name: "id", TypePath: "String", Presence: model.InPath, Required: true}},
		}
		assert.True(t, b.NeedsContainer())
	})

	t.Run("required field with required body but no params", func(t *testing.T) {
		b := &ObjectBuilder{
			Object:       "Pet",
			BodyRequired: true,
			Fields:       []model.ObjectField{{Name: "id", TypePath: "i64", IsRequired: true}},
		}
		assert.False(t, b.NeedsContainer(), "a body-only builder can be reinterpreted directly")
	})

	t.Run("required body field coexisting with a param", func(t *testing.T) {
		b := &ObjectBuilder{
			Object:       "Pet",
			BodyRequired: true,
			Fields:       []model.ObjectField{{Name: "id", TypePath: "i64", IsRequired: true}},
			LocalParams:  []model.Parameter{{Name: "q", TypePath: "String", Presence: model.InQuery}},
		}
		assert.True(t, b.NeedsContainer())
	})

	t.Run("required global param", func(t *testing.T) {
		b := &ObjectBuilder{
			Object:       "Pet",
			GlobalParams: []model.Parameter{{Name: "key", TypePath: "String", Presence: model.InHeader, Required: true}},
		}
		assert.True(t, b.NeedsContainer())
	})
}
