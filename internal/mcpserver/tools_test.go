package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreDoc = `
title: swagger petstore
objects:
  - name: Pet
    fields:
      - name: id
        typePath: i64
        isRequired: true
      - name: name
        typePath: String
        isRequired: true
    paths:
      /pets/{id}:
        params:
          - name: id
            typePath: i64
            in: path
            required: true
        ops:
          GET:
            id: getPetById
            response:
              typePath: self::Pet
`

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(petstoreDoc), 0o600))
	return path
}

func TestHandleGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "src")
	res, out, err := handleGenerate(context.Background(), nil, generateInput{
		ModelPath: writeModel(t),
		OutputDir: outDir,
	})
	require.NoError(t, err)
	require.Nil(t, res, "a nil result means success, the output struct carries the payload")

	assert.True(t, out.Success)
	assert.Equal(t, outDir, out.OutputDir)
	assert.Equal(t, 2, out.FileCount)
	assert.Equal(t, 1, out.GeneratedObjects)
	assert.Equal(t, 2, out.GeneratedBuilders)
	assert.Zero(t, out.WarningCount)

	content, err := os.ReadFile(filepath.Join(outDir, "pet.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "pub struct PetGetBuilder<Id>")

	_, err = os.Stat(filepath.Join(outDir, "lib.rs"))
	require.NoError(t, err)
}

func TestHandleGenerate_NoLibFile(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "src")
	res, out, err := handleGenerate(context.Background(), nil, generateInput{
		ModelPath: writeModel(t),
		OutputDir: outDir,
		NoLibFile: true,
	})
	require.NoError(t, err)
	require.Nil(t, res)
	assert.Equal(t, 1, out.FileCount)

	_, statErr := os.Stat(filepath.Join(outDir, "lib.rs"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestHandleGenerate_MissingInputs(t *testing.T) {
	res, _, err := handleGenerate(context.Background(), nil, generateInput{OutputDir: "out"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)

	res, _, err = handleGenerate(context.Background(), nil, generateInput{ModelPath: "model.yaml"})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestHandleGenerate_BadModelPath(t *testing.T) {
	res, _, err := handleGenerate(context.Background(), nil, generateInput{
		ModelPath: filepath.Join(t.TempDir(), "nope.yaml"),
		OutputDir: t.TempDir(),
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}

func TestHandleInspect(t *testing.T) {
	res, out, err := handleInspect(context.Background(), nil, inspectInput{
		ModelPath: writeModel(t),
	})
	require.NoError(t, err)
	require.Nil(t, res)

	assert.Equal(t, "swagger petstore", out.Title)
	require.Len(t, out.Objects, 1)

	pet := out.Objects[0]
	assert.Equal(t, "Pet", pet.Name)
	assert.Equal(t, 2, pet.Fields)
	require.Len(t, pet.Builders, 2)

	obj := pet.Builders[0]
	assert.Equal(t, "PetBuilder", obj.Name)
	assert.Equal(t, []string{"Id", "Name"}, obj.RequiredMarkers)
	assert.False(t, obj.NeedsContainer)

	get := pet.Builders[1]
	assert.Equal(t, "PetGetBuilder", get.Name)
	assert.Equal(t, "get_pet_by_id", get.Constructor)
	assert.Equal(t, "GET", get.Method)
	assert.Equal(t, "/pets/{id}", get.Path)
	assert.Equal(t, []string{"Id"}, get.RequiredMarkers)
	assert.True(t, get.NeedsContainer)
}

func TestHandleInspect_MissingPath(t *testing.T) {
	res, _, err := handleInspect(context.Background(), nil, inspectInput{})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.IsError)
}
