package model

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v4"
)

// Load parses a resolved model document from YAML (or JSON, which is a YAML
// subset) and validates it.
func Load(data []byte) (*Api, error) {
	var api Api
	if err := yaml.Unmarshal(data, &api); err != nil {
		return nil, fmt.Errorf("model: failed to decode model document: %w", err)
	}
	if err := api.Validate(); err != nil {
		return nil, err
	}
	return &api, nil
}

// LoadFile reads and parses a resolved model document from a file.
func LoadFile(path string) (*Api, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: failed to read model document: %w", err)
	}
	return Load(data)
}

// Validate checks the model invariants that generation depends on: every
// object has a name, names are unique within the generated namespace, and
// every field and parameter carries a name and type path.
func (a *Api) Validate() error {
	seen := make(map[string]bool, len(a.Objects))
	for i, obj := range a.Objects {
		if obj == nil {
			return fmt.Errorf("model: object %d is null", i)
		}
		if obj.Name == "" {
			return fmt.Errorf("model: object %d has no name", i)
		}
		if seen[obj.Name] {
			return fmt.Errorf("model: duplicate object name %q", obj.Name)
		}
		seen[obj.Name] = true

		for j := range obj.Fields {
			f := &obj.Fields[j]
			if f.Name == "" {
				return fmt.Errorf("model: object %q field %d has no name", obj.Name, j)
			}
			if f.TypePath == "" {
				return fmt.Errorf("model: object %q field %q has no type path", obj.Name, f.Name)
			}
		}

		for path, ops := range obj.Paths {
			if err := validateParams(obj.Name, path, ops.Params); err != nil {
				return err
			}
			for _, op := range ops.Ops {
				if err := validateParams(obj.Name, path, op.Params); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateParams(object, path string, params []Parameter) error {
	for i := range params {
		p := &params[i]
		if p.Name == "" {
			return fmt.Errorf("model: object %q path %q parameter %d has no name", object, path, i)
		}
		if p.TypePath == "" {
			return fmt.Errorf("model: object %q path %q parameter %q has no type path", object, path, p.Name)
		}
	}
	return nil
}
