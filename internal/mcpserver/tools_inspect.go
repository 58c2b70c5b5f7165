package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oxidegen/oxidegen/codegen"
	"github.com/oxidegen/oxidegen/internal/naming"
	"github.com/oxidegen/oxidegen/model"
)

type inspectInput struct {
	ModelPath          string `json:"model_path"                     jsonschema:"Path to the resolved model document (YAML)"`
	HelperModulePrefix string `json:"helper_module_prefix,omitempty" jsonschema:"Prefix addressing generated helper modules (default: crate::)"`
}

type builderSummary struct {
	Name            string   `json:"name"`
	Constructor     string   `json:"constructor,omitempty"`
	Method          string   `json:"method,omitempty"`
	Path            string   `json:"path,omitempty"`
	RequiredMarkers []string `json:"required_markers,omitempty"`
	NeedsAny        bool     `json:"needs_any,omitempty"`
	NeedsContainer  bool     `json:"needs_container,omitempty"`
	Deprecated      bool     `json:"deprecated,omitempty"`
}

type objectSummary struct {
	Name     string           `json:"name"`
	Path     string           `json:"path,omitempty"`
	Fields   int              `json:"fields"`
	Builders []builderSummary `json:"builders"`
}

type inspectOutput struct {
	Title   string          `json:"title,omitempty"`
	Objects []objectSummary `json:"objects"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	if input.ModelPath == "" {
		return errResult(fmt.Errorf("model_path is required")), inspectOutput{}, nil
	}

	api, err := model.LoadFile(input.ModelPath)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	prefix := input.HelperModulePrefix
	if prefix == "" {
		prefix = "crate::"
	}
	r := &codegen.Renderer{HelperModulePrefix: prefix}

	output := inspectOutput{Title: api.Title}
	output.Objects = make([]objectSummary, 0, len(api.Objects))
	for _, obj := range api.Objects {
		summary := objectSummary{
			Name:   obj.Name,
			Path:   obj.Path,
			Fields: len(obj.Fields),
		}
		for _, b := range r.Builders(obj) {
			bs := builderSummary{
				Name:           b.Name(),
				Method:         string(b.Method),
				Path:           b.RelPath,
				NeedsAny:       b.NeedsAny,
				NeedsContainer: b.NeedsContainer(),
				Deprecated:     b.Deprecated,
			}
			if ctor, ok := b.ConstructorName(); ok {
				bs.Constructor = ctor
			}
			for _, f := range b.StructFields() {
				if f.Prop.IsRequired() {
					bs.RequiredMarkers = append(bs.RequiredMarkers, naming.ToPascalCase(f.Name))
				}
			}
			summary.Builders = append(summary.Builders, bs)
		}
		output.Objects = append(output.Objects, summary)
	}

	return nil, output, nil
}
