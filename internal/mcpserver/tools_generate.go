package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oxidegen/oxidegen/codegen"
)

type generateInput struct {
	ModelPath          string `json:"model_path"                     jsonschema:"Path to the resolved model document (YAML)"`
	OutputDir          string `json:"output_dir"                     jsonschema:"Directory to write generated Rust sources to"`
	HelperModulePrefix string `json:"helper_module_prefix,omitempty" jsonschema:"Prefix addressing generated helper modules (default: crate::)"`
	NoLibFile          bool   `json:"no_lib_file,omitempty"          jsonschema:"Skip lib.rs emission"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success           bool                `json:"success"`
	OutputDir         string              `json:"output_dir"`
	FileCount         int                 `json:"file_count"`
	Files             []generatedFileInfo `json:"files"`
	GeneratedObjects  int                 `json:"generated_objects"`
	GeneratedBuilders int                 `json:"generated_builders"`
	WarningCount      int                 `json:"warning_count"`
	Issues            []string            `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.ModelPath == "" {
		return errResult(fmt.Errorf("model_path is required")), generateOutput{}, nil
	}
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	opts := []codegen.Option{
		codegen.WithModelPath(input.ModelPath),
		codegen.WithLibFile(!input.NoLibFile),
	}
	if input.HelperModulePrefix != "" {
		opts = append(opts, codegen.WithHelperModulePrefix(input.HelperModulePrefix))
	}

	result, err := codegen.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:           result.Success,
		OutputDir:         input.OutputDir,
		FileCount:         len(result.Files),
		GeneratedObjects:  result.GeneratedObjects,
		GeneratedBuilders: result.GeneratedBuilders,
		WarningCount:      result.WarningCount,
	}
	output.Files = make([]generatedFileInfo, 0, len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{Name: f.Name, Size: len(f.Content)})
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, issue.String())
	}

	return nil, output, nil
}
