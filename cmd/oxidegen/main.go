package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/oxidegen/oxidegen"
	"github.com/oxidegen/oxidegen/codegen"
	"github.com/oxidegen/oxidegen/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oxidegen v%s\n", oxidegen.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`oxidegen - Rust API-client generation from resolved models

Usage:
  oxidegen <command> [options]

Commands:
  generate    Generate Rust sources from a resolved model document
  mcp         Run the MCP server over stdio
  version     Print the oxidegen version
  help        Print this help

Generate options:
  -model string    Path to the resolved model document (YAML) (required)
  -out string      Output directory for generated sources (required)
  -prefix string   Helper module prefix (default "crate::")
  -no-lib          Skip lib.rs emission
  -strict          Fail on any generation warnings
  -quiet           Suppress informational issues in the summary`)
}

func handleGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	modelPath := fs.String("model", "", "path to the resolved model document")
	outDir := fs.String("out", "", "output directory")
	prefix := fs.String("prefix", "crate::", "helper module prefix")
	noLib := fs.Bool("no-lib", false, "skip lib.rs emission")
	strict := fs.Bool("strict", false, "fail on any generation warnings")
	quiet := fs.Bool("quiet", false, "suppress informational issues")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *modelPath == "" {
		return fmt.Errorf("generate: -model is required")
	}
	if *outDir == "" {
		return fmt.Errorf("generate: -out is required")
	}

	result, err := codegen.GenerateWithOptions(
		codegen.WithModelPath(*modelPath),
		codegen.WithHelperModulePrefix(*prefix),
		codegen.WithLibFile(!*noLib),
		codegen.WithStrictMode(*strict),
		codegen.WithIncludeInfo(!*quiet),
	)
	if err != nil {
		return err
	}

	if err := result.WriteFiles(*outDir); err != nil {
		return err
	}

	fmt.Printf("Generated %d object(s), %d builder(s) in %d file(s) to %s (%s)\n",
		result.GeneratedObjects, result.GeneratedBuilders, len(result.Files), *outDir, result.GenerateTime)
	for _, issue := range result.Issues {
		fmt.Println(issue.String())
	}
	if result.WarningCount > 0 {
		fmt.Printf("%d warning(s)\n", result.WarningCount)
	}
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return mcpserver.Run(ctx)
}
