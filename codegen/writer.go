package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oxidegen/oxidegen/internal/fileutil"
)

// WriteFiles writes all generated files to the specified output directory,
// creating subdirectories for nested modules as needed.
func (r *GenerateResult) WriteFiles(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, file := range r.Files {
		if strings.Contains(file.Name, "..") || filepath.IsAbs(file.Name) {
			return fmt.Errorf("invalid file name %q: must be relative to the output directory", file.Name)
		}
		filePath := filepath.Join(outputDir, filepath.FromSlash(file.Name))
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", file.Name, err)
		}
		if err := os.WriteFile(filePath, file.Content, fileutil.ReadableByAll); err != nil {
			return fmt.Errorf("failed to write file %s: %w", file.Name, err)
		}
	}

	return nil
}

// WriteFile writes a single generated file to the specified path.
func (f *GeneratedFile) WriteFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, f.Content, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
