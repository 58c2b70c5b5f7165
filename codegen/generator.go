package codegen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/oxidegen/oxidegen"
	"github.com/oxidegen/oxidegen/internal/issues"
	"github.com/oxidegen/oxidegen/internal/naming"
	"github.com/oxidegen/oxidegen/internal/severity"
	"github.com/oxidegen/oxidegen/model"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates a fallback policy applied to an ambiguous model state
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates model states that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name relative to the crate source root
	// (e.g. "pet.rs", "io/petstore/order.rs")
	Name string
	// Content is the generated Rust source code
	Content []byte
}

// GenerateResult contains the results of generating code from a resolved model
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// Title is the API title from the model
	Title string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// GeneratedObjects is the count of object structs generated
	GeneratedObjects int
	// GeneratedBuilders is the count of builder structs generated
	GeneratedBuilders int
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles Rust code generation from a resolved Object Model
type Generator struct {
	// HelperModulePrefix addresses generated helper modules from the crate
	// root. Default: "crate::"
	HelperModulePrefix string

	// EmitLibFile emits a lib.rs with the crate doc banner and top-level
	// module declarations. Default: true
	EmitLibFile bool

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		HelperModulePrefix: "crate::",
		EmitLibFile:        true,
		StrictMode:         false,
		IncludeInfo:        true,
	}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	modelPath *string
	api       *model.Api

	// Configuration options
	helperModulePrefix string
	emitLibFile        bool
	strictMode         bool
	includeInfo        bool
}

// GenerateWithOptions generates Rust code from a resolved model using
// functional options. This combines input source selection and configuration
// in a single call.
//
// Example:
//
//	result, err := codegen.GenerateWithOptions(
//	    codegen.WithModelPath("model.yaml"),
//	    codegen.WithHelperModulePrefix("crate::"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codegen: invalid options: %w", err)
	}

	g := &Generator{
		HelperModulePrefix: cfg.helperModulePrefix,
		EmitLibFile:        cfg.emitLibFile,
		StrictMode:         cfg.strictMode,
		IncludeInfo:        cfg.includeInfo,
	}

	if cfg.modelPath != nil {
		return g.Generate(*cfg.modelPath)
	}
	if cfg.api != nil {
		return g.GenerateModel(cfg.api)
	}

	// Should never reach here due to validation in applyOptions
	return nil, fmt.Errorf("codegen: no input source specified")
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		helperModulePrefix: "crate::",
		emitLibFile:        true,
		strictMode:         false,
		includeInfo:        true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sourceCount := 0
	if cfg.modelPath != nil {
		sourceCount++
	}
	if cfg.api != nil {
		sourceCount++
	}

	if sourceCount == 0 {
		return nil, fmt.Errorf("codegen: must specify an input source (use WithModelPath or WithModel)")
	}
	if sourceCount > 1 {
		return nil, fmt.Errorf("codegen: must specify exactly one input source")
	}

	return cfg, nil
}

// WithModelPath specifies a resolved model document file as the input source
func WithModelPath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.modelPath = &path
		return nil
	}
}

// WithModel specifies an in-memory resolved model as the input source
func WithModel(api *model.Api) Option {
	return func(cfg *generateConfig) error {
		if api == nil {
			return fmt.Errorf("codegen: model cannot be nil")
		}
		cfg.api = api
		return nil
	}
}

// WithHelperModulePrefix sets the prefix addressing generated helper modules
// from the crate root. Default: "crate::"
func WithHelperModulePrefix(prefix string) Option {
	return func(cfg *generateConfig) error {
		if prefix == "" {
			return fmt.Errorf("codegen: helper module prefix cannot be empty")
		}
		cfg.helperModulePrefix = prefix
		return nil
	}
}

// WithLibFile enables or disables lib.rs emission
// Default: true
func WithLibFile(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.emitLibFile = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any issues)
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// Generate generates Rust code from a resolved model document file
func (g *Generator) Generate(modelPath string) (*GenerateResult, error) {
	api, err := model.LoadFile(modelPath)
	if err != nil {
		return nil, fmt.Errorf("codegen: failed to load model: %w", err)
	}
	return g.GenerateModel(api)
}

// GenerateModel generates Rust code from an already-loaded resolved model.
// The model is treated as read-only for the duration of the call.
func (g *Generator) GenerateModel(api *model.Api) (*GenerateResult, error) {
	startTime := time.Now()

	if err := api.Validate(); err != nil {
		return nil, fmt.Errorf("codegen: invalid model: %w", err)
	}

	result := &GenerateResult{
		Files:  make([]GeneratedFile, 0, len(api.Objects)+1),
		Title:  api.Title,
		Issues: make([]GenerateIssue, 0),
	}

	r := &Renderer{HelperModulePrefix: g.HelperModulePrefix}
	for _, obj := range api.Objects {
		var buf bytes.Buffer
		if err := r.WriteObject(&buf, obj); err != nil {
			return nil, fmt.Errorf("codegen: failed to render object %s: %w", obj.Name, err)
		}

		builders := r.Builders(obj)
		for i := range builders {
			b := &builders[i]
			buf.WriteByte('\n')
			if err := r.WriteBuilder(&buf, b); err != nil {
				return nil, fmt.Errorf("codegen: failed to render builder %s: %w", b.Name(), err)
			}
			g.diagnoseBuilder(result, b)
			result.GeneratedBuilders++
		}

		result.Files = append(result.Files, GeneratedFile{
			Name:    objectFileName(obj),
			Content: buf.Bytes(),
		})
		result.GeneratedObjects++
	}

	if g.EmitLibFile {
		result.Files = append(result.Files, GeneratedFile{
			Name:    "lib.rs",
			Content: renderLibFile(api, result.Files),
		})
	}

	result.GenerateTime = time.Since(startTime)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	if g.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("codegen: generation failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// diagnoseBuilder surfaces the fixed fallback policies as issues: dropped
// type-mismatched collisions and constructor names synthesized without an
// operation ID.
func (g *Generator) diagnoseBuilder(result *GenerateResult, b *ObjectBuilder) {
	path := b.Object
	if b.Method != "" {
		path = fmt.Sprintf("%s.%s.%s", b.Object, b.RelPath, b.Method)
	}

	_, collisions := b.unifyFields()
	for _, c := range collisions {
		result.Issues = append(result.Issues, GenerateIssue{
			Path:     path,
			Message:  fmt.Sprintf("field %q collides with a parameter of a different type; the field was dropped", c.Name),
			Severity: SeverityWarning,
			Context:  fmt.Sprintf("kept %s, dropped %s", c.KeptTy, c.DroppedTy),
		})
	}

	if b.Method != "" && b.OpID == "" && b.MultipleBuildersExist {
		sev := SeverityInfo
		msg := fmt.Sprintf("operation has no ID; constructor named after the HTTP method %s", b.Method)
		if b.Idx > 0 {
			sev = SeverityWarning
			msg = fmt.Sprintf("duplicate %s operations with no ID; constructor name synthesized with index %d", b.Method, b.Idx)
		}
		result.Issues = append(result.Issues, GenerateIssue{
			Path:     path,
			Message:  msg,
			Severity: sev,
		})
	}
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

// objectFileName maps an object's dotted namespace path to a crate-relative
// file name, snake-casing each segment. Objects without a path land next to
// lib.rs under their own name.
func objectFileName(obj *model.ApiObject) string {
	if obj.Path == "" {
		return naming.ToSnakeCase(obj.Name) + ".rs"
	}
	segments := strings.Split(obj.Path, ".")
	for i, seg := range segments {
		segments[i] = naming.ToSnakeCase(seg)
	}
	return strings.Join(segments, "/") + ".rs"
}

// renderLibFile renders the crate root: a doc banner with the API title and
// one pub mod declaration per top-level module.
func renderLibFile(api *model.Api, files []GeneratedFile) []byte {
	var buf bytes.Buffer
	title := "API"
	if api.Title != "" {
		title = naming.ToTitleCase(api.Title)
	}
	fmt.Fprintf(&buf, "//! Generated client for %s.\n//!\n", title)
	fmt.Fprintf(&buf, "//! Generated by oxidegen %s. DO NOT EDIT.\n", oxidegen.Version())

	mods := make(map[string]bool)
	for _, f := range files {
		seg := f.Name
		if i := strings.IndexByte(seg, '/'); i >= 0 {
			seg = seg[:i]
		} else {
			seg = strings.TrimSuffix(seg, ".rs")
		}
		mods[seg] = true
	}
	names := make([]string, 0, len(mods))
	for name := range mods {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > 0 {
		buf.WriteByte('\n')
	}
	for _, name := range names {
		fmt.Fprintf(&buf, "pub mod %s;\n", name)
	}
	return buf.Bytes()
}
