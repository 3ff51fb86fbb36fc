package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"gallery-compiler/internal/gallery"
	"gallery-compiler/internal/native"
	"gallery-compiler/internal/plan"
	"gallery-compiler/internal/web"
)

// Output is the result of a compile: web.Instructions for TargetWeb or
// *native.Descriptor for TargetNative. Len is the number of rendered images.
type Output interface {
	Len() int
}

// Config holds configuration for the compiler.
type Config struct {
	// Web configures the web adapter.
	Web web.Options
	// Native configures the native adapter.
	Native native.Options
	// Concurrency bounds CompileAll workers (0 = one per job).
	Concurrency int
}

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return Config{
		Web:         web.DefaultOptions(),
		Native:      native.DefaultOptions(),
		Concurrency: 4,
	}
}

// Compiler turns raw gallery records into target output.
type Compiler struct {
	config Config
	web    *web.Adapter
	native *native.Adapter
	logger *slog.Logger
}

// Option customizes a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a new Compiler.
func New(config Config, opts ...Option) *Compiler {
	c := &Compiler{
		config: config,
		web:    web.NewAdapter(config.Web),
		native: native.NewAdapter(config.Native),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile validates raw, builds the render plan once and hands it to the
// adapter for target. A validation failure is returned unchanged as a
// *gallery.ValidationError, with a nil Output.
func (c *Compiler) Compile(raw []gallery.Record, target Target) (Output, error) {
	return c.compile(raw, target, 0)
}

// CompileDocument compiles a decoded document. The document's layout column
// hint, when set, overrides the configured native column count.
func (c *Compiler) CompileDocument(doc *gallery.Document, target Target) (Output, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", gallery.ErrInvalidDocument)
	}

	return c.compile(doc.Images, target, doc.Layout.Columns)
}

// Plan validates raw and returns the intermediate render plan.
func (c *Compiler) Plan(raw []gallery.Record) (plan.RenderPlan, error) {
	spec, err := gallery.Validate(raw)
	if err != nil {
		return plan.RenderPlan{}, err
	}

	return plan.Build(spec), nil
}

func (c *Compiler) compile(raw []gallery.Record, target Target, columns int) (Output, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}

	p, err := c.Plan(raw)
	if err != nil {
		c.logger.Debug("gallery rejected", "target", target, "error", err)
		return nil, err
	}

	c.logger.Debug("render plan built", "target", target, "slots", p.Len())

	switch target {
	case TargetWeb:
		return c.web.Render(p), nil
	case TargetNative:
		return c.native.RenderColumns(p, columns), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
}
