// Package compiler turns template sources into precompiled JavaScript by
// driving an external Handlebars compiler.
package compiler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpequegn/hbsbundle/internal/fsutil"
	"github.com/jpequegn/hbsbundle/internal/models"
)

// Compiler is the external template compiler.
type Compiler interface {
	// Parse turns template source into a syntax tree.
	Parse(ctx context.Context, source string) (models.AST, error)

	// Precompile turns a syntax tree into portable JavaScript code text.
	Precompile(ctx context.Context, tree models.AST, options map[string]any) (string, error)
}

// SourceCompiler is implemented by compilers that can parse and precompile in
// one step. The Adapter uses it when no AST transform is configured.
type SourceCompiler interface {
	Compile(ctx context.Context, source string, options map[string]any) (string, error)
}

// CompileError reports a source file that could not be compiled. It aborts
// the whole run.
type CompileError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return "Handlebars failed to compile " + e.Path + "."
}

// Unwrap returns the underlying compiler or read error.
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Adapter applies the configured transforms around a Compiler.
type Adapter struct {
	compiler Compiler
	fs       fsutil.FS
	logger   *slog.Logger

	processContent  models.ContentProcessor
	processAST      models.ASTProcessor
	direct          SourceCompiler
	compilerOptions map[string]any
	wrapped         bool
	returnValue     bool
}

// NewAdapter creates an Adapter for one file group's options.
func NewAdapter(c Compiler, fs fsutil.FS, logger *slog.Logger, opts models.Options) *Adapter {
	a := &Adapter{
		compiler:        c,
		fs:              fs,
		logger:          logger,
		processContent:  opts.ProcessContent,
		processAST:      opts.ProcessAST,
		compilerOptions: opts.EffectiveCompilerOptions(),
		wrapped:         opts.Wrapped,
		returnValue:     opts.AMD && !opts.Namespace.Enabled(),
	}
	if a.processContent == nil {
		a.processContent = models.IdentityContent
	}
	if a.processAST == nil {
		a.processAST = models.IdentityAST
		a.direct, _ = c.(SourceCompiler)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Compile reads path and returns its compiled JavaScript expression.
// Any failure is logged and returned as a *CompileError.
func (a *Adapter) Compile(ctx context.Context, path string) (string, error) {
	compiled, err := a.compile(ctx, path)
	if err != nil {
		a.logger.Error("Template compilation failed", "path", path, "error", err)
		return "", &CompileError{Path: path, Err: err}
	}

	if a.wrapped {
		compiled = "Handlebars.template(" + compiled + ")"
	}

	// An AMD module without a namespace evaluates to the template itself.
	if a.returnValue {
		compiled = "return " + compiled
	}

	return compiled, nil
}

func (a *Adapter) compile(ctx context.Context, path string) (string, error) {
	src, err := a.fs.Read(path)
	if err != nil {
		return "", err
	}
	src = a.processContent.ProcessContent(src)

	if a.direct != nil {
		code, err := a.direct.Compile(ctx, src, a.compilerOptions)
		if err != nil {
			return "", fmt.Errorf("compile: %w", err)
		}
		return code, nil
	}

	tree, err := a.compiler.Parse(ctx, src)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	tree = a.processAST.ProcessAST(tree)

	code, err := a.compiler.Precompile(ctx, tree, a.compilerOptions)
	if err != nil {
		return "", fmt.Errorf("precompile: %w", err)
	}
	return code, nil
}
