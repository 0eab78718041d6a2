package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jpequegn/hbsbundle/internal/models"
)

// Defaults for NodeCompiler.
const (
	DefaultNodeBinary       = "node"
	DefaultHandlebarsModule = "handlebars"
)

// NodeCompiler runs handlebars.js through a node process. Each call starts a
// fresh process and exchanges one JSON request.
type NodeCompiler struct {
	binary string
	script string
	dir    string
}

// NodeOption configures a NodeCompiler.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	binary string
	module string
	dir    string
}

// WithNodeBinary sets the node executable to run.
func WithNodeBinary(path string) NodeOption {
	return func(cfg *nodeConfig) {
		if p := strings.TrimSpace(path); p != "" {
			cfg.binary = p
		}
	}
}

// WithHandlebarsModule sets the id passed to require() for handlebars.
func WithHandlebarsModule(module string) NodeOption {
	return func(cfg *nodeConfig) {
		if m := strings.TrimSpace(module); m != "" {
			cfg.module = m
		}
	}
}

// WithDir sets the working directory of the node process. require() resolves
// the handlebars module from there, so it should be the task file directory.
func WithDir(dir string) NodeOption {
	return func(cfg *nodeConfig) {
		cfg.dir = dir
	}
}

// NewNodeCompiler creates a NodeCompiler.
func NewNodeCompiler(opts ...NodeOption) (*NodeCompiler, error) {
	cfg := nodeConfig{binary: DefaultNodeBinary, module: DefaultHandlebarsModule}
	for _, opt := range opts {
		opt(&cfg)
	}

	script, err := renderBridge(cfg.module)
	if err != nil {
		return nil, err
	}
	return &NodeCompiler{binary: cfg.binary, script: script, dir: cfg.dir}, nil
}

type bridgeRequest struct {
	Op      string         `json:"op"`
	Source  string         `json:"source,omitempty"`
	AST     models.AST     `json:"ast,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

// Parse implements Compiler.
func (n *NodeCompiler) Parse(ctx context.Context, source string) (models.AST, error) {
	out, err := n.call(ctx, bridgeRequest{Op: "parse", Source: source})
	if err != nil {
		return nil, err
	}

	var tree models.AST
	if err := json.Unmarshal(out, &tree); err != nil {
		return nil, fmt.Errorf("invalid syntax tree from handlebars: %w", err)
	}
	return tree, nil
}

// Compile implements SourceCompiler. The source is parsed and precompiled by a
// single node process.
func (n *NodeCompiler) Compile(ctx context.Context, source string, options map[string]any) (string, error) {
	out, err := n.call(ctx, bridgeRequest{Op: "compile", Source: source, Options: options})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Precompile implements Compiler.
func (n *NodeCompiler) Precompile(ctx context.Context, tree models.AST, options map[string]any) (string, error) {
	out, err := n.call(ctx, bridgeRequest{Op: "precompile", AST: tree, Options: options})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (n *NodeCompiler) call(ctx context.Context, req bridgeRequest) ([]byte, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	cmd := exec.CommandContext(ctx, n.binary, "-e", n.script)
	cmd.Dir = n.dir
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && stderr.Len() > 0 {
			return nil, errors.New(strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("failed to run %s: %w", n.binary, err)
	}
	return stdout.Bytes(), nil
}
