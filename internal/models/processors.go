package models

// AST is the compiler's syntax tree, decoded from its JSON form.
type AST = map[string]any

// ContentProcessor transforms raw template source before it is parsed.
type ContentProcessor interface {
	ProcessContent(content string) string
}

// ASTProcessor transforms the parsed syntax tree before precompilation.
type ASTProcessor interface {
	ProcessAST(tree AST) AST
}

// NameProcessor turns a source path into a registration name.
type NameProcessor interface {
	ProcessName(path string) string
}

// ContentFunc adapts a plain function to ContentProcessor.
type ContentFunc func(content string) string

// ProcessContent calls f(content).
func (f ContentFunc) ProcessContent(content string) string { return f(content) }

// ASTFunc adapts a plain function to ASTProcessor.
type ASTFunc func(tree AST) AST

// ProcessAST calls f(tree).
func (f ASTFunc) ProcessAST(tree AST) AST { return f(tree) }

// NameFunc adapts a plain function to NameProcessor.
type NameFunc func(path string) string

// ProcessName calls f(path).
func (f NameFunc) ProcessName(path string) string { return f(path) }

// IdentityContent returns content unchanged.
var IdentityContent ContentProcessor = ContentFunc(func(content string) string { return content })

// IdentityAST returns the tree unchanged.
var IdentityAST ASTProcessor = ASTFunc(func(tree AST) AST { return tree })

// IdentityName returns the path unchanged.
var IdentityName NameProcessor = NameFunc(func(path string) string { return path })
