// Package astglsl translates typed shader syntax trees back into GLSL.
//
// The input is the tree a shader front end produces after parsing and type
// checking: function definitions, a global object list, and statements
// whose every node carries a resolved type. The output is GLSL source that
// spells every arithmetic type with its explicit-width name (float32_t,
// i32vec3, f64mat4x4).
//
// Example usage:
//
//	root, err := ast.DecodeJSON(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	source, diags, err := astglsl.Translate(root, astglsl.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    fmt.Fprintln(os.Stderr, d)
//	}
//
// Or in one step from the JSON form:
//
//	source, diags, err := astglsl.TranslateJSON(data, astglsl.DefaultOptions())
//
// For lower-level control use the ast and glsl packages directly.
package astglsl

import (
	"errors"
	"fmt"

	"github.com/gogpu/astglsl/ast"
	"github.com/gogpu/astglsl/glsl"
)

// CompileOptions configures translation.
type CompileOptions struct {
	// GLSL configures the code generator.
	GLSL glsl.Options

	// Validate enables structural validation before code generation.
	// Without it, structural problems degrade to sentinels and diagnostics.
	Validate bool
}

// DefaultOptions returns sensible default options.
func DefaultOptions() CompileOptions {
	return CompileOptions{
		GLSL:     glsl.DefaultOptions(),
		Validate: false,
	}
}

// Translate generates GLSL for a tree.
//
// The pipeline is:
//  1. Validate the tree (if enabled)
//  2. Generate GLSL, collecting diagnostics for every slot that could
//     not be resolved
//
// Diagnostics never make Translate fail. An error is returned only for a
// nil root or, with validation enabled, a structurally invalid tree; the
// latter joins every validation error.
func Translate(root ast.Node, opts CompileOptions) (string, []glsl.Diagnostic, error) {
	if root == nil {
		return "", nil, glsl.ErrNilRoot
	}

	// Validate tree if requested
	if opts.Validate {
		validationErrors, err := Validate(root)
		if err != nil {
			return "", nil, fmt.Errorf("validation error: %w", err)
		}
		if len(validationErrors) > 0 {
			errs := make([]error, len(validationErrors))
			for i := range validationErrors {
				errs[i] = &validationErrors[i]
			}
			return "", nil, fmt.Errorf("validation failed with %d errors: %w", len(errs), errors.Join(errs...))
		}
	}

	source, info, err := glsl.Compile(root, opts.GLSL)
	if err != nil {
		return "", nil, fmt.Errorf("GLSL generation error: %w", err)
	}
	return source, info.Diagnostics, nil
}

// TranslateJSON decodes a tree from its JSON form and translates it.
func TranslateJSON(data []byte, opts CompileOptions) (string, []glsl.Diagnostic, error) {
	root, err := Decode(data)
	if err != nil {
		return "", nil, err
	}
	return Translate(root, opts)
}

// Decode decodes a tree from its JSON form.
func Decode(data []byte) (ast.Node, error) {
	root, err := ast.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return root, nil
}

// Validate checks a tree for the structural preconditions of translation.
//
// Validation checks include:
//   - Struct field indices within the field list of the accessed struct
//   - Constant buffers long enough for their type
//   - Function definitions shaped as a parameter list plus a body
//   - Global object lists and parameter lists holding only symbols
//   - Case labels inside switch bodies, break and continue inside loops
//   - Array dimensions and symbol identities that are not negative
//
// Returns a slice of validation errors. If the slice is empty, validation passed.
func Validate(root ast.Node) ([]ast.ValidationError, error) {
	return ast.Validate(root)
}
