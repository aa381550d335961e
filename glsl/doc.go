// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl turns a typed shader syntax tree back into GLSL source.
//
// Every arithmetic type is spelled with its explicit-width name from
// GL_EXT_shader_explicit_arithmetic_types: float32_t, i32vec3, f64mat2x4.
// The output is a global segment (struct definitions and module-scope
// objects), one blank line, then the function definitions.
//
// # Basic Usage
//
//	source, info, err := glsl.Compile(root, glsl.DefaultOptions())
//	for _, d := range info.Diagnostics {
//	    fmt.Fprintln(os.Stderr, d)
//	}
//
// # Failures
//
// A type or constant that has no GLSL spelling does not stop the
// translation. The offending slot is filled with a bracketed sentinel
// such as <error-type> or <error-const>, and one Diagnostic is recorded
// for it. The document always has balanced braces and parentheses.
//
// # Temporaries
//
// Function-local variables are declared at the top of their function,
// once per variable identity, in the order the body first mentions them.
// Temporaries and parameters are named "<name>_<id>" so that two
// variables with the same source name never clash.
//
// # Resource Limits
//
// Translation is a recursive descent over the tree. Recursion depth equals
// the nesting depth of the input, so a pathologically deep expression can
// exhaust the goroutine stack. Trees produced by a front end from real
// shader source stay far below that limit.
//
// # Concurrency
//
// Compile creates a fresh Writer per call and shares no mutable state, so
// independent trees can be translated in parallel.
package glsl
