// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"fmt"

	"github.com/gogpu/astglsl/ast"
)

// ErrorKind categorizes translation failures.
type ErrorKind uint8

const (
	// ErrUnsupportedOpaqueCategory indicates a sampler, block, ray-tracing,
	// string or SPIR-V intrinsic type where only a value type is legal.
	ErrUnsupportedOpaqueCategory ErrorKind = iota

	// ErrUnsupportedVoidUsage indicates void outside a return position.
	ErrUnsupportedVoidUsage

	// ErrUnsupportedUnsizedArray indicates an unsized array where a fixed
	// size is required.
	ErrUnsupportedUnsizedArray

	// ErrUnsupportedStorageQualifier indicates a ray payload, callable data
	// or SPIR-V storage class qualifier.
	ErrUnsupportedStorageQualifier

	// ErrUnsupportedSemanticBinding indicates a semantic name on a
	// parameter or global object.
	ErrUnsupportedSemanticBinding

	// ErrMalformedConstantDiscriminant indicates a constant scalar whose
	// stored kind is not numeric or boolean.
	ErrMalformedConstantDiscriminant

	// ErrUnsupportedShape indicates a vector or matrix shape with no name,
	// such as an integer matrix or a 5-component vector.
	ErrUnsupportedShape

	// ErrConstantUnderflow indicates a constant buffer shorter than its
	// type requires.
	ErrConstantUnderflow

	// ErrFieldIndexOutOfRange indicates a struct field access whose index
	// is not a valid field of the left operand.
	ErrFieldIndexOutOfRange

	// ErrUnsupportedNode indicates a node kind in a position it cannot
	// occupy, such as a loop inside an expression.
	ErrUnsupportedNode
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedOpaqueCategory:
		return "UnsupportedOpaqueCategory"
	case ErrUnsupportedVoidUsage:
		return "UnsupportedVoidUsage"
	case ErrUnsupportedUnsizedArray:
		return "UnsupportedUnsizedArray"
	case ErrUnsupportedStorageQualifier:
		return "UnsupportedStorageQualifier"
	case ErrUnsupportedSemanticBinding:
		return "UnsupportedSemanticBinding"
	case ErrMalformedConstantDiscriminant:
		return "MalformedConstantDiscriminant"
	case ErrUnsupportedShape:
		return "UnsupportedShape"
	case ErrConstantUnderflow:
		return "ConstantUnderflow"
	case ErrFieldIndexOutOfRange:
		return "FieldIndexOutOfRange"
	case ErrUnsupportedNode:
		return "UnsupportedNode"
	default:
		return "Unknown"
	}
}

// Error is a resolution failure. It never stops a translation; the engine
// turns it into a Diagnostic and a sentinel in the output.
type Error struct {
	// Kind categorizes the error.
	Kind ErrorKind

	// Message provides details about the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError creates a new error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func newErrorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is, or wraps, an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Diagnostic is one reported failure with its source location.
type Diagnostic struct {
	Kind ErrorKind
	Loc  ast.Loc

	// Message describes what failed, including the rendered type.
	Message string
}

// String renders the diagnostic as "ERROR: <file>:<line> <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("ERROR: %s %s", d.Loc, d.Message)
}

// splitErrors flattens an errors.Join tree into its *Error leaves.
func splitErrors(err error) []*Error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*Error
		for _, e := range joined.Unwrap() {
			out = append(out, splitErrors(e)...)
		}
		return out
	}
	var e *Error
	if errors.As(err, &e) {
		return []*Error{e}
	}
	return []*Error{{Kind: ErrUnsupportedNode, Message: err.Error()}}
}
