// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/astglsl/ast"
)

// Version represents a GLSL version.
type Version struct {
	Major uint8
	Minor uint8
	ES    bool // true for GLSL ES (OpenGL ES / WebGL)
}

// Common GLSL versions.
var (
	// Desktop versions with Vulkan GLSL support
	Version450 = Version{Major: 4, Minor: 50, ES: false} // OpenGL 4.5
	Version460 = Version{Major: 4, Minor: 60, ES: false} // OpenGL 4.6

	// OpenGL ES versions
	VersionES310 = Version{Major: 3, Minor: 10, ES: true} // ES 3.1
	VersionES320 = Version{Major: 3, Minor: 20, ES: true} // ES 3.2
)

// IsZero reports whether v is the zero Version, which disables the
// #version directive.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// String returns the version as a GLSL version directive value.
func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("%d%02d es", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// VersionNumber returns just the numeric version (e.g., "450", "310").
func (v Version) VersionNumber() string {
	return fmt.Sprintf("%d%02d", v.Major, v.Minor)
}

// ParseVersion parses "450", "460" or "320 es" style version strings.
func ParseVersion(s string) (Version, error) {
	var (
		number int
		suffix string
	)
	n, _ := fmt.Sscanf(s, "%d %s", &number, &suffix)
	if n == 0 || number < 100 || number > 999 || (suffix != "" && suffix != "es") {
		return Version{}, fmt.Errorf("invalid GLSL version %q", s)
	}
	return Version{
		Major: uint8(number / 100), //nolint:gosec // G115: bounded above
		Minor: uint8(number % 100), //nolint:gosec // G115: bounded above
		ES:    suffix == "es",
	}, nil
}

// WriterFlags control output formatting.
type WriterFlags uint32

const (
	// WriterFlagNone uses default settings.
	WriterFlagNone WriterFlags = 0

	// WriterFlagDeclareStructs emits a definition for every struct type
	// used by the translation unit at the top of the global segment.
	WriterFlagDeclareStructs WriterFlags = 1 << 0

	// WriterFlagDebugInfo adds a "// file:line" comment above each function.
	WriterFlagDebugInfo WriterFlags = 1 << 1
)

// Options configures GLSL code generation.
type Options struct {
	// LangVersion is the #version to declare. The zero Version emits no
	// directive and no extension lines.
	LangVersion Version

	// Indent is the indentation unit. Defaults to two spaces if empty.
	Indent string

	// WriterFlags control output formatting.
	WriterFlags WriterFlags

	// DiagnosticWriter, if set, receives each diagnostic line as it is
	// reported, in addition to TranslationInfo.Diagnostics.
	DiagnosticWriter io.Writer
}

// DefaultOptions returns sensible default options for GLSL generation.
func DefaultOptions() Options {
	return Options{
		Indent:      "  ",
		WriterFlags: WriterFlagDeclareStructs,
	}
}

// TranslationInfo contains metadata about the translation.
type TranslationInfo struct {
	// Diagnostics lists every resolution failure, in output order.
	Diagnostics []Diagnostic

	// FunctionNames lists the emitted function names in output order.
	FunctionNames []string

	// StructNames lists the struct definitions emitted, in output order.
	StructNames []string

	// RequiredExtensions lists the extensions declared by #extension
	// directives in the preamble. It is empty when no preamble is written.
	RequiredExtensions []string
}

// ErrNilRoot is returned by Compile when no tree is given.
var ErrNilRoot = errors.New("glsl: root node is nil")

// Compile translates a typed syntax tree into GLSL source.
//
// Unsupported types and malformed constants never fail the translation:
// each is replaced by a bracketed sentinel such as "<error-type>" and
// reported in TranslationInfo.Diagnostics. Only a nil root is an error.
//
// A Writer is created for every call, so Compile may be called from many
// goroutines at once as long as they do not share Options.DiagnosticWriter.
func Compile(root ast.Node, options Options) (string, TranslationInfo, error) {
	if root == nil {
		return "", TranslationInfo{}, ErrNilRoot
	}

	// Apply defaults for zero values
	if options.Indent == "" {
		options.Indent = "  "
	}

	w := newWriter(&options)
	w.writeUnit(root)

	info := TranslationInfo{
		Diagnostics:        w.diagnostics,
		FunctionNames:      w.functionNames,
		StructNames:        w.structNames(),
		RequiredExtensions: w.extensions,
	}
	return w.String(), info, nil
}
