// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/astglsl/ast"
)

// explicitArithmeticTypes is the extension that provides the float32_t,
// i8vec4 and f64mat3x4 style names used for every arithmetic type.
const explicitArithmeticTypes = "GL_EXT_shader_explicit_arithmetic_types"

// phase is the emission state of the writer. Exactly one phase is active
// at a time; symbols render differently in each.
type phase uint8

const (
	phaseDefault phase = iota
	phaseEmittingParameters
	phaseEmittingGlobals
	phaseCollectingTemporaries
)

func (p phase) String() string {
	switch p {
	case phaseDefault:
		return "default"
	case phaseEmittingParameters:
		return "emitting parameters"
	case phaseEmittingGlobals:
		return "emitting globals"
	case phaseCollectingTemporaries:
		return "collecting temporaries"
	default:
		return "phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// Writer generates GLSL source code from a syntax tree.
//
// A Writer holds all mutable state of exactly one translation and is not
// safe for concurrent use.
type Writer struct {
	options *Options

	// Output segments: global declarations and function definitions.
	head strings.Builder
	body strings.Builder

	// Current indentation level
	indent int

	phase phase

	// Temporaries already declared in the current function, by identity.
	temps map[int64]struct{}

	// Struct types to define, in dependency order.
	structs *ast.StructRegistry

	// Output tracking
	diagnostics   []Diagnostic
	functionNames []string
	extensions    []string

	doc string
}

// newWriter creates a new GLSL writer.
func newWriter(options *Options) *Writer {
	return &Writer{
		options: options,
		temps:   make(map[int64]struct{}),
		structs: ast.NewStructRegistry(),
	}
}

// String returns the generated GLSL source code.
func (w *Writer) String() string {
	return w.doc
}

// writeUnit translates the whole tree and assembles the document.
func (w *Writer) writeUnit(root ast.Node) {
	w.writeTopLevel(root)
	w.finish()
}

// writeTopLevel dispatches the children of the root sequence. Function
// definitions and global object lists are handled here; anything else
// is emitted as a statement into the function segment.
func (w *Writer) writeTopLevel(n ast.Node) {
	agg, ok := n.(*ast.Aggregate)
	if !ok {
		w.writeStatement(&w.body, n)
		return
	}
	switch agg.Op {
	case ast.OpSequence, ast.OpNull:
		for _, child := range agg.Children {
			w.writeTopLevel(child)
		}
	case ast.OpFunction:
		w.writeFunction(agg)
	case ast.OpLinkerObjects:
		w.writeGlobals(agg)
	default:
		w.writeStatement(&w.body, n)
	}
}

// finish concatenates the preamble, struct definitions, the global
// segment, one blank line and the function segment.
func (w *Writer) finish() {
	var doc strings.Builder
	if !w.options.LangVersion.IsZero() {
		writeLine(&doc, "", "#version "+w.options.LangVersion.String())
		writeLine(&doc, "", "#extension "+explicitArithmeticTypes+" : require")
		w.extensions = append(w.extensions, explicitArithmeticTypes)
		doc.WriteByte('\n')
	}
	if w.options.WriterFlags&WriterFlagDeclareStructs != 0 {
		w.writeStructDefinitions(&doc)
	}
	doc.WriteString(w.head.String())
	doc.WriteByte('\n')
	doc.WriteString(w.body.String())
	w.doc = doc.String()
}

// writeStructDefinitions defines every registered struct, fields first.
func (w *Writer) writeStructDefinitions(out *strings.Builder) {
	for _, st := range w.structs.Structs() {
		writeLine(out, "", "struct "+st.TypeName+" {")
		for _, f := range st.Fields {
			decl := sentinelType
			if f.Type != nil {
				var err error
				decl, err = StructMemberDecl(f.Type, escapeKeyword(f.Name))
				if err != nil {
					w.report(f.Loc, "struct member", f.Type, err)
					decl = sentinelType
				}
			}
			writeLine(out, w.options.Indent, decl+";")
		}
		writeLine(out, "", "};")
		out.WriteByte('\n')
	}
}

func (w *Writer) structNames() []string {
	if w.options.WriterFlags&WriterFlagDeclareStructs == 0 {
		return nil
	}
	structs := w.structs.Structs()
	names := make([]string, 0, len(structs))
	for _, st := range structs {
		names = append(names, st.TypeName)
	}
	return names
}

// useType records the struct types reachable from a declared type.
func (w *Writer) useType(loc ast.Loc, t *ast.Type) {
	if w.options.WriterFlags&WriterFlagDeclareStructs == 0 {
		return
	}
	if err := w.structs.Register(t); err != nil {
		w.report(loc, "struct", t, NewError(ErrUnsupportedShape, err.Error()))
	}
}

// writeGlobals emits a global object list into the global segment, one
// declaration per child.
func (w *Writer) writeGlobals(list *ast.Aggregate) {
	w.enterPhase(phaseEmittingGlobals)
	for _, child := range list.Children {
		decl := sentinelGlobalObject
		if sym, ok := child.(*ast.Symbol); ok {
			decl = w.symbolText(sym)
		} else {
			w.reportNode(child, "linker object", NewError(ErrUnsupportedNode, "global object is not a symbol"))
		}
		writeLine(&w.head, "", decl+";")
	}
	w.leavePhase(phaseEmittingGlobals)
}

// writeFunction emits one function definition into the function segment.
//
// The first child is the parameter list. Every following child is part
// of the body. Temporaries used anywhere in the body are declared right
// after the opening brace, before any statement.
func (w *Writer) writeFunction(fn *ast.Aggregate) {
	out := &w.body
	name := escapeFunctionName(ast.FunctionName(fn.Name))
	w.functionNames = append(w.functionNames, name)

	retType := fn.NodeType()
	ret, err := ReturnTypeName(retType)
	if err != nil {
		w.report(fn.Loc, "return type", retType, err)
		ret = sentinelType
	} else {
		w.useType(fn.Loc, retType)
	}

	body := fn.Children
	var params []ast.Node
	if len(body) > 0 {
		if list, ok := body[0].(*ast.Aggregate); ok && list.Op == ast.OpParameters {
			params = list.Children
			body = body[1:]
		}
	}

	if w.options.WriterFlags&WriterFlagDebugInfo != 0 {
		writeLine(out, w.indentString(), "// "+fn.Loc.String())
	}
	out.WriteString(w.indentString())
	out.WriteString(ret)
	out.WriteByte(' ')
	out.WriteString(name)
	out.WriteByte('(')

	w.enterPhase(phaseEmittingParameters)
	for i, p := range params {
		if i > 0 {
			out.WriteString(", ")
		}
		if sym, ok := p.(*ast.Symbol); ok {
			out.WriteString(w.symbolText(sym))
			continue
		}
		w.reportNode(p, "function parameter", NewError(ErrUnsupportedNode, "parameter is not a symbol"))
		out.WriteString(sentinelParameter)
	}
	w.leavePhase(phaseEmittingParameters)

	out.WriteString(") {\n")
	w.pushIndent()

	w.collectTemporaries(out, body)
	for _, stmt := range body {
		w.writeStatement(out, stmt)
	}

	w.popIndent()
	writeLine(out, w.indentString(), "}")
	out.WriteByte('\n')
}

// collectTemporaries walks the body once before it is emitted and
// declares every temporary in first-encounter order.
func (w *Writer) collectTemporaries(out *strings.Builder, body []ast.Node) {
	clear(w.temps)
	w.enterPhase(phaseCollectingTemporaries)
	for _, stmt := range body {
		ast.Walk(stmt, func(n ast.Node) bool {
			sym, ok := n.(*ast.Symbol)
			if !ok || sym.NodeType().Qualifier.Storage != ast.StorageTemporary {
				return true
			}
			if _, seen := w.temps[sym.ID]; seen {
				return true
			}
			w.temps[sym.ID] = struct{}{}
			writeLine(out, w.indentString(), w.symbolText(sym)+";")
			return true
		})
	}
	w.leavePhase(phaseCollectingTemporaries)
}

// symbolText renders a symbol according to the active phase: as a
// declaration while emitting parameters, globals or temporaries, and as
// a reference otherwise.
func (w *Writer) symbolText(sym *ast.Symbol) string {
	t := sym.NodeType()
	name, nameErr := symbolName(sym)
	switch w.phase {
	case phaseEmittingParameters:
		if nameErr != nil {
			w.report(sym.Loc, "function parameter", t, nameErr)
			return sentinelParameter
		}
		decl, err := ParameterDecl(t, name)
		if err != nil {
			w.report(sym.Loc, "function parameter type", t, err)
			return sentinelParameter
		}
		w.useType(sym.Loc, t)
		return decl
	case phaseEmittingGlobals:
		if nameErr != nil {
			w.report(sym.Loc, "linker object", t, nameErr)
			return sentinelGlobalObject
		}
		decl, err := GlobalObjectDecl(t, name)
		if err != nil {
			w.report(sym.Loc, "linker object", t, err)
			return sentinelGlobalObject
		}
		w.useType(sym.Loc, t)
		return decl
	case phaseCollectingTemporaries:
		if nameErr != nil {
			w.report(sym.Loc, "temporary", t, nameErr)
			return sentinelTemporary
		}
		decl, err := TemporaryDecl(t, name)
		if err != nil {
			w.report(sym.Loc, "temporary", t, err)
			return sentinelTemporary
		}
		w.useType(sym.Loc, t)
		return decl
	default:
		if nameErr != nil {
			w.report(sym.Loc, "symbol", t, nameErr)
			return sentinelExpression
		}
		return name
	}
}

// symbolName returns the emitted name of a symbol. Temporaries and
// parameters carry their identity as a suffix so that distinct variables
// sharing a source name never collide; that identity must not be negative.
func symbolName(sym *ast.Symbol) (string, error) {
	s := sym.NodeType().Qualifier.Storage
	if s == ast.StorageTemporary || s.IsParameter() {
		if sym.ID < 0 {
			return "", newErrorf(ErrUnsupportedNode, "symbol %q has negative identity %d", sym.Name, sym.ID)
		}
		return sym.Name + "_" + strconv.FormatInt(sym.ID, 10), nil
	}
	return escapeKeyword(sym.Name), nil
}

// escapeFunctionName escapes user function names, leaving main intact.
func escapeFunctionName(name string) string {
	if name == "main" {
		return name
	}
	return escapeKeyword(name)
}

// enterPhase switches from the default phase to p.
func (w *Writer) enterPhase(p phase) {
	if w.phase != phaseDefault {
		panic(fmt.Sprintf("glsl: entering %s while %s", p, w.phase))
	}
	w.phase = p
}

// leavePhase returns from p to the default phase.
func (w *Writer) leavePhase(p phase) {
	if w.phase != p {
		panic(fmt.Sprintf("glsl: leaving %s while %s", p, w.phase))
	}
	w.phase = phaseDefault
}

// report records one diagnostic per error in err.
func (w *Writer) report(loc ast.Loc, what string, t *ast.Type, err error) {
	for _, e := range splitErrors(err) {
		d := Diagnostic{
			Kind:    e.Kind,
			Loc:     loc,
			Message: fmt.Sprintf("translate %s %s failed: %s", what, t, e.Message),
		}
		w.diagnostics = append(w.diagnostics, d)
		if w.options.DiagnosticWriter != nil {
			fmt.Fprintln(w.options.DiagnosticWriter, d.String())
		}
	}
}

// reportNode reports err against a node that may be nil.
func (w *Writer) reportNode(n ast.Node, what string, err error) {
	var (
		loc ast.Loc
		t   *ast.Type
	)
	if n != nil {
		loc = n.Pos()
		t = n.NodeType()
	}
	w.report(loc, what, t, err)
}

// Output helpers

// writeLine writes indent, text and a newline to out.
func writeLine(out *strings.Builder, indent, text string) {
	out.WriteString(indent)
	out.WriteString(text)
	out.WriteByte('\n')
}

// indentString returns the current indentation.
func (w *Writer) indentString() string {
	return strings.Repeat(w.options.Indent, w.indent)
}

// pushIndent increases indentation.
func (w *Writer) pushIndent() {
	w.indent++
}

// popIndent decreases indentation.
func (w *Writer) popIndent() {
	if w.indent > 0 {
		w.indent--
	}
}
