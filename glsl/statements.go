// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gogpu/astglsl/ast"
)

// writeStatement writes a single statement. An expression in statement
// position is framed as indent, expression, semicolon.
func (w *Writer) writeStatement(out *strings.Builder, n ast.Node) {
	switch n := n.(type) {
	case nil:
		return

	case *ast.Aggregate:
		switch n.Op {
		case ast.OpSequence, ast.OpNull:
			w.writeBlock(out, n.Children)
			return
		case ast.OpLinkerObjects:
			w.writeGlobals(n)
			return
		case ast.OpFunction, ast.OpParameters:
			w.reportNode(n, "statement", newErrorf(ErrUnsupportedNode, "%s is not allowed here", n.Op))
			writeLine(out, w.indentString(), sentinelExpression+";")
			return
		}

	case *ast.Selection:
		if n.NodeType().Basic == ast.BasicVoid {
			w.writeIf(out, n)
			return
		}

	case *ast.Switch:
		w.writeSwitch(out, n)
		return

	case *ast.Loop:
		w.writeLoop(out, n)
		return

	case *ast.Branch:
		w.writeBranch(out, n)
		return
	}

	writeLine(out, w.indentString(), w.writeExpression(n)+";")
}

// writeBlock writes a list of statements. Nested sequences are flattened
// into the enclosing block.
func (w *Writer) writeBlock(out *strings.Builder, stmts []ast.Node) {
	for _, stmt := range stmts {
		w.writeStatement(out, stmt)
	}
}

// writeBody writes the body of a compound statement one level deeper.
func (w *Writer) writeBody(out *strings.Builder, n ast.Node) {
	w.pushIndent()
	w.writeStatement(out, n)
	w.popIndent()
}

// writeIf writes an if statement.
func (w *Writer) writeIf(out *strings.Builder, sel *ast.Selection) {
	indent := w.indentString()
	writeLine(out, indent, "if ("+w.writeExpression(sel.Cond)+") {")
	w.writeBody(out, sel.True)
	if sel.False != nil {
		writeLine(out, indent, "} else {")
		w.writeBody(out, sel.False)
	}
	writeLine(out, indent, "}")
}

// writeSwitch writes a switch statement. Statements following a case or
// default label are indented one level below the label.
func (w *Writer) writeSwitch(out *strings.Builder, sw *ast.Switch) {
	indent := w.indentString()
	writeLine(out, indent, "switch ("+w.writeExpression(sw.Cond)+") {")
	w.pushIndent()

	var stmts []ast.Node
	if seq, ok := sw.Body.(*ast.Aggregate); ok && (seq.Op == ast.OpSequence || seq.Op == ast.OpNull) {
		stmts = seq.Children
	} else if sw.Body != nil {
		stmts = []ast.Node{sw.Body}
	}

	inCase := false
	for _, stmt := range stmts {
		if br, ok := stmt.(*ast.Branch); ok && (br.Op == ast.OpCase || br.Op == ast.OpDefault) {
			if inCase {
				w.popIndent()
			}
			w.writeBranch(out, br)
			w.pushIndent()
			inCase = true
			continue
		}
		w.writeStatement(out, stmt)
	}
	if inCase {
		w.popIndent()
	}

	w.popIndent()
	writeLine(out, indent, "}")
}

// writeLoop writes a loop statement: for when a terminal expression is
// present, while when the condition is tested first, do-while otherwise.
func (w *Writer) writeLoop(out *strings.Builder, loop *ast.Loop) {
	indent := w.indentString()
	switch {
	case !loop.TestFirst:
		writeLine(out, indent, "do {")
		w.writeBody(out, loop.Body)
		writeLine(out, indent, "} while ("+w.loopCondition(loop.Cond)+");")
		return

	case loop.Terminal != nil:
		cond := ""
		if loop.Cond != nil {
			cond = w.writeExpression(loop.Cond)
		}
		writeLine(out, indent, "for (; "+cond+"; "+w.writeExpression(loop.Terminal)+") {")

	default:
		writeLine(out, indent, "while ("+w.loopCondition(loop.Cond)+") {")
	}
	w.writeBody(out, loop.Body)
	writeLine(out, indent, "}")
}

func (w *Writer) loopCondition(cond ast.Node) string {
	if cond == nil {
		return "true"
	}
	return w.writeExpression(cond)
}

// branchKeywords maps jump operations to their GLSL statements.
var branchKeywords = map[ast.Op]string{
	ast.OpKill:                "discard",
	ast.OpTerminateInvocation: "terminateInvocation",
	ast.OpDemote:              "demote",
	ast.OpIgnoreIntersection:  "ignoreIntersectionEXT",
	ast.OpTerminateRay:        "terminateRayEXT",
	ast.OpBreak:               "break",
	ast.OpContinue:            "continue",
}

// writeBranch writes a jump statement or a case label. Labels are
// preceded by an empty line.
func (w *Writer) writeBranch(out *strings.Builder, br *ast.Branch) {
	indent := w.indentString()
	switch br.Op {
	case ast.OpReturn:
		if br.Expr == nil {
			writeLine(out, indent, "return;")
			return
		}
		writeLine(out, indent, "return "+w.writeExpression(br.Expr)+";")
	case ast.OpCase:
		out.WriteByte('\n')
		writeLine(out, indent, "case "+w.writeExpression(br.Expr)+":")
	case ast.OpDefault:
		out.WriteByte('\n')
		writeLine(out, indent, "default:")
	default:
		keyword, ok := branchKeywords[br.Op]
		if !ok {
			w.reportNode(br, "branch", newErrorf(ErrUnsupportedNode, "%s is not a branch", br.Op))
			keyword = sentinelExpression
		}
		writeLine(out, indent, keyword+";")
	}
}
