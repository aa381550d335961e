// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strings"

	"github.com/gogpu/astglsl/ast"
)

// binaryOperators maps infix operations to their GLSL operator.
var binaryOperators = map[ast.Op]string{
	ast.OpAdd:               "+",
	ast.OpSub:               "-",
	ast.OpMul:               "*",
	ast.OpDiv:               "/",
	ast.OpMod:               "%",
	ast.OpRightShift:        ">>",
	ast.OpLeftShift:         "<<",
	ast.OpAnd:               "&",
	ast.OpInclusiveOr:       "|",
	ast.OpExclusiveOr:       "^",
	ast.OpEqual:             "==",
	ast.OpNotEqual:          "!=",
	ast.OpVectorEqual:       "==",
	ast.OpVectorNotEqual:    "!=",
	ast.OpLessThan:          "<",
	ast.OpGreaterThan:       ">",
	ast.OpLessThanEqual:     "<=",
	ast.OpGreaterThanEqual:  ">=",
	ast.OpVectorTimesScalar: "*",
	ast.OpVectorTimesMatrix: "*",
	ast.OpMatrixTimesVector: "*",
	ast.OpMatrixTimesScalar: "*",
	ast.OpMatrixTimesMatrix: "*",
	ast.OpLogicalOr:         "||",
	ast.OpLogicalXor:        "^^",
	ast.OpLogicalAnd:        "&&",

	// Assignments are never parenthesized.
	ast.OpAssign:                  "=",
	ast.OpAddAssign:               "+=",
	ast.OpSubAssign:               "-=",
	ast.OpMulAssign:               "*=",
	ast.OpVectorTimesMatrixAssign: "*=",
	ast.OpVectorTimesScalarAssign: "*=",
	ast.OpMatrixTimesScalarAssign: "*=",
	ast.OpMatrixTimesMatrixAssign: "*=",
	ast.OpDivAssign:               "/=",
	ast.OpModAssign:               "%=",
	ast.OpAndAssign:               "&=",
	ast.OpInclusiveOrAssign:       "|=",
	ast.OpExclusiveOrAssign:       "^=",
	ast.OpLeftShiftAssign:         "<<=",
	ast.OpRightShiftAssign:        ">>=",
}

// writeExpression renders an expression. Failures are reported and
// replaced by a sentinel; the result is never empty.
func (w *Writer) writeExpression(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		w.report(ast.Loc{}, "expression", nil, NewError(ErrUnsupportedNode, "missing operand"))
		return sentinelExpression
	case *ast.Symbol:
		return w.symbolText(n)
	case *ast.Constant:
		return w.writeConstant(n)
	case *ast.Binary:
		return w.writeBinary(n)
	case *ast.Unary:
		return w.writeUnary(n)
	case *ast.Selection:
		return w.writeTernary(n)
	case *ast.Aggregate:
		switch n.Op {
		case ast.OpFunctionCall:
			return escapeFunctionName(ast.FunctionName(n.Name)) + "(" + w.writeArguments(n.Children) + ")"
		case ast.OpConstruct:
			return w.writeConstruct(n)
		}
		w.reportNode(n, "expression", newErrorf(ErrUnsupportedNode, "%s cannot be used as an expression", n.Op))
		return sentinelExpression
	default:
		w.reportNode(n, "expression", newErrorf(ErrUnsupportedNode, "%T cannot be used as an expression", n))
		return sentinelExpression
	}
}

// writeBinary renders a binary operation. Arithmetic, comparison and
// logical operations are always parenthesized; assignments and indexing
// are not.
func (w *Writer) writeBinary(b *ast.Binary) string {
	switch b.Op {
	case ast.OpIndexDirect, ast.OpIndexIndirect:
		return w.writeExpression(b.Left) + "[" + w.writeExpression(b.Right) + "]"
	case ast.OpIndexDirectStruct:
		return w.writeExpression(b.Left) + "." + w.fieldName(b)
	}

	op, ok := binaryOperators[b.Op]
	if !ok {
		w.reportNode(b, "expression", newErrorf(ErrUnsupportedNode, "%s is not a binary operation", b.Op))
		return sentinelExpression
	}
	left := w.writeExpression(b.Left)
	right := w.writeExpression(b.Right)
	if b.Op.IsAssignment() {
		return left + " " + op + " " + right
	}
	return "(" + left + " " + op + " " + right + ")"
}

// fieldName resolves a constant field index against the struct type of
// the left operand. The index child itself is never emitted.
func (w *Writer) fieldName(b *ast.Binary) string {
	var leftType *ast.Type
	if b.Left != nil {
		leftType = b.Left.NodeType()
	}
	index := -1
	if c, ok := b.Right.(*ast.Constant); ok && len(c.Values) > 0 && c.Values[0].Kind.IsInteger() {
		if v := c.Values[0].Int(); v >= 0 && v <= int64(^uint32(0)>>1) {
			index = int(v)
		}
	}
	if leftType == nil || !leftType.IsStruct() || leftType.IsArray() {
		w.report(b.Loc, "field access", leftType, NewError(ErrFieldIndexOutOfRange, "left operand is not a struct"))
		return sentinelField
	}
	if index < 0 || index >= len(leftType.Fields) {
		w.report(b.Loc, "field access", leftType, newErrorf(ErrFieldIndexOutOfRange,
			"field index %d out of range for %d fields", index, len(leftType.Fields)))
		return sentinelField
	}
	return escapeKeyword(leftType.Fields[index].Name)
}

// writeUnary renders a unary operation, parenthesized.
func (w *Writer) writeUnary(u *ast.Unary) string {
	operand := w.writeExpression(u.Operand)
	switch u.Op {
	case ast.OpNegative:
		return "(-" + operand + ")"
	case ast.OpLogicalNot:
		return "(!" + operand + ")"
	case ast.OpBitwiseNot:
		return "(~" + operand + ")"
	case ast.OpPreIncrement:
		return "(++" + operand + ")"
	case ast.OpPreDecrement:
		return "(--" + operand + ")"
	case ast.OpPostIncrement:
		return "(" + operand + "++)"
	case ast.OpPostDecrement:
		return "(" + operand + "--)"
	default:
		w.reportNode(u, "expression", newErrorf(ErrUnsupportedNode, "%s is not a unary operation", u.Op))
		return sentinelExpression
	}
}

// writeTernary renders a value-producing selection.
func (w *Writer) writeTernary(sel *ast.Selection) string {
	cond := w.writeExpression(sel.Cond)
	accept := w.writeExpression(sel.True)
	reject := w.writeExpression(sel.False)
	return "(" + cond + " ? " + accept + " : " + reject + ")"
}

// writeConstant renders a folded constant from its own scalar buffer.
func (w *Writer) writeConstant(c *ast.Constant) string {
	t := c.NodeType()
	if _, err := ConstantTypeName(t); err != nil {
		w.report(c.Loc, "constant", t, err)
		return sentinelConstant
	}
	w.useType(c.Loc, t)

	cursor := 0
	text, err := PrintConstant(t, c.Values, &cursor)
	if err != nil {
		w.report(c.Loc, "constant", t, err)
	}
	return text
}

// writeConstruct renders a constructor call named by the node type.
func (w *Writer) writeConstruct(agg *ast.Aggregate) string {
	t := agg.NodeType()
	name, err := ConstantTypeName(t)
	if err != nil {
		w.report(agg.Loc, "constructor type", t, err)
		name = sentinelType
	} else {
		w.useType(agg.Loc, t)
	}
	return name + "(" + w.writeArguments(agg.Children) + ")"
}

func (w *Writer) writeArguments(args []ast.Node) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = w.writeExpression(arg)
	}
	return strings.Join(parts, ", ")
}
