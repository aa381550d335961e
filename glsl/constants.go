// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/astglsl/ast"
)

// Sentinels substituted into the output where resolution fails.
const (
	sentinelType         = "<error-type>"
	sentinelParameter    = "<error-func-param>"
	sentinelTemporary    = "<error-temp-dcl>"
	sentinelGlobalObject = "<error-linker-object>"
	sentinelConstant     = "<error-const>"
	sentinelField        = "<error-field>"
	sentinelExpression   = "<error-expr>"
)

// PrintConstant renders the constant of type t whose scalars start at
// values[*cursor] as a literal expression: a bare token for scalars,
// "Type(a, b, ...)" for everything else.
//
// The cursor advances by exactly t.ScalarCount(), so sibling struct fields
// and array elements can be printed from one shared buffer. Failures are
// rendered as sentinels and returned joined; the text is always complete.
// A buffer that runs out yields one sentinel and one ErrConstantUnderflow
// for the remainder of the constant, however large its declared shape.
func PrintConstant(t *ast.Type, values []ast.Const, cursor *int) (string, error) {
	start := *cursor
	p := constantPrinter{values: values, cursor: cursor}
	p.print(t)
	if p.exhausted {
		need := start + t.ScalarCount()
		p.errs = append(p.errs, newErrorf(ErrConstantUnderflow,
			"constant buffer has %d scalars, need %d at offset %d", len(values), need, start))
		*cursor = need
	}
	return p.sb.String(), errors.Join(p.errs...)
}

type constantPrinter struct {
	sb     strings.Builder
	values []ast.Const
	cursor *int
	errs   []error

	// exhausted is set once a leaf reads past the end of values; nothing
	// further is printed after the single sentinel.
	exhausted bool
}

func (p *constantPrinter) print(t *ast.Type) {
	composite := !t.IsScalar()
	if composite {
		name, err := ConstantTypeName(t)
		if err != nil {
			p.errs = append(p.errs, err)
			name = sentinelType
		}
		p.sb.WriteString(name)
		p.sb.WriteByte('(')
	}

	switch {
	case t.IsArray():
		elem := t.ElementType()
		for i := 0; i < t.ArraySizes[0] && !p.exhausted; i++ {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.print(elem)
		}
	case t.IsStruct():
		for i, f := range t.Fields {
			if p.exhausted {
				break
			}
			if i > 0 {
				p.sb.WriteString(", ")
			}
			if f.Type == nil {
				p.errs = append(p.errs, newErrorf(ErrUnsupportedShape, "field %q of %s has no type", f.Name, t.TypeName))
				p.sb.WriteString(sentinelConstant)
				continue
			}
			p.print(f.Type)
		}
	default:
		p.printLeaf(t.ComponentCount())
	}

	if composite {
		p.sb.WriteByte(')')
	}
}

// printLeaf consumes count scalars of a scalar, vector or matrix.
func (p *constantPrinter) printLeaf(count int) {
	start := *p.cursor
	for i := 0; i < count; i++ {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		idx := start + i
		if idx < 0 || idx >= len(p.values) {
			p.exhausted = true
			p.sb.WriteString(sentinelConstant)
			return
		}
		text, err := formatScalar(p.values[idx])
		if err != nil {
			p.errs = append(p.errs, err)
			text = sentinelConstant
		}
		p.sb.WriteString(text)
	}
	*p.cursor = start + count
}

// formatScalar renders one scalar by its stored discriminant.
func formatScalar(c ast.Const) (string, error) {
	switch {
	case c.Kind == ast.BasicBool:
		if c.Bool() {
			return "true", nil
		}
		return "false", nil
	case c.Kind == ast.BasicDouble:
		return formatFloat64(c.Float()), nil
	case c.Kind.IsFloat():
		return formatFloat(c.Float()), nil
	case c.Kind.IsSigned():
		return strconv.FormatInt(c.Int(), 10), nil
	case c.Kind.IsInteger():
		return strconv.FormatUint(c.Uint(), 10), nil
	default:
		return "", newErrorf(ErrMalformedConstantDiscriminant, "constant scalar of kind %s is not allowed", c.Kind)
	}
}

// formatFloat formats a 32- or 16-bit float constant for GLSL output.
func formatFloat(f float64) string {
	if s, ok := nonFinite(f); ok {
		return s
	}
	s := strconv.FormatFloat(f, 'g', -1, 32)
	// Ensure it has a decimal point or exponent
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// formatFloat64 formats a double constant for GLSL output.
func formatFloat64(f float64) string {
	if s, ok := nonFinite(f); ok {
		return s
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s + "lf" // double literal suffix
}

// nonFinite spells infinities and NaN as constant expressions, since GLSL
// has no literal for them.
func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsInf(f, 1):
		return "(1.0 / 0.0)", true
	case math.IsInf(f, -1):
		return "(-1.0 / 0.0)", true
	case math.IsNaN(f):
		return "(0.0 / 0.0)", true
	}
	return "", false
}
