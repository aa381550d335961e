// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"strconv"
	"strings"

	"github.com/gogpu/astglsl/ast"
)

// Usage contexts, used in error messages.
const (
	usageReturn    = "a return type"
	usageParameter = "a function parameter"
	usageTemporary = "a temporary"
	usageGlobal    = "a global object"
	usageConstant  = "a constant"
	usageMember    = "a struct member"
)

// BasicTypeName returns the explicit-width GLSL name of a scalar type.
func BasicTypeName(b ast.BasicType) (string, bool) {
	switch b {
	case ast.BasicFloat:
		return "float32_t", true
	case ast.BasicDouble:
		return "float64_t", true
	case ast.BasicFloat16:
		return "float16_t", true
	case ast.BasicInt8:
		return "int8_t", true
	case ast.BasicUint8:
		return "uint8_t", true
	case ast.BasicInt16:
		return "int16_t", true
	case ast.BasicUint16:
		return "uint16_t", true
	case ast.BasicInt:
		return "int32_t", true
	case ast.BasicUint:
		return "uint32_t", true
	case ast.BasicInt64:
		return "int64_t", true
	case ast.BasicUint64:
		return "uint64_t", true
	case ast.BasicBool:
		return "bool", true
	default:
		return "", false
	}
}

// vectorPrefix returns the vector name prefix of a basic type.
func vectorPrefix(b ast.BasicType) (string, bool) {
	switch b {
	case ast.BasicFloat:
		return "f32vec", true
	case ast.BasicDouble:
		return "f64vec", true
	case ast.BasicFloat16:
		return "f16vec", true
	case ast.BasicInt8:
		return "i8vec", true
	case ast.BasicUint8:
		return "u8vec", true
	case ast.BasicInt16:
		return "i16vec", true
	case ast.BasicUint16:
		return "u16vec", true
	case ast.BasicInt:
		return "i32vec", true
	case ast.BasicUint:
		return "u32vec", true
	case ast.BasicInt64:
		return "i64vec", true
	case ast.BasicUint64:
		return "u64vec", true
	case ast.BasicBool:
		return "bvec", true
	default:
		return "", false
	}
}

// VectorTypeName returns the GLSL name of an n-component vector.
func VectorTypeName(b ast.BasicType, n int) (string, bool) {
	prefix, ok := vectorPrefix(b)
	if !ok || n < 2 || n > 4 {
		return "", false
	}
	return prefix + strconv.Itoa(n), true
}

// MatrixTypeName returns the GLSL name of a matrix with cols columns and
// rows rows. Only floating-point matrices exist.
func MatrixTypeName(b ast.BasicType, cols, rows int) (string, bool) {
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return "", false
	}
	var prefix string
	switch b {
	case ast.BasicFloat:
		prefix = "f32mat"
	case ast.BasicDouble:
		prefix = "f64mat"
	case ast.BasicFloat16:
		prefix = "f16mat"
	default:
		return "", false
	}
	return prefix + strconv.Itoa(cols) + "x" + strconv.Itoa(rows), true
}

// ArraySuffix returns the array dimensions of t as brackets, outermost
// first: "[3][4]". Unsized dimensions render as "[]".
func ArraySuffix(t *ast.Type) string {
	if !t.IsArray() {
		return ""
	}
	var sb strings.Builder
	for _, size := range t.ArraySizes {
		sb.WriteByte('[')
		if size != ast.UnsizedArraySize {
			sb.WriteString(strconv.Itoa(size))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// PrecisionPrefix returns "lowp ", "mediump ", "highp " or "".
func PrecisionPrefix(p ast.Precision) string {
	if s := p.String(); s != "" {
		return s + " "
	}
	return ""
}

// directionPrefix returns the parameter direction keyword for s.
func directionPrefix(s ast.Storage) string {
	switch s {
	case ast.StorageIn:
		return "in "
	case ast.StorageOut:
		return "out "
	case ast.StorageInOut:
		return "inout "
	case ast.StorageConstReadOnly:
		return "const "
	default:
		return ""
	}
}

// storagePrefix returns the module-scope storage keyword for s.
func storagePrefix(s ast.Storage) string {
	switch s {
	case ast.StorageConst:
		return "const "
	case ast.StorageVaryingIn:
		return "in "
	case ast.StorageVaryingOut:
		return "out "
	case ast.StorageUniform:
		return "uniform "
	case ast.StorageBuffer:
		return "buffer "
	case ast.StorageShared:
		return "shared "
	default:
		return ""
	}
}

// valueTypeName returns the scalar, vector or matrix name of an arithmetic
// type, ignoring array dimensions and qualifiers.
func valueTypeName(t *ast.Type) (string, error) {
	var (
		name string
		ok   bool
	)
	switch {
	case t.IsMatrix():
		name, ok = MatrixTypeName(t.Basic, t.MatrixCols, t.MatrixRows)
		if !ok {
			return "", newErrorf(ErrUnsupportedShape, "no %dx%d matrix of %s", t.MatrixCols, t.MatrixRows, t.Basic)
		}
	case t.VectorSize > 1:
		name, ok = VectorTypeName(t.Basic, t.VectorSize)
		if !ok {
			return "", newErrorf(ErrUnsupportedShape, "no %d-component vector of %s", t.VectorSize, t.Basic)
		}
	default:
		name, ok = BasicTypeName(t.Basic)
		if !ok {
			return "", newErrorf(ErrUnsupportedShape, "no scalar spelling for %s", t.Basic)
		}
	}
	return name, nil
}

// checkValueCategory rejects void and every basic type that is neither a
// struct nor arithmetic. Opaque categories listed in allow pass.
func checkValueCategory(t *ast.Type, usage string, allow ...ast.BasicType) error {
	for _, b := range allow {
		if t.Basic == b {
			return nil
		}
	}
	switch {
	case t.Basic == ast.BasicVoid:
		return newErrorf(ErrUnsupportedVoidUsage, "void cannot be used as %s", usage)
	case t.Basic == ast.BasicStruct, t.Basic.IsArithmetic():
		return nil
	default:
		return newErrorf(ErrUnsupportedOpaqueCategory, "%s type cannot be used as %s", t.Basic, usage)
	}
}

// checkArrayDims rejects negative array dimensions, which have no
// spelling in the target language.
func checkArrayDims(t *ast.Type, usage string) error {
	for _, size := range t.ArraySizes {
		if size < 0 {
			return newErrorf(ErrUnsupportedShape, "array dimension %d is not valid for %s", size, usage)
		}
	}
	return nil
}

func checkSizedArray(t *ast.Type, usage string) error {
	if t.IsUnsizedArray() {
		return newErrorf(ErrUnsupportedUnsizedArray, "unsized array cannot be used as %s", usage)
	}
	return nil
}

// ReturnTypeName resolves the return type of a function: "void", a struct
// name, or a precision-qualified value type, followed by fixed array
// dimensions.
func ReturnTypeName(t *ast.Type) (string, error) {
	if err := checkArrayDims(t, usageReturn); err != nil {
		return "", err
	}
	if err := checkSizedArray(t, usageReturn); err != nil {
		return "", err
	}
	if t.Basic == ast.BasicVoid {
		if t.IsArray() {
			return "", newErrorf(ErrUnsupportedVoidUsage, "array of void cannot be used as %s", usageReturn)
		}
		return "void", nil
	}
	if err := checkValueCategory(t, usageReturn); err != nil {
		return "", err
	}
	if t.Basic == ast.BasicStruct {
		return t.TypeName + ArraySuffix(t), nil
	}
	name, err := valueTypeName(t)
	if err != nil {
		return "", err
	}
	return PrecisionPrefix(t.Qualifier.Precision) + name + ArraySuffix(t), nil
}

// ParameterDecl resolves a function parameter declaration:
// "<direction> <precision> <type> <name><dims>".
func ParameterDecl(t *ast.Type, name string) (string, error) {
	if t.Qualifier.SemanticName != "" {
		return "", newErrorf(ErrUnsupportedSemanticBinding, "semantic %q on %s is not supported", t.Qualifier.SemanticName, usageParameter)
	}
	return localDecl(t, name, usageParameter)
}

// TemporaryDecl resolves the hoisted declaration of a temporary. The
// direction keyword follows the storage qualifier, which for ordinary
// temporaries adds nothing.
func TemporaryDecl(t *ast.Type, name string) (string, error) {
	return localDecl(t, name, usageTemporary)
}

func localDecl(t *ast.Type, name, usage string) (string, error) {
	if err := checkArrayDims(t, usage); err != nil {
		return "", err
	}
	if err := checkValueCategory(t, usage); err != nil {
		return "", err
	}
	if err := checkSizedArray(t, usage); err != nil {
		return "", err
	}
	direction := directionPrefix(t.Qualifier.Storage)
	if t.Basic == ast.BasicStruct {
		return direction + t.TypeName + " " + name + ArraySuffix(t), nil
	}
	typeName, err := valueTypeName(t)
	if err != nil {
		return "", err
	}
	return direction + PrecisionPrefix(t.Qualifier.Precision) + typeName + " " + name + ArraySuffix(t), nil
}

// unsupportedGlobalStorage reports the storage qualifiers that need a
// hand-written declaration in the target language.
func unsupportedGlobalStorage(s ast.Storage) bool {
	switch s {
	case ast.StoragePayload, ast.StoragePayloadIn, ast.StorageHitAttr,
		ast.StorageCallableData, ast.StorageCallableDataIn, ast.StorageSpirvStorageClass:
		return true
	}
	return false
}

// GlobalObjectDecl resolves a module-scope declaration:
// "<storage> <precision> <type> <name><dims>".
//
// Sampler objects declare as "<storage> sampler2D <name>" when the type
// carries a sampler description and as the bare name otherwise. Unsized
// dimensions are kept as "[]".
func GlobalObjectDecl(t *ast.Type, name string) (string, error) {
	if err := checkValueCategory(t, usageGlobal, ast.BasicSampler, ast.BasicBlock); err != nil {
		return "", err
	}
	if err := checkArrayDims(t, usageGlobal); err != nil {
		return "", err
	}
	if unsupportedGlobalStorage(t.Qualifier.Storage) {
		return "", newErrorf(ErrUnsupportedStorageQualifier,
			"storage qualifier %s is not supported; use a direct GLSL declaration instead", t.Qualifier.Storage)
	}
	if t.Qualifier.SemanticName != "" {
		return "", newErrorf(ErrUnsupportedSemanticBinding,
			"semantic %q on %s is not supported; use a direct GLSL declaration instead", t.Qualifier.SemanticName, usageGlobal)
	}

	storage := storagePrefix(t.Qualifier.Storage)
	switch {
	case t.Basic == ast.BasicSampler:
		if t.Sampler == nil {
			return name, nil
		}
		return storage + PrecisionPrefix(t.Qualifier.Precision) + SamplerTypeName(t.Sampler) + " " + name + ArraySuffix(t), nil
	case t.IsStruct():
		return storage + t.TypeName + " " + name + ArraySuffix(t), nil
	}
	typeName, err := valueTypeName(t)
	if err != nil {
		return "", err
	}
	return storage + PrecisionPrefix(t.Qualifier.Precision) + typeName + " " + name + ArraySuffix(t), nil
}

// StructMemberDecl resolves one member of a struct definition:
// "<precision> <type> <name><dims>". An unsized trailing dimension is kept.
func StructMemberDecl(t *ast.Type, name string) (string, error) {
	if err := checkArrayDims(t, usageMember); err != nil {
		return "", err
	}
	if err := checkValueCategory(t, usageMember); err != nil {
		return "", err
	}
	if t.Basic == ast.BasicStruct {
		return t.TypeName + " " + name + ArraySuffix(t), nil
	}
	typeName, err := valueTypeName(t)
	if err != nil {
		return "", err
	}
	return PrecisionPrefix(t.Qualifier.Precision) + typeName + " " + name + ArraySuffix(t), nil
}

// ConstantTypeName resolves the constructor name of a constant:
// the value type or struct name plus fixed array dimensions, without
// qualifiers.
func ConstantTypeName(t *ast.Type) (string, error) {
	if err := checkArrayDims(t, usageConstant); err != nil {
		return "", err
	}
	if err := checkSizedArray(t, usageConstant); err != nil {
		return "", err
	}
	if err := checkValueCategory(t, usageConstant); err != nil {
		return "", err
	}
	if t.Basic == ast.BasicStruct {
		return t.TypeName + ArraySuffix(t), nil
	}
	name, err := valueTypeName(t)
	if err != nil {
		return "", err
	}
	return name + ArraySuffix(t), nil
}

// SamplerTypeName returns the GLSL name of a sampler or image type,
// e.g. "sampler2DArrayShadow", "usampler3D" or "image2D".
func SamplerTypeName(s *ast.SamplerDesc) string {
	var prefix string
	switch s.Sampled {
	case ast.BasicInt:
		prefix = "i"
	case ast.BasicUint:
		prefix = "u"
	}

	if s.Pure {
		if s.Shadow {
			return "samplerShadow"
		}
		return "sampler"
	}
	if s.Dim == ast.SamplerDimSubpass {
		if s.MS {
			return prefix + "subpassInputMS"
		}
		return prefix + "subpassInput"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	if s.Image {
		sb.WriteString("image")
	} else {
		sb.WriteString("sampler")
	}
	switch s.Dim {
	case ast.SamplerDim1D:
		sb.WriteString("1D")
	case ast.SamplerDim2D:
		sb.WriteString("2D")
	case ast.SamplerDim3D:
		sb.WriteString("3D")
	case ast.SamplerDimCube:
		sb.WriteString("Cube")
	case ast.SamplerDimRect:
		sb.WriteString("2DRect")
	case ast.SamplerDimBuffer:
		sb.WriteString("Buffer")
	}
	if s.MS {
		sb.WriteString("MS")
	}
	if s.Arrayed {
		sb.WriteString("Array")
	}
	if s.Shadow && !s.Image {
		sb.WriteString("Shadow")
	}
	return sb.String()
}
