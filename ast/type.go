package ast

import (
	"fmt"
	"strings"
)

// BasicType is the basic type tag of a type descriptor.
type BasicType uint8

const (
	BasicVoid BasicType = iota
	BasicFloat
	BasicDouble
	BasicFloat16
	BasicInt8
	BasicUint8
	BasicInt16
	BasicUint16
	BasicInt
	BasicUint
	BasicInt64
	BasicUint64
	BasicBool
	BasicAtomicUint
	BasicSampler
	BasicStruct
	BasicBlock
	BasicAccStruct
	BasicReference
	BasicRayQuery
	BasicString
	BasicSpirvType
)

var basicTypeNames = [...]string{
	BasicVoid:       "void",
	BasicFloat:      "float",
	BasicDouble:     "double",
	BasicFloat16:    "float16_t",
	BasicInt8:       "int8_t",
	BasicUint8:      "uint8_t",
	BasicInt16:      "int16_t",
	BasicUint16:     "uint16_t",
	BasicInt:        "int",
	BasicUint:       "uint",
	BasicInt64:      "int64_t",
	BasicUint64:     "uint64_t",
	BasicBool:       "bool",
	BasicAtomicUint: "atomic_uint",
	BasicSampler:    "sampler/image",
	BasicStruct:     "structure",
	BasicBlock:      "block",
	BasicAccStruct:  "accelerationStructureNV",
	BasicReference:  "reference",
	BasicRayQuery:   "rayQueryEXT",
	BasicString:     "string",
	BasicSpirvType:  "spirv_type",
}

// String returns the front-end spelling of the basic type.
func (b BasicType) String() string {
	if int(b) < len(basicTypeNames) {
		return basicTypeNames[b]
	}
	return fmt.Sprintf("basic(%d)", uint8(b))
}

// IsFloat reports whether b is a floating-point type.
func (b BasicType) IsFloat() bool {
	return b == BasicFloat || b == BasicDouble || b == BasicFloat16
}

// IsInteger reports whether b is a signed or unsigned integer type.
func (b BasicType) IsInteger() bool {
	switch b {
	case BasicInt8, BasicUint8, BasicInt16, BasicUint16,
		BasicInt, BasicUint, BasicInt64, BasicUint64:
		return true
	}
	return false
}

// IsSigned reports whether b is a signed integer type.
func (b BasicType) IsSigned() bool {
	return b == BasicInt8 || b == BasicInt16 || b == BasicInt || b == BasicInt64
}

// IsArithmetic reports whether b is a numeric or boolean type, the only
// kinds that have scalar, vector and matrix spellings.
func (b BasicType) IsArithmetic() bool {
	return b.IsFloat() || b.IsInteger() || b == BasicBool
}

// Precision is a precision qualifier.
type Precision uint8

const (
	PrecisionNone Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh
)

func (p Precision) String() string {
	switch p {
	case PrecisionLow:
		return "lowp"
	case PrecisionMedium:
		return "mediump"
	case PrecisionHigh:
		return "highp"
	default:
		return ""
	}
}

// Storage is a storage qualifier. The zero value is StorageTemporary, the
// qualifier of function-local variables.
type Storage uint8

const (
	StorageTemporary Storage = iota
	StorageGlobal
	StorageConst
	StorageVaryingIn
	StorageVaryingOut
	StorageUniform
	StorageBuffer
	StorageShared
	StorageIn
	StorageOut
	StorageInOut
	StorageConstReadOnly
	StoragePayload
	StoragePayloadIn
	StorageHitAttr
	StorageCallableData
	StorageCallableDataIn
	StorageSpirvStorageClass
)

var storageNames = [...]string{
	StorageTemporary:         "temp",
	StorageGlobal:            "global",
	StorageConst:             "const",
	StorageVaryingIn:         "smooth in",
	StorageVaryingOut:        "smooth out",
	StorageUniform:           "uniform",
	StorageBuffer:            "buffer",
	StorageShared:            "shared",
	StorageIn:                "in",
	StorageOut:               "out",
	StorageInOut:             "inout",
	StorageConstReadOnly:     "const (read only)",
	StoragePayload:           "rayPayloadNV",
	StoragePayloadIn:         "rayPayloadInNV",
	StorageHitAttr:           "hitAttributeNV",
	StorageCallableData:      "callableDataNV",
	StorageCallableDataIn:    "callableDataInNV",
	StorageSpirvStorageClass: "spirv_storage_class",
}

func (s Storage) String() string {
	if int(s) < len(storageNames) {
		return storageNames[s]
	}
	return fmt.Sprintf("storage(%d)", uint8(s))
}

// IsParameter reports whether s is one of the function parameter directions.
func (s Storage) IsParameter() bool {
	return s == StorageIn || s == StorageOut || s == StorageInOut || s == StorageConstReadOnly
}

// Qualifier is the qualifier set attached to a type.
type Qualifier struct {
	Precision Precision
	Storage   Storage

	// SemanticName is an HLSL-style semantic binding; empty when absent.
	SemanticName string
}

// UnsizedArraySize marks an array dimension without a fixed size.
const UnsizedArraySize = 0

// SamplerDim is the dimensionality of a sampler or image.
type SamplerDim uint8

const (
	SamplerDim1D SamplerDim = iota
	SamplerDim2D
	SamplerDim3D
	SamplerDimCube
	SamplerDimRect
	SamplerDimBuffer
	SamplerDimSubpass
)

// SamplerDesc describes an opaque sampler, texture or image type.
type SamplerDesc struct {
	// Sampled is the basic type of the texel result (float, int or uint).
	Sampled BasicType
	Dim     SamplerDim
	Arrayed bool
	Shadow  bool
	MS      bool

	// Image selects image*/iimage*/uimage* spellings.
	Image bool

	// Pure selects the separate "sampler"/"samplerShadow" object.
	Pure bool
}

// Field is one member of a struct or block type.
type Field struct {
	Name string
	Type *Type
	Loc  Loc
}

// Type is the resolved type descriptor of a node.
type Type struct {
	Basic BasicType

	// VectorSize is 1 (or 0) for scalars.
	VectorSize int

	// MatrixCols and MatrixRows are zero for non-matrix types.
	MatrixCols int
	MatrixRows int

	// ArraySizes lists array dimensions, outermost first.
	// UnsizedArraySize marks a runtime-sized dimension.
	ArraySizes []int

	Qualifier Qualifier

	// TypeName and Fields describe struct and block types.
	TypeName string
	Fields   []Field

	// Sampler is set for sampler and image types.
	Sampler *SamplerDesc
}

// Scalar returns a scalar type descriptor.
func Scalar(b BasicType) *Type {
	return &Type{Basic: b, VectorSize: 1}
}

// Vector returns a vector type descriptor.
func Vector(b BasicType, size int) *Type {
	return &Type{Basic: b, VectorSize: size}
}

// Matrix returns a matrix type descriptor with cols columns of rows rows.
func Matrix(b BasicType, cols, rows int) *Type {
	return &Type{Basic: b, VectorSize: 1, MatrixCols: cols, MatrixRows: rows}
}

// Struct returns a struct type descriptor.
func Struct(name string, fields ...Field) *Type {
	return &Type{Basic: BasicStruct, TypeName: name, Fields: fields}
}

// Void returns the void type.
func Void() *Type {
	return &Type{Basic: BasicVoid}
}

// WithStorage returns a copy of t with the storage qualifier replaced.
func (t *Type) WithStorage(s Storage) *Type {
	c := *t
	c.Qualifier.Storage = s
	return &c
}

// WithPrecision returns a copy of t with the precision qualifier replaced.
func (t *Type) WithPrecision(p Precision) *Type {
	c := *t
	c.Qualifier.Precision = p
	return &c
}

// ArrayOf returns a copy of t with the given dimensions prepended.
func (t *Type) ArrayOf(sizes ...int) *Type {
	c := *t
	c.ArraySizes = append(append([]int(nil), sizes...), t.ArraySizes...)
	return &c
}

// IsArray reports whether t has at least one array dimension.
func (t *Type) IsArray() bool { return len(t.ArraySizes) > 0 }

// IsUnsizedArray reports whether any array dimension of t is unsized.
func (t *Type) IsUnsizedArray() bool {
	for _, size := range t.ArraySizes {
		if size == UnsizedArraySize {
			return true
		}
	}
	return false
}

// IsMatrix reports whether t is a matrix (ignoring array dimensions).
func (t *Type) IsMatrix() bool { return t.MatrixCols > 0 && t.MatrixRows > 0 }

// IsVector reports whether t is a vector (ignoring array dimensions).
func (t *Type) IsVector() bool { return t.VectorSize > 1 && !t.IsMatrix() }

// IsStruct reports whether t is a struct or block.
func (t *Type) IsStruct() bool {
	return t.Basic == BasicStruct || t.Basic == BasicBlock
}

// IsScalar reports whether t is a single non-aggregate value.
func (t *Type) IsScalar() bool {
	return !t.IsVector() && !t.IsMatrix() && !t.IsStruct() && !t.IsArray()
}

// IsOpaque reports whether t is one of the opaque categories that have no
// value syntax: samplers, blocks, acceleration structures, ray queries,
// strings and SPIR-V intrinsic types.
func (t *Type) IsOpaque() bool {
	switch t.Basic {
	case BasicSampler, BasicBlock, BasicAccStruct, BasicRayQuery, BasicString, BasicSpirvType:
		return true
	}
	return false
}

// ElementType returns t with its outermost array dimension removed.
func (t *Type) ElementType() *Type {
	c := *t
	if len(c.ArraySizes) > 0 {
		c.ArraySizes = c.ArraySizes[1:]
	}
	if len(c.ArraySizes) == 0 {
		c.ArraySizes = nil
	}
	return &c
}

// BaseType returns t with all array dimensions removed.
func (t *Type) BaseType() *Type {
	c := *t
	c.ArraySizes = nil
	return &c
}

// ComponentCount returns the scalar count of one non-array element of a
// scalar, vector or matrix type.
func (t *Type) ComponentCount() int {
	switch {
	case t.IsMatrix():
		return t.MatrixCols * t.MatrixRows
	case t.IsVector():
		return t.VectorSize
	default:
		return 1
	}
}

// ScalarCount returns the number of leaf scalars a constant of type t
// occupies in a flat constant buffer. Unsized dimensions count as zero.
func (t *Type) ScalarCount() int {
	n := 1
	for _, size := range t.ArraySizes {
		n *= size
	}
	if t.IsStruct() {
		sum := 0
		for _, f := range t.Fields {
			if f.Type != nil {
				sum += f.Type.ScalarCount()
			}
		}
		return n * sum
	}
	return n * t.ComponentCount()
}

// String renders t for diagnostics, e.g.
// "uniform highp 4-component vector of float".
func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	var sb strings.Builder
	if t.Qualifier.Storage != StorageTemporary && t.Qualifier.Storage != StorageGlobal {
		sb.WriteString(t.Qualifier.Storage.String())
		sb.WriteByte(' ')
	}
	if p := t.Qualifier.Precision.String(); p != "" {
		sb.WriteString(p)
		sb.WriteByte(' ')
	}
	if t.Qualifier.SemanticName != "" {
		fmt.Fprintf(&sb, "semantic(%s) ", t.Qualifier.SemanticName)
	}
	for _, size := range t.ArraySizes {
		if size == UnsizedArraySize {
			sb.WriteString("unsized array of ")
		} else {
			fmt.Fprintf(&sb, "%d-element array of ", size)
		}
	}
	switch {
	case t.IsMatrix():
		fmt.Fprintf(&sb, "%d-column %d-row matrix of ", t.MatrixCols, t.MatrixRows)
	case t.IsVector():
		fmt.Fprintf(&sb, "%d-component vector of ", t.VectorSize)
	}
	sb.WriteString(t.Basic.String())
	if t.IsStruct() && t.TypeName != "" {
		fmt.Fprintf(&sb, " %s", t.TypeName)
	}
	return sb.String()
}
