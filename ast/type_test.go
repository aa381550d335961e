package ast

import (
	"math"
	"testing"
)

func TestType_Predicates(t *testing.T) {
	tests := []struct {
		name     string
		typ      *Type
		scalar   bool
		vector   bool
		matrix   bool
		array    bool
		unsized  bool
		isStruct bool
		opaque   bool
	}{
		{"scalar", Scalar(BasicFloat), true, false, false, false, false, false, false},
		{"zero_vector_size", &Type{Basic: BasicInt}, true, false, false, false, false, false, false},
		{"vector", Vector(BasicInt, 3), false, true, false, false, false, false, false},
		{"matrix", Matrix(BasicFloat, 4, 3), false, false, true, false, false, false, false},
		{"array", Scalar(BasicFloat).ArrayOf(4), false, false, false, true, false, false, false},
		{"unsized_array", Vector(BasicFloat, 2).ArrayOf(UnsizedArraySize), false, true, false, true, true, false, false},
		{"struct", lightType(), false, false, false, false, false, true, false},
		{"block", &Type{Basic: BasicBlock, TypeName: "B"}, false, false, false, false, false, true, true},
		{"sampler", &Type{Basic: BasicSampler}, true, false, false, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.IsScalar(); got != tt.scalar {
				t.Errorf("IsScalar() = %v, want %v", got, tt.scalar)
			}
			if got := tt.typ.IsVector(); got != tt.vector {
				t.Errorf("IsVector() = %v, want %v", got, tt.vector)
			}
			if got := tt.typ.IsMatrix(); got != tt.matrix {
				t.Errorf("IsMatrix() = %v, want %v", got, tt.matrix)
			}
			if got := tt.typ.IsArray(); got != tt.array {
				t.Errorf("IsArray() = %v, want %v", got, tt.array)
			}
			if got := tt.typ.IsUnsizedArray(); got != tt.unsized {
				t.Errorf("IsUnsizedArray() = %v, want %v", got, tt.unsized)
			}
			if got := tt.typ.IsStruct(); got != tt.isStruct {
				t.Errorf("IsStruct() = %v, want %v", got, tt.isStruct)
			}
			if got := tt.typ.IsOpaque(); got != tt.opaque {
				t.Errorf("IsOpaque() = %v, want %v", got, tt.opaque)
			}
		})
	}
}

func TestType_ScalarCount(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		want int
	}{
		{"scalar", Scalar(BasicInt), 1},
		{"vec4", Vector(BasicFloat, 4), 4},
		{"mat3x2", Matrix(BasicFloat, 3, 2), 6},
		{"array_of_vec3", Vector(BasicFloat, 3).ArrayOf(2), 6},
		{"nested_array", Scalar(BasicFloat).ArrayOf(2, 3), 6},
		{"unsized", Scalar(BasicFloat).ArrayOf(UnsizedArraySize), 0},
		{"struct", lightType(), 4},
		{"array_of_struct", lightType().ArrayOf(3), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.ScalarCount(); got != tt.want {
				t.Errorf("ScalarCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestType_ArrayOf(t *testing.T) {
	inner := Scalar(BasicFloat).ArrayOf(3)
	outer := inner.ArrayOf(2)

	if len(inner.ArraySizes) != 1 {
		t.Fatalf("ArrayOf modified its receiver: %v", inner.ArraySizes)
	}
	if got := outer.ArraySizes; len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("ArraySizes = %v, want [2 3]", got)
	}

	elem := outer.ElementType()
	if got := elem.ArraySizes; len(got) != 1 || got[0] != 3 {
		t.Errorf("ElementType().ArraySizes = %v, want [3]", got)
	}
	if elem.ElementType().IsArray() {
		t.Error("ElementType of a one-dimensional array is still an array")
	}
	if outer.BaseType().IsArray() {
		t.Error("BaseType is still an array")
	}
}

func TestType_WithQualifiers(t *testing.T) {
	base := Vector(BasicFloat, 4)
	q := base.WithStorage(StorageUniform).WithPrecision(PrecisionHigh)

	if base.Qualifier.Storage != StorageTemporary || base.Qualifier.Precision != PrecisionNone {
		t.Error("WithStorage/WithPrecision modified the receiver")
	}
	if q.Qualifier.Storage != StorageUniform || q.Qualifier.Precision != PrecisionHigh {
		t.Errorf("Qualifier = %+v", q.Qualifier)
	}
}

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{nil, "<nil type>"},
		{Scalar(BasicFloat), "float"},
		{Vector(BasicFloat, 4).WithStorage(StorageUniform).WithPrecision(PrecisionHigh), "uniform highp 4-component vector of float"},
		{Matrix(BasicDouble, 3, 2), "3-column 2-row matrix of double"},
		{Scalar(BasicInt).ArrayOf(UnsizedArraySize), "unsized array of int"},
		{lightType().ArrayOf(2), "2-element array of structure Light"},
		{Scalar(BasicFloat).WithStorage(StorageIn), "in float"},
		{&Type{Basic: BasicFloat, Qualifier: Qualifier{SemanticName: "POSITION"}}, "semantic(POSITION) float"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBasicType_Categories(t *testing.T) {
	for _, b := range []BasicType{BasicFloat, BasicDouble, BasicFloat16} {
		if !b.IsFloat() || b.IsInteger() || !b.IsArithmetic() {
			t.Errorf("%s: wrong float categories", b)
		}
	}
	for _, b := range []BasicType{BasicInt8, BasicInt16, BasicInt, BasicInt64} {
		if !b.IsSigned() || !b.IsInteger() {
			t.Errorf("%s: wrong signed categories", b)
		}
	}
	for _, b := range []BasicType{BasicUint8, BasicUint16, BasicUint, BasicUint64} {
		if b.IsSigned() || !b.IsInteger() {
			t.Errorf("%s: wrong unsigned categories", b)
		}
	}
	for _, b := range []BasicType{BasicVoid, BasicAtomicUint, BasicSampler, BasicStruct, BasicRayQuery} {
		if b.IsArithmetic() {
			t.Errorf("%s: should not be arithmetic", b)
		}
	}
	if !BasicBool.IsArithmetic() {
		t.Error("bool should be arithmetic")
	}
}

func TestStorage_IsParameter(t *testing.T) {
	params := map[Storage]bool{
		StorageIn:            true,
		StorageOut:           true,
		StorageInOut:         true,
		StorageConstReadOnly: true,
		StorageTemporary:     false,
		StorageConst:         false,
		StorageUniform:       false,
		StoragePayload:       false,
	}
	for s, want := range params {
		if got := s.IsParameter(); got != want {
			t.Errorf("%s.IsParameter() = %v, want %v", s, got, want)
		}
	}
}

func TestConst_Values(t *testing.T) {
	if got := IntConst(-7).Int(); got != -7 {
		t.Errorf("IntConst(-7).Int() = %d", got)
	}
	if got := Int8Const(-128).Int(); got != -128 {
		t.Errorf("Int8Const(-128).Int() = %d", got)
	}
	if got := Uint64Const(math.MaxUint64).Uint(); got != math.MaxUint64 {
		t.Errorf("Uint64Const(max).Uint() = %d", got)
	}
	if got := DoubleConst(0.1).Float(); got != 0.1 {
		t.Errorf("DoubleConst(0.1).Float() = %v", got)
	}
	if !BoolConst(true).Bool() || BoolConst(false).Bool() {
		t.Error("BoolConst round trip failed")
	}

	kinds := []struct {
		c    Const
		want BasicType
	}{
		{FloatConst(1), BasicFloat},
		{DoubleConst(1), BasicDouble},
		{Float16Const(1), BasicFloat16},
		{IntConst(1), BasicInt},
		{UintConst(1), BasicUint},
		{Int16Const(1), BasicInt16},
		{Uint16Const(1), BasicUint16},
		{Uint8Const(1), BasicUint8},
		{Int64Const(1), BasicInt64},
		{BoolConst(true), BasicBool},
	}
	for _, k := range kinds {
		if k.c.Kind != k.want {
			t.Errorf("Kind = %s, want %s", k.c.Kind, k.want)
		}
	}
}

func TestOp_Names(t *testing.T) {
	for op := OpNull; op < opCount; op++ {
		name := op.String()
		parsed, err := ParseOp(name)
		if err != nil {
			t.Errorf("ParseOp(%q) failed: %v", name, err)
			continue
		}
		if parsed != op {
			t.Errorf("ParseOp(%q) = %s, want %s", name, parsed, op)
		}
	}

	if _, err := ParseOp("pow"); err == nil {
		t.Error("Expected error for unknown operation")
	}
}

func TestOp_Categories(t *testing.T) {
	tests := []struct {
		op         Op
		assignment bool
		index      bool
		branch     bool
		unary      bool
	}{
		{OpAdd, false, false, false, false},
		{OpAssign, true, false, false, false},
		{OpRightShiftAssign, true, false, false, false},
		{OpIndexDirectStruct, false, true, false, false},
		{OpNegative, false, false, false, true},
		{OpPreDecrement, false, false, false, true},
		{OpKill, false, false, true, false},
		{OpDefault, false, false, true, false},
		{OpFunctionCall, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			if got := tt.op.IsAssignment(); got != tt.assignment {
				t.Errorf("IsAssignment() = %v", got)
			}
			if got := tt.op.IsIndex(); got != tt.index {
				t.Errorf("IsIndex() = %v", got)
			}
			if got := tt.op.IsBranch(); got != tt.branch {
				t.Errorf("IsBranch() = %v", got)
			}
			if got := tt.op.IsUnary(); got != tt.unary {
				t.Errorf("IsUnary() = %v", got)
			}
		})
	}
}

func TestFunctionName(t *testing.T) {
	tests := map[string]string{
		"f(i1;":         "f",
		"main(":         "main",
		"shade(vf4;f1;": "shade",
		"noSignature":   "noSignature",
		"":              "",
	}
	for in, want := range tests {
		if got := FunctionName(in); got != want {
			t.Errorf("FunctionName(%q) = %q, want %q", in, got, want)
		}
	}
}
