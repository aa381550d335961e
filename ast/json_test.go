package ast

import (
	"strings"
	"testing"
)

func TestDecodeJSON_Function(t *testing.T) {
	input := `{
  "node": "aggregate", "op": "function", "name": "f(i1;",
  "type": {"basic": "float", "precision": "highp"},
  "loc": {"file": "a.frag", "line": 3, "column": 5},
  "children": [
    {"node": "aggregate", "op": "parameters", "children": [
      {"node": "symbol", "id": 7, "name": "x", "type": {"basic": "int", "storage": "in"}}
    ]},
    {"node": "aggregate", "op": "sequence", "children": [
      {"node": "branch", "op": "return",
       "expr": {"node": "constant", "type": {"basic": "float"}, "values": [{"kind": "float", "value": 0.5}]}}
    ]}
  ]
}`
	root, err := DecodeJSON([]byte(input))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	fn, ok := root.(*Aggregate)
	if !ok || fn.Op != OpFunction {
		t.Fatalf("Expected function aggregate, got %T", root)
	}
	if fn.Name != "f(i1;" {
		t.Errorf("Name = %q", fn.Name)
	}
	if got := fn.Pos(); got != (Loc{File: "a.frag", Line: 3, Column: 5}) {
		t.Errorf("Pos() = %+v", got)
	}
	if fn.NodeType().Basic != BasicFloat || fn.NodeType().Qualifier.Precision != PrecisionHigh {
		t.Errorf("NodeType() = %v", fn.NodeType())
	}
	if len(fn.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(fn.Children))
	}

	params := fn.Children[0].(*Aggregate)
	x, ok := params.Children[0].(*Symbol)
	if !ok {
		t.Fatalf("Expected symbol parameter, got %T", params.Children[0])
	}
	if x.ID != 7 || x.Name != "x" || x.NodeType().Qualifier.Storage != StorageIn {
		t.Errorf("parameter = %+v", x)
	}
	if x.NodeType().VectorSize != 1 {
		t.Errorf("Expected scalar vector size 1, got %d", x.NodeType().VectorSize)
	}

	body := fn.Children[1].(*Aggregate)
	ret := body.Children[0].(*Branch)
	c := ret.Expr.(*Constant)
	if len(c.Values) != 1 || c.Values[0].Kind != BasicFloat || c.Values[0].Float() != 0.5 {
		t.Errorf("constant values = %+v", c.Values)
	}
}

func TestDecodeJSON_Nodes(t *testing.T) {
	input := `{"node": "aggregate", "op": "sequence", "children": [
  {"node": "unary", "op": "negative", "operand": {"node": "symbol", "name": "a"}},
  {"node": "selection", "cond": {"node": "symbol", "name": "c"}, "true": {"node": "symbol", "name": "a"}},
  {"node": "switch", "cond": {"node": "symbol", "name": "s"}, "body": {"node": "aggregate", "op": "sequence"}},
  {"node": "loop", "doWhile": true, "cond": {"node": "symbol", "name": "c"}, "body": {"node": "aggregate", "op": "null"}},
  {"node": "loop", "body": {"node": "aggregate", "op": "null"}}
]}`
	root, err := DecodeJSON([]byte(input))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	seq := root.(*Aggregate)
	if len(seq.Children) != 5 {
		t.Fatalf("Expected 5 children, got %d", len(seq.Children))
	}

	if u, ok := seq.Children[0].(*Unary); !ok || u.Op != OpNegative || u.Operand == nil {
		t.Errorf("child 0 = %+v", seq.Children[0])
	}
	if s, ok := seq.Children[1].(*Selection); !ok || s.False != nil {
		t.Errorf("child 1 = %+v", seq.Children[1])
	}
	if _, ok := seq.Children[2].(*Switch); !ok {
		t.Errorf("child 2 = %T", seq.Children[2])
	}
	if l, ok := seq.Children[3].(*Loop); !ok || l.TestFirst {
		t.Errorf("child 3 should be a do-while loop: %+v", seq.Children[3])
	}
	if l, ok := seq.Children[4].(*Loop); !ok || !l.TestFirst || l.Cond != nil {
		t.Errorf("child 4 should be an unconditional while loop: %+v", seq.Children[4])
	}
	if seq.Children[0].NodeType().Basic != BasicVoid {
		t.Error("untyped node should report void")
	}
}

func TestDecodeJSON_Types(t *testing.T) {
	input := `{"node": "symbol", "name": "v", "type": {
  "basic": "struct", "name": "S", "storage": "uniform", "array": [4, 0],
  "fields": [
    {"name": "m", "type": {"basic": "float", "cols": 4, "rows": 3}},
    {"name": "tex", "type": {"basic": "sampler",
      "sampler": {"sampled": "uint", "dim": "Cube", "arrayed": true, "shadow": true}}}
  ]}}`
	root, err := DecodeJSON([]byte(input))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	typ := root.NodeType()
	if typ.Basic != BasicStruct || typ.TypeName != "S" || typ.Qualifier.Storage != StorageUniform {
		t.Errorf("type = %v", typ)
	}
	if len(typ.ArraySizes) != 2 || typ.ArraySizes[0] != 4 || typ.ArraySizes[1] != UnsizedArraySize {
		t.Errorf("ArraySizes = %v", typ.ArraySizes)
	}
	if m := typ.Fields[0].Type; !m.IsMatrix() || m.MatrixCols != 4 || m.MatrixRows != 3 {
		t.Errorf("field m = %v", m)
	}
	s := typ.Fields[1].Type.Sampler
	if s == nil {
		t.Fatal("Expected sampler description")
	}
	want := SamplerDesc{Sampled: BasicUint, Dim: SamplerDimCube, Arrayed: true, Shadow: true}
	if *s != want {
		t.Errorf("sampler = %+v, want %+v", *s, want)
	}
}

func TestDecodeJSON_Constants(t *testing.T) {
	input := `{"node": "constant", "values": [
  {"kind": "bool", "value": true},
  {"kind": "int", "value": -3},
  {"kind": "uint64", "value": 18446744073709551615},
  {"kind": "double", "value": 1e300},
  {"kind": "int8", "value": -128}
]}`
	root, err := DecodeJSON([]byte(input))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	v := root.(*Constant).Values
	if !v[0].Bool() || v[0].Kind != BasicBool {
		t.Errorf("bool = %+v", v[0])
	}
	if v[1].Int() != -3 {
		t.Errorf("int = %d", v[1].Int())
	}
	if v[2].Uint() != 18446744073709551615 {
		t.Errorf("uint64 = %d", v[2].Uint())
	}
	if v[3].Kind != BasicDouble || v[3].Float() != 1e300 {
		t.Errorf("double = %+v", v[3])
	}
	if v[4].Kind != BasicInt8 || v[4].Int() != -128 {
		t.Errorf("int8 = %+v", v[4])
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"syntax", `{"node": "symbol"`, "decode tree"},
		{"unknown_field", `{"node": "symbol", "colour": 1}`, "unknown field"},
		{"unknown_node", `{"node": "lambda"}`, `$: unknown node kind "lambda"`},
		{"unknown_op", `{"node": "aggregate", "op": "lambda"}`, `$.op: unknown operation "lambda"`},
		{"nested_path", `{"node": "aggregate", "op": "sequence", "children": [{"node": "binary", "op": "add", "left": {"node": "symbol", "type": {"basic": "quaternion"}}}]}`, `$.children[0].left.type.basic`},
		{"unknown_precision", `{"node": "symbol", "type": {"basic": "float", "precision": "ultra"}}`, `$.type.precision`},
		{"unknown_storage", `{"node": "symbol", "type": {"basic": "float", "storage": "register"}}`, `$.type.storage`},
		{"field_without_type", `{"node": "symbol", "type": {"basic": "struct", "name": "S", "fields": [{"name": "a"}]}}`, `field "a" has no type`},
		{"unknown_dim", `{"node": "symbol", "type": {"basic": "sampler", "sampler": {"dim": "4D"}}}`, `$.type.sampler.dim`},
		{"unknown_const_kind", `{"node": "constant", "values": [{"kind": "complex", "value": 1}]}`, `$.values[0].kind`},
		{"bad_const_value", `{"node": "constant", "values": [{"kind": "int", "value": 1.5}]}`, `$.values[0].value`},
		{"negative_id", `{"node": "symbol", "id": -3, "name": "t", "type": {"basic": "int"}}`, `$.id: negative symbol identity -3`},
		{"negative_array", `{"node": "symbol", "id": 1, "name": "a", "type": {"basic": "int", "array": [4, -2]}}`, `$.type.array[1]: negative array size -2`},
		{"negative_field_array", `{"node": "symbol", "id": 1, "name": "s", "type": {"basic": "struct", "name": "S", "fields": [{"name": "a", "type": {"basic": "float", "array": [-1]}}]}}`, `$.type.fields[0].type.array[0]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tt.input))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}
