package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// The JSON form of a tree mirrors the node structs. Every node object has a
// "node" discriminant; enums are spelled by name:
//
//	{"node": "aggregate", "op": "function", "name": "f(i1;",
//	 "type": {"basic": "float"},
//	 "loc": {"file": "a.frag", "line": 3},
//	 "children": [...]}
//
// Constant values are {"kind": "<basic>", "value": <number|bool>}.

type jsonLoc struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column,omitempty"`
}

type jsonField struct {
	Name string    `json:"name"`
	Type *jsonType `json:"type"`
}

type jsonSampler struct {
	Sampled string `json:"sampled,omitempty"`
	Dim     string `json:"dim"`
	Arrayed bool   `json:"arrayed,omitempty"`
	Shadow  bool   `json:"shadow,omitempty"`
	MS      bool   `json:"ms,omitempty"`
	Image   bool   `json:"image,omitempty"`
	Pure    bool   `json:"pure,omitempty"`
}

type jsonType struct {
	Basic     string       `json:"basic"`
	Vector    int          `json:"vector,omitempty"`
	Cols      int          `json:"cols,omitempty"`
	Rows      int          `json:"rows,omitempty"`
	Array     []int        `json:"array,omitempty"`
	Precision string       `json:"precision,omitempty"`
	Storage   string       `json:"storage,omitempty"`
	Semantic  string       `json:"semantic,omitempty"`
	Name      string       `json:"name,omitempty"`
	Fields    []jsonField  `json:"fields,omitempty"`
	Sampler   *jsonSampler `json:"sampler,omitempty"`
}

type jsonConst struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value"`
}

type jsonNode struct {
	Node     string      `json:"node"`
	Op       string      `json:"op,omitempty"`
	Name     string      `json:"name,omitempty"`
	ID       int64       `json:"id,omitempty"`
	Type     *jsonType   `json:"type,omitempty"`
	Loc      *jsonLoc    `json:"loc,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
	Left     *jsonNode   `json:"left,omitempty"`
	Right    *jsonNode   `json:"right,omitempty"`
	Operand  *jsonNode   `json:"operand,omitempty"`
	Values   []jsonConst `json:"values,omitempty"`
	Cond     *jsonNode   `json:"cond,omitempty"`
	True     *jsonNode   `json:"true,omitempty"`
	False    *jsonNode   `json:"false,omitempty"`
	Body     *jsonNode   `json:"body,omitempty"`
	Terminal *jsonNode   `json:"terminal,omitempty"`
	DoWhile  bool        `json:"doWhile,omitempty"`
	Expr     *jsonNode   `json:"expr,omitempty"`
}

var jsonBasicNames = map[string]BasicType{
	"void": BasicVoid, "float": BasicFloat, "double": BasicDouble, "float16": BasicFloat16,
	"int8": BasicInt8, "uint8": BasicUint8, "int16": BasicInt16, "uint16": BasicUint16,
	"int": BasicInt, "uint": BasicUint, "int64": BasicInt64, "uint64": BasicUint64,
	"bool": BasicBool, "atomic_uint": BasicAtomicUint, "sampler": BasicSampler,
	"struct": BasicStruct, "block": BasicBlock, "accStruct": BasicAccStruct,
	"reference": BasicReference, "rayQuery": BasicRayQuery, "string": BasicString,
	"spirvType": BasicSpirvType,
}

var jsonPrecisionNames = map[string]Precision{
	"": PrecisionNone, "lowp": PrecisionLow, "mediump": PrecisionMedium, "highp": PrecisionHigh,
}

var jsonStorageNames = map[string]Storage{
	"": StorageTemporary, "temp": StorageTemporary, "global": StorageGlobal,
	"const": StorageConst, "varyingIn": StorageVaryingIn, "varyingOut": StorageVaryingOut,
	"uniform": StorageUniform, "buffer": StorageBuffer, "shared": StorageShared,
	"in": StorageIn, "out": StorageOut, "inout": StorageInOut, "constReadOnly": StorageConstReadOnly,
	"payload": StoragePayload, "payloadIn": StoragePayloadIn, "hitAttr": StorageHitAttr,
	"callableData": StorageCallableData, "callableDataIn": StorageCallableDataIn,
	"spirvStorageClass": StorageSpirvStorageClass,
}

var jsonDimNames = map[string]SamplerDim{
	"1D": SamplerDim1D, "2D": SamplerDim2D, "3D": SamplerDim3D, "Cube": SamplerDimCube,
	"Rect": SamplerDimRect, "Buffer": SamplerDimBuffer, "Subpass": SamplerDimSubpass,
}

// DecodeJSON decodes a tree from its JSON form. Unknown fields, node kinds
// and enum names are errors that name the offending JSON path.
func DecodeJSON(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var root jsonNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return root.toNode("$")
}

//nolint:gocyclo,cyclop // one case per node kind
func (j *jsonNode) toNode(path string) (Node, error) {
	if j == nil {
		return nil, nil
	}
	typ, err := j.Type.toType(path + ".type")
	if err != nil {
		return nil, err
	}
	base := Base{Type: typ}
	if j.Loc != nil {
		base.Loc = Loc{File: j.Loc.File, Line: j.Loc.Line, Column: j.Loc.Column}
	}

	child := func(name string, c *jsonNode) (Node, error) {
		return c.toNode(path + "." + name)
	}

	switch j.Node {
	case "aggregate":
		op, err := j.op(path)
		if err != nil {
			return nil, err
		}
		n := &Aggregate{Base: base, Op: op, Name: j.Name}
		for i, c := range j.Children {
			cn, err := c.toNode(fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			if cn != nil {
				n.Children = append(n.Children, cn)
			}
		}
		return n, nil

	case "binary":
		op, err := j.op(path)
		if err != nil {
			return nil, err
		}
		left, err := child("left", j.Left)
		if err != nil {
			return nil, err
		}
		right, err := child("right", j.Right)
		if err != nil {
			return nil, err
		}
		return &Binary{Base: base, Op: op, Left: left, Right: right}, nil

	case "unary":
		op, err := j.op(path)
		if err != nil {
			return nil, err
		}
		operand, err := child("operand", j.Operand)
		if err != nil {
			return nil, err
		}
		return &Unary{Base: base, Op: op, Operand: operand}, nil

	case "symbol":
		if j.ID < 0 {
			return nil, fmt.Errorf("%s.id: negative symbol identity %d", path, j.ID)
		}
		return &Symbol{Base: base, ID: j.ID, Name: j.Name}, nil

	case "constant":
		n := &Constant{Base: base, Values: make([]Const, 0, len(j.Values))}
		for i, v := range j.Values {
			c, err := v.toConst(fmt.Sprintf("%s.values[%d]", path, i))
			if err != nil {
				return nil, err
			}
			n.Values = append(n.Values, c)
		}
		return n, nil

	case "selection":
		cond, err := child("cond", j.Cond)
		if err != nil {
			return nil, err
		}
		t, err := child("true", j.True)
		if err != nil {
			return nil, err
		}
		f, err := child("false", j.False)
		if err != nil {
			return nil, err
		}
		return &Selection{Base: base, Cond: cond, True: t, False: f}, nil

	case "switch":
		cond, err := child("cond", j.Cond)
		if err != nil {
			return nil, err
		}
		body, err := child("body", j.Body)
		if err != nil {
			return nil, err
		}
		return &Switch{Base: base, Cond: cond, Body: body}, nil

	case "loop":
		cond, err := child("cond", j.Cond)
		if err != nil {
			return nil, err
		}
		body, err := child("body", j.Body)
		if err != nil {
			return nil, err
		}
		terminal, err := child("terminal", j.Terminal)
		if err != nil {
			return nil, err
		}
		return &Loop{Base: base, Cond: cond, Body: body, Terminal: terminal, TestFirst: !j.DoWhile}, nil

	case "branch":
		op, err := j.op(path)
		if err != nil {
			return nil, err
		}
		expr, err := child("expr", j.Expr)
		if err != nil {
			return nil, err
		}
		return &Branch{Base: base, Op: op, Expr: expr}, nil

	default:
		return nil, fmt.Errorf("%s: unknown node kind %q", path, j.Node)
	}
}

func (j *jsonNode) op(path string) (Op, error) {
	op, err := ParseOp(j.Op)
	if err != nil {
		return OpNull, fmt.Errorf("%s.op: %w", path, err)
	}
	return op, nil
}

func (j *jsonType) toType(path string) (*Type, error) {
	if j == nil {
		return nil, nil
	}
	basic, ok := jsonBasicNames[j.Basic]
	if !ok {
		return nil, fmt.Errorf("%s.basic: unknown basic type %q", path, j.Basic)
	}
	precision, ok := jsonPrecisionNames[j.Precision]
	if !ok {
		return nil, fmt.Errorf("%s.precision: unknown precision %q", path, j.Precision)
	}
	storage, ok := jsonStorageNames[j.Storage]
	if !ok {
		return nil, fmt.Errorf("%s.storage: unknown storage qualifier %q", path, j.Storage)
	}
	for i, size := range j.Array {
		if size < 0 {
			return nil, fmt.Errorf("%s.array[%d]: negative array size %d", path, i, size)
		}
	}
	t := &Type{
		Basic:      basic,
		VectorSize: j.Vector,
		MatrixCols: j.Cols,
		MatrixRows: j.Rows,
		ArraySizes: j.Array,
		Qualifier:  Qualifier{Precision: precision, Storage: storage, SemanticName: j.Semantic},
		TypeName:   j.Name,
	}
	if t.VectorSize == 0 {
		t.VectorSize = 1
	}
	for i, f := range j.Fields {
		ft, err := f.Type.toType(fmt.Sprintf("%s.fields[%d].type", path, i))
		if err != nil {
			return nil, err
		}
		if ft == nil {
			return nil, fmt.Errorf("%s.fields[%d]: field %q has no type", path, i, f.Name)
		}
		t.Fields = append(t.Fields, Field{Name: f.Name, Type: ft})
	}
	if s := j.Sampler; s != nil {
		dim, ok := jsonDimNames[s.Dim]
		if !ok {
			return nil, fmt.Errorf("%s.sampler.dim: unknown dimension %q", path, s.Dim)
		}
		sampled := BasicFloat
		if s.Sampled != "" {
			if sampled, ok = jsonBasicNames[s.Sampled]; !ok {
				return nil, fmt.Errorf("%s.sampler.sampled: unknown basic type %q", path, s.Sampled)
			}
		}
		t.Sampler = &SamplerDesc{
			Sampled: sampled,
			Dim:     dim,
			Arrayed: s.Arrayed,
			Shadow:  s.Shadow,
			MS:      s.MS,
			Image:   s.Image,
			Pure:    s.Pure,
		}
	}
	return t, nil
}

func (j jsonConst) toConst(path string) (Const, error) {
	kind, ok := jsonBasicNames[j.Kind]
	if !ok {
		return Const{}, fmt.Errorf("%s.kind: unknown constant kind %q", path, j.Kind)
	}
	raw := string(j.Value)
	switch {
	case kind == BasicBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return Const{}, fmt.Errorf("%s.value: %w", path, err)
		}
		return BoolConst(v), nil
	case kind.IsFloat():
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Const{}, fmt.Errorf("%s.value: %w", path, err)
		}
		c := FloatConst(v)
		c.Kind = kind
		return c, nil
	case kind.IsSigned():
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Const{}, fmt.Errorf("%s.value: %w", path, err)
		}
		return Const{Kind: kind, Bits: uint64(v)}, nil //nolint:gosec // G115: two's-complement storage
	default:
		// Unsigned kinds, and malformed discriminants kept as raw bits.
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Const{}, fmt.Errorf("%s.value: %w", path, err)
		}
		return Const{Kind: kind, Bits: v}, nil
	}
}
