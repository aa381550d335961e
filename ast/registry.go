package ast

import (
	"fmt"
	"strconv"
)

// StructRegistry collects the struct types a translation unit uses, once
// each, in an order where every struct follows the structs its fields use.
type StructRegistry struct {
	structs []*Type
	keys    map[string]string // struct name -> structural key
	active  map[string]bool   // names being registered, for cycle detection
	keyBuf  []byte            // reusable buffer for building type keys
}

// NewStructRegistry creates an empty registry.
func NewStructRegistry() *StructRegistry {
	return &StructRegistry{
		structs: make([]*Type, 0, 8),
		keys:    make(map[string]string, 8),
		active:  make(map[string]bool, 8),
		keyBuf:  make([]byte, 0, 64),
	}
}

// Register records every struct reachable from t. Block types are not
// recorded themselves, but structs used by their members are.
//
// Registering a struct whose name is already taken by a structurally
// different struct returns an error and leaves the first one in place.
func (r *StructRegistry) Register(t *Type) error {
	if t == nil || !t.IsStruct() {
		return nil
	}
	name := t.TypeName
	if r.active[name] {
		return fmt.Errorf("struct %q contains itself", name)
	}
	key := r.TypeKey(t.BaseType())
	if t.Basic == BasicStruct {
		if prev, ok := r.keys[name]; ok {
			if prev != key {
				return fmt.Errorf("struct %q redeclared with a different layout", name)
			}
			return nil
		}
	}

	r.active[name] = true
	var firstErr error
	for _, f := range t.Fields {
		if err := r.Register(f.Type); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	delete(r.active, name)

	if t.Basic == BasicStruct {
		r.keys[name] = key
		r.structs = append(r.structs, t.BaseType())
	}
	return firstErr
}

// Structs returns the registered structs in definition order.
func (r *StructRegistry) Structs() []*Type {
	return r.structs
}

// Count returns the number of registered structs.
func (r *StructRegistry) Count() int {
	return len(r.structs)
}

// TypeKey returns a key that is equal for structurally identical types.
// Storage qualifiers are ignored; precision is part of the key.
func (r *StructRegistry) TypeKey(t *Type) string {
	b := r.keyBuf[:0]
	b = appendTypeKey(b, t, false)
	r.keyBuf = b
	return string(b)
}

// appendTypeKey writes the key of t. Struct fields that are themselves
// structs contribute only their name; their layout has its own key.
func appendTypeKey(b []byte, t *Type, nested bool) []byte {
	if t == nil {
		return append(b, "nil"...)
	}
	for _, size := range t.ArraySizes {
		b = append(b, '[')
		b = strconv.AppendInt(b, int64(size), 10)
		b = append(b, ']')
	}
	b = append(b, t.Basic.String()...)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(t.VectorSize), 10)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(t.MatrixCols), 10)
	b = append(b, 'x')
	b = strconv.AppendInt(b, int64(t.MatrixRows), 10)
	b = append(b, ':')
	b = strconv.AppendInt(b, int64(t.Qualifier.Precision), 10)
	if t.IsStruct() {
		b = append(b, ":struct "...)
		b = append(b, t.TypeName...)
		if nested {
			return b
		}
		b = append(b, '{')
		for _, f := range t.Fields {
			b = append(b, f.Name...)
			b = append(b, ' ')
			b = appendTypeKey(b, f.Type, true)
			b = append(b, ';')
		}
		b = append(b, '}')
	}
	return b
}
