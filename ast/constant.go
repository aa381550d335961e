package ast

import "math"

// Const is one scalar of a folded constant. Kind is the stored discriminant;
// Bits holds the value: the float64 bit pattern for floating kinds, the
// two's-complement pattern for signed kinds and the raw value otherwise.
type Const struct {
	Kind BasicType
	Bits uint64
}

// FloatConst returns a 32-bit float constant.
func FloatConst(v float64) Const { return Const{Kind: BasicFloat, Bits: math.Float64bits(v)} }

// DoubleConst returns a 64-bit float constant.
func DoubleConst(v float64) Const { return Const{Kind: BasicDouble, Bits: math.Float64bits(v)} }

// Float16Const returns a 16-bit float constant.
func Float16Const(v float64) Const { return Const{Kind: BasicFloat16, Bits: math.Float64bits(v)} }

// IntConst returns a 32-bit signed integer constant.
func IntConst(v int32) Const { return Const{Kind: BasicInt, Bits: uint64(int64(v))} } //nolint:gosec // G115: two's-complement storage

// UintConst returns a 32-bit unsigned integer constant.
func UintConst(v uint32) Const { return Const{Kind: BasicUint, Bits: uint64(v)} }

// Int8Const returns an 8-bit signed integer constant.
func Int8Const(v int8) Const { return Const{Kind: BasicInt8, Bits: uint64(int64(v))} } //nolint:gosec // G115: two's-complement storage

// Uint8Const returns an 8-bit unsigned integer constant.
func Uint8Const(v uint8) Const { return Const{Kind: BasicUint8, Bits: uint64(v)} }

// Int16Const returns a 16-bit signed integer constant.
func Int16Const(v int16) Const { return Const{Kind: BasicInt16, Bits: uint64(int64(v))} } //nolint:gosec // G115: two's-complement storage

// Uint16Const returns a 16-bit unsigned integer constant.
func Uint16Const(v uint16) Const { return Const{Kind: BasicUint16, Bits: uint64(v)} }

// Int64Const returns a 64-bit signed integer constant.
func Int64Const(v int64) Const { return Const{Kind: BasicInt64, Bits: uint64(v)} } //nolint:gosec // G115: two's-complement storage

// Uint64Const returns a 64-bit unsigned integer constant.
func Uint64Const(v uint64) Const { return Const{Kind: BasicUint64, Bits: v} }

// BoolConst returns a boolean constant.
func BoolConst(v bool) Const {
	if v {
		return Const{Kind: BasicBool, Bits: 1}
	}
	return Const{Kind: BasicBool}
}

// Float returns the value of a floating constant.
func (c Const) Float() float64 { return math.Float64frombits(c.Bits) }

// Int returns the value of a signed integer constant.
func (c Const) Int() int64 { return int64(c.Bits) } //nolint:gosec // G115: two's-complement storage

// Uint returns the value of an unsigned integer constant.
func (c Const) Uint() uint64 { return c.Bits }

// Bool returns the value of a boolean constant.
func (c Const) Bool() bool { return c.Bits != 0 }
