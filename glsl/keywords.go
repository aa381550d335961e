// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// glslKeywords contains the GLSL words that cannot name a user variable,
// struct, field or function: type names (including the explicit-width
// arithmetic types), language keywords and words reserved for future use.
//
// Built-in functions and gl_* variables are not listed. The input tree
// refers to them by their real names and they must be emitted unchanged.
var glslKeywords = map[string]struct{}{
	// Basic types
	"void": {}, "bool": {}, "int": {}, "uint": {}, "float": {}, "double": {},

	// Explicit-width arithmetic types
	"int8_t": {}, "uint8_t": {}, "int16_t": {}, "uint16_t": {},
	"int32_t": {}, "uint32_t": {}, "int64_t": {}, "uint64_t": {},
	"float16_t": {}, "float32_t": {}, "float64_t": {},
	"i8vec2": {}, "i8vec3": {}, "i8vec4": {},
	"u8vec2": {}, "u8vec3": {}, "u8vec4": {},
	"i16vec2": {}, "i16vec3": {}, "i16vec4": {},
	"u16vec2": {}, "u16vec3": {}, "u16vec4": {},
	"i32vec2": {}, "i32vec3": {}, "i32vec4": {},
	"u32vec2": {}, "u32vec3": {}, "u32vec4": {},
	"i64vec2": {}, "i64vec3": {}, "i64vec4": {},
	"u64vec2": {}, "u64vec3": {}, "u64vec4": {},
	"f16vec2": {}, "f16vec3": {}, "f16vec4": {},
	"f32vec2": {}, "f32vec3": {}, "f32vec4": {},
	"f64vec2": {}, "f64vec3": {}, "f64vec4": {},
	"f16mat2": {}, "f16mat3": {}, "f16mat4": {},
	"f32mat2": {}, "f32mat3": {}, "f32mat4": {},
	"f64mat2": {}, "f64mat3": {}, "f64mat4": {},
	"f16mat2x2": {}, "f16mat2x3": {}, "f16mat2x4": {},
	"f16mat3x2": {}, "f16mat3x3": {}, "f16mat3x4": {},
	"f16mat4x2": {}, "f16mat4x3": {}, "f16mat4x4": {},
	"f32mat2x2": {}, "f32mat2x3": {}, "f32mat2x4": {},
	"f32mat3x2": {}, "f32mat3x3": {}, "f32mat3x4": {},
	"f32mat4x2": {}, "f32mat4x3": {}, "f32mat4x4": {},
	"f64mat2x2": {}, "f64mat2x3": {}, "f64mat2x4": {},
	"f64mat3x2": {}, "f64mat3x3": {}, "f64mat3x4": {},
	"f64mat4x2": {}, "f64mat4x3": {}, "f64mat4x4": {},

	// Vector types
	"vec2": {}, "vec3": {}, "vec4": {},
	"ivec2": {}, "ivec3": {}, "ivec4": {},
	"uvec2": {}, "uvec3": {}, "uvec4": {},
	"bvec2": {}, "bvec3": {}, "bvec4": {},
	"dvec2": {}, "dvec3": {}, "dvec4": {},

	// Matrix types
	"mat2": {}, "mat3": {}, "mat4": {},
	"mat2x2": {}, "mat2x3": {}, "mat2x4": {},
	"mat3x2": {}, "mat3x3": {}, "mat3x4": {},
	"mat4x2": {}, "mat4x3": {}, "mat4x4": {},
	"dmat2": {}, "dmat3": {}, "dmat4": {},
	"dmat2x2": {}, "dmat2x3": {}, "dmat2x4": {},
	"dmat3x2": {}, "dmat3x3": {}, "dmat3x4": {},
	"dmat4x2": {}, "dmat4x3": {}, "dmat4x4": {},

	// Sampler types
	"sampler": {}, "samplerShadow": {}, "sampler1D": {}, "sampler2D": {}, "sampler3D": {},
	"samplerCube": {}, "sampler2DRect": {},
	"sampler1DShadow": {}, "sampler2DShadow": {}, "samplerCubeShadow": {}, "sampler2DRectShadow": {},
	"sampler1DArray": {}, "sampler2DArray": {},
	"sampler1DArrayShadow": {}, "sampler2DArrayShadow": {},
	"samplerCubeArray": {}, "samplerCubeArrayShadow": {},
	"samplerBuffer": {}, "sampler2DMS": {}, "sampler2DMSArray": {},
	"isampler1D": {}, "isampler2D": {}, "isampler3D": {}, "isamplerCube": {},
	"usampler1D": {}, "usampler2D": {}, "usampler3D": {}, "usamplerCube": {},
	"subpassInput": {}, "subpassInputMS": {},

	// Image types
	"image1D": {}, "image2D": {}, "image3D": {},
	"imageCube": {}, "image2DRect": {}, "imageBuffer": {},
	"iimage2D": {}, "uimage2D": {},

	// Opaque ray tracing types
	"atomic_uint": {}, "accelerationStructureEXT": {}, "rayQueryEXT": {},

	// Keywords
	"attribute": {}, "const": {}, "uniform": {}, "varying": {},
	"buffer": {}, "shared": {}, "coherent": {}, "volatile": {}, "restrict": {}, "readonly": {}, "writeonly": {},
	"layout": {}, "centroid": {}, "flat": {}, "smooth": {}, "noperspective": {},
	"patch": {}, "sample": {},
	"break": {}, "continue": {}, "do": {}, "for": {}, "while": {}, "switch": {}, "case": {}, "default": {},
	"if": {}, "else": {},
	"subroutine": {},
	"in":         {}, "out": {}, "inout": {},
	"true": {}, "false": {},
	"invariant": {}, "precise": {},
	"discard": {}, "return": {}, "demote": {}, "terminateInvocation": {},
	"ignoreIntersectionEXT": {}, "terminateRayEXT": {},
	"struct": {},

	// Precision qualifiers
	"lowp": {}, "mediump": {}, "highp": {}, "precision": {},

	// Reserved for future use
	"common": {}, "partition": {}, "active": {},
	"asm": {}, "class": {}, "union": {}, "enum": {}, "typedef": {}, "template": {}, "this": {},
	"resource": {},
	"goto":     {},
	"inline":   {}, "noinline": {}, "public": {}, "static": {}, "extern": {}, "external": {}, "interface": {},
	"long": {}, "short": {}, "half": {}, "fixed": {}, "unsigned": {}, "superp": {},
	"input": {}, "output": {},
	"hvec2": {}, "hvec3": {}, "hvec4": {}, "fvec2": {}, "fvec3": {}, "fvec4": {},
	"sampler3DRect": {},
	"filter":        {},
	"sizeof":        {}, "cast": {},
	"namespace": {}, "using": {},
}

// isKeyword checks if a name is a GLSL keyword or reserved word.
func isKeyword(name string) bool {
	_, ok := glslKeywords[name]
	return ok
}

// escapeKeyword escapes a name if it conflicts with GLSL keywords.
// Returns the name with underscore prefix if it's reserved.
func escapeKeyword(name string) string {
	if name == "" {
		return "_unnamed"
	}
	if isKeyword(name) {
		return "_" + name
	}
	return name
}
