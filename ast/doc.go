// Package ast defines the typed shader syntax tree consumed by the astglsl
// translator.
//
// The tree is produced upstream by a front end that has already parsed the
// shader, resolved every type and qualifier, and folded constants. This
// package only describes the shape of that tree; it never infers types.
//
// # Structure
//
// A translation unit is a root Aggregate (usually OpSequence) whose children
// are function definitions (OpFunction) and one global object list
// (OpLinkerObjects). Every node carries its resolved Type and a source Loc.
//
//	Sequence
//	├── Function "f(i1;"          Type: float
//	│   ├── Parameters
//	│   │   └── Symbol x          Storage: In
//	│   └── Sequence (body)
//	│       ├── Binary Assign
//	│       └── Branch Return
//	└── LinkerObjects
//	    └── Symbol u              Storage: Uniform
//
// Nodes form a closed set: Aggregate, Binary, Unary, Symbol, Constant,
// Selection, Switch, Loop and Branch. Consumers switch on the concrete type.
//
// # Constants
//
// Aggregate constants (vectors, matrices, arrays, structs) store their scalar
// components in one flat, ordered []Const buffer. The number of scalars a
// type occupies is given by Type.ScalarCount.
package ast
