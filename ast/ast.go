package ast

import "fmt"

// Loc is a source location, used only for diagnostics.
type Loc struct {
	File   string
	Line   int
	Column int
}

// String renders the location as "file:line".
func (l Loc) String() string {
	file := l.File
	if file == "" {
		file = "<unknown>"
	}
	return fmt.Sprintf("%s:%d", file, l.Line)
}

// Node is a node of the syntax tree.
// The set of implementations is closed; see the package documentation.
type Node interface {
	// Pos returns the source location of the node.
	Pos() Loc
	// NodeType returns the resolved type of the node.
	NodeType() *Type
	node()
}

// Base holds the fields shared by every node.
type Base struct {
	Type *Type
	Loc  Loc
}

// Pos implements Node.
func (b *Base) Pos() Loc { return b.Loc }

// NodeType implements Node. A node without a type reports void.
func (b *Base) NodeType() *Type {
	if b.Type == nil {
		return Void()
	}
	return b.Type
}

// Aggregate is an n-ary node: a statement sequence, function definition,
// parameter list, global object list, call or constructor.
type Aggregate struct {
	Base
	Op Op

	// Name is the mangled function name for OpFunction and OpFunctionCall,
	// for example "f(i1;".
	Name     string
	Children []Node
}

// Binary is a binary operator, assignment or indexing node.
type Binary struct {
	Base
	Op    Op
	Left  Node
	Right Node
}

// Unary is a unary operator node.
type Unary struct {
	Base
	Op      Op
	Operand Node
}

// Symbol is a reference to a named variable.
type Symbol struct {
	Base

	// ID is the unique, stable identity of the variable.
	ID   int64
	Name string
}

// Constant is a folded constant value of any shape.
type Constant struct {
	Base

	// Values holds the scalar components in declaration order.
	Values []Const
}

// Selection is an if/else statement, or a ?: expression when its type is
// not void.
type Selection struct {
	Base
	Cond  Node
	True  Node
	False Node
}

// Switch is a switch statement. Body is a sequence in which case and
// default labels (Branch nodes) interleave with statements.
type Switch struct {
	Base
	Cond Node
	Body Node
}

// Loop is a while, do-while or for loop.
type Loop struct {
	Base
	// Cond may be nil for an unconditional loop.
	Cond Node
	Body Node
	// Terminal is the increment expression of a for loop.
	Terminal Node
	// TestFirst is false for do-while loops.
	TestFirst bool
}

// Branch is a jump statement or a case/default label. Expr is the returned
// value or the case value.
type Branch struct {
	Base
	Op   Op
	Expr Node
}

func (*Aggregate) node() {}
func (*Binary) node()    {}
func (*Unary) node()     {}
func (*Symbol) node()    {}
func (*Constant) node()  {}
func (*Selection) node() {}
func (*Switch) node()    {}
func (*Loop) node()      {}
func (*Branch) node()    {}

// FunctionName strips the mangled parameter signature from a function name:
// "f(i1;" becomes "f".
func FunctionName(mangled string) string {
	for i := 0; i < len(mangled); i++ {
		if mangled[i] == '(' {
			return mangled[:i]
		}
	}
	return mangled
}
