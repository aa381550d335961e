package ast

import (
	"fmt"
)

// ValidationError represents a structural problem in a tree.
type ValidationError struct {
	Message string
	Loc     Loc
	// Function is the name of the enclosing function, if any.
	Function string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Function != "" {
		return fmt.Sprintf("%s: in function %s: %s", e.Loc, e.Function, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Loc, e.Message)
}

// Validator checks the structural preconditions the translator relies on.
type Validator struct {
	errors  []ValidationError
	context validationContext
}

// validationContext holds current validation context.
type validationContext struct {
	functionName string
	loopDepth    int
	switchDepth  int
	inSwitchBody bool
}

// Validate checks the tree rooted at root. It returns the problems found,
// or nil if there are none. Only a nil root is an error.
//
// The translator does not require validation: it recovers from every
// problem reported here with a sentinel and a diagnostic. Validation lets a
// caller reject such trees up front instead.
func Validate(root Node) ([]ValidationError, error) {
	if root == nil {
		return nil, fmt.Errorf("root is nil")
	}
	v := &Validator{}
	v.validateNode(root)
	if len(v.errors) > 0 {
		return v.errors, nil
	}
	return nil, nil
}

//nolint:gocyclo,cyclop // one case per node kind
func (v *Validator) validateNode(n Node) {
	if n == nil {
		return
	}
	if size, ok := negativeArraySize(n.NodeType(), nil); ok {
		v.addError(n, fmt.Sprintf("type %s has negative array size %d", n.NodeType(), size))
	}
	switch n := n.(type) {
	case *Aggregate:
		v.validateAggregate(n)
	case *Binary:
		if n.Left == nil || n.Right == nil {
			v.addError(n, fmt.Sprintf("binary %s is missing an operand", n.Op))
			return
		}
		if !n.Op.IsBinary() && !n.Op.IsIndex() {
			v.addError(n, fmt.Sprintf("operation %s is not binary", n.Op))
		}
		if n.Op == OpIndexDirectStruct {
			v.validateFieldIndex(n)
		}
		v.validateNode(n.Left)
		v.validateNode(n.Right)
	case *Unary:
		if n.Operand == nil {
			v.addError(n, fmt.Sprintf("unary %s is missing its operand", n.Op))
			return
		}
		if !n.Op.IsUnary() {
			v.addError(n, fmt.Sprintf("operation %s is not unary", n.Op))
		}
		v.validateNode(n.Operand)
	case *Symbol:
		if n.Name == "" {
			v.addError(n, fmt.Sprintf("symbol %d has no name", n.ID))
		}
		if n.ID < 0 {
			v.addError(n, fmt.Sprintf("symbol %q has negative identity %d", n.Name, n.ID))
		}
	case *Constant:
		if want := n.NodeType().ScalarCount(); len(n.Values) < want {
			v.addError(n, fmt.Sprintf("constant of type %s needs %d scalars, has %d", n.NodeType(), want, len(n.Values)))
		}
	case *Selection:
		if n.Cond == nil {
			v.addError(n, "selection has no condition")
		}
		v.validateNode(n.Cond)
		v.validateNode(n.True)
		v.validateNode(n.False)
	case *Switch:
		if n.Cond == nil {
			v.addError(n, "switch has no condition")
		}
		v.validateNode(n.Cond)
		v.context.switchDepth++
		saved := v.context.inSwitchBody
		v.context.inSwitchBody = true
		v.validateNode(n.Body)
		v.context.inSwitchBody = saved
		v.context.switchDepth--
	case *Loop:
		if n.Cond == nil && !n.TestFirst {
			v.addError(n, "do-while loop has no condition")
		}
		v.validateNode(n.Cond)
		v.context.loopDepth++
		saved := v.context.inSwitchBody
		v.context.inSwitchBody = false
		v.validateNode(n.Body)
		v.context.inSwitchBody = saved
		v.context.loopDepth--
		v.validateNode(n.Terminal)
	case *Branch:
		v.validateBranch(n)
	default:
		v.addError(n, fmt.Sprintf("unknown node %T", n))
	}
}

// negativeArraySize finds the first negative dimension in t or the types
// of its fields.
func negativeArraySize(t *Type, seen map[*Type]bool) (int, bool) {
	if t == nil || seen[t] {
		return 0, false
	}
	for _, size := range t.ArraySizes {
		if size < 0 {
			return size, true
		}
	}
	if len(t.Fields) == 0 {
		return 0, false
	}
	if seen == nil {
		seen = make(map[*Type]bool)
	}
	seen[t] = true
	for _, f := range t.Fields {
		if size, ok := negativeArraySize(f.Type, seen); ok {
			return size, true
		}
	}
	return 0, false
}

func (v *Validator) validateAggregate(n *Aggregate) {
	switch n.Op {
	case OpFunction:
		saved := v.context
		v.context = validationContext{functionName: FunctionName(n.Name)}
		if len(n.Children) == 0 || len(n.Children) > 2 {
			v.addError(n, fmt.Sprintf("function has %d children, want parameters and an optional body", len(n.Children)))
		} else if params, ok := n.Children[0].(*Aggregate); !ok || params.Op != OpParameters {
			v.addError(n, "first child of a function is not a parameter list")
		}
		for _, c := range n.Children {
			v.validateNode(c)
		}
		v.context = saved
		return
	case OpParameters:
		for _, c := range n.Children {
			if _, ok := c.(*Symbol); !ok {
				v.addError(n, fmt.Sprintf("parameter list holds %T, want a symbol", c))
			}
		}
	case OpLinkerObjects:
		for _, c := range n.Children {
			if _, ok := c.(*Symbol); !ok {
				v.addError(n, fmt.Sprintf("global object list holds %T, want a symbol", c))
			}
		}
	case OpFunctionCall:
		if n.Name == "" {
			v.addError(n, "call has no function name")
		}
	case OpNull, OpSequence, OpConstruct:
	default:
		v.addError(n, fmt.Sprintf("operation %s is not an aggregate", n.Op))
	}
	for _, c := range n.Children {
		v.validateNode(c)
	}
}

func (v *Validator) validateFieldIndex(n *Binary) {
	index, ok := n.Right.(*Constant)
	if !ok || len(index.Values) == 0 {
		v.addError(n, "struct field index is not a constant")
		return
	}
	left := n.Left.NodeType()
	if !left.IsStruct() || left.IsArray() {
		v.addError(n, fmt.Sprintf("field access on non-struct type %s", left))
		return
	}
	if i := index.Values[0].Int(); i < 0 || i >= int64(len(left.Fields)) {
		v.addError(n, fmt.Sprintf("field index %d out of range for %s with %d fields", i, left.TypeName, len(left.Fields)))
	}
}

func (v *Validator) validateBranch(n *Branch) {
	switch n.Op {
	case OpBreak:
		if v.context.loopDepth == 0 && v.context.switchDepth == 0 {
			v.addError(n, "break outside of a loop or switch")
		}
	case OpContinue:
		if v.context.loopDepth == 0 {
			v.addError(n, "continue outside of a loop")
		}
	case OpCase, OpDefault:
		if !v.context.inSwitchBody {
			v.addError(n, fmt.Sprintf("%s label outside of a switch body", n.Op))
		}
		if n.Op == OpCase && n.Expr == nil {
			v.addError(n, "case label has no value")
		}
	case OpKill, OpTerminateInvocation, OpDemote, OpIgnoreIntersection, OpTerminateRay, OpReturn:
	default:
		v.addError(n, fmt.Sprintf("operation %s is not a branch", n.Op))
	}
	v.validateNode(n.Expr)
}

func (v *Validator) addError(n Node, msg string) {
	v.errors = append(v.errors, ValidationError{
		Message:  msg,
		Loc:      n.Pos(),
		Function: v.context.functionName,
	})
}
