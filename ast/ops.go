package ast

import "fmt"

// Op identifies the operation of an Aggregate, Binary, Unary or Branch node.
type Op uint16

const (
	OpNull Op = iota

	// Aggregate operations.
	OpSequence
	OpFunction
	OpParameters
	OpLinkerObjects
	OpFunctionCall
	OpConstruct

	// Unary operations.
	OpNegative
	OpLogicalNot
	OpBitwiseNot
	OpPostIncrement
	OpPostDecrement
	OpPreIncrement
	OpPreDecrement

	// Binary arithmetic, bitwise, relational and logical operations.
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpRightShift
	OpLeftShift
	OpAnd
	OpInclusiveOr
	OpExclusiveOr
	OpEqual
	OpNotEqual
	OpVectorEqual
	OpVectorNotEqual
	OpLessThan
	OpGreaterThan
	OpLessThanEqual
	OpGreaterThanEqual
	OpVectorTimesScalar
	OpVectorTimesMatrix
	OpMatrixTimesVector
	OpMatrixTimesScalar
	OpMatrixTimesMatrix
	OpLogicalOr
	OpLogicalXor
	OpLogicalAnd

	// Indexing.
	OpIndexDirect
	OpIndexIndirect
	OpIndexDirectStruct

	// Assignments.
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpVectorTimesMatrixAssign
	OpVectorTimesScalarAssign
	OpMatrixTimesScalarAssign
	OpMatrixTimesMatrixAssign
	OpDivAssign
	OpModAssign
	OpAndAssign
	OpInclusiveOrAssign
	OpExclusiveOrAssign
	OpLeftShiftAssign
	OpRightShiftAssign

	// Branches.
	OpKill
	OpTerminateInvocation
	OpDemote
	OpIgnoreIntersection
	OpTerminateRay
	OpBreak
	OpContinue
	OpReturn
	OpCase
	OpDefault

	opCount
)

var opNames = [...]string{
	OpNull:                    "null",
	OpSequence:                "sequence",
	OpFunction:                "function",
	OpParameters:              "parameters",
	OpLinkerObjects:           "linkerObjects",
	OpFunctionCall:            "call",
	OpConstruct:               "construct",
	OpNegative:                "negative",
	OpLogicalNot:              "logicalNot",
	OpBitwiseNot:              "bitwiseNot",
	OpPostIncrement:           "postIncrement",
	OpPostDecrement:           "postDecrement",
	OpPreIncrement:            "preIncrement",
	OpPreDecrement:            "preDecrement",
	OpAdd:                     "add",
	OpSub:                     "sub",
	OpMul:                     "mul",
	OpDiv:                     "div",
	OpMod:                     "mod",
	OpRightShift:              "rightShift",
	OpLeftShift:               "leftShift",
	OpAnd:                     "and",
	OpInclusiveOr:             "inclusiveOr",
	OpExclusiveOr:             "exclusiveOr",
	OpEqual:                   "equal",
	OpNotEqual:                "notEqual",
	OpVectorEqual:             "vectorEqual",
	OpVectorNotEqual:          "vectorNotEqual",
	OpLessThan:                "lessThan",
	OpGreaterThan:             "greaterThan",
	OpLessThanEqual:           "lessThanEqual",
	OpGreaterThanEqual:        "greaterThanEqual",
	OpVectorTimesScalar:       "vectorTimesScalar",
	OpVectorTimesMatrix:       "vectorTimesMatrix",
	OpMatrixTimesVector:       "matrixTimesVector",
	OpMatrixTimesScalar:       "matrixTimesScalar",
	OpMatrixTimesMatrix:       "matrixTimesMatrix",
	OpLogicalOr:               "logicalOr",
	OpLogicalXor:              "logicalXor",
	OpLogicalAnd:              "logicalAnd",
	OpIndexDirect:             "indexDirect",
	OpIndexIndirect:           "indexIndirect",
	OpIndexDirectStruct:       "indexDirectStruct",
	OpAssign:                  "assign",
	OpAddAssign:               "addAssign",
	OpSubAssign:               "subAssign",
	OpMulAssign:               "mulAssign",
	OpVectorTimesMatrixAssign: "vectorTimesMatrixAssign",
	OpVectorTimesScalarAssign: "vectorTimesScalarAssign",
	OpMatrixTimesScalarAssign: "matrixTimesScalarAssign",
	OpMatrixTimesMatrixAssign: "matrixTimesMatrixAssign",
	OpDivAssign:               "divAssign",
	OpModAssign:               "modAssign",
	OpAndAssign:               "andAssign",
	OpInclusiveOrAssign:       "inclusiveOrAssign",
	OpExclusiveOrAssign:       "exclusiveOrAssign",
	OpLeftShiftAssign:         "leftShiftAssign",
	OpRightShiftAssign:        "rightShiftAssign",
	OpKill:                    "kill",
	OpTerminateInvocation:     "terminateInvocation",
	OpDemote:                  "demote",
	OpIgnoreIntersection:      "ignoreIntersection",
	OpTerminateRay:            "terminateRay",
	OpBreak:                   "break",
	OpContinue:                "continue",
	OpReturn:                  "return",
	OpCase:                    "case",
	OpDefault:                 "default",
}

var opByName = func() map[string]Op {
	m := make(map[string]Op, len(opNames))
	for op, name := range opNames {
		m[name] = Op(op) //nolint:gosec // G115: op indexes a fixed table
	}
	return m
}()

// String returns the name used for op in JSON input and diagnostics.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint16(op))
}

// ParseOp returns the Op named s.
func ParseOp(s string) (Op, error) {
	op, ok := opByName[s]
	if !ok {
		return OpNull, fmt.Errorf("unknown operation %q", s)
	}
	return op, nil
}

// IsAssignment reports whether op is a simple or compound assignment.
func (op Op) IsAssignment() bool {
	return op >= OpAssign && op <= OpRightShiftAssign
}

// IsIndex reports whether op is one of the indexing operations.
func (op Op) IsIndex() bool {
	return op == OpIndexDirect || op == OpIndexIndirect || op == OpIndexDirectStruct
}

// IsBranch reports whether op is a branch or case label.
func (op Op) IsBranch() bool {
	return op >= OpKill && op <= OpDefault
}

// IsUnary reports whether op is a unary operation.
func (op Op) IsUnary() bool {
	return op >= OpNegative && op <= OpPreDecrement
}

// IsBinary reports whether op is valid on a Binary node.
func (op Op) IsBinary() bool {
	return op >= OpAdd && op <= OpRightShiftAssign
}
