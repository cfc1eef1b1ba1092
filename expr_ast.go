package viml

// ExprOp enumerates the expression node variants. Replaces the tagged
// union of the original ExpressionType enum (kTypeTernaryConditional,
// kTypeAdd, kTypeSubtract, ...) with a Go sum type: each ExprNode carries
// exactly the payload its Op needs, so there is no free-by-tag dispatch.
type ExprOp int

const (
	OpUnknown ExprOp = iota
	OpTernary
	OpLogicalOr
	OpLogicalAnd
	OpGreater
	OpGreaterEqual
	OpLess
	OpLessEqual
	OpEquals
	OpNotEquals
	OpIdentical
	OpNotIdentical
	OpMatches
	OpNotMatches
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpStringConcat
	OpNot
	OpMinus
	OpPlus
	OpDecimalNumber
	OpOctalNumber
	OpHexNumber
	OpFloat
	OpDoubleQuotedString
	OpSingleQuotedString
	OpOption
	OpRegister
	OpEnvironmentVariable
	OpVariableName
	OpSimpleVariableName
	OpIdentifier
	OpCurlyName
	OpExpression // parenthesised (expr)
	OpList
	OpDictionary
	OpSubscript
	OpConcatOrSubscript
	OpCall
	OpEmptySubscript
	OpLambda // {a, b -> a + b}, token-based parser only (expr_token.go)
)

// IgnoreCase selects which case-sensitivity rule governs a comparison:
// read from the `#`/`?` suffix following the operator.
type IgnoreCase int

const (
	UseOption IgnoreCase = iota
	MatchCase
	CaseIgnore
)

// ExprNode is a node in the expression AST. Children form a left-to-right
// list via Next (used for multi-expression arguments, e.g. :echo a b c);
// an operator's own operands are held in dedicated fields below rather
// than as an untyped children slice, so each Op only carries what it
// needs.
type ExprNode struct {
	Op  ExprOp
	Pos Position
	Next *ExprNode

	// Terminal payloads.
	Str   string // string/number/identifier literal text, option/env/register name
	Scope string // not set by either parser: a scope prefix such as "s:" stays part of Str

	// Ternary / binary / unary operands.
	Cond, Then, Else *ExprNode // OpTernary
	Left, Right       *ExprNode // binary ops
	Operand           *ExprNode // unary ops, OpExpression, OpNot

	// Comparison case-compare strategy.
	Case IgnoreCase

	// OpVariableName: alternating Identifier/CurlyName children.
	Parts []*ExprNode

	// OpLambda parameter names; the body is held in Operand.
	LambdaParams []string

	// OpList / OpCall args / OpDictionary entries.
	Items []*ExprNode
	Keys  []*ExprNode // parallel to Items for OpDictionary values

	// OpSubscript / OpConcatOrSubscript.
	Base  *ExprNode
	Index *ExprNode // single-index subscript
	Lo, Hi *ExprNode // slice bounds; nil means OpEmptySubscript

	// OpCall.
	Func *ExprNode
	Args []*ExprNode
}

func newLeaf(op ExprOp, pos Position, text string) *ExprNode {
	return &ExprNode{Op: op, Pos: pos, Str: text}
}
