package viml

import (
	"testing"

	"kr.dev/diff"
)

func TestParseExprPrecedence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  *ExprNode
	}{
		{
			name:  "multiply binds tighter than add",
			input: "a + b * c",
			want: &ExprNode{Op: OpAdd,
				Left:  &ExprNode{Op: OpSimpleVariableName, Str: "a"},
				Right: &ExprNode{Op: OpMultiply, Left: &ExprNode{Op: OpSimpleVariableName, Str: "b"}, Right: &ExprNode{Op: OpSimpleVariableName, Str: "c"}},
			},
		},
		{
			name:  "multiply binds tighter than add on the left",
			input: "a * b + c",
			want: &ExprNode{Op: OpAdd,
				Left:  &ExprNode{Op: OpMultiply, Left: &ExprNode{Op: OpSimpleVariableName, Str: "a"}, Right: &ExprNode{Op: OpSimpleVariableName, Str: "b"}},
				Right: &ExprNode{Op: OpSimpleVariableName, Str: "c"},
			},
		},
		{
			name:  "concat left associative",
			input: "a . b . c",
			want: &ExprNode{Op: OpStringConcat,
				Left:  &ExprNode{Op: OpStringConcat, Left: &ExprNode{Op: OpSimpleVariableName, Str: "a"}, Right: &ExprNode{Op: OpSimpleVariableName, Str: "b"}},
				Right: &ExprNode{Op: OpSimpleVariableName, Str: "c"},
			},
		},
		{
			name:  "ternary right associative",
			input: "a ? b : c ? d : e",
			want: &ExprNode{Op: OpTernary,
				Cond: &ExprNode{Op: OpSimpleVariableName, Str: "a"},
				Then: &ExprNode{Op: OpSimpleVariableName, Str: "b"},
				Else: &ExprNode{Op: OpTernary,
					Cond: &ExprNode{Op: OpSimpleVariableName, Str: "c"},
					Then: &ExprNode{Op: OpSimpleVariableName, Str: "d"},
					Else: &ExprNode{Op: OpSimpleVariableName, Str: "e"},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _, err := ParseExpr(c.input)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", c.input, err)
			}
			diff.Test(t, t.Errorf, stripExprPos(got), c.want)
		})
	}
}

func TestParseExprLiterals(t *testing.T) {
	cases := []struct {
		name  string
		input string
		op    ExprOp
		text  string
	}{
		{"decimal", "123", OpDecimalNumber, "123"},
		{"hex", "0x1F", OpHexNumber, "0x1F"},
		{"octal", "0755", OpOctalNumber, "0755"},
		{"float", "3.14", OpFloat, "3.14"},
		{"not a float: dotted version", "1.2.3", OpDecimalNumber, "1"},
		{"double quoted string", `"hi"`, OpDoubleQuotedString, "hi"},
		{"single quoted string", `'hi'`, OpSingleQuotedString, "hi"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _, err := ParseExpr(c.input)
			if err != nil {
				t.Fatalf("ParseExpr(%q): %v", c.input, err)
			}
			// "1.2.3" parses as the concat 1 . 2.3; the literal under test
			// is its left operand.
			if got.Op == OpStringConcat {
				got = got.Left
			}
			if got.Op != c.op {
				t.Errorf("Op = %v, want %v", got.Op, c.op)
			}
			if got.Str != c.text {
				t.Errorf("Str = %q, want %q", got.Str, c.text)
			}
		})
	}
}

func TestParseExprSubscriptAndCall(t *testing.T) {
	got, _, err := ParseExpr("f(a, b)[0].name")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpConcatOrSubscript || got.Str != "name" {
		t.Fatalf("outer node = %+v, want ConcatOrSubscript(name)", got)
	}
	sub := got.Base
	if sub.Op != OpSubscript {
		t.Fatalf("middle node = %+v, want Subscript", sub)
	}
	call := sub.Base
	if call.Op != OpCall || len(call.Args) != 2 {
		t.Fatalf("inner node = %+v, want Call with 2 args", call)
	}
}

func TestParseExprCaseCompareSuffix(t *testing.T) {
	got, _, err := ParseExpr("a ==? b")
	if err != nil {
		t.Fatal(err)
	}
	if got.Op != OpEquals || got.Case != CaseIgnore {
		t.Fatalf("got %+v, want Equals/CaseIgnore", got)
	}
}

// stripExprPos returns a deep copy of n with every Pos zeroed, so tests
// can compare tree shape without pinning down exact byte offsets.
func stripExprPos(n *ExprNode) *ExprNode {
	if n == nil {
		return nil
	}
	cp := *n
	cp.Pos = Position{}
	cp.Next = stripExprPos(n.Next)
	cp.Cond = stripExprPos(n.Cond)
	cp.Then = stripExprPos(n.Then)
	cp.Else = stripExprPos(n.Else)
	cp.Left = stripExprPos(n.Left)
	cp.Right = stripExprPos(n.Right)
	cp.Operand = stripExprPos(n.Operand)
	cp.Base = stripExprPos(n.Base)
	cp.Index = stripExprPos(n.Index)
	cp.Lo = stripExprPos(n.Lo)
	cp.Hi = stripExprPos(n.Hi)
	cp.Func = stripExprPos(n.Func)
	if n.Parts != nil {
		cp.Parts = make([]*ExprNode, len(n.Parts))
		for i, p := range n.Parts {
			cp.Parts[i] = stripExprPos(p)
		}
	}
	if n.Items != nil {
		cp.Items = make([]*ExprNode, len(n.Items))
		for i, p := range n.Items {
			cp.Items[i] = stripExprPos(p)
		}
	}
	if n.Keys != nil {
		cp.Keys = make([]*ExprNode, len(n.Keys))
		for i, p := range n.Keys {
			cp.Keys[i] = stripExprPos(p)
		}
	}
	if n.Args != nil {
		cp.Args = make([]*ExprNode, len(n.Args))
		for i, p := range n.Args {
			cp.Args[i] = stripExprPos(p)
		}
	}
	return &cp
}
