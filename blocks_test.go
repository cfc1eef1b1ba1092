package viml

import (
	"testing"

	"kr.dev/diff"
)

func TestParseCmdSequenceIfElseifElse(t *testing.T) {
	root, err := ParseCommands(DefaultOptions(), Lines([]string{
		`if x > 0`,
		`  echo "pos"`,
		`elseif x < 0`,
		`  echo "neg"`,
		`else`,
		`  echo "zero"`,
		`endif`,
	}))
	if err != nil {
		t.Fatalf("ParseCommands: %v", err)
	}
	if root == nil || root.Type != CmdIf {
		t.Fatalf("root = %#v, want CmdIf", root)
	}
	if root.Children == nil || root.Children.Type != CmdEcho {
		t.Fatalf("if body = %#v, want CmdEcho", root.Children)
	}
	elseif := root.Next
	if elseif == nil || elseif.Type != CmdElseif {
		t.Fatalf("root.Next = %#v, want CmdElseif", elseif)
	}
	els := elseif.Next
	if els == nil || els.Type != CmdElse {
		t.Fatalf("elseif.Next = %#v, want CmdElse", els)
	}
	endif := els.Next
	if endif == nil || endif.Type != CmdEndif {
		t.Fatalf("else.Next = %#v, want CmdEndif", endif)
	}
	if endif.Next != nil {
		t.Fatalf("endif.Next = %#v, want nil", endif.Next)
	}
	if elseif.Children == nil || elseif.Children.Type != CmdEcho {
		t.Fatalf("elseif body = %#v, want CmdEcho", elseif.Children)
	}
	if els.Children == nil || els.Children.Type != CmdEcho {
		t.Fatalf("else body = %#v, want CmdEcho", els.Children)
	}
}

func TestParseCmdSequenceForBarSplit(t *testing.T) {
	root, err := ParseCommands(DefaultOptions(), Lines([]string{
		`for i in range(10) | echo i | endfor`,
	}))
	if err != nil {
		t.Fatalf("ParseCommands: %v", err)
	}
	if root == nil || root.Type != CmdFor {
		t.Fatalf("root = %#v, want CmdFor", root)
	}
	if root.Children == nil || root.Children.Type != CmdEcho {
		t.Fatalf("for body = %#v, want CmdEcho", root.Children)
	}
	if root.Children.Next != nil {
		t.Fatalf("echo.Next = %#v, want nil", root.Children.Next)
	}
	endfor := root.Next
	if endfor == nil || endfor.Type != CmdEndfor {
		t.Fatalf("for.Next = %#v, want CmdEndfor", endfor)
	}
}

func TestParseCmdSequenceMissingEndif(t *testing.T) {
	root, err := ParseCommands(DefaultOptions(), Lines([]string{
		`if x`,
		`  echo "x"`,
	}))
	if err == nil {
		t.Fatalf("ParseCommands: want error for unclosed :if, got nil")
	}
	if _, ok := err.(*BlockError); !ok {
		t.Fatalf("err = %#v (%T), want *BlockError", err, err)
	}
	if root == nil || root.Type != CmdIf {
		t.Fatalf("root = %#v, want CmdIf", root)
	}
	body := root.Children
	if body == nil || body.Type != CmdEcho {
		t.Fatalf("if body = %#v, want CmdEcho", body)
	}
	if body.Next != nil {
		t.Fatalf("echo.Next = %#v, want nil (no synthetic endif node)", body.Next)
	}
}

func TestParseCmdSequenceTooManyNestedBlocks(t *testing.T) {
	lines := make([]string, 0, maxNestBlocks+2)
	for i := 0; i < maxNestBlocks+1; i++ {
		lines = append(lines, "if 1")
	}
	_, err := ParseCommands(DefaultOptions(), Lines(lines))
	if err == nil {
		t.Fatalf("ParseCommands: want error for nesting beyond maxNestBlocks, got nil")
	}
}

func TestLetDestructuring(t *testing.T) {
	root, err := ParseCommands(DefaultOptions(), Lines([]string{
		`let [a, b] = [1, 2]`,
	}))
	if err != nil {
		t.Fatalf("ParseCommands: %v", err)
	}
	if root == nil || root.Type != CmdLet {
		t.Fatalf("root = %#v, want CmdLet", root)
	}
	want := &ExprNode{Op: OpList, Items: []*ExprNode{
		{Op: OpSimpleVariableName, Str: "a"},
		{Op: OpSimpleVariableName, Str: "b"},
	}}
	diff.Test(t, t.Errorf, stripExprPos(root.LHS), want)
	if root.AssignOp != "=" {
		t.Fatalf("AssignOp = %q, want \"=\"", root.AssignOp)
	}
}
