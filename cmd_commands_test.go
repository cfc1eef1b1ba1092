package viml

import (
	"strings"
	"testing"
)

func parseOne(t *testing.T, lines ...string) *CommandNode {
	t.Helper()
	root, err := ParseCommands(DefaultOptions(), Lines(lines))
	if err != nil {
		t.Fatalf("ParseCommands(%q): %v", lines, err)
	}
	if root == nil {
		t.Fatalf("ParseCommands(%q): nil root", lines)
	}
	return root
}

func TestModifierStacksTargetIntoChildren(t *testing.T) {
	root := parseOne(t, `silent echo "hi"`)
	if root.Type != CmdSilent {
		t.Fatalf("root = %v, want CmdSilent", root.Type)
	}
	if root.Next != nil {
		t.Fatalf("modifier target must be a child, not a sibling")
	}
	if root.Children == nil || root.Children.Type != CmdEcho {
		t.Fatalf("silent child = %#v, want CmdEcho", root.Children)
	}
}

func TestModifiersNest(t *testing.T) {
	root := parseOne(t, `silent! vertical split foo.txt`)
	if root.Type != CmdSilent || !root.Bang {
		t.Fatalf("root = %v bang=%v, want CmdSilent!", root.Type, root.Bang)
	}
	vert := root.Children
	if vert == nil || vert.Type != CmdVertical {
		t.Fatalf("silent child = %#v, want CmdVertical", vert)
	}
	split := vert.Children
	if split == nil || split.Type != CmdSplit {
		t.Fatalf("vertical child = %#v, want CmdSplit", split)
	}
	if len(split.Glob.Patterns) != 1 {
		t.Fatalf("split glob = %#v, want one pattern", split.Glob)
	}
}

func TestEditOptAndEditCmdAndGlob(t *testing.T) {
	root := parseOne(t, `edit ++enc=utf-8 ++bin +/pat foo.txt`)
	if root.Type != CmdEdit {
		t.Fatalf("root = %v, want CmdEdit", root.Type)
	}
	if root.OptFlags&OptEnc == 0 || root.Enc != "utf-8" {
		t.Fatalf("Enc = %q (flags %b), want utf-8", root.Enc, root.OptFlags)
	}
	if root.OptFlags&OptBin == 0 {
		t.Fatalf("OptFlags = %b, want OptBin set", root.OptFlags)
	}
	if root.Children == nil || !root.Children.HasRange {
		t.Fatalf("+cmd child = %#v, want a range-only command", root.Children)
	}
	if len(root.Glob.Patterns) != 1 {
		t.Fatalf("glob = %#v, want one pattern", root.Glob)
	}
}

func TestDeleteRegisterCountFlags(t *testing.T) {
	root := parseOne(t, `delete x 3 p`)
	if root.Type != CmdDelete {
		t.Fatalf("root = %v, want CmdDelete", root.Type)
	}
	if root.Reg.Name != 'x' {
		t.Fatalf("Reg = %q, want x", root.Reg.Name)
	}
	if !root.HasCount || root.Count != 3 {
		t.Fatalf("Count = %d (has %v), want 3", root.Count, root.HasCount)
	}
	if root.ExFlags&FlagExPrint == 0 {
		t.Fatalf("ExFlags = %b, want print flag", root.ExFlags)
	}
}

func TestGlobalKeepsSubCommand(t *testing.T) {
	root := parseOne(t, `g/foo/echo "hi"`)
	if root.Type != CmdGlobal {
		t.Fatalf("root = %v, want CmdGlobal", root.Type)
	}
	if root.Regex.Source != "foo" {
		t.Fatalf("Regex = %q, want foo", root.Regex.Source)
	}
	if root.RawArg != `echo "hi"` {
		t.Fatalf("RawArg = %q, want the sub-command text", root.RawArg)
	}
}

func TestSubstituteHashDelimiter(t *testing.T) {
	root := parseOne(t, `s#foo#bar#g`)
	if root.Type != CmdSubstitute {
		t.Fatalf("root = %v, want CmdSubstitute", root.Type)
	}
	if root.Regex.Source != "foo" {
		t.Fatalf("Regex = %q, want foo", root.Regex.Source)
	}
	if root.SubFlags&SubGlobal == 0 {
		t.Fatalf("SubFlags = %b, want g", root.SubFlags)
	}
}

func TestNormalKeepsArgumentVerbatim(t *testing.T) {
	root := parseOne(t, `normal! dd  `)
	if root.Type != CmdNormal || !root.Bang {
		t.Fatalf("root = %v bang=%v, want CmdNormal!", root.Type, root.Bang)
	}
	if root.RawArg != "dd  " {
		t.Fatalf("RawArg = %q, want keys with trailing whitespace intact", root.RawArg)
	}
}

func TestAppendCollectsBodyLines(t *testing.T) {
	root := parseOne(t,
		`append`,
		`line one`,
		`  line two`,
		`.`,
		`echo "after"`,
	)
	if root.Type != CmdAppend {
		t.Fatalf("root = %v, want CmdAppend", root.Type)
	}
	want := []string{"line one", "  line two"}
	if len(root.Lines) != len(want) {
		t.Fatalf("Lines = %q, want %q", root.Lines, want)
	}
	for i := range want {
		if root.Lines[i] != want[i] {
			t.Fatalf("Lines[%d] = %q, want %q", i, root.Lines[i], want[i])
		}
	}
	if root.Next == nil || root.Next.Type != CmdEcho {
		t.Fatalf("append.Next = %#v, want the command after the terminator", root.Next)
	}
}

func TestArgdoInlineChildren(t *testing.T) {
	root := parseOne(t, `argdo echo 1 | echo 2`)
	if root.Type != CmdArgdo {
		t.Fatalf("root = %v, want CmdArgdo", root.Type)
	}
	first := root.Children
	if first == nil || first.Type != CmdEcho {
		t.Fatalf("argdo first child = %#v, want CmdEcho", first)
	}
	second := first.Next
	if second == nil || second.Type != CmdEcho {
		t.Fatalf("argdo second child = %#v, want CmdEcho", second)
	}
	if second.Prev != first {
		t.Fatalf("sibling back-link broken")
	}
	if root.Next != nil {
		t.Fatalf("argdo swallows the whole line; Next = %#v", root.Next)
	}
}

func TestRedirForms(t *testing.T) {
	cases := []struct {
		in   string
		want Redir
	}{
		{`redir END`, Redir{Kind: RedirEnd}},
		{`redir > out.txt`, Redir{Kind: RedirFile, File: "out.txt"}},
		{`redir >> out.txt`, Redir{Kind: RedirAppend, File: "out.txt"}},
		{`redir @a`, Redir{Kind: RedirRegister, Reg: 'a'}},
		{`redir @a>>`, Redir{Kind: RedirRegister, Reg: 'a', RegAppend: true}},
	}
	for _, c := range cases {
		root := parseOne(t, c.in)
		if root.Type != CmdRedir {
			t.Fatalf("%q: root = %v, want CmdRedir", c.in, root.Type)
		}
		got := root.Redir
		got.Var = nil
		if got != c.want {
			t.Fatalf("%q: Redir = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestRedirToVariable(t *testing.T) {
	root := parseOne(t, `redir => output`)
	if root.Redir.Kind != RedirVar || root.Redir.VarAppend {
		t.Fatalf("Redir = %#v, want variable target", root.Redir)
	}
	if root.Redir.Var == nil || root.Redir.Var.Op != OpSimpleVariableName {
		t.Fatalf("Redir.Var = %#v, want a variable name", root.Redir.Var)
	}
}

func TestCopyDestinationAddress(t *testing.T) {
	root := parseOne(t, `copy 5`)
	if root.Type != CmdCopy {
		t.Fatalf("root = %v, want CmdCopy", root.Type)
	}
	if !root.HasDest || root.DestAddr.Type != AddrFixed || root.DestAddr.Lnr != 5 {
		t.Fatalf("DestAddr = %#v, want fixed line 5", root.DestAddr)
	}
}

func TestVimgrepPatternAndFiles(t *testing.T) {
	root := parseOne(t, `vimgrep /TODO/g *.go`)
	if root.Type != CmdVimgrep {
		t.Fatalf("root = %v, want CmdVimgrep", root.Type)
	}
	if root.Regex.Source != "TODO" {
		t.Fatalf("Regex = %q, want TODO", root.Regex.Source)
	}
	if root.SubFlags&SubGlobal == 0 {
		t.Fatalf("SubFlags = %b, want g", root.SubFlags)
	}
	if len(root.Glob.Patterns) != 1 {
		t.Fatalf("glob = %#v, want one pattern", root.Glob)
	}
}

func TestWincmdAndMarkAndSleep(t *testing.T) {
	if n := parseOne(t, `wincmd j`); n.Char != 'j' {
		t.Fatalf("wincmd Char = %q, want j", n.Char)
	}
	if n := parseOne(t, `mark a`); n.Char != 'a' {
		t.Fatalf("mark Char = %q, want a", n.Char)
	}
	n := parseOne(t, `sleep 100m`)
	if !n.HasCount || n.Count != 100 || n.Char != 'm' {
		t.Fatalf("sleep = count %d char %q, want 100m", n.Count, n.Char)
	}
}

func TestAtCommandRegisters(t *testing.T) {
	if n := parseOne(t, `@a`); n.Type != CmdAt || n.Reg.Name != 'a' {
		t.Fatalf("@a = %v reg %q", n.Type, n.Reg.Name)
	}
	if n := parseOne(t, `@"`); n.Type != CmdAt || n.Reg.Name != '"' {
		t.Fatalf(`@" = %v reg %q`, n.Type, n.Reg.Name)
	}
}

func TestUserCommandDefinition(t *testing.T) {
	root := parseOne(t, `command -nargs=1 -bang Grep echo <q-args>`)
	if root.Type != CmdCommand {
		t.Fatalf("root = %v, want CmdCommand", root.Type)
	}
	if root.CommandName != "Grep" {
		t.Fatalf("CommandName = %q, want Grep", root.CommandName)
	}
	if root.CommandNargs != "1" {
		t.Fatalf("CommandNargs = %q, want 1", root.CommandNargs)
	}
	if len(root.CommandAttrs) != 2 {
		t.Fatalf("CommandAttrs = %q, want both raw attributes", root.CommandAttrs)
	}
	if root.Bang {
		t.Fatalf("-bang is an attribute of the defined command, not of :command")
	}
}

func TestSubstituteReplacementEscapes(t *testing.T) {
	root := parseOne(t, `s/x/\U abc\e/`)
	if root.Type != CmdSubstitute {
		t.Fatalf("root = %v, want CmdSubstitute", root.Type)
	}
	var kinds []ReplacementKind
	for r := root.Replacement; r != nil; r = r.Next {
		kinds = append(kinds, r.Kind)
	}
	want := []ReplacementKind{ReplCaseUpperRest, ReplLiteral, ReplCaseEnd}
	if len(kinds) != len(want) {
		t.Fatalf("replacement kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("replacement kinds = %v, want %v", kinds, want)
		}
	}

	out, err := PrintString(root, DefaultPrinterOptions())
	if err != nil {
		t.Fatalf("PrintString: %v", err)
	}
	if out != "substitute/x/\\U abc\\e/\n" {
		t.Fatalf("PrintString = %q, want the case-modifier escapes kept", out)
	}
	root2, err := ParseCommands(DefaultOptions(), Lines(splitLines(out)))
	if err != nil {
		t.Fatalf("re-ParseCommands(%q): %v", out, err)
	}
	var kinds2 []ReplacementKind
	for r := root2.Replacement; r != nil; r = r.Next {
		kinds2 = append(kinds2, r.Kind)
	}
	if len(kinds2) != len(want) {
		t.Fatalf("re-parsed replacement kinds = %v, want %v", kinds2, want)
	}
	for i := range want {
		if kinds2[i] != want[i] {
			t.Fatalf("re-parsed replacement kinds = %v, want %v", kinds2, want)
		}
	}
}

func TestSubstituteBackspaceEscape(t *testing.T) {
	root := parseOne(t, `s/foo/a\bc/`)
	r := root.Replacement
	if r == nil || r.Kind != ReplLiteral || r.Next != nil {
		t.Fatalf("replacement = %#v, want a single literal atom", r)
	}
	if r.Text != "a\x08c" {
		t.Fatalf("replacement text = %q, want a backspace control byte", r.Text)
	}
}

func TestParseScriptRetainsLines(t *testing.T) {
	src := []string{`echo 1`, `echo 2`}
	res, err := ParseScript(DefaultOptions(), "test.vim", Lines(src))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if res.Fname != "test.vim" {
		t.Fatalf("Fname = %q", res.Fname)
	}
	if len(res.Lines) != 2 || res.Lines[0] != `echo 1` {
		t.Fatalf("Lines = %q, want the fetched source", res.Lines)
	}
	if res.Root == nil || res.Root.Type != CmdEcho {
		t.Fatalf("Root = %#v, want CmdEcho", res.Root)
	}
}

func TestPrintRoundTripNewCommands(t *testing.T) {
	for _, src := range []string{
		"silent echo \"hi\"\n",
		"delete x 3 p\n",
		"edit ++enc=utf-8 foo.txt\n",
		"global/foo/echo \"hi\"\n",
		"redir > out.txt\n",
		"redir END\n",
		"copy 5\n",
		"wincmd j\n",
		"mark a\n",
		"sleep 100m\n",
		"resize +5\n",
		"argdo echo 1 | echo 2\n",
		"append\nbody line\n.\n",
		"normal! dd\n",
		"substitute/x/\\u\\l\\r\\t y\\0\\&/g\n",
	} {
		root, err := ParseCommands(DefaultOptions(), Lines(splitLines(src)))
		if err != nil {
			t.Fatalf("ParseCommands(%q): %v", src, err)
		}
		out, err := PrintString(root, DefaultPrinterOptions())
		if err != nil {
			t.Fatalf("PrintString(%q): %v", src, err)
		}
		root2, err := ParseCommands(DefaultOptions(), Lines(splitLines(out)))
		if err != nil {
			t.Fatalf("re-ParseCommands(%q from %q): %v", out, src, err)
		}
		out2, err := PrintString(root2, DefaultPrinterOptions())
		if err != nil {
			t.Fatalf("re-PrintString: %v", err)
		}
		if out2 != out {
			t.Fatalf("round trip of %q unstable:\nfirst:  %q\nsecond: %q", src, out, out2)
		}
	}
}

func TestTranslateUserCommandWithRange(t *testing.T) {
	root := parseOne(t, `1,5MyCmd arg text`)
	if root.Type != CmdUser || root.Name != "MyCmd" {
		t.Fatalf("root = %v %q, want user command MyCmd", root.Type, root.Name)
	}
	lua := Translate(root)
	if !strings.Contains(lua, "vim.run_user_command(state, \"MyCmd\"") {
		t.Fatalf("Translate missing run_user_command call:\n%s", lua)
	}
	if !strings.Contains(lua, "vim.range.compose(state, vim.range.fixed(1), false, vim.range.fixed(5), false)") {
		t.Fatalf("Translate missing composed range:\n%s", lua)
	}
}

func TestTranslateModifierDescends(t *testing.T) {
	root := parseOne(t, `silent echo "hi"`)
	lua := Translate(root)
	if !strings.Contains(lua, "vim.echo(state") {
		t.Fatalf("Translate through modifier missing echo call:\n%s", lua)
	}
}
