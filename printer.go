package viml

import (
	"fmt"
	"io"
	"strings"
)

// PrinterOptions configures inter-token whitespace, mirroring the
// original style-options table consulted by the expression
// pretty-printer. DefaultPrinterOptions gives Vim's own canonical
// spacing; the zero value prints binary operators without spaces.
type PrinterOptions struct {
	// SpaceAroundBinOp inserts a space on each side of binary operators
	// (e.g. "a + b" instead of "a+b"). Vim's own :function listing does
	// this; true is the sane default.
	SpaceAroundBinOp bool
}

// DefaultPrinterOptions matches Vim's canonical rendering.
func DefaultPrinterOptions() PrinterOptions { return PrinterOptions{SpaceAroundBinOp: true} }

// Print walks the command tree rooted at node and writes canonical VimL
// text to w. Writing is a single growing pass over a strings.Builder;
// Go's Builder grows its buffer on demand, so no separate
// length-counting pass is needed before the write pass.
func Print(node *CommandNode, w io.Writer, opts PrinterOptions) error {
	var b strings.Builder
	printSiblings(&b, node, opts, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

// PrintString is a convenience wrapper returning the printed text
// directly.
func PrintString(node *CommandNode, opts PrinterOptions) (string, error) {
	var b strings.Builder
	printSiblings(&b, node, opts, 0)
	return b.String(), nil
}

func printSiblings(b *strings.Builder, node *CommandNode, opts PrinterOptions, indent int) {
	for n := node; n != nil; n = n.Next {
		printCommand(b, n, opts, indent)
	}
}

func printIndent(b *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		b.WriteString("  ")
	}
}

func printCommand(b *strings.Builder, n *CommandNode, opts PrinterOptions, indent int) {
	switch n.Type {
	case CmdComment, CmdHashbangComment:
		printIndent(b, indent)
		b.WriteString(n.RawArg)
		b.WriteByte('\n')
		return
	case CmdSyntaxError:
		printIndent(b, indent)
		b.WriteString("\" parse error")
		if n.SyntaxErr != nil {
			b.WriteString(": ")
			b.WriteString(n.SyntaxErr.Message)
		}
		b.WriteByte('\n')
		return
	}

	printIndent(b, indent)
	printCommandInline(b, n, opts)
	b.WriteByte('\n')

	switch n.Type {
	case CmdAppend, CmdInsert, CmdChange:
		for _, l := range n.Lines {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		b.WriteString(".\n")
	case CmdIf, CmdElseif, CmdElse, CmdWhile, CmdFor, CmdTry, CmdCatch, CmdFinally, CmdFunction:
		if n.Children != nil {
			printSiblings(b, n.Children, opts, indent+1)
		}
	}
}

// printCommandInline renders one command with no indent or trailing
// newline, so modifiers and +cmd arguments can embed their target on the
// same line. Argument order follows canonical Vim rendering: range, name,
// bang, register, ++opts, +cmd, count, ex-flags, command arguments, glob.
func printCommandInline(b *strings.Builder, n *CommandNode, opts PrinterOptions) {
	printRange(b, n.Range, n.HasRange)
	b.WriteString(commandDisplayName(n))
	if n.Bang {
		b.WriteByte('!')
	}

	def := cmddefs[n.Type]
	if def.Flags&FlagIsmodifier != 0 {
		if n.Children != nil {
			b.WriteByte(' ')
			printCommandInline(b, n.Children, opts)
		}
		return
	}

	if def.Flags&FlagRegstr != 0 && n.Reg.Name != 0 {
		b.WriteByte(' ')
		b.WriteByte(n.Reg.Name)
		if n.Reg.Expr != nil {
			printExprInto(b, n.Reg.Expr, opts)
		}
	}
	printOptFlags(b, n)
	if def.Flags&FlagEditcmd != 0 && n.Children != nil {
		b.WriteString(" +")
		var cb strings.Builder
		printCommandInline(&cb, n.Children, opts)
		for _, c := range []byte(cb.String()) {
			if isWhite(c) || c == '\\' || c == '|' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
	}
	if def.Flags&FlagCount != 0 && n.HasCount {
		fmt.Fprintf(b, " %d", n.Count)
	}
	printExFlags(b, n.ExFlags)

	switch n.Type {
	case CmdArgdo, CmdBufdo, CmdWindo, CmdTabdo:
		sep := " "
		for c := n.Children; c != nil; c = c.Next {
			b.WriteString(sep)
			printCommandInline(b, c, opts)
			sep = " | "
		}
		return
	}

	printCommandArgs(b, n, opts)
	printGlob(b, n.Glob)
}

func printOptFlags(b *strings.Builder, n *CommandNode) {
	if n.OptFlags&OptBin != 0 {
		b.WriteString(" ++bin")
	}
	if n.OptFlags&OptNobin != 0 {
		b.WriteString(" ++nobin")
	}
	if n.OptFlags&OptEdit != 0 {
		b.WriteString(" ++edit")
	}
	if n.OptFlags&OptEnc != 0 {
		b.WriteString(" ++enc=")
		b.WriteString(n.Enc)
	}
	if n.OptFlags&OptFF != 0 {
		b.WriteString(" ++ff=")
		b.WriteString(n.FF)
	}
	if n.OptFlags&OptBad != 0 {
		b.WriteString(" ++bad=")
		b.WriteString(n.BadChar)
	}
}

func printExFlags(b *strings.Builder, f ExFlags) {
	if f == 0 {
		return
	}
	b.WriteByte(' ')
	if f&FlagExList != 0 {
		b.WriteByte('l')
	}
	if f&FlagExLnr != 0 {
		b.WriteByte('#')
	}
	if f&FlagExPrint != 0 {
		b.WriteByte('p')
	}
}

func printGlob(b *strings.Builder, g Glob) {
	for _, p := range g.Patterns {
		b.WriteByte(' ')
		printPattern(b, p)
	}
}

func printPattern(b *strings.Builder, p Pattern) {
	for _, c := range p.Chunks {
		switch c.Kind {
		case PatLiteral:
			for i := 0; i < len(c.Text); i++ {
				if !isPatternLiteralByte(c.Text[i]) {
					b.WriteByte('\\')
				}
				b.WriteByte(c.Text[i])
			}
		case PatHome:
			b.WriteByte('~')
		case PatCurrentFile:
			b.WriteByte('%')
		case PatAlternate:
			b.WriteByte('#')
		case PatArguments:
			b.WriteString("##")
		case PatAnyRecurse:
			b.WriteString("**")
		case PatAny:
			b.WriteByte('*')
		case PatOneChar:
			b.WriteByte('?')
		case PatCollection:
			b.WriteByte('[')
			b.WriteString(c.Text)
			b.WriteByte(']')
		case PatBranch:
			b.WriteByte('{')
			for i, br := range c.Branches {
				if i > 0 {
					b.WriteByte(',')
				}
				printPattern(b, br)
			}
			b.WriteByte('}')
		case PatEnv:
			b.WriteByte('$')
			b.WriteString(c.Text)
		case PatExprGlob:
			b.WriteString("`=")
			b.WriteString(PrintExprString(c.Expr, PrinterOptions{}))
			b.WriteByte('`')
		case PatShellGlob:
			b.WriteByte('`')
			b.WriteString(c.Text)
			b.WriteByte('`')
		}
	}
}

func commandDisplayName(n *CommandNode) string {
	if n.Type == CmdUser || n.Type == CmdUnknown {
		return n.Name
	}
	switch n.Type {
	case CmdAt:
		return "@"
	case CmdStar:
		return "*"
	case CmdBang:
		return "!"
	case CmdEqual:
		return "="
	case CmdShiftRight:
		return ">"
	case CmdShiftLeft:
		return "<"
	}
	for _, c := range builtinCommands {
		if c.typ == n.Type {
			return c.name
		}
	}
	return "unknown"
}

func printRange(b *strings.Builder, r Range, has bool) {
	if !has {
		return
	}
	for i, seg := range r.Segments {
		if i > 0 {
			if seg.SetPos {
				b.WriteByte(';')
			} else {
				b.WriteByte(',')
			}
		}
		printAddress(b, seg.Addr)
	}
}

func printAddress(b *strings.Builder, a Address) {
	switch a.Type {
	case AddrFixed:
		fmt.Fprintf(b, "%d", a.Lnr)
	case AddrEnd:
		b.WriteByte('$')
	case AddrCurrent:
		b.WriteByte('.')
	case AddrMark:
		b.WriteByte('\'')
		b.WriteByte(a.Mark)
	case AddrForwardSearch:
		b.WriteByte('/')
		b.WriteString(a.Regex.Source)
		b.WriteByte('/')
	case AddrBackwardSearch:
		b.WriteByte('?')
		b.WriteString(a.Regex.Source)
		b.WriteByte('?')
	case AddrPreviousSearch:
		if a.Backward {
			b.WriteString(`\?`)
		} else {
			b.WriteString(`\/`)
		}
	case AddrSubstituteSearch:
		b.WriteString(`\&`)
	}
	for _, f := range a.Followups {
		switch f.Type {
		case FollowupShift:
			if f.Shift >= 0 {
				fmt.Fprintf(b, "+%d", f.Shift)
			} else {
				fmt.Fprintf(b, "%d", f.Shift)
			}
		case FollowupForwardPattern:
			b.WriteByte('/')
			b.WriteString(f.Regex.Source)
			b.WriteByte('/')
		case FollowupBackwardPattern:
			b.WriteByte('?')
			b.WriteString(f.Regex.Source)
			b.WriteByte('?')
		}
	}
}

func printCommandArgs(b *strings.Builder, n *CommandNode, opts PrinterOptions) {
	switch n.Type {
	case CmdEcho, CmdEchon, CmdEchomsg, CmdEchoerr, CmdExecute, CmdReturn:
		for _, e := range n.Exprs {
			b.WriteByte(' ')
			printExprInto(b, e, opts)
		}
	case CmdCall:
		if len(n.Exprs) > 0 {
			b.WriteByte(' ')
			printExprInto(b, n.Exprs[0], opts)
		}
	case CmdLet, CmdConst:
		b.WriteByte(' ')
		printExprInto(b, n.LHS, opts)
		if n.AssignOp != "" {
			fmt.Fprintf(b, " %s ", n.AssignOp)
			printExprInto(b, n.RHS, opts)
		}
	case CmdUnlet, CmdLockvar, CmdUnlockvar:
		for _, e := range n.Exprs {
			b.WriteByte(' ')
			printExprInto(b, e, opts)
		}
	case CmdIf, CmdElseif, CmdWhile:
		if n.RHS != nil {
			b.WriteByte(' ')
			printExprInto(b, n.RHS, opts)
		}
	case CmdFor:
		b.WriteByte(' ')
		printExprInto(b, n.LHS, opts)
		b.WriteString(" in ")
		printExprInto(b, n.RHS, opts)
	case CmdFunction:
		if n.FuncName != nil {
			b.WriteByte(' ')
			printExprInto(b, n.FuncName, opts)
			b.WriteByte('(')
			for i, a := range n.FuncArgs {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(a)
			}
			if n.FuncVararg {
				if len(n.FuncArgs) > 0 {
					b.WriteString(", ")
				}
				b.WriteString("...")
			}
			b.WriteByte(')')
			if n.FuncRange {
				b.WriteString(" range")
			}
			if n.FuncDict {
				b.WriteString(" dict")
			}
			if n.FuncAbort {
				b.WriteString(" abort")
			}
		}
	case CmdMap, CmdNoremap, CmdUnmap:
		if n.MapFlags&MapSilent != 0 {
			b.WriteString(" <silent>")
		}
		if n.MapFlags&MapBuffer != 0 {
			b.WriteString(" <buffer>")
		}
		if n.MapFlags&MapExpr != 0 {
			b.WriteString(" <expr>")
		}
		if n.MapLHS != "" {
			fmt.Fprintf(b, " %s %s", n.MapLHS, n.MapRHS)
		}
	case CmdSubstitute:
		b.WriteByte('/')
		b.WriteString(n.Regex.Source)
		b.WriteByte('/')
		printReplacement(b, n.Replacement)
		b.WriteByte('/')
		if n.SubFlags&SubGlobal != 0 {
			b.WriteByte('g')
		}
		if n.SubFlags&SubConfirm != 0 {
			b.WriteByte('c')
		}
	case CmdSet:
		for _, op := range n.SetOps {
			fmt.Fprintf(b, " %s%s%s", op.Name, op.Op, op.Value)
		}
	case CmdCatch:
		if n.Regex.Source != "" {
			fmt.Fprintf(b, " /%s/", n.Regex.Source)
		}
	case CmdGlobal, CmdVglobal:
		fmt.Fprintf(b, "/%s/", n.Regex.Source)
		if n.RawArg != "" {
			b.WriteString(n.RawArg)
		}
	case CmdVimgrep:
		if n.Regex.Source != "" {
			fmt.Fprintf(b, " /%s/", n.Regex.Source)
			if n.SubFlags&SubGlobal != 0 {
				b.WriteByte('g')
			}
		}
	case CmdNormal:
		// Keys are verbatim past the separating space, trailing
		// whitespace included.
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
	case CmdWincmd:
		b.WriteByte(' ')
		if n.RawArg != "" {
			b.WriteString(n.RawArg)
		} else {
			b.WriteByte(n.Char)
		}
	case CmdMark:
		b.WriteByte(' ')
		b.WriteByte(n.Char)
	case CmdSleep:
		if n.HasCount {
			fmt.Fprintf(b, " %d", n.Count)
			if n.Char == 'm' {
				b.WriteByte('m')
			}
		}
	case CmdLater, CmdEarlier:
		if n.HasCount {
			fmt.Fprintf(b, " %d", n.Count)
		}
		if n.Char != 0 {
			if !n.HasCount {
				b.WriteByte(' ')
			}
			b.WriteByte(n.Char)
		}
	case CmdSort:
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
		if n.Regex.Source != "" {
			fmt.Fprintf(b, " /%s/", n.Regex.Source)
		}
	case CmdMatch:
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
		if n.Regex.Source != "" {
			fmt.Fprintf(b, " /%s/", n.Regex.Source)
		}
	case CmdZ:
		if n.RawArg != "" || n.HasCount {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
			if n.HasCount {
				fmt.Fprintf(b, "%d", n.Count)
			}
		}
	case CmdHelpgrep:
		fmt.Fprintf(b, " %s", n.Regex.Source)
	case CmdOpen:
		if n.Regex.Source != "" {
			fmt.Fprintf(b, " /%s/", n.Regex.Source)
		}
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
	case CmdCopy, CmdMove:
		b.WriteByte(' ')
		printAddress(b, n.DestAddr)
	case CmdHistory:
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
		for i, num := range n.Numbers {
			if i == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%d", num)
		}
	case CmdWinpos, CmdWinsize:
		for _, num := range n.Numbers {
			fmt.Fprintf(b, " %d", num)
		}
	case CmdRedir:
		printRedir(b, n.Redir, opts)
	case CmdResize:
		if n.HasCount {
			if n.Count >= 0 {
				fmt.Fprintf(b, " +%d", n.Count)
			} else {
				fmt.Fprintf(b, " %d", n.Count)
			}
		}
	case CmdAt, CmdStar:
		if n.Reg.Name != 0 {
			b.WriteByte(n.Reg.Name)
			if n.Reg.Expr != nil {
				printExprInto(b, n.Reg.Expr, opts)
			}
		}
	case CmdBreakadd, CmdBreakdel, CmdProfile, CmdProfdel:
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
		if n.HasCount {
			fmt.Fprintf(b, " %d", n.Count)
		}
		if n.Name != "" {
			b.WriteByte(' ')
			b.WriteString(n.Name)
		}
	case CmdLanguage:
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
		if n.Name != "" {
			b.WriteByte(' ')
			b.WriteString(n.Name)
		}
	case CmdMenu, CmdUnmenu:
		printMenuArgs(b, n)
	case CmdAutocmd:
		printAutocmdArgs(b, n)
	case CmdCommand:
		printUserCommandArgs(b, n)
	case CmdHighlight:
		if n.HighlightGroup != "" {
			b.WriteByte(' ')
			b.WriteString(n.HighlightGroup)
		}
		for _, a := range n.HighlightAttrs {
			fmt.Fprintf(b, " %s=", a.Key)
			switch a.Color.Kind {
			case HLColorNumber:
				fmt.Fprintf(b, "%d", a.Color.Num)
			default:
				b.WriteString(a.Color.Name)
			}
		}
	case CmdAppend, CmdInsert, CmdChange:
		// Body lines follow on their own lines; nothing on the command
		// line itself.
	default:
		if n.RawArg != "" {
			b.WriteByte(' ')
			b.WriteString(n.RawArg)
		}
	}
}

func printRedir(b *strings.Builder, r Redir, opts PrinterOptions) {
	switch r.Kind {
	case RedirEnd:
		b.WriteString(" END")
	case RedirFile:
		fmt.Fprintf(b, " > %s", r.File)
	case RedirAppend:
		fmt.Fprintf(b, " >> %s", r.File)
	case RedirRegister:
		fmt.Fprintf(b, " @%c", r.Reg)
		if r.RegAppend {
			b.WriteString(">>")
		}
	case RedirVar:
		if r.VarAppend {
			b.WriteString(" =>> ")
		} else {
			b.WriteString(" => ")
		}
		printExprInto(b, r.Var, opts)
	}
}

func printMenuArgs(b *strings.Builder, n *CommandNode) {
	if n.MapFlags&MapSilent != 0 {
		b.WriteString(" <silent>")
	}
	if n.MapFlags&MapScript != 0 {
		b.WriteString(" <script>")
	}
	if n.MapFlags&MapSpecial != 0 {
		b.WriteString(" <special>")
	}
	if len(n.Menu.Path) > 0 {
		b.WriteByte(' ')
		for i, part := range n.Menu.Path {
			if i > 0 {
				b.WriteByte('.')
			}
			for j := 0; j < len(part); j++ {
				if part[j] == '.' || part[j] == '\\' {
					b.WriteByte('\\')
				}
				b.WriteByte(part[j])
			}
		}
	}
	if n.Menu.Tooltip != "" {
		b.WriteByte('\t')
		b.WriteString(n.Menu.Tooltip)
	}
	if n.RawArg != "" {
		b.WriteByte(' ')
		b.WriteString(n.RawArg)
	}
}

func printAutocmdArgs(b *strings.Builder, n *CommandNode) {
	if n.AutocmdGroup != "" {
		b.WriteByte(' ')
		b.WriteString(n.AutocmdGroup)
	}
	if len(n.AutocmdEvents) > 0 {
		b.WriteByte(' ')
		b.WriteString(strings.Join(n.AutocmdEvents, ","))
	}
	printGlob(b, n.AutocmdPattern)
	if n.AutocmdNested {
		b.WriteString(" nested")
	}
	if n.CommandBody != "" {
		b.WriteByte(' ')
		b.WriteString(n.CommandBody)
	}
}

func printUserCommandArgs(b *strings.Builder, n *CommandNode) {
	for _, a := range n.CommandAttrs {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	if n.CommandName != "" {
		b.WriteByte(' ')
		b.WriteString(n.CommandName)
	}
	if n.CommandBody != "" {
		b.WriteByte(' ')
		b.WriteString(n.CommandBody)
	}
}

func printReplacement(b *strings.Builder, r *Replacement) {
	for n := r; n != nil; n = n.Next {
		switch n.Kind {
		case ReplLiteral:
			b.WriteString(n.Text)
		case ReplGroup:
			fmt.Fprintf(b, `\%d`, n.Group)
		case ReplExpression:
			b.WriteString(`\=`)
			printExprInto(b, n.Expr, PrinterOptions{})
		case ReplMatched:
			b.WriteByte('&')
		case ReplPrevious:
			b.WriteByte('~')
		case ReplCaseUpperOnce:
			b.WriteString(`\u`)
		case ReplCaseUpperRest:
			b.WriteString(`\U`)
		case ReplCaseLowerOnce:
			b.WriteString(`\l`)
		case ReplCaseLowerRest:
			b.WriteString(`\L`)
		case ReplCaseEnd:
			b.WriteString(`\e`)
		case ReplNewline:
			b.WriteString(`\r`)
		case ReplTab:
			b.WriteString(`\t`)
		}
	}
}

func printExprInto(b *strings.Builder, n *ExprNode, opts PrinterOptions) {
	b.WriteString(PrintExprString(n, opts))
}

// PrintExprString renders a single expression node as canonical VimL
// text.
func PrintExprString(n *ExprNode, opts PrinterOptions) string {
	var b strings.Builder
	writeExpr(&b, n, opts)
	return b.String()
}

func writeExpr(b *strings.Builder, n *ExprNode, opts PrinterOptions) {
	if n == nil {
		return
	}
	switch n.Op {
	case OpDecimalNumber, OpOctalNumber, OpHexNumber, OpFloat, OpSimpleVariableName,
		OpIdentifier, OpOption, OpEnvironmentVariable:
		b.WriteString(n.Str)
	case OpDoubleQuotedString:
		b.WriteByte('"')
		b.WriteString(n.Str)
		b.WriteByte('"')
	case OpSingleQuotedString:
		b.WriteByte('\'')
		b.WriteString(n.Str)
		b.WriteByte('\'')
	case OpRegister:
		b.WriteByte('@')
		b.WriteString(n.Str)
		if n.Operand != nil {
			writeExpr(b, n.Operand, opts)
		}
	case OpVariableName:
		for _, part := range n.Parts {
			if part.Op == OpCurlyName {
				b.WriteByte('{')
				writeExpr(b, part.Operand, opts)
				b.WriteByte('}')
			} else {
				b.WriteString(part.Str)
			}
		}
	case OpExpression:
		b.WriteByte('(')
		writeExpr(b, n.Operand, opts)
		b.WriteByte(')')
	case OpNot:
		b.WriteByte('!')
		writeExpr(b, n.Operand, opts)
	case OpMinus:
		b.WriteByte('-')
		writeExpr(b, n.Operand, opts)
	case OpPlus:
		b.WriteByte('+')
		writeExpr(b, n.Operand, opts)
	case OpList:
		b.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, item, opts)
		}
		b.WriteByte(']')
	case OpDictionary:
		b.WriteByte('{')
		for i := range n.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, n.Keys[i], opts)
			b.WriteString(": ")
			writeExpr(b, n.Items[i], opts)
		}
		b.WriteByte('}')
	case OpSubscript:
		writeExpr(b, n.Base, opts)
		b.WriteByte('[')
		if n.Lo != nil || n.Hi != nil || n.Index == nil {
			writeExpr(b, n.Lo, opts)
			b.WriteByte(':')
			writeExpr(b, n.Hi, opts)
		} else {
			writeExpr(b, n.Index, opts)
		}
		b.WriteByte(']')
	case OpConcatOrSubscript:
		writeExpr(b, n.Base, opts)
		b.WriteByte('.')
		b.WriteString(n.Str)
	case OpCall:
		writeExpr(b, n.Func, opts)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, a, opts)
		}
		b.WriteByte(')')
	case OpTernary:
		writeExpr(b, n.Cond, opts)
		b.WriteString(" ? ")
		writeExpr(b, n.Then, opts)
		b.WriteString(" : ")
		writeExpr(b, n.Else, opts)
	default:
		writeBinOp(b, n, opts)
	}
}

func writeBinOp(b *strings.Builder, n *ExprNode, opts PrinterOptions) {
	writeExpr(b, n.Left, opts)
	sep := " "
	if !opts.SpaceAroundBinOp {
		sep = ""
	}
	b.WriteString(sep)
	b.WriteString(binOpText(n.Op, n.Case))
	b.WriteString(sep)
	writeExpr(b, n.Right, opts)
}

func binOpText(op ExprOp, c IgnoreCase) string {
	base := map[ExprOp]string{
		OpLogicalOr: "||", OpLogicalAnd: "&&",
		OpGreater: ">", OpGreaterEqual: ">=", OpLess: "<", OpLessEqual: "<=",
		OpEquals: "==", OpNotEquals: "!=", OpIdentical: "is", OpNotIdentical: "isnot",
		OpMatches: "=~", OpNotMatches: "!~",
		OpAdd: "+", OpSubtract: "-", OpMultiply: "*", OpDivide: "/", OpModulo: "%",
		OpStringConcat: ".",
	}[op]
	switch c {
	case MatchCase:
		return base + "#"
	case CaseIgnore:
		return base + "?"
	default:
		return base
	}
}
