package viml

import (
	"fmt"
	"strings"
)

// Translate walks the command tree rooted at node and emits a Lua
// program calling into the vim.* runtime surface: one function per node
// kind, substituting each command's typed fields into the matching
// runtime call.
func Translate(node *CommandNode) string {
	var b strings.Builder
	b.WriteString("vim = require 'vim'\n")
	b.WriteString("s = vim.new_scope(false)\n")
	b.WriteString("return { run = function(state)\n")
	b.WriteString("  state = state:set_script_locals(s)\n")
	translateSiblings(&b, node, 1)
	b.WriteString("end }\n")
	return b.String()
}

func tIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

func translateSiblings(b *strings.Builder, node *CommandNode, depth int) {
	for n := node; n != nil; n = n.Next {
		translateCommand(b, n, depth)
	}
}

func translateCommand(b *strings.Builder, n *CommandNode, depth int) {
	switch n.Type {
	case CmdComment, CmdHashbangComment, CmdSyntaxError:
		return
	case CmdEcho, CmdEchon, CmdEchomsg, CmdEchoerr:
		tIndent(b, depth)
		b.WriteString("vim.echo(state, {")
		for i, e := range n.Exprs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(translateExpr(e))
		}
		b.WriteString("})\n")
	case CmdExecute:
		tIndent(b, depth)
		b.WriteString("vim.execute(state, {")
		for i, e := range n.Exprs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(translateExpr(e))
		}
		b.WriteString("})\n")
	case CmdReturn:
		tIndent(b, depth)
		if len(n.Exprs) > 0 {
			fmt.Fprintf(b, "return %s\n", translateExpr(n.Exprs[0]))
		} else {
			b.WriteString("return\n")
		}
	case CmdCall:
		tIndent(b, depth)
		if len(n.Exprs) > 0 {
			fmt.Fprintf(b, "%s\n", translateExpr(n.Exprs[0]))
		}
	case CmdLet, CmdConst:
		tIndent(b, depth)
		translateAssign(b, n)
	case CmdUnlet:
		for _, e := range n.Exprs {
			tIndent(b, depth)
			fmt.Fprintf(b, "vim.assign_scope(state, %q, nil)\n", e.Str)
		}
	case CmdIf:
		tIndent(b, depth)
		fmt.Fprintf(b, "if vim.to_bool(%s) then\n", translateExpr(n.RHS))
		translateSiblings(b, n.Children, depth+1)
		translateElseChain(b, n.Next, depth)
		return
	case CmdWhile:
		tIndent(b, depth)
		fmt.Fprintf(b, "while vim.to_bool(%s) do\n", translateExpr(n.RHS))
		translateSiblings(b, n.Children, depth+1)
		tIndent(b, depth)
		b.WriteString("end\n")
	case CmdFor:
		tIndent(b, depth)
		fmt.Fprintf(b, "for _, %s in vim.list.iterator(%s) do\n", translateLoopVar(n.LHS), translateExpr(n.RHS))
		translateSiblings(b, n.Children, depth+1)
		tIndent(b, depth)
		b.WriteString("end\n")
	case CmdTry:
		tIndent(b, depth)
		b.WriteString("vim.try_catch(state, function(state)\n")
		translateSiblings(b, n.Children, depth+1)
		tIndent(b, depth)
		b.WriteString("end, {\n")
		for c := n.Next; c != nil && c.Type == CmdCatch; c = c.Next {
			tIndent(b, depth+1)
			fmt.Fprintf(b, "{pattern = %q, handler = function(state)\n", c.Regex.Source)
			translateSiblings(b, c.Children, depth+2)
			tIndent(b, depth+1)
			b.WriteString("end},\n")
		}
		tIndent(b, depth)
		b.WriteString("})\n")
		for c := n.Next; c != nil; c = c.Next {
			if c.Type == CmdFinally {
				tIndent(b, depth)
				b.WriteString("do\n")
				translateSiblings(b, c.Children, depth+1)
				tIndent(b, depth)
				b.WriteString("end\n")
			}
			if c.Type == CmdFinally || c.Type == CmdCatch {
				continue
			}
			break
		}
		return
	case CmdFunction:
		if n.FuncName == nil {
			return
		}
		tIndent(b, depth)
		fmt.Fprintf(b, "%s = function(state", translateFuncTarget(n.FuncName))
		for _, a := range n.FuncArgs {
			fmt.Fprintf(b, ", %s", a)
		}
		if n.FuncVararg {
			b.WriteString(", ...")
		}
		b.WriteString(")\n")
		translateSiblings(b, n.Children, depth+1)
		tIndent(b, depth)
		b.WriteString("end\n")
	case CmdBreak:
		tIndent(b, depth)
		b.WriteString("break\n")
	case CmdContinue:
		tIndent(b, depth)
		b.WriteString("goto continue\n")
	case CmdMap, CmdNoremap:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.map(state, %q, %q, %d)\n", n.MapLHS, n.MapRHS, n.MapFlags)
	case CmdUnmap:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.unmap(state, %q)\n", n.MapLHS)
	case CmdSubstitute:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.substitute(state, %q, %q, %d)\n", n.Regex.Source, replacementText(n.Replacement), uint16(n.SubFlags))
	case CmdSet:
		for _, op := range n.SetOps {
			tIndent(b, depth)
			fmt.Fprintf(b, "vim.set_option(state, %q, %q, %q)\n", op.Name, op.Op, op.Value)
		}
	case CmdAutocmd:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.autocmd(state, %q, %#v, %q)\n", n.AutocmdGroup, n.AutocmdEvents, n.CommandBody)
	case CmdCommand:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.define_user_command(state, %q, %q)\n", n.CommandName, n.CommandBody)
	case CmdUser:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.run_user_command(state, %q, %s, %v, %q)\n", n.Name, translateRange(n), n.Bang, n.RawArg)
	case CmdSilent, CmdUnsilent, CmdVerbose, CmdVertical, CmdTab, CmdTopleft,
		CmdBotright, CmdAboveleft, CmdBelowright, CmdLeftabove, CmdRightbelow,
		CmdKeepalt, CmdKeepjumps, CmdKeepmarks, CmdKeeppatterns, CmdLockmarks,
		CmdNoautocmd, CmdHide, CmdSandbox:
		// Parse-level modifiers; the runtime call is the target's.
		if n.Children != nil {
			translateCommand(b, n.Children, depth)
		}
	case CmdArgdo, CmdBufdo, CmdWindo, CmdTabdo:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.iterate(state, %q, function(state)\n", commandDisplayName(n))
		translateSiblings(b, n.Children, depth+1)
		tIndent(b, depth)
		b.WriteString("end)\n")
	case CmdGlobal, CmdVglobal:
		tIndent(b, depth)
		invert := n.Type == CmdVglobal || n.Bang
		fmt.Fprintf(b, "vim.global(state, %s, %q, %q, %v)\n", translateRange(n), n.Regex.Source, n.RawArg, invert)
	case CmdNormal:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.normal(state, %s, %q, %v)\n", translateRange(n), n.RawArg, n.Bang)
	case CmdAppend, CmdInsert, CmdChange:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.%s(state, %s, {", commandDisplayName(n), translateRange(n))
		for i, l := range n.Lines {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q", l)
		}
		b.WriteString("})\n")
	case CmdEdit, CmdNew, CmdSplit, CmdVsplit, CmdTabedit, CmdRead, CmdWrite,
		CmdSaveas, CmdSource, CmdCd, CmdLcd, CmdNext, CmdArgs, CmdArgadd:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.file_command(state, %q, %s, %v, %s)\n",
			commandDisplayName(n), translateRange(n), n.Bang, translateGlob(n.Glob))
	case CmdWincmd:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.wincmd(state, %q)\n", string(n.Char))
	case CmdDelete, CmdYank, CmdPut, CmdPrint, CmdJoin:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.%s(state, %s, %q, %d)\n", commandDisplayName(n), translateRange(n), registerText(n.Reg), n.Count)
	case CmdCopy, CmdMove:
		tIndent(b, depth)
		fmt.Fprintf(b, "vim.%s(state, %s, %s)\n", commandDisplayName(n), translateRange(n), translateAddress(n.DestAddr))
	default:
		if n.RawArg != "" {
			tIndent(b, depth)
			fmt.Fprintf(b, "-- unsupported: %s %s\n", commandDisplayName(n), n.RawArg)
		}
	}
}

// translateRange renders a command's range as a vim.range.compose call,
// or nil when the command has none.
func translateRange(n *CommandNode) string {
	if !n.HasRange {
		return "nil"
	}
	var parts []string
	for _, seg := range n.Range.Segments {
		parts = append(parts, translateAddress(seg.Addr))
		parts = append(parts, fmt.Sprintf("%v", seg.SetPos))
	}
	return fmt.Sprintf("vim.range.compose(state, %s)", strings.Join(parts, ", "))
}

func translateAddress(a Address) string {
	var base string
	switch a.Type {
	case AddrFixed:
		base = fmt.Sprintf("vim.range.fixed(%d)", a.Lnr)
	case AddrEnd:
		base = "vim.range.last(state)"
	case AddrCurrent:
		base = "vim.range.current(state)"
	case AddrMark:
		base = fmt.Sprintf("vim.range.mark(state, %q)", string(a.Mark))
	case AddrForwardSearch:
		base = fmt.Sprintf("vim.range.forward_search(state, %q)", a.Regex.Source)
	case AddrBackwardSearch:
		base = fmt.Sprintf("vim.range.backward_search(state, %q)", a.Regex.Source)
	case AddrPreviousSearch:
		base = fmt.Sprintf("vim.range.prev_search(state, %v)", a.Backward)
	case AddrSubstituteSearch:
		base = "vim.range.sub_search(state)"
	default:
		base = "nil"
	}
	for _, f := range a.Followups {
		switch f.Type {
		case FollowupShift:
			base = fmt.Sprintf("vim.range.apply_followup(state, 'shift', %d, %s)", f.Shift, base)
		case FollowupForwardPattern:
			base = fmt.Sprintf("vim.range.apply_followup(state, 'forward_pattern', %q, %s)", f.Regex.Source, base)
		case FollowupBackwardPattern:
			base = fmt.Sprintf("vim.range.apply_followup(state, 'backward_pattern', %q, %s)", f.Regex.Source, base)
		}
	}
	return base
}

func translateGlob(g Glob) string {
	var parts []string
	for _, p := range g.Patterns {
		var pb strings.Builder
		printPattern(&pb, p)
		parts = append(parts, fmt.Sprintf("%q", pb.String()))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}

func registerText(r Register) string {
	if r.Name == 0 {
		return ""
	}
	return string(r.Name)
}

func translateElseChain(b *strings.Builder, n *CommandNode, depth int) {
	for n != nil {
		switch n.Type {
		case CmdElseif:
			tIndent(b, depth)
			fmt.Fprintf(b, "elseif vim.to_bool(%s) then\n", translateExpr(n.RHS))
			translateSiblings(b, n.Children, depth+1)
		case CmdElse:
			tIndent(b, depth)
			b.WriteString("else\n")
			translateSiblings(b, n.Children, depth+1)
		case CmdEndif:
			tIndent(b, depth)
			b.WriteString("end\n")
			return
		default:
			return
		}
		n = n.Next
	}
}

func translateLoopVar(lhs *ExprNode) string {
	if lhs.Op == OpSimpleVariableName {
		return lhs.Str
	}
	return "__destructure"
}

func translateFuncTarget(name *ExprNode) string {
	if name.Op == OpSimpleVariableName {
		if len(name.Str) > 0 && name.Str[0] >= 'A' && name.Str[0] <= 'Z' {
			return fmt.Sprintf("state.user_functions[%q]", name.Str)
		}
		return fmt.Sprintf("state.functions[%q]", name.Str)
	}
	return "state.functions[\"?\"]"
}

func translateAssign(b *strings.Builder, n *CommandNode) {
	if n.LHS == nil {
		return
	}
	switch n.LHS.Op {
	case OpSimpleVariableName:
		fmt.Fprintf(b, "vim.assign_scope(state, %q, %s)\n", n.LHS.Str, translateAssignRHS(n))
	case OpSubscript:
		fmt.Fprintf(b, "vim.assign_subscript(state, %s, %s, %s)\n",
			translateExpr(n.LHS.Base), translateExpr(n.LHS.Index), translateAssignRHS(n))
	case OpList:
		fmt.Fprintf(b, "vim.assign_list(state, {")
		for i, item := range n.LHS.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(translateExpr(item))
		}
		fmt.Fprintf(b, "}, %s)\n", translateAssignRHS(n))
	default:
		fmt.Fprintf(b, "-- unsupported let LHS: %s\n", PrintExprString(n.LHS, PrinterOptions{}))
	}
}

func translateAssignRHS(n *CommandNode) string {
	rhs := translateExpr(n.RHS)
	switch n.AssignOp {
	case "+=":
		return fmt.Sprintf("vim.add(%s, %s)", translateExpr(n.LHS), rhs)
	case "-=":
		return fmt.Sprintf("vim.subtract(%s, %s)", translateExpr(n.LHS), rhs)
	case ".=":
		return fmt.Sprintf("vim.concat(%s, %s)", translateExpr(n.LHS), rhs)
	default:
		return rhs
	}
}

func replacementText(r *Replacement) string {
	var b strings.Builder
	for n := r; n != nil; n = n.Next {
		if n.Kind == ReplLiteral {
			b.WriteString(n.Text)
		}
	}
	return b.String()
}

// translateExpr renders one expression node as a Lua expression calling
// into the vim.* runtime's value-construction and operator surface.
func translateExpr(n *ExprNode) string {
	if n == nil {
		return "nil"
	}
	switch n.Op {
	case OpDecimalNumber, OpOctalNumber, OpHexNumber:
		return fmt.Sprintf("vim.number.new(%s)", n.Str)
	case OpFloat:
		return fmt.Sprintf("vim.float.new(%s)", n.Str)
	case OpDoubleQuotedString, OpSingleQuotedString:
		return fmt.Sprintf("%q", n.Str)
	case OpSimpleVariableName:
		return fmt.Sprintf("state.current_scope[%q]", n.Str)
	case OpOption:
		return fmt.Sprintf("vim.get_option(state, %q)", n.Str)
	case OpEnvironmentVariable:
		return fmt.Sprintf("vim.get_env(%q)", n.Str)
	case OpRegister:
		return fmt.Sprintf("vim.get_register(state, %q)", n.Str)
	case OpExpression:
		return fmt.Sprintf("(%s)", translateExpr(n.Operand))
	case OpNot:
		return fmt.Sprintf("vim.negate_logical(%s)", translateExpr(n.Operand))
	case OpMinus:
		return fmt.Sprintf("vim.negate(%s)", translateExpr(n.Operand))
	case OpPlus:
		return fmt.Sprintf("vim.promote_integer(%s)", translateExpr(n.Operand))
	case OpList:
		var items []string
		for _, it := range n.Items {
			items = append(items, translateExpr(it))
		}
		return fmt.Sprintf("vim.list.new({%s})", strings.Join(items, ", "))
	case OpDictionary:
		var entries []string
		for i, k := range n.Keys {
			entries = append(entries, fmt.Sprintf("[%s] = %s", translateExpr(k), translateExpr(n.Items[i])))
		}
		return fmt.Sprintf("vim.dict.new({%s})", strings.Join(entries, ", "))
	case OpSubscript:
		if n.Lo != nil || n.Hi != nil || n.Index == nil {
			return fmt.Sprintf("vim.slice(%s, %s, %s)", translateExpr(n.Base), translateExpr(n.Lo), translateExpr(n.Hi))
		}
		return fmt.Sprintf("vim.subscript(%s, %s)", translateExpr(n.Base), translateExpr(n.Index))
	case OpConcatOrSubscript:
		return fmt.Sprintf("vim.concat_or_subscript(%s, %q)", translateExpr(n.Base), n.Str)
	case OpCall:
		var args []string
		for _, a := range n.Args {
			args = append(args, translateExpr(a))
		}
		return fmt.Sprintf("vim.call(state, %s, {%s})", translateExpr(n.Func), strings.Join(args, ", "))
	case OpTernary:
		return fmt.Sprintf("(vim.to_bool(%s) and %s or %s)", translateExpr(n.Cond), translateExpr(n.Then), translateExpr(n.Else))
	case OpLogicalOr:
		return fmt.Sprintf("(vim.to_bool(%s) or vim.to_bool(%s))", translateExpr(n.Left), translateExpr(n.Right))
	case OpLogicalAnd:
		return fmt.Sprintf("(vim.to_bool(%s) and vim.to_bool(%s))", translateExpr(n.Left), translateExpr(n.Right))
	case OpAdd:
		return fmt.Sprintf("vim.add(%s, %s)", translateExpr(n.Left), translateExpr(n.Right))
	case OpSubtract:
		return fmt.Sprintf("vim.subtract(%s, %s)", translateExpr(n.Left), translateExpr(n.Right))
	case OpMultiply:
		return fmt.Sprintf("vim.multiply(%s, %s)", translateExpr(n.Left), translateExpr(n.Right))
	case OpDivide:
		return fmt.Sprintf("vim.divide(%s, %s)", translateExpr(n.Left), translateExpr(n.Right))
	case OpModulo:
		return fmt.Sprintf("vim.modulo(%s, %s)", translateExpr(n.Left), translateExpr(n.Right))
	case OpStringConcat:
		return fmt.Sprintf("vim.concat(%s, %s)", translateExpr(n.Left), translateExpr(n.Right))
	case OpGreater, OpGreaterEqual, OpLess, OpLessEqual, OpEquals, OpNotEquals,
		OpIdentical, OpNotIdentical, OpMatches, OpNotMatches:
		return translateCompare(n)
	default:
		return "nil"
	}
}

func translateCompare(n *ExprNode) string {
	ic := "false"
	switch n.Case {
	case MatchCase:
		ic = "false"
	case CaseIgnore:
		ic = "true"
	}
	l, r := translateExpr(n.Left), translateExpr(n.Right)
	switch n.Op {
	case OpEquals:
		return fmt.Sprintf("vim.equals(%s, %s, %s)", l, r, ic)
	case OpNotEquals:
		return fmt.Sprintf("vim.negate_logical(vim.equals(%s, %s, %s))", l, r, ic)
	case OpIdentical:
		return fmt.Sprintf("vim.identical(%s, %s, %s)", l, r, ic)
	case OpNotIdentical:
		return fmt.Sprintf("vim.negate_logical(vim.identical(%s, %s, %s))", l, r, ic)
	case OpMatches:
		return fmt.Sprintf("vim.matches(%s, %s, %s)", l, r, ic)
	case OpNotMatches:
		return fmt.Sprintf("vim.negate_logical(vim.matches(%s, %s, %s))", l, r, ic)
	case OpGreater:
		return fmt.Sprintf("vim.greater(%s, %s, %s)", l, r, ic)
	case OpLessEqual:
		return fmt.Sprintf("vim.negate_logical(vim.greater(%s, %s, %s))", l, r, ic)
	case OpLess:
		return fmt.Sprintf("vim.less(%s, %s, %s)", l, r, ic)
	case OpGreaterEqual:
		return fmt.Sprintf("vim.negate_logical(vim.less(%s, %s, %s))", l, r, ic)
	}
	return "nil"
}
