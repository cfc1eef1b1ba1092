package viml

import "strings"

// parseState carries the options threaded through every per-command
// parser; there are no package-level caches. get and lnr are wired by the
// block-sequence driver so parsers that consume extra lines (:append)
// can pull them and keep line numbering honest; curIndent is the indent
// of the command line being parsed, which :append's '.' terminator rule
// compares against.
type parseState struct {
	Options   CommandParserOptions
	get       LineGetter
	lnr       *uint32
	curIndent int
}

// parseRestLine stores arg verbatim, for commands whose grammar is just
// "the rest of the line" with no further structure (:delfunction,
// :delcommand, and other small commands not given a dedicated parser).
func parseRestLine(ps *parseState, node *CommandNode, arg string) error {
	node.RawArg = strings.TrimSpace(arg)
	if node.RawArg == "" {
		return newParseError(arg, "E471: argument required", 0)
	}
	return nil
}

// parseRestAllowEmpty is parseRestLine for commands that are commonly
// argument-less (:else, :endif, :endfor, :break, ...): an empty arg is
// not an error.
func parseRestAllowEmpty(ps *parseState, node *CommandNode, arg string) error {
	node.RawArg = strings.TrimSpace(arg)
	return nil
}

// parseExprCmd parses one-or-more whitespace separated expressions, as
// consumed by :echo/:execute-family commands and :return's optional
// value.
func parseExprCmd(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	head, err := ParseExprList(arg)
	if err != nil {
		return err
	}
	for n := head; n != nil; n = n.Next {
		node.Exprs = append(node.Exprs, n)
	}
	return nil
}

// parseExprOnlyCmd parses exactly one expression, as consumed by
// :if/:elseif/:while's condition.
func parseExprOnlyCmd(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	n, end, err := ParseExpr(arg)
	if err != nil {
		return err
	}
	if trimmed := strings.TrimSpace(arg[end:]); trimmed != "" {
		return newParseError(arg, "trailing characters after expression", end)
	}
	node.RHS = n
	return nil
}

// parseCall parses :call's single function-call expression.
func parseCall(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	n, _, err := ParseExpr(arg)
	if err != nil {
		return err
	}
	if n.Op != OpCall {
		return newParseError(arg, "E129: :call requires a function call", 0)
	}
	node.Exprs = []*ExprNode{n}
	return nil
}
