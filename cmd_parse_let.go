package viml

import "strings"

// parseLet parses :let/:const's LHS (a plain name or list destructuring
// [a, b]), then one of "=", "+=", "-=", ".=", or nothing (the list-all
// form, when the command has no '=' at all). The [a, b; rest] form is not
// accepted: the list parser reports a missing ']' at the ';'.
func parseLet(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil // :let with no argument lists all variables
	}
	lhs, end, err := ParseExpr(arg)
	if err != nil {
		return err
	}
	node.LHS = lhs
	i := skipWhite(arg, end)
	if i >= len(arg) {
		return nil // :let x   (list single variable's value)
	}
	op, opEnd, ok := matchAssignOp(arg, i)
	if !ok {
		return newParseError(arg, "E18: unexpected characters after LHS", i)
	}
	node.AssignOp = op
	rhsSrc := strings.TrimLeft(arg[opEnd:], " \t")
	rhsBase := opEnd + (len(arg[opEnd:]) - len(rhsSrc))
	rhs, rhsEnd, err := ParseExpr(rhsSrc)
	if err != nil {
		return err
	}
	if trimmed := strings.TrimSpace(rhsSrc[rhsEnd:]); trimmed != "" {
		return newParseError(arg, "E488: trailing characters after :let RHS", rhsBase+rhsEnd)
	}
	node.RHS = rhs
	return nil
}

func matchAssignOp(s string, i int) (op string, end int, ok bool) {
	for _, c := range []string{"+=", "-=", ".=", "="} {
		if strings.HasPrefix(s[i:], c) {
			return c, i + len(c), true
		}
	}
	return "", i, false
}

// parseUnlet parses :unlet's space-separated list of LHS names.
func parseUnlet(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	for arg != "" {
		n, end, err := ParseExpr(arg)
		if err != nil {
			return err
		}
		node.Exprs = append(node.Exprs, n)
		arg = strings.TrimSpace(arg[end:])
	}
	return nil
}

// parseLockvar parses :lockvar/:unlockvar's optional depth number
// followed by the LHS list.
func parseLockvar(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	i := 0
	if i < len(arg) && isDigit(arg[i]) {
		end := skipDigits(arg, i)
		n := 0
		for _, b := range arg[i:end] {
			n = n*10 + int(b-'0')
		}
		node.Count = n
		node.HasCount = true
		i = end
	}
	arg = strings.TrimSpace(arg[i:])
	for arg != "" {
		n, end, err := ParseExpr(arg)
		if err != nil {
			return err
		}
		node.Exprs = append(node.Exprs, n)
		arg = strings.TrimSpace(arg[end:])
	}
	return nil
}

// parseFor parses :for's LHS (same grammar as :let's, list destructuring
// included), the literal "in", and the RHS expression.
func parseFor(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	lhs, end, err := ParseExpr(arg)
	if err != nil {
		return err
	}
	node.LHS = lhs
	rest := strings.TrimSpace(arg[end:])
	if !strings.HasPrefix(rest, "in") || (len(rest) > 2 && isWordChar(rest[2])) {
		return newParseError(arg, "E690: missing \"in\" after :for", end)
	}
	rest = strings.TrimSpace(rest[2:])
	rhs, _, err := ParseExpr(rest)
	if err != nil {
		return err
	}
	node.RHS = rhs
	return nil
}

// parseCatch parses :catch's optional /pattern/ (defaulting to match
// anything when absent).
func parseCatch(ps *parseState, node *CommandNode, arg string) error {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil
	}
	if arg[0] != '/' {
		return newParseError(arg, "E654: missing delimiter after :catch", 0)
	}
	rx, end, ok := getRegex(arg, 1, '/')
	if !ok {
		return newParseError(arg, "E654: missing closing delimiter after :catch", len(arg))
	}
	node.Regex = rx
	node.RawArg = strings.TrimSpace(arg[end:])
	return nil
}
