package viml

import "strings"

// parseSub parses :substitute/:&/:~. The delimiter is the first non-
// alpha, non-flag character after the command name; an empty pattern or
// replacement body means "reuse the previous one". Trailing flags and an
// optional non-zero count follow the closing delimiter.
func parseSub(ps *parseState, node *CommandNode, arg string) error {
	i := 0
	if i >= len(arg) || isWhite(arg[i]) || isWordChar(arg[i]) {
		// No delimiter: bare ":s" (reuse previous pattern/replacement) or
		// trailing flags only.
		i = skipWhite(arg, i)
		return parseSubFlagsAndCount(node, arg, i)
	}
	delim := arg[i]
	i++
	rx, end, ok := getRegex(arg, i, delim)
	if !ok {
		return newParseError(arg, "E486: missing delimiter in :substitute pattern", i)
	}
	node.Regex = rx
	i = end
	repl, end, err := parseReplacement(arg, i, delim)
	if err != nil {
		return err
	}
	node.Replacement = repl
	i = end
	i = skipWhite(arg, i)
	return parseSubFlagsAndCount(node, arg, i)
}

func parseSubFlagsAndCount(node *CommandNode, arg string, i int) error {
	for i < len(arg) {
		c := arg[i]
		var bit SubstituteFlags
		switch c {
		case 'c':
			bit = SubConfirm
		case '&':
			bit = SubKeepPrevious
		case 'e':
			bit = SubExprRepl
		case 'r':
			bit = SubReturnValue
		case 'p':
			bit = SubPrint
		case '#':
			bit = SubPrintNumber
		case 'l':
			bit = SubPrintNumber
		case 'i':
			bit = SubIgnoreCase
		case 'I':
			bit = SubNoIgnoreCase
		case 'g':
			bit = SubGlobal
		case ' ', '\t':
			i++
			continue
		default:
			if isDigit(c) {
				end := skipDigits(arg, i)
				n := 0
				for _, b := range arg[i:end] {
					n = n*10 + int(b-'0')
				}
				if n == 0 {
					return newParseError(arg, "E939: positive count required", i)
				}
				node.SubCount = n
				i = end
				continue
			}
			return newParseError(arg, "E488: trailing characters in :substitute flags", i)
		}
		node.SubFlags |= bit
		i++
	}
	return nil
}

// parseReplacement parses the RHS of :substitute into a linked chain of
// Replacement atoms.
func parseReplacement(s string, i int, delim byte) (*Replacement, int, error) {
	var head, tail *Replacement
	push := func(r *Replacement) {
		if head == nil {
			head = r
			tail = r
			return
		}
		tail.Next = r
		tail = r
	}
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			push(&Replacement{Kind: ReplLiteral, Text: lit.String()})
			lit.Reset()
		}
	}
	for i < len(s) {
		c := s[i]
		if c == delim {
			break
		}
		if c == '\\' && i+1 < len(s) {
			n := s[i+1]
			switch {
			case n == '=':
				flushLit()
				expr, end, err := ParseExpr(s[i+2:])
				if err != nil {
					return nil, i, err
				}
				push(&Replacement{Kind: ReplExpression, Expr: expr})
				i = i + 2 + end
				continue
			case n == 'u':
				flushLit()
				push(&Replacement{Kind: ReplCaseUpperOnce})
				i += 2
				continue
			case n == 'U':
				flushLit()
				push(&Replacement{Kind: ReplCaseUpperRest})
				i += 2
				continue
			case n == 'l':
				flushLit()
				push(&Replacement{Kind: ReplCaseLowerOnce})
				i += 2
				continue
			case n == 'L':
				flushLit()
				push(&Replacement{Kind: ReplCaseLowerRest})
				i += 2
				continue
			case n == 'e' || n == 'E':
				flushLit()
				push(&Replacement{Kind: ReplCaseEnd})
				i += 2
				continue
			case isDigit(n):
				flushLit()
				push(&Replacement{Kind: ReplGroup, Group: int(n - '0')})
				i += 2
				continue
			case n == '~':
				flushLit()
				push(&Replacement{Kind: ReplPrevious})
				i += 2
				continue
			case n == '&':
				flushLit()
				push(&Replacement{Kind: ReplMatched})
				i += 2
				continue
			case n == 'r':
				flushLit()
				push(&Replacement{Kind: ReplNewline})
				i += 2
				continue
			case n == 'n':
				lit.WriteByte(0)
				i += 2
				continue
			case n == 't':
				flushLit()
				push(&Replacement{Kind: ReplTab})
				i += 2
				continue
			case n == 'b':
				lit.WriteByte(0x08)
				i += 2
				continue
			default:
				lit.WriteByte(n)
				i += 2
				continue
			}
		}
		if c == '&' {
			flushLit()
			push(&Replacement{Kind: ReplMatched})
			i++
			continue
		}
		if c == '~' {
			flushLit()
			push(&Replacement{Kind: ReplPrevious})
			i++
			continue
		}
		lit.WriteByte(c)
		i++
	}
	flushLit()
	if i < len(s) && s[i] == delim {
		i++
	}
	return head, i, nil
}
